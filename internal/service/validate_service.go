package service

import (
	"context"
	"fmt"
	"regexp"

	"orderbridge/internal/models"
	"orderbridge/internal/utils"
)

var (
	postCodePattern = regexp.MustCompile(`^[\d-]+$`)
	// TikTok exports mask part of the zipcode with asterisks.
	postCodeMaskedPattern = regexp.MustCompile(`^[\d*-]+$`)
	taxIDPattern          = regexp.MustCompile(`^\d{13}$`)
)

// ValidateOptions tunes per-platform validation rules.
type ValidateOptions struct {
	// AllowMaskedPostCode accepts '*' characters in the post code.
	AllowMaskedPostCode bool
}

// ValidateService checks normalized drafts against the canonical field
// rules and the product master before anything is persisted.
type ValidateService struct {
	products ProductMasterStore
}

func NewValidateService(products ProductMasterStore) *ValidateService {
	return &ValidateService{products: products}
}

// ValidateBatch applies per-field rules to every draft. The batch is
// all-or-nothing: one bad row fails the whole set and nothing may be
// persisted by the caller.
func (s *ValidateService) ValidateBatch(ctx context.Context, drafts []models.OrderTransactionDraft) (models.BatchResult, error) {
	return s.ValidateBatchOpts(ctx, drafts, ValidateOptions{})
}

// ValidateBatchOpts is ValidateBatch with per-platform rule adjustments.
func (s *ValidateService) ValidateBatchOpts(ctx context.Context, drafts []models.OrderTransactionDraft, opts ValidateOptions) (models.BatchResult, error) {
	materials := make([]string, 0, len(drafts))
	seen := make(map[string]bool)
	for _, d := range drafts {
		if d.MaterialProductCode != "" && !seen[d.MaterialProductCode] {
			seen[d.MaterialProductCode] = true
			materials = append(materials, d.MaterialProductCode)
		}
	}

	known, err := s.products.FindByMaterials(ctx, materials)
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("load product masters: %w", err)
	}

	var errorRows []models.ValidationErrorRow
	for i, d := range drafts {
		keyErrors := validateDraft(d, opts)
		if d.MaterialProductCode != "" {
			if _, ok := known[d.MaterialProductCode]; !ok {
				keyErrors["materialProductCode"] = models.ErrMaterialProductCodeAbsent
			}
		}
		if len(keyErrors) > 0 {
			errorRows = append(errorRows, models.ValidationErrorRow{
				Row:       d,
				Index:     i,
				KeyErrors: keyErrors,
			})
		}
	}

	if len(errorRows) > 0 {
		return models.BatchResult{
			Checker: false,
			Message: models.MsgPostDataFailed,
			Errors:  errorRows,
		}, nil
	}

	return models.BatchResult{
		Checker: true,
		Message: models.MsgPostDataSuccess,
		Data:    drafts,
	}, nil
}

func validateDraft(d models.OrderTransactionDraft, opts ValidateOptions) map[string]string {
	keyErrors := make(map[string]string)

	postCode := postCodePattern
	if opts.AllowMaskedPostCode {
		postCode = postCodeMaskedPattern
	}

	if d.AccountCode == 0 {
		keyErrors["accountCode"] = models.ErrMissingRequiredValues
	}
	if d.SalesmanCode == 0 {
		keyErrors["salesmanCode"] = models.ErrMissingRequiredValues
	}
	if d.PurchaseOrder == "" {
		keyErrors["purchaseOrder"] = models.ErrMissingRequiredValues
	}
	if d.InvoiceDate == "" {
		keyErrors["invoiceDate"] = models.ErrMissingRequiredValues
	} else if !utils.IsStrictISODate(d.InvoiceDate) {
		keyErrors["invoiceDate"] = models.ErrInvalidDateFormat
	}
	if d.Name == "" {
		keyErrors["name"] = models.ErrMissingRequiredValues
	}
	if d.Address == "" {
		keyErrors["address"] = models.ErrMissingRequiredValues
	}
	if d.PostCode == "" {
		keyErrors["postCode"] = models.ErrMissingRequiredValues
	} else if !postCode.MatchString(d.PostCode) {
		keyErrors["postCode"] = models.ErrSpecialCharacterNotAllow
	}
	if d.City == "" {
		keyErrors["city"] = models.ErrMissingRequiredValues
	}
	if d.Country == "" {
		keyErrors["country"] = models.ErrMissingRequiredValues
	}
	if d.TaxID != nil && *d.TaxID != "" && !taxIDPattern.MatchString(*d.TaxID) {
		keyErrors["taxId"] = models.ErrRequiredOnlyNumber
	}
	if d.MaterialProductCode == "" {
		keyErrors["materialProductCode"] = models.ErrMissingRequiredValues
	}
	if d.ItemCat == "" {
		keyErrors["itemCat"] = models.ErrMissingRequiredValues
	}
	if d.Quantity == 0 {
		keyErrors["quantity"] = models.ErrMissingRequiredValues
	}
	if d.Plant == "" {
		keyErrors["plant"] = models.ErrMissingRequiredValues
	}
	if d.StorageLocation == "" {
		keyErrors["storageLocation"] = models.ErrMissingRequiredValues
	}

	return keyErrors
}
