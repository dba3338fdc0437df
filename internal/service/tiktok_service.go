package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"orderbridge/internal/models"
	"orderbridge/internal/utils"
)

// TikTok orders ship through the same ERP channel as Shopee.
const (
	tiktokAccountCode     int64 = 9155000390
	tiktokSalesmanCode          = 115
	tiktokPlant                 = "ZT40"
	tiktokStorageLocation       = "ZT45"
)

// TiktokService turns TikTok Shop export rows into canonical transactions.
type TiktokService struct {
	orders    OrderStore
	platforms PlatformStore
	records   TiktokStore
	products  ProductMasterStore
	vatRates  VatRateStore
	validate  *ValidateService
	log       *logrus.Logger
}

func NewTiktokService(orders OrderStore, platforms PlatformStore, records TiktokStore, products ProductMasterStore, vatRates VatRateStore, validate *ValidateService) *TiktokService {
	return &TiktokService{
		orders:    orders,
		platforms: platforms,
		records:   records,
		products:  products,
		vatRates:  vatRates,
		validate:  validate,
		log:       utils.GetLogger(),
	}
}

// sellerSkuString renders the numeric seller SKU without a decimal tail.
func sellerSkuString(sku float64) string {
	return strconv.FormatFloat(sku, 'f', -1, 64)
}

// normalizeRow builds the canonical draft for one TikTok line. TikTok
// exports carry no tax invoice request, so the shipping fields are always
// authoritative.
func (s *TiktokService) normalizeRow(row models.TiktokRow, masters map[string]models.ProductMaster) models.OrderTransactionDraft {
	name, name2 := utils.SplitByLength(row.Recipient, 30)

	var address3 *string
	if row.AdditionalAddressInformation != "" {
		address3 = &row.AdditionalAddressInformation
	}
	var tel *string
	if row.Phone != "" {
		tel = &row.Phone
	}

	invoiceDate, err := utils.ParseSlashDateTime(row.PaidTime)
	if err != nil {
		invoiceDate = time.Now().UTC().Format(time.RFC3339)
	}

	itemCat := "TAN"
	var mg4 *string
	if row.SkuSubtotalAfterDiscount == 0 {
		itemCat = "ZFRC"
		code := freeOfChargeMg4
		mg4 = &code
	}

	material := sellerSkuString(row.SellerSku)

	var uom, profitCenter string
	if master, ok := masters[material]; ok {
		if master.BaseUnit != nil {
			uom = *master.BaseUnit
		}
		if master.ProfitCenter != nil {
			profitCenter = *master.ProfitCenter
		}
	}

	return models.OrderTransactionDraft{
		AccountCode:         tiktokAccountCode,
		SalesmanCode:        tiktokSalesmanCode,
		PurchaseOrder:       row.OrderID,
		InvoiceDate:         invoiceDate,
		Name:                name,
		Name2:               name2,
		Address:             row.DetailAddress,
		Address2:            nil,
		Address3:            address3,
		PostCode:            row.Zipcode,
		City:                row.Province,
		Country:             destinationCountry,
		Tel:                 tel,
		RequireTaxInvoice:   false,
		TaxID:               nil,
		MaterialProductCode: material,
		ItemCat:             itemCat,
		Quantity:            row.Quantity,
		Mg4:                 mg4,
		ProfitCenter:        profitCenter,
		UOM:                 uom,
		Plant:               tiktokPlant,
		StorageLocation:     tiktokStorageLocation,
		SORPrice:            row.SkuSubtotalAfterDiscount,
		TotalPrice:          row.SkuSubtotalAfterDiscount,
	}
}

// ImportRows runs the full TikTok pipeline: filter cancelled orders,
// normalize, validate, extract VAT, then upsert row by row.
func (s *TiktokService) ImportRows(ctx context.Context, userID int, rows []models.TiktokRow) (*ImportOutcome, error) {
	filtered := make([]models.TiktokRow, 0, len(rows))
	for _, row := range rows {
		if row.OrderID != "" && row.OrderStatus != "Cancelled" {
			filtered = append(filtered, row)
		}
	}

	masters, err := s.lookupMasters(ctx, filtered)
	if err != nil {
		return nil, err
	}

	summary := models.TransactionSummary{
		Platform:  models.PlatformTiktok,
		TotalRows: len(rows),
		Skipped:   len(rows) - len(filtered),
	}

	drafts := make([]models.OrderTransactionDraft, 0, len(filtered))
	for _, row := range filtered {
		drafts = append(drafts, s.normalizeRow(row, masters))
	}

	validation, err := s.validate.ValidateBatchOpts(ctx, drafts, ValidateOptions{AllowMaskedPostCode: true})
	if err != nil {
		return nil, err
	}
	if !validation.Checker {
		return &ImportOutcome{Validation: validation, Summary: summary}, nil
	}

	rate, err := s.vatRates.FindRateByCountry(ctx, destinationCountry)
	if err != nil {
		return nil, err
	}

	platformID, err := s.platforms.EnsureID(ctx, models.PlatformTiktok)
	if err != nil {
		return nil, err
	}

	for i, draft := range drafts {
		row := filtered[i]
		if draft.Quantity != 0 {
			exVat, _ := ExtractVat(draft.SORPrice/draft.Quantity, rate)
			draft.SORPrice = exVat
		}

		payload, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("marshal tiktok row: %w", err)
		}
		if err := s.records.Upsert(ctx, models.TiktokOrderRecord{
			OrderID:     row.OrderID,
			SellerSku:   sellerSkuString(row.SellerSku),
			OrderStatus: row.OrderStatus,
			Payload:     string(payload),
		}); err != nil {
			return nil, err
		}

		created, err := s.orders.Upsert(ctx, userID, platformID, draft)
		if err != nil {
			return nil, err
		}
		if created {
			summary.Imported++
		} else {
			summary.Duplicates++
			summary.DuplicatedRows = append(summary.DuplicatedRows, draft)
		}
		summary.Transactions = append(summary.Transactions, draft)
	}

	s.log.WithFields(logrus.Fields{
		"platform":   models.PlatformTiktok,
		"imported":   summary.Imported,
		"duplicates": summary.Duplicates,
		"skipped":    summary.Skipped,
	}).Info("tiktok import finished")

	return &ImportOutcome{Validation: validation, Summary: summary}, nil
}

func (s *TiktokService) lookupMasters(ctx context.Context, rows []models.TiktokRow) (map[string]models.ProductMaster, error) {
	var materials []string
	seen := make(map[string]bool)
	for _, row := range rows {
		material := sellerSkuString(row.SellerSku)
		if material != "" && material != "0" && !seen[material] {
			seen[material] = true
			materials = append(materials, material)
		}
	}
	masters, err := s.products.FindByMaterials(ctx, materials)
	if err != nil {
		return nil, fmt.Errorf("lookup product masters: %w", err)
	}
	return masters, nil
}
