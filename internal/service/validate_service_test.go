package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderbridge/internal/models"
)

func validDraft(po, material string) models.OrderTransactionDraft {
	return models.OrderTransactionDraft{
		AccountCode:         9155000390,
		SalesmanCode:        115,
		PurchaseOrder:       po,
		InvoiceDate:         "2024-02-01T13:45:00Z",
		Name:                "Somchai Jaidee",
		Address:             "99/1 Sukhumvit Road",
		PostCode:            "10110",
		City:                "Bangkok",
		Country:             "TH",
		MaterialProductCode: material,
		ItemCat:             "TAN",
		Quantity:            1,
		Plant:               "ZT40",
		StorageLocation:     "ZT45",
		SORPrice:            100,
		TotalPrice:          107,
	}
}

func TestValidateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("all rows pass", func(t *testing.T) {
		svc := NewValidateService(newFakeProductMasterStore("MAT-001", "MAT-002"))
		drafts := []models.OrderTransactionDraft{
			validDraft("PO-1", "MAT-001"),
			validDraft("PO-2", "MAT-002"),
		}

		result, err := svc.ValidateBatch(ctx, drafts)
		require.NoError(t, err)
		assert.True(t, result.Checker)
		assert.Equal(t, models.MsgPostDataSuccess, result.Message)
		assert.Len(t, result.Data, 2)
		assert.Empty(t, result.Errors)
	})

	t.Run("one bad row rejects the batch", func(t *testing.T) {
		svc := NewValidateService(newFakeProductMasterStore("MAT-001"))
		bad := validDraft("PO-2", "MAT-001")
		bad.PostCode = "AB!123"
		drafts := []models.OrderTransactionDraft{
			validDraft("PO-1", "MAT-001"),
			bad,
			validDraft("PO-3", "MAT-001"),
		}

		result, err := svc.ValidateBatch(ctx, drafts)
		require.NoError(t, err)
		assert.False(t, result.Checker)
		assert.Equal(t, models.MsgPostDataFailed, result.Message)
		assert.Empty(t, result.Data)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, 1, result.Errors[0].Index)
		assert.Equal(t, models.ErrSpecialCharacterNotAllow, result.Errors[0].KeyErrors["postCode"])
	})

	t.Run("unknown material", func(t *testing.T) {
		svc := NewValidateService(newFakeProductMasterStore("MAT-001"))
		result, err := svc.ValidateBatch(ctx, []models.OrderTransactionDraft{
			validDraft("PO-1", "MAT-404"),
		})
		require.NoError(t, err)
		assert.False(t, result.Checker)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, models.ErrMaterialProductCodeAbsent, result.Errors[0].KeyErrors["materialProductCode"])
	})

	t.Run("masked post code allowed only when opted in", func(t *testing.T) {
		svc := NewValidateService(newFakeProductMasterStore("MAT-001"))
		masked := validDraft("PO-1", "MAT-001")
		masked.PostCode = "10***"

		result, err := svc.ValidateBatch(ctx, []models.OrderTransactionDraft{masked})
		require.NoError(t, err)
		assert.False(t, result.Checker)

		result, err = svc.ValidateBatchOpts(ctx, []models.OrderTransactionDraft{masked}, ValidateOptions{AllowMaskedPostCode: true})
		require.NoError(t, err)
		assert.True(t, result.Checker)
	})

	t.Run("malformed invoice date", func(t *testing.T) {
		svc := NewValidateService(newFakeProductMasterStore("MAT-001"))
		bad := validDraft("PO-1", "MAT-001")
		bad.InvoiceDate = "15/03/2023"
		result, err := svc.ValidateBatch(ctx, []models.OrderTransactionDraft{bad})
		require.NoError(t, err)
		assert.False(t, result.Checker)
		assert.Equal(t, models.ErrInvalidDateFormat, result.Errors[0].KeyErrors["invoiceDate"])
	})

	t.Run("tax id must be 13 digits", func(t *testing.T) {
		svc := NewValidateService(newFakeProductMasterStore("MAT-001"))
		taxID := "12345"
		bad := validDraft("PO-1", "MAT-001")
		bad.TaxID = &taxID
		result, err := svc.ValidateBatch(ctx, []models.OrderTransactionDraft{bad})
		require.NoError(t, err)
		assert.False(t, result.Checker)
		assert.Equal(t, models.ErrRequiredOnlyNumber, result.Errors[0].KeyErrors["taxId"])
	})

	t.Run("missing required values reported per field", func(t *testing.T) {
		svc := NewValidateService(newFakeProductMasterStore())
		result, err := svc.ValidateBatch(ctx, []models.OrderTransactionDraft{{}})
		require.NoError(t, err)
		assert.False(t, result.Checker)
		require.Len(t, result.Errors, 1)

		keyErrors := result.Errors[0].KeyErrors
		for _, field := range []string{
			"accountCode", "salesmanCode", "purchaseOrder", "invoiceDate",
			"name", "address", "postCode", "city", "country",
			"materialProductCode", "itemCat", "quantity", "plant", "storageLocation",
		} {
			assert.Equal(t, models.ErrMissingRequiredValues, keyErrors[field], field)
		}
	})
}
