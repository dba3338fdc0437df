package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderbridge/internal/models"
)

func validTiktokRow(orderID string, sku float64) models.TiktokRow {
	return models.TiktokRow{
		OrderID:                      orderID,
		OrderStatus:                  "Delivered",
		PaidTime:                     "01/02/2024 13:45:00",
		Recipient:                    "Somchai Jaidee",
		Phone:                        "(+66)812345678",
		Zipcode:                      "10110",
		Province:                     "Bangkok",
		District:                     "Khlong Toei",
		DetailAddress:                "99/1 Sukhumvit Road",
		AdditionalAddressInformation: "Khlong Toei",
		SellerSku:                    sku,
		Quantity:                     1,
		SkuSubtotalAfterDiscount:     107,
	}
}

func newTiktokService(orders *fakeOrderStore, records *fakeTiktokStore, products *fakeProductMasterStore) *TiktokService {
	return NewTiktokService(orders, fakePlatformStore{}, records, products, &fakeVatRateStore{}, NewValidateService(products))
}

func TestSellerSkuString(t *testing.T) {
	assert.Equal(t, "8850001234567", sellerSkuString(8850001234567))
	assert.Equal(t, "42", sellerSkuString(42))
	assert.Equal(t, "0", sellerSkuString(0))
}

func TestTiktokNormalizeRow(t *testing.T) {
	products := newFakeProductMasterStore("8850001234567")
	svc := newTiktokService(newFakeOrderStore(), &fakeTiktokStore{}, products)
	masters, err := products.FindByMaterials(context.Background(), []string{"8850001234567"})
	require.NoError(t, err)

	t.Run("shipping fields", func(t *testing.T) {
		draft := svc.normalizeRow(validTiktokRow("TT-1001", 8850001234567), masters)

		assert.Equal(t, int64(9155000390), draft.AccountCode)
		assert.Equal(t, 115, draft.SalesmanCode)
		assert.Equal(t, "TT-1001", draft.PurchaseOrder)
		assert.Equal(t, "2024-02-01T13:45:00Z", draft.InvoiceDate)
		assert.Equal(t, "Somchai Jaidee", draft.Name)
		assert.Equal(t, "99/1 Sukhumvit Road", draft.Address)
		assert.Nil(t, draft.Address2)
		require.NotNil(t, draft.Address3)
		assert.Equal(t, "Khlong Toei", *draft.Address3)
		assert.Equal(t, "10110", draft.PostCode)
		assert.Equal(t, "Bangkok", draft.City)
		assert.False(t, draft.RequireTaxInvoice)
		assert.Nil(t, draft.TaxID)
		assert.Equal(t, "8850001234567", draft.MaterialProductCode)
		assert.Equal(t, "EA", draft.UOM)
		assert.Equal(t, "ZT40", draft.Plant)
		assert.Equal(t, "ZT45", draft.StorageLocation)
		assert.Equal(t, 107.0, draft.SORPrice)
	})

	t.Run("unparseable paid time falls back to now", func(t *testing.T) {
		row := validTiktokRow("TT-1002", 8850001234567)
		row.PaidTime = ""
		draft := svc.normalizeRow(row, masters)
		assert.NotEmpty(t, draft.InvoiceDate)
	})

	t.Run("free of charge line", func(t *testing.T) {
		row := validTiktokRow("TT-1003", 8850001234567)
		row.SkuSubtotalAfterDiscount = 0
		draft := svc.normalizeRow(row, masters)
		assert.Equal(t, "ZFRC", draft.ItemCat)
		require.NotNil(t, draft.Mg4)
		assert.Equal(t, "ZZZ", *draft.Mg4)
	})
}

func TestTiktokImportRows(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelled orders are skipped", func(t *testing.T) {
		orders := newFakeOrderStore()
		records := &fakeTiktokStore{}
		svc := newTiktokService(orders, records, newFakeProductMasterStore("8850001234567"))

		cancelled := validTiktokRow("TT-2002", 8850001234567)
		cancelled.OrderStatus = "Cancelled"

		outcome, err := svc.ImportRows(ctx, 1, []models.TiktokRow{
			validTiktokRow("TT-2001", 8850001234567),
			cancelled,
		})
		require.NoError(t, err)
		require.True(t, outcome.Validation.Checker)

		assert.Equal(t, 2, outcome.Summary.TotalRows)
		assert.Equal(t, 1, outcome.Summary.Imported)
		assert.Equal(t, 1, outcome.Summary.Skipped)
		require.Len(t, orders.upserts, 1)
		assert.Equal(t, 100.0, orders.upserts[0].SORPrice)
		require.Len(t, records.records, 1)
		assert.Equal(t, "TT-2001", records.records[0].OrderID)
		assert.Equal(t, "8850001234567", records.records[0].SellerSku)
	})

	t.Run("masked zipcode passes validation", func(t *testing.T) {
		orders := newFakeOrderStore()
		svc := newTiktokService(orders, &fakeTiktokStore{}, newFakeProductMasterStore("8850001234567"))

		masked := validTiktokRow("TT-2501", 8850001234567)
		masked.Zipcode = "10***"

		outcome, err := svc.ImportRows(ctx, 1, []models.TiktokRow{masked})
		require.NoError(t, err)
		assert.True(t, outcome.Validation.Checker)
		assert.Equal(t, 1, outcome.Summary.Imported)
	})

	t.Run("reimport counts duplicates", func(t *testing.T) {
		orders := newFakeOrderStore()
		svc := newTiktokService(orders, &fakeTiktokStore{}, newFakeProductMasterStore("8850001234567"))
		rows := []models.TiktokRow{validTiktokRow("TT-3001", 8850001234567)}

		first, err := svc.ImportRows(ctx, 1, rows)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Summary.Imported)

		second, err := svc.ImportRows(ctx, 1, rows)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Summary.Imported)
		assert.Equal(t, 1, second.Summary.Duplicates)
	})
}
