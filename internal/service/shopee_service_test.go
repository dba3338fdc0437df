package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderbridge/internal/models"
)

func validShopeeRow(orderID, sku string) models.ShopeeRow {
	return models.ShopeeRow{
		OrderID:            orderID,
		OrderStatus:        "สำเร็จแล้ว",
		OrderDate:          "2024-02-01 13:45",
		BuyerName:          "สมชาย ใจดี",
		ShippingAddress:    "99/1 ถนนสุขุมวิท เขตคลองเตย กรุงเทพมหานคร",
		ShippingDistrict:   "คลองเตย",
		ShippingProvince:   "กรุงเทพมหานคร",
		ShippingPostalCode: "10110",
		SkuReferenceNo:     " " + sku + " ",
		Quantity:           1,
		SalePrice:          107,
		NetSalePrice:       107,
	}
}

func newShopeeService(orders *fakeOrderStore, records *fakeShopeeStore, products *fakeProductMasterStore) *ShopeeService {
	return NewShopeeService(orders, fakePlatformStore{}, records, products, &fakeVatRateStore{}, NewValidateService(products))
}

func TestShopeeNormalizeRow(t *testing.T) {
	products := newFakeProductMasterStore("MAT-001")
	svc := newShopeeService(newFakeOrderStore(), newFakeShopeeStore(), products)
	masters, err := products.FindByMaterials(context.Background(), []string{"MAT-001"})
	require.NoError(t, err)

	t.Run("shipping branch", func(t *testing.T) {
		draft := svc.normalizeRow(validShopeeRow("SP-1001", "MAT-001"), masters)

		assert.Equal(t, int64(9155000390), draft.AccountCode)
		assert.Equal(t, 115, draft.SalesmanCode)
		assert.Equal(t, "SP-1001", draft.PurchaseOrder)
		assert.Equal(t, "2024-02-01T13:45:00Z", draft.InvoiceDate)
		assert.Equal(t, "สมชาย ใจดี", draft.Name)
		// The district marker and everything after it are dropped.
		assert.Equal(t, "99/1 ถนนสุขุมวิท", draft.Address)
		require.NotNil(t, draft.Address3)
		assert.Equal(t, "คลองเตย", *draft.Address3)
		assert.Equal(t, "10110", draft.PostCode)
		assert.Equal(t, "กรุงเทพมหานคร", draft.City)
		assert.False(t, draft.RequireTaxInvoice)
		assert.Nil(t, draft.TaxID)
		// SKU whitespace trimmed before the master lookup.
		assert.Equal(t, "MAT-001", draft.MaterialProductCode)
		assert.Equal(t, "EA", draft.UOM)
		assert.Equal(t, "ZT40", draft.Plant)
		assert.Equal(t, "ZT45", draft.StorageLocation)
		assert.Equal(t, 107.0, draft.SORPrice)
	})

	t.Run("invoice branch pads the taxpayer id", func(t *testing.T) {
		row := validShopeeRow("SP-1002", "MAT-001")
		row.BuyerInvoiceRequest = "Yes"
		row.InvoiceName = "บริษัท ทดสอบ จำกัด"
		row.InvoiceFullAddress = "99/1 ถนนสุขุมวิท ตำบลคลองเตย"
		row.InvoiceSubDistrict = "คลองเตย"
		row.InvoiceDistrict = "คลองเตย"
		row.InvoiceProvince = "กรุงเทพมหานคร"
		row.InvoicePostalCode = "10110"
		row.InvoicePhoneNumber = "0812345678"
		row.TaxpayerID = "105536001234"

		draft := svc.normalizeRow(row, masters)
		assert.True(t, draft.RequireTaxInvoice)
		assert.Equal(t, "บริษัท ทดสอบ จำกัด", draft.Name)
		assert.Equal(t, "99/1 ถนนสุขุมวิท", draft.Address)
		require.NotNil(t, draft.Tel)
		assert.Equal(t, "0812345678", *draft.Tel)
		require.NotNil(t, draft.TaxID)
		assert.Equal(t, "0105536001234", *draft.TaxID)
	})

	t.Run("invoice branch without a taxpayer id pads zeros", func(t *testing.T) {
		row := validShopeeRow("SP-1004", "MAT-001")
		row.BuyerInvoiceRequest = "Yes"
		row.InvoiceName = "บริษัท ทดสอบ จำกัด"
		row.InvoicePostalCode = "10110"

		draft := svc.normalizeRow(row, masters)
		require.NotNil(t, draft.TaxID)
		assert.Equal(t, "0000000000000", *draft.TaxID)
	})

	t.Run("free of charge when sale price is zero", func(t *testing.T) {
		row := validShopeeRow("SP-1003", "MAT-001")
		row.SalePrice = 0
		draft := svc.normalizeRow(row, masters)
		assert.Equal(t, "ZFRC", draft.ItemCat)
		require.NotNil(t, draft.Mg4)
		assert.Equal(t, "ZZZ", *draft.Mg4)
	})
}

func TestShopeeImportRows(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelled orders are skipped", func(t *testing.T) {
		orders := newFakeOrderStore()
		records := newFakeShopeeStore()
		svc := newShopeeService(orders, records, newFakeProductMasterStore("MAT-001"))

		cancelled := validShopeeRow("SP-2002", "MAT-001")
		cancelled.OrderStatus = "ยกเลิกแล้ว"

		outcome, err := svc.ImportRows(ctx, 1, []models.ShopeeRow{
			validShopeeRow("SP-2001", "MAT-001"),
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
		assert.Equal(t, "SP-2001", records.records[0].OrderID)
	})

	t.Run("existing order counts as duplicate but still upserts", func(t *testing.T) {
		orders := newFakeOrderStore()
		records := newFakeShopeeStore()
		records.existing["SP-3001|สมชาย ใจดี|MAT-001"] = true
		svc := newShopeeService(orders, records, newFakeProductMasterStore("MAT-001"))

		outcome, err := svc.ImportRows(ctx, 1, []models.ShopeeRow{
			validShopeeRow("SP-3001", "MAT-001"),
		})
		require.NoError(t, err)

		assert.Equal(t, 0, outcome.Summary.Imported)
		assert.Equal(t, 1, outcome.Summary.Duplicates)
		require.Len(t, outcome.Summary.DuplicatedRows, 1)
		// The row is still written so the stored payload stays fresh.
		assert.Len(t, records.records, 1)
		assert.Len(t, orders.upserts, 1)
	})

	t.Run("validation failure persists nothing", func(t *testing.T) {
		orders := newFakeOrderStore()
		records := newFakeShopeeStore()
		svc := newShopeeService(orders, records, newFakeProductMasterStore("MAT-001"))

		bad := validShopeeRow("SP-4001", "MAT-001")
		bad.ShippingPostalCode = ""

		outcome, err := svc.ImportRows(ctx, 1, []models.ShopeeRow{bad})
		require.NoError(t, err)
		assert.False(t, outcome.Validation.Checker)
		assert.Equal(t, models.ErrMissingRequiredValues, outcome.Validation.Errors[0].KeyErrors["postCode"])
		assert.Empty(t, orders.upserts)
		assert.Empty(t, records.records)
	})
}
