package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderbridge/internal/models"
)

func TestParseNoteAttributes(t *testing.T) {
	raw := "TaxCustomValid: true\n" +
		"TaxCustomName: บริษัท ทดสอบ จำกัด\n" +
		"TaxCustomID: 0105536001234\n" +
		"TaxCustomAddress1: 99/1 ถนนสุขุมวิท แขวงคลองเตย\n" +
		"TaxCustomSubdistrict: คลองเตย\n" +
		"TaxCustomDistrict: คลองเตย\n" +
		"TaxCustomProvince: กรุงเทพมหานคร\n" +
		"TaxCustomPostcode: 10110\n" +
		"not a key value line\n" +
		"UnknownKey: ignored"

	data := ParseNoteAttributes(raw)
	assert.Equal(t, "true", data.TaxCustomValid)
	assert.Equal(t, "บริษัท ทดสอบ จำกัด", data.TaxCustomName)
	assert.Equal(t, "0105536001234", data.TaxCustomID)
	assert.Equal(t, "คลองเตย", data.TaxCustomSubdistrict)
	assert.Equal(t, "10110", data.TaxCustomPostcode)
	assert.Empty(t, data.TaxCustomPhone)
}

func TestProrateOrderLines(t *testing.T) {
	t.Run("discount split by subtotal share", func(t *testing.T) {
		discount := 10.0
		group := []models.ShopifyRow{
			{Name: "#1001", Subtotal: 100, DiscountAmount: &discount, LineitemQuantity: 1, LineitemPrice: 60},
			{Name: "#1001", LineitemQuantity: 1, LineitemPrice: 40},
		}
		lines := prorateOrderLines(group)
		require.Len(t, lines, 2)
		assert.Equal(t, 54.0, lines[0].total)
		assert.Equal(t, 36.0, lines[1].total)
		assert.False(t, lines[0].subtotalErrorCase)

		// The prorated totals absorb the whole discount.
		assert.Equal(t, 90.0, lines[0].total+lines[1].total)
	})

	t.Run("shipping prorated like the discount", func(t *testing.T) {
		group := []models.ShopifyRow{
			{Name: "#1002", Subtotal: 200, Shipping: 20, LineitemQuantity: 2, LineitemPrice: 100},
		}
		lines := prorateOrderLines(group)
		require.Len(t, lines, 1)
		assert.Equal(t, 180.0, lines[0].total)
	})

	t.Run("subtotal mismatch flags every line", func(t *testing.T) {
		group := []models.ShopifyRow{
			{Name: "#1003", Subtotal: 999, LineitemQuantity: 1, LineitemPrice: 60},
			{Name: "#1003", LineitemQuantity: 1, LineitemPrice: 40},
		}
		lines := prorateOrderLines(group)
		require.Len(t, lines, 2)
		assert.True(t, lines[0].subtotalErrorCase)
		assert.True(t, lines[1].subtotalErrorCase)
	})
}

func validShopifyRow(name, sku string, price float64) models.ShopifyRow {
	return models.ShopifyRow{
		Name:             name,
		CreatedAt:        "2024-02-01 13:45",
		FinancialStatus:  "paid",
		Subtotal:         price,
		Total:            price,
		LineitemQuantity: 1,
		LineitemPrice:    price,
		LineitemSku:      sku,
		BillingName:      "Somchai Jaidee",
		BillingAddress1:  "99/1 Sukhumvit Road",
		BillingZip:       "'10110",
		BillingProvince:  "TH-10",
		BillingProvinceName: "Bangkok",
		BillingPhone:     "0812345678",
	}
}

func newShopifyService(orders *fakeOrderStore, records *fakeShopifyStore, products *fakeProductMasterStore) *ShopifyService {
	return NewShopifyService(orders, fakePlatformStore{}, records, products, &fakeVatRateStore{}, NewValidateService(products))
}

func TestShopifyNormalizeLine(t *testing.T) {
	products := newFakeProductMasterStore("MAT-001")
	svc := newShopifyService(newFakeOrderStore(), &fakeShopifyStore{}, products)
	masters, err := products.FindByMaterials(context.Background(), []string{"MAT-001"})
	require.NoError(t, err)

	t.Run("billing branch", func(t *testing.T) {
		row := validShopifyRow("#1001", "MAT-001", 107)
		row.Notes = "ขอใบกำกับภาษี 1234567890123 ด้วยครับ"
		draft := svc.normalizeLine(shopifyLine{row: row, total: 107}, masters)

		assert.Equal(t, int64(9155000402), draft.AccountCode)
		assert.Equal(t, 115, draft.SalesmanCode)
		assert.Equal(t, "#1001", draft.PurchaseOrder)
		assert.Equal(t, "2024-02-01T13:45:00Z", draft.InvoiceDate)
		assert.Equal(t, "Somchai Jaidee", draft.Name)
		assert.Equal(t, "99/1 Sukhumvit Road", draft.Address)
		assert.Equal(t, "10110", draft.PostCode)
		assert.Equal(t, "Bangkok", draft.City)
		assert.Equal(t, "TH", draft.Country)
		assert.False(t, draft.RequireTaxInvoice)
		require.NotNil(t, draft.TaxID)
		assert.Equal(t, "1234567890123", *draft.TaxID)
		assert.Equal(t, "TAN", draft.ItemCat)
		assert.Nil(t, draft.Mg4)
		assert.Equal(t, "EA", draft.UOM)
		assert.Equal(t, "PC100", draft.ProfitCenter)
		assert.Equal(t, "ZT50", draft.Plant)
		assert.Equal(t, "ZT50", draft.StorageLocation)
		assert.Equal(t, 107.0, draft.SORPrice)
	})

	t.Run("tax invoice branch", func(t *testing.T) {
		row := validShopifyRow("#1002", "MAT-001", 107)
		row.NoteAttributes = "TaxCustomValid: true\n" +
			"TaxCustomName: บริษัท ทดสอบ จำกัด\n" +
			"TaxCustomID: 0105536001234\n" +
			"TaxCustomAddress1: 99/1 ถนนสุขุมวิท แขวงคลองเตย\n" +
			"TaxCustomSubdistrict: คลองเตย\n" +
			"TaxCustomDistrict: คลองเตย\n" +
			"TaxCustomProvince: กรุงเทพมหานคร\n" +
			"TaxCustomPostcode: 10110"
		draft := svc.normalizeLine(shopifyLine{row: row, total: 107}, masters)

		assert.True(t, draft.RequireTaxInvoice)
		assert.Equal(t, "บริษัท ทดสอบ จำกัด", draft.Name)
		// Address truncated where the sub-district name begins.
		assert.Equal(t, "99/1 ถนนสุขุมวิท", draft.Address)
		require.NotNil(t, draft.Address3)
		assert.Equal(t, "คลองเตย คลองเตย", *draft.Address3)
		assert.Equal(t, "กรุงเทพมหานคร", draft.City)
		require.NotNil(t, draft.TaxID)
		assert.Equal(t, "0105536001234", *draft.TaxID)
	})

	t.Run("free of charge line", func(t *testing.T) {
		row := validShopifyRow("#1003", "MAT-001", 0)
		draft := svc.normalizeLine(shopifyLine{row: row, total: 0}, masters)
		assert.Equal(t, "ZFRC", draft.ItemCat)
		require.NotNil(t, draft.Mg4)
		assert.Equal(t, "ZZZ", *draft.Mg4)
	})
}

func TestShopifyImportRows(t *testing.T) {
	ctx := context.Background()

	t.Run("imports paid rows and buckets the rest", func(t *testing.T) {
		orders := newFakeOrderStore()
		records := &fakeShopifyStore{}
		svc := newShopifyService(orders, records, newFakeProductMasterStore("MAT-001"))

		expired := validShopifyRow("#2002", "MAT-001", 107)
		expired.FinancialStatus = "expired"
		pending := validShopifyRow("#2003", "MAT-001", 107)
		pending.FinancialStatus = "pending"
		noSku := validShopifyRow("#2004", "", 107)
		badSubtotal := validShopifyRow("#2005", "MAT-001", 107)
		badSubtotal.Subtotal = 999

		rows := []models.ShopifyRow{
			validShopifyRow("#2001", "MAT-001", 107),
			expired,
			pending,
			noSku,
			badSubtotal,
		}

		outcome, err := svc.ImportRows(ctx, 1, rows)
		require.NoError(t, err)
		require.True(t, outcome.Validation.Checker)

		assert.Equal(t, 5, outcome.Summary.TotalRows)
		assert.Equal(t, 1, outcome.Summary.Imported)
		assert.Equal(t, 0, outcome.Summary.Duplicates)
		assert.Equal(t, 1, outcome.Summary.Skipped)
		require.Len(t, outcome.Summary.Errors, 2)
		assert.Equal(t, models.ReasonPriceUnitInvalid, outcome.Summary.Errors[0].Reason)
		assert.Equal(t, 1, outcome.Summary.Errors[0].Count)
		assert.Equal(t, models.ReasonOrderExpired, outcome.Summary.Errors[1].Reason)

		// Price stored net of VAT, total stays gross.
		require.Len(t, orders.upserts, 1)
		assert.Equal(t, 100.0, orders.upserts[0].SORPrice)
		assert.Equal(t, 107.0, orders.upserts[0].TotalPrice)

		require.Len(t, records.records, 1)
		assert.Equal(t, "#2001", records.records[0].OrderName)
		assert.NotEmpty(t, records.records[0].Payload)
	})

	t.Run("second import of the same file counts duplicates", func(t *testing.T) {
		orders := newFakeOrderStore()
		svc := newShopifyService(orders, &fakeShopifyStore{}, newFakeProductMasterStore("MAT-001"))
		rows := []models.ShopifyRow{validShopifyRow("#3001", "MAT-001", 107)}

		first, err := svc.ImportRows(ctx, 1, rows)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Summary.Imported)

		second, err := svc.ImportRows(ctx, 1, rows)
		require.NoError(t, err)
		assert.Equal(t, 0, second.Summary.Imported)
		assert.Equal(t, 1, second.Summary.Duplicates)
		require.Len(t, second.Summary.DuplicatedRows, 1)
	})

	t.Run("validation failure persists nothing", func(t *testing.T) {
		orders := newFakeOrderStore()
		records := &fakeShopifyStore{}
		svc := newShopifyService(orders, records, newFakeProductMasterStore("MAT-001"))

		bad := validShopifyRow("#4001", "MAT-001", 107)
		bad.BillingZip = "AB!123"

		outcome, err := svc.ImportRows(ctx, 1, []models.ShopifyRow{
			validShopifyRow("#4002", "MAT-001", 107),
			bad,
		})
		require.NoError(t, err)

		assert.False(t, outcome.Validation.Checker)
		assert.Equal(t, models.MsgPostDataFailed, outcome.Validation.Message)
		require.Len(t, outcome.Validation.Errors, 1)
		assert.Equal(t, models.ErrSpecialCharacterNotAllow, outcome.Validation.Errors[0].KeyErrors["postCode"])

		assert.Empty(t, orders.upserts)
		assert.Empty(t, records.records)
		assert.Zero(t, outcome.Summary.Imported)
	})

	t.Run("vat rate looked up for the draft country", func(t *testing.T) {
		orders := newFakeOrderStore()
		products := newFakeProductMasterStore("MAT-001")
		vatRates := &fakeVatRateStore{}
		svc := NewShopifyService(orders, fakePlatformStore{}, &fakeShopifyStore{}, products, vatRates, NewValidateService(products))

		_, err := svc.ImportRows(ctx, 1, []models.ShopifyRow{validShopifyRow("#6001", "MAT-001", 107)})
		require.NoError(t, err)
		assert.Equal(t, []string{"TH"}, vatRates.countries)
	})

	t.Run("unknown material fails the batch", func(t *testing.T) {
		orders := newFakeOrderStore()
		svc := newShopifyService(orders, &fakeShopifyStore{}, newFakeProductMasterStore("MAT-001"))

		outcome, err := svc.ImportRows(ctx, 1, []models.ShopifyRow{
			validShopifyRow("#5001", "MAT-404", 107),
		})
		require.NoError(t, err)

		assert.False(t, outcome.Validation.Checker)
		require.Len(t, outcome.Validation.Errors, 1)
		assert.Equal(t, models.ErrMaterialProductCodeAbsent, outcome.Validation.Errors[0].KeyErrors["materialProductCode"])
		assert.Empty(t, orders.upserts)
	})
}
