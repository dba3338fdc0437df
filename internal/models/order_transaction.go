package models

import "time"

// OrderTransactionDraft is the canonical record produced by normalization,
// pending validation and upsert. SORPrice holds the VAT-inclusive gross line
// total until VAT extraction replaces it with the ex-VAT unit price; the
// original gross is then retained in TotalPrice.
type OrderTransactionDraft struct {
	AccountCode         int64    `json:"accountCode"`
	SalesmanCode        int      `json:"salesmanCode"`
	PurchaseOrder       string   `json:"purchaseOrder"`
	InvoiceDate         string   `json:"invoiceDate"`
	Name                string   `json:"name"`
	Name2               string   `json:"name2"`
	Address             string   `json:"address"`
	Address2            *string  `json:"address2"`
	Address3            *string  `json:"address3"`
	PostCode            string   `json:"postCode"`
	City                string   `json:"city"`
	Country             string   `json:"country"`
	Tel                 *string  `json:"tel"`
	RequireTaxInvoice   bool     `json:"requireTaxInvoice"`
	TaxID               *string  `json:"taxId"`
	MaterialProductCode string   `json:"materialProductCode"`
	ItemCat             string   `json:"itemCat"`
	Quantity            float64  `json:"quantity"`
	Mg4                 *string  `json:"mg4"`
	ProfitCenter        string   `json:"profitCenter"`
	UOM                 string   `json:"UOM"`
	Plant               string   `json:"plant"`
	StorageLocation     string   `json:"storageLocation"`
	SORPrice            float64  `json:"SORPrice"`
	TotalPrice          float64  `json:"totalPrice"`
}

// NaturalKey identifies one order line across imports. SORPrice is the
// ex-VAT unit price, so the key is only computed after VAT extraction.
type NaturalKey struct {
	PurchaseOrder       string  `json:"purchaseOrder"`
	Name                string  `json:"name"`
	MaterialProductCode string  `json:"materialProductCode"`
	SORPrice            float64 `json:"SORPrice"`
}

// NaturalKeyOf derives the upsert key from a draft.
func NaturalKeyOf(d OrderTransactionDraft) NaturalKey {
	return NaturalKey{
		PurchaseOrder:       d.PurchaseOrder,
		Name:                d.Name,
		MaterialProductCode: d.MaterialProductCode,
		SORPrice:            d.SORPrice,
	}
}

// OrderTransaction is the persisted canonical record.
type OrderTransaction struct {
	ID                  int       `db:"id" json:"id"`
	UserID              int       `db:"user_id" json:"user_id"`
	SalesPlatformID     int       `db:"sales_platform_id" json:"sales_platform_id"`
	AccountCode         int64     `db:"account_code" json:"accountCode"`
	SalesmanCode        int       `db:"salesman_code" json:"salesmanCode"`
	PurchaseOrder       string    `db:"purchase_order" json:"purchaseOrder"`
	InvoiceDate         string    `db:"invoice_date" json:"invoiceDate"`
	Name                string    `db:"name" json:"name"`
	Name2               string    `db:"name2" json:"name2"`
	Address             string    `db:"address" json:"address"`
	Address2            *string   `db:"address2" json:"address2"`
	Address3            *string   `db:"address3" json:"address3"`
	PostCode            string    `db:"post_code" json:"postCode"`
	City                string    `db:"city" json:"city"`
	Country             string    `db:"country" json:"country"`
	Tel                 *string   `db:"tel" json:"tel"`
	RequireTaxInvoice   bool      `db:"require_tax_invoice" json:"requireTaxInvoice"`
	TaxID               *string   `db:"tax_id" json:"taxId"`
	MaterialProductCode string    `db:"material_product_code" json:"materialProductCode"`
	ItemCat             string    `db:"item_cat" json:"itemCat"`
	Quantity            float64   `db:"quantity" json:"quantity"`
	Mg4                 *string   `db:"mg4" json:"mg4"`
	ProfitCenter        string    `db:"profit_center" json:"profitCenter"`
	UOM                 string    `db:"uom" json:"UOM"`
	Plant               string    `db:"plant" json:"plant"`
	StorageLocation     string    `db:"storage_location" json:"storageLocation"`
	SORPrice            float64   `db:"sor_price" json:"SORPrice"`
	TotalPrice          float64   `db:"total_price" json:"totalPrice"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}
