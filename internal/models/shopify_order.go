package models

import "time"

// ShopifyRow is one line of a Shopify order export after column mapping.
// One order spans several rows sharing the same Name; order-level money
// fields are only populated on the first row of the group.
// DiscountAmount stays a pointer because discount proration needs to tell
// a missing cell apart from an explicit zero.
type ShopifyRow struct {
	Name                      string   `json:"name"`
	Email                     string   `json:"email"`
	FinancialStatus           string   `json:"financialStatus"`
	PaidAt                    string   `json:"paidAt"`
	FulfillmentStatus         string   `json:"fulfillmentStatus"`
	FulfilledAt               string   `json:"fulfilledAt"`
	AcceptsMarketing          string   `json:"acceptsMarketing"`
	Currency                  string   `json:"currency"`
	Subtotal                  float64  `json:"subtotal"`
	Shipping                  float64  `json:"shipping"`
	Taxes                     float64  `json:"taxes"`
	Total                     float64  `json:"total"`
	DiscountCode              string   `json:"discountCode"`
	DiscountAmount            *float64 `json:"discountAmount"`
	ShippingMethod            string   `json:"shippingMethod"`
	CreatedAt                 string   `json:"createdAt"`
	LineitemQuantity          float64  `json:"lineitemQuantity"`
	LineitemName              string   `json:"lineitemName"`
	LineitemPrice             float64  `json:"lineitemPrice"`
	LineitemCompareAtPrice    float64  `json:"lineitemCompareAtPrice"`
	LineitemSku               string   `json:"lineitemSku"`
	LineitemRequiresShipping  bool     `json:"lineitemRequiresShipping"`
	LineitemTaxable           bool     `json:"lineitemTaxable"`
	LineitemFulfillmentStatus string   `json:"lineitemFulfillmentStatus"`
	BillingName               string   `json:"billingName"`
	BillingStreet             string   `json:"billingStreet"`
	BillingAddress1           string   `json:"billingAddress1"`
	BillingAddress2           string   `json:"billingAddress2"`
	BillingCompany            string   `json:"billingCompany"`
	BillingCity               string   `json:"billingCity"`
	BillingZip                string   `json:"billingZip"`
	BillingProvince           string   `json:"billingProvince"`
	BillingCountry            string   `json:"billingCountry"`
	BillingPhone              string   `json:"billingPhone"`
	ShippingName              string   `json:"shippingName"`
	ShippingStreet            string   `json:"shippingStreet"`
	ShippingAddress1          string   `json:"shippingAddress1"`
	ShippingAddress2          string   `json:"shippingAddress2"`
	ShippingCompany           string   `json:"shippingCompany"`
	ShippingCity              string   `json:"shippingCity"`
	ShippingZip               string   `json:"shippingZip"`
	ShippingProvince          string   `json:"shippingProvince"`
	ShippingCountry           string   `json:"shippingCountry"`
	ShippingPhone             string   `json:"shippingPhone"`
	Notes                     string   `json:"notes"`
	NoteAttributes            string   `json:"noteAttributes"`
	CancelledAt               string   `json:"cancelledAt"`
	PaymentMethod             string   `json:"paymentMethod"`
	PaymentReference          string   `json:"paymentReference"`
	RefundedAmount            float64  `json:"refundedAmount"`
	Vendor                    string   `json:"vendor"`
	OutstandingBalance        float64  `json:"outstandingBalance"`
	Employee                  string   `json:"employee"`
	Location                  string   `json:"location"`
	DeviceID                  string   `json:"deviceId"`
	OrderID                   float64  `json:"id"`
	Tags                      string   `json:"tags"`
	RiskLevel                 string   `json:"riskLevel"`
	Source                    string   `json:"source"`
	LineitemDiscount          float64  `json:"lineitemDiscount"`
	Tax1Name                  string   `json:"tax1Name"`
	Tax1Value                 string   `json:"tax1Value"`
	Tax2Name                  string   `json:"tax2Name"`
	Tax2Value                 string   `json:"tax2Value"`
	Tax3Name                  string   `json:"tax3Name"`
	Tax3Value                 string   `json:"tax3Value"`
	Tax4Name                  string   `json:"tax4Name"`
	Tax4Value                 string   `json:"tax4Value"`
	Tax5Name                  string   `json:"tax5Name"`
	Tax5Value                 string   `json:"tax5Value"`
	Phone                     string   `json:"phone"`
	ReceiptNumber             string   `json:"receiptNumber"`
	Duties                    string   `json:"duties"`
	BillingProvinceName       string   `json:"billingProvinceName"`
	ShippingProvinceName      string   `json:"shippingProvinceName"`
	PaymentID                 string   `json:"paymentId"`
	PaymentTermsName          string   `json:"paymentTermsName"`
	NextPaymentDueAt          string   `json:"nextPaymentDueAt"`
	PaymentReferences         string   `json:"paymentReferences"`
}

// TaxCustomData carries the buyer's tax invoice request parsed out of the
// Shopify note attributes ("Key: Value" lines).
type TaxCustomData struct {
	TaxCustomType        string `json:"TaxCustomType"`
	TaxCustomName        string `json:"TaxCustomName"`
	TaxCustomValid       string `json:"TaxCustomValid"`
	TaxCustomID          string `json:"TaxCustomID"`
	TaxCustomAddress1    string `json:"TaxCustomAddress1"`
	TaxCustomAddress2    string `json:"TaxCustomAddress2"`
	TaxCustomDistrict    string `json:"TaxCustomDistrict"`
	TaxCustomSubdistrict string `json:"TaxCustomSubdistrict"`
	TaxCustomPhone       string `json:"TaxCustomPhone"`
	TaxCustomProvince    string `json:"TaxCustomProvince"`
	TaxCustomPostcode    string `json:"TaxCustomPostcode"`
}

// ShopifyOrderRecord is the persisted source row, kept alongside the
// canonical transaction for audit. Payload holds the full mapped row.
type ShopifyOrderRecord struct {
	ID              int       `db:"id" json:"id"`
	OrderName       string    `db:"order_name" json:"order_name"`
	LineitemSku     string    `db:"lineitem_sku" json:"lineitem_sku"`
	FinancialStatus string    `db:"financial_status" json:"financial_status"`
	Payload         string    `db:"payload" json:"payload"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
