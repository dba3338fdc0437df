package models

import "time"

// ShopeeRow is one line of a Shopee order export after column mapping.
// Field names follow the seller-center export column order.
type ShopeeRow struct {
	OrderID               string  `json:"orderId"`
	OrderStatus           string  `json:"orderStatus"`
	RefundStatus          string  `json:"refundStatus"`
	BuyerName             string  `json:"buyerName"`
	OrderDate             string  `json:"orderDate"`
	PaymentTime           string  `json:"paymentTime"`
	PaymentMethod         string  `json:"paymentMethod"`
	PaymentDetails        string  `json:"paymentDetails"`
	InstallmentPlan       string  `json:"installmentPlan"`
	TransactionFeePercent string  `json:"transactionFeePercent"`
	ShippingOption        string  `json:"shippingOption"`
	ShippingMethod        string  `json:"shippingMethod"`
	TrackingNumber        string  `json:"trackingNumber"`
	EstimatedDeliveryDate string  `json:"estimatedDeliveryDate"`
	DeliveryTime          string  `json:"deliveryTime"`
	ParentSKURef          string  `json:"parentSKURef"`
	ProductName           string  `json:"productName"`
	SkuReferenceNo        string  `json:"skuReferenceNo"`
	OptionName            string  `json:"optionName"`
	OriginalPrice         float64 `json:"originalPrice"`
	SalePrice             float64 `json:"salePrice"`
	Quantity              float64 `json:"quantity"`
	ReturnedQuantity      float64 `json:"returnedQuantity"`
	NetSalePrice          float64 `json:"netSalePrice"`
	ShopeeDiscount        float64 `json:"shopeeDiscount"`
	SellerVoucher         float64 `json:"sellerVoucher"`
	CoinsCashbackSeller   float64 `json:"coinsCashbackSeller"`
	ShopeeVoucher         float64 `json:"shopeeVoucher"`
	DiscountCode          string  `json:"discountCode"`
	BundleDeal            string  `json:"bundleDeal"`
	BundleDiscountSeller  float64 `json:"bundleDiscountSeller"`
	BundleDiscountShopee  float64 `json:"bundleDiscountShopee"`
	CoinsUsed             float64 `json:"coinsUsed"`
	AllPaymentPromotions  float64 `json:"allPaymentPromotions"`
	CommissionFee         float64 `json:"commissionFee"`
	TransactionFee        float64 `json:"transactionFee"`
	TotalBuyerPaid        float64 `json:"totalBuyerPaid"`
	ShippingFeeBuyer      float64 `json:"shippingFeeBuyer"`
	ShippingFeeShopee     float64 `json:"shippingFeeShopee"`
	ReturnShippingFee     float64 `json:"returnShippingFee"`
	ServiceFee            float64 `json:"serviceFee"`
	TotalAmount           float64 `json:"totalAmount"`
	EstimatedShippingFee  float64 `json:"estimatedShippingFee"`
	ReceiverName          string  `json:"receiverName"`
	ReceiverPhone         string  `json:"receiverPhone"`
	BuyerNote             string  `json:"buyerNote"`
	ShippingAddress       string  `json:"shippingAddress"`
	ShippingCountry       string  `json:"shippingCountry"`
	ShippingProvince      string  `json:"shippingProvince"`
	ShippingDistrict      string  `json:"shippingDistrict"`
	ShippingPostalCode    string  `json:"shippingPostalCode"`
	OrderType             string  `json:"orderType"`
	OrderSuccessTime      string  `json:"orderSuccessTime"`
	OrderNotes            string  `json:"orderNotes"`
	BuyerInvoiceRequest   string  `json:"buyerInvoiceRequest"`
	InvoiceType           string  `json:"invoiceType"`
	InvoiceName           string  `json:"invoiceName"`
	InvoiceBranchType     string  `json:"invoiceBranchType"`
	InvoiceBranchName     string  `json:"invoiceBranchName"`
	InvoiceBranchCode     string  `json:"invoiceBranchCode"`
	InvoiceFullAddress    string  `json:"invoiceFullAddress"`
	InvoiceAddressDetails string  `json:"invoiceAddressDetails"`
	InvoiceSubDistrict    string  `json:"invoiceSubDistrict"`
	InvoiceDistrict       string  `json:"invoiceDistrict"`
	InvoiceProvince       string  `json:"invoiceProvince"`
	InvoicePostalCode     string  `json:"invoicePostalCode"`
	TaxpayerID            string  `json:"taxpayerId"`
	InvoicePhoneNumber    string  `json:"invoicePhoneNumber"`
	InvoiceEmail          string  `json:"invoiceEmail"`
	Category              string  `json:"category"`
	SORApasNumber         string  `json:"SOR_ApasNumber"`
	CodeSales             string  `json:"codeSales"`
	InvoiceReceipt        string  `json:"invoiceReceipt"`
}

// ShopeeOrderRecord is the persisted source row kept for audit. Duplicate
// detection matches on the (order id, buyer name, sku) triple.
type ShopeeOrderRecord struct {
	ID             int       `db:"id" json:"id"`
	OrderID        string    `db:"order_id" json:"order_id"`
	BuyerName      string    `db:"buyer_name" json:"buyer_name"`
	SkuReferenceNo string    `db:"sku_reference_no" json:"sku_reference_no"`
	OrderStatus    string    `db:"order_status" json:"order_status"`
	Payload        string    `db:"payload" json:"payload"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
