package models

import "time"

// TiktokRow is one line of a TikTok Shop order export. TikTok files have no
// stable column positions, so mapping is header-driven rather than
// positional; SellerSku arrives numeric in the export and is stringified
// during normalization.
type TiktokRow struct {
	OrderID                      string  `json:"orderId"`
	OrderStatus                  string  `json:"orderStatus"`
	OrderSubstatus               string  `json:"orderSubstatus"`
	CancelationReturnType        string  `json:"cancelationReturnType"`
	NormalOrPreOrder             string  `json:"normalOrPreOrder"`
	SkuID                        string  `json:"skuId"`
	SellerSku                    float64 `json:"sellerSku"`
	ProductName                  string  `json:"productName"`
	Variation                    string  `json:"variation"`
	Quantity                     float64 `json:"quantity"`
	SkuQuantityOfReturn          float64 `json:"skuQuantityOfReturn"`
	SkuUnitOriginalPrice         float64 `json:"skuUnitOriginalPrice"`
	SkuSubtotalBeforeDiscount    float64 `json:"skuSubtotalBeforeDiscount"`
	SkuPlatformDiscount          float64 `json:"skuPlatformDiscount"`
	SkuSellerDiscount            float64 `json:"skuSellerDiscount"`
	SkuSubtotalAfterDiscount     float64 `json:"skuSubtotalAfterDiscount"`
	ShippingFeeAfterDiscount     float64 `json:"shippingFeeAfterDiscount"`
	OriginalShippingFee          float64 `json:"originalShippingFee"`
	ShippingFeeSellerDiscount    float64 `json:"shippingFeeSellerDiscount"`
	ShippingFeePlatformDiscount  float64 `json:"shippingFeePlatformDiscount"`
	Taxes                        float64 `json:"taxes"`
	SmallOrderFee                float64 `json:"smallOrderFee"`
	OrderAmount                  float64 `json:"orderAmount"`
	OrderRefundAmount            float64 `json:"orderRefundAmount"`
	CreatedTime                  string  `json:"createdTime"`
	PaidTime                     string  `json:"paidTime"`
	RtsTime                      string  `json:"rtsTime"`
	ShippedTime                  string  `json:"shippedTime"`
	DeliveredTime                string  `json:"deliveredTime"`
	CancelledTime                string  `json:"cancelledTime"`
	CancelBy                     string  `json:"cancelBy"`
	CancelReason                 string  `json:"cancelReason"`
	FulfillmentType              string  `json:"fulfillmentType"`
	WarehouseName                string  `json:"warehouseName"`
	TrackingID                   string  `json:"trackingId"`
	DeliveryOption               string  `json:"deliveryOption"`
	ShippingProviderName         string  `json:"shippingProviderName"`
	BuyerMessage                 string  `json:"buyerMessage"`
	BuyerUsername                string  `json:"buyerUsername"`
	Recipient                    string  `json:"recipient"`
	Phone                        string  `json:"phone"`
	Zipcode                      string  `json:"zipcode"`
	Country                      string  `json:"country"`
	Province                     string  `json:"province"`
	District                     string  `json:"district"`
	DetailAddress                string  `json:"detailAddress"`
	AdditionalAddressInformation string  `json:"additionalAddressInformation"`
	PaymentMethod                string  `json:"paymentMethod"`
	Weight                       float64 `json:"weight"`
	ProductCategory              string  `json:"productCategory"`
	PackageID                    string  `json:"packageId"`
	SellerNote                   string  `json:"sellerNote"`
	CheckedStatus                string  `json:"checkedStatus"`
	CheckedMarkedBy              string  `json:"checkedMarkedBy"`
}

// TiktokOrderRecord is the persisted source row kept for audit.
type TiktokOrderRecord struct {
	ID          int       `db:"id" json:"id"`
	OrderID     string    `db:"order_id" json:"order_id"`
	SellerSku   string    `db:"seller_sku" json:"seller_sku"`
	OrderStatus string    `db:"order_status" json:"order_status"`
	Payload     string    `db:"payload" json:"payload"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
