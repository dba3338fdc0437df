package excel

import (
	"github.com/xuri/excelize/v2"

	"orderbridge/internal/models"
)

// ValueType drives per-cell coercion during extraction.
type ValueType string

const (
	TypeString   ValueType = "string"
	TypeNumber   ValueType = "number"
	TypeBoolean  ValueType = "boolean"
	TypeDateTime ValueType = "datetime"
)

// ColumnSpec declares one recognized spreadsheet column: the header string
// as it appears in the export, the canonical field name, and the coercion
// type.
type ColumnSpec struct {
	Header string
	Key    string
	Type   ValueType
}

// PlatformSchema is the ordered column layout of one platform's export.
// For positional platforms the slice index is the column position, so the
// column letter of Columns[i] is simply the spreadsheet name of column i+1.
type PlatformSchema struct {
	Platform   models.PlatformKind
	Positional bool
	// StartRow is the first data row in 1-based spreadsheet terms.
	StartRow int
	Columns  []ColumnSpec
}

// ExpectedHeaders returns the header strings used for platform detection.
func (s PlatformSchema) ExpectedHeaders() []string {
	headers := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		headers = append(headers, c.Header)
	}
	return headers
}

// ColumnLetter returns the spreadsheet column name for position i (0-based).
func ColumnLetter(i int) string {
	name, _ := excelize.ColumnNumberToName(i + 1)
	return name
}

// SchemaFor looks up the declared schema of a platform.
func SchemaFor(platform models.PlatformKind) (PlatformSchema, bool) {
	for _, s := range Schemas {
		if s.Platform == platform {
			return s, true
		}
	}
	return PlatformSchema{}, false
}

// Schemas lists every platform layout in detection order.
var Schemas = []PlatformSchema{
	shopifySchema,
	shopeeSchema,
	tiktokSchema,
	productMasterSchema,
}

var shopifySchema = PlatformSchema{
	Platform:   models.PlatformShopify,
	Positional: true,
	StartRow:   2,
	Columns: []ColumnSpec{
		{"Name", "name", TypeString},
		{"Email", "email", TypeString},
		{"Financial Status", "financialStatus", TypeString},
		{"Paid at", "paidAt", TypeString},
		{"Fulfillment Status", "fulfillmentStatus", TypeString},
		{"Fulfilled at", "fulfilledAt", TypeString},
		{"Accepts Marketing", "acceptsMarketing", TypeString},
		{"Currency", "currency", TypeString},
		{"Subtotal", "subtotal", TypeNumber},
		{"Shipping", "shipping", TypeNumber},
		{"Taxes", "taxes", TypeNumber},
		{"Total", "total", TypeNumber},
		{"Discount Code", "discountCode", TypeString},
		{"Discount Amount", "discountAmount", TypeNumber},
		{"Shipping Method", "shippingMethod", TypeString},
		{"Created at", "createdAt", TypeString},
		{"Lineitem quantity", "lineitemQuantity", TypeNumber},
		{"Lineitem name", "lineitemName", TypeString},
		{"Lineitem price", "lineitemPrice", TypeNumber},
		{"Lineitem compare at price", "lineitemCompareAtPrice", TypeNumber},
		{"Lineitem sku", "lineitemSku", TypeString},
		{"Lineitem requires shipping", "lineitemRequiresShipping", TypeString},
		{"Lineitem taxable", "lineitemTaxable", TypeString},
		{"Lineitem fulfillment status", "lineitemFulfillmentStatus", TypeString},
		{"Billing Name", "billingName", TypeString},
		{"Billing Street", "billingStreet", TypeString},
		{"Billing Address1", "billingAddress1", TypeString},
		{"Billing Address2", "billingAddress2", TypeString},
		{"Billing Company", "billingCompany", TypeString},
		{"Billing City", "billingCity", TypeString},
		{"Billing Zip", "billingZip", TypeString},
		{"Billing Province", "billingProvince", TypeString},
		{"Billing Country", "billingCountry", TypeString},
		{"Billing Phone", "billingPhone", TypeString},
		{"Shipping Name", "shippingName", TypeString},
		{"Shipping Street", "shippingStreet", TypeString},
		{"Shipping Address1", "shippingAddress1", TypeString},
		{"Shipping Address2", "shippingAddress2", TypeString},
		{"Shipping Company", "shippingCompany", TypeString},
		{"Shipping City", "shippingCity", TypeString},
		{"Shipping Zip", "shippingZip", TypeString},
		{"Shipping Province", "shippingProvince", TypeString},
		{"Shipping Country", "shippingCountry", TypeString},
		{"Shipping Phone", "shippingPhone", TypeString},
		{"Notes", "notes", TypeString},
		{"Note Attributes", "noteAttributes", TypeString},
		{"Cancelled at", "cancelledAt", TypeString},
		{"Payment Method", "paymentMethod", TypeString},
		{"Payment Reference", "paymentReference", TypeString},
		{"Refunded Amount", "refundedAmount", TypeNumber},
		{"Vendor", "vendor", TypeString},
		{"Outstanding Balance", "outstandingBalance", TypeNumber},
		{"Employee", "employee", TypeString},
		{"Location", "location", TypeString},
		{"Device ID", "deviceId", TypeString},
		{"Id", "id", TypeNumber},
		{"Tags", "tags", TypeString},
		{"Risk Level", "riskLevel", TypeString},
		{"Source", "source", TypeString},
		{"Lineitem discount", "lineitemDiscount", TypeNumber},
		{"Tax 1 Name", "tax1Name", TypeString},
		{"Tax 1 Value", "tax1Value", TypeString},
		{"Tax 2 Name", "tax2Name", TypeString},
		{"Tax 2 Value", "tax2Value", TypeString},
		{"Tax 3 Name", "tax3Name", TypeString},
		{"Tax 3 Value", "tax3Value", TypeString},
		{"Tax 4 Name", "tax4Name", TypeString},
		{"Tax 4 Value", "tax4Value", TypeString},
		{"Tax 5 Name", "tax5Name", TypeString},
		{"Tax 5 Value", "tax5Value", TypeString},
		{"Phone", "phone", TypeString},
		{"Receipt Number", "receiptNumber", TypeString},
		{"Duties", "duties", TypeString},
		{"Billing Province Name", "billingProvinceName", TypeString},
		{"Shipping Province Name", "shippingProvinceName", TypeString},
		{"Payment ID", "paymentId", TypeString},
		{"Payment Terms Name", "paymentTermsName", TypeString},
		{"Next Payment Due At", "nextPaymentDueAt", TypeString},
		{"Payment References", "paymentReferences", TypeString},
	},
}

// Shopee seller-center exports carry Thai headers.
var shopeeSchema = PlatformSchema{
	Platform:   models.PlatformShopee,
	Positional: true,
	StartRow:   2,
	Columns: []ColumnSpec{
		{"หมายเลขคำสั่งซื้อ", "orderId", TypeString},
		{"สถานะการสั่งซื้อ", "orderStatus", TypeString},
		{"สถานะการคืนเงินหรือคืนสินค้า", "refundStatus", TypeString},
		{"ชื่อผู้ใช้ (ผู้ซื้อ)", "buyerName", TypeString},
		{"วันที่ทำการสั่งซื้อ", "orderDate", TypeString},
		{"เวลาการชำระสินค้า", "paymentTime", TypeString},
		{"ช่องทางการชำระเงิน", "paymentMethod", TypeString},
		{"รายละเอียดช่องทางการชำระเงิน", "paymentDetails", TypeString},
		{"แผนการผ่อนชำระ", "installmentPlan", TypeString},
		{"เปอร์เซ็นต์ค่าธรรมเนียมการทำธุรกรรม", "transactionFeePercent", TypeString},
		{"ตัวเลือกการจัดส่ง", "shippingOption", TypeString},
		{"วิธีการจัดส่ง", "shippingMethod", TypeString},
		{"หมายเลขติดตามพัสดุ", "trackingNumber", TypeString},
		{"วันที่คาดว่าจะจัดส่งสินค้า", "estimatedDeliveryDate", TypeString},
		{"เวลาส่งสินค้า", "deliveryTime", TypeString},
		{"หมายเลขอ้างอิง Parent SKU", "parentSKURef", TypeString},
		{"ชื่อสินค้า", "productName", TypeString},
		{"เลขอ้างอิง SKU (SKU Reference No.)", "skuReferenceNo", TypeString},
		{"ชื่อตัวเลือกสินค้า", "optionName", TypeString},
		{"ราคาตั้งต้น", "originalPrice", TypeNumber},
		{"ราคาขาย", "salePrice", TypeNumber},
		{"จำนวน", "quantity", TypeNumber},
		{"จำนวนสินค้าที่คืน", "returnedQuantity", TypeNumber},
		{"ราคาขายสุทธิ", "netSalePrice", TypeNumber},
		{"ส่วนลดจาก Shopee", "shopeeDiscount", TypeNumber},
		{"โค้ดส่วนลดชำระโดยผู้ขาย", "sellerVoucher", TypeNumber},
		{"Seller เหรียญ Cashback", "coinsCashbackSeller", TypeNumber},
		{"โค้ดส่วนลดชำระโดย Shopee", "shopeeVoucher", TypeNumber},
		{"โค้ดส่วนลดของร้านค้า", "discountCode", TypeString},
		{"มีการซื้อขายผ่านโปรโมชั่นซื้อเป็นเซ็ตหรือไม่", "bundleDeal", TypeString},
		{"ส่วนลดเซ็ตสินค้าจากผู้ขาย", "bundleDiscountSeller", TypeNumber},
		{"ส่วนลดเซ็ตสินค้าจาก Shopee", "bundleDiscountShopee", TypeNumber},
		{"เหรียญที่ใช้", "coinsUsed", TypeNumber},
		{"โปรโมชั่นส่วนลดการชำระเงินทั้งหมด", "allPaymentPromotions", TypeNumber},
		{"ค่าคอมมิชชั่น", "commissionFee", TypeNumber},
		{"ค่าธรรมเนียมการทำธุรกรรม", "transactionFee", TypeNumber},
		{"จำนวนเงินทั้งหมดที่ผู้ซื้อชำระ", "totalBuyerPaid", TypeNumber},
		{"ค่าจัดส่งที่ชำระโดยผู้ซื้อ", "shippingFeeBuyer", TypeNumber},
		{"ค่าจัดส่งที่ Shopee ออกให้", "shippingFeeShopee", TypeNumber},
		{"ค่าจัดส่งสินค้าคืน", "returnShippingFee", TypeNumber},
		{"ค่าบริการ", "serviceFee", TypeNumber},
		{"จำนวนเงินทั้งหมด", "totalAmount", TypeNumber},
		{"ค่าจัดส่งโดยประมาณ", "estimatedShippingFee", TypeNumber},
		{"ชื่อผู้รับ", "receiverName", TypeString},
		{"หมายเลขโทรศัพท์", "receiverPhone", TypeString},
		{"หมายเหตุจากผู้ซื้อ", "buyerNote", TypeString},
		{"ที่อยู่ในการจัดส่ง", "shippingAddress", TypeString},
		{"ประเทศ", "shippingCountry", TypeString},
		{"จังหวัด", "shippingProvince", TypeString},
		{"เขต/อำเภอ", "shippingDistrict", TypeString},
		{"รหัสไปรษณีย์", "shippingPostalCode", TypeString},
		{"ประเภทคำสั่งซื้อ", "orderType", TypeString},
		{"เวลาที่คำสั่งซื้อสำเร็จ", "orderSuccessTime", TypeString},
		{"หมายเหตุ", "orderNotes", TypeString},
		{"ผู้ซื้อขอใบกำกับภาษี", "buyerInvoiceRequest", TypeString},
		{"ประเภทใบกำกับภาษี", "invoiceType", TypeString},
		{"ชื่อสำหรับใบกำกับภาษี", "invoiceName", TypeString},
		{"ประเภทสาขา", "invoiceBranchType", TypeString},
		{"ชื่อสาขา", "invoiceBranchName", TypeString},
		{"รหัสสาขา", "invoiceBranchCode", TypeString},
		{"ที่อยู่ใบกำกับภาษีแบบเต็ม", "invoiceFullAddress", TypeString},
		{"รายละเอียดที่อยู่ใบกำกับภาษี", "invoiceAddressDetails", TypeString},
		{"แขวง/ตำบล (ใบกำกับภาษี)", "invoiceSubDistrict", TypeString},
		{"เขต/อำเภอ (ใบกำกับภาษี)", "invoiceDistrict", TypeString},
		{"จังหวัด (ใบกำกับภาษี)", "invoiceProvince", TypeString},
		{"รหัสไปรษณีย์ (ใบกำกับภาษี)", "invoicePostalCode", TypeString},
		{"เลขประจำตัวผู้เสียภาษี", "taxpayerId", TypeString},
		{"หมายเลขโทรศัพท์ (ใบกำกับภาษี)", "invoicePhoneNumber", TypeString},
		{"อีเมล (ใบกำกับภาษี)", "invoiceEmail", TypeString},
		{"Category", "category", TypeString},
		{"SOR/APAS Number", "SOR_ApasNumber", TypeString},
		{"Code Sales", "codeSales", TypeString},
		{"ใบเสร็จ/ใบกำกับภาษี", "invoiceReceipt", TypeString},
	},
}

// TikTok exports have no stable column positions, so the layout is
// header-driven rather than positional.
var tiktokSchema = PlatformSchema{
	Platform:   models.PlatformTiktok,
	Positional: false,
	StartRow:   2,
	Columns: []ColumnSpec{
		{"Order ID", "orderId", TypeString},
		{"Order Status", "orderStatus", TypeString},
		{"Order Substatus", "orderSubstatus", TypeString},
		{"Cancelation/Return Type", "cancelationReturnType", TypeString},
		{"Normal or Pre-order", "normalOrPreOrder", TypeString},
		{"SKU ID", "skuId", TypeString},
		{"Seller SKU", "sellerSku", TypeNumber},
		{"Product Name", "productName", TypeString},
		{"Variation", "variation", TypeString},
		{"Quantity", "quantity", TypeNumber},
		{"Sku Quantity of return", "skuQuantityOfReturn", TypeNumber},
		{"SKU Unit Original Price", "skuUnitOriginalPrice", TypeNumber},
		{"SKU Subtotal Before Discount", "skuSubtotalBeforeDiscount", TypeNumber},
		{"SKU Platform Discount", "skuPlatformDiscount", TypeNumber},
		{"SKU Seller Discount", "skuSellerDiscount", TypeNumber},
		{"SKU Subtotal After Discount", "skuSubtotalAfterDiscount", TypeNumber},
		{"Shipping Fee After Discount", "shippingFeeAfterDiscount", TypeNumber},
		{"Original Shipping Fee", "originalShippingFee", TypeNumber},
		{"Shipping Fee Seller Discount", "shippingFeeSellerDiscount", TypeNumber},
		{"Shipping Fee Platform Discount", "shippingFeePlatformDiscount", TypeNumber},
		{"Taxes", "taxes", TypeNumber},
		{"Small Order Fee", "smallOrderFee", TypeNumber},
		{"Order Amount", "orderAmount", TypeNumber},
		{"Order Refund Amount", "orderRefundAmount", TypeNumber},
		{"Created Time", "createdTime", TypeString},
		{"Paid Time", "paidTime", TypeString},
		{"RTS Time", "rtsTime", TypeString},
		{"Shipped Time", "shippedTime", TypeString},
		{"Delivered Time", "deliveredTime", TypeString},
		{"Cancelled Time", "cancelledTime", TypeString},
		{"Cancel By", "cancelBy", TypeString},
		{"Cancel Reason", "cancelReason", TypeString},
		{"Fulfillment Type", "fulfillmentType", TypeString},
		{"Warehouse Name", "warehouseName", TypeString},
		{"Tracking ID", "trackingId", TypeString},
		{"Delivery Option", "deliveryOption", TypeString},
		{"Shipping Provider Name", "shippingProviderName", TypeString},
		{"Buyer Message", "buyerMessage", TypeString},
		{"Buyer Username", "buyerUsername", TypeString},
		{"Recipient", "recipient", TypeString},
		{"Phone #", "phone", TypeString},
		{"Zipcode", "zipcode", TypeString},
		{"Country", "country", TypeString},
		{"Province", "province", TypeString},
		{"District", "district", TypeString},
		{"Detail Address", "detailAddress", TypeString},
		{"Additional address information", "additionalAddressInformation", TypeString},
		{"Payment Method", "paymentMethod", TypeString},
		{"Weight(kg)", "weight", TypeNumber},
		{"Product Category", "productCategory", TypeString},
		{"Package ID", "packageId", TypeString},
		{"Seller Note", "sellerNote", TypeString},
		{"Checked Status", "checkedStatus", TypeString},
		{"Checked Marked by", "checkedMarkedBy", TypeString},
	},
}

var productMasterSchema = PlatformSchema{
	Platform:   models.PlatformProductMaster,
	Positional: true,
	StartRow:   2,
	Columns: []ColumnSpec{
		{"Plant", "plant", TypeString},
		{"Material", "material", TypeString},
		{"Material Number", "materialNumber", TypeString},
		{"MG1", "mg1", TypeString},
		{"MG2", "mg2", TypeString},
		{"Profit Center", "profitCenter", TypeString},
		{"Base Unit", "baseUnit", TypeString},
		{"Material Type", "materialType", TypeString},
		{"Profile", "profile", TypeString},
	},
}
