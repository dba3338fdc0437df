package excel

import (
	"github.com/spf13/cast"

	"orderbridge/internal/models"
)

func str(m map[string]any, k string) string {
	if m[k] == nil {
		return ""
	}
	return cast.ToString(m[k])
}

func num(m map[string]any, k string) float64 {
	if m[k] == nil {
		return 0
	}
	return cast.ToFloat64(m[k])
}

func boolVal(m map[string]any, k string) bool {
	if m[k] == nil {
		return false
	}
	return cast.ToBool(m[k])
}

func numPtr(m map[string]any, k string) *float64 {
	v, ok := m[k]
	if !ok || v == nil {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil
	}
	return &f
}

func strPtr(m map[string]any, k string) *string {
	v, ok := m[k]
	if !ok || v == nil {
		return nil
	}
	s := cast.ToString(v)
	if s == "" {
		return nil
	}
	return &s
}

// DecodeShopifyRows turns extracted key-value rows into typed records.
func DecodeShopifyRows(rows []map[string]any) []models.ShopifyRow {
	out := make([]models.ShopifyRow, 0, len(rows))
	for _, m := range rows {
		out = append(out, models.ShopifyRow{
			Name:                      str(m, "name"),
			Email:                     str(m, "email"),
			FinancialStatus:           str(m, "financialStatus"),
			PaidAt:                    str(m, "paidAt"),
			FulfillmentStatus:         str(m, "fulfillmentStatus"),
			FulfilledAt:               str(m, "fulfilledAt"),
			AcceptsMarketing:          str(m, "acceptsMarketing"),
			Currency:                  str(m, "currency"),
			Subtotal:                  num(m, "subtotal"),
			Shipping:                  num(m, "shipping"),
			Taxes:                     num(m, "taxes"),
			Total:                     num(m, "total"),
			DiscountCode:              str(m, "discountCode"),
			DiscountAmount:            numPtr(m, "discountAmount"),
			ShippingMethod:            str(m, "shippingMethod"),
			CreatedAt:                 str(m, "createdAt"),
			LineitemQuantity:          num(m, "lineitemQuantity"),
			LineitemName:              str(m, "lineitemName"),
			LineitemPrice:             num(m, "lineitemPrice"),
			LineitemCompareAtPrice:    num(m, "lineitemCompareAtPrice"),
			LineitemSku:               str(m, "lineitemSku"),
			LineitemRequiresShipping:  boolVal(m, "lineitemRequiresShipping"),
			LineitemTaxable:           boolVal(m, "lineitemTaxable"),
			LineitemFulfillmentStatus: str(m, "lineitemFulfillmentStatus"),
			BillingName:               str(m, "billingName"),
			BillingStreet:             str(m, "billingStreet"),
			BillingAddress1:           str(m, "billingAddress1"),
			BillingAddress2:           str(m, "billingAddress2"),
			BillingCompany:            str(m, "billingCompany"),
			BillingCity:               str(m, "billingCity"),
			BillingZip:                str(m, "billingZip"),
			BillingProvince:           str(m, "billingProvince"),
			BillingCountry:            str(m, "billingCountry"),
			BillingPhone:              str(m, "billingPhone"),
			ShippingName:              str(m, "shippingName"),
			ShippingStreet:            str(m, "shippingStreet"),
			ShippingAddress1:          str(m, "shippingAddress1"),
			ShippingAddress2:          str(m, "shippingAddress2"),
			ShippingCompany:           str(m, "shippingCompany"),
			ShippingCity:              str(m, "shippingCity"),
			ShippingZip:               str(m, "shippingZip"),
			ShippingProvince:          str(m, "shippingProvince"),
			ShippingCountry:           str(m, "shippingCountry"),
			ShippingPhone:             str(m, "shippingPhone"),
			Notes:                     str(m, "notes"),
			NoteAttributes:            str(m, "noteAttributes"),
			CancelledAt:               str(m, "cancelledAt"),
			PaymentMethod:             str(m, "paymentMethod"),
			PaymentReference:          str(m, "paymentReference"),
			RefundedAmount:            num(m, "refundedAmount"),
			Vendor:                    str(m, "vendor"),
			OutstandingBalance:        num(m, "outstandingBalance"),
			Employee:                  str(m, "employee"),
			Location:                  str(m, "location"),
			DeviceID:                  str(m, "deviceId"),
			OrderID:                   num(m, "id"),
			Tags:                      str(m, "tags"),
			RiskLevel:                 str(m, "riskLevel"),
			Source:                    str(m, "source"),
			LineitemDiscount:          num(m, "lineitemDiscount"),
			Tax1Name:                  str(m, "tax1Name"),
			Tax1Value:                 str(m, "tax1Value"),
			Tax2Name:                  str(m, "tax2Name"),
			Tax2Value:                 str(m, "tax2Value"),
			Tax3Name:                  str(m, "tax3Name"),
			Tax3Value:                 str(m, "tax3Value"),
			Tax4Name:                  str(m, "tax4Name"),
			Tax4Value:                 str(m, "tax4Value"),
			Tax5Name:                  str(m, "tax5Name"),
			Tax5Value:                 str(m, "tax5Value"),
			Phone:                     str(m, "phone"),
			ReceiptNumber:             str(m, "receiptNumber"),
			Duties:                    str(m, "duties"),
			BillingProvinceName:       str(m, "billingProvinceName"),
			ShippingProvinceName:      str(m, "shippingProvinceName"),
			PaymentID:                 str(m, "paymentId"),
			PaymentTermsName:          str(m, "paymentTermsName"),
			NextPaymentDueAt:          str(m, "nextPaymentDueAt"),
			PaymentReferences:         str(m, "paymentReferences"),
		})
	}
	return out
}

// DecodeShopeeRows turns extracted key-value rows into typed records.
func DecodeShopeeRows(rows []map[string]any) []models.ShopeeRow {
	out := make([]models.ShopeeRow, 0, len(rows))
	for _, m := range rows {
		out = append(out, models.ShopeeRow{
			OrderID:               str(m, "orderId"),
			OrderStatus:           str(m, "orderStatus"),
			RefundStatus:          str(m, "refundStatus"),
			BuyerName:             str(m, "buyerName"),
			OrderDate:             str(m, "orderDate"),
			PaymentTime:           str(m, "paymentTime"),
			PaymentMethod:         str(m, "paymentMethod"),
			PaymentDetails:        str(m, "paymentDetails"),
			InstallmentPlan:       str(m, "installmentPlan"),
			TransactionFeePercent: str(m, "transactionFeePercent"),
			ShippingOption:        str(m, "shippingOption"),
			ShippingMethod:        str(m, "shippingMethod"),
			TrackingNumber:        str(m, "trackingNumber"),
			EstimatedDeliveryDate: str(m, "estimatedDeliveryDate"),
			DeliveryTime:          str(m, "deliveryTime"),
			ParentSKURef:          str(m, "parentSKURef"),
			ProductName:           str(m, "productName"),
			SkuReferenceNo:        str(m, "skuReferenceNo"),
			OptionName:            str(m, "optionName"),
			OriginalPrice:         num(m, "originalPrice"),
			SalePrice:             num(m, "salePrice"),
			Quantity:              num(m, "quantity"),
			ReturnedQuantity:      num(m, "returnedQuantity"),
			NetSalePrice:          num(m, "netSalePrice"),
			ShopeeDiscount:        num(m, "shopeeDiscount"),
			SellerVoucher:         num(m, "sellerVoucher"),
			CoinsCashbackSeller:   num(m, "coinsCashbackSeller"),
			ShopeeVoucher:         num(m, "shopeeVoucher"),
			DiscountCode:          str(m, "discountCode"),
			BundleDeal:            str(m, "bundleDeal"),
			BundleDiscountSeller:  num(m, "bundleDiscountSeller"),
			BundleDiscountShopee:  num(m, "bundleDiscountShopee"),
			CoinsUsed:             num(m, "coinsUsed"),
			AllPaymentPromotions:  num(m, "allPaymentPromotions"),
			CommissionFee:         num(m, "commissionFee"),
			TransactionFee:        num(m, "transactionFee"),
			TotalBuyerPaid:        num(m, "totalBuyerPaid"),
			ShippingFeeBuyer:      num(m, "shippingFeeBuyer"),
			ShippingFeeShopee:     num(m, "shippingFeeShopee"),
			ReturnShippingFee:     num(m, "returnShippingFee"),
			ServiceFee:            num(m, "serviceFee"),
			TotalAmount:           num(m, "totalAmount"),
			EstimatedShippingFee:  num(m, "estimatedShippingFee"),
			ReceiverName:          str(m, "receiverName"),
			ReceiverPhone:         str(m, "receiverPhone"),
			BuyerNote:             str(m, "buyerNote"),
			ShippingAddress:       str(m, "shippingAddress"),
			ShippingCountry:       str(m, "shippingCountry"),
			ShippingProvince:      str(m, "shippingProvince"),
			ShippingDistrict:      str(m, "shippingDistrict"),
			ShippingPostalCode:    str(m, "shippingPostalCode"),
			OrderType:             str(m, "orderType"),
			OrderSuccessTime:      str(m, "orderSuccessTime"),
			OrderNotes:            str(m, "orderNotes"),
			BuyerInvoiceRequest:   str(m, "buyerInvoiceRequest"),
			InvoiceType:           str(m, "invoiceType"),
			InvoiceName:           str(m, "invoiceName"),
			InvoiceBranchType:     str(m, "invoiceBranchType"),
			InvoiceBranchName:     str(m, "invoiceBranchName"),
			InvoiceBranchCode:     str(m, "invoiceBranchCode"),
			InvoiceFullAddress:    str(m, "invoiceFullAddress"),
			InvoiceAddressDetails: str(m, "invoiceAddressDetails"),
			InvoiceSubDistrict:    str(m, "invoiceSubDistrict"),
			InvoiceDistrict:       str(m, "invoiceDistrict"),
			InvoiceProvince:       str(m, "invoiceProvince"),
			InvoicePostalCode:     str(m, "invoicePostalCode"),
			TaxpayerID:            str(m, "taxpayerId"),
			InvoicePhoneNumber:    str(m, "invoicePhoneNumber"),
			InvoiceEmail:          str(m, "invoiceEmail"),
			Category:              str(m, "category"),
			SORApasNumber:         str(m, "SOR_ApasNumber"),
			CodeSales:             str(m, "codeSales"),
			InvoiceReceipt:        str(m, "invoiceReceipt"),
		})
	}
	return out
}

// DecodeTiktokRows turns extracted key-value rows into typed records.
func DecodeTiktokRows(rows []map[string]any) []models.TiktokRow {
	out := make([]models.TiktokRow, 0, len(rows))
	for _, m := range rows {
		out = append(out, models.TiktokRow{
			OrderID:                      str(m, "orderId"),
			OrderStatus:                  str(m, "orderStatus"),
			OrderSubstatus:               str(m, "orderSubstatus"),
			CancelationReturnType:        str(m, "cancelationReturnType"),
			NormalOrPreOrder:             str(m, "normalOrPreOrder"),
			SkuID:                        str(m, "skuId"),
			SellerSku:                    num(m, "sellerSku"),
			ProductName:                  str(m, "productName"),
			Variation:                    str(m, "variation"),
			Quantity:                     num(m, "quantity"),
			SkuQuantityOfReturn:          num(m, "skuQuantityOfReturn"),
			SkuUnitOriginalPrice:         num(m, "skuUnitOriginalPrice"),
			SkuSubtotalBeforeDiscount:    num(m, "skuSubtotalBeforeDiscount"),
			SkuPlatformDiscount:          num(m, "skuPlatformDiscount"),
			SkuSellerDiscount:            num(m, "skuSellerDiscount"),
			SkuSubtotalAfterDiscount:     num(m, "skuSubtotalAfterDiscount"),
			ShippingFeeAfterDiscount:     num(m, "shippingFeeAfterDiscount"),
			OriginalShippingFee:          num(m, "originalShippingFee"),
			ShippingFeeSellerDiscount:    num(m, "shippingFeeSellerDiscount"),
			ShippingFeePlatformDiscount:  num(m, "shippingFeePlatformDiscount"),
			Taxes:                        num(m, "taxes"),
			SmallOrderFee:                num(m, "smallOrderFee"),
			OrderAmount:                  num(m, "orderAmount"),
			OrderRefundAmount:            num(m, "orderRefundAmount"),
			CreatedTime:                  str(m, "createdTime"),
			PaidTime:                     str(m, "paidTime"),
			RtsTime:                      str(m, "rtsTime"),
			ShippedTime:                  str(m, "shippedTime"),
			DeliveredTime:                str(m, "deliveredTime"),
			CancelledTime:                str(m, "cancelledTime"),
			CancelBy:                     str(m, "cancelBy"),
			CancelReason:                 str(m, "cancelReason"),
			FulfillmentType:              str(m, "fulfillmentType"),
			WarehouseName:                str(m, "warehouseName"),
			TrackingID:                   str(m, "trackingId"),
			DeliveryOption:               str(m, "deliveryOption"),
			ShippingProviderName:         str(m, "shippingProviderName"),
			BuyerMessage:                 str(m, "buyerMessage"),
			BuyerUsername:                str(m, "buyerUsername"),
			Recipient:                    str(m, "recipient"),
			Phone:                        str(m, "phone"),
			Zipcode:                      str(m, "zipcode"),
			Country:                      str(m, "country"),
			Province:                     str(m, "province"),
			District:                     str(m, "district"),
			DetailAddress:                str(m, "detailAddress"),
			AdditionalAddressInformation: str(m, "additionalAddressInformation"),
			PaymentMethod:                str(m, "paymentMethod"),
			Weight:                       num(m, "weight"),
			ProductCategory:              str(m, "productCategory"),
			PackageID:                    str(m, "packageId"),
			SellerNote:                   str(m, "sellerNote"),
			CheckedStatus:                str(m, "checkedStatus"),
			CheckedMarkedBy:              str(m, "checkedMarkedBy"),
		})
	}
	return out
}

// DecodeProductMasterRows keeps pointer fields so the importer can drop
// rows with missing identity columns.
func DecodeProductMasterRows(rows []map[string]any) []models.ProductMasterRow {
	out := make([]models.ProductMasterRow, 0, len(rows))
	for _, m := range rows {
		out = append(out, models.ProductMasterRow{
			Plant:          strPtr(m, "plant"),
			Material:       strPtr(m, "material"),
			MaterialNumber: strPtr(m, "materialNumber"),
			Mg1:            strPtr(m, "mg1"),
			Mg2:            strPtr(m, "mg2"),
			ProfitCenter:   strPtr(m, "profitCenter"),
			BaseUnit:       strPtr(m, "baseUnit"),
			MaterialType:   strPtr(m, "materialType"),
			Profile:        strPtr(m, "profile"),
		})
	}
	return out
}
