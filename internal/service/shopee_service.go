package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"orderbridge/internal/models"
	"orderbridge/internal/utils"
)

// Shopee channel defaults for the downstream ERP.
const (
	shopeeAccountCode     int64 = 9155000390
	shopeeSalesmanCode          = 115
	shopeePlant                 = "ZT40"
	shopeeStorageLocation       = "ZT45"
)

// Thai seller-center status for cancelled orders.
const shopeeStatusCancelled = "ยกเลิกแล้ว"

// ShopeeService turns Shopee export rows into canonical transactions.
type ShopeeService struct {
	orders    OrderStore
	platforms PlatformStore
	records   ShopeeStore
	products  ProductMasterStore
	vatRates  VatRateStore
	validate  *ValidateService
	log       *logrus.Logger
}

func NewShopeeService(orders OrderStore, platforms PlatformStore, records ShopeeStore, products ProductMasterStore, vatRates VatRateStore, validate *ValidateService) *ShopeeService {
	return &ShopeeService{
		orders:    orders,
		platforms: platforms,
		records:   records,
		products:  products,
		vatRates:  vatRates,
		validate:  validate,
		log:       utils.GetLogger(),
	}
}

// normalizeRow builds the canonical draft for one Shopee line.
func (s *ShopeeService) normalizeRow(row models.ShopeeRow, masters map[string]models.ProductMaster) models.OrderTransactionDraft {
	invoiceMode := row.BuyerInvoiceRequest == "Yes"

	var (
		name, name2, address, postCode, city string
		address2, address3, tel, taxID       *string
	)

	if invoiceMode {
		name, name2 = utils.SplitByLength(row.InvoiceName, 30)
		addr := truncateAtSubdistrict(row.InvoiceFullAddress, row.InvoiceSubDistrict)
		var rest string
		address, rest = utils.SplitByLength(addr, 25)
		if rest != "" {
			address2 = &rest
		}
		if row.InvoiceSubDistrict != "" || row.InvoiceDistrict != "" {
			a3 := strings.TrimSpace(row.InvoiceSubDistrict + " " + row.InvoiceDistrict)
			address3 = &a3
		}
		postCode = row.InvoicePostalCode
		city = row.InvoiceProvince
		if row.InvoicePhoneNumber != "" {
			tel = &row.InvoicePhoneNumber
		}
		padded := padTaxpayerID(row.TaxpayerID)
		taxID = &padded
	} else {
		name, name2 = utils.SplitByLength(row.BuyerName, 30)
		addr := cleanShippingAddress(row.ShippingAddress)
		var rest string
		address, rest = utils.SplitByLength(addr, 35)
		if rest != "" {
			address2 = &rest
		}
		if row.ShippingDistrict != "" {
			a3 := row.ShippingDistrict
			address3 = &a3
		}
		postCode = row.ShippingPostalCode
		city = row.ShippingProvince
	}

	itemCat := "TAN"
	var mg4 *string
	if row.SalePrice == 0 {
		itemCat = "ZFRC"
		code := freeOfChargeMg4
		mg4 = &code
	}

	material := strings.TrimSpace(row.SkuReferenceNo)

	var uom, profitCenter string
	if master, ok := masters[material]; ok {
		if master.BaseUnit != nil {
			uom = *master.BaseUnit
		}
		if master.ProfitCenter != nil {
			profitCenter = *master.ProfitCenter
		}
	}

	return models.OrderTransactionDraft{
		AccountCode:         shopeeAccountCode,
		SalesmanCode:        shopeeSalesmanCode,
		PurchaseOrder:       row.OrderID,
		InvoiceDate:         utils.ParseFlexibleDate(row.OrderDate),
		Name:                name,
		Name2:               name2,
		Address:             address,
		Address2:            address2,
		Address3:            address3,
		PostCode:            postCode,
		City:                city,
		Country:             destinationCountry,
		Tel:                 tel,
		RequireTaxInvoice:   invoiceMode,
		TaxID:               taxID,
		MaterialProductCode: material,
		ItemCat:             itemCat,
		Quantity:            row.Quantity,
		Mg4:                 mg4,
		ProfitCenter:        profitCenter,
		UOM:                 uom,
		Plant:               shopeePlant,
		StorageLocation:     shopeeStorageLocation,
		SORPrice:            row.NetSalePrice,
		TotalPrice:          row.NetSalePrice,
	}
}

// ImportRows runs the full Shopee pipeline: filter, normalize, validate,
// duplicate pre-check, VAT extraction, then upsert row by row.
func (s *ShopeeService) ImportRows(ctx context.Context, userID int, rows []models.ShopeeRow) (*ImportOutcome, error) {
	filtered := make([]models.ShopeeRow, 0, len(rows))
	for _, row := range rows {
		if row.BuyerName != "" && row.OrderID != "" && row.OrderStatus != shopeeStatusCancelled {
			filtered = append(filtered, row)
		}
	}

	masters, err := s.lookupMasters(ctx, filtered)
	if err != nil {
		return nil, err
	}

	summary := models.TransactionSummary{
		Platform:  models.PlatformShopee,
		TotalRows: len(rows),
		Skipped:   len(rows) - len(filtered),
	}

	drafts := make([]models.OrderTransactionDraft, 0, len(filtered))
	for _, row := range filtered {
		drafts = append(drafts, s.normalizeRow(row, masters))
	}

	validation, err := s.validate.ValidateBatch(ctx, drafts)
	if err != nil {
		return nil, err
	}
	if !validation.Checker {
		return &ImportOutcome{Validation: validation, Summary: summary}, nil
	}

	candidates := make([]models.ShopeeOrderRecord, 0, len(filtered))
	for _, row := range filtered {
		candidates = append(candidates, models.ShopeeOrderRecord{
			OrderID:        row.OrderID,
			BuyerName:      row.BuyerName,
			SkuReferenceNo: strings.TrimSpace(row.SkuReferenceNo),
		})
	}
	existing, err := s.records.FindExisting(ctx, candidates)
	if err != nil {
		return nil, err
	}

	rate, err := s.vatRates.FindRateByCountry(ctx, destinationCountry)
	if err != nil {
		return nil, err
	}

	platformID, err := s.platforms.EnsureID(ctx, models.PlatformShopee)
	if err != nil {
		return nil, err
	}

	for i, draft := range drafts {
		row := filtered[i]
		if draft.Quantity != 0 {
			exVat, _ := ExtractVat(draft.SORPrice/draft.Quantity, rate)
			draft.SORPrice = exVat
		}

		payload, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("marshal shopee row: %w", err)
		}
		record := models.ShopeeOrderRecord{
			OrderID:        row.OrderID,
			BuyerName:      row.BuyerName,
			SkuReferenceNo: strings.TrimSpace(row.SkuReferenceNo),
			OrderStatus:    row.OrderStatus,
			Payload:        string(payload),
		}
		if err := s.records.Upsert(ctx, record); err != nil {
			return nil, err
		}

		if _, err := s.orders.Upsert(ctx, userID, platformID, draft); err != nil {
			return nil, err
		}
		if existing[shopeeKey(record)] {
			summary.Duplicates++
			summary.DuplicatedRows = append(summary.DuplicatedRows, draft)
		} else {
			summary.Imported++
		}
		summary.Transactions = append(summary.Transactions, draft)
	}

	s.log.WithFields(logrus.Fields{
		"platform":   models.PlatformShopee,
		"imported":   summary.Imported,
		"duplicates": summary.Duplicates,
		"skipped":    summary.Skipped,
	}).Info("shopee import finished")

	return &ImportOutcome{Validation: validation, Summary: summary}, nil
}

func shopeeKey(rec models.ShopeeOrderRecord) string {
	return rec.OrderID + "|" + rec.BuyerName + "|" + rec.SkuReferenceNo
}

func (s *ShopeeService) lookupMasters(ctx context.Context, rows []models.ShopeeRow) (map[string]models.ProductMaster, error) {
	var materials []string
	seen := make(map[string]bool)
	for _, row := range rows {
		material := strings.TrimSpace(row.SkuReferenceNo)
		if material != "" && !seen[material] {
			seen[material] = true
			materials = append(materials, material)
		}
	}
	masters, err := s.products.FindByMaterials(ctx, materials)
	if err != nil {
		return nil, fmt.Errorf("lookup product masters: %w", err)
	}
	return masters, nil
}
