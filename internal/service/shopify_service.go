package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"orderbridge/internal/models"
	"orderbridge/internal/utils"
)

// Shopify channel defaults for the downstream ERP.
const (
	shopifyAccountCode     int64 = 9155000402
	shopifySalesmanCode          = 115
	shopifyPlant                 = "ZT50"
	shopifyStorageLocation       = "ZT50"
)

const freeOfChargeMg4 = "ZZZ"

var thirteenDigits = regexp.MustCompile(`\b\d{13}\b`)

// ShopifyService turns Shopify export rows into canonical transactions.
type ShopifyService struct {
	orders    OrderStore
	platforms PlatformStore
	records   ShopifyStore
	products  ProductMasterStore
	vatRates  VatRateStore
	validate  *ValidateService
	log       *logrus.Logger
}

func NewShopifyService(orders OrderStore, platforms PlatformStore, records ShopifyStore, products ProductMasterStore, vatRates VatRateStore, validate *ValidateService) *ShopifyService {
	return &ShopifyService{
		orders:    orders,
		platforms: platforms,
		records:   records,
		products:  products,
		vatRates:  vatRates,
		validate:  validate,
		log:       utils.GetLogger(),
	}
}

// shopifyLine pairs a source row with its prorated line total.
type shopifyLine struct {
	row               models.ShopifyRow
	total             float64
	subtotalErrorCase bool
}

// ParseNoteAttributes reads the "Key: Value" lines Shopify stores in the
// note attributes cell.
func ParseNoteAttributes(raw string) models.TaxCustomData {
	var data models.TaxCustomData
	for _, line := range strings.Split(raw, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "TaxCustomType":
			data.TaxCustomType = value
		case "TaxCustomName":
			data.TaxCustomName = value
		case "TaxCustomValid":
			data.TaxCustomValid = value
		case "TaxCustomID":
			data.TaxCustomID = value
		case "TaxCustomAddress1":
			data.TaxCustomAddress1 = value
		case "TaxCustomAddress2":
			data.TaxCustomAddress2 = value
		case "TaxCustomDistrict":
			data.TaxCustomDistrict = value
		case "TaxCustomSubdistrict":
			data.TaxCustomSubdistrict = value
		case "TaxCustomPhone":
			data.TaxCustomPhone = value
		case "TaxCustomProvince":
			data.TaxCustomProvince = value
		case "TaxCustomPostcode":
			data.TaxCustomPostcode = value
		}
	}
	return data
}

// prorateOrderLines distributes the order-level discount and shipping
// across lines in proportion to each line's share of the subtotal. The
// reported subtotal on the first line is cross-checked against the
// computed one; a mismatch flags every line of the order.
func prorateOrderLines(group []models.ShopifyRow) []shopifyLine {
	var orderDiscount float64
	for _, row := range group {
		if row.DiscountAmount != nil {
			orderDiscount = *row.DiscountAmount
			break
		}
	}

	var subtotal, shippingTotal float64
	for _, row := range group {
		subtotal += row.LineitemQuantity * row.LineitemPrice
		shippingTotal += row.Shipping
	}

	subtotalErrorCase := Round2(subtotal) != Round2(group[0].Subtotal)

	lines := make([]shopifyLine, 0, len(group))
	for _, row := range group {
		lineSubtotal := row.LineitemQuantity * row.LineitemPrice
		var discountPerItem float64
		if subtotal != 0 {
			discountPerItem = (orderDiscount + shippingTotal) * (lineSubtotal / subtotal)
		}
		lines = append(lines, shopifyLine{
			row:               row,
			total:             Round2(lineSubtotal - discountPerItem),
			subtotalErrorCase: subtotalErrorCase,
		})
	}
	return lines
}

// normalizeLine builds the canonical draft for one prorated line.
func (s *ShopifyService) normalizeLine(line shopifyLine, masters map[string]models.ProductMaster) models.OrderTransactionDraft {
	row := line.row
	tax := ParseNoteAttributes(row.NoteAttributes)
	requireTaxInvoice := tax.TaxCustomValid == "true"

	var (
		name, name2, address, postCode, city string
		address2, address3, tel, taxID       *string
	)

	if requireTaxInvoice {
		name, name2 = utils.SplitByLength(tax.TaxCustomName, 30)
		addr := truncateAtSubdistrict(tax.TaxCustomAddress1, tax.TaxCustomSubdistrict)
		var rest string
		address, rest = utils.SplitByLength(addr, 30)
		if rest != "" {
			address2 = &rest
		}
		if tax.TaxCustomSubdistrict != "" || tax.TaxCustomDistrict != "" {
			a3 := strings.TrimSpace(tax.TaxCustomSubdistrict + " " + tax.TaxCustomDistrict)
			address3 = &a3
		}
		postCode = tax.TaxCustomPostcode
		city = tax.TaxCustomProvince
		if tax.TaxCustomPhone != "" {
			tel = &tax.TaxCustomPhone
		}
		if tax.TaxCustomID != "" {
			taxID = &tax.TaxCustomID
		}
	} else {
		name, name2 = utils.SplitByLength(row.BillingName, 30)
		var rest string
		address, rest = utils.SplitByLength(row.BillingAddress1, 35)
		if rest != "" {
			address2 = &rest
		}
		postCode = stripLeadingApostrophe(row.BillingZip)
		city = row.BillingProvinceName
		if city == "" {
			city = row.BillingProvince
		}
		if row.BillingPhone != "" {
			tel = &row.BillingPhone
		}
		if match := thirteenDigits.FindString(row.Notes); match != "" {
			taxID = &match
		}
	}

	itemCat := "TAN"
	var mg4 *string
	if line.total == 0 {
		itemCat = "ZFRC"
		code := freeOfChargeMg4
		mg4 = &code
	}

	var uom, profitCenter string
	if master, ok := masters[row.LineitemSku]; ok {
		if master.BaseUnit != nil {
			uom = *master.BaseUnit
		}
		if master.ProfitCenter != nil {
			profitCenter = *master.ProfitCenter
		}
	}

	return models.OrderTransactionDraft{
		AccountCode:         shopifyAccountCode,
		SalesmanCode:        shopifySalesmanCode,
		PurchaseOrder:       row.Name,
		InvoiceDate:         utils.ParseFlexibleDate(row.CreatedAt),
		Name:                name,
		Name2:               name2,
		Address:             address,
		Address2:            address2,
		Address3:            address3,
		PostCode:            postCode,
		City:                city,
		Country:             destinationCountry,
		Tel:                 tel,
		RequireTaxInvoice:   requireTaxInvoice,
		TaxID:               taxID,
		MaterialProductCode: row.LineitemSku,
		ItemCat:             itemCat,
		Quantity:            row.LineitemQuantity,
		Mg4:                 mg4,
		ProfitCenter:        profitCenter,
		UOM:                 uom,
		Plant:               shopifyPlant,
		StorageLocation:     shopifyStorageLocation,
		SORPrice:            line.total,
		TotalPrice:          line.total,
	}
}

// ImportRows runs the full Shopify pipeline: filter, prorate, normalize,
// validate, extract VAT, then upsert row by row.
func (s *ShopifyService) ImportRows(ctx context.Context, userID int, rows []models.ShopifyRow) (*ImportOutcome, error) {
	filtered := make([]models.ShopifyRow, 0, len(rows))
	for _, row := range rows {
		if row.Name != "" && row.CreatedAt != "" && row.LineitemSku != "" {
			filtered = append(filtered, row)
		}
	}

	// Group lines by order name, preserving first-seen order.
	groups := make(map[string][]models.ShopifyRow)
	var orderNames []string
	for _, row := range filtered {
		if _, ok := groups[row.Name]; !ok {
			orderNames = append(orderNames, row.Name)
		}
		groups[row.Name] = append(groups[row.Name], row)
	}

	var lines []shopifyLine
	for _, name := range orderNames {
		lines = append(lines, prorateOrderLines(groups[name])...)
	}

	masters, err := s.lookupMasters(ctx, filtered)
	if err != nil {
		return nil, err
	}

	summary := models.TransactionSummary{
		Platform:  models.PlatformShopify,
		TotalRows: len(rows),
	}

	var (
		importable []models.OrderTransactionDraft
		sourceRows []models.ShopifyRow
		priceBad   []models.OrderTransactionDraft
		expired    []models.OrderTransactionDraft
	)
	for _, line := range lines {
		draft := s.normalizeLine(line, masters)
		status := strings.ToLower(line.row.FinancialStatus)
		switch {
		case status == "paid" && !line.subtotalErrorCase:
			importable = append(importable, draft)
			sourceRows = append(sourceRows, line.row)
		case status == "paid":
			priceBad = append(priceBad, draft)
		case status == "expired":
			expired = append(expired, draft)
		default:
			summary.Skipped++
		}
	}
	if len(priceBad) > 0 {
		summary.Errors = append(summary.Errors, models.ImportErrorSummary{
			Reason: models.ReasonPriceUnitInvalid,
			Count:  len(priceBad),
			Rows:   priceBad,
		})
	}
	if len(expired) > 0 {
		summary.Errors = append(summary.Errors, models.ImportErrorSummary{
			Reason: models.ReasonOrderExpired,
			Count:  len(expired),
			Rows:   expired,
		})
	}

	validation, err := s.validate.ValidateBatch(ctx, importable)
	if err != nil {
		return nil, err
	}
	if !validation.Checker {
		return &ImportOutcome{Validation: validation, Summary: summary}, nil
	}

	rate, err := s.vatRates.FindRateByCountry(ctx, destinationCountry)
	if err != nil {
		return nil, err
	}

	platformID, err := s.platforms.EnsureID(ctx, models.PlatformShopify)
	if err != nil {
		return nil, err
	}

	for i, draft := range importable {
		row := sourceRows[i]
		if draft.Quantity != 0 {
			exVat, _ := ExtractVat(draft.SORPrice/draft.Quantity, rate)
			draft.SORPrice = exVat
		}

		payload, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("marshal shopify row: %w", err)
		}
		if err := s.records.Upsert(ctx, models.ShopifyOrderRecord{
			OrderName:       row.Name,
			LineitemSku:     row.LineitemSku,
			FinancialStatus: row.FinancialStatus,
			Payload:         string(payload),
		}); err != nil {
			return nil, err
		}

		created, err := s.orders.Upsert(ctx, userID, platformID, draft)
		if err != nil {
			return nil, err
		}
		if created {
			summary.Imported++
		} else {
			summary.Duplicates++
			summary.DuplicatedRows = append(summary.DuplicatedRows, draft)
		}
		summary.Transactions = append(summary.Transactions, draft)
	}

	s.log.WithFields(logrus.Fields{
		"platform":   models.PlatformShopify,
		"imported":   summary.Imported,
		"duplicates": summary.Duplicates,
		"skipped":    summary.Skipped,
	}).Info("shopify import finished")

	return &ImportOutcome{Validation: validation, Summary: summary}, nil
}

func (s *ShopifyService) lookupMasters(ctx context.Context, rows []models.ShopifyRow) (map[string]models.ProductMaster, error) {
	var materials []string
	seen := make(map[string]bool)
	for _, row := range rows {
		if row.LineitemSku != "" && !seen[row.LineitemSku] {
			seen[row.LineitemSku] = true
			materials = append(materials, row.LineitemSku)
		}
	}
	masters, err := s.products.FindByMaterials(ctx, materials)
	if err != nil {
		return nil, fmt.Errorf("lookup product masters: %w", err)
	}
	return masters, nil
}

// ImportOutcome bundles the validation verdict with the import summary.
// When validation fails the summary only carries pre-validation stats and
// nothing has been persisted.
type ImportOutcome struct {
	Validation models.BatchResult        `json:"validation"`
	Summary    models.TransactionSummary `json:"summary"`
}
