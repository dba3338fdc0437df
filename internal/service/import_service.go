package service

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"orderbridge/internal/excel"
	"orderbridge/internal/models"
	"orderbridge/internal/utils"
)

// FileImportResult is the outcome of processing one uploaded workbook.
// Orders is set for marketplace files, ProductMaster for catalog files.
type FileImportResult struct {
	Detection     excel.DetectionResult             `json:"detection"`
	Orders        *ImportOutcome                    `json:"orders,omitempty"`
	ProductMaster *models.ProductMasterImportResult `json:"productMaster,omitempty"`
}

// ImportService detects a workbook's platform and dispatches it to the
// matching pipeline.
type ImportService struct {
	shopify       *ShopifyService
	shopee        *ShopeeService
	tiktok        *TiktokService
	productMaster *ProductMasterService
	sheetIndex    int
	log           *logrus.Logger
}

func NewImportService(shopify *ShopifyService, shopee *ShopeeService, tiktok *TiktokService, productMaster *ProductMasterService, sheetIndex int) *ImportService {
	if sheetIndex < 1 {
		sheetIndex = 1
	}
	return &ImportService{
		shopify:       shopify,
		shopee:        shopee,
		tiktok:        tiktok,
		productMaster: productMaster,
		sheetIndex:    sheetIndex,
		log:           utils.GetLogger(),
	}
}

// DetectFile attributes an uploaded workbook to a platform. Files no
// platform claims are deleted so rejected uploads never linger on disk.
func (s *ImportService) DetectFile(path string) (excel.DetectionResult, error) {
	sheet, err := excel.Open(path, s.sheetIndex)
	if err != nil {
		return excel.DetectionResult{}, err
	}

	result := excel.DetectPlatform(sheet.Headers())
	if !result.IsValid {
		if err := os.Remove(path); err != nil {
			s.log.WithError(err).WithField("path", path).Warn("could not remove rejected upload")
		}
	}
	return result, nil
}

// ImportFile runs the whole pipeline for one workbook: read, detect,
// extract, then import through the platform's normalizer.
func (s *ImportService) ImportFile(ctx context.Context, userID int, path string) (*FileImportResult, error) {
	sheet, err := excel.Open(path, s.sheetIndex)
	if err != nil {
		return nil, err
	}

	detection := excel.DetectPlatform(sheet.Headers())
	if !detection.IsValid {
		if err := os.Remove(path); err != nil {
			s.log.WithError(err).WithField("path", path).Warn("could not remove rejected upload")
		}
		return &FileImportResult{Detection: detection}, nil
	}

	schema, ok := excel.SchemaFor(detection.DetectedPlatform)
	if !ok {
		return nil, fmt.Errorf("no schema for platform %s", detection.DetectedPlatform)
	}

	result := &FileImportResult{Detection: detection}
	switch detection.DetectedPlatform {
	case models.PlatformShopify:
		rows := excel.DecodeShopifyRows(excel.Extract(sheet, schema, excel.StaticOptions{}))
		result.Orders, err = s.shopify.ImportRows(ctx, userID, rows)
	case models.PlatformShopee:
		rows := excel.DecodeShopeeRows(excel.Extract(sheet, schema, excel.StaticOptions{}))
		result.Orders, err = s.shopee.ImportRows(ctx, userID, rows)
	case models.PlatformTiktok:
		rows := excel.DecodeTiktokRows(excel.Extract(sheet, schema, excel.StaticOptions{}))
		result.Orders, err = s.tiktok.ImportRows(ctx, userID, rows)
	case models.PlatformProductMaster:
		rows := excel.DecodeProductMasterRows(excel.Extract(sheet, schema, excel.StaticOptions{StripQuotes: true}))
		result.ProductMaster, err = s.productMaster.ImportRows(ctx, rows)
	default:
		return nil, fmt.Errorf("unhandled platform %s", detection.DetectedPlatform)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
