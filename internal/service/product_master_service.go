package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"orderbridge/internal/models"
	"orderbridge/internal/utils"
)

const (
	productMasterChunkSize   = 1000
	productMasterConcurrency = 50
)

// ProductMasterService refreshes the material catalog from an uploaded
// workbook.
type ProductMasterService struct {
	store ProductMasterStore
	log   *logrus.Logger
}

func NewProductMasterService(store ProductMasterStore) *ProductMasterService {
	return &ProductMasterService{store: store, log: utils.GetLogger()}
}

// ImportRows upserts catalog rows keyed by material. Rows missing any of
// the identity columns are dropped. Chunks are written concurrently.
func (s *ProductMasterService) ImportRows(ctx context.Context, rows []models.ProductMasterRow) (*models.ProductMasterImportResult, error) {
	valid := make([]models.ProductMaster, 0, len(rows))
	for _, row := range rows {
		if row.Material == nil || row.Plant == nil || row.MaterialNumber == nil {
			continue
		}
		valid = append(valid, models.ProductMaster{
			Plant:          *row.Plant,
			Material:       *row.Material,
			MaterialNumber: *row.MaterialNumber,
			Mg1:            row.Mg1,
			Mg2:            row.Mg2,
			ProfitCenter:   row.ProfitCenter,
			BaseUnit:       row.BaseUnit,
			MaterialType:   row.MaterialType,
			Profile:        row.Profile,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(productMasterConcurrency)
	for start := 0; start < len(valid); start += productMasterChunkSize {
		end := start + productMasterChunkSize
		if end > len(valid) {
			end = len(valid)
		}
		chunk := valid[start:end]
		g.Go(func() error {
			return s.store.BulkUpsert(gctx, chunk)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &models.ProductMasterImportResult{
		TotalRows: len(rows),
		Upserted:  len(valid),
		Dropped:   len(rows) - len(valid),
	}
	s.log.WithFields(logrus.Fields{
		"total":    result.TotalRows,
		"upserted": result.Upserted,
		"dropped":  result.Dropped,
	}).Info("product master import finished")
	return result, nil
}
