package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"orderbridge/internal/excel"
	"orderbridge/internal/models"
	"orderbridge/internal/repository"
	"orderbridge/internal/service"
	"orderbridge/internal/utils"
)

// Processor handles background tasks off the redis queue.
type Processor struct {
	imports       *service.ImportService
	productMaster *service.ProductMasterService
	uploads       *repository.FileUploadRepository
	sheetIndex    int
	log           *logrus.Logger
}

func NewProcessor(imports *service.ImportService, productMaster *service.ProductMasterService, uploads *repository.FileUploadRepository, sheetIndex int) *Processor {
	if sheetIndex < 1 {
		sheetIndex = 1
	}
	return &Processor{
		imports:       imports,
		productMaster: productMaster,
		uploads:       uploads,
		sheetIndex:    sheetIndex,
		log:           utils.GetLogger(),
	}
}

// Register attaches all task handlers to the mux.
func (p *Processor) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeProcessUpload, p.HandleProcessUpload)
	mux.HandleFunc(TypeRefreshProductMaster, p.HandleRefreshProductMaster)
}

// HandleProcessUpload runs the import pipeline for one uploaded workbook
// and records the outcome on the upload row.
func (p *Processor) HandleProcessUpload(ctx context.Context, t *asynq.Task) error {
	var payload ProcessUploadPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal upload payload: %w", err)
	}

	log := p.log.WithField("upload", payload.Code)
	log.Info("processing upload")

	if err := p.uploads.MarkProcessing(ctx, payload.Code); err != nil {
		return err
	}

	result, err := p.imports.ImportFile(ctx, payload.UserID, payload.Path)
	if err != nil {
		log.WithError(err).Error("upload processing failed")
		if markErr := p.uploads.MarkFailed(ctx, payload.Code, err.Error()); markErr != nil {
			log.WithError(markErr).Error("could not mark upload failed")
		}
		return err
	}

	if !result.Detection.IsValid {
		msg := "no platform matched the file headers"
		if err := p.uploads.MarkFailed(ctx, payload.Code, msg); err != nil {
			return err
		}
		return nil
	}
	if result.Orders != nil && !result.Orders.Validation.Checker {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		// Keep the row-level errors available to the status endpoint.
		return p.uploads.MarkFailedWithResult(ctx, payload.Code, models.MsgPostDataFailed, string(resultJSON))
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := p.uploads.MarkCompleted(ctx, payload.Code, string(resultJSON)); err != nil {
		return err
	}

	log.Info("upload processed")
	return nil
}

// HandleRefreshProductMaster reloads the material catalog from a workbook
// on disk. Scheduled runs and manual triggers share this handler.
func (p *Processor) HandleRefreshProductMaster(ctx context.Context, t *asynq.Task) error {
	var payload RefreshProductMasterPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal product master payload: %w", err)
	}

	sheet, err := excel.Open(payload.Path, p.sheetIndex)
	if err != nil {
		return err
	}
	schema, _ := excel.SchemaFor(models.PlatformProductMaster)
	rows := excel.DecodeProductMasterRows(
		excel.Extract(sheet, schema, excel.StaticOptions{StripQuotes: true}))

	result, err := p.productMaster.ImportRows(ctx, rows)
	if err != nil {
		return err
	}
	p.log.WithFields(logrus.Fields{
		"upserted": result.Upserted,
		"dropped":  result.Dropped,
	}).Info("product master refreshed")
	return nil
}
