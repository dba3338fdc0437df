package worker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TypeProcessUpload runs the import pipeline for one uploaded workbook.
	TypeProcessUpload = "upload:process"
	// TypeRefreshProductMaster refreshes the material catalog from a file.
	TypeRefreshProductMaster = "product_master:refresh"
)

// ProcessUploadPayload identifies the upload to process.
type ProcessUploadPayload struct {
	Code   string `json:"code"`
	Path   string `json:"path"`
	UserID int    `json:"user_id"`
}

// RefreshProductMasterPayload points at a catalog workbook.
type RefreshProductMasterPayload struct {
	Path string `json:"path"`
}

// NewProcessUploadTask builds the task for one uploaded workbook.
func NewProcessUploadTask(p ProcessUploadPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal upload payload: %w", err)
	}
	return asynq.NewTask(TypeProcessUpload, payload,
		asynq.MaxRetry(3),
		asynq.Timeout(10*time.Minute),
	), nil
}

// NewRefreshProductMasterTask builds the catalog refresh task.
func NewRefreshProductMasterTask(p RefreshProductMasterPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal product master payload: %w", err)
	}
	return asynq.NewTask(TypeRefreshProductMaster, payload,
		asynq.MaxRetry(2),
		asynq.Timeout(30*time.Minute),
	), nil
}
