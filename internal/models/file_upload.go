package models

import "time"

// Upload lifecycle statuses.
const (
	UploadStatusPending    = "pending"
	UploadStatusProcessing = "processing"
	UploadStatusCompleted  = "completed"
	UploadStatusFailed     = "failed"
)

// FileUpload tracks one uploaded workbook through background processing.
type FileUpload struct {
	ID               int        `db:"id" json:"id"`
	Code             string     `db:"code" json:"code"`
	UserID           int        `db:"user_id" json:"user_id"`
	OriginalFilename string     `db:"original_filename" json:"original_filename"`
	StoredPath       string     `db:"stored_path" json:"stored_path"`
	FileSize         int64      `db:"file_size" json:"file_size"`
	Platform         *string    `db:"platform" json:"platform"`
	MatchPercentage  *float64   `db:"match_percentage" json:"match_percentage"`
	Status           string     `db:"status" json:"status"`
	ErrorMessage     *string    `db:"error_message" json:"error_message"`
	ResultJSON       *string    `db:"result_json" json:"result_json"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
	ProcessedAt      *time.Time `db:"processed_at" json:"processed_at"`
}
