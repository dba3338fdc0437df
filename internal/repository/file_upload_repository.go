package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"orderbridge/internal/models"
)

type FileUploadRepository struct {
	db *sqlx.DB
}

func NewFileUploadRepository(db *sqlx.DB) *FileUploadRepository {
	return &FileUploadRepository{db: db}
}

func (r *FileUploadRepository) Create(ctx context.Context, u *models.FileUpload) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO file_uploads (
			code, user_id, original_filename, stored_path, file_size,
			platform, match_percentage, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		u.Code, u.UserID, u.OriginalFilename, u.StoredPath, u.FileSize,
		u.Platform, u.MatchPercentage, u.Status)
	if err != nil {
		return fmt.Errorf("create file upload: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("file upload id: %w", err)
	}
	u.ID = int(id)
	return nil
}

func (r *FileUploadRepository) FindByCode(ctx context.Context, code string) (*models.FileUpload, error) {
	var u models.FileUpload
	err := r.db.GetContext(ctx, &u, `SELECT * FROM file_uploads WHERE code = ? LIMIT 1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find file upload: %w", err)
	}
	return &u, nil
}

func (r *FileUploadRepository) MarkProcessing(ctx context.Context, code string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE file_uploads SET status = ?, updated_at = NOW() WHERE code = ?`,
		models.UploadStatusProcessing, code)
	if err != nil {
		return fmt.Errorf("mark upload processing: %w", err)
	}
	return nil
}

func (r *FileUploadRepository) MarkCompleted(ctx context.Context, code, resultJSON string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE file_uploads
		SET status = ?, result_json = ?, processed_at = NOW(), updated_at = NOW()
		WHERE code = ?`,
		models.UploadStatusCompleted, resultJSON, code)
	if err != nil {
		return fmt.Errorf("mark upload completed: %w", err)
	}
	return nil
}

func (r *FileUploadRepository) MarkFailed(ctx context.Context, code, message string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE file_uploads
		SET status = ?, error_message = ?, processed_at = NOW(), updated_at = NOW()
		WHERE code = ?`,
		models.UploadStatusFailed, message, code)
	if err != nil {
		return fmt.Errorf("mark upload failed: %w", err)
	}
	return nil
}

// MarkFailedWithResult records a failure while keeping the structured
// result payload, used when validation rejects the batch.
func (r *FileUploadRepository) MarkFailedWithResult(ctx context.Context, code, message, resultJSON string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE file_uploads
		SET status = ?, error_message = ?, result_json = ?, processed_at = NOW(), updated_at = NOW()
		WHERE code = ?`,
		models.UploadStatusFailed, message, resultJSON, code)
	if err != nil {
		return fmt.Errorf("mark upload failed: %w", err)
	}
	return nil
}

func (r *FileUploadRepository) List(ctx context.Context, userID, limit, offset int) ([]models.FileUpload, int64, error) {
	var uploads []models.FileUpload
	err := r.db.SelectContext(ctx, &uploads, `
		SELECT * FROM file_uploads
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list file uploads: %w", err)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM file_uploads WHERE user_id = ?`, userID); err != nil {
		return nil, 0, fmt.Errorf("count file uploads: %w", err)
	}
	return uploads, total, nil
}
