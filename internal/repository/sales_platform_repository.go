package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"orderbridge/internal/models"
)

type SalesPlatformRepository struct {
	db *sqlx.DB
}

func NewSalesPlatformRepository(db *sqlx.DB) *SalesPlatformRepository {
	return &SalesPlatformRepository{db: db}
}

// EnsureID returns the row id for a platform, creating the row on first
// sight.
func (r *SalesPlatformRepository) EnsureID(ctx context.Context, platform models.PlatformKind) (int, error) {
	var p models.SalesPlatform
	err := r.db.GetContext(ctx, &p,
		`SELECT * FROM sales_platforms WHERE name = ? LIMIT 1`, string(platform))
	if err == nil {
		return p.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("find sales platform: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sales_platforms (name, created_at, updated_at) VALUES (?, NOW(), NOW())`,
		string(platform))
	if err != nil {
		return 0, fmt.Errorf("create sales platform: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sales platform id: %w", err)
	}
	return int(id), nil
}
