package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"orderbridge/internal/models"
)

type ProductMasterRepository struct {
	db *sqlx.DB
}

func NewProductMasterRepository(db *sqlx.DB) *ProductMasterRepository {
	return &ProductMasterRepository{db: db}
}

// BulkUpsert writes one chunk of catalog rows keyed by material.
func (r *ProductMasterRepository) BulkUpsert(ctx context.Context, rows []models.ProductMaster) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO product_masters (
			plant, material, material_number, mg1, mg2,
			profit_center, base_unit, material_type, profile,
			created_at, updated_at
		) VALUES `)
	args := make([]any, 0, len(rows)*9)
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())")
		args = append(args,
			row.Plant, row.Material, row.MaterialNumber, row.Mg1, row.Mg2,
			row.ProfitCenter, row.BaseUnit, row.MaterialType, row.Profile)
	}
	sb.WriteString(`
		ON DUPLICATE KEY UPDATE
			plant = VALUES(plant),
			material_number = VALUES(material_number),
			mg1 = VALUES(mg1),
			mg2 = VALUES(mg2),
			profit_center = VALUES(profit_center),
			base_unit = VALUES(base_unit),
			material_type = VALUES(material_type),
			profile = VALUES(profile),
			updated_at = NOW()`)

	if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("bulk upsert product masters: %w", err)
	}
	return nil
}

// FindByMaterials returns the stored catalog rows for the given material
// codes, keyed by material.
func (r *ProductMasterRepository) FindByMaterials(ctx context.Context, materials []string) (map[string]models.ProductMaster, error) {
	result := make(map[string]models.ProductMaster)
	if len(materials) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM product_masters WHERE material IN (?)`, materials)
	if err != nil {
		return nil, fmt.Errorf("build material query: %w", err)
	}

	var rows []models.ProductMaster
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find product masters: %w", err)
	}
	for _, row := range rows {
		result[row.Material] = row
	}
	return result, nil
}

// List returns a page of the catalog, optionally filtered by a material
// prefix.
func (r *ProductMasterRepository) List(ctx context.Context, search string, limit, offset int) ([]models.ProductMaster, error) {
	var rows []models.ProductMaster
	query := `SELECT * FROM product_masters`
	args := []any{}
	if search != "" {
		query += ` WHERE material LIKE ?`
		args = append(args, search+"%")
	}
	query += ` ORDER BY material LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list product masters: %w", err)
	}
	return rows, nil
}

// Count returns the catalog size.
func (r *ProductMasterRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM product_masters`); err != nil {
		return 0, fmt.Errorf("count product masters: %w", err)
	}
	return n, nil
}
