package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"orderbridge/internal/models"
)

// ErrVatRateNotFound aborts an import: lines cannot be priced without a
// configured rate.
var ErrVatRateNotFound = errors.New(models.MsgInvalidVatRate)

type VatRateRepository struct {
	db *sqlx.DB
}

func NewVatRateRepository(db *sqlx.DB) *VatRateRepository {
	return &VatRateRepository{db: db}
}

// FindRateByCountry returns the VAT percentage configured for one
// destination country.
func (r *VatRateRepository) FindRateByCountry(ctx context.Context, country string) (float64, error) {
	var rate models.VatRate
	err := r.db.GetContext(ctx, &rate,
		`SELECT * FROM vat_rates WHERE country = ? LIMIT 1`, country)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrVatRateNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("find vat rate for %s: %w", country, err)
	}
	return rate.Rate, nil
}
