package service

import (
	"context"

	"orderbridge/internal/models"
)

// Store interfaces let the import pipeline run against fakes in tests.
// The sqlx repositories satisfy them.

type OrderStore interface {
	Upsert(ctx context.Context, userID, platformID int, d models.OrderTransactionDraft) (bool, error)
	FindByNaturalKey(ctx context.Context, platformID int, key models.NaturalKey) (*models.OrderTransaction, error)
}

type PlatformStore interface {
	EnsureID(ctx context.Context, platform models.PlatformKind) (int, error)
}

type ShopifyStore interface {
	Upsert(ctx context.Context, rec models.ShopifyOrderRecord) error
}

type ShopeeStore interface {
	Upsert(ctx context.Context, rec models.ShopeeOrderRecord) error
	FindExisting(ctx context.Context, candidates []models.ShopeeOrderRecord) (map[string]bool, error)
}

type TiktokStore interface {
	Upsert(ctx context.Context, rec models.TiktokOrderRecord) error
}

type ProductMasterStore interface {
	BulkUpsert(ctx context.Context, rows []models.ProductMaster) error
	FindByMaterials(ctx context.Context, materials []string) (map[string]models.ProductMaster, error)
}

type VatRateStore interface {
	FindRateByCountry(ctx context.Context, country string) (float64, error)
}
