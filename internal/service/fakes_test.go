package service

import (
	"context"
	"errors"
	"sync"

	"orderbridge/internal/models"
)

// In-memory stores backing the pipeline tests.

type fakeOrderStore struct {
	upserts []models.OrderTransactionDraft
	stored  map[models.NaturalKey]models.OrderTransaction
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{stored: make(map[models.NaturalKey]models.OrderTransaction)}
}

func (f *fakeOrderStore) Upsert(_ context.Context, userID, platformID int, d models.OrderTransactionDraft) (bool, error) {
	f.upserts = append(f.upserts, d)
	key := models.NaturalKeyOf(d)
	_, exists := f.stored[key]
	f.stored[key] = models.OrderTransaction{
		UserID:              userID,
		SalesPlatformID:     platformID,
		PurchaseOrder:       d.PurchaseOrder,
		Name:                d.Name,
		MaterialProductCode: d.MaterialProductCode,
		SORPrice:            d.SORPrice,
	}
	return !exists, nil
}

func (f *fakeOrderStore) FindByNaturalKey(_ context.Context, _ int, key models.NaturalKey) (*models.OrderTransaction, error) {
	if tx, ok := f.stored[key]; ok {
		return &tx, nil
	}
	return nil, nil
}

type fakePlatformStore struct{}

func (fakePlatformStore) EnsureID(_ context.Context, platform models.PlatformKind) (int, error) {
	for i, p := range models.AllPlatforms {
		if p == platform {
			return i + 1, nil
		}
	}
	return 0, nil
}

type fakeShopifyStore struct {
	records []models.ShopifyOrderRecord
}

func (f *fakeShopifyStore) Upsert(_ context.Context, rec models.ShopifyOrderRecord) error {
	f.records = append(f.records, rec)
	return nil
}

type fakeShopeeStore struct {
	records  []models.ShopeeOrderRecord
	existing map[string]bool
}

func newFakeShopeeStore() *fakeShopeeStore {
	return &fakeShopeeStore{existing: make(map[string]bool)}
}

func (f *fakeShopeeStore) Upsert(_ context.Context, rec models.ShopeeOrderRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeShopeeStore) FindExisting(_ context.Context, candidates []models.ShopeeOrderRecord) (map[string]bool, error) {
	found := make(map[string]bool)
	for _, c := range candidates {
		key := shopeeKey(c)
		if f.existing[key] {
			found[key] = true
		}
	}
	return found, nil
}

type fakeTiktokStore struct {
	records []models.TiktokOrderRecord
}

func (f *fakeTiktokStore) Upsert(_ context.Context, rec models.TiktokOrderRecord) error {
	f.records = append(f.records, rec)
	return nil
}

type fakeProductMasterStore struct {
	mu        sync.Mutex
	materials map[string]models.ProductMaster
	upserted  [][]models.ProductMaster
}

func newFakeProductMasterStore(materials ...string) *fakeProductMasterStore {
	store := &fakeProductMasterStore{materials: make(map[string]models.ProductMaster)}
	unit := "EA"
	center := "PC100"
	for _, m := range materials {
		store.materials[m] = models.ProductMaster{
			Material:     m,
			BaseUnit:     &unit,
			ProfitCenter: &center,
		}
	}
	return store
}

func (f *fakeProductMasterStore) BulkUpsert(_ context.Context, rows []models.ProductMaster) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, rows)
	for _, row := range rows {
		f.materials[row.Material] = row
	}
	return nil
}

func (f *fakeProductMasterStore) FindByMaterials(_ context.Context, materials []string) (map[string]models.ProductMaster, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	found := make(map[string]models.ProductMaster)
	for _, m := range materials {
		if row, ok := f.materials[m]; ok {
			found[m] = row
		}
	}
	return found, nil
}

type fakeVatRateStore struct {
	rate      float64
	countries []string
}

func (f *fakeVatRateStore) FindRateByCountry(_ context.Context, country string) (float64, error) {
	f.countries = append(f.countries, country)
	if country != "TH" {
		return 0, errors.New("no vat rate for " + country)
	}
	if f.rate == 0 {
		return 7, nil
	}
	return f.rate, nil
}
