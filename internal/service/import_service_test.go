package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderbridge/internal/models"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newImportService(products *fakeProductMasterStore) *ImportService {
	orders := newFakeOrderStore()
	validate := NewValidateService(products)
	shopify := NewShopifyService(orders, fakePlatformStore{}, &fakeShopifyStore{}, products, &fakeVatRateStore{}, validate)
	shopee := NewShopeeService(orders, fakePlatformStore{}, newFakeShopeeStore(), products, &fakeVatRateStore{}, validate)
	tiktok := NewTiktokService(orders, fakePlatformStore{}, &fakeTiktokStore{}, products, &fakeVatRateStore{}, validate)
	master := NewProductMasterService(products)
	return NewImportService(shopify, shopee, tiktok, master, 1)
}

const productMasterCSV = `Plant,Material,Material Number,MG1,MG2,Profit Center,Base Unit,Material Type,Profile
ZT40,"MAT-001",30001,MG1,MG2,PC100,EA,FERT,P1
ZT50,"MAT-002",30002,MG1,MG2,PC200,EA,FERT,P1
`

func TestImportServiceProductMasterFile(t *testing.T) {
	products := newFakeProductMasterStore()
	svc := newImportService(products)
	path := writeTempCSV(t, "catalog.csv", productMasterCSV)

	result, err := svc.ImportFile(context.Background(), 1, path)
	require.NoError(t, err)

	require.True(t, result.Detection.IsValid)
	assert.Equal(t, models.PlatformProductMaster, result.Detection.DetectedPlatform)
	assert.Nil(t, result.Orders)
	require.NotNil(t, result.ProductMaster)
	assert.Equal(t, 2, result.ProductMaster.Upserted)

	// Quote stripping applies to the stored material codes.
	found, err := products.FindByMaterials(context.Background(), []string{"MAT-001", "MAT-002"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestImportServiceRejectsUnknownFile(t *testing.T) {
	svc := newImportService(newFakeProductMasterStore())
	path := writeTempCSV(t, "junk.csv", "foo,bar,baz\n1,2,3\n")

	result, err := svc.ImportFile(context.Background(), 1, path)
	require.NoError(t, err)
	assert.False(t, result.Detection.IsValid)
	assert.Nil(t, result.Orders)

	// Rejected uploads are removed from disk.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportServiceDetectFile(t *testing.T) {
	svc := newImportService(newFakeProductMasterStore())
	path := writeTempCSV(t, "catalog.csv", productMasterCSV)

	detection, err := svc.DetectFile(path)
	require.NoError(t, err)
	assert.True(t, detection.IsValid)
	assert.Equal(t, 100.0, detection.MatchPercentage)

	// Valid files stay on disk for the worker to pick up.
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
}
