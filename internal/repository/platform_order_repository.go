package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"orderbridge/internal/models"
)

// ShopifyOrderRepository persists mapped source rows for audit, keyed by
// (order name, lineitem sku).
type ShopifyOrderRepository struct {
	db *sqlx.DB
}

func NewShopifyOrderRepository(db *sqlx.DB) *ShopifyOrderRepository {
	return &ShopifyOrderRepository{db: db}
}

func (r *ShopifyOrderRepository) Upsert(ctx context.Context, rec models.ShopifyOrderRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shopify_orders (order_name, lineitem_sku, financial_status, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
		ON DUPLICATE KEY UPDATE
			financial_status = VALUES(financial_status),
			payload = VALUES(payload),
			updated_at = NOW()`,
		rec.OrderName, rec.LineitemSku, rec.FinancialStatus, rec.Payload)
	if err != nil {
		return fmt.Errorf("upsert shopify order: %w", err)
	}
	return nil
}

// FindExisting returns the subset of candidate (order name, sku) pairs
// already stored.
func (r *ShopifyOrderRepository) FindExisting(ctx context.Context, candidates []models.ShopifyOrderRecord) (map[string]bool, error) {
	found := make(map[string]bool)
	if len(candidates) == 0 {
		return found, nil
	}

	query := `SELECT order_name, lineitem_sku FROM shopify_orders WHERE `
	args := make([]any, 0, len(candidates)*2)
	for i, c := range candidates {
		if i > 0 {
			query += " OR "
		}
		query += "(order_name = ? AND lineitem_sku = ?)"
		args = append(args, c.OrderName, c.LineitemSku)
	}

	var rows []models.ShopifyOrderRecord
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find existing shopify orders: %w", err)
	}
	for _, row := range rows {
		found[ShopifyOrderKey(row.OrderName, row.LineitemSku)] = true
	}
	return found, nil
}

// ShopifyOrderKey builds the lookup key used by FindExisting results.
func ShopifyOrderKey(orderName, sku string) string {
	return orderName + "|" + sku
}

// ShopeeOrderRepository persists mapped source rows and answers the
// duplicate pre-check over (order id, buyer name, sku) triples.
type ShopeeOrderRepository struct {
	db *sqlx.DB
}

func NewShopeeOrderRepository(db *sqlx.DB) *ShopeeOrderRepository {
	return &ShopeeOrderRepository{db: db}
}

func (r *ShopeeOrderRepository) Upsert(ctx context.Context, rec models.ShopeeOrderRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shopee_orders (order_id, buyer_name, sku_reference_no, order_status, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, NOW(), NOW())
		ON DUPLICATE KEY UPDATE
			order_status = VALUES(order_status),
			payload = VALUES(payload),
			updated_at = NOW()`,
		rec.OrderID, rec.BuyerName, rec.SkuReferenceNo, rec.OrderStatus, rec.Payload)
	if err != nil {
		return fmt.Errorf("upsert shopee order: %w", err)
	}
	return nil
}

// FindExisting returns the subset of candidate triples already stored.
func (r *ShopeeOrderRepository) FindExisting(ctx context.Context, candidates []models.ShopeeOrderRecord) (map[string]bool, error) {
	found := make(map[string]bool)
	if len(candidates) == 0 {
		return found, nil
	}

	query := `SELECT order_id, buyer_name, sku_reference_no FROM shopee_orders WHERE `
	args := make([]any, 0, len(candidates)*3)
	for i, c := range candidates {
		if i > 0 {
			query += " OR "
		}
		query += "(order_id = ? AND buyer_name = ? AND sku_reference_no = ?)"
		args = append(args, c.OrderID, c.BuyerName, c.SkuReferenceNo)
	}

	var rows []models.ShopeeOrderRecord
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find existing shopee orders: %w", err)
	}
	for _, row := range rows {
		found[ShopeeOrderKey(row.OrderID, row.BuyerName, row.SkuReferenceNo)] = true
	}
	return found, nil
}

// ShopeeOrderKey builds the lookup key used by FindExisting results.
func ShopeeOrderKey(orderID, buyerName, sku string) string {
	return orderID + "|" + buyerName + "|" + sku
}

// TiktokOrderRepository persists mapped source rows keyed by
// (order id, seller sku).
type TiktokOrderRepository struct {
	db *sqlx.DB
}

func NewTiktokOrderRepository(db *sqlx.DB) *TiktokOrderRepository {
	return &TiktokOrderRepository{db: db}
}

func (r *TiktokOrderRepository) Upsert(ctx context.Context, rec models.TiktokOrderRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tiktok_orders (order_id, seller_sku, order_status, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
		ON DUPLICATE KEY UPDATE
			order_status = VALUES(order_status),
			payload = VALUES(payload),
			updated_at = NOW()`,
		rec.OrderID, rec.SellerSku, rec.OrderStatus, rec.Payload)
	if err != nil {
		return fmt.Errorf("upsert tiktok order: %w", err)
	}
	return nil
}

// FindExisting returns the subset of candidate (order id, sku) pairs
// already stored.
func (r *TiktokOrderRepository) FindExisting(ctx context.Context, candidates []models.TiktokOrderRecord) (map[string]bool, error) {
	found := make(map[string]bool)
	if len(candidates) == 0 {
		return found, nil
	}

	query := `SELECT order_id, seller_sku FROM tiktok_orders WHERE `
	args := make([]any, 0, len(candidates)*2)
	for i, c := range candidates {
		if i > 0 {
			query += " OR "
		}
		query += "(order_id = ? AND seller_sku = ?)"
		args = append(args, c.OrderID, c.SellerSku)
	}

	var rows []models.TiktokOrderRecord
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("find existing tiktok orders: %w", err)
	}
	for _, row := range rows {
		found[TiktokOrderKey(row.OrderID, row.SellerSku)] = true
	}
	return found, nil
}

// TiktokOrderKey builds the lookup key used by FindExisting results.
func TiktokOrderKey(orderID, sku string) string {
	return orderID + "|" + sku
}
