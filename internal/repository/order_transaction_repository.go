package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"orderbridge/internal/models"
)

type OrderTransactionRepository struct {
	db *sqlx.DB
}

func NewOrderTransactionRepository(db *sqlx.DB) *OrderTransactionRepository {
	return &OrderTransactionRepository{db: db}
}

// FindByNaturalKey looks up a stored transaction for one platform by its
// dedup key.
func (r *OrderTransactionRepository) FindByNaturalKey(ctx context.Context, platformID int, key models.NaturalKey) (*models.OrderTransaction, error) {
	var tx models.OrderTransaction
	err := r.db.GetContext(ctx, &tx, `
		SELECT * FROM order_transactions
		WHERE sales_platform_id = ?
		  AND purchase_order = ?
		  AND name = ?
		  AND material_product_code = ?
		  AND sor_price = ?
		LIMIT 1`,
		platformID, key.PurchaseOrder, key.Name, key.MaterialProductCode, key.SORPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return &tx, nil
}

// Upsert writes one canonical transaction, updating in place when the
// natural key already exists. Returns true when a new row was created.
func (r *OrderTransactionRepository) Upsert(ctx context.Context, userID, platformID int, d models.OrderTransactionDraft) (bool, error) {
	existing, err := r.FindByNaturalKey(ctx, platformID, models.NaturalKeyOf(d))
	if err != nil {
		return false, err
	}

	if existing != nil {
		_, err = r.db.ExecContext(ctx, `
			UPDATE order_transactions SET
				account_code = ?, salesman_code = ?, invoice_date = ?,
				name2 = ?, address = ?, address2 = ?, address3 = ?,
				post_code = ?, city = ?, country = ?, tel = ?,
				require_tax_invoice = ?, tax_id = ?, item_cat = ?,
				quantity = ?, mg4 = ?, profit_center = ?, uom = ?,
				plant = ?, storage_location = ?, total_price = ?,
				updated_at = NOW()
			WHERE id = ?`,
			d.AccountCode, d.SalesmanCode, d.InvoiceDate,
			d.Name2, d.Address, d.Address2, d.Address3,
			d.PostCode, d.City, d.Country, d.Tel,
			d.RequireTaxInvoice, d.TaxID, d.ItemCat,
			d.Quantity, d.Mg4, d.ProfitCenter, d.UOM,
			d.Plant, d.StorageLocation, d.TotalPrice,
			existing.ID)
		if err != nil {
			return false, fmt.Errorf("update transaction: %w", err)
		}
		return false, nil
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO order_transactions (
			user_id, sales_platform_id, account_code, salesman_code,
			purchase_order, invoice_date, name, name2, address, address2,
			address3, post_code, city, country, tel, require_tax_invoice,
			tax_id, material_product_code, item_cat, quantity, mg4,
			profit_center, uom, plant, storage_location, sor_price,
			total_price, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		userID, platformID, d.AccountCode, d.SalesmanCode,
		d.PurchaseOrder, d.InvoiceDate, d.Name, d.Name2, d.Address, d.Address2,
		d.Address3, d.PostCode, d.City, d.Country, d.Tel, d.RequireTaxInvoice,
		d.TaxID, d.MaterialProductCode, d.ItemCat, d.Quantity, d.Mg4,
		d.ProfitCenter, d.UOM, d.Plant, d.StorageLocation, d.SORPrice,
		d.TotalPrice)
	if err != nil {
		return false, fmt.Errorf("insert transaction: %w", err)
	}
	return true, nil
}

// List returns transactions for one platform, newest first.
func (r *OrderTransactionRepository) List(ctx context.Context, platformID, limit, offset int) ([]models.OrderTransaction, error) {
	var txs []models.OrderTransaction
	err := r.db.SelectContext(ctx, &txs, `
		SELECT * FROM order_transactions
		WHERE sales_platform_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`,
		platformID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// Count returns the number of stored transactions for one platform.
func (r *OrderTransactionRepository) Count(ctx context.Context, platformID int) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM order_transactions WHERE sales_platform_id = ?`, platformID)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
