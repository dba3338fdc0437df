package models

import "time"

// ProductMasterRow is one row extracted from a product master workbook.
// Rows missing material, plant or materialNumber are dropped before upsert.
type ProductMasterRow struct {
	Plant          *string `json:"plant"`
	Material       *string `json:"material"`
	MaterialNumber *string `json:"materialNumber"`
	Mg1            *string `json:"mg1"`
	Mg2            *string `json:"mg2"`
	ProfitCenter   *string `json:"profitCenter"`
	BaseUnit       *string `json:"baseUnit"`
	MaterialType   *string `json:"materialType"`
	Profile        *string `json:"profile"`
}

// ProductMaster is the persisted catalog record, keyed by material.
type ProductMaster struct {
	ID             int       `db:"id" json:"id"`
	Plant          string    `db:"plant" json:"plant"`
	Material       string    `db:"material" json:"material"`
	MaterialNumber string    `db:"material_number" json:"materialNumber"`
	Mg1            *string   `db:"mg1" json:"mg1"`
	Mg2            *string   `db:"mg2" json:"mg2"`
	ProfitCenter   *string   `db:"profit_center" json:"profitCenter"`
	BaseUnit       *string   `db:"base_unit" json:"baseUnit"`
	MaterialType   *string   `db:"material_type" json:"materialType"`
	Profile        *string   `db:"profile" json:"profile"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ProductMasterImportResult summarizes one catalog refresh.
type ProductMasterImportResult struct {
	TotalRows int `json:"totalRows"`
	Upserted  int `json:"upserted"`
	Dropped   int `json:"dropped"`
}
