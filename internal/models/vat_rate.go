package models

import "time"

// VatRate is a percentage rate keyed by destination country, e.g. 7 for
// Thai standard VAT under country "TH".
type VatRate struct {
	ID        int       `db:"id" json:"id"`
	Country   string    `db:"country" json:"country"`
	Name      string    `db:"name" json:"name"`
	Rate      float64   `db:"rate" json:"rate"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
