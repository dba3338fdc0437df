package models

import "time"

// PlatformKind identifies a source marketplace whose export layout we know.
// The declaration order of AllPlatforms is significant: platform detection
// walks it in order and the first match over the threshold wins.
type PlatformKind string

const (
	PlatformShopify       PlatformKind = "SHOPIFY"
	PlatformShopee        PlatformKind = "SHOPEE"
	PlatformTiktok        PlatformKind = "TIKTOK"
	PlatformProductMaster PlatformKind = "PRODUCT_MASTER"
)

// AllPlatforms lists every known platform in detection order.
var AllPlatforms = []PlatformKind{
	PlatformShopify,
	PlatformShopee,
	PlatformTiktok,
	PlatformProductMaster,
}

type SalesPlatform struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
