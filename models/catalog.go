package models

import "time"

// CatalogItem is the resolved display metadata of a scanned physical object.
type CatalogItem struct {
	// ItemID is the normalised scanned code of the item.
	ItemID string `json:"item_id"`

	// DisplayName is the first title returned by the external lookup
	// service when the item was registered.
	DisplayName string `json:"display_name"`

	// CreatedAt is the time the item was first registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the CatalogItem model.
func (c CatalogItem) TableName() string {
	return "catalog_items"
}
