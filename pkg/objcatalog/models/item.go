// Package models defines data structures for catalog extraction.
package models

// Item represents one catalog object extracted from a spreadsheet row.
// Items are plain values: two items are the same when every field matches.
type Item struct {
	// ID is the unique object identifier.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Desc is the free-form description.
	Desc string `json:"desc"`
	// Category is the top-level category label.
	Category string `json:"category"`
	// Filter is the viewer filter group.
	Filter string `json:"filter"`
	// Icon is the image asset name without extension.
	Icon string `json:"icon"`
	// Price is the in-game price (0 when absent).
	Price int `json:"price"`
	// Tags is the raw tag string.
	Tags string `json:"tags"`
}

// Complete reports whether the item carries the fields the viewer needs.
func (it Item) Complete() bool {
	return it.Name != "" && it.Icon != ""
}
