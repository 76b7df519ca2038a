package models

import "github.com/shopspring/decimal"

// CatalogItem is a product that purchase records refer to by Code.
// Name is matched case-insensitively.
type CatalogItem struct {
	Code      int             `json:"code"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// GetID returns the item code
func (i CatalogItem) GetID() int {
	return i.Code
}
