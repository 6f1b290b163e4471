package domain

import "github.com/shopspring/decimal"

// InventoryValuation is the on-hand value of active products.
type InventoryValuation struct {
	Value decimal.Decimal `json:"value"`
	Count int64           `json:"count"`
}
