package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is the stock granularity of a product. Count-based products carry
// whole quantities; kg/grams products may carry fractional ones.
type Unit string

const (
	UnitCount Unit = "count"
	UnitKG    Unit = "kg"
	UnitGrams Unit = "grams"
)

// StockStatus is derived server-side from stock vs minimumStock.
type StockStatus string

const (
	StockCritical StockStatus = "Critical"
	StockLow      StockStatus = "Low"
	StockNormal   StockStatus = "Normal"
)

// Product mirrors the backend's product document. The client never
// mutates stock directly — sales decrement it server-side and the
// collection is refetched.
type Product struct {
	ID            string          `json:"_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Stock         float64         `json:"stock"`
	MinimumStock  float64         `json:"minimumStock"`
	Unit          Unit            `json:"unit"`
	Status        StockStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// LowStock reports whether stock has fallen below the configured minimum.
func (p Product) LowStock() bool { return p.Stock < p.MinimumStock }

// Margin is the per-unit profit at current prices.
func (p Product) Margin() decimal.Decimal { return p.SalePrice.Sub(p.PurchasePrice) }

// Categories returns the unique non-empty categories present in products,
// in first-seen order. Feeds the category filter dropdown.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
