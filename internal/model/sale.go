package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod values match the backend enum verbatim (including the
// space in "Bank Transfer").
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentCard         PaymentMethod = "Card"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
)

// SaleItem is one line of a sale: a product reference plus the price
// snapshot taken at sale time, so later price edits don't rewrite history.
type SaleItem struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Quantity      float64         `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Unit          Unit            `json:"unit"`
}

// Sale is either an itemized sale or a manual one (raw total/profit
// figures, no line items). Total and profit are server-derived.
type Sale struct {
	ID            string          `json:"_id"`
	Items         []SaleItem      `json:"items"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Total         decimal.Decimal `json:"total"`
	Profit        decimal.Decimal `json:"profit"`
	Date          time.Time       `json:"date"`
	IsManual      bool            `json:"isManual"`
	Description   string          `json:"description,omitempty"`
}

// ReservedQuantity is the quantity of productID already committed to this
// sale, summed across line items. Used when editing a sale so the reserved
// stock isn't double-counted against availability.
func (s Sale) ReservedQuantity(productID string) float64 {
	var total float64
	for _, item := range s.Items {
		if item.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}
