package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// SaleItemDraft is one line item of a sale request. Prices are the
// snapshot taken from the selected product at draft time.
type SaleItemDraft struct {
	ProductID     string          `json:"productId"     validate:"required"`
	Quantity      float64         `json:"quantity"      validate:"gt=0"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Unit          model.Unit      `json:"unit"`
}

// SaleDraft is the body of POST /sales and PUT /sales/{id} for itemized
// sales. Totals are computed server-side.
type SaleDraft struct {
	Items         []SaleItemDraft     `json:"items"         validate:"required,min=1,dive"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod" validate:"required,oneof=Cash Card 'Bank Transfer'"`
}

// ManualSaleDraft is the body of POST /sales/manual and of PUT /sales/{id}
// for manual sales: raw figures, no line items.
type ManualSaleDraft struct {
	Total         decimal.Decimal     `json:"total"         validate:"gt=0"`
	Profit        decimal.Decimal     `json:"profit"        validate:"min=0"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod" validate:"required,oneof=Cash Card 'Bank Transfer'"`
	Description   string              `json:"description"`
	Date          time.Time           `json:"date"`
	IsManual      bool                `json:"isManual"`
}
