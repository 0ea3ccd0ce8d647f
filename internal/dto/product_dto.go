// Package dto holds the request payloads sent to the Karyana backend.
// Validator tags cover field shape; cross-field rules (stock availability,
// remaining loan balance) live in the form controllers.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// ProductDraft is the body of POST /products and PUT /products/{id}.
type ProductDraft struct {
	Name          string          `json:"name"          validate:"required"`
	Category      string          `json:"category"      validate:"required"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" validate:"gt=0"`
	SalePrice     decimal.Decimal `json:"salePrice"     validate:"gt=0"`
	Stock         float64         `json:"stock"         validate:"min=0"`
	MinimumStock  float64         `json:"minimumStock"  validate:"min=0"`
	Unit          model.Unit      `json:"unit"          validate:"required,oneof=count kg grams"`
}

// DefaultMinimumStock is pre-filled into new product drafts.
const DefaultMinimumStock = 2

// NewProductDraft returns a draft with the form's defaults.
func NewProductDraft() ProductDraft {
	return ProductDraft{MinimumStock: DefaultMinimumStock, Unit: model.UnitCount}
}
