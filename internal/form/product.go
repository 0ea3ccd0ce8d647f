package form

import (
	"context"
	"strings"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// ProductWriter is the slice of the remote client the product form needs.
type ProductWriter interface {
	Create(ctx context.Context, draft dto.ProductDraft) (*model.Product, error)
	Update(ctx context.Context, id string, draft dto.ProductDraft) (*model.Product, error)
}

// ProductForm drives both the "add product" and "edit product" dialogs.
type ProductForm struct {
	Draft  dto.ProductDraft
	Errors map[string]string

	editingID string
}

// NewProductForm returns a create-mode form with default draft values
// (minimum stock 2, unit "count").
func NewProductForm() *ProductForm {
	return &ProductForm{Draft: dto.NewProductDraft(), Errors: map[string]string{}}
}

// NewProductEditForm returns an edit-mode form pre-filled from p.
func NewProductEditForm(p model.Product) *ProductForm {
	return &ProductForm{
		Draft: dto.ProductDraft{
			Name:          p.Name,
			Category:      p.Category,
			PurchasePrice: p.PurchasePrice,
			SalePrice:     p.SalePrice,
			Stock:         p.Stock,
			MinimumStock:  p.MinimumStock,
			Unit:          p.Unit,
		},
		Errors:    map[string]string{},
		editingID: p.ID,
	}
}

// Editing reports whether the form updates an existing product.
func (f *ProductForm) Editing() bool { return f.editingID != "" }

// Validate checks the draft and fills Errors with field-level messages.
func (f *ProductForm) Validate() bool {
	f.Errors = map[string]string{}

	if strings.TrimSpace(f.Draft.Name) == "" {
		f.Errors["name"] = "Product name is required"
	}
	if strings.TrimSpace(f.Draft.Category) == "" {
		f.Errors["category"] = "Category is required"
	}
	if !f.Draft.PurchasePrice.IsPositive() {
		f.Errors["purchasePrice"] = "Purchase price must be greater than 0"
	}
	if !f.Draft.SalePrice.IsPositive() {
		f.Errors["salePrice"] = "Sale price must be greater than 0"
	} else if f.Draft.SalePrice.LessThan(f.Draft.PurchasePrice) {
		f.Errors["salePrice"] = "Sale price should be greater than or equal to purchase price"
	}
	if f.Draft.Stock < 0 {
		f.Errors["stock"] = "Stock cannot be negative"
	}
	if f.Draft.MinimumStock < 0 {
		f.Errors["minimumStock"] = "Minimum stock cannot be negative"
	}
	if f.Draft.Unit == "" {
		f.Draft.Unit = model.UnitCount
	}
	if err := validate.Struct(f.Draft); err != nil && len(f.Errors) == 0 {
		f.Errors["draft"] = "Please check the highlighted fields"
	}
	return len(f.Errors) == 0
}

// Submit validates and sends the draft. On a successful create the draft
// resets to defaults; on a successful edit it is left for the caller to
// discard with the dialog. onSuccess receives the server's record.
func (f *ProductForm) Submit(ctx context.Context, api ProductWriter, onSuccess func(model.Product)) error {
	if !f.Validate() {
		return ErrInvalidDraft
	}

	var (
		saved *model.Product
		err   error
	)
	if f.Editing() {
		saved, err = api.Update(ctx, f.editingID, f.Draft)
	} else {
		saved, err = api.Create(ctx, f.Draft)
	}
	if err != nil {
		return err
	}

	if !f.Editing() {
		f.Draft = dto.NewProductDraft()
	}
	if onSuccess != nil {
		onSuccess(*saved)
	}
	return nil
}
