package form

import (
	"context"
	"fmt"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// SaleWriter is the slice of the remote client the sale form needs.
type SaleWriter interface {
	Create(ctx context.Context, draft dto.SaleDraft) (*model.Sale, error)
	Update(ctx context.Context, id string, draft dto.SaleDraft) (*model.Sale, error)
}

// SaleForm drives the "new sale" and "edit sale" dialogs. Submission is
// blocked while any line exceeds its available stock.
type SaleForm struct {
	Lines         []dto.SaleItemDraft
	PaymentMethod model.PaymentMethod
	Errors        []string

	available []float64 // parallel to Lines
	names     []string  // parallel to Lines, for error messages
	editing   *model.Sale
}

// NewSaleForm returns a create-mode form with one empty line.
func NewSaleForm() *SaleForm {
	f := &SaleForm{PaymentMethod: model.PaymentCash}
	f.AddLine()
	return f
}

// NewSaleEditForm pre-fills a form from an existing sale. Each line's
// available stock is the product's current stock plus the quantity this
// sale already deducted; a line whose product vanished keeps only its own
// reserved quantity.
func NewSaleEditForm(sale model.Sale, products []model.Product) *SaleForm {
	f := &SaleForm{PaymentMethod: sale.PaymentMethod, editing: &sale}
	for _, item := range sale.Items {
		available := item.Quantity
		if p := findProduct(products, item.ProductID); p != nil {
			available = p.Stock + item.Quantity
		}
		f.Lines = append(f.Lines, dto.SaleItemDraft{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			PurchasePrice: item.PurchasePrice,
			SalePrice:     item.SalePrice,
			Unit:          item.Unit,
		})
		f.available = append(f.available, available)
		f.names = append(f.names, item.ProductName)
	}
	return f
}

// Editing reports whether the form updates an existing sale.
func (f *SaleForm) Editing() bool { return f.editing != nil }

// AddLine appends an empty line item.
func (f *SaleForm) AddLine() {
	f.Lines = append(f.Lines, dto.SaleItemDraft{})
	f.available = append(f.available, 0)
	f.names = append(f.names, "")
}

// RemoveLine deletes line i; out-of-range indexes are ignored.
func (f *SaleForm) RemoveLine(i int) {
	if i < 0 || i >= len(f.Lines) {
		return
	}
	f.Lines = append(f.Lines[:i], f.Lines[i+1:]...)
	f.available = append(f.available[:i], f.available[i+1:]...)
	f.names = append(f.names[:i], f.names[i+1:]...)
}

// SetLineProduct selects a product for line i, snapshotting its prices and
// recomputing the availability bound.
func (f *SaleForm) SetLineProduct(i int, p model.Product) {
	if i < 0 || i >= len(f.Lines) {
		return
	}
	available := p.Stock
	if f.editing != nil {
		available += f.editing.ReservedQuantity(p.ID)
	}
	f.Lines[i] = dto.SaleItemDraft{
		ProductID:     p.ID,
		Quantity:      f.Lines[i].Quantity,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Unit:          p.Unit,
	}
	f.available[i] = available
	f.names[i] = p.Name
}

// SetLineQuantity sets line i's quantity, clamping it to the line's
// available stock when a product is selected.
func (f *SaleForm) SetLineQuantity(i int, quantity float64) {
	if i < 0 || i >= len(f.Lines) {
		return
	}
	if f.Lines[i].ProductID != "" && quantity > f.available[i] {
		quantity = f.available[i]
	}
	f.Lines[i].Quantity = quantity
}

// AvailableStock returns the availability bound of line i.
func (f *SaleForm) AvailableStock(i int) float64 {
	if i < 0 || i >= len(f.available) {
		return 0
	}
	return f.available[i]
}

// HasStockError reports whether any line requests more than its available
// stock. A true value blocks submission regardless of other validity.
func (f *SaleForm) HasStockError() bool {
	for i, line := range f.Lines {
		if line.ProductID != "" && line.Quantity > f.available[i] {
			return true
		}
	}
	return false
}

// Validate checks every line and fills Errors with per-line messages.
func (f *SaleForm) Validate() bool {
	f.Errors = nil

	if len(f.Lines) == 0 {
		f.Errors = append(f.Errors, "Please add at least one item to the sale")
	}
	for i, line := range f.Lines {
		if line.ProductID == "" {
			f.Errors = append(f.Errors, fmt.Sprintf("Item %d: Please select a product", i+1))
			continue
		}
		if line.Quantity <= 0 {
			f.Errors = append(f.Errors, fmt.Sprintf("Item %d: Quantity must be greater than 0", i+1))
		}
		if line.Quantity > f.available[i] {
			f.Errors = append(f.Errors, fmt.Sprintf(
				"Item %d: %s - Requested quantity (%v) exceeds available stock (%v)",
				i+1, f.names[i], line.Quantity, f.available[i]))
		}
	}
	return len(f.Errors) == 0
}

// Draft assembles the request payload from the current lines.
func (f *SaleForm) Draft() dto.SaleDraft {
	return dto.SaleDraft{Items: f.Lines, PaymentMethod: f.PaymentMethod}
}

// Submit validates and sends the sale. Stock-exceeding lines always block
// the call; remote failures preserve the form state.
func (f *SaleForm) Submit(ctx context.Context, api SaleWriter, onSuccess func(model.Sale)) error {
	if !f.Validate() || f.HasStockError() {
		return ErrInvalidDraft
	}
	draft := f.Draft()
	if err := validate.Struct(draft); err != nil {
		return ErrInvalidDraft
	}

	var (
		saved *model.Sale
		err   error
	)
	if f.editing != nil {
		saved, err = api.Update(ctx, f.editing.ID, draft)
	} else {
		saved, err = api.Create(ctx, draft)
	}
	if err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess(*saved)
	}
	return nil
}

func findProduct(products []model.Product, id string) *model.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
