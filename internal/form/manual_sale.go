package form

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// ManualSaleWriter is the slice of the remote client the manual-sale form needs.
type ManualSaleWriter interface {
	CreateManual(ctx context.Context, draft dto.ManualSaleDraft) (*model.Sale, error)
	UpdateManual(ctx context.Context, id string, draft dto.ManualSaleDraft) (*model.Sale, error)
}

// ManualSaleForm records a sale as raw total/profit figures, without line
// items (bulk counter sales entered after the fact).
type ManualSaleForm struct {
	Amount        decimal.Decimal
	Profit        decimal.Decimal
	PaymentMethod model.PaymentMethod
	Description   string
	Date          time.Time
	Errors        map[string]string

	editingID string
}

// NewManualSaleForm returns a create-mode form dated today.
func NewManualSaleForm() *ManualSaleForm {
	return &ManualSaleForm{
		PaymentMethod: model.PaymentCash,
		Date:          time.Now(),
		Errors:        map[string]string{},
	}
}

// NewManualSaleEditForm pre-fills a form from an existing manual sale.
func NewManualSaleEditForm(sale model.Sale) *ManualSaleForm {
	return &ManualSaleForm{
		Amount:        sale.Total,
		Profit:        sale.Profit,
		PaymentMethod: sale.PaymentMethod,
		Description:   sale.Description,
		Date:          sale.Date,
		Errors:        map[string]string{},
		editingID:     sale.ID,
	}
}

// Editing reports whether the form updates an existing sale.
func (f *ManualSaleForm) Editing() bool { return f.editingID != "" }

// Validate checks amount > 0 and profit ≥ 0.
func (f *ManualSaleForm) Validate() bool {
	f.Errors = map[string]string{}
	if !f.Amount.IsPositive() {
		f.Errors["amount"] = "Amount must be greater than 0"
	}
	if f.Profit.IsNegative() {
		f.Errors["profit"] = "Profit cannot be negative"
	}
	return len(f.Errors) == 0
}

// Draft assembles the request payload; an unset date defaults to now.
func (f *ManualSaleForm) Draft() dto.ManualSaleDraft {
	date := f.Date
	if date.IsZero() {
		date = time.Now()
	}
	return dto.ManualSaleDraft{
		Total:         f.Amount,
		Profit:        f.Profit,
		PaymentMethod: f.PaymentMethod,
		Description:   f.Description,
		Date:          date,
		IsManual:      true,
	}
}

// Submit validates and sends the manual sale. A successful create resets
// the figures; remote failures preserve them.
func (f *ManualSaleForm) Submit(ctx context.Context, api ManualSaleWriter, onSuccess func(model.Sale)) error {
	if !f.Validate() {
		return ErrInvalidDraft
	}

	var (
		saved *model.Sale
		err   error
	)
	if f.Editing() {
		saved, err = api.UpdateManual(ctx, f.editingID, f.Draft())
	} else {
		saved, err = api.CreateManual(ctx, f.Draft())
	}
	if err != nil {
		return err
	}

	if !f.Editing() {
		f.Amount = decimal.Zero
		f.Profit = decimal.Zero
		f.Description = ""
		f.Date = time.Now()
	}
	if onSuccess != nil {
		onSuccess(*saved)
	}
	return nil
}
