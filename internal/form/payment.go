package form

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/format"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// PaymentWriter is the slice of the remote client the payment form needs.
type PaymentWriter interface {
	AddPayment(ctx context.Context, loanID string, draft dto.PaymentDraft) (*model.Loan, error)
}

// PaymentForm records a repayment against a loan. The amount is checked
// against the loan's remaining balance before any network call.
type PaymentForm struct {
	Loan   model.Loan
	Draft  dto.PaymentDraft
	Errors map[string]string

	currencyLabel string
}

// NewPaymentForm returns a form for the given loan, dated today, paying
// cash by default. currencyLabel feeds the over-payment error message.
func NewPaymentForm(loan model.Loan, currencyLabel string) *PaymentForm {
	return &PaymentForm{
		Loan: loan,
		Draft: dto.PaymentDraft{
			Date:          time.Now(),
			PaymentMethod: model.PaymentCash,
		},
		Errors:        map[string]string{},
		currencyLabel: currencyLabel,
	}
}

// Remaining is the loan's outstanding balance.
func (f *PaymentForm) Remaining() decimal.Decimal { return f.Loan.Remaining() }

// Validate checks amount > 0 and amount ≤ remaining.
func (f *PaymentForm) Validate() bool {
	f.Errors = map[string]string{}
	if !f.Draft.Amount.IsPositive() {
		f.Errors["amount"] = "Payment amount must be greater than 0"
	} else if f.Draft.Amount.GreaterThan(f.Remaining()) {
		f.Errors["amount"] = fmt.Sprintf(
			"Payment amount cannot exceed remaining amount (%s)",
			format.Money(f.Remaining(), f.currencyLabel))
	}
	return len(f.Errors) == 0
}

// Submit validates and posts the payment to the loan's payment
// sub-resource. onSuccess receives the updated loan.
func (f *PaymentForm) Submit(ctx context.Context, api PaymentWriter, onSuccess func(model.Loan)) error {
	if !f.Validate() {
		return ErrInvalidDraft
	}
	if f.Draft.Date.IsZero() {
		f.Draft.Date = time.Now()
	}

	updated, err := api.AddPayment(ctx, f.Loan.ID, f.Draft)
	if err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess(*updated)
	}
	return nil
}
