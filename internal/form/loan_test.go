package form

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// ── In-memory loan/payment stubs ─────────────────────────────────────────────

type stubLoanWriter struct {
	created []dto.LoanDraft
	updated map[string]dto.LoanDraft
	err     error
}

func newStubLoanWriter() *stubLoanWriter {
	return &stubLoanWriter{updated: map[string]dto.LoanDraft{}}
}

func (w *stubLoanWriter) Create(_ context.Context, draft dto.LoanDraft) (*model.Loan, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.created = append(w.created, draft)
	return &model.Loan{ID: "loan-1", CustomerName: draft.CustomerName, LoanAmount: draft.LoanAmount, Status: model.LoanActive}, nil
}

func (w *stubLoanWriter) Update(_ context.Context, id string, draft dto.LoanDraft) (*model.Loan, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.updated[id] = draft
	return &model.Loan{ID: id, CustomerName: draft.CustomerName, LoanAmount: draft.LoanAmount}, nil
}

type stubPaymentWriter struct {
	added map[string][]dto.PaymentDraft
	err   error
	loan  model.Loan
}

func (w *stubPaymentWriter) AddPayment(_ context.Context, loanID string, draft dto.PaymentDraft) (*model.Loan, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.added == nil {
		w.added = map[string][]dto.PaymentDraft{}
	}
	w.added[loanID] = append(w.added[loanID], draft)
	updated := w.loan
	updated.Payments = append(updated.Payments, model.Payment{
		ID: "pay-new", Amount: draft.Amount, Date: draft.Date, PaymentMethod: draft.PaymentMethod,
	})
	return &updated, nil
}

func activeLoan() model.Loan {
	return model.Loan{
		ID:           "loan-1",
		CustomerName: "Ahmed Khan",
		LoanAmount:   decimal.NewFromInt(1000),
		LoanDate:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:       model.LoanActive,
		Payments: []model.Payment{
			{ID: "pay-1", Amount: decimal.NewFromInt(400), PaymentMethod: model.PaymentCash},
		},
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestLoanFormValidation(t *testing.T) {
	f := NewLoanForm()
	assert.False(t, f.Validate())
	assert.Equal(t, "Customer name is required", f.Errors["customerName"])
	assert.Equal(t, "Loan amount must be greater than 0", f.Errors["loanAmount"])

	f.Draft.CustomerName = "  "
	f.Draft.LoanAmount = decimal.NewFromInt(500)
	assert.False(t, f.Validate())
	assert.Contains(t, f.Errors, "customerName")

	f.Draft.CustomerName = "Ahmed Khan"
	assert.True(t, f.Validate())
}

func TestLoanFormSubmitCreate(t *testing.T) {
	f := NewLoanForm()
	f.Draft.CustomerName = "Ahmed Khan"
	f.Draft.LoanAmount = decimal.NewFromInt(500)

	w := newStubLoanWriter()
	var saved *model.Loan
	require.NoError(t, f.Submit(context.Background(), w, func(l model.Loan) { saved = &l }))
	require.NotNil(t, saved)
	assert.Equal(t, "Ahmed Khan", saved.CustomerName)
	assert.Equal(t, "", f.Draft.CustomerName, "create resets the draft")
}

func TestPaymentFormRemaining(t *testing.T) {
	f := NewPaymentForm(activeLoan(), "PKR")
	assert.True(t, f.Remaining().Equal(decimal.NewFromInt(600)))
}

func TestPaymentFormRejectsOverpayment(t *testing.T) {
	f := NewPaymentForm(activeLoan(), "PKR")
	f.Draft.Amount = decimal.NewFromInt(700) // remaining is 600

	assert.False(t, f.Validate())
	assert.Equal(t, "Payment amount cannot exceed remaining amount (PKR 600)", f.Errors["amount"])

	w := &stubPaymentWriter{loan: activeLoan()}
	err := f.Submit(context.Background(), w, nil)
	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.Empty(t, w.added, "over-payment is rejected before any network call")
}

func TestPaymentFormRejectsNonPositiveAmount(t *testing.T) {
	f := NewPaymentForm(activeLoan(), "PKR")
	f.Draft.Amount = decimal.Zero
	assert.False(t, f.Validate())
	assert.Equal(t, "Payment amount must be greater than 0", f.Errors["amount"])
}

func TestPaymentFormSubmitWithinRemaining(t *testing.T) {
	f := NewPaymentForm(activeLoan(), "PKR")
	f.Draft.Amount = decimal.NewFromInt(600)

	w := &stubPaymentWriter{loan: activeLoan()}
	var updated *model.Loan
	require.NoError(t, f.Submit(context.Background(), w, func(l model.Loan) { updated = &l }))
	require.NotNil(t, updated)
	assert.True(t, updated.Remaining().IsZero())
	require.Len(t, w.added["loan-1"], 1)
}
