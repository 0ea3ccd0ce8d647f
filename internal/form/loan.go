package form

import (
	"context"
	"strings"
	"time"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// LoanWriter is the slice of the remote client the loan form needs.
type LoanWriter interface {
	Create(ctx context.Context, draft dto.LoanDraft) (*model.Loan, error)
	Update(ctx context.Context, id string, draft dto.LoanDraft) (*model.Loan, error)
}

// LoanForm drives the "new loan" and "edit loan" dialogs.
type LoanForm struct {
	Draft  dto.LoanDraft
	Errors map[string]string

	editingID string
}

// NewLoanForm returns a create-mode form dated today.
func NewLoanForm() *LoanForm {
	return &LoanForm{
		Draft:  dto.LoanDraft{LoanDate: time.Now()},
		Errors: map[string]string{},
	}
}

// NewLoanEditForm pre-fills a form from an existing loan.
func NewLoanEditForm(l model.Loan) *LoanForm {
	return &LoanForm{
		Draft: dto.LoanDraft{
			CustomerName: l.CustomerName,
			LoanAmount:   l.LoanAmount,
			LoanDate:     l.LoanDate,
			DueDate:      l.DueDate,
			InterestRate: l.InterestRate,
			Description:  l.Description,
		},
		Errors:    map[string]string{},
		editingID: l.ID,
	}
}

// Editing reports whether the form updates an existing loan.
func (f *LoanForm) Editing() bool { return f.editingID != "" }

// Validate checks the draft and fills Errors with field-level messages.
func (f *LoanForm) Validate() bool {
	f.Errors = map[string]string{}
	if strings.TrimSpace(f.Draft.CustomerName) == "" {
		f.Errors["customerName"] = "Customer name is required"
	}
	if !f.Draft.LoanAmount.IsPositive() {
		f.Errors["loanAmount"] = "Loan amount must be greater than 0"
	}
	if f.Draft.InterestRate != nil && f.Draft.InterestRate.IsNegative() {
		f.Errors["interestRate"] = "Interest rate cannot be negative"
	}
	return len(f.Errors) == 0
}

// Submit validates and sends the loan. A successful create resets the
// draft; remote failures preserve it.
func (f *LoanForm) Submit(ctx context.Context, api LoanWriter, onSuccess func(model.Loan)) error {
	if !f.Validate() {
		return ErrInvalidDraft
	}

	var (
		saved *model.Loan
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
		f.Draft = dto.LoanDraft{LoanDate: time.Now()}
	}
	if onSuccess != nil {
		onSuccess(*saved)
	}
	return nil
}
