package dashboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mustehsanCodes/ali-store-frontend/internal/apierror"
	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/form"
	"github.com/mustehsanCodes/ali-store-frontend/internal/format"
	"github.com/mustehsanCodes/ali-store-frontend/internal/listview"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// LoansController is the independently-stateful sub-controller behind the
// loans tab. Customer, status and date filters are applied server-side
// (query parameters); only the search box filters the fetched slice.
type LoansController struct {
	api      LoanAPI
	notifier Notifier
	currency string
	now      func() time.Time

	Loading bool
	Loans   []model.Loan
	List    *listview.Engine[model.Loan]

	CustomerFilter string
	StatusFilter   string
	DateFilter     string // all | today | thisWeek | thisMonth

	Dialog Dialog
}

func newLoansController(api LoanAPI, notifier Notifier, currency string, pageSize int, now func() time.Time) *LoansController {
	lc := &LoansController{
		api:        api,
		notifier:   notifier,
		currency:   currency,
		now:        now,
		DateFilter: listview.Sentinel,
		List:       listview.New[model.Loan](pageSize),
	}
	lc.List.SearchFields(func(l model.Loan) []string {
		return []string{l.CustomerName}
	})
	return lc
}

// Fetch loads the loan list with the active server-side filters. On
// failure the list resets to empty.
func (lc *LoansController) Fetch(ctx context.Context) {
	lc.Loading = true
	defer func() { lc.Loading = false }()

	loans, err := lc.api.List(ctx, lc.filter())
	if err != nil {
		log.Error().Err(err).Msg("loans fetch failed")
		lc.setLoans(nil)
		lc.notifier.Error("Failed to fetch loans")
		return
	}
	lc.setLoans(loans)
}

// filter translates the date preset into concrete bounds, as the loans
// screen does: today = [today, today], thisWeek = [week start, today],
// thisMonth = [month start, today].
func (lc *LoansController) filter() dto.LoanFilter {
	f := dto.LoanFilter{CustomerName: lc.CustomerFilter, Status: lc.StatusFilter}
	now := lc.now()
	switch lc.DateFilter {
	case "today":
		f.StartDate = format.ISODate(now)
		f.EndDate = format.ISODate(now)
	case "thisWeek":
		weekStart := now.AddDate(0, 0, -int(now.Weekday()))
		f.StartDate = format.ISODate(weekStart)
		f.EndDate = format.ISODate(now)
	case "thisMonth":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		f.StartDate = format.ISODate(monthStart)
		f.EndDate = format.ISODate(now)
	}
	return f
}

// SetCustomerFilter refetches with a new customer-name filter.
func (lc *LoansController) SetCustomerFilter(ctx context.Context, name string) {
	lc.CustomerFilter = name
	lc.Fetch(ctx)
}

// SetStatusFilter refetches with a new status filter.
func (lc *LoansController) SetStatusFilter(ctx context.Context, status string) {
	lc.StatusFilter = status
	lc.Fetch(ctx)
}

// SetDateFilter refetches with a new date preset.
func (lc *LoansController) SetDateFilter(ctx context.Context, preset string) {
	lc.DateFilter = preset
	lc.Fetch(ctx)
}

// ClearFilters resets search and all server-side filters, then refetches.
func (lc *LoansController) ClearFilters(ctx context.Context) {
	lc.List.SetSearch("")
	lc.CustomerFilter = ""
	lc.StatusFilter = ""
	lc.DateFilter = listview.Sentinel
	lc.Fetch(ctx)
}

// SubmitLoanForm submits the new/edit loan dialog.
func (lc *LoansController) SubmitLoanForm(ctx context.Context, f *form.LoanForm) bool {
	editing := f.Editing()
	err := f.Submit(ctx, lc.api, func(saved model.Loan) {
		if editing {
			lc.setLoans(replaceLoan(lc.Loans, saved))
			lc.notifier.Success("Loan updated successfully")
		} else {
			lc.setLoans(append([]model.Loan{saved}, lc.Loans...))
			lc.notifier.Success("Loan created successfully")
		}
		lc.Dialog.Close()
	})
	if err == nil {
		return true
	}
	if !errors.Is(err, form.ErrInvalidDraft) {
		fallback := "Failed to create loan"
		if editing {
			fallback = "Failed to update loan"
		}
		lc.notifier.Error(apierror.UserMessage(err, fallback))
	}
	return false
}

// DeleteLoan removes a loan and its payments.
func (lc *LoansController) DeleteLoan(ctx context.Context, id string) {
	if err := lc.api.Delete(ctx, id); err != nil {
		lc.notifier.Error(apierror.UserMessage(err, "Failed to delete loan"))
		return
	}
	lc.setLoans(removeLoan(lc.Loans, id))
	lc.Dialog.Close()
	lc.notifier.Success("Loan deleted successfully")
}

// SubmitPaymentForm records a payment; over-payment is rejected by the
// form before any network call. The server's updated loan replaces the
// stale copy in the list (and in the open details dialog).
func (lc *LoansController) SubmitPaymentForm(ctx context.Context, f *form.PaymentForm) bool {
	err := f.Submit(ctx, lc.api, func(updated model.Loan) {
		lc.setLoans(replaceLoan(lc.Loans, updated))
		if lc.Dialog.Loan != nil && lc.Dialog.Loan.ID == updated.ID {
			lc.Dialog.Loan = &updated
		}
		lc.notifier.Success("Payment added successfully")
	})
	if err == nil {
		return true
	}
	if !errors.Is(err, form.ErrInvalidDraft) {
		lc.notifier.Error(apierror.UserMessage(err, "Failed to add payment"))
	}
	return false
}

// DeletePayment removes one payment from a loan and reconciles the list
// with the server's updated copy.
func (lc *LoansController) DeletePayment(ctx context.Context, loanID, paymentID string) error {
	updated, err := lc.api.DeletePayment(ctx, loanID, paymentID)
	if err != nil {
		lc.notifier.Error(apierror.UserMessage(err, "Failed to delete payment"))
		return err
	}
	lc.setLoans(replaceLoan(lc.Loans, *updated))
	if lc.Dialog.Loan != nil && lc.Dialog.Loan.ID == updated.ID {
		lc.Dialog.Loan = updated
	}
	return nil
}

// GeneratePDF asks the server to render a report for the active filters
// and saves the stream under dir. The filename encodes the report scope.
func (lc *LoansController) GeneratePDF(ctx context.Context, dir string) error {
	params := dto.PDFParams{CustomerName: lc.CustomerFilter, Status: lc.StatusFilter}
	now := lc.now()
	switch lc.DateFilter {
	case "today":
		params.FilterType = "daily"
		params.StartDate = format.ISODate(now)
	case "thisMonth":
		params.FilterType = "monthly"
		params.StartDate = format.ISODate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	case "thisWeek":
		weekStart := now.AddDate(0, 0, -int(now.Weekday()))
		params.StartDate = format.ISODate(weekStart)
		params.EndDate = format.ISODate(now)
	}

	path := filepath.Join(dir, params.Filename(now))
	file, err := os.Create(path)
	if err != nil {
		lc.notifier.Error("Failed to generate PDF")
		return fmt.Errorf("loans: create %s: %w", path, err)
	}
	defer file.Close()

	if err := lc.api.GeneratePDF(ctx, params, file); err != nil {
		lc.notifier.Error(apierror.UserMessage(err, "Failed to generate PDF"))
		os.Remove(path)
		return err
	}
	lc.notifier.Success("PDF generated successfully")
	return nil
}

func (lc *LoansController) setLoans(loans []model.Loan) {
	lc.Loans = loans
	lc.List.SetItems(loans)
}

func replaceLoan(loans []model.Loan, updated model.Loan) []model.Loan {
	out := make([]model.Loan, len(loans))
	for i, l := range loans {
		if l.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = l
		}
	}
	return out
}

func removeLoan(loans []model.Loan, id string) []model.Loan {
	out := loans[:0:0]
	for _, l := range loans {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}
