package dto

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// LoanDraft is the body of POST /loans and PUT /loans/{id}.
type LoanDraft struct {
	CustomerName string              `json:"customerName" validate:"required"`
	LoanAmount   decimal.Decimal     `json:"loanAmount"   validate:"gt=0"`
	LoanDate     time.Time           `json:"loanDate"`
	DueDate      *time.Time          `json:"dueDate,omitempty"`
	InterestRate *decimal.Decimal    `json:"interestRate,omitempty"`
	Description  string              `json:"description"`
	Status       model.LoanStatus    `json:"status,omitempty"`
	Method       model.PaymentMethod `json:"paymentMethod,omitempty"`
}

// PaymentDraft is the body of POST /loans/{id}/payments.
type PaymentDraft struct {
	Amount        decimal.Decimal     `json:"amount"        validate:"gt=0"`
	Date          time.Time           `json:"date"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod" validate:"required,oneof=Cash Card 'Bank Transfer'"`
	Description   string              `json:"description"`
}

// LoanFilter is sent as query parameters of GET /loans. Zero values are
// omitted, so an empty filter lists everything.
type LoanFilter struct {
	CustomerName string
	Status       string
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
}

// Values encodes the filter as URL query parameters.
func (f LoanFilter) Values() url.Values {
	v := url.Values{}
	if f.CustomerName != "" {
		v.Set("customerName", f.CustomerName)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.StartDate != "" {
		v.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("endDate", f.EndDate)
	}
	return v
}

// PDFParams drives GET /loans/generate-pdf. The backend renders the PDF;
// the client only names the file and saves the stream.
type PDFParams struct {
	LoanID       string
	CustomerName string
	Status       string
	FilterType   string // "daily" | "monthly" for the preset reports
	StartDate    string
	EndDate      string
}

// Values encodes the parameters as URL query parameters.
func (p PDFParams) Values() url.Values {
	v := url.Values{}
	if p.LoanID != "" {
		v.Set("loanId", p.LoanID)
	}
	if p.CustomerName != "" {
		v.Set("customerName", p.CustomerName)
	}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.FilterType != "" {
		v.Set("filterType", p.FilterType)
	}
	if p.StartDate != "" {
		v.Set("startDate", p.StartDate)
	}
	if p.EndDate != "" {
		v.Set("endDate", p.EndDate)
	}
	return v
}

// Filename names the downloaded PDF: loan-receipt-* for a single loan,
// loan-report-<customer>-* for a customer report, loan-report-* otherwise.
func (p PDFParams) Filename(now time.Time) string {
	base := "loan-report"
	switch {
	case p.LoanID != "":
		base = "loan-receipt"
	case p.CustomerName != "":
		base = "loan-report-" + p.CustomerName
	}
	return fmt.Sprintf("%s-%d.pdf", base, now.UnixMilli())
}
