package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is derived server-side from payments and due date.
type LoanStatus string

const (
	LoanActive  LoanStatus = "Active"
	LoanPaid    LoanStatus = "Paid"
	LoanOverdue LoanStatus = "Overdue"
)

// Payment is owned exclusively by its parent loan and managed through the
// loan's payment sub-resource.
type Payment struct {
	ID            string          `json:"_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Description   string          `json:"description,omitempty"`
}

// Loan is a micro-loan extended to a store customer.
type Loan struct {
	ID           string           `json:"_id"`
	CustomerName string           `json:"customerName"`
	LoanAmount   decimal.Decimal  `json:"loanAmount"`
	LoanDate     time.Time        `json:"loanDate"`
	DueDate      *time.Time       `json:"dueDate,omitempty"`
	InterestRate *decimal.Decimal `json:"interestRate,omitempty"`
	Description  string           `json:"description,omitempty"`
	Status       LoanStatus       `json:"status"`
	Payments     []Payment        `json:"payments"`
}

// TotalPaid sums all recorded payments.
func (l Loan) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Remaining is the outstanding balance. Cumulative payments never exceed
// the loan amount, so this is non-negative for well-formed loans.
func (l Loan) Remaining() decimal.Decimal {
	return l.LoanAmount.Sub(l.TotalPaid())
}

// Progress is the repaid fraction as a percentage (one decimal place, e.g.
// 40.0 for 400 paid of 1000). Zero-amount loans report 0.
func (l Loan) Progress() decimal.Decimal {
	if l.LoanAmount.IsZero() {
		return decimal.Zero
	}
	return l.TotalPaid().Mul(decimal.NewFromInt(100)).DivRound(l.LoanAmount, 1)
}
