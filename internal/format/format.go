// Package format renders money and dates the way the dashboard displays
// them: thousands separators with a fixed currency label, short dates.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Money renders an amount as "<label> 1,234" (two fraction digits kept
// only when the amount has them).
func Money(amount decimal.Decimal, label string) string {
	f, _ := amount.Float64()
	return printer.Sprintf("%s %v", label, number.Decimal(f, number.MaxFractionDigits(2)))
}

// ShortDate renders a date as "Jan 5, 2025".
func ShortDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Day truncates t to midnight in its own location. Used for closed-interval
// date comparisons.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ISODate renders a date as YYYY-MM-DD, the wire format for date filters.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
