package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "PKR 1,500", Money(decimal.NewFromInt(1500), "PKR"))
	assert.Equal(t, "PKR 1,234,567", Money(decimal.NewFromInt(1234567), "PKR"))
	assert.Equal(t, "PKR 99.5", Money(decimal.NewFromFloat(99.5), "PKR"))
	assert.Equal(t, "PKR 0", Money(decimal.Zero, "PKR"))
}

func TestShortDate(t *testing.T) {
	d := time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "Jan 5, 2025", ShortDate(d))
	assert.Equal(t, "2025-01-05", ISODate(d))
}

func TestDayTruncation(t *testing.T) {
	d := time.Date(2025, 1, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Day(d))
	assert.True(t, Day(d).Equal(Day(time.Date(2025, 1, 5, 0, 0, 1, 0, time.UTC))))
}
