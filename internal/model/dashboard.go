package model

import "github.com/shopspring/decimal"

// ChartPeriod selects the bucketing of the sales-over-time chart.
type ChartPeriod string

const (
	PeriodWeek  ChartPeriod = "week"
	PeriodMonth ChartPeriod = "month"
	PeriodYear  ChartPeriod = "year"
)

// DashboardStats is the read-only aggregate computed by the backend.
type DashboardStats struct {
	TotalProducts    int             `json:"totalProducts"`
	LowStockProducts int             `json:"lowStockProducts"`
	TotalSales       int             `json:"totalSales"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalProfit      decimal.Decimal `json:"totalProfit"`
}

// SalesChartPoint is one bucket of the sales-over-period series.
type SalesChartPoint struct {
	Date   string          `json:"date"`
	Total  decimal.Decimal `json:"total"`
	Profit decimal.Decimal `json:"profit"`
}

// StockChartItem is one bar of the stock-level chart (lowest-stock
// products first, server-selected).
type StockChartItem struct {
	Name         string  `json:"name"`
	Stock        float64 `json:"stock"`
	MinimumStock float64 `json:"minimumStock"`
}

// CategorySlice is one wedge of the category-distribution chart.
type CategorySlice struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DailySalesRow is one row of the daily sales table.
type DailySalesRow struct {
	Date       string          `json:"date"`
	SalesCount int             `json:"salesCount"`
	Revenue    decimal.Decimal `json:"revenue"`
	Profit     decimal.Decimal `json:"profit"`
}
