package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// DashboardAPI wraps the read-only, server-computed aggregates.
type DashboardAPI struct{ c *Client }

func (a *DashboardAPI) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var out model.DashboardStats
	if err := a.c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DashboardAPI) SalesChart(ctx context.Context, period model.ChartPeriod) ([]model.SalesChartPoint, error) {
	q := url.Values{}
	q.Set("period", string(period))
	var out []model.SalesChartPoint
	if err := a.c.do(ctx, http.MethodGet, "/dashboard/sales-chart", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *DashboardAPI) StockChart(ctx context.Context) ([]model.StockChartItem, error) {
	var out []model.StockChartItem
	if err := a.c.do(ctx, http.MethodGet, "/dashboard/stock-chart", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *DashboardAPI) CategoryDistribution(ctx context.Context) ([]model.CategorySlice, error) {
	var out []model.CategorySlice
	if err := a.c.do(ctx, http.MethodGet, "/dashboard/category-distribution", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *DashboardAPI) DailySales(ctx context.Context) ([]model.DailySalesRow, error) {
	var out []model.DailySalesRow
	if err := a.c.do(ctx, http.MethodGet, "/dashboard/daily-sales", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
