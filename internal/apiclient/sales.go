package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// SalesAPI wraps the /sales resource. Stock decrements, total and profit
// are all server-side effects of these calls.
type SalesAPI struct{ c *Client }

func (a *SalesAPI) List(ctx context.Context) ([]model.Sale, error) {
	var out []model.Sale
	if err := a.c.do(ctx, http.MethodGet, "/sales", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *SalesAPI) Get(ctx context.Context, id string) (*model.Sale, error) {
	var out model.Sale
	if err := a.c.do(ctx, http.MethodGet, "/sales/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SalesAPI) Create(ctx context.Context, draft dto.SaleDraft) (*model.Sale, error) {
	var out model.Sale
	if err := a.c.do(ctx, http.MethodPost, "/sales", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SalesAPI) CreateManual(ctx context.Context, draft dto.ManualSaleDraft) (*model.Sale, error) {
	var out model.Sale
	if err := a.c.do(ctx, http.MethodPost, "/sales/manual", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits an itemized sale; the server recomputes stock deltas.
func (a *SalesAPI) Update(ctx context.Context, id string, draft dto.SaleDraft) (*model.Sale, error) {
	var out model.Sale
	if err := a.c.do(ctx, http.MethodPut, "/sales/"+id, nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateManual edits a manual sale's raw figures.
func (a *SalesAPI) UpdateManual(ctx context.Context, id string, draft dto.ManualSaleDraft) (*model.Sale, error) {
	var out model.Sale
	if err := a.c.do(ctx, http.MethodPut, "/sales/"+id, nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a sale; the server restores the reserved stock.
func (a *SalesAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, "/sales/"+id, nil, nil, nil)
}

// Today lists the current day's sales.
func (a *SalesAPI) Today(ctx context.Context) ([]model.Sale, error) {
	var out []model.Sale
	if err := a.c.do(ctx, http.MethodGet, "/sales/today", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DateRange lists sales between two YYYY-MM-DD bounds (closed interval).
func (a *SalesAPI) DateRange(ctx context.Context, startDate, endDate string) ([]model.Sale, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	var out []model.Sale
	if err := a.c.do(ctx, http.MethodGet, "/sales/date-range", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
