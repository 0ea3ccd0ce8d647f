package apiclient

import (
	"context"
	"io"
	"net/http"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// LoansAPI wraps the /loans resource and its payments sub-resource.
// Payment mutations return the full updated loan, which replaces the
// stale copy in the client's list.
type LoansAPI struct{ c *Client }

func (a *LoansAPI) List(ctx context.Context, filter dto.LoanFilter) ([]model.Loan, error) {
	var out []model.Loan
	if err := a.c.do(ctx, http.MethodGet, "/loans", filter.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *LoansAPI) Get(ctx context.Context, id string) (*model.Loan, error) {
	var out model.Loan
	if err := a.c.do(ctx, http.MethodGet, "/loans/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *LoansAPI) Create(ctx context.Context, draft dto.LoanDraft) (*model.Loan, error) {
	var out model.Loan
	if err := a.c.do(ctx, http.MethodPost, "/loans", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *LoansAPI) Update(ctx context.Context, id string, draft dto.LoanDraft) (*model.Loan, error) {
	var out model.Loan
	if err := a.c.do(ctx, http.MethodPut, "/loans/"+id, nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *LoansAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, "/loans/"+id, nil, nil, nil)
}

func (a *LoansAPI) AddPayment(ctx context.Context, loanID string, draft dto.PaymentDraft) (*model.Loan, error) {
	var out model.Loan
	if err := a.c.do(ctx, http.MethodPost, "/loans/"+loanID+"/payments", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *LoansAPI) DeletePayment(ctx context.Context, loanID, paymentID string) (*model.Loan, error) {
	var out model.Loan
	if err := a.c.do(ctx, http.MethodDelete, "/loans/"+loanID+"/payments/"+paymentID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePDF streams the server-rendered PDF report into w. A JSON body
// in the response means the server failed and is decoded as an error.
func (a *LoansAPI) GeneratePDF(ctx context.Context, params dto.PDFParams, w io.Writer) error {
	return a.c.download(ctx, "/loans/generate-pdf", params.Values(), w)
}
