package dashboard

import (
	"context"
	"io"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// The controllers depend on these consumer-side slices of the remote
// client; apiclient's concrete types satisfy them and tests substitute
// in-memory stubs.

type ProductAPI interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, draft dto.ProductDraft) (*model.Product, error)
	Update(ctx context.Context, id string, draft dto.ProductDraft) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type SaleAPI interface {
	List(ctx context.Context) ([]model.Sale, error)
	Create(ctx context.Context, draft dto.SaleDraft) (*model.Sale, error)
	CreateManual(ctx context.Context, draft dto.ManualSaleDraft) (*model.Sale, error)
	Update(ctx context.Context, id string, draft dto.SaleDraft) (*model.Sale, error)
	UpdateManual(ctx context.Context, id string, draft dto.ManualSaleDraft) (*model.Sale, error)
	Delete(ctx context.Context, id string) error
}

type StatsAPI interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
	SalesChart(ctx context.Context, period model.ChartPeriod) ([]model.SalesChartPoint, error)
	StockChart(ctx context.Context) ([]model.StockChartItem, error)
	CategoryDistribution(ctx context.Context) ([]model.CategorySlice, error)
	DailySales(ctx context.Context) ([]model.DailySalesRow, error)
}

type LoanAPI interface {
	List(ctx context.Context, filter dto.LoanFilter) ([]model.Loan, error)
	Create(ctx context.Context, draft dto.LoanDraft) (*model.Loan, error)
	Update(ctx context.Context, id string, draft dto.LoanDraft) (*model.Loan, error)
	Delete(ctx context.Context, id string) error
	AddPayment(ctx context.Context, loanID string, draft dto.PaymentDraft) (*model.Loan, error)
	DeletePayment(ctx context.Context, loanID, paymentID string) (*model.Loan, error)
	GeneratePDF(ctx context.Context, params dto.PDFParams, w io.Writer) error
}
