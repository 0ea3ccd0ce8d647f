package form

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// ── In-memory SaleWriter stub ────────────────────────────────────────────────

type stubSaleWriter struct {
	created []dto.SaleDraft
	updated map[string]dto.SaleDraft
	err     error
}

func newStubSaleWriter() *stubSaleWriter {
	return &stubSaleWriter{updated: map[string]dto.SaleDraft{}}
}

func (w *stubSaleWriter) Create(_ context.Context, draft dto.SaleDraft) (*model.Sale, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.created = append(w.created, draft)
	return &model.Sale{ID: "sale-1", PaymentMethod: draft.PaymentMethod}, nil
}

func (w *stubSaleWriter) Update(_ context.Context, id string, draft dto.SaleDraft) (*model.Sale, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.updated[id] = draft
	return &model.Sale{ID: id, PaymentMethod: draft.PaymentMethod}, nil
}

func testProduct(id, name string, stock float64) model.Product {
	return model.Product{
		ID:            id,
		Name:          name,
		Stock:         stock,
		PurchasePrice: decimal.NewFromInt(100),
		SalePrice:     decimal.NewFromInt(130),
		Unit:          model.UnitCount,
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestSaleFormWithinStockSubmits(t *testing.T) {
	f := NewSaleForm()
	f.SetLineProduct(0, testProduct("p1", "Cooking Oil", 2))
	f.SetLineQuantity(0, 2)

	w := newStubSaleWriter()
	var saved *model.Sale
	require.NoError(t, f.Submit(context.Background(), w, func(s model.Sale) { saved = &s }))
	require.NotNil(t, saved)
	require.Len(t, w.created, 1)
	assert.Equal(t, 2.0, w.created[0].Items[0].Quantity)
}

func TestSaleFormQuantityClampedToAvailableStock(t *testing.T) {
	f := NewSaleForm()
	f.SetLineProduct(0, testProduct("p1", "Cooking Oil", 2))

	f.SetLineQuantity(0, 3)
	assert.Equal(t, 2.0, f.Lines[0].Quantity, "quantity edits clamp to available stock")
}

func TestSaleFormStockExceededBlocksSubmit(t *testing.T) {
	// Build the over-request directly, bypassing the clamp (the UI can get
	// here when stock shrinks between selection and submit).
	sale := model.Sale{ID: "s1", Items: []model.SaleItem{{ProductID: "p1", ProductName: "Cooking Oil", Quantity: 1}}}
	f := NewSaleEditForm(sale, []model.Product{testProduct("p1", "Cooking Oil", 1)})
	f.Lines[0].Quantity = 5 // available = 1 stock + 1 reserved = 2

	assert.True(t, f.HasStockError())
	assert.False(t, f.Validate())
	require.NotEmpty(t, f.Errors)
	assert.Contains(t, f.Errors[0], "exceeds available stock")

	w := newStubSaleWriter()
	err := f.Submit(context.Background(), w, nil)
	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.Empty(t, w.updated, "stock errors always block the network call")
}

func TestSaleFormRequiresProductAndQuantity(t *testing.T) {
	f := NewSaleForm()

	assert.False(t, f.Validate())
	assert.Contains(t, f.Errors[0], "Please select a product")

	f.SetLineProduct(0, testProduct("p1", "Tea", 10))
	assert.False(t, f.Validate())
	assert.Contains(t, f.Errors[0], "Quantity must be greater than 0")
}

func TestSaleEditFormAvailableStockIncludesReservation(t *testing.T) {
	sale := model.Sale{
		ID:            "s1",
		PaymentMethod: model.PaymentCard,
		Items: []model.SaleItem{
			{ProductID: "p1", ProductName: "Flour", Quantity: 3, Unit: model.UnitKG},
		},
	}
	f := NewSaleEditForm(sale, []model.Product{testProduct("p1", "Flour", 4)})

	// 4 in stock + 3 already reserved by this sale.
	assert.Equal(t, 7.0, f.AvailableStock(0))
	f.SetLineQuantity(0, 7)
	assert.True(t, f.Validate())

	w := newStubSaleWriter()
	require.NoError(t, f.Submit(context.Background(), w, nil))
	assert.Contains(t, w.updated, "s1")
}

func TestSaleEditFormDuplicateProductLines(t *testing.T) {
	// Two lines for the same product each get stock + their combined
	// reservation, so jointly they can exceed real stock. The backend
	// re-validates on submit; this documents the client-side behavior.
	sale := model.Sale{
		ID: "s1",
		Items: []model.SaleItem{
			{ProductID: "p1", ProductName: "Sugar", Quantity: 2},
			{ProductID: "p1", ProductName: "Sugar", Quantity: 3},
		},
	}
	f := NewSaleEditForm(sale, []model.Product{testProduct("p1", "Sugar", 1)})

	assert.Equal(t, 3.0, f.AvailableStock(0), "stock + this line's own reservation")
	assert.Equal(t, 4.0, f.AvailableStock(1))

	f.SetLineProduct(0, testProduct("p1", "Sugar", 1))
	assert.Equal(t, 6.0, f.AvailableStock(0), "re-selection counts the whole sale's reservation")
}

func TestSaleFormRemoveLine(t *testing.T) {
	f := NewSaleForm()
	f.SetLineProduct(0, testProduct("p1", "Tea", 10))
	f.AddLine()
	f.SetLineProduct(1, testProduct("p2", "Salt", 5))

	f.RemoveLine(0)
	require.Len(t, f.Lines, 1)
	assert.Equal(t, "p2", f.Lines[0].ProductID)
	assert.Equal(t, 5.0, f.AvailableStock(0))
}
