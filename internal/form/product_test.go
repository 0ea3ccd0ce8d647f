package form

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// ── In-memory ProductWriter stub ─────────────────────────────────────────────

type stubProductWriter struct {
	created []dto.ProductDraft
	updated map[string]dto.ProductDraft
	err     error
}

func newStubProductWriter() *stubProductWriter {
	return &stubProductWriter{updated: map[string]dto.ProductDraft{}}
}

func (w *stubProductWriter) Create(_ context.Context, draft dto.ProductDraft) (*model.Product, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.created = append(w.created, draft)
	return &model.Product{
		ID:            uuid.NewString(),
		Name:          draft.Name,
		Category:      draft.Category,
		PurchasePrice: draft.PurchasePrice,
		SalePrice:     draft.SalePrice,
		Stock:         draft.Stock,
		MinimumStock:  draft.MinimumStock,
		Unit:          draft.Unit,
	}, nil
}

func (w *stubProductWriter) Update(_ context.Context, id string, draft dto.ProductDraft) (*model.Product, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.updated[id] = draft
	return &model.Product{ID: id, Name: draft.Name, Category: draft.Category}, nil
}

func validProductDraft() dto.ProductDraft {
	return dto.ProductDraft{
		Name:          "Basmati Rice 5kg",
		Category:      "Grocery",
		PurchasePrice: decimal.NewFromInt(1200),
		SalePrice:     decimal.NewFromInt(1400),
		Stock:         20,
		MinimumStock:  5,
		Unit:          model.UnitCount,
	}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestProductFormDefaults(t *testing.T) {
	f := NewProductForm()
	assert.Equal(t, float64(dto.DefaultMinimumStock), f.Draft.MinimumStock)
	assert.Equal(t, model.UnitCount, f.Draft.Unit)
	assert.False(t, f.Editing())
}

func TestProductFormValidation(t *testing.T) {
	f := NewProductForm()
	f.Draft = validProductDraft()
	assert.True(t, f.Validate())
	assert.Empty(t, f.Errors)

	f.Draft.Name = "   "
	assert.False(t, f.Validate())
	assert.Equal(t, "Product name is required", f.Errors["name"])

	f.Draft = validProductDraft()
	f.Draft.PurchasePrice = decimal.Zero
	assert.False(t, f.Validate())
	assert.Contains(t, f.Errors["purchasePrice"], "greater than 0")
}

func TestProductFormSalePriceBelowPurchaseBlocks(t *testing.T) {
	f := NewProductForm()
	f.Draft = validProductDraft()
	f.Draft.SalePrice = decimal.NewFromInt(1000) // below the 1200 purchase price

	assert.False(t, f.Validate())
	assert.Equal(t, "Sale price should be greater than or equal to purchase price", f.Errors["salePrice"])

	w := newStubProductWriter()
	err := f.Submit(context.Background(), w, nil)
	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.Empty(t, w.created, "invalid draft never reaches the network")
}

func TestProductFormSubmitCreateResetsDraft(t *testing.T) {
	f := NewProductForm()
	f.Draft = validProductDraft()

	w := newStubProductWriter()
	var saved *model.Product
	err := f.Submit(context.Background(), w, func(p model.Product) { saved = &p })
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Basmati Rice 5kg", saved.Name)
	assert.Equal(t, "", f.Draft.Name, "create resets the draft to defaults")
	assert.Equal(t, float64(dto.DefaultMinimumStock), f.Draft.MinimumStock)
}

func TestProductFormSubmitFailurePreservesDraft(t *testing.T) {
	f := NewProductForm()
	f.Draft = validProductDraft()

	w := newStubProductWriter()
	w.err = errors.New("backend unreachable")
	err := f.Submit(context.Background(), w, nil)
	require.Error(t, err)
	assert.Equal(t, "Basmati Rice 5kg", f.Draft.Name, "draft survives a failed submit")
}

func TestProductFormEditKeepsDraft(t *testing.T) {
	p := model.Product{
		ID:            uuid.NewString(),
		Name:          "Sugar 1kg",
		Category:      "Grocery",
		PurchasePrice: decimal.NewFromInt(150),
		SalePrice:     decimal.NewFromInt(180),
		Stock:         8,
		MinimumStock:  3,
		Unit:          model.UnitCount,
	}
	f := NewProductEditForm(p)
	require.True(t, f.Editing())

	w := newStubProductWriter()
	closed := false
	require.NoError(t, f.Submit(context.Background(), w, func(model.Product) { closed = true }))
	assert.True(t, closed)
	assert.Contains(t, w.updated, p.ID)
	assert.Equal(t, "Sugar 1kg", f.Draft.Name, "edit does not reset the draft")
}
