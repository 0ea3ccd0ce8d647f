package apiclient

import (
	"context"
	"net/http"

	"github.com/mustehsanCodes/ali-store-frontend/internal/dto"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// ProductsAPI wraps the /products resource.
type ProductsAPI struct{ c *Client }

func (a *ProductsAPI) List(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := a.c.do(ctx, http.MethodGet, "/products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *ProductsAPI) Get(ctx context.Context, id string) (*model.Product, error) {
	var out model.Product
	if err := a.c.do(ctx, http.MethodGet, "/products/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ProductsAPI) Create(ctx context.Context, draft dto.ProductDraft) (*model.Product, error) {
	var out model.Product
	if err := a.c.do(ctx, http.MethodPost, "/products", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ProductsAPI) Update(ctx context.Context, id string, draft dto.ProductDraft) (*model.Product, error) {
	var out model.Product
	if err := a.c.do(ctx, http.MethodPut, "/products/"+id, nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ProductsAPI) Delete(ctx context.Context, id string) error {
	return a.c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil, nil)
}

// LowStock lists products the server flags as below their minimum.
func (a *ProductsAPI) LowStock(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := a.c.do(ctx, http.MethodGet, "/products/low-stock", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
