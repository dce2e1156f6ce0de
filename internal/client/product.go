package client

import (
	"context"
	"fmt"
	"net/url"

	"sales-admin/internal/model"
)

// ProductClient issues product requests against /products.
type ProductClient struct {
	core *Client
}

// NewProductClient creates a product resource client.
func NewProductClient(core *Client) *ProductClient {
	return &ProductClient{core: core}
}

// FindAll retrieves every product.
func (c *ProductClient) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.core.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID retrieves a single product by ID.
func (c *ProductClient) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := c.core.get(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByName performs a server-side name substring search.
func (c *ProductClient) FindByName(ctx context.Context, name string) ([]model.Product, error) {
	var products []model.Product
	path := "/products/search?name=" + url.QueryEscape(name)
	if err := c.core.get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindInStock retrieves only products with stock remaining.
func (c *ProductClient) FindInStock(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.core.get(ctx, "/products/in-stock", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create registers a new product.
func (c *ProductClient) Create(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	var product model.Product
	if err := c.core.post(ctx, "/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces a product's mutable fields.
func (c *ProductClient) Update(ctx context.Context, id int64, req model.ProductRequest) (*model.Product, error) {
	var product model.Product
	if err := c.core.put(ctx, fmt.Sprintf("/products/%d", id), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product. The server rejects the delete while orders still
// reference it.
func (c *ProductClient) Delete(ctx context.Context, id int64) error {
	return c.core.delete(ctx, fmt.Sprintf("/products/%d", id))
}
