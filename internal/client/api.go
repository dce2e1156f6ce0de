package client

import (
	"context"

	"sales-admin/internal/model"
)

// CustomerAPI defines the customer operations of the sales API.
type CustomerAPI interface {
	// FindAll retrieves every customer.
	FindAll(ctx context.Context) ([]model.Customer, error)

	// FindByID retrieves a single customer. Fails if not found.
	FindByID(ctx context.Context, id int64) (*model.Customer, error)

	// Create registers a new customer. Fails on validation errors such as a
	// duplicate email.
	Create(ctx context.Context, req model.CustomerRequest) (*model.Customer, error)

	// Update replaces a customer's mutable fields.
	Update(ctx context.Context, id int64, req model.CustomerRequest) (*model.Customer, error)

	// Delete removes a customer. Fails if referential constraints are
	// violated server-side.
	Delete(ctx context.Context, id int64) error
}

// ProductAPI defines the product operations of the sales API.
type ProductAPI interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)

	// FindByName performs a server-side substring search.
	FindByName(ctx context.Context, name string) ([]model.Product, error)

	// FindInStock retrieves only products with stock remaining.
	FindInStock(ctx context.Context) ([]model.Product, error)

	Create(ctx context.Context, req model.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id int64, req model.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}

// OrderAPI defines the order operations of the sales API.
type OrderAPI interface {
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	FindByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error)
	FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)

	// Create places a new order. The server assigns identity, snapshots unit
	// prices, and computes the authoritative total.
	Create(ctx context.Context, req model.OrderRequest) (*model.Order, error)

	// UpdateStatus issues the narrow status-only PUT and returns the order as
	// recomputed by the server.
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)

	// Delete removes an order. Only pending orders are deletable.
	Delete(ctx context.Context, id int64) error
}
