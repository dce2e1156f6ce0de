package client

import (
	"context"
	"fmt"

	"sales-admin/internal/model"
)

// CustomerClient issues customer requests against /customers.
type CustomerClient struct {
	core *Client
}

// NewCustomerClient creates a customer resource client.
func NewCustomerClient(core *Client) *CustomerClient {
	return &CustomerClient{core: core}
}

// FindAll retrieves every customer.
func (c *CustomerClient) FindAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := c.core.get(ctx, "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// FindByID retrieves a single customer by ID.
func (c *CustomerClient) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var customer model.Customer
	if err := c.core.get(ctx, fmt.Sprintf("/customers/%d", id), &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Create registers a new customer.
func (c *CustomerClient) Create(ctx context.Context, req model.CustomerRequest) (*model.Customer, error) {
	var customer model.Customer
	if err := c.core.post(ctx, "/customers", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update replaces a customer's mutable fields.
func (c *CustomerClient) Update(ctx context.Context, id int64, req model.CustomerRequest) (*model.Customer, error) {
	var customer model.Customer
	if err := c.core.put(ctx, fmt.Sprintf("/customers/%d", id), req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Delete removes a customer.
func (c *CustomerClient) Delete(ctx context.Context, id int64) error {
	return c.core.delete(ctx, fmt.Sprintf("/customers/%d", id))
}
