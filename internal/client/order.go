package client

import (
	"context"
	"fmt"

	"sales-admin/internal/model"
)

// OrderClient issues order requests against /orders.
type OrderClient struct {
	core *Client
}

// NewOrderClient creates an order resource client.
func NewOrderClient(core *Client) *OrderClient {
	return &OrderClient{core: core}
}

// FindAll retrieves every order.
func (c *OrderClient) FindAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.core.get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByID retrieves a single order with its items.
func (c *OrderClient) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := c.core.get(ctx, fmt.Sprintf("/orders/%d", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByCustomerID retrieves every order placed by one customer.
func (c *OrderClient) FindByCustomerID(ctx context.Context, customerID int64) ([]model.Order, error) {
	var orders []model.Order
	if err := c.core.get(ctx, fmt.Sprintf("/orders/customer/%d", customerID), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByStatus retrieves every order in the given status.
func (c *OrderClient) FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order
	if err := c.core.get(ctx, fmt.Sprintf("/orders/status/%s", status), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Create places a new order.
func (c *OrderClient) Create(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	var order model.Order
	if err := c.core.post(ctx, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus issues the status-only PUT and returns the server's recomputed
// view of the order.
func (c *OrderClient) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	var order model.Order
	body := model.OrderStatusUpdate{Status: status}
	if err := c.core.put(ctx, fmt.Sprintf("/orders/%d/status", id), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Delete removes an order.
func (c *OrderClient) Delete(ctx context.Context, id int64) error {
	return c.core.delete(ctx, fmt.Sprintf("/orders/%d", id))
}
