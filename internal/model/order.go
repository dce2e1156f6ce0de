package model

import "time"

// Order represents a customer order as returned by the sales API. TotalAmount
// and per-item subtotals are server-authoritative; the client only computes a
// provisional total while composing a new order.
type Order struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customerId"`
	CustomerName string      `json:"customerName,omitempty"`
	OrderDate    time.Time   `json:"orderDate"`
	Status       OrderStatus `json:"status"`
	TotalAmount  float64     `json:"totalAmount"`
	Items        []OrderItem `json:"items"`
}

// OrderItem is one product line within a persisted order. Immutable once the
// order is created; UnitPrice is a snapshot taken at order time.
type OrderItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderRequest is the write-side projection used to create an order.
type OrderRequest struct {
	CustomerID int64              `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single product-quantity pair in an order request.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderStatusUpdate is the narrow payload for PUT /orders/{id}/status.
type OrderStatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// Validate checks that the order references a customer and carries at least
// one item with a positive quantity.
func (r OrderRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if r.CustomerID <= 0 {
		errs["customerId"] = "A customer must be selected"
	}
	if len(r.Items) == 0 {
		errs["items"] = "At least one item is required"
	}
	for _, item := range r.Items {
		if item.Quantity < 1 {
			errs["items"] = "Item quantities must be at least 1"
			break
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Deletable reports whether this order may still be deleted. Deletion is only
// offered while the order is pending.
func (o Order) Deletable() bool {
	return o.Status == StatusPending
}
