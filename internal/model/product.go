package model

import "time"

// Product represents a catalogue product as returned by the sales API.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProductRequest is the write-side projection of a product.
type ProductRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

// Validate checks required fields and numeric bounds. It returns nil when the
// request is valid.
func (r ProductRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if r.Name == "" {
		errs["name"] = "Name is required"
	}
	if r.Price <= 0 {
		errs["price"] = "Price must be greater than zero"
	}
	if r.StockQuantity < 0 {
		errs["stockQuantity"] = "Stock quantity cannot be negative"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// RequestFrom maps a persisted product back into its request shape for editing.
func (p Product) RequestFrom() ProductRequest {
	return ProductRequest{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
	}
}

// InStock reports whether the product has any remaining stock.
func (p Product) InStock() bool {
	return p.StockQuantity > 0
}
