package draft

import (
	"errors"
	"sync"

	"sales-admin/internal/model"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateProduct is returned when a product already present in the
	// draft is added again.
	ErrDuplicateProduct = errors.New("product already added to order")

	// ErrOutOfStock is returned when a product without remaining stock is
	// added.
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrSubmitInFlight is returned when a submit is attempted while an
	// earlier one has not resolved.
	ErrSubmitInFlight = errors.New("order submission already in flight")

	// ErrNotSubmittable is returned when the draft lacks a customer or items.
	ErrNotSubmittable = errors.New("order needs a customer and at least one item")
)

// LineItem is one product-quantity pairing in a working order. ProductName,
// UnitPrice, and MaxStock are snapshots of the product at selection time.
type LineItem struct {
	ProductID   int64
	ProductName string
	UnitPrice   float64
	Quantity    int
	MaxStock    int
}

// Subtotal is the provisional per-line amount. The server recomputes it
// authoritatively at creation.
func (li LineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// Draft is the working state of an order under composition: a customer
// reference plus an ordered sequence of line items. All methods are safe for
// concurrent use; each browser session owns exactly one draft.
type Draft struct {
	id uuid.UUID

	mu         sync.Mutex
	customerID int64
	items      []LineItem
	state      SubmissionState
	lastError  string
	touchedAt  int64 // unix seconds, maintained by the store
}

func newDraft(id uuid.UUID) *Draft {
	return &Draft{id: id}
}

// ID returns the draft's store key.
func (d *Draft) ID() uuid.UUID {
	return d.id
}

// SetCustomer records the selected customer.
func (d *Draft) SetCustomer(customerID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customerID = customerID
}

// CustomerID returns the selected customer, zero when none is chosen.
func (d *Draft) CustomerID() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.customerID
}

// AddProduct appends a new line item with quantity 1. A product may appear at
// most once in the draft, and only while it has stock.
func (d *Draft) AddProduct(p model.Product) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, item := range d.items {
		if item.ProductID == p.ID {
			return ErrDuplicateProduct
		}
	}
	if p.StockQuantity < 1 {
		return ErrOutOfStock
	}

	d.items = append(d.items, LineItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    1,
		MaxStock:    p.StockQuantity,
	})
	return nil
}

// RemoveProduct deletes the line item for the given product, if present.
func (d *Draft) RemoveProduct(productID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	kept := d.items[:0]
	for _, item := range d.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	d.items = kept
}

// SetQuantity updates a line item's quantity, clamped between 1 and the
// product's stock ceiling captured at selection time.
func (d *Draft) SetQuantity(productID int64, quantity int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.items {
		if d.items[i].ProductID != productID {
			continue
		}
		if quantity < 1 {
			quantity = 1
		}
		if quantity > d.items[i].MaxStock {
			quantity = d.items[i].MaxStock
		}
		d.items[i].Quantity = quantity
		return
	}
}

// Items returns a copy of the current line items.
func (d *Draft) Items() []LineItem {
	d.mu.Lock()
	defer d.mu.Unlock()

	items := make([]LineItem, len(d.items))
	copy(items, d.items)
	return items
}

// Total is the provisional order total: the sum of unitPrice x quantity over
// all current line items. The server's total is authoritative after creation.
func (d *Draft) Total() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	var total float64
	for _, item := range d.items {
		total += item.Subtotal()
	}
	return total
}

// SelectableProducts filters the offered products down to those not already in
// the draft, so a product cannot be added twice.
func (d *Draft) SelectableProducts(products []model.Product) []model.Product {
	d.mu.Lock()
	used := make(map[int64]bool, len(d.items))
	for _, item := range d.items {
		used[item.ProductID] = true
	}
	d.mu.Unlock()

	selectable := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !used[p.ID] {
			selectable = append(selectable, p)
		}
	}
	return selectable
}

// CanSubmit reports whether the draft has a customer and at least one item.
func (d *Draft) CanSubmit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.customerID > 0 && len(d.items) > 0
}

// Request maps the working sequence into the order-creation payload.
func (d *Draft) Request() model.OrderRequest {
	d.mu.Lock()
	defer d.mu.Unlock()

	items := make([]model.OrderItemRequest, 0, len(d.items))
	for _, item := range d.items {
		items = append(items, model.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return model.OrderRequest{CustomerID: d.customerID, Items: items}
}

// BeginSubmit moves the draft into Submitting. It fails when a submit is
// already in flight or the draft is not submittable, so a double-click can
// never post two orders.
func (d *Draft) BeginSubmit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	if d.customerID <= 0 || len(d.items) == 0 {
		return ErrNotSubmittable
	}
	d.state = StateSubmitting
	d.lastError = ""
	return nil
}

// FinishSubmit resolves an in-flight submit. On failure the draft returns to
// an editable, resubmittable state carrying the error message.
func (d *Draft) FinishSubmit(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateSubmitting {
		return
	}
	if err != nil {
		d.state = StateFailed
		d.lastError = err.Error()
		return
	}
	d.state = StateSucceeded
}

// State returns the current submission state.
func (d *Draft) State() SubmissionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// LastError returns the message from the most recent failed submit.
func (d *Draft) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastError
}
