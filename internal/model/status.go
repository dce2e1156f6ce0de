package model

import "fmt"

// OrderStatus is the closed enumeration of order lifecycle states, transmitted
// as uppercase tokens on the wire.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// Statuses returns the full enumeration in lifecycle order.
func Statuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusConfirmed,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

// ParseStatus validates a wire token against the enumeration.
func ParseStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

// Valid reports whether the status is a member of the enumeration.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing,
		StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further status change is offered. DELIVERED
// and CANCELLED are the two terminal states.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// NextOptions returns the candidate statuses offered by the status-update
// control: every status other than the current one, or nothing once the order
// is terminal. The backend owns transition legality; this layer stays
// permissive on purpose.
func (s OrderStatus) NextOptions() []OrderStatus {
	if s.IsTerminal() {
		return nil
	}
	options := make([]OrderStatus, 0, 5)
	for _, candidate := range Statuses() {
		if candidate != s {
			options = append(options, candidate)
		}
	}
	return options
}
