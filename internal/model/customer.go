package model

import (
	"regexp"
	"time"
)

// Customer represents a customer account as returned by the sales API.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerRequest is the write-side projection of a customer. Server-assigned
// fields (id, createdAt) are omitted.
type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks required fields and the email format. It returns nil when
// the request is valid.
func (r CustomerRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if r.Name == "" {
		errs["name"] = "Name is required"
	}
	if r.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(r.Email) {
		errs["email"] = "Valid email is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// RequestFrom maps a persisted customer back into its request shape for
// editing. Optional fields absent on the server come back as empty strings so
// bound form inputs render consistently.
func (c Customer) RequestFrom() CustomerRequest {
	return CustomerRequest{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}
