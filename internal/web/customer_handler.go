package web

import (
	"fmt"
	"net/http"

	"sales-admin/internal/client"
	"sales-admin/internal/model"

	"github.com/rs/zerolog"
)

// CustomerHandler serves the customer list and form views.
type CustomerHandler struct {
	customers client.CustomerAPI
	renderer  *Renderer
	logger    zerolog.Logger
}

// NewCustomerHandler creates a new customer view handler.
func NewCustomerHandler(customers client.CustomerAPI, renderer *Renderer, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		renderer:  renderer,
		logger:    logger.With().Str("handler", "customer").Logger(),
	}
}

type customerListData struct {
	Page
	Customers []model.Customer
}

type customerFormData struct {
	Page
	EditMode bool
	ID       int64
	Form     model.CustomerRequest
	Errors   model.ValidationErrors
}

// List handles GET /customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	data := customerListData{Page: Page{Title: "Customers", Active: "customers"}}
	data.Flash, data.FlashError = popFlash(w, r)

	customers, err := h.customers.FindAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load customers")
		data.FlashError = "Failed to load customers."
	}
	data.Customers = customers

	h.renderer.Render(w, http.StatusOK, "customer_list", data)
}

// New handles GET /customers/new.
func (h *CustomerHandler) New(w http.ResponseWriter, r *http.Request) {
	data := customerFormData{Page: Page{Title: "New Customer", Active: "customers"}}
	data.Flash, data.FlashError = popFlash(w, r)
	h.renderer.Render(w, http.StatusOK, "customer_form", data)
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	form := parseCustomerForm(r)
	data := customerFormData{
		Page: Page{Title: "New Customer", Active: "customers"},
		Form: form,
	}

	if errs := form.Validate(); errs != nil {
		data.Errors = errs
		h.renderer.Render(w, http.StatusUnprocessableEntity, "customer_form", data)
		return
	}

	customer, err := h.customers.Create(r.Context(), form)
	if err != nil {
		h.logger.Error().Err(err).Str("email", form.Email).Msg("failed to create customer")
		data.FlashError = createCustomerFailureMessage(err)
		h.renderer.Render(w, http.StatusUnprocessableEntity, "customer_form", data)
		return
	}

	setFlash(w, fmt.Sprintf("Customer %q created.", customer.Name))
	redirect(w, r, "/customers")
}

// Edit handles GET /customers/{id}/edit. A target that no longer resolves
// redirects back to the list instead of rendering a broken form.
func (h *CustomerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		redirect(w, r, "/customers")
		return
	}

	customer, err := h.customers.FindByID(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to load customer")
		setFlashError(w, "Customer not found.")
		redirect(w, r, "/customers")
		return
	}

	data := customerFormData{
		Page:     Page{Title: "Edit Customer", Active: "customers"},
		EditMode: true,
		ID:       customer.ID,
		Form:     customer.RequestFrom(),
	}
	data.Flash, data.FlashError = popFlash(w, r)
	h.renderer.Render(w, http.StatusOK, "customer_form", data)
}

// Update handles POST /customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		redirect(w, r, "/customers")
		return
	}

	form := parseCustomerForm(r)
	data := customerFormData{
		Page:     Page{Title: "Edit Customer", Active: "customers"},
		EditMode: true,
		ID:       id,
		Form:     form,
	}

	if errs := form.Validate(); errs != nil {
		data.Errors = errs
		h.renderer.Render(w, http.StatusUnprocessableEntity, "customer_form", data)
		return
	}

	customer, err := h.customers.Update(r.Context(), id, form)
	if err != nil {
		h.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to update customer")
		data.FlashError = createCustomerFailureMessage(err)
		h.renderer.Render(w, http.StatusUnprocessableEntity, "customer_form", data)
		return
	}

	setFlash(w, fmt.Sprintf("Customer %q updated.", customer.Name))
	redirect(w, r, "/customers")
}

// Delete handles POST /customers/{id}/delete. The list only changes after the
// server confirms the delete; a failure leaves it as it was.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		redirect(w, r, "/customers")
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Int64("customer_id", id).Msg("failed to delete customer")
		if client.IsConflict(err) {
			setFlashError(w, "Customer cannot be deleted while orders reference it.")
		} else {
			setFlashError(w, "Failed to delete customer.")
		}
		redirect(w, r, "/customers")
		return
	}

	setFlash(w, "Customer deleted.")
	redirect(w, r, "/customers")
}

func parseCustomerForm(r *http.Request) model.CustomerRequest {
	_ = r.ParseForm()
	return model.CustomerRequest{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Address: r.PostFormValue("address"),
	}
}

func createCustomerFailureMessage(err error) string {
	if client.IsValidation(err) {
		return "Failed to save customer. The email may already be in use."
	}
	return "Failed to save customer. Please try again."
}
