package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"sales-admin/internal/client"
	"sales-admin/internal/draft"
	"sales-admin/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const draftCookie = "order_draft"

// OrderHandler serves the order list, composition, and detail views.
type OrderHandler struct {
	orders    client.OrderAPI
	customers client.CustomerAPI
	products  client.ProductAPI
	drafts    *draft.Store
	renderer  *Renderer
	logger    zerolog.Logger
}

// NewOrderHandler creates a new order view handler.
func NewOrderHandler(
	orders client.OrderAPI,
	customers client.CustomerAPI,
	products client.ProductAPI,
	drafts *draft.Store,
	renderer *Renderer,
	logger zerolog.Logger,
) *OrderHandler {
	return &OrderHandler{
		orders:    orders,
		customers: customers,
		products:  products,
		drafts:    drafts,
		renderer:  renderer,
		logger:    logger.With().Str("handler", "order").Logger(),
	}
}

type orderListData struct {
	Page
	Orders         []model.Order
	StatusFilter   model.OrderStatus
	CustomerFilter int64
	Statuses       []model.OrderStatus
}

type orderFormData struct {
	Page
	Customers  []model.Customer
	Selectable []model.Product
	CustomerID int64
	Items      []draft.LineItem
	Total      float64
}

type orderDetailData struct {
	Page
	Order       model.Order
	NextOptions []model.OrderStatus
}

// List handles GET /orders, optionally narrowed by ?status= or ?customer=.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	data := orderListData{
		Page:     Page{Title: "Orders", Active: "orders"},
		Statuses: model.Statuses(),
	}
	data.Flash, data.FlashError = popFlash(w, r)

	var (
		orders []model.Order
		err    error
	)
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, parseErr := model.ParseStatus(raw)
		if parseErr != nil {
			redirect(w, r, "/orders")
			return
		}
		data.StatusFilter = status
		orders, err = h.orders.FindByStatus(r.Context(), status)
	} else if raw := r.URL.Query().Get("customer"); raw != "" {
		customerID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || customerID < 1 {
			redirect(w, r, "/orders")
			return
		}
		data.CustomerFilter = customerID
		orders, err = h.orders.FindByCustomerID(r.Context(), customerID)
	} else {
		orders, err = h.orders.FindAll(r.Context())
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load orders")
		data.FlashError = "Failed to load orders."
	}
	data.Orders = orders

	h.renderer.Render(w, http.StatusOK, "order_list", data)
}

// New handles GET /orders/new: the order composition view. The working draft
// lives server-side, bound to the browser through a cookie, so every mutation
// below re-renders this view with the recomputed provisional total.
func (h *OrderHandler) New(w http.ResponseWriter, r *http.Request) {
	d := h.draftFor(w, r)

	data := orderFormData{
		Page:       Page{Title: "New Order", Active: "orders"},
		CustomerID: d.CustomerID(),
		Items:      d.Items(),
		Total:      d.Total(),
	}
	data.Flash, data.FlashError = popFlash(w, r)
	if data.FlashError == "" && d.State() == draft.StateFailed {
		data.FlashError = "Failed to create order. Check stock availability."
	}

	customers, err := h.customers.FindAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load customers for order form")
		data.FlashError = "Failed to load customers."
	}
	data.Customers = customers

	products, err := h.products.FindInStock(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load products for order form")
		data.FlashError = "Failed to load products."
	}
	data.Selectable = d.SelectableProducts(products)

	h.renderer.Render(w, http.StatusOK, "order_form", data)
}

// SetCustomer handles POST /orders/new/customer.
func (h *OrderHandler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	d := h.draftFor(w, r)

	_ = r.ParseForm()
	customerID, err := strconv.ParseInt(r.PostFormValue("customerId"), 10, 64)
	if err == nil && customerID > 0 {
		d.SetCustomer(customerID)
	}
	redirect(w, r, "/orders/new")
}

// AddItem handles POST /orders/new/items: appends the selected product as a
// new line item with quantity 1.
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	d := h.draftFor(w, r)

	_ = r.ParseForm()
	productID, err := strconv.ParseInt(r.PostFormValue("productId"), 10, 64)
	if err != nil || productID < 1 {
		redirect(w, r, "/orders/new")
		return
	}

	product, err := h.products.FindByID(r.Context(), productID)
	if err != nil {
		h.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to load product for draft")
		setFlashError(w, "Failed to add product.")
		redirect(w, r, "/orders/new")
		return
	}

	switch err := d.AddProduct(*product); {
	case errors.Is(err, draft.ErrDuplicateProduct):
		setFlashError(w, "Product is already in the order.")
	case errors.Is(err, draft.ErrOutOfStock):
		setFlashError(w, "Product is out of stock.")
	}
	redirect(w, r, "/orders/new")
}

// RemoveItem handles POST /orders/new/items/{productID}/remove.
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	d := h.draftFor(w, r)

	if productID, err := pathID(r, "productID"); err == nil {
		d.RemoveProduct(productID)
	}
	redirect(w, r, "/orders/new")
}

// SetQuantity handles POST /orders/new/items/{productID}/quantity. Quantities
// are clamped to [1, stock] by the draft.
func (h *OrderHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	d := h.draftFor(w, r)

	productID, err := pathID(r, "productID")
	if err != nil {
		redirect(w, r, "/orders/new")
		return
	}

	_ = r.ParseForm()
	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err == nil {
		d.SetQuantity(productID, quantity)
	}
	redirect(w, r, "/orders/new")
}

// Submit handles POST /orders/new/submit. The draft's state machine refuses
// re-entry while a create is in flight; a rejected create keeps the draft
// editable for resubmission.
func (h *OrderHandler) Submit(w http.ResponseWriter, r *http.Request) {
	d := h.draftFor(w, r)

	if err := d.BeginSubmit(); err != nil {
		h.logger.Warn().Err(err).Str("draft_id", d.ID().String()).Msg("order submit refused")
		if errors.Is(err, draft.ErrNotSubmittable) {
			setFlashError(w, "Select a customer and add at least one item.")
		}
		redirect(w, r, "/orders/new")
		return
	}

	order, err := h.orders.Create(r.Context(), d.Request())
	d.FinishSubmit(err)
	if err != nil {
		h.logger.Error().Err(err).Str("draft_id", d.ID().String()).Msg("failed to create order")
		redirect(w, r, "/orders/new")
		return
	}

	h.drafts.Remove(d.ID())
	h.clearDraftCookie(w)
	setFlash(w, fmt.Sprintf("Order #%d created.", order.ID))
	redirect(w, r, fmt.Sprintf("/orders/%d", order.ID))
}

// Cancel handles POST /orders/new/cancel: discards the working draft.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(draftCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			h.drafts.Remove(id)
		}
	}
	h.clearDraftCookie(w)
	redirect(w, r, "/orders")
}

// Detail handles GET /orders/{id}. A missing id or failed load redirects to
// the list rather than rendering a broken view.
func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		redirect(w, r, "/orders")
		return
	}

	order, err := h.orders.FindByID(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("order_id", id).Msg("failed to load order")
		setFlashError(w, "Order not found.")
		redirect(w, r, "/orders")
		return
	}

	data := orderDetailData{
		Page:        Page{Title: fmt.Sprintf("Order #%d", order.ID), Active: "orders"},
		Order:       *order,
		NextOptions: order.Status.NextOptions(),
	}
	data.Flash, data.FlashError = popFlash(w, r)
	h.renderer.Render(w, http.StatusOK, "order_detail", data)
}

// UpdateStatus handles POST /orders/{id}/status. On success the redirect
// re-fetches the order, so the view shows the server's authoritative state;
// on failure the prior state is retained the same way.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		redirect(w, r, "/orders")
		return
	}

	_ = r.ParseForm()
	status, err := model.ParseStatus(r.PostFormValue("status"))
	if err != nil {
		setFlashError(w, "Unknown order status.")
		redirect(w, r, fmt.Sprintf("/orders/%d", id))
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), id, status)
	if err != nil {
		h.logger.Error().Err(err).Int64("order_id", id).Str("status", string(status)).Msg("failed to update order status")
		setFlashError(w, "Failed to update order status.")
		redirect(w, r, fmt.Sprintf("/orders/%d", id))
		return
	}

	setFlash(w, fmt.Sprintf("Order status updated to %s.", order.Status))
	redirect(w, r, fmt.Sprintf("/orders/%d", order.ID))
}

// Delete handles POST /orders/{id}/delete. Deletion is only offered, and only
// performed, while the order is still pending.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		redirect(w, r, "/orders")
		return
	}

	order, err := h.orders.FindByID(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("order_id", id).Msg("failed to load order before delete")
		setFlashError(w, "Order not found.")
		redirect(w, r, "/orders")
		return
	}
	if !order.Deletable() {
		setFlashError(w, "Only pending orders can be deleted.")
		redirect(w, r, "/orders")
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete order")
		setFlashError(w, "Failed to delete order.")
		redirect(w, r, "/orders")
		return
	}

	setFlash(w, fmt.Sprintf("Order #%d deleted.", id))
	redirect(w, r, "/orders")
}

// draftFor returns the draft bound to the request's cookie, creating a fresh
// one (and setting the cookie) when none exists or it has expired.
func (h *OrderHandler) draftFor(w http.ResponseWriter, r *http.Request) *draft.Draft {
	if cookie, err := r.Cookie(draftCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			if d, ok := h.drafts.Get(id); ok {
				return d
			}
		}
	}

	d := h.drafts.New()
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookie,
		Value:    d.ID().String(),
		Path:     "/orders",
		HttpOnly: true,
	})
	return d
}

func (h *OrderHandler) clearDraftCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookie,
		Path:     "/orders",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
