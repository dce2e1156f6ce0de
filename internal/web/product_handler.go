package web

import (
	"fmt"
	"net/http"
	"strconv"

	"sales-admin/internal/client"
	"sales-admin/internal/model"

	"github.com/rs/zerolog"
)

// ProductHandler serves the product list and form views.
type ProductHandler struct {
	products client.ProductAPI
	renderer *Renderer
	logger   zerolog.Logger
}

// NewProductHandler creates a new product view handler.
func NewProductHandler(products client.ProductAPI, renderer *Renderer, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		renderer: renderer,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

type productListData struct {
	Page
	Products    []model.Product
	Search      string
	InStockOnly bool
}

type productFormData struct {
	Page
	EditMode bool
	ID       int64
	Form     model.ProductRequest
	// Raw field values are kept so an unparseable number round-trips back to
	// the form instead of silently becoming zero.
	PriceRaw string
	StockRaw string
	Errors   model.ValidationErrors
}

// List handles GET /products. A name query uses the server-side search, and
// stock=in narrows to products with stock remaining.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("name")
	inStockOnly := r.URL.Query().Get("stock") == "in"

	data := productListData{
		Page:        Page{Title: "Products", Active: "products"},
		Search:      search,
		InStockOnly: inStockOnly,
	}
	data.Flash, data.FlashError = popFlash(w, r)

	var (
		products []model.Product
		err      error
	)
	switch {
	case search != "":
		products, err = h.products.FindByName(r.Context(), search)
	case inStockOnly:
		products, err = h.products.FindInStock(r.Context())
	default:
		products, err = h.products.FindAll(r.Context())
	}
	if err != nil {
		h.logger.Error().Err(err).Str("search", search).Msg("failed to load products")
		data.FlashError = "Failed to load products."
	}
	data.Products = products

	h.renderer.Render(w, http.StatusOK, "product_list", data)
}

// New handles GET /products/new.
func (h *ProductHandler) New(w http.ResponseWriter, r *http.Request) {
	data := productFormData{Page: Page{Title: "New Product", Active: "products"}}
	data.Flash, data.FlashError = popFlash(w, r)
	h.renderer.Render(w, http.StatusOK, "product_form", data)
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, data := parseProductForm(r)
	data.Page = Page{Title: "New Product", Active: "products"}

	if data.Errors != nil {
		h.renderer.Render(w, http.StatusUnprocessableEntity, "product_form", data)
		return
	}

	product, err := h.products.Create(r.Context(), form)
	if err != nil {
		h.logger.Error().Err(err).Str("name", form.Name).Msg("failed to create product")
		data.FlashError = "Failed to save product. Please try again."
		h.renderer.Render(w, http.StatusUnprocessableEntity, "product_form", data)
		return
	}

	setFlash(w, fmt.Sprintf("Product %q created.", product.Name))
	redirect(w, r, "/products")
}

// Edit handles GET /products/{id}/edit.
func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		redirect(w, r, "/products")
		return
	}

	product, err := h.products.FindByID(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("product_id", id).Msg("failed to load product")
		setFlashError(w, "Product not found.")
		redirect(w, r, "/products")
		return
	}

	form := product.RequestFrom()
	data := productFormData{
		Page:     Page{Title: "Edit Product", Active: "products"},
		EditMode: true,
		ID:       product.ID,
		Form:     form,
		PriceRaw: strconv.FormatFloat(form.Price, 'f', 2, 64),
		StockRaw: strconv.Itoa(form.StockQuantity),
	}
	data.Flash, data.FlashError = popFlash(w, r)
	h.renderer.Render(w, http.StatusOK, "product_form", data)
}

// Update handles POST /products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		redirect(w, r, "/products")
		return
	}

	form, data := parseProductForm(r)
	data.Page = Page{Title: "Edit Product", Active: "products"}
	data.EditMode = true
	data.ID = id

	if data.Errors != nil {
		h.renderer.Render(w, http.StatusUnprocessableEntity, "product_form", data)
		return
	}

	product, err := h.products.Update(r.Context(), id, form)
	if err != nil {
		h.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		data.FlashError = "Failed to save product. Please try again."
		h.renderer.Render(w, http.StatusUnprocessableEntity, "product_form", data)
		return
	}

	setFlash(w, fmt.Sprintf("Product %q updated.", product.Name))
	redirect(w, r, "/products")
}

// Delete handles POST /products/{id}/delete. The server rejects deletes for
// products still referenced by orders; the list is left unchanged.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		redirect(w, r, "/products")
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		if client.IsConflict(err) {
			setFlashError(w, "Product cannot be deleted while orders reference it.")
		} else {
			setFlashError(w, "Failed to delete product.")
		}
		redirect(w, r, "/products")
		return
	}

	setFlash(w, "Product deleted.")
	redirect(w, r, "/products")
}

// parseProductForm decodes and validates the posted product fields. Numeric
// parse failures become field errors alongside the model validation.
func parseProductForm(r *http.Request) (model.ProductRequest, productFormData) {
	_ = r.ParseForm()

	form := model.ProductRequest{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
	}
	data := productFormData{
		PriceRaw: r.PostFormValue("price"),
		StockRaw: r.PostFormValue("stockQuantity"),
	}

	parseErrs := model.ValidationErrors{}

	price, err := strconv.ParseFloat(data.PriceRaw, 64)
	if err != nil {
		parseErrs["price"] = "Price must be a number"
	} else {
		form.Price = price
	}

	stock, err := strconv.Atoi(data.StockRaw)
	if err != nil {
		parseErrs["stockQuantity"] = "Stock quantity must be a whole number"
	} else {
		form.StockQuantity = stock
	}

	errs := form.Validate()
	if errs == nil && len(parseErrs) == 0 {
		data.Form = form
		return form, data
	}
	if errs == nil {
		errs = model.ValidationErrors{}
	}
	for field, msg := range parseErrs {
		errs[field] = msg
	}
	data.Form = form
	data.Errors = errs
	return form, data
}
