package router

import (
	"net/http"

	"sales-admin/internal/middleware"
	"sales-admin/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New wires all view routes and middleware into the admin application's
// handler.
func New(
	customerHandler *web.CustomerHandler,
	productHandler *web.ProductHandler,
	orderHandler *web.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/customers", http.StatusSeeOther)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", customerHandler.List)
		r.Get("/new", customerHandler.New)
		r.Post("/", customerHandler.Create)
		r.Get("/{id}/edit", customerHandler.Edit)
		r.Post("/{id}", customerHandler.Update)
		r.Post("/{id}/delete", customerHandler.Delete)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Get("/new", productHandler.New)
		r.Post("/", productHandler.Create)
		r.Get("/{id}/edit", productHandler.Edit)
		r.Post("/{id}", productHandler.Update)
		r.Post("/{id}/delete", productHandler.Delete)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orderHandler.List)

		// Order composition. The static "new" segment takes precedence over
		// the {id} wildcard below.
		r.Get("/new", orderHandler.New)
		r.Post("/new/customer", orderHandler.SetCustomer)
		r.Post("/new/items", orderHandler.AddItem)
		r.Post("/new/items/{productID}/remove", orderHandler.RemoveItem)
		r.Post("/new/items/{productID}/quantity", orderHandler.SetQuantity)
		r.Post("/new/submit", orderHandler.Submit)
		r.Post("/new/cancel", orderHandler.Cancel)

		r.Get("/{id}", orderHandler.Detail)
		r.Post("/{id}/status", orderHandler.UpdateStatus)
		r.Post("/{id}/delete", orderHandler.Delete)
	})

	return r
}
