package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"sales-admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderClient_FindAll(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Order{
			{ID: 1, CustomerID: 1, Status: model.StatusPending, TotalAmount: 120},
		})
	})

	orders, err := NewOrderClient(core).FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.StatusPending, orders[0].Status)
}

func TestOrderClient_FindByID(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/7", r.URL.Path)
		json.NewEncoder(w).Encode(model.Order{
			ID:          7,
			CustomerID:  1,
			Status:      model.StatusConfirmed,
			TotalAmount: 120,
			Items: []model.OrderItem{
				{ID: 1, ProductID: 1, ProductName: "Product A", Quantity: 2, UnitPrice: 50, Subtotal: 100},
				{ID: 2, ProductID: 2, ProductName: "Product B", Quantity: 1, UnitPrice: 20, Subtotal: 20},
			},
		})
	})

	order, err := NewOrderClient(core).FindByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 100.0, order.Items[0].Subtotal)
}

func TestOrderClient_FindByCustomerID(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/customer/3", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Order{{ID: 1, CustomerID: 3}})
	})

	orders, err := NewOrderClient(core).FindByCustomerID(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(3), orders[0].CustomerID)
}

func TestOrderClient_FindByStatus(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/status/SHIPPED", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Order{{ID: 1, Status: model.StatusShipped}})
	})

	orders, err := NewOrderClient(core).FindByStatus(context.Background(), model.StatusShipped)

	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestOrderClient_Create(t *testing.T) {
	request := model.OrderRequest{
		CustomerID: 1,
		Items:      []model.OrderItemRequest{{ProductID: 1, Quantity: 2}},
	}

	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		var received model.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, request, received)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Order{ID: 7, CustomerID: 1, Status: model.StatusPending, TotalAmount: 100})
	})

	order, err := NewOrderClient(core).Create(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, model.StatusPending, order.Status)
}

func TestOrderClient_Create_InsufficientStock(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "INSUFFICIENT_STOCK", "message": "not enough stock"})
	})

	order, err := NewOrderClient(core).Create(context.Background(), model.OrderRequest{
		CustomerID: 1,
		Items:      []model.OrderItemRequest{{ProductID: 1, Quantity: 999}},
	})

	assert.Nil(t, order)
	assert.True(t, IsValidation(err))
}

func TestOrderClient_UpdateStatus(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/7/status", r.URL.Path)

		// The status PUT carries only {status}.
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"status": "CONFIRMED"}, body)

		json.NewEncoder(w).Encode(model.Order{ID: 7, Status: model.StatusConfirmed})
	})

	order, err := NewOrderClient(core).UpdateStatus(context.Background(), 7, model.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, order.Status)
}

func TestOrderClient_Delete(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/orders/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, NewOrderClient(core).Delete(context.Background(), 7))
}
