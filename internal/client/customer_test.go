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

func TestCustomerClient_FindAll(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Customer{
			{ID: 1, Name: "John Doe", Email: "john@example.com"},
			{ID: 2, Name: "Jane Doe", Email: "jane@example.com"},
		})
	})

	customers, err := NewCustomerClient(core).FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "John Doe", customers[0].Name)
	assert.Equal(t, int64(2), customers[1].ID)
}

func TestCustomerClient_FindByID(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers/7", r.URL.Path)
		json.NewEncoder(w).Encode(model.Customer{ID: 7, Name: "John Doe", Email: "john@example.com"})
	})

	customer, err := NewCustomerClient(core).FindByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), customer.ID)
}

func TestCustomerClient_FindByID_NotFound(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	customer, err := NewCustomerClient(core).FindByID(context.Background(), 99)

	assert.Nil(t, customer)
	assert.True(t, IsNotFound(err))
}

func TestCustomerClient_Create(t *testing.T) {
	request := model.CustomerRequest{Name: "John Doe", Email: "john@example.com"}

	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received model.CustomerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, request, received)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Customer{ID: 1, Name: received.Name, Email: received.Email})
	})

	customer, err := NewCustomerClient(core).Create(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)
	assert.Equal(t, "John Doe", customer.Name)
}

func TestCustomerClient_Create_DuplicateEmail(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "DUPLICATE_EMAIL", "message": "email already in use"})
	})

	customer, err := NewCustomerClient(core).Create(context.Background(), model.CustomerRequest{
		Name:  "John Doe",
		Email: "john@example.com",
	})

	assert.Nil(t, customer)
	assert.True(t, IsValidation(err))
}

func TestCustomerClient_Update(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/customers/3", r.URL.Path)
		json.NewEncoder(w).Encode(model.Customer{ID: 3, Name: "Renamed", Email: "john@example.com"})
	})

	customer, err := NewCustomerClient(core).Update(context.Background(), 3, model.CustomerRequest{
		Name:  "Renamed",
		Email: "john@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", customer.Name)
}

func TestCustomerClient_Delete(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/customers/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, NewCustomerClient(core).Delete(context.Background(), 3))
}

func TestCustomerClient_Delete_Constrained(t *testing.T) {
	core := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	err := NewCustomerClient(core).Delete(context.Background(), 3)

	assert.True(t, IsConflict(err))
}
