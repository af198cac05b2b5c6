package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/repositories"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zerolog.Nop()), srv
}

func TestProductGateway_ListNormalizesIdentifiers(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// one Mongo-style string id, one numeric id under the other key
		_, _ = w.Write([]byte(`[
			{"_id":"64fa12","name":"Mint Pods","price":10.5,"costPrice":4,"quantity":5},
			{"id":17,"name":"Battery","category":"hardware","price":8,"costPrice":3,"quantity":2}
		]`))
	}))

	products, err := c.Products().List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, entities.ID("64fa12"), products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.NewFromFloat(10.5)))
	assert.Equal(t, entities.ID("17"), products[1].ID)
	assert.Equal(t, "hardware", products[1].Category)
}

func TestProductGateway_ListTransportFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, zerolog.Nop())
	_, err := c.Products().List(context.Background())
	assert.Error(t, err)
}

func TestProductGateway_CreateEchoesPayloadOnEmptyBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	p := &entities.Product{Name: "Pods", Price: decimal.NewFromInt(10), Quantity: 5}
	created, err := c.Products().Create(context.Background(), p)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "a client-side id is assigned when the server returns no body")
	assert.Equal(t, "Pods", created.Name)
}

func TestProductGateway_CreateReturnsServerRecord(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"srv-1","name":"Pods","price":10,"costPrice":0,"quantity":5}`))
	}))

	created, err := c.Products().Create(context.Background(), &entities.Product{Name: "Pods", Price: decimal.NewFromInt(10), Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, entities.ID("srv-1"), created.ID)
}

func TestGateway_NotFoundAndStatusErrors(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			http.Error(w, "no such record", http.StatusNotFound)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))

	err := c.Products().Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = c.Products().List(context.Background())
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestOrderGateway_RoundTrip(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/sales", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"_id":"o1","customerId":"c1","productId":"p1","quantity":3,
			 "productPrice":30,"deliveryPrice":2,"totalRevenue":32,
			 "status":"pending","createdAt":"2025-03-01T10:00:00Z"}
		]`))
	}))

	orders, err := c.Orders().List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, entities.ID("o1"), o.ID)
	assert.Equal(t, entities.ID("c1"), o.CustomerID)
	assert.Equal(t, entities.Quantity(3), o.Quantity)
	assert.Equal(t, entities.StatusPending, o.Status)
	assert.True(t, o.TotalRevenue.Equal(decimal.NewFromInt(32)))
	assert.Equal(t, 2025, o.CreatedAt.Year())
}

func TestOrderGateway_ListRejectsUnknownStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"o1","customerId":"c1","productId":"p1","quantity":1,"status":"teleported"}]`))
	}))

	_, err := c.Orders().List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown order status")
}

func TestCustomerGateway_UpdatePath(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	updated, err := c.Customers().Update(context.Background(), "c9", &entities.Customer{Name: "Ayesha"})
	require.NoError(t, err)
	assert.Equal(t, "/api/customers/c9", gotPath)
	assert.Equal(t, entities.ID("c9"), updated.ID, "echoed record carries the id from the call")
}
