package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juliuuslm/tienda-ropa/internal/cart"
	"github.com/Juliuuslm/tienda-ropa/internal/syncbus"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func newTestCartStore(t *testing.T) *cart.Store {
	t.Helper()
	store, err := cart.NewStore(cart.StoreParams{
		Slots:  slot.NewMemory(),
		Bus:    syncbus.NewBus(),
		Logger: newTestLogger(),
	})
	require.NoError(t, err)
	store.Load(context.Background())
	return store
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope.Data
}

func TestCartAdd(t *testing.T) {
	logg := newTestLogger()

	t.Run("merges duplicate identity", func(t *testing.T) {
		store := newTestCartStore(t)
		handler := CartAdd(store, logg)

		body := `{"id":"p1","name":"Shirt","price":25,"quantity":2,"color":"red","size":"M"}`
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		items := store.Items(context.Background())
		require.Len(t, items, 1)
		assert.Equal(t, 4, items[0].Quantity)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		store := newTestCartStore(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"id":"p1","price":25}`))
		rec := httptest.NewRecorder()
		CartAdd(store, logg).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("response carries totals", func(t *testing.T) {
		store := newTestCartStore(t)
		body := `{"id":"p1","name":"Shirt","price":40,"quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
		rec := httptest.NewRecorder()
		CartAdd(store, logg).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decodeData(t, rec)
		totals, ok := data["totals"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 80.0, totals["subtotal"], 0.001)
		assert.InDelta(t, 8.0, totals["tax"], 0.001)
		assert.InDelta(t, 10.0, totals["shipping"], 0.001)
		assert.InDelta(t, 98.0, totals["total"], 0.001)
	})
}

func TestCartUpdate(t *testing.T) {
	logg := newTestLogger()

	seed := func(t *testing.T) *cart.Store {
		store := newTestCartStore(t)
		store.Add(context.Background(), cart.Line{ID: "p1", Name: "Shirt", Price: 25, Quantity: 3})
		return store
	}

	updateRequest := func(store *cart.Store, key, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/"+key, strings.NewReader(body))
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("key", key)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
		rec := httptest.NewRecorder()
		CartUpdate(store, logg).ServeHTTP(rec, req)
		return rec
	}

	t.Run("sets quantity", func(t *testing.T) {
		store := seed(t)
		rec := updateRequest(store, "p1", `{"quantity":7}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 7, store.Count(context.Background()))
	})

	t.Run("zero removes the line", func(t *testing.T) {
		store := seed(t)
		rec := updateRequest(store, "p1", `{"quantity":0}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, store.Items(context.Background()))
	})

	t.Run("unknown line is 404", func(t *testing.T) {
		store := seed(t)
		rec := updateRequest(store, "missing", `{"quantity":2}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartClear(t *testing.T) {
	store := newTestCartStore(t)
	store.Add(context.Background(), cart.Line{ID: "p1", Name: "Shirt", Price: 25, Quantity: 3})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/", nil)
	rec := httptest.NewRecorder()
	CartClear(store, newTestLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.Items(context.Background()))
}
