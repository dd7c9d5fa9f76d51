package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Juliuuslm/tienda-ropa/api/responses"
	"github.com/Juliuuslm/tienda-ropa/api/validators"
	"github.com/Juliuuslm/tienda-ropa/internal/cart"
	"github.com/Juliuuslm/tienda-ropa/internal/pricing"
	pkgerrors "github.com/Juliuuslm/tienda-ropa/pkg/errors"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
)

type addCartLinePayload struct {
	ID       string  `json:"id" validate:"required"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"min=0"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color"`
	Size     string  `json:"size"`
}

type updateCartLinePayload struct {
	Quantity int `json:"quantity"`
}

type cartView struct {
	Items   []cart.Line       `json:"items"`
	Count   int               `json:"count"`
	Totals  pricing.Totals    `json:"totals"`
	Display map[string]string `json:"display"`
}

func viewCart(ctx context.Context, store *cart.Store) cartView {
	items := store.Items(ctx)
	totals := pricing.Quote(items)
	return cartView{
		Items:   items,
		Count:   store.Count(ctx),
		Totals:  totals,
		Display: totals.Display(),
	}
}

// CartGet returns the cart contents together with derived totals.
func CartGet(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		responses.WriteSuccess(w, viewCart(ctx, store))
	}
}

// CartAdd merges a line into the cart. The same product in a different
// color or size lands on its own line.
func CartAdd(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var payload addCartLinePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		store.Add(ctx, cart.Line{
			ID:       payload.ID,
			Slug:     payload.Slug,
			Name:     payload.Name,
			Price:    payload.Price,
			Image:    payload.Image,
			Quantity: payload.Quantity,
			Color:    payload.Color,
			Size:     payload.Size,
		})
		responses.WriteSuccess(w, viewCart(ctx, store))
	}
}

// CartUpdate sets a line's quantity. Zero or below removes the line.
func CartUpdate(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		key := chi.URLParam(r, "key")
		if key == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line key is required"))
			return
		}

		var payload updateCartLinePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if !store.UpdateQuantity(ctx, key, payload.Quantity) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found"))
			return
		}
		responses.WriteSuccess(w, viewCart(ctx, store))
	}
}

// CartRemove deletes a line regardless of its quantity.
func CartRemove(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		key := chi.URLParam(r, "key")
		if key == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line key is required"))
			return
		}

		if !store.Remove(ctx, key) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found"))
			return
		}
		responses.WriteSuccess(w, viewCart(ctx, store))
	}
}

// CartClear empties the cart.
func CartClear(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		store.Clear(ctx)
		responses.WriteSuccess(w, viewCart(ctx, store))
	}
}
