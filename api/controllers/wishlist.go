package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Juliuuslm/tienda-ropa/api/responses"
	"github.com/Juliuuslm/tienda-ropa/api/validators"
	"github.com/Juliuuslm/tienda-ropa/internal/wishlist"
	pkgerrors "github.com/Juliuuslm/tienda-ropa/pkg/errors"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
)

type wishlistEntryPayload struct {
	ID    string  `json:"id" validate:"required"`
	Slug  string  `json:"slug"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"min=0"`
	Image string  `json:"image"`
}

// WishlistGet returns the saved products.
func WishlistGet(store *wishlist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"items": store.Items(ctx),
			"count": store.Count(ctx),
		})
	}
}

// WishlistToggle adds the product when absent and removes it when present.
func WishlistToggle(store *wishlist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist unavailable"))
			return
		}

		var payload wishlistEntryPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		present := store.Toggle(ctx, wishlist.Entry{
			ID:    payload.ID,
			Slug:  payload.Slug,
			Name:  payload.Name,
			Price: payload.Price,
			Image: payload.Image,
		})
		responses.WriteSuccess(w, map[string]any{
			"saved": present,
			"count": store.Count(ctx),
		})
	}
}

// WishlistRemove drops one saved product.
func WishlistRemove(store *wishlist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist unavailable"))
			return
		}

		id := chi.URLParam(r, "productId")
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		if !store.Remove(ctx, id) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not in wishlist"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"count": store.Count(ctx)})
	}
}

// WishlistClear empties the wishlist.
func WishlistClear(store *wishlist.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist unavailable"))
			return
		}
		store.Clear(ctx)
		responses.WriteSuccess(w, map[string]any{"count": 0})
	}
}
