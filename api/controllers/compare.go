package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Juliuuslm/tienda-ropa/api/responses"
	"github.com/Juliuuslm/tienda-ropa/api/validators"
	"github.com/Juliuuslm/tienda-ropa/internal/compare"
	pkgerrors "github.com/Juliuuslm/tienda-ropa/pkg/errors"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
)

type compareEntryPayload struct {
	ID        string   `json:"id" validate:"required"`
	Slug      string   `json:"slug"`
	Name      string   `json:"name" validate:"required"`
	Price     float64  `json:"price" validate:"min=0"`
	SalePrice *float64 `json:"salePrice"`
	Image     string   `json:"image"`
	Category  string   `json:"category"`
	Rating    *float64 `json:"rating"`
	Stock     *int     `json:"stock"`
	Colors    []string `json:"colors"`
	Sizes     []string `json:"sizes"`
}

func (p compareEntryPayload) entry() compare.Entry {
	return compare.Entry{
		ID:        p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		Price:     p.Price,
		SalePrice: p.SalePrice,
		Image:     p.Image,
		Category:  p.Category,
		Rating:    p.Rating,
		Stock:     p.Stock,
		Colors:    p.Colors,
		Sizes:     p.Sizes,
	}
}

// CompareGet returns the products pinned for comparison.
func CompareGet(store *compare.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "compare unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"items": store.Items(ctx),
			"count": store.Count(ctx),
			"max":   compare.MaxEntries,
		})
	}
}

// CompareToggle pins the product when absent and unpins it when present.
// A full tray rejects new products without error.
func CompareToggle(store *compare.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "compare unavailable"))
			return
		}

		var payload compareEntryPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		present := store.Toggle(ctx, payload.entry())
		responses.WriteSuccess(w, map[string]any{
			"pinned": present,
			"count":  store.Count(ctx),
		})
	}
}

// CompareRemove unpins one product.
func CompareRemove(store *compare.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "compare unavailable"))
			return
		}

		id := chi.URLParam(r, "productId")
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		if !store.Remove(ctx, id) {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not in comparison"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"count": store.Count(ctx)})
	}
}

// CompareClear unpins everything.
func CompareClear(store *compare.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "compare unavailable"))
			return
		}
		store.Clear(ctx)
		responses.WriteSuccess(w, map[string]any{"count": 0})
	}
}
