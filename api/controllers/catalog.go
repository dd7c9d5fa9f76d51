package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Juliuuslm/tienda-ropa/api/responses"
	"github.com/Juliuuslm/tienda-ropa/api/validators"
	"github.com/Juliuuslm/tienda-ropa/internal/catalog"
	"github.com/Juliuuslm/tienda-ropa/pkg/enums"
	pkgerrors "github.com/Juliuuslm/tienda-ropa/pkg/errors"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/pagination"
)

// CatalogBrowse serves the filtered, sorted, paginated shop listing.
func CatalogBrowse(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		pageSize, err := validators.ParseQueryInt(r, "pageSize", pagination.DefaultPageSize, 1, pagination.MaxPageSize)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		// Unknown sort keys fall back to newest rather than erroring.
		sortKey, err := enums.ParseSortKey(validators.QueryString(r, "sort"))
		if err != nil {
			sortKey = enums.SortKeyNewest
		}

		query := catalog.ListingQuery{
			Category: validators.QueryString(r, "category"),
			Search:   validators.QueryString(r, "search"),
			Sort:     sortKey,
			Page:     page,
			PageSize: pageSize,
		}

		listing, err := svc.Browse(ctx, query)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, listing)
	}
}

// CatalogDetail serves one product by slug.
func CatalogDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.Detail(ctx, chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CatalogCategories serves the distinct category labels.
func CatalogCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categories, err := svc.Categories(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"categories": categories})
	}
}

// CatalogRelated serves up to four same-category products for a slug.
func CatalogRelated(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		related, err := svc.Related(ctx, chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"items": related})
	}
}
