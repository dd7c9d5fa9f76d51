package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Juliuuslm/tienda-ropa/api/controllers"
	"github.com/Juliuuslm/tienda-ropa/api/middleware"
	"github.com/Juliuuslm/tienda-ropa/internal/cart"
	"github.com/Juliuuslm/tienda-ropa/internal/catalog"
	"github.com/Juliuuslm/tienda-ropa/internal/compare"
	"github.com/Juliuuslm/tienda-ropa/internal/wishlist"
	"github.com/Juliuuslm/tienda-ropa/pkg/config"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	db controllers.Pinger,
	slots slot.Store,
	catalogService catalog.Service,
	cartStore *cart.Store,
	wishlistStore *wishlist.Store,
	compareStore *compare.Store,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, db, slots))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogBrowse(catalogService, logg))
			r.Get("/products/{slug}", controllers.CatalogDetail(catalogService, logg))
			r.Get("/products/{slug}/related", controllers.CatalogRelated(catalogService, logg))
			r.Get("/categories", controllers.CatalogCategories(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(cartStore, logg))
			r.Post("/items", controllers.CartAdd(cartStore, logg))
			r.Patch("/items/{key}", controllers.CartUpdate(cartStore, logg))
			r.Delete("/items/{key}", controllers.CartRemove(cartStore, logg))
			r.Delete("/", controllers.CartClear(cartStore, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistGet(wishlistStore, logg))
			r.Post("/toggle", controllers.WishlistToggle(wishlistStore, logg))
			r.Delete("/items/{productId}", controllers.WishlistRemove(wishlistStore, logg))
			r.Delete("/", controllers.WishlistClear(wishlistStore, logg))
		})

		r.Route("/compare", func(r chi.Router) {
			r.Get("/", controllers.CompareGet(compareStore, logg))
			r.Post("/toggle", controllers.CompareToggle(compareStore, logg))
			r.Delete("/items/{productId}", controllers.CompareRemove(compareStore, logg))
			r.Delete("/", controllers.CompareClear(compareStore, logg))
		})
	})

	return r
}
