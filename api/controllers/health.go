package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Juliuuslm/tienda-ropa/api/responses"
	"github.com/Juliuuslm/tienda-ropa/pkg/config"
	pkgerrors "github.com/Juliuuslm/tienda-ropa/pkg/errors"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
)

const readinessTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Tienda-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the catalog database and the slot backend.
func HealthReady(cfg *config.Config, logg *logger.Logger, db Pinger, slots slot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		w.Header().Set("X-Tienda-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				checks["catalog_db"] = "down"
				healthy = false
			} else {
				checks["catalog_db"] = "up"
			}
		}
		if slots != nil {
			if err := slots.Ping(ctx); err != nil {
				checks["slots"] = "down"
				healthy = false
			} else {
				checks["slots"] = "up"
			}
		}

		if !healthy {
			err := pkgerrors.New(pkgerrors.CodeDependency, "dependency not ready").WithDetails(checks)
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
