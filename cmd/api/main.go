package main

import (
	"context"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Juliuuslm/tienda-ropa/api/routes"
	"github.com/Juliuuslm/tienda-ropa/internal/cart"
	"github.com/Juliuuslm/tienda-ropa/internal/catalog"
	"github.com/Juliuuslm/tienda-ropa/internal/compare"
	"github.com/Juliuuslm/tienda-ropa/internal/syncbus"
	"github.com/Juliuuslm/tienda-ropa/internal/wishlist"
	"github.com/Juliuuslm/tienda-ropa/pkg/config"
	"github.com/Juliuuslm/tienda-ropa/pkg/db"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/metrics"
	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.Catalog, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap catalog database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing catalog database", err)
		}
	}()

	catalogRepo := catalog.NewRepository(dbClient.DB())
	if cfg.Catalog.AutoMigrate {
		if err := catalogRepo.Migrate(); err != nil {
			logg.Error(context.Background(), "failed to migrate catalog schema", err)
			os.Exit(1)
		}
		seeded, err := catalog.Seed(context.Background(), catalogRepo, cfg.Catalog.SeedPath)
		if err != nil {
			logg.Error(context.Background(), "failed to seed catalog", err)
			os.Exit(1)
		}
		if seeded > 0 {
			ctx := logg.WithField(context.Background(), "products", seeded)
			logg.Info(ctx, "catalog seeded")
		}
	}

	catalogService, err := catalog.NewService(catalog.ServiceParams{Repo: catalogRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	// Origin tags every published change signal so this instance can
	// skip its own writes when they echo back on the channel.
	origin := uuid.NewString()

	var slots slot.Store
	var redisSlots *slot.Redis
	if cfg.FeatureFlags.UseMemorySlots {
		slots = slot.NewMemory()
		logg.Info(context.Background(), "using in-memory slot store")
	} else {
		redisSlots, err = slot.NewRedis(context.Background(), cfg.Redis, cfg.Slots.Channel, origin)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap slot store", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisSlots.Close(); err != nil {
				logg.Error(context.Background(), "error closing slot store", err)
			}
		}()
		slots = redisSlots
	}

	collectionMetrics := metrics.NewCollectionMetrics(prometheus.DefaultRegisterer)
	bus := syncbus.NewBus()

	cartStore, err := cart.NewStore(cart.StoreParams{
		Slots:   slots,
		SlotKey: cfg.Slots.CartKey,
		Bus:     bus,
		Logger:  logg,
		Metrics: collectionMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	wishlistStore, err := wishlist.NewStore(wishlist.StoreParams{
		Slots:   slots,
		SlotKey: cfg.Slots.WishlistKey,
		Bus:     bus,
		Logger:  logg,
		Metrics: collectionMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist store", err)
		os.Exit(1)
	}

	compareStore, err := compare.NewStore(compare.StoreParams{
		Slots:   slots,
		SlotKey: cfg.Slots.CompareKey,
		Bus:     bus,
		Logger:  logg,
		Metrics: collectionMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create compare store", err)
		os.Exit(1)
	}

	cartStore.Load(context.Background())
	wishlistStore.Load(context.Background())
	compareStore.Load(context.Background())

	if redisSlots != nil {
		listener := syncbus.NewListener(origin, logg)
		listener.Register(cfg.Slots.CartKey, cartStore)
		listener.Register(cfg.Slots.WishlistKey, wishlistStore)
		listener.Register(cfg.Slots.CompareKey, compareStore)
		go listener.Run(context.Background(), redisSlots.Subscribe(context.Background()))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, slots, catalogService, cartStore, wishlistStore, compareStore),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
