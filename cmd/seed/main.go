package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/Juliuuslm/tienda-ropa/internal/catalog"
	"github.com/Juliuuslm/tienda-ropa/pkg/config"
	"github.com/Juliuuslm/tienda-ropa/pkg/db"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
)

// Loads the product seed file into the catalog database, replacing
// whatever is there. The api binary only seeds an empty catalog; this
// command is for refreshing an existing one.
func main() {
	seedPath := flag.String("file", "", "seed file path (defaults to TIENDA_CATALOG_SEED_PATH)")
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	path := *seedPath
	if path == "" {
		path = cfg.Catalog.SeedPath
	}

	dbClient, err := db.New(context.Background(), cfg.Catalog, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open catalog database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	repo := catalog.NewRepository(dbClient.DB())
	if err := repo.Migrate(); err != nil {
		logg.Error(context.Background(), "failed to migrate catalog schema", err)
		os.Exit(1)
	}

	products, err := catalog.LoadSeed(path)
	if err != nil {
		logg.Error(context.Background(), "failed to load seed file", err)
		os.Exit(1)
	}

	if err := repo.ReplaceAll(context.Background(), products); err != nil {
		logg.Error(context.Background(), "failed to replace catalog", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"file":     path,
		"products": len(products),
	})
	logg.Info(ctx, "catalog replaced")
}
