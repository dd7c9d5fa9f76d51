package catalog

import (
	"context"
	"encoding/json"
	"os"

	pkgerrors "github.com/Juliuuslm/tienda-ropa/pkg/errors"
)

// LoadSeed reads a JSON array of products from disk.
func LoadSeed(path string) ([]Product, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read seed file")
	}
	var products []Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "decode seed file")
	}
	return products, nil
}

// Seed loads the seed file and replaces the catalog with its contents.
// An already populated catalog is left untouched.
func Seed(ctx context.Context, repo *Repository, path string) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count catalog")
	}
	if count > 0 {
		return 0, nil
	}
	products, err := LoadSeed(path)
	if err != nil {
		return 0, err
	}
	if err := repo.ReplaceAll(ctx, products); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace catalog")
	}
	return len(products), nil
}
