package catalog

import (
	"context"
	"errors"
	"sort"

	pkgerrors "github.com/Juliuuslm/tienda-ropa/pkg/errors"
	"gorm.io/gorm"
)

const maxRelated = 4

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes read-side catalog operations for the storefront.
type Service interface {
	Browse(ctx context.Context, query ListingQuery) (Page, error)
	Detail(ctx context.Context, slug string) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
	Related(ctx context.Context, slug string) ([]Product, error)
}

type service struct {
	repo *Repository
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// Browse lists the catalog through the filter, sort, and pagination
// pipeline. Unknown sort keys fall back to newest.
func (s *service) Browse(ctx context.Context, query ListingQuery) (Page, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return Page{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}
	if !query.Sort.IsValid() {
		query.Sort = ""
	}
	return DerivePage(products, query), nil
}

// Detail loads one product by its slug.
func (s *service) Detail(ctx context.Context, slug string) (*Product, error) {
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	product, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

// Categories returns the distinct category labels in the catalog,
// sorted alphabetically. Products without a category count under the
// fallback label.
func (s *service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range products {
		label := p.CategoryOrFallback()
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		categories = append(categories, label)
	}
	sort.Strings(categories)
	return categories, nil
}

// Related returns up to four products sharing the product's category,
// excluding the product itself, in catalog order.
func (s *service) Related(ctx context.Context, slug string) ([]Product, error) {
	product, err := s.Detail(ctx, slug)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}
	category := product.CategoryOrFallback()
	related := make([]Product, 0, maxRelated)
	for _, p := range products {
		if p.ID == product.ID {
			continue
		}
		if p.CategoryOrFallback() != category {
			continue
		}
		related = append(related, p)
		if len(related) == maxRelated {
			break
		}
	}
	return related, nil
}
