package catalog

import (
	"sort"
	"strings"

	"github.com/Juliuuslm/tienda-ropa/pkg/enums"
	"github.com/Juliuuslm/tienda-ropa/pkg/pagination"
)

// ListingQuery describes one shop listing request. It is transient; a
// caller changing Category, Search, or Sort must reset Page to 1 itself.
type ListingQuery struct {
	Category string
	Search   string
	Sort     enums.SortKey
	Page     int
	PageSize int
}

// Page is the bounded slice of the filtered catalog plus pagination
// metadata. Page is the resolved page actually served, after clamping.
type Page struct {
	Items      []Product `json:"items"`
	TotalCount int       `json:"totalCount"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
}

// DerivePage runs the listing pipeline: category filter, then text
// search, then stable sort, then pagination. Pure over its inputs.
func DerivePage(products []Product, query ListingQuery) Page {
	filtered := filterByCategory(products, query.Category)
	filtered = filterBySearch(filtered, query.Search)
	sorted := sortProducts(filtered, query.Sort)

	pageSize := pagination.NormalizePageSize(query.PageSize)
	totalPages := pagination.TotalPages(len(sorted), pageSize)
	resolved := pagination.ResolvePage(query.Page, totalPages)
	start, end := pagination.Bounds(resolved, pageSize, len(sorted))

	return Page{
		Items:      sorted[start:end],
		TotalCount: len(sorted),
		TotalPages: totalPages,
		Page:       resolved,
		PageSize:   pageSize,
	}
}

func filterByCategory(products []Product, category string) []Product {
	if category == "" {
		return products
	}
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if p.CategoryOrFallback() == category {
			kept = append(kept, p)
		}
	}
	return kept
}

func filterBySearch(products []Product, search string) []Product {
	if search == "" {
		return products
	}
	needle := strings.ToLower(search)
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			kept = append(kept, p)
		}
	}
	return kept
}

func sortProducts(products []Product, key enums.SortKey) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch key {
	case enums.SortKeyPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectivePrice() < sorted[j].EffectivePrice()
		})
	case enums.SortKeyPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectivePrice() > sorted[j].EffectivePrice()
		})
	case enums.SortKeyPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return reviewCount(sorted[i]) > reviewCount(sorted[j])
		})
	case enums.SortKeyRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return rating(sorted[i]) > rating(sorted[j])
		})
	default:
		// newest: input order is newest-first already.
	}
	return sorted
}

func reviewCount(p Product) int {
	if p.ReviewCount == nil {
		return 0
	}
	return *p.ReviewCount
}

func rating(p Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}
