package enums

import "fmt"

// SortKey describes the allowed orderings for the shop listing.
type SortKey string

const (
	SortKeyNewest    SortKey = "newest"
	SortKeyPriceAsc  SortKey = "price-asc"
	SortKeyPriceDesc SortKey = "price-desc"
	SortKeyPopular   SortKey = "popular"
	SortKeyRating    SortKey = "rating"
)

var validSortKeys = []SortKey{
	SortKeyNewest,
	SortKeyPriceAsc,
	SortKeyPriceDesc,
	SortKeyPopular,
	SortKeyRating,
}

// IsValid reports whether the value matches the canonical sort key enum.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts the raw string to SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
