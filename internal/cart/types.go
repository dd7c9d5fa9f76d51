package cart

import "strings"

// MaxQuantity caps how many units one line can hold.
const MaxQuantity = 999

// Line is one distinct purchasable configuration in the cart. The same
// product in a different color or size is a separate line.
type Line struct {
	ID       string  `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color,omitempty"`
	Size     string  `json:"size,omitempty"`
}

// Key is the line's identity: product id plus the variant pair.
func (l Line) Key() string {
	return LineKey(l.ID, l.Color, l.Size)
}

// LineKey builds the identity key for a product/variant combination.
func LineKey(id, color, size string) string {
	if color == "" && size == "" {
		return id
	}
	return strings.Join([]string{id, color, size}, "|")
}

// clampQuantity normalizes a requested quantity into [1, MaxQuantity].
// Values below one are the caller's removal signal and are handled before
// this point.
func clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
