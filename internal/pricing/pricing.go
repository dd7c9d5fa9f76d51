package pricing

import (
	"github.com/Juliuuslm/tienda-ropa/internal/cart"
	"github.com/Juliuuslm/tienda-ropa/pkg/money"
)

const (
	// TaxRate is the flat rate applied to the subtotal.
	TaxRate = 0.10
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = 100.0
	// FlatShippingFee applies below the threshold.
	FlatShippingFee = 10.0
)

// Totals is the cart's price breakdown. Amounts are plain floats; display
// rounding happens at the presentation boundary only.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Display renders each amount as a two-decimal string for the UI.
func (t Totals) Display() map[string]string {
	return map[string]string{
		"subtotal": money.Format(t.Subtotal),
		"tax":      money.Format(t.Tax),
		"shipping": money.Format(t.Shipping),
		"total":    money.Format(t.Total),
	}
}

// Quote computes the price breakdown for the given cart lines. An empty
// cart ships for free; so does a subtotal at or above the threshold.
func Quote(lines []cart.Line) Totals {
	subtotal := 0.0
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	tax := subtotal * TaxRate

	shipping := 0.0
	if subtotal > 0 && subtotal < FreeShippingThreshold {
		shipping = FlatShippingFee
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
