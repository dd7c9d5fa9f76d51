package money

import "github.com/shopspring/decimal"

// Format renders a monetary amount with two decimal places for display.
// Internal pricing arithmetic stays in float64; rounding happens only
// here, at the presentation boundary.
func Format(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
