package pricing

import (
	"testing"

	"github.com/Juliuuslm/tienda-ropa/internal/cart"
	"github.com/stretchr/testify/assert"
)

func TestQuoteEmptyCart(t *testing.T) {
	t.Parallel()

	totals := Quote(nil)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.Shipping, "empty cart must not be charged shipping")
	assert.Zero(t, totals.Total)
}

func TestQuoteBelowFreeShippingThreshold(t *testing.T) {
	t.Parallel()

	totals := Quote([]cart.Line{{Price: 40, Quantity: 2}})
	assert.InDelta(t, 80.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 8.0, totals.Tax, 1e-9)
	assert.InDelta(t, 10.0, totals.Shipping, 1e-9)
	assert.InDelta(t, 98.0, totals.Total, 1e-9)
}

func TestQuoteAtOrAboveThresholdShipsFree(t *testing.T) {
	t.Parallel()

	totals := Quote([]cart.Line{{Price: 60, Quantity: 2}})
	assert.InDelta(t, 120.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 12.0, totals.Tax, 1e-9)
	assert.Zero(t, totals.Shipping)
	assert.InDelta(t, 132.0, totals.Total, 1e-9)

	exactly := Quote([]cart.Line{{Price: 100, Quantity: 1}})
	assert.Zero(t, exactly.Shipping, "threshold itself qualifies for free shipping")
}

func TestQuoteSumsAcrossLines(t *testing.T) {
	t.Parallel()

	totals := Quote([]cart.Line{
		{Price: 19.99, Quantity: 2},
		{Price: 5, Quantity: 3},
	})
	assert.InDelta(t, 54.98, totals.Subtotal, 1e-9)
	assert.InDelta(t, 10.0, totals.Shipping, 1e-9)
}

func TestTotalsDisplayRoundsToTwoDecimals(t *testing.T) {
	t.Parallel()

	totals := Quote([]cart.Line{{Price: 19.99, Quantity: 3}})
	display := totals.Display()
	assert.Equal(t, "59.97", display["subtotal"])
	assert.Equal(t, "6.00", display["tax"])
	assert.Equal(t, "10.00", display["shipping"])
}
