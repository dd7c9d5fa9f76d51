package cart

import (
	"context"

	"github.com/Juliuuslm/tienda-ropa/internal/collection"
	"github.com/Juliuuslm/tienda-ropa/internal/syncbus"
	"github.com/Juliuuslm/tienda-ropa/pkg/enums"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/metrics"
	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
)

// StoreParams groups dependencies for the cart store.
type StoreParams struct {
	Slots   slot.Store
	SlotKey string
	Bus     *syncbus.Bus
	Logger  *logger.Logger
	Metrics *metrics.CollectionMetrics
}

// Store manages the shopper's cart: one line per product/variant
// identity, quantities merged on collision.
type Store struct {
	col *collection.Store[Line]
}

func NewStore(params StoreParams) (*Store, error) {
	slotKey := params.SlotKey
	if slotKey == "" {
		slotKey = enums.CollectionCart.String()
	}
	col, err := collection.New[Line](collection.Params{
		Name:    enums.CollectionCart,
		SlotKey: slotKey,
		Slots:   params.Slots,
		Bus:     params.Bus,
		Logger:  params.Logger,
		Metrics: params.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{col: col}, nil
}

// Load hydrates the cart from its durable slot.
func (s *Store) Load(ctx context.Context) {
	s.col.Load(ctx)
}

// Reload replaces the mirror after a cross-process write.
func (s *Store) Reload(ctx context.Context) {
	s.col.Reload(ctx)
}

// Add puts the line in the cart. A line with the same identity already
// present absorbs the incoming quantity instead of duplicating; the
// summed quantity is capped at MaxQuantity.
func (s *Store) Add(ctx context.Context, line Line) {
	line.Quantity = clampQuantity(line.Quantity)
	s.col.Add(ctx, line, func(existing Line) Line {
		existing.Quantity = clampQuantity(existing.Quantity + line.Quantity)
		return existing
	})
}

// Remove drops the line with the given identity key.
func (s *Store) Remove(ctx context.Context, key string) bool {
	return s.col.Remove(ctx, key)
}

// UpdateQuantity sets a line's quantity. Zero or below removes the line;
// anything above MaxQuantity is clamped.
func (s *Store) UpdateQuantity(ctx context.Context, key string, quantity int) bool {
	return s.col.Update(ctx, key, func(line Line) (Line, bool) {
		if quantity < 1 {
			return line, false
		}
		line.Quantity = clampQuantity(quantity)
		return line, true
	})
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.col.Clear(ctx)
}

// Items returns the cart lines in insertion order.
func (s *Store) Items(ctx context.Context) []Line {
	return s.col.Items(ctx)
}

// Count is the total number of units across all lines.
func (s *Store) Count(ctx context.Context) int {
	count := 0
	for _, line := range s.col.Items(ctx) {
		count += line.Quantity
	}
	return count
}

// Subtotal is the sum of unit price times quantity across all lines.
func (s *Store) Subtotal(ctx context.Context) float64 {
	subtotal := 0.0
	for _, line := range s.col.Items(ctx) {
		subtotal += line.Price * float64(line.Quantity)
	}
	return subtotal
}
