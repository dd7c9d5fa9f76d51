package wishlist

import (
	"context"
	"time"

	"github.com/Juliuuslm/tienda-ropa/internal/collection"
	"github.com/Juliuuslm/tienda-ropa/internal/syncbus"
	"github.com/Juliuuslm/tienda-ropa/pkg/enums"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/metrics"
	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
)

// Entry is a product saved for later. AddedAt is set once at creation and
// never mutated.
type Entry struct {
	ID      string    `json:"id"`
	Slug    string    `json:"slug"`
	Name    string    `json:"name"`
	Price   float64   `json:"price"`
	Image   string    `json:"image"`
	AddedAt time.Time `json:"addedAt"`
}

func (e Entry) Key() string { return e.ID }

// StoreParams groups dependencies for the wishlist store.
type StoreParams struct {
	Slots   slot.Store
	SlotKey string
	Bus     *syncbus.Bus
	Logger  *logger.Logger
	Metrics *metrics.CollectionMetrics
	// Now supplies AddedAt timestamps; defaults to time.Now.
	Now func() time.Time
}

// Store manages the wishlist: unique by product id, toggle semantics, no
// quantities.
type Store struct {
	col *collection.Store[Entry]
	now func() time.Time
}

func NewStore(params StoreParams) (*Store, error) {
	slotKey := params.SlotKey
	if slotKey == "" {
		slotKey = enums.CollectionWishlist.String()
	}
	col, err := collection.New[Entry](collection.Params{
		Name:    enums.CollectionWishlist,
		SlotKey: slotKey,
		Slots:   params.Slots,
		Bus:     params.Bus,
		Logger:  params.Logger,
		Metrics: params.Metrics,
	})
	if err != nil {
		return nil, err
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Store{col: col, now: now}, nil
}

// Load hydrates the wishlist from its durable slot.
func (s *Store) Load(ctx context.Context) {
	s.col.Load(ctx)
}

// Reload replaces the mirror after a cross-process write.
func (s *Store) Reload(ctx context.Context) {
	s.col.Reload(ctx)
}

// Add saves the entry unless its product is already present.
func (s *Store) Add(ctx context.Context, entry Entry) bool {
	entry.AddedAt = s.now()
	return s.col.Add(ctx, entry, nil)
}

// Toggle removes the entry when present, saves it when absent. Returns
// whether the product is wishlisted afterwards.
func (s *Store) Toggle(ctx context.Context, entry Entry) bool {
	entry.AddedAt = s.now()
	return s.col.Toggle(ctx, entry)
}

// Remove drops the entry for the product id.
func (s *Store) Remove(ctx context.Context, id string) bool {
	return s.col.Remove(ctx, id)
}

// Clear empties the wishlist.
func (s *Store) Clear(ctx context.Context) {
	s.col.Clear(ctx)
}

// Contains reports whether the product is wishlisted.
func (s *Store) Contains(ctx context.Context, id string) bool {
	return s.col.Contains(ctx, id)
}

// Items returns the entries in insertion order.
func (s *Store) Items(ctx context.Context) []Entry {
	return s.col.Items(ctx)
}

// Count is the number of saved entries.
func (s *Store) Count(ctx context.Context) int {
	return s.col.Len(ctx)
}
