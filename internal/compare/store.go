package compare

import (
	"context"

	"github.com/Juliuuslm/tienda-ropa/internal/collection"
	"github.com/Juliuuslm/tienda-ropa/internal/syncbus"
	"github.com/Juliuuslm/tienda-ropa/pkg/enums"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/metrics"
	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
)

// MaxEntries bounds the side-by-side comparison view.
const MaxEntries = 4

// Entry is a product pinned for comparison.
type Entry struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"salePrice,omitempty"`
	Image     string   `json:"image"`
	Category  string   `json:"category"`
	Rating    *float64 `json:"rating,omitempty"`
	Stock     *int     `json:"stock,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Sizes     []string `json:"sizes,omitempty"`
}

func (e Entry) Key() string { return e.ID }

// StoreParams groups dependencies for the compare store.
type StoreParams struct {
	Slots   slot.Store
	SlotKey string
	Bus     *syncbus.Bus
	Logger  *logger.Logger
	Metrics *metrics.CollectionMetrics
}

// Store manages the comparison tray: unique by product id, at most
// MaxEntries concurrent entries. Adding beyond the bound is a silent
// no-op, never a queue.
type Store struct {
	col *collection.Store[Entry]
}

func NewStore(params StoreParams) (*Store, error) {
	slotKey := params.SlotKey
	if slotKey == "" {
		slotKey = enums.CollectionCompare.String()
	}
	col, err := collection.New[Entry](collection.Params{
		Name:    enums.CollectionCompare,
		SlotKey: slotKey,
		Slots:   params.Slots,
		Bus:     params.Bus,
		Logger:  params.Logger,
		Metrics: params.Metrics,
		Cap:     MaxEntries,
	})
	if err != nil {
		return nil, err
	}
	return &Store{col: col}, nil
}

// Load hydrates the tray from its durable slot.
func (s *Store) Load(ctx context.Context) {
	s.col.Load(ctx)
}

// Reload replaces the mirror after a cross-process write.
func (s *Store) Reload(ctx context.Context) {
	s.col.Reload(ctx)
}

// Add pins the entry if the tray has room and the product is not already
// pinned.
func (s *Store) Add(ctx context.Context, entry Entry) bool {
	return s.col.Add(ctx, entry, nil)
}

// Toggle unpins the entry when present, pins it when absent and the tray
// has room. Returns whether the product is pinned afterwards.
func (s *Store) Toggle(ctx context.Context, entry Entry) bool {
	return s.col.Toggle(ctx, entry)
}

// Remove unpins the entry for the product id.
func (s *Store) Remove(ctx context.Context, id string) bool {
	return s.col.Remove(ctx, id)
}

// Clear empties the tray.
func (s *Store) Clear(ctx context.Context) {
	s.col.Clear(ctx)
}

// Contains reports whether the product is pinned.
func (s *Store) Contains(ctx context.Context, id string) bool {
	return s.col.Contains(ctx, id)
}

// Items returns the entries in insertion order.
func (s *Store) Items(ctx context.Context) []Entry {
	return s.col.Items(ctx)
}

// Count is the number of pinned entries.
func (s *Store) Count(ctx context.Context) int {
	return s.col.Len(ctx)
}
