package collection

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Juliuuslm/tienda-ropa/internal/syncbus"
	"github.com/Juliuuslm/tienda-ropa/pkg/enums"
	pkgerrors "github.com/Juliuuslm/tienda-ropa/pkg/errors"
	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/metrics"
	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
)

// Keyed exposes the identity key that determines uniqueness within a
// collection.
type Keyed interface {
	Key() string
}

// Params groups dependencies for a collection store.
type Params struct {
	Name    enums.Collection
	SlotKey string
	Slots   slot.Store
	Bus     *syncbus.Bus
	Logger  *logger.Logger
	Metrics *metrics.CollectionMetrics
	// Cap bounds the number of entries; zero means unbounded. An add
	// beyond the cap is a silent no-op.
	Cap int
}

// Store keeps an in-memory mirror of one durable slot and persists the
// full mirror after every mutation. The mirror is authoritative: slot
// failures degrade durability, never behavior.
type Store[T Keyed] struct {
	mu      sync.Mutex
	name    enums.Collection
	slotKey string
	slots   slot.Store
	bus     *syncbus.Bus
	logg    *logger.Logger
	metrics *metrics.CollectionMetrics
	cap     int

	items  []T
	loaded bool
}

func New[T Keyed](params Params) (*Store[T], error) {
	if params.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "collection name is required")
	}
	if params.SlotKey == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slot key is required")
	}
	if params.Slots == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slot store is required")
	}
	return &Store[T]{
		name:    params.Name,
		slotKey: params.SlotKey,
		slots:   params.Slots,
		bus:     params.Bus,
		logg:    params.Logger,
		metrics: params.Metrics,
		cap:     params.Cap,
	}, nil
}

// Load hydrates the mirror from the durable slot. It runs at most once
// and never writes back, so a slot another process is about to repair is
// not clobbered with an empty array.
func (s *Store[T]) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
}

func (s *Store[T]) ensureLoadedLocked(ctx context.Context) {
	if s.loaded {
		return
	}
	s.items = slot.ReadRecords[T](ctx, s.slots, s.slotKey, s.logg)
	s.loaded = true
	s.metrics.SetItems(s.name.String(), len(s.items))
}

// Reload unconditionally replaces the mirror with the slot's current
// contents and notifies in-process subscribers. Called when another
// process wrote the slot.
func (s *Store[T]) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slot.ReadRecords[T](ctx, s.slots, s.slotKey, s.logg)
	s.loaded = true
	s.metrics.SetItems(s.name.String(), len(s.items))
	s.notifyLocked()
}

// Items returns the mirror in insertion order.
func (s *Store[T]) Items(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of entries.
func (s *Store[T]) Len(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	return len(s.items)
}

// Contains reports whether an entry with the identity key exists.
func (s *Store[T]) Contains(ctx context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)
	return s.indexLocked(key) >= 0
}

// Add inserts the item if its identity is absent. When present, merge
// resolves the collision: a nil merge keeps the existing entry untouched
// (the wishlist/compare rule), otherwise the entry is replaced with
// merge's result (the cart quantity rule). Returns true when the mirror
// changed.
func (s *Store[T]) Add(ctx context.Context, item T, merge func(existing T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)

	if idx := s.indexLocked(item.Key()); idx >= 0 {
		if merge == nil {
			return false
		}
		s.items[idx] = merge(s.items[idx])
		s.persistLocked(ctx, "merge")
		return true
	}

	if s.cap > 0 && len(s.items) >= s.cap {
		return false
	}
	s.items = append(s.items, item)
	s.persistLocked(ctx, "add")
	return true
}

// Remove drops the entry with the identity key. Returns true when an
// entry was removed.
func (s *Store[T]) Remove(ctx context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)

	idx := s.indexLocked(key)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persistLocked(ctx, "remove")
	return true
}

// Toggle removes the item when present, adds it when absent. Returns
// whether the item is present afterwards.
func (s *Store[T]) Toggle(ctx context.Context, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)

	if idx := s.indexLocked(item.Key()); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		s.persistLocked(ctx, "toggle")
		return false
	}
	if s.cap > 0 && len(s.items) >= s.cap {
		return false
	}
	s.items = append(s.items, item)
	s.persistLocked(ctx, "toggle")
	return true
}

// Update applies fn to the entry with the identity key. fn returns the
// replacement and whether to keep it; keep=false removes the entry.
// Unknown keys are a no-op.
func (s *Store[T]) Update(ctx context.Context, key string, fn func(T) (T, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)

	idx := s.indexLocked(key)
	if idx < 0 {
		return false
	}
	next, keep := fn(s.items[idx])
	if !keep {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		s.persistLocked(ctx, "remove")
		return true
	}
	s.items[idx] = next
	s.persistLocked(ctx, "update")
	return true
}

// Clear empties the mirror and persists the empty sequence.
func (s *Store[T]) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx)

	s.items = nil
	s.persistLocked(ctx, "clear")
}

func (s *Store[T]) indexLocked(key string) int {
	for i, item := range s.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

func (s *Store[T]) persistLocked(ctx context.Context, op string) {
	items := s.items
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(s.logg.WithSlot(ctx, s.slotKey), "encoding collection failed", err)
		}
		return
	}

	if err := s.slots.Write(ctx, s.slotKey, payload); err != nil {
		// Mirror stays authoritative; the next successful write repairs
		// the slot.
		if s.logg != nil {
			s.logg.Warn(s.logg.WithSlot(ctx, s.slotKey), "slot write failed, keeping in-memory state")
		}
		s.metrics.IncPersistFailure(s.name.String())
	}

	s.metrics.IncMutation(s.name.String(), op)
	s.metrics.SetItems(s.name.String(), len(s.items))
	s.notifyLocked()
}

// notifyLocked publishes under the store lock so snapshot order matches
// mutation order. Subscribers must not call back into the store.
func (s *Store[T]) notifyLocked() {
	if s.bus == nil {
		return
	}
	items := s.items
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	s.bus.Publish(syncbus.Snapshot{Slot: s.slotKey, Payload: payload})
}
