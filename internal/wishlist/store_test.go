package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	frozen := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store, err := NewStore(StoreParams{
		Slots: slot.NewMemory(),
		Now:   func() time.Time { return frozen },
	})
	require.NoError(t, err)
	return store
}

func TestAddIsUniqueByProduct(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	assert.True(t, store.Add(ctx, Entry{ID: "p1", Name: "Vestido"}))
	assert.False(t, store.Add(ctx, Entry{ID: "p1", Name: "Vestido"}))
	assert.Equal(t, 1, store.Count(ctx))
}

func TestAddStampsAddedAt(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	store.Add(ctx, Entry{ID: "p1"})

	items := store.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), items[0].AddedAt)
}

func TestToggleTwiceRestoresOriginalState(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	store.Add(ctx, Entry{ID: "p1"})

	assert.True(t, store.Toggle(ctx, Entry{ID: "p2"}))
	assert.False(t, store.Toggle(ctx, Entry{ID: "p2"}))

	items := store.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestRemoveAndClear(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	store.Add(ctx, Entry{ID: "p1"})
	store.Add(ctx, Entry{ID: "p2"})

	assert.True(t, store.Remove(ctx, "p1"))
	assert.False(t, store.Remove(ctx, "p1"))
	assert.True(t, store.Contains(ctx, "p2"))

	store.Clear(ctx)
	assert.Equal(t, 0, store.Count(ctx))
}
