package compare

import (
	"context"
	"fmt"
	"testing"

	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(StoreParams{Slots: slot.NewMemory()})
	require.NoError(t, err)
	return store
}

func fillTray(ctx context.Context, store *Store, n int) {
	for i := 0; i < n; i++ {
		store.Add(ctx, Entry{ID: fmt.Sprintf("p%d", i), Category: "camisas"})
	}
}

func TestAddRejectsFifthEntry(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	fillTray(ctx, store, MaxEntries)

	assert.False(t, store.Add(ctx, Entry{ID: "p5"}))
	assert.Equal(t, MaxEntries, store.Count(ctx))
	assert.False(t, store.Contains(ctx, "p5"))
}

func TestToggleFifthEntryIsNoOp(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	fillTray(ctx, store, MaxEntries)
	before := store.Items(ctx)

	assert.False(t, store.Toggle(ctx, Entry{ID: "p5"}))
	assert.Equal(t, before, store.Items(ctx))
}

func TestToggleExistingEntryAlwaysRemoves(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	fillTray(ctx, store, MaxEntries)

	// A full tray still allows unpinning.
	assert.False(t, store.Toggle(ctx, Entry{ID: "p0"}))
	assert.Equal(t, MaxEntries-1, store.Count(ctx))
}

func TestAddIsUniqueByProduct(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	assert.True(t, store.Add(ctx, Entry{ID: "p1"}))
	assert.False(t, store.Add(ctx, Entry{ID: "p1"}))
	assert.Equal(t, 1, store.Count(ctx))
}

func TestOptionalFieldsRoundTrip(t *testing.T) {
	t.Parallel()

	slots := slot.NewMemory()
	ctx := context.Background()
	sale := 29.99
	rating := 4.5
	stock := 8

	first, err := NewStore(StoreParams{Slots: slots})
	require.NoError(t, err)
	first.Add(ctx, Entry{
		ID:        "p1",
		Slug:      "camisa-picnic",
		Name:      "Camisa Picnic",
		Price:     39.99,
		SalePrice: &sale,
		Image:     "/img/camisa.webp",
		Category:  "camisas",
		Rating:    &rating,
		Stock:     &stock,
		Colors:    []string{"rojo", "azul"},
		Sizes:     []string{"S", "M", "L"},
	})

	second, err := NewStore(StoreParams{Slots: slots})
	require.NoError(t, err)
	assert.Equal(t, first.Items(ctx), second.Items(ctx))
}
