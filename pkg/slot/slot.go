package slot

import (
	"context"
	"encoding/json"

	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
)

// Store is the durable adapter: one serialized collection per named slot.
// Last writer wins; cross-process races are resolved by the sync listener,
// not by this layer.
type Store interface {
	// Read returns the raw payload stored at the slot and whether the slot
	// exists at all. An absent slot is not an error.
	Read(ctx context.Context, key string) ([]byte, bool, error)
	// Write replaces the slot's payload.
	Write(ctx context.Context, key string, payload []byte) error
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}

// ChangeSignal announces a slot write to other processes. Origin lets a
// process ignore its own writes, matching the browser storage event which
// only fires in other tabs.
type ChangeSignal struct {
	Slot   string `json:"slot"`
	Origin string `json:"origin"`
}

// ReadRecords loads and decodes the slot's record sequence. Absence,
// backend failures, and malformed payloads all yield a nil slice; the
// in-memory mirror is the source of truth, so none of these are fatal.
func ReadRecords[T any](ctx context.Context, s Store, key string, logg *logger.Logger) []T {
	payload, ok, err := s.Read(ctx, key)
	if err != nil {
		warn(ctx, logg, key, "slot read failed, treating as empty")
		return nil
	}
	if !ok || len(payload) == 0 {
		return nil
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		warn(ctx, logg, key, "slot payload malformed, treating as empty")
		return nil
	}
	return records
}

// WriteRecords serializes and persists the full record sequence.
func WriteRecords[T any](ctx context.Context, s Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, payload)
}

func warn(ctx context.Context, logg *logger.Logger, key, msg string) {
	if logg == nil {
		return
	}
	logg.Warn(logg.WithSlot(ctx, key), msg)
}
