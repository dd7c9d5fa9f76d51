package slot

import (
	"context"
	"sync"
)

// Memory is an in-process Store used in tests and when running without
// Redis. Writes are visible only to this process.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{slots: map[string][]byte{}}
}

func (m *Memory) Read(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

func (m *Memory) Write(ctx context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.slots[key] = stored
	return nil
}

func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// Corrupt overwrites a slot with a payload that is not valid JSON. Test
// helper for the malformed-data path.
func (m *Memory) Corrupt(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = []byte("{not-json")
}
