package syncbus

import (
	"encoding/json"
	"sync"
)

// Snapshot carries the full current item list for one collection slot.
// Every mutating store operation publishes one; subscribed views replace
// their local copy with it. Last publish wins, no queueing.
type Snapshot struct {
	Slot    string
	Payload json.RawMessage
}

// Bus is the in-process notification channel between collection stores
// and their mounted views.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[int]func(Snapshot)
	next int
}

func NewBus() *Bus {
	return &Bus{subs: map[string]map[int]func(Snapshot){}}
}

// Subscribe registers fn for snapshots of the given slot and returns a
// cancel function.
func (b *Bus) Subscribe(slotKey string, fn func(Snapshot)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[slotKey] == nil {
		b.subs[slotKey] = map[int]func(Snapshot){}
	}
	id := b.next
	b.next++
	b.subs[slotKey][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[slotKey], id)
	}
}

// Publish fans the snapshot out to every subscriber of its slot,
// synchronously and in-process.
func (b *Bus) Publish(snap Snapshot) {
	b.mu.RLock()
	listeners := make([]func(Snapshot), 0, len(b.subs[snap.Slot]))
	for _, fn := range b.subs[snap.Slot] {
		listeners = append(listeners, fn)
	}
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
