package syncbus

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Juliuuslm/tienda-ropa/pkg/logger"
	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
	"github.com/redis/go-redis/v9"
)

// Reloader re-reads a collection's durable slot and replaces its mirror.
type Reloader interface {
	Reload(ctx context.Context)
}

// Listener reacts to cross-process slot change signals. On each signal it
// re-reads the slot through the registered store rather than trusting the
// signal payload, so adapters that coalesce writes are still observed
// correctly.
type Listener struct {
	origin string
	logg   *logger.Logger

	mu      sync.RWMutex
	targets map[string]Reloader
}

func NewListener(origin string, logg *logger.Logger) *Listener {
	return &Listener{
		origin:  origin,
		logg:    logg,
		targets: map[string]Reloader{},
	}
}

// Register binds a store to its slot key.
func (l *Listener) Register(slotKey string, target Reloader) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.targets[slotKey] = target
}

// Handle processes one raw change signal. Signals from this process's own
// origin are ignored; the local mirror already reflects those writes.
func (l *Listener) Handle(ctx context.Context, payload []byte) {
	var signal slot.ChangeSignal
	if err := json.Unmarshal(payload, &signal); err != nil {
		if l.logg != nil {
			l.logg.Warn(ctx, "discarding malformed slot change signal")
		}
		return
	}
	if signal.Origin == l.origin {
		return
	}

	l.mu.RLock()
	target := l.targets[signal.Slot]
	l.mu.RUnlock()
	if target == nil {
		return
	}

	if l.logg != nil {
		ctx = l.logg.WithSlot(ctx, signal.Slot)
		l.logg.Info(ctx, "slot changed in another process, reloading")
	}
	target.Reload(ctx)
}

// Run consumes change signals from the subscription until ctx is done.
func (l *Listener) Run(ctx context.Context, ps *redis.PubSub) {
	if ps == nil {
		return
	}
	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			l.Handle(ctx, []byte(msg.Payload))
		}
	}
}
