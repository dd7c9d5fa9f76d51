package syncbus

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Juliuuslm/tienda-ropa/pkg/slot"
)

func TestBusFanOutAndCancel(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got []string
	cancel := bus.Subscribe("cart", func(snap Snapshot) {
		got = append(got, string(snap.Payload))
	})
	bus.Subscribe("wishlist", func(snap Snapshot) {
		t.Error("wishlist subscriber must not see cart snapshots")
	})

	bus.Publish(Snapshot{Slot: "cart", Payload: json.RawMessage(`[1]`)})
	bus.Publish(Snapshot{Slot: "cart", Payload: json.RawMessage(`[2]`)})
	if len(got) != 2 || got[1] != "[2]" {
		t.Fatalf("unexpected snapshots %v", got)
	}

	cancel()
	bus.Publish(Snapshot{Slot: "cart", Payload: json.RawMessage(`[3]`)})
	if len(got) != 2 {
		t.Fatalf("cancelled subscriber still received snapshots: %v", got)
	}
}

type reloadRecorder struct {
	calls int
}

func (r *reloadRecorder) Reload(ctx context.Context) {
	r.calls++
}

func TestListenerSkipsOwnOrigin(t *testing.T) {
	t.Parallel()

	listener := NewListener("proc-a", nil)
	target := &reloadRecorder{}
	listener.Register("cart", target)

	own, _ := json.Marshal(slot.ChangeSignal{Slot: "cart", Origin: "proc-a"})
	listener.Handle(context.Background(), own)
	if target.calls != 0 {
		t.Fatal("listener must ignore its own writes")
	}

	other, _ := json.Marshal(slot.ChangeSignal{Slot: "cart", Origin: "proc-b"})
	listener.Handle(context.Background(), other)
	if target.calls != 1 {
		t.Fatalf("expected one reload, got %d", target.calls)
	}
}

func TestListenerIgnoresUnknownSlotsAndGarbage(t *testing.T) {
	t.Parallel()

	listener := NewListener("proc-a", nil)
	target := &reloadRecorder{}
	listener.Register("cart", target)

	listener.Handle(context.Background(), []byte("{not-json"))

	unknown, _ := json.Marshal(slot.ChangeSignal{Slot: "orders", Origin: "proc-b"})
	listener.Handle(context.Background(), unknown)

	if target.calls != 0 {
		t.Fatalf("expected no reloads, got %d", target.calls)
	}
}
