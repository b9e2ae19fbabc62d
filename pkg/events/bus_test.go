package events

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(typ string, terminal bool) Event {
	return Event{Type: typ, Payload: []byte(`{"type":"` + typ + `"}`), Terminal: terminal}
}

// collector accumulates delivered event types in order.
type collector struct {
	mu    sync.Mutex
	types []string
}

func (c *collector) handle(evt Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types = append(c.types, evt.Type)
	return nil
}

func (c *collector) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.types))
	copy(out, c.types)
	return out
}

func TestBusDeliversInPublishOrder(t *testing.T) {
	bus := NewBus(64)
	defer bus.Close()

	col := &collector{}
	bus.Subscribe("orders", col.handle)

	want := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		typ := fmt.Sprintf("event-%02d", i)
		want = append(want, typ)
		bus.Publish("orders", testEvent(typ, false))
	}

	require.Eventually(t, func() bool {
		return len(col.snapshot()) == len(want)
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, want, col.snapshot())
}

func TestBusTopicsAreIndependent(t *testing.T) {
	bus := NewBus(64)
	defer bus.Close()

	a := &collector{}
	b := &collector{}
	bus.Subscribe("topic-a", a.handle)
	bus.Subscribe("topic-b", b.handle)

	bus.Publish("topic-a", testEvent("only-a", false))
	bus.Publish("topic-b", testEvent("only-b", false))

	require.Eventually(t, func() bool {
		return len(a.snapshot()) == 1 && len(b.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"only-a"}, a.snapshot())
	assert.Equal(t, []string{"only-b"}, b.snapshot())
}

func TestBusHandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := NewBus(64)
	defer bus.Close()

	col := &collector{}
	bus.Subscribe("errs", func(Event) error {
		return fmt.Errorf("handler exploded")
	})
	bus.Subscribe("errs", col.handle)

	bus.Publish("errs", testEvent("first", false))
	bus.Publish("errs", testEvent("second", false))

	require.Eventually(t, func() bool {
		return len(col.snapshot()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, col.snapshot())
}

func TestBusOverflowDropsOldestNonTerminal(t *testing.T) {
	bus := NewBus(4)
	defer bus.Close()

	started := make(chan struct{}, 16)
	gate := make(chan struct{})
	col := &collector{}
	bus.Subscribe("overflow", func(evt Event) error {
		started <- struct{}{}
		<-gate
		return col.handle(evt)
	})

	// Park the drain goroutine inside the handler so the queue fills
	// deterministically.
	bus.Publish("overflow", testEvent("held", false))
	<-started

	bus.Publish("overflow", testEvent("old-1", false))
	bus.Publish("overflow", testEvent("old-2", false))
	bus.Publish("overflow", testEvent("keep-1", false))
	bus.Publish("overflow", testEvent("keep-2", false))
	require.Equal(t, 4, bus.Depth("overflow"))

	// The queue is full; each terminal publish must evict the oldest
	// non-terminal event instead of blocking or losing the terminal one.
	bus.Publish("overflow", testEvent("terminal-1", true))
	bus.Publish("overflow", testEvent("terminal-2", true))
	require.Equal(t, 4, bus.Depth("overflow"))
	assert.Equal(t, uint64(2), bus.Dropped("overflow"))

	close(gate)
	require.Eventually(t, func() bool {
		return len(col.snapshot()) == 5
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"held", "keep-1", "keep-2", "terminal-1", "terminal-2"}, col.snapshot())
}

func TestBusPublishBlocksWhenOnlyTerminalQueued(t *testing.T) {
	bus := NewBus(2)
	defer bus.Close()

	started := make(chan struct{}, 16)
	gate := make(chan struct{})
	col := &collector{}
	bus.Subscribe("terminal", func(evt Event) error {
		started <- struct{}{}
		<-gate
		return col.handle(evt)
	})

	bus.Publish("terminal", testEvent("held", false))
	<-started

	bus.Publish("terminal", testEvent("terminal-1", true))
	bus.Publish("terminal", testEvent("terminal-2", true))

	published := make(chan struct{})
	go func() {
		bus.Publish("terminal", testEvent("terminal-3", true))
		close(published)
	}()

	select {
	case <-published:
		t.Fatal("publish returned while the queue held only terminal events")
	case <-time.After(100 * time.Millisecond):
	}

	close(gate)
	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("publish did not unblock after the queue drained")
	}

	require.Eventually(t, func() bool {
		return len(col.snapshot()) == 4
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"held", "terminal-1", "terminal-2", "terminal-3"}, col.snapshot())
	assert.Equal(t, uint64(0), bus.Dropped("terminal"))
}

func TestBusCloseDrainsPendingEvents(t *testing.T) {
	bus := NewBus(64)

	col := &collector{}
	bus.Subscribe("drain", func(evt Event) error {
		time.Sleep(5 * time.Millisecond)
		return col.handle(evt)
	})

	for i := 0; i < 10; i++ {
		bus.Publish("drain", testEvent(fmt.Sprintf("event-%d", i), false))
	}
	bus.Close()

	assert.Len(t, col.snapshot(), 10)
}

func TestBusPublishAfterCloseIsDiscarded(t *testing.T) {
	bus := NewBus(8)
	col := &collector{}
	bus.Subscribe("closed", col.handle)
	bus.Close()

	bus.Publish("closed", testEvent("late", false))
	assert.Equal(t, 0, bus.Depth("closed"))
	assert.Empty(t, col.snapshot())
}
