package events

import (
	"log/slog"
	"sync"
)

// Handler processes one delivered event. Errors are logged and
// swallowed by the bus; a failing handler never affects other handlers
// or the publisher.
type Handler func(Event) error

// Event is one bus message: the marshaled wire envelope plus the
// metadata the bus needs for its overflow policy.
type Event struct {
	// Type is the envelope type (for logging and diagnostics).
	Type string

	// Payload is the marshaled Envelope, ready for WebSocket delivery.
	Payload []byte

	// Terminal marks events that must never be dropped on overflow:
	// job.update with a terminal status, and stream.end.
	Terminal bool
}

// Bus is a process-local topic-keyed pub/sub queue.
//
// Each topic has a single delivery goroutine draining a bounded FIFO
// queue, so subscribers observe events in exactly the order they were
// published. When a topic's queue is full, the oldest non-terminal
// event is dropped to make room; if only terminal events remain queued,
// Publish blocks until the drain goroutine frees space.
type Bus struct {
	capacity int

	mu     sync.Mutex
	topics map[string]*topic
	closed bool
	wg     sync.WaitGroup
}

type topic struct {
	name string

	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	queue    []Event
	handlers []Handler
	dropped  uint64
	closed   bool
}

// NewBus creates a bus whose per-topic queues hold up to capacity
// pending events.
func NewBus(capacity int) *Bus {
	if capacity < 1 {
		capacity = 1
	}
	return &Bus{
		capacity: capacity,
		topics:   make(map[string]*topic),
	}
}

// Subscribe registers a handler for a topic. Handlers on the same topic
// are invoked serially, in subscription order, for every event.
// Subscriptions last for the lifetime of the bus.
func (b *Bus) Subscribe(name string, h Handler) {
	t := b.topic(name)
	if t == nil {
		return
	}
	t.mu.Lock()
	t.handlers = append(t.handlers, h)
	t.mu.Unlock()
}

// Publish enqueues an event for delivery to the topic's subscribers and
// returns once the event is queued. Publishing to a closed bus is a
// no-op.
func (b *Bus) Publish(name string, evt Event) {
	t := b.topic(name)
	if t == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for len(t.queue) >= b.capacity && !t.closed {
		if t.dropOldestNonTerminal() {
			break
		}
		// Everything queued is terminal. Block until the drain
		// goroutine makes room rather than lose a terminal event.
		t.notFull.Wait()
	}
	if t.closed {
		return
	}
	t.queue = append(t.queue, evt)
	t.notEmpty.Signal()
}

// Depth returns the number of events queued on a topic.
func (b *Bus) Depth(name string) int {
	b.mu.Lock()
	t, ok := b.topics[name]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.queue)
}

// Dropped returns how many events a topic has dropped on overflow.
func (b *Bus) Dropped(name string) uint64 {
	b.mu.Lock()
	t, ok := b.topics[name]
	b.mu.Unlock()
	if !ok {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}

// Close drains all topic queues, stops the delivery goroutines, and
// waits for them to exit. Events published after Close are discarded.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	topics := make([]*topic, 0, len(b.topics))
	for _, t := range b.topics {
		topics = append(topics, t)
	}
	b.mu.Unlock()

	for _, t := range topics {
		t.mu.Lock()
		t.closed = true
		t.notEmpty.Broadcast()
		t.notFull.Broadcast()
		t.mu.Unlock()
	}
	b.wg.Wait()
}

// topic returns the named topic, creating it and starting its delivery
// goroutine on first use. Returns nil when the bus is closed.
func (b *Bus) topic(name string) *topic {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	t, ok := b.topics[name]
	if !ok {
		t = &topic{name: name}
		t.notEmpty = sync.NewCond(&t.mu)
		t.notFull = sync.NewCond(&t.mu)
		b.topics[name] = t
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			t.drain()
		}()
	}
	return t
}

// dropOldestNonTerminal removes the oldest droppable event from the
// queue. Returns false when every queued event is terminal.
// Caller must hold t.mu.
func (t *topic) dropOldestNonTerminal() bool {
	for i := range t.queue {
		if !t.queue[i].Terminal {
			slog.Warn("Event queue full, dropping oldest non-terminal event",
				"topic", t.name, "type", t.queue[i].Type)
			t.queue = append(t.queue[:i], t.queue[i+1:]...)
			t.dropped++
			return true
		}
	}
	return false
}

// drain is the topic's delivery loop: pop the head, invoke every
// handler in order, repeat. Exits once the topic is closed and the
// queue is empty.
func (t *topic) drain() {
	for {
		t.mu.Lock()
		for len(t.queue) == 0 && !t.closed {
			t.notEmpty.Wait()
		}
		if len(t.queue) == 0 {
			t.mu.Unlock()
			return
		}
		evt := t.queue[0]
		t.queue = t.queue[1:]
		handlers := make([]Handler, len(t.handlers))
		copy(handlers, t.handlers)
		t.notFull.Signal()
		t.mu.Unlock()

		for _, h := range handlers {
			if err := h(evt); err != nil {
				slog.Error("Event handler failed",
					"topic", t.name, "type", evt.Type, "error", err)
			}
		}
	}
}
