package session

import "sync"

// Reason says why the transaction data was invalidated.
type Reason string

// Invalidation reasons.
const (
	ReasonCreated Reason = "created"
	ReasonUpdated Reason = "updated"
	ReasonDeleted Reason = "deleted"
	ReasonManual  Reason = "manual"
)

// Invalidation is a typed "underlying data changed, reload" event,
// replacing the incremented-counter pattern with an explicit channel.
type Invalidation struct {
	Reason        Reason
	TransactionID string
}

// Bus fans invalidation events out to subscribers. Sends never block:
// a subscriber that is not draining its channel misses events rather
// than stalling publishers.
type Bus struct {
	subs   map[int]chan Invalidation
	next   int
	mu     sync.Mutex
	closed bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Invalidation)}
}

// Subscribe registers a listener. The returned cancel function removes
// the subscription and closes the channel.
func (b *Bus) Subscribe() (<-chan Invalidation, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Invalidation, 8)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.next
	b.next++
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers the event to every subscriber.
func (b *Bus) Publish(ev Invalidation) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close shuts the bus down and closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
