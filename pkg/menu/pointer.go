package menu

import "sync"

// Broadcaster is a PointerSource the hosting view owns and publishes
// pointer-down events into. Subscriptions are independent; cancelling one
// does not affect the others.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Point)
}

// NewBroadcaster creates an empty pointer-event broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]func(Point))}
}

// Subscribe registers a listener and returns its cancel function.
func (b *Broadcaster) Subscribe(fn func(Point)) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers a pointer-down event to every current subscriber.
func (b *Broadcaster) Publish(pt Point) {
	b.mu.Lock()
	listeners := make([]func(Point), 0, len(b.subs))
	for _, fn := range b.subs {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(pt)
	}
}

// Len returns the number of active subscriptions.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
