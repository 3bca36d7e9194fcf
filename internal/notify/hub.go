package notify

import "sync"

// Hub fans booking-snapshot payloads out to subscribed dashboard
// clients. Payloads are full snapshots, not diffs: subscribers
// recompute their view from scratch on every tick, which keeps the
// protocol trivial at the center's scale.
type Hub struct {
	mu   sync.Mutex
	subs map[chan []byte]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan []byte]struct{})}
}

// Subscribe registers a listener and returns its channel together with
// an unsubscribe handle. The channel is buffered; a subscriber that
// falls behind skips snapshots rather than blocking publishers.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 4)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, unsubscribe
}

// Publish delivers a snapshot to every subscriber. Slow subscribers
// are skipped, never blocked on.
func (h *Hub) Publish(snapshot []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
