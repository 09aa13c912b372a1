// Package event carries the arcade's internal notifications: wallet
// connects, balance updates, bet resolutions and shop settlements. The
// presentation layer (websocket hub, audit trail, metrics) subscribes here
// instead of being called by the domain services directly.
package event

import "sync"

type Handler func(payload interface{})

// Bus is a string-keyed publish/subscribe fan-out. Handlers run on their own
// goroutines, so a slow subscriber cannot stall a bet resolution.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], h)
}

// Publish dispatches payload to every handler registered for name. The
// handler list is snapshotted under the read lock so a Subscribe racing the
// dispatch cannot mutate the slice mid-iteration.
func (b *Bus) Publish(name string, payload interface{}) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[name]))
	copy(hs, b.handlers[name])
	b.mu.RUnlock()

	for _, h := range hs {
		go h(payload)
	}
}
