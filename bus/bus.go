// Package bus is a small synchronous pub/sub hub used to decouple menu
// commands from the surfaces that react to them. Publishing calls handlers
// inline on the publisher's goroutine, in subscription order.
package bus

import "sync"

// Handler receives the payload published with an event.
type Handler func(payload any)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	event string
	id    int
}

type handlerEntry struct {
	id   int
	fn   Handler
	once bool
}

// Bus routes named events to subscribed handlers. The zero value is not
// usable; call New.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]handlerEntry
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[string][]handlerEntry)}
}

// Subscribe registers fn for event. Handlers for the same event fire in
// subscription order.
func (b *Bus) Subscribe(event string, fn Handler) Subscription {
	return b.subscribe(event, fn, false)
}

// SubscribeOnce registers fn for a single delivery. The handler is removed
// before it is invoked, so re-subscribing from inside the handler works.
func (b *Bus) SubscribeOnce(event string, fn Handler) Subscription {
	return b.subscribe(event, fn, true)
}

func (b *Bus) subscribe(event string, fn Handler, once bool) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[event] = append(b.subs[event], handlerEntry{id: b.nextID, fn: fn, once: once})
	return Subscription{event: event, id: b.nextID}
}

// Unsubscribe removes a handler. Removing an already-removed subscription is
// a no-op.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.subs[sub.event]
	for i, e := range entries {
		if e.id == sub.id {
			b.subs[sub.event] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Publish delivers payload to every handler subscribed to event, in
// subscription order, on the calling goroutine. Once-handlers are removed
// before delivery. Publishing an event with no subscribers is a no-op.
func (b *Bus) Publish(event string, payload any) {
	b.mu.Lock()
	entries := b.subs[event]
	fns := make([]Handler, 0, len(entries))
	kept := entries[:0:0]
	for _, e := range entries {
		fns = append(fns, e.fn)
		if !e.once {
			kept = append(kept, e)
		}
	}
	b.subs[event] = kept
	b.mu.Unlock()

	for _, fn := range fns {
		fn(payload)
	}
}
