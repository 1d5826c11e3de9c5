// Package events provides a minimal subscriber-list event emitter with
// explicit unsubscribe handles.
package events

import "sync"

// Emitter fans a value out to all registered subscribers. The zero value is
// ready to use. Late subscribers never see previously emitted values.
type Emitter[T any] struct {
	mu   sync.Mutex
	next int
	subs map[int]func(T)
}

// Subscribe registers fn to be invoked on every subsequent Emit.
// The returned function removes the subscription; calling it more than once
// is harmless.
func (e *Emitter[T]) Subscribe(fn func(T)) (cancel func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.subs == nil {
		e.subs = make(map[int]func(T))
	}
	id := e.next
	e.next++
	e.subs[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

// Emit invokes every current subscriber with v. Subscribers are called
// outside the emitter lock so they may subscribe or unsubscribe freely.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	fns := make([]func(T), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Len returns the number of active subscriptions.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}
