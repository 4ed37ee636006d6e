package mvi

import (
	"sync"
	"sync/atomic"
)

// LiveState holds the current view state and notifies observers of changes.
//
// A new observer immediately receives the current value and then every
// subsequent update, in order. Notifications are serialized: all observers
// see the same sequence of values. After Close no further values are
// delivered and every observer is detached.
//
// Observers run on the goroutine that publishes the value. They must not call
// Observe themselves; calling the returned remove func or Close is allowed.
type LiveState[S any] struct {
	// delivery serializes notifications and initial replays.
	delivery sync.Mutex

	mu        sync.Mutex
	value     S
	observers []*observer[S]
	closed    bool
}

type observer[S any] struct {
	fn      func(S)
	removed atomic.Bool
}

// NewLiveState returns a LiveState holding initial.
func NewLiveState[S any](initial S) *LiveState[S] {
	return &LiveState[S]{value: initial}
}

// Value returns the current state.
func (l *LiveState[S]) Value() S {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.value
}

// Observe registers fn and replays the current value to it. The returned
// func detaches fn; it is safe to call more than once.
func (l *LiveState[S]) Observe(fn func(S)) (remove func()) {
	l.delivery.Lock()
	defer l.delivery.Unlock()

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return func() {}
	}
	obs := &observer[S]{fn: fn}
	l.observers = append(l.observers, obs)
	current := l.value
	l.mu.Unlock()

	fn(current)

	return func() { l.remove(obs) }
}

// Closed reports whether Close has been called.
func (l *LiveState[S]) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.closed
}

// Close stops delivery and detaches all observers. It is idempotent.
func (l *LiveState[S]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	for _, obs := range l.observers {
		obs.removed.Store(true)
	}
	l.observers = nil
}

// set publishes v to every observer. It is a no-op once closed.
func (l *LiveState[S]) set(v S) {
	l.delivery.Lock()
	defer l.delivery.Unlock()

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.value = v
	observers := make([]*observer[S], len(l.observers))
	copy(observers, l.observers)
	l.mu.Unlock()

	for _, obs := range observers {
		if obs.removed.Load() {
			continue
		}
		obs.fn(v)
	}
}

func (l *LiveState[S]) remove(target *observer[S]) {
	target.removed.Store(true)

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, obs := range l.observers {
		if obs == target {
			l.observers = append(l.observers[:i:i], l.observers[i+1:]...)
			return
		}
	}
}
