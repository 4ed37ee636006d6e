// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mvi

import (
	"context"
	"iter"
)

// Dispatch maps one intent to the stream of results produced while handling
// it. The stream is consumed on a pool worker; ctx is cancelled when the
// machine is cleared.
type Dispatch[I, R any] func(ctx context.Context, intent I) iter.Seq[R]

// Reducer folds a result into the previous view state. It must be pure and
// total: every result variant, including ones produced by other workflows,
// yields a state.
type Reducer[S, R any] func(prev S, result R) S

// View is the presentation side of a screen.
type View[I, S any] interface {
	// Intents returns the channel the view publishes user actions on.
	Intents() <-chan I
	// Render draws state. Re-delivering the same state must be harmless.
	Render(state S)
}

// ViewModel is the public surface a view binds to.
type ViewModel[I, S any] interface {
	ProcessIntents(intents <-chan I)
	State() *LiveState[S]
	Clear()
}

// Bind subscribes view to the state of vm and feeds the view's intents into
// vm. The returned func detaches the view from the state.
func Bind[I, S any](view View[I, S], vm ViewModel[I, S]) (unbind func()) {
	remove := vm.State().Observe(view.Render)
	vm.ProcessIntents(view.Intents())
	return remove
}
