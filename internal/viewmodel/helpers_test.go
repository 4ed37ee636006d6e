package viewmodel

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jasvilladarez/ello-go/internal/mvi"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

// recorder collects every state delivered to an observer.
type recorder[S any] struct {
	mu     sync.Mutex
	states []S
}

func record[I, R, S any](t *testing.T, m *mvi.StateMachine[I, R, S]) *recorder[S] {
	t.Helper()

	rec := &recorder[S]{}
	remove := m.State().Observe(func(s S) {
		rec.mu.Lock()
		rec.states = append(rec.states, s)
		rec.mu.Unlock()
	})
	t.Cleanup(remove)
	return rec
}

func (r *recorder[S]) snapshot() []S {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.states)
}

func (r *recorder[S]) waitLen(t *testing.T, n int) []S {
	t.Helper()
	require.Eventually(t, func() bool { return len(r.snapshot()) >= n }, waitFor, tick)
	return r.snapshot()
}
