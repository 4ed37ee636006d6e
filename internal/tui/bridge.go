package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

const intentBufferSize = 16

// mailbox keeps the latest state published by a state machine. Rendering
// never blocks the machine: states that arrive faster than the terminal can
// draw are coalesced.
type mailbox[S any] struct {
	mu      sync.Mutex
	latest  S
	pending bool
	notify  chan struct{}
}

func newMailbox[S any]() *mailbox[S] {
	return &mailbox[S]{notify: make(chan struct{}, 1)}
}

func (b *mailbox[S]) put(s S) {
	b.mu.Lock()
	b.latest = s
	b.pending = true
	b.mu.Unlock()

	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// take waits for a state that was not taken yet. It returns false once done
// is closed.
func (b *mailbox[S]) take(done <-chan struct{}) (S, bool) {
	for {
		b.mu.Lock()
		if b.pending {
			s := b.latest
			b.pending = false
			b.mu.Unlock()
			return s, true
		}
		b.mu.Unlock()

		select {
		case <-done:
			var zero S
			return zero, false
		case <-b.notify:
		}
	}
}

// screenView adapts one bubbletea screen to an mvi.View. Intents written by
// the screen go to the bound machine and rendered states come back to the
// program as stateMsg values.
type screenView[I, S any] struct {
	intents chan I
	states  *mailbox[S]
	done    chan struct{}
	once    sync.Once
}

func newScreenView[I, S any]() *screenView[I, S] {
	return &screenView[I, S]{
		intents: make(chan I, intentBufferSize),
		states:  newMailbox[S](),
		done:    make(chan struct{}),
	}
}

func (v *screenView[I, S]) Intents() <-chan I { return v.intents }

func (v *screenView[I, S]) Render(state S) { v.states.put(state) }

// send returns a command that publishes intent. It gives up once the view is
// closed.
func (v *screenView[I, S]) send(intent I) tea.Cmd {
	return func() tea.Msg {
		select {
		case v.intents <- intent:
		case <-v.done:
		}
		return nil
	}
}

// next returns a command that waits for the next rendered state.
func (v *screenView[I, S]) next() tea.Cmd {
	return func() tea.Msg {
		state, ok := v.states.take(v.done)
		if !ok {
			return nil
		}
		return stateMsg[S]{state: state}
	}
}

func (v *screenView[I, S]) close() {
	v.once.Do(func() { close(v.done) })
}
