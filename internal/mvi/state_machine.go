package mvi

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/jasvilladarez/ello-go/internal/logger"
)

// DefaultMaxConcurrency bounds the number of intents dispatched at once.
const DefaultMaxConcurrency = 16

const resultBufferSize = 64

// StateMachine folds intents into view states.
//
// Each intent is mapped through the dispatch function on a worker pool and
// the produced results are reduced, in arrival order, starting from the
// initial state. The machine owns a context that is cancelled by Clear, so
// collaborator calls still in flight at teardown are cancelled and their
// results discarded.
type StateMachine[I, R, S any] struct {
	name     string
	log      *logger.Logger
	dispatch Dispatch[I, R]
	reduce   Reducer[S, R]

	state   *LiveState[S]
	pool    pond.Pool
	results chan R

	ctx    context.Context
	cancel context.CancelFunc

	clearOnce sync.Once
}

type options struct {
	maxConcurrency int
	log            *logger.Logger
	name           string
}

// Option configures a StateMachine.
type Option func(*options)

// WithMaxConcurrency sets how many intents may be dispatched in parallel.
// Non-positive values are ignored.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxConcurrency = n
		}
	}
}

// WithLogger sets the logger used to report defects.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithName sets the machine name attached to log entries.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// New creates a running StateMachine whose state holds initial.
func New[I, R, S any](initial S, dispatch Dispatch[I, R], reduce Reducer[S, R], opts ...Option) *StateMachine[I, R, S] {
	o := options{
		maxConcurrency: DefaultMaxConcurrency,
		log:            logger.Nop(),
		name:           "mvi",
	}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &StateMachine[I, R, S]{
		name:     o.name,
		log:      o.log.WithStr("machine", o.name),
		dispatch: dispatch,
		reduce:   reduce,
		state:    NewLiveState(initial),
		pool:     pond.NewPool(o.maxConcurrency, pond.WithContext(ctx)),
		results:  make(chan R, resultBufferSize),
		ctx:      ctx,
		cancel:   cancel,
	}

	go m.runReducer(initial)

	return m
}

// ProcessIntents feeds intents into the machine until the channel is closed
// or the machine is cleared. Calls are additive: every call adds a producer.
func (m *StateMachine[I, R, S]) ProcessIntents(intents <-chan I) {
	if intents == nil {
		return
	}

	go func() {
		for {
			select {
			case <-m.ctx.Done():
				return
			case intent, ok := <-intents:
				if !ok {
					return
				}
				m.submit(intent)
			}
		}
	}()
}

// Send feeds a single intent into the machine.
func (m *StateMachine[I, R, S]) Send(intent I) {
	ch := make(chan I, 1)
	ch <- intent
	close(ch)
	m.ProcessIntents(ch)
}

// State returns the observable view state.
func (m *StateMachine[I, R, S]) State() *LiveState[S] {
	return m.state
}

// Clear tears the machine down: the machine context is cancelled, the worker
// pool stops accepting intents, no further states are delivered and every
// observer is detached. Clear is idempotent and does not block on in-flight
// work.
func (m *StateMachine[I, R, S]) Clear() {
	m.clearOnce.Do(func() {
		m.cancel()
		m.state.Close()
		m.pool.Stop()
		m.log.Debug().Msg("state machine cleared")
	})
}

// Done returns a channel closed when the machine has been cleared.
func (m *StateMachine[I, R, S]) Done() <-chan struct{} {
	return m.ctx.Done()
}

func (m *StateMachine[I, R, S]) submit(intent I) {
	if err := m.pool.Go(func() { m.handle(intent) }); err != nil {
		m.log.Debug().Err(err).Str("intent", fmt.Sprintf("%T", intent)).Msg("intent dropped")
	}
}

func (m *StateMachine[I, R, S]) handle(intent I) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().
				Str("intent", fmt.Sprintf("%T", intent)).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("defect while dispatching intent")
		}
	}()

	for result := range m.dispatch(m.ctx, intent) {
		select {
		case <-m.ctx.Done():
			return
		case m.results <- result:
		}
	}
}

func (m *StateMachine[I, R, S]) runReducer(state S) {
	for {
		select {
		case <-m.ctx.Done():
			return
		case result := <-m.results:
			state = m.step(state, result)
			m.state.set(state)
		}
	}
}

func (m *StateMachine[I, R, S]) step(prev S, result R) (next S) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().
				Str("result", fmt.Sprintf("%T", result)).
				Interface("panic", r).
				Msg("defect while reducing result")
			next = prev
		}
	}()

	return m.reduce(prev, result)
}
