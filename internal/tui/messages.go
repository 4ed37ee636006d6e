package tui

// stateMsg carries a view state rendered by a bound state machine.
type stateMsg[S any] struct {
	state S
}

type copiedMsg struct {
	link string
	err  error
}

type clearStatusMsg struct {
	seq int
}
