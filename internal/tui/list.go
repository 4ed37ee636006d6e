package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jasvilladarez/ello-go/internal/viewmodel"
)

// itemFormat describes how a list tab shows its items.
type itemFormat[T any] struct {
	line   func(item T) string
	detail func(item T) string
	link   func(item T) string
}

// listTab renders a paginated list screen bound to a ListViewModel.
type listTab[T any] struct {
	title  string
	screen *screenView[viewmodel.ListIntent[T], viewmodel.ListViewState[T]]
	format itemFormat[T]

	state  viewmodel.ListViewState[T]
	idx    int
	detail *T

	// clicked is set while an ItemClick is awaiting its SelectedView, so a
	// redelivered SelectedView does not reopen a dismissed detail.
	clicked bool
}

func newListTab[T any](title string, format itemFormat[T]) listTab[T] {
	return listTab[T]{
		title:  title,
		screen: newScreenView[viewmodel.ListIntent[T], viewmodel.ListViewState[T]](),
		format: format,
		state:  viewmodel.DefaultView[T]{},
	}
}

func (m listTab[T]) init() tea.Cmd {
	return tea.Batch(m.screen.next(), m.screen.send(viewmodel.Load[T]{}))
}

func (m listTab[T]) items() []T {
	return m.state.Content().Items
}

func (m listTab[T]) loading() bool {
	switch m.state.(type) {
	case viewmodel.InitialLoadingView[T], viewmodel.MoreLoadingView[T]:
		return true
	default:
		return false
	}
}

// onState applies a rendered state and keeps listening for the next one.
func (m listTab[T]) onState(state viewmodel.ListViewState[T]) (listTab[T], tea.Cmd) {
	m.state = state
	if n := len(m.items()); m.idx >= n {
		m.idx = max(n-1, 0)
	}
	if s, ok := state.(viewmodel.SelectedView[T]); ok && m.clicked {
		item := s.Item
		m.detail = &item
		m.clicked = false
	}
	return m, m.screen.next()
}

func (m listTab[T]) errorMessage() (string, bool) {
	if s, ok := m.state.(viewmodel.ErrorView[T]); ok {
		return s.Message, true
	}
	return "", false
}

func (m listTab[T]) loadMore() tea.Cmd {
	list := m.state.Content()
	if !list.HasNext() || m.loading() {
		return nil
	}
	return m.screen.send(viewmodel.LoadMore[T]{NextPageID: list.Next})
}

func (m listTab[T]) update(msg tea.KeyMsg) (listTab[T], tea.Cmd) {
	items := m.items()

	if m.detail != nil {
		switch {
		case key.Matches(msg, keys.esc):
			m.detail = nil
		case key.Matches(msg, keys.copy):
			return m, cmdCopyLink(m.format.link(*m.detail))
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
			return m, nil
		}
		return m, m.loadMore()
	case key.Matches(msg, keys.enter):
		if m.idx < len(items) {
			m.clicked = true
			return m, m.screen.send(viewmodel.ItemClick[T]{Item: items[m.idx]})
		}
	case key.Matches(msg, keys.loadMore):
		return m, m.loadMore()
	case key.Matches(msg, keys.reload):
		m.idx = 0
		return m, m.screen.send(viewmodel.Load[T]{})
	case key.Matches(msg, keys.copy):
		if m.idx < len(items) {
			return m, cmdCopyLink(m.format.link(items[m.idx]))
		}
	}

	return m, nil
}

func (m listTab[T]) view(height int, spin string) string {
	if m.detail != nil {
		return renderPage(titleStyle.Render(m.title), m.format.detail(*m.detail), "c copy link  esc back")
	}

	items := m.items()
	header := titleStyle.Render(m.title)
	if m.loading() {
		header += "  " + spin
	}

	var b strings.Builder
	switch {
	case len(items) == 0 && m.loading():
		b.WriteString("Loading...\n")
	case len(items) == 0:
		b.WriteString("Nothing here yet\n")
	default:
		from, to := visibleWindow(len(items), m.idx, height)
		for i := from; i < to; i++ {
			fmt.Fprintf(&b, "%s%s\n", cursorPrefix(i == m.idx), m.format.line(items[i]))
		}
		if m.state.Content().HasNext() {
			b.WriteString(helpStyle.Render("  more available (m)") + "\n")
		}
	}

	return renderPage(header, b.String(), "↑/↓ move  enter open  m more  r reload  c copy link")
}
