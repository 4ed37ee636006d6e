package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jasvilladarez/ello-go/internal/viewmodel"
)

type discoverFocus int

const (
	focusCategories discoverFocus = iota
	focusPosts
)

// discoverTab shows the category list and the posts of the picked category.
type discoverTab struct {
	screen *screenView[viewmodel.DiscoverIntent, viewmodel.DiscoverViewState]

	state       viewmodel.DiscoverViewState
	focus       discoverFocus
	categoryIdx int
	postIdx     int
}

func newDiscoverTab() discoverTab {
	return discoverTab{
		screen: newScreenView[viewmodel.DiscoverIntent, viewmodel.DiscoverViewState](),
		state: viewmodel.DefaultCategoryView{},
	}
}

func (m discoverTab) init() tea.Cmd {
	return tea.Batch(m.screen.next(), m.screen.send(viewmodel.LoadCategories{}))
}

func (m discoverTab) loading() bool {
	switch m.state.(type) {
	case viewmodel.LoadingCategoriesView, viewmodel.LoadingPostsView, viewmodel.LoadingMorePostsView:
		return true
	default:
		return false
	}
}

func (m discoverTab) onState(state viewmodel.DiscoverViewState) (discoverTab, tea.Cmd) {
	m.state = state
	data := state.Data()
	if n := len(data.Categories); m.categoryIdx >= n {
		m.categoryIdx = max(n-1, 0)
	}
	if n := data.Posts.Len(); m.postIdx >= n {
		m.postIdx = max(n-1, 0)
	}
	return m, m.screen.next()
}

func (m discoverTab) errorMessage() (string, bool) {
	if s, ok := m.state.(viewmodel.DiscoverErrorView); ok {
		return s.Message, true
	}
	return "", false
}

func (m discoverTab) loadMore() tea.Cmd {
	data := m.state.Data()
	if !data.HasSelection() || !data.Posts.HasNext() || m.loading() {
		return nil
	}
	return m.screen.send(viewmodel.LoadMorePosts{Category: data.Selected, NextPageID: data.Posts.Next})
}

func (m discoverTab) update(msg tea.KeyMsg) (discoverTab, tea.Cmd) {
	if m.focus == focusPosts {
		return m.updatePosts(msg)
	}

	categories := m.state.Data().Categories
	switch {
	case key.Matches(msg, keys.up):
		if m.categoryIdx > 0 {
			m.categoryIdx--
		}
	case key.Matches(msg, keys.down):
		if m.categoryIdx < len(categories)-1 {
			m.categoryIdx++
		}
	case key.Matches(msg, keys.enter):
		if m.categoryIdx < len(categories) {
			m.focus = focusPosts
			m.postIdx = 0
			return m, m.screen.send(viewmodel.LoadPosts{Category: categories[m.categoryIdx]})
		}
	case key.Matches(msg, keys.reload):
		return m, m.screen.send(viewmodel.LoadCategories{})
	}

	return m, nil
}

func (m discoverTab) updatePosts(msg tea.KeyMsg) (discoverTab, tea.Cmd) {
	data := m.state.Data()
	posts := data.Posts.Items

	switch {
	case key.Matches(msg, keys.esc):
		m.focus = focusCategories
	case key.Matches(msg, keys.up):
		if m.postIdx > 0 {
			m.postIdx--
		}
	case key.Matches(msg, keys.down):
		if m.postIdx < len(posts)-1 {
			m.postIdx++
			return m, nil
		}
		return m, m.loadMore()
	case key.Matches(msg, keys.loadMore):
		return m, m.loadMore()
	case key.Matches(msg, keys.reload):
		if data.HasSelection() {
			m.postIdx = 0
			return m, m.screen.send(viewmodel.LoadPosts{Category: data.Selected})
		}
	case key.Matches(msg, keys.copy):
		if m.postIdx < len(posts) {
			return m, cmdCopyLink(posts[m.postIdx].Link)
		}
	}

	return m, nil
}

func (m discoverTab) view(height int, spin string) string {
	data := m.state.Data()
	header := titleStyle.Render("Discover")
	if data.HasSelection() && m.focus == focusPosts {
		header += " / " + data.Selected.Name
	}
	if m.loading() {
		header += "  " + spin
	}

	if m.focus == focusPosts {
		return renderPage(header, m.postsBody(height), "↑/↓ move  m more  r reload  c copy link  esc categories")
	}
	return renderPage(header, m.categoriesBody(height), "↑/↓ move  enter open  r reload")
}

func (m discoverTab) categoriesBody(height int) string {
	categories := m.state.Data().Categories
	if len(categories) == 0 {
		if m.loading() {
			return "Loading...\n"
		}
		return "No categories\n"
	}

	var b strings.Builder
	from, to := visibleWindow(len(categories), m.categoryIdx, height)
	for i := from; i < to; i++ {
		fmt.Fprintf(&b, "%s%s\n", cursorPrefix(i == m.categoryIdx), categories[i].Name)
	}
	return b.String()
}

func (m discoverTab) postsBody(height int) string {
	posts := m.state.Data().Posts
	if posts.Len() == 0 {
		if m.loading() {
			return "Loading...\n"
		}
		return "No posts\n"
	}

	var b strings.Builder
	from, to := visibleWindow(posts.Len(), m.postIdx, height)
	for i := from; i < to; i++ {
		fmt.Fprintf(&b, "%s%s\n", cursorPrefix(i == m.postIdx), postLine(posts.Items[i]))
	}
	if posts.HasNext() {
		b.WriteString(helpStyle.Render("  more available (m)") + "\n")
	}
	return b.String()
}
