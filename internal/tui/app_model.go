package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jasvilladarez/ello-go/internal/viewmodel"
)

type tabID int

const (
	tabEditorial tabID = iota
	tabArtistInvites
	tabDiscover
	tabCount
)

var tabTitles = [tabCount]string{"Editorial", "Artist Invites", "Discover"}

const statusTimeout = 3 * time.Second

var errNothingToCopy = errors.New("nothing to copy")

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	now func() time.Time

	launch      *screenView[viewmodel.MainIntent, viewmodel.MainViewState]
	launchState viewmodel.MainViewState
	ready       bool

	active    tabID
	editorial listTab[viewmodel.EditorialItem]
	invites   listTab[viewmodel.ArtistInviteItem]
	discover  discoverTab

	spinner   spinner.Model
	status    string
	statusSeq int
	height    int
}

func newAppModel(now func() time.Time) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		now:         now,
		launch:      newScreenView[viewmodel.MainIntent, viewmodel.MainViewState](),
		launchState: viewmodel.MainView{},
		editorial:   newListTab(tabTitles[tabEditorial], editorialFormat()),
		invites:     newListTab(tabTitles[tabArtistInvites], artistInviteFormat(now)),
		discover:    newDiscoverTab(),
		spinner:     s,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.launch.next(), m.sendLaunch())
}

func (m appModel) sendLaunch() tea.Cmd {
	return m.launch.send(viewmodel.MainLoad{CurrentTime: m.now()})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stateMsg[viewmodel.MainViewState]:
		return m.onLaunchState(msg.state)
	case stateMsg[viewmodel.EditorialViewState]:
		m.editorial, cmd = m.editorial.onState(msg.state)
		status := m.statusFrom(m.editorial.errorMessage())
		return m, tea.Batch(cmd, status)
	case stateMsg[viewmodel.ArtistInvitesViewState]:
		m.invites, cmd = m.invites.onState(msg.state)
		status := m.statusFrom(m.invites.errorMessage())
		return m, tea.Batch(cmd, status)
	case stateMsg[viewmodel.DiscoverViewState]:
		m.discover, cmd = m.discover.onState(msg.state)
		status := m.statusFrom(m.discover.errorMessage())
		return m, tea.Batch(cmd, status)
	case copiedMsg:
		if msg.err != nil {
			cmd = m.setStatus("Copy failed: " + msg.err.Error())
		} else {
			cmd = m.setStatus("Link copied")
		}
		return m, cmd
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m appModel) onLaunchState(state viewmodel.MainViewState) (tea.Model, tea.Cmd) {
	m.launchState = state

	next := m.launch.next()
	if v, ok := state.(viewmodel.MainView); ok && v.IsSuccessful && !m.ready {
		m.ready = true
		return m, tea.Batch(next, m.editorial.init(), m.invites.init(), m.discover.init())
	}
	return m, next
}

func (m appModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if !m.ready {
		if _, failed := m.launchState.(viewmodel.MainErrorView); failed && key.Matches(msg, keys.reload) {
			return m, m.sendLaunch()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		m.active = (m.active + 1) % tabCount
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.active = (m.active + tabCount - 1) % tabCount
		return m, nil
	}

	var cmd tea.Cmd
	switch m.active {
	case tabEditorial:
		m.editorial, cmd = m.editorial.update(msg)
	case tabArtistInvites:
		m.invites, cmd = m.invites.update(msg)
	case tabDiscover:
		m.discover, cmd = m.discover.update(msg)
	}
	return m, cmd
}

func (m *appModel) statusFrom(message string, failed bool) tea.Cmd {
	if !failed {
		return nil
	}
	return m.setStatus(humanizeServerUnavailableError(message))
}

func (m *appModel) setStatus(status string) tea.Cmd {
	m.status = status
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m appModel) View() string {
	if !m.ready {
		return appStyle.Render(m.launchView())
	}

	bodyHeight := 0
	if m.height > 0 {
		bodyHeight = max(m.height-12, 3)
	}

	var body string
	switch m.active {
	case tabEditorial:
		body = m.editorial.view(bodyHeight, m.spinner.View())
	case tabArtistInvites:
		body = m.invites.view(bodyHeight, m.spinner.View())
	case tabDiscover:
		body = m.discover.view(bodyHeight, m.spinner.View())
	}

	out := m.tabsView() + "\n\n" + body
	if m.status != "" {
		out += "\n\n" + errorStyle.Render(m.status)
	}
	return appStyle.Render(out)
}

func (m appModel) tabsView() string {
	titles := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if tabID(i) == m.active {
			titles = append(titles, activeTabStyle.Render(title))
		} else {
			titles = append(titles, inactiveTabStyle.Render(title))
		}
	}
	return strings.Join(titles, "   ")
}

func (m appModel) launchView() string {
	switch s := m.launchState.(type) {
	case viewmodel.MainErrorView:
		return errorOverlayModel{message: humanizeServerUnavailableError(s.Message)}.View()
	default:
		return titleStyle.Render("Ello") + "\n\n" + m.spinner.View() + " Connecting..."
	}
}

func cmdCopyLink(link string) tea.Cmd {
	return func() tea.Msg {
		if link == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		return copiedMsg{link: link, err: writeClipboard(link)}
	}
}
