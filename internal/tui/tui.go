// Package tui is the terminal front end of the client. Every screen is an
// mvi.View bound to its state machine; the bubbletea program only turns key
// presses into intents and draws the states it receives.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/mvi"
	"github.com/jasvilladarez/ello-go/internal/viewmodel"
)

// ViewModels groups the state machines the TUI binds to.
type ViewModels struct {
	Main          *viewmodel.MainViewModel
	Editorial     *viewmodel.EditorialViewModel
	ArtistInvites *viewmodel.ArtistInvitesViewModel
	Discover      *viewmodel.DiscoverViewModel
}

type TUI struct {
	vms    ViewModels
	logger *logger.Logger
	opts   []tea.ProgramOption
}

func New(vms ViewModels, log *logger.Logger) *TUI {
	return &TUI{vms: vms, logger: log, opts: []tea.ProgramOption{tea.WithAltScreen()}}
}

// Run binds the screens, runs the program until the user quits or ctx is
// cancelled, and unbinds them again. The state machines are left running.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(time.Now)

	unbind := []func(){
		mvi.Bind[viewmodel.MainIntent, viewmodel.MainViewState](model.launch, t.vms.Main),
		mvi.Bind[viewmodel.EditorialIntent, viewmodel.EditorialViewState](model.editorial.screen, t.vms.Editorial),
		mvi.Bind[viewmodel.ArtistInvitesIntent, viewmodel.ArtistInvitesViewState](model.invites.screen, t.vms.ArtistInvites),
		mvi.Bind[viewmodel.DiscoverIntent, viewmodel.DiscoverViewState](model.discover.screen, t.vms.Discover),
	}
	defer func() {
		for _, u := range unbind {
			u()
		}
		model.launch.close()
		model.editorial.screen.close()
		model.invites.screen.close()
		model.discover.screen.close()
	}()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}

	t.logger.Info().Msg("tui closed by user")
	return nil
}
