package client

import (
	"context"
	"fmt"

	"github.com/jasvilladarez/ello-go/internal/config"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/mvi"
	"github.com/jasvilladarez/ello-go/internal/service"
	"github.com/jasvilladarez/ello-go/internal/tui"
	"github.com/jasvilladarez/ello-go/internal/viewmodel"
	"github.com/jasvilladarez/ello-go/internal/workers"
)

// runner is the part of the TUI the app drives.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	vms     tui.ViewModels
	ui      runner
	workers *workers.Workers

	logger *logger.Logger
}

// NewApp creates one state machine per screen over services and the TUI
// bound to them. Each machine dispatches at most cfg.MaxConcurrency intents
// in parallel.
func NewApp(services *service.ClientServices, cfg config.ClientApp, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are not created")
	}

	opts := []mvi.Option{
		mvi.WithMaxConcurrency(cfg.MaxConcurrency),
		mvi.WithLogger(log.WithStr("component", "mvi")),
	}

	vms := tui.ViewModels{
		Main:          viewmodel.NewMainViewModel(services.Auth, opts...),
		Editorial:     viewmodel.NewEditorialViewModel(services.Browse, opts...),
		ArtistInvites: viewmodel.NewArtistInvitesViewModel(services.Browse, opts...),
		Discover:      viewmodel.NewDiscoverViewModel(services.Browse, opts...),
	}

	return &App{
		vms:     vms,
		ui:      tui.New(vms, log.WithStr("component", "tui")),
		workers: workers.New(services.RefreshJob),
		logger:  log,
	}, nil
}

// Run starts the background workers and blocks in the TUI. Everything is
// torn down when the UI exits.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer a.Close()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

// Close stops the workers and clears every state machine, cancelling work
// still in flight.
func (a *App) Close() {
	a.workers.Stop()

	a.vms.Main.Clear()
	a.vms.Editorial.Clear()
	a.vms.ArtistInvites.Clear()
	a.vms.Discover.Clear()
}
