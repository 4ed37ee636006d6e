package service

import (
	"github.com/jasvilladarez/ello-go/internal/adapter"
	"github.com/jasvilladarez/ello-go/internal/config"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/store"
)

// ClientServices groups the collaborators handed to the view-models.
type ClientServices struct {
	Browse     BrowseRepository
	Auth       AuthInteractor
	RefreshJob TokenRefreshJob
}

// NewClientServices wires the services over the transport and the token
// store.
func NewClientServices(storages *store.ClientStorages, api adapter.EllAPI, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	auth := NewAuthInteractor(api, storages.TokenRepository, log.WithStr("service", "auth"))

	return &ClientServices{
		Browse:     NewBrowseRepository(api, cfg.App.CategoryCacheSize, cfg.App.CategoryCacheTTL, log.WithStr("service", "browse")),
		Auth:       auth,
		RefreshJob: NewTokenRefreshJob(auth, cfg.Workers.RefreshInterval, log.WithStr("service", "refresh")),
	}
}
