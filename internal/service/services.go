package service

import (
	"fmt"

	"github.com/jasvilladarez/ello-go/internal/config"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/models"
)

// Services groups the development API server services.
type Services struct {
	Catalog        Catalog
	TokenIssuer    TokenIssuer
	AppInfoService AppInfoService
}

func NewServices(cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		Catalog:        NewCatalog(cfg.CatalogSize, cfg.PageSize, logger.WithStr("service", "catalog")),
		TokenIssuer:    NewTokenIssuer(cfg.Auth, logger.WithStr("service", "tokens")),
		AppInfoService: appInfo,
	}, nil
}
