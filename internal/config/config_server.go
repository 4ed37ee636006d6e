package config

import (
	"fmt"
	"time"
)

// ServerConfig is the development API server view of [StructuredConfig].
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	PageSize       int
	CatalogSize    int

	// Auth holds the only client credentials the token endpoint accepts.
	// Empty credentials accept any client.
	Auth ClientAuth
}

// GetServerConfig builds and validates the development server config.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields of cfg relevant to the development server.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		PageSize:       cfg.Server.PageSize,
		CatalogSize:    cfg.Server.CatalogSize,
		Auth: ClientAuth{
			ClientID:     cfg.Auth.ClientID,
			ClientSecret: cfg.Auth.ClientSecret,
		},
	}
}
