package config

import (
	"fmt"
	"time"
)

// ClientAPI holds the settings used by the client transport layer.
type ClientAPI struct {
	// BaseURL is the API root, e.g. "https://ello.co/api/".
	BaseURL string
	// Prefix is the versioned path of browse endpoints, e.g. "v2/".
	Prefix string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Debug enables body logging.
	Debug bool
	// UserAgent is sent with every request.
	UserAgent string
}

// ClientAuth holds the OAuth client credentials.
type ClientAuth struct {
	ClientID     string
	ClientSecret string
}

// ClientStorage contains token store settings.
type ClientStorage struct {
	// DSN is the SQLite path or PostgreSQL URL of the token store.
	DSN string
}

// ClientApp contains screen runtime settings.
type ClientApp struct {
	CategoryCacheTTL  time.Duration
	CategoryCacheSize int
	MaxConcurrency    int
	LogFile           string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the token refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	API     ClientAPI
	Auth    ClientAuth
	Storage ClientStorage
	App     ClientApp
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			Prefix:         cfg.API.Prefix,
			RequestTimeout: cfg.API.RequestTimeout,
			Debug:          cfg.API.Debug,
			UserAgent:      cfg.API.UserAgent,
		},
		Auth: ClientAuth{
			ClientID:     cfg.Auth.ClientID,
			ClientSecret: cfg.Auth.ClientSecret,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
		App: ClientApp{
			CategoryCacheTTL:  cfg.App.CategoryCacheTTL,
			CategoryCacheSize: cfg.App.CategoryCacheSize,
			MaxConcurrency:    cfg.App.MaxConcurrency,
			LogFile:           cfg.App.LogFile,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Auth.RefreshInterval},
	}
}
