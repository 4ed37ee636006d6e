package config

import "time"

// Built-in defaults. They mirror the public Ello API.
const (
	DefaultAPIBaseURL        = "https://ello.co/api/"
	DefaultAPIPrefix         = "v2/"
	DefaultRequestTimeout    = 120 * time.Second
	DefaultUserAgent         = "ello-go"
	DefaultRefreshInterval   = 5 * time.Minute
	DefaultDSN               = "ello.db"
	DefaultCategoryCacheTTL  = 10 * time.Minute
	DefaultCategoryCacheSize = 8
	DefaultMaxConcurrency    = 16
	DefaultServerAddress     = "localhost:8080"
	DefaultServerTimeout     = 30 * time.Second
	DefaultServerPageSize    = 10
	DefaultServerCatalogSize = 100
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			BaseURL:        DefaultAPIBaseURL,
			Prefix:         DefaultAPIPrefix,
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Auth: Auth{
			RefreshInterval: DefaultRefreshInterval,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		App: App{
			CategoryCacheTTL:  DefaultCategoryCacheTTL,
			CategoryCacheSize: DefaultCategoryCacheSize,
			MaxConcurrency:    DefaultMaxConcurrency,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerTimeout,
			PageSize:       DefaultServerPageSize,
			CatalogSize:    DefaultServerCatalogSize,
		},
	}
}
