package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// sources win while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{BaseURL: "http://first/", RequestTimeout: time.Second}},
		&StructuredConfig{API: API{BaseURL: "http://second/"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "http://second/", cfg.API.BaseURL)
	assert.Equal(t, time.Second, cfg.API.RequestTimeout)
}

func TestBuild_InvalidBaseURL(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{API: API{BaseURL: "no-scheme"}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidAPIConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPIPrefix, cfg.API.Prefix)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestWithEnv_OverridesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{"API_PREFIX": "v3/"})

	cfg, err := newConfigBuilder().withDefaults().withEnv().build()

	require.NoError(t, err)
	assert.Equal(t, "v3/", cfg.API.Prefix)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-max-concurrency", "x"})

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_OverridesFlags(t *testing.T) {
	// Arrange
	setEnvVars(t, nil)
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{"client_id": "from-json"},
	})

	// Act
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-client-id", "from-flag", "-client-secret", "s", "-c", path}).
		withJSON().
		build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.Auth.ClientID)
	assert.Equal(t, "s", cfg.Auth.ClientSecret)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestGetClientConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AUTH_CLIENT_ID":     "id",
		"AUTH_CLIENT_SECRET": "secret",
	})

	cfg, err := GetClientConfig([]string{"-d", "tokens.db"})

	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, "id", cfg.Auth.ClientID)
	assert.Equal(t, "tokens.db", cfg.Storage.DSN)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.Equal(t, DefaultMaxConcurrency, cfg.App.MaxConcurrency)
}

func TestGetClientConfig_MissingCredentials(t *testing.T) {
	setEnvVars(t, nil)

	_, err := GetClientConfig(nil)

	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return NewClientConfig(&StructuredConfig{
			API:     API{BaseURL: "https://ello.co/api/", RequestTimeout: time.Second},
			Auth:    Auth{ClientID: "id", ClientSecret: "secret", RefreshInterval: time.Minute},
			Storage: Storage{DB: DB{DSN: "ello.db"}},
			App:     App{CategoryCacheTTL: time.Minute, CategoryCacheSize: 1, MaxConcurrency: 1},
		})
	}

	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "bad url", mutate: func(c *ClientConfig) { c.API.BaseURL = "::" }, want: ErrInvalidAPIConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.API.RequestTimeout = 0 }, want: ErrInvalidAPIConfigs},
		{name: "no secret", mutate: func(c *ClientConfig) { c.Auth.ClientSecret = "" }, want: ErrInvalidAuthConfigs},
		{name: "no dsn", mutate: func(c *ClientConfig) { c.Storage.DSN = " " }, want: ErrInvalidStorageConfigs},
		{name: "no concurrency", mutate: func(c *ClientConfig) { c.App.MaxConcurrency = 0 }, want: ErrInvalidAppConfigs},
		{name: "no refresh", mutate: func(c *ClientConfig) { c.Workers.RefreshInterval = 0 }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetServerConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_PAGE_SIZE": "3"})

	cfg, err := GetServerConfig([]string{"-a", "localhost:7070"})

	require.NoError(t, err)
	assert.Equal(t, "localhost:7070", cfg.HTTPAddress)
	assert.Equal(t, 3, cfg.PageSize)
	assert.Equal(t, DefaultServerCatalogSize, cfg.CatalogSize)
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := &ServerConfig{HTTPAddress: "localhost:8080", RequestTimeout: time.Second, PageSize: 0, CatalogSize: 1}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
