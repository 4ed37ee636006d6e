package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	API struct {
		BaseURL        string   `json:"base_url"`
		Prefix         string   `json:"prefix"`
		RequestTimeout Duration `json:"request_timeout"`
		Debug          bool     `json:"debug"`
		UserAgent      string   `json:"user_agent"`
	} `json:"api,omitempty"`

	Auth struct {
		ClientID        string   `json:"client_id"`
		ClientSecret    string   `json:"client_secret"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	App struct {
		CategoryCacheTTL  Duration `json:"category_cache_ttl"`
		CategoryCacheSize int      `json:"category_cache_size"`
		MaxConcurrency    int      `json:"max_concurrency"`
		LogFile           string   `json:"log_file"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PageSize       int      `json:"page_size"`
		CatalogSize    int      `json:"catalog_size"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			Prefix:         jsonCfg.API.Prefix,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
			Debug:          jsonCfg.API.Debug,
			UserAgent:      jsonCfg.API.UserAgent,
		},
		Auth: Auth{
			ClientID:        jsonCfg.Auth.ClientID,
			ClientSecret:    jsonCfg.Auth.ClientSecret,
			RefreshInterval: time.Duration(jsonCfg.Auth.RefreshInterval),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		App: App{
			CategoryCacheTTL:  time.Duration(jsonCfg.App.CategoryCacheTTL),
			CategoryCacheSize: jsonCfg.App.CategoryCacheSize,
			MaxConcurrency:    jsonCfg.App.MaxConcurrency,
			LogFile:           jsonCfg.App.LogFile,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			PageSize:       jsonCfg.Server.PageSize,
			CatalogSize:    jsonCfg.Server.CatalogSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
