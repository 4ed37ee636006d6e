// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig] invariants shared by every
// binary. Role specific rules live on [ClientConfig] and [ServerConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.API.BaseURL != "" {
		if err := validateBaseURL(cfg.API.BaseURL); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAPIConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateBaseURL(cfg.API.BaseURL); err != nil || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Auth.ClientID == "" || cfg.Auth.ClientSecret == "" {
		return ErrInvalidAuthConfigs
	}

	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.MaxConcurrency <= 0 || cfg.App.CategoryCacheSize <= 0 || cfg.App.CategoryCacheTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.PageSize <= 0 || cfg.CatalogSize <= 0 || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base url %q must include scheme and host", raw)
	}
	return nil
}
