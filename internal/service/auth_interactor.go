package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jasvilladarez/ello-go/internal/adapter"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/store"
	"github.com/jasvilladarez/ello-go/models"
)

type authInteractor struct {
	api    adapter.EllAPI
	tokens store.TokenRepository
	logger *logger.Logger

	// serialises fetches so concurrent callers share one public token
	mu sync.Mutex
}

// NewAuthInteractor builds an [AuthInteractor] that caches the public token
// in tokens and installs it in api.
func NewAuthInteractor(api adapter.EllAPI, tokens store.TokenRepository, log *logger.Logger) AuthInteractor {
	return &authInteractor{
		api:    api,
		tokens: tokens,
		logger: log,
	}
}

// FetchAccessToken implements [AuthInteractor]. The stored token is reused
// while created_at + expires_in > currentTime. Otherwise a public token is
// requested, stored and installed. A failing token store is logged and does
// not prevent a fresh token from being used.
func (a *authInteractor) FetchAccessToken(ctx context.Context, currentTime time.Time) (models.Token, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stored, err := a.tokens.GetToken(ctx)
	switch {
	case err == nil && stored.ValidAt(currentTime):
		a.api.SetToken(stored)
		return stored, nil
	case err != nil && !errors.Is(err, store.ErrTokenNotFound):
		a.logger.Warn().Err(err).Msg("reading stored token failed, requesting a new one")
	}

	token, err := a.api.FetchPublicToken(ctx)
	if err != nil {
		return models.Token{}, err
	}
	if token.IsZero() {
		return models.Token{}, ErrEmptyAccessToken
	}

	if err = a.tokens.SaveToken(ctx, token); err != nil {
		a.logger.Warn().Err(err).Msg("storing access token failed")
	}
	a.api.SetToken(token)

	a.logger.Debug().Time("expires_at", token.ExpiresAt()).Msg("public token installed")
	return token, nil
}
