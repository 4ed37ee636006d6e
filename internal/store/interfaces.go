// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client's public access token so that a restart
// can reuse it until it expires. The backing database is SQLite by default or
// PostgreSQL when the DSN is a postgres URL.
package store

import (
	"context"

	"github.com/jasvilladarez/ello-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenRepository is the auth preference: at most one token is stored.
type TokenRepository interface {
	// GetToken returns the stored token or [ErrTokenNotFound].
	GetToken(ctx context.Context) (models.Token, error)
	// SaveToken replaces the stored token.
	SaveToken(ctx context.Context, token models.Token) error
	// DeleteToken removes the stored token. Deleting an absent token is not
	// an error.
	DeleteToken(ctx context.Context) error
}
