// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the collaborators the screen view-models consume:
// the browse repository, the auth interactor and the background token
// refresh job. Each collaborator call returns a single value or an error;
// pagination cursors are extracted from the transport Link header and
// attached to the returned stream's Next field.
package service

import (
	"context"
	"time"

	"github.com/jasvilladarez/ello-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BrowseRepository reads the public browse streams. An empty nextPageID
// requests the first page; an empty Next in the result means there are no
// further pages.
type BrowseRepository interface {
	FetchEditorials(ctx context.Context, nextPageID string) (models.EditorialStream, error)
	FetchArtistInvites(ctx context.Context, nextPageID string) (models.ArtistInviteStream, error)
	FetchCategories(ctx context.Context) ([]models.Category, error)
	FetchPostsByCategory(ctx context.Context, slug, nextPageID string) (models.PostStream, error)
}

// AuthInteractor provides an access token valid at currentTime, reusing the
// stored one while it has not expired.
type AuthInteractor interface {
	FetchAccessToken(ctx context.Context, currentTime time.Time) (models.Token, error)
}

// TokenRefreshJob keeps the installed token fresh in the background.
type TokenRefreshJob interface {
	// Start launches the job. A running job is restarted.
	Start(ctx context.Context)
	// Stop cancels the job and waits for it to exit. Safe to call when the
	// job is not running.
	Stop()
}
