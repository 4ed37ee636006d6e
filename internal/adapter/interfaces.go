// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the Ello API.
//
// The primary abstraction is [EllAPI], which decouples the repository layer
// from HTTP. The package ships a resty-based implementation
// ([NewHTTPEllAdapter]) configured through an explicit [config.ClientAPI]
// value instead of global factories.
//
// Paginated endpoints return the parsed RFC 8288 Link header alongside the
// decoded body so that callers can extract the next page cursor with
// [Links.Param].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"net/url"

	"github.com/jasvilladarez/ello-go/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ell_api_mock.go -package=mock

// EllAPI defines communication with the Ello API.
type EllAPI interface {
	// SetToken installs the access token attached to every authenticated
	// request.
	SetToken(token models.Token)

	// Token returns the installed access token, or the zero value.
	Token() models.Token

	// FetchPublicToken requests a public token with the client credentials
	// grant. It does not install the token.
	FetchPublicToken(ctx context.Context) (models.Token, error)

	// FetchEditorials returns one page of editorials. An empty before
	// requests the first page.
	FetchEditorials(ctx context.Context, before string) (models.EditorialStream, Links, error)

	// FetchArtistInvites returns one page of artist invites. An empty page
	// requests the first page.
	FetchArtistInvites(ctx context.Context, page string) (models.ArtistInviteStream, Links, error)

	// FetchCategories returns the category list, including the featured,
	// trending and recent meta categories when meta is true.
	FetchCategories(ctx context.Context, meta bool) ([]models.Category, error)

	// FetchPosts returns one page of a post stream endpoint such as
	// "categories/art/posts/recent". Empty query values are omitted.
	FetchPosts(ctx context.Context, endpoint string, query url.Values) (models.PostStream, Links, error)
}
