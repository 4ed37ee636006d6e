// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the bearer token check. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header cannot be
	// split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedScheme is joined to ErrInvalidAuthorizationHeader when
	// the scheme is not Bearer.
	ErrUnsupportedScheme = errors.New("only the Bearer scheme is supported")

	// ErrEmptyToken is returned when the scheme is present but the token is
	// empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidTokenRequest is returned when the token request body cannot
	// be decoded.
	ErrInvalidTokenRequest = errors.New("invalid token request")
)
