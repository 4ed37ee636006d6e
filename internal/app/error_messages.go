// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// development server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgResourceNotFound is returned for paths or methods the API does not
	// serve.
	MsgResourceNotFound = "the requested resource could not be found"

	// MsgTokenIsExpiredOrInvalid is logged when a bearer token is unknown to
	// the issuer or has expired.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgInvalidTokenRequest is logged when the token request body cannot be
	// decoded or misses required fields.
	MsgInvalidTokenRequest = "invalid token request"
)
