// Package http implements the development API server. It serves a generated
// catalog through the same endpoints, payloads and Link pagination headers
// as the public Ello API, so the client can run without network access.
//
// Cross-cutting concerns (panic recovery, request tracing, access logging
// and bearer token checks) are handled here before requests reach the
// service layer.
package http
