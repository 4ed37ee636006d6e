// Package server runs the development API server.
//
// It owns the HTTP listener lifecycle: startup, serving until the supplied
// context is cancelled and graceful shutdown of in-flight requests.
package server
