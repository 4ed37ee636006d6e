// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jasvilladarez/ello-go/internal/app"
	"github.com/jasvilladarez/ello-go/internal/utils"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A request
// whose path matches a static route but whose method is not registered gets
// a 404 error body like any other unknown resource. Parameterised patterns
// are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteError(w, http.StatusNotFound, app.MsgResourceNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
