package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// API paths. The token endpoint lives outside the versioned prefix.
const (
	oauthTokenPath = "/api/oauth/token"
	versionPath    = "/api/version"
	apiV2Prefix    = "/api/v2"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post(oauthTokenPath, h.issueToken)
		r.Get(versionPath, h.getServerVersion)
	})

	router.Route(apiV2Prefix, func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/editorials", h.getEditorials)
		r.Get("/artist_invites", h.getArtistInvites)
		r.Get("/categories", h.getCategories)
		r.Get("/categories/posts/recent", h.getFeaturedPosts)
		r.Get("/categories/{slug}/posts/recent", h.getCategoryPosts)
		r.Get("/discover/posts/recent", h.getRecentPosts)
		r.Get("/discover/posts/trending", h.getTrendingPosts)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
