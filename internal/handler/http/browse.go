package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/utils"
	"github.com/jasvilladarez/ello-go/internal/validators"
	"github.com/jasvilladarez/ello-go/models"
)

// Cursor query parameters.
const (
	paramBefore     = "before"
	paramPage       = "page"
	paramMeta       = "meta"
	paramImagesOnly = "images_only"
)

func (h *Handler) getEditorials(w http.ResponseWriter, r *http.Request) {
	stream, err := h.services.Catalog.Editorials(r.Context(), r.URL.Query().Get(paramBefore))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	setNextLink(w, r, paramBefore, stream.Next)
	writeBody(w, r, stream)
}

func (h *Handler) getArtistInvites(w http.ResponseWriter, r *http.Request) {
	stream, err := h.services.Catalog.ArtistInvites(r.Context(), r.URL.Query().Get(paramPage))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	setNextLink(w, r, paramPage, stream.Next)
	writeBody(w, r, stream)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	meta, _ := strconv.ParseBool(r.URL.Query().Get(paramMeta))

	categories, err := h.services.Catalog.Categories(r.Context(), meta)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeBody(w, r, models.CategoryStream{Categories: categories})
}

func (h *Handler) getFeaturedPosts(w http.ResponseWriter, r *http.Request) {
	stream, err := h.services.Catalog.FeaturedPosts(r.Context(), r.URL.Query().Get(paramBefore))
	h.writePostStream(w, r, paramBefore, stream, err)
}

func (h *Handler) getCategoryPosts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := h.validator.Validate(r.Context(), validators.Slug(slug)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	stream, err := h.services.Catalog.CategoryPosts(r.Context(), slug, r.URL.Query().Get(paramBefore))
	h.writePostStream(w, r, paramBefore, stream, err)
}

func (h *Handler) getRecentPosts(w http.ResponseWriter, r *http.Request) {
	stream, err := h.services.Catalog.RecentPosts(r.Context(), r.URL.Query().Get(paramBefore))
	h.writePostStream(w, r, paramBefore, stream, err)
}

func (h *Handler) getTrendingPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	imagesOnly, _ := strconv.ParseBool(q.Get(paramImagesOnly))

	stream, err := h.services.Catalog.TrendingPosts(r.Context(), q.Get(paramPage), imagesOnly)
	h.writePostStream(w, r, paramPage, stream, err)
}

func (h *Handler) writePostStream(w http.ResponseWriter, r *http.Request, cursorParam string, stream models.PostStream, err error) {
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	setNextLink(w, r, cursorParam, stream.Next)
	writeBody(w, r, stream)
}

// setNextLink advertises the following page as an RFC 8288 Link header. The
// link repeats the request URL with cursorParam replaced by next. Nothing is
// written on the last page.
func setNextLink(w http.ResponseWriter, r *http.Request, cursorParam, next string) {
	if next == "" {
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	q := r.URL.Query()
	q.Set(cursorParam, next)

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	w.Header().Add("Link", "<"+u.String()+`>; rel="next"`)
}

func writeBody(w http.ResponseWriter, r *http.Request, body any) {
	if _, err := utils.WriteJSON(w, body, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
