package service

import (
	"context"
	"net/url"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jasvilladarez/ello-go/internal/adapter"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/models"
)

// Cursor query parameters. Editorials and post streams page backwards in
// time; artist invites and the trending stream use page numbers.
const (
	paramBefore     = "before"
	paramPage       = "page"
	paramImagesOnly = "images_only"
)

const categoriesCacheKey = "categories?meta=true"

type browseRepository struct {
	api        adapter.EllAPI
	categories *expirable.LRU[string, []models.Category]
	logger     *logger.Logger
}

// NewBrowseRepository builds a [BrowseRepository] over api. The category list
// is cached for cacheTTL in an LRU of cacheSize entries; a non-positive TTL
// keeps entries until evicted by size.
func NewBrowseRepository(api adapter.EllAPI, cacheSize int, cacheTTL time.Duration, log *logger.Logger) BrowseRepository {
	return &browseRepository{
		api:        api,
		categories: expirable.NewLRU[string, []models.Category](cacheSize, nil, cacheTTL),
		logger:     log,
	}
}

// FetchEditorials implements [BrowseRepository].
func (r *browseRepository) FetchEditorials(ctx context.Context, nextPageID string) (models.EditorialStream, error) {
	stream, links, err := r.api.FetchEditorials(ctx, nextPageID)
	if err != nil {
		return models.EditorialStream{}, err
	}

	stream.Next = links.Param(adapter.RelNext, paramBefore)
	return stream, nil
}

// FetchArtistInvites implements [BrowseRepository].
func (r *browseRepository) FetchArtistInvites(ctx context.Context, nextPageID string) (models.ArtistInviteStream, error) {
	stream, links, err := r.api.FetchArtistInvites(ctx, nextPageID)
	if err != nil {
		return models.ArtistInviteStream{}, err
	}

	stream.Next = links.Param(adapter.RelNext, paramPage)
	return stream, nil
}

// FetchCategories implements [BrowseRepository]. Meta categories are
// included. Callers receive their own copy of the cached slice.
func (r *browseRepository) FetchCategories(ctx context.Context) ([]models.Category, error) {
	if cached, ok := r.categories.Get(categoriesCacheKey); ok {
		r.logger.Debug().Int("count", len(cached)).Msg("categories served from cache")
		return slices.Clone(cached), nil
	}

	categories, err := r.api.FetchCategories(ctx, true)
	if err != nil {
		return nil, err
	}

	r.categories.Add(categoriesCacheKey, slices.Clone(categories))
	return categories, nil
}

// FetchPostsByCategory implements [BrowseRepository].
func (r *browseRepository) FetchPostsByCategory(ctx context.Context, slug, nextPageID string) (models.PostStream, error) {
	if slug == "" {
		return models.PostStream{}, ErrEmptyCategorySlug
	}

	endpoint, cursorParam, query := postsEndpoint(slug, nextPageID)
	stream, links, err := r.api.FetchPosts(ctx, endpoint, query)
	if err != nil {
		return models.PostStream{}, err
	}

	stream.Next = links.Param(adapter.RelNext, cursorParam)
	return stream, nil
}

// postsEndpoint maps a category slug to its post stream endpoint, the name of
// its cursor parameter and the first query.
func postsEndpoint(slug, nextPageID string) (endpoint, cursorParam string, query url.Values) {
	switch slug {
	case models.CategorySlugFeatured:
		return "categories/posts/recent", paramBefore, url.Values{paramBefore: {nextPageID}}
	case models.CategorySlugTrending:
		return "discover/posts/trending", paramPage, url.Values{paramPage: {nextPageID}, paramImagesOnly: {"true"}}
	case models.CategorySlugRecent:
		return "discover/posts/recent", paramBefore, url.Values{paramBefore: {nextPageID}}
	default:
		return "categories/" + url.PathEscape(slug) + "/posts/recent", paramBefore, url.Values{paramBefore: {nextPageID}}
	}
}
