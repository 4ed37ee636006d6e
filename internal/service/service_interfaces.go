package service

import (
	"context"

	"github.com/jasvilladarez/ello-go/models"
)

// Catalog serves the browse streams of the development API server. Streams
// are paged; the Next field of a result holds the cursor of the following
// page or is empty on the last page.
type Catalog interface {
	// Editorials pages by the id of the last editorial seen.
	Editorials(ctx context.Context, before string) (models.EditorialStream, error)
	// ArtistInvites pages by 1-based page number.
	ArtistInvites(ctx context.Context, page string) (models.ArtistInviteStream, error)
	// Categories lists the categories, prefixed by the meta categories when
	// meta is set.
	Categories(ctx context.Context, meta bool) ([]models.Category, error)
	// CategoryPosts pages the posts of one category by post id.
	CategoryPosts(ctx context.Context, slug, before string) (models.PostStream, error)
	// FeaturedPosts pages the featured posts by post id.
	FeaturedPosts(ctx context.Context, before string) (models.PostStream, error)
	// RecentPosts pages every post by post id.
	RecentPosts(ctx context.Context, before string) (models.PostStream, error)
	// TrendingPosts pages the posts in trending order by page number.
	TrendingPosts(ctx context.Context, page string, imagesOnly bool) (models.PostStream, error)
}

// TokenIssuer grants and checks public access tokens.
type TokenIssuer interface {
	IssueToken(ctx context.Context, req models.TokenRequest) (models.Token, error)
	Authorize(ctx context.Context, accessToken string) error
}

// AppInfoService reports the build of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}
