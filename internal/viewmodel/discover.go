package viewmodel

import (
	"context"
	"fmt"
	"iter"

	"github.com/jasvilladarez/ello-go/internal/mvi"
	"github.com/jasvilladarez/ello-go/internal/service"
)

// DiscoverIntent is a Discover screen action.
//
//sumtype:decl
type DiscoverIntent interface {
	isDiscoverIntent()
}

type (
	LoadCategories struct{}
	// LoadPosts selects Category and loads its first page of posts.
	LoadPosts struct{ Category CategoryItem }
	// LoadMorePosts loads the page after NextPageID for Category.
	LoadMorePosts struct {
		Category   CategoryItem
		NextPageID string
	}
)

func (LoadCategories) isDiscoverIntent() {}
func (LoadPosts) isDiscoverIntent()      {}
func (LoadMorePosts) isDiscoverIntent()  {}

// DiscoverMode tells which Discover request a result belongs to.
type DiscoverMode int

const (
	ModeLoadCategories DiscoverMode = iota
	ModeLoadPosts
	ModeLoadMorePosts
)

func (m DiscoverMode) String() string {
	switch m {
	case ModeLoadCategories:
		return "load_categories"
	case ModeLoadPosts:
		return "load_posts"
	case ModeLoadMorePosts:
		return "load_more_posts"
	default:
		return fmt.Sprintf("DiscoverMode(%d)", int(m))
	}
}

// DiscoverResult is the outcome of a [DiscoverIntent]. Post results carry
// the category they were requested for.
//
//sumtype:decl
type DiscoverResult interface {
	isDiscoverResult()
}

type (
	DiscoverInProgress struct {
		Mode     DiscoverMode
		Category CategoryItem
	}
	CategoriesSuccess struct{ Categories []CategoryItem }
	PostsSuccess      struct {
		Page     mvi.Page[PostItem]
		Category CategoryItem
		Mode     DiscoverMode
	}
	DiscoverFailure struct {
		Err      error
		Mode     DiscoverMode
		Category CategoryItem
	}
)

func (DiscoverInProgress) isDiscoverResult() {}
func (CategoriesSuccess) isDiscoverResult()  {}
func (PostsSuccess) isDiscoverResult()       {}
func (DiscoverFailure) isDiscoverResult()    {}

// DiscoverContent is the data every Discover state carries.
type DiscoverContent struct {
	Categories []CategoryItem
	// Selected is the category whose posts are shown. A zero value means
	// no category was picked yet.
	Selected CategoryItem
	Posts    mvi.Page[PostItem]
}

// HasSelection reports whether a category was picked.
func (c DiscoverContent) HasSelection() bool {
	return c.Selected.Slug != ""
}

// DiscoverViewState is what the Discover screen renders.
//
//sumtype:decl
type DiscoverViewState interface {
	Data() DiscoverContent
	isDiscoverViewState()
}

type (
	DefaultCategoryView   struct{ DiscoverContent }
	LoadingCategoriesView struct{ DiscoverContent }
	DefaultPostsView      struct{ DiscoverContent }
	MorePostsView         struct{ DiscoverContent }
	LoadingPostsView      struct{ DiscoverContent }
	LoadingMorePostsView  struct{ DiscoverContent }
	DiscoverErrorView     struct {
		DiscoverContent
		Message string
	}
)

func (v DefaultCategoryView) Data() DiscoverContent   { return v.DiscoverContent }
func (v LoadingCategoriesView) Data() DiscoverContent { return v.DiscoverContent }
func (v DefaultPostsView) Data() DiscoverContent      { return v.DiscoverContent }
func (v MorePostsView) Data() DiscoverContent         { return v.DiscoverContent }
func (v LoadingPostsView) Data() DiscoverContent      { return v.DiscoverContent }
func (v LoadingMorePostsView) Data() DiscoverContent  { return v.DiscoverContent }
func (v DiscoverErrorView) Data() DiscoverContent     { return v.DiscoverContent }

func (DefaultCategoryView) isDiscoverViewState()   {}
func (LoadingCategoriesView) isDiscoverViewState() {}
func (DefaultPostsView) isDiscoverViewState()      {}
func (MorePostsView) isDiscoverViewState()         {}
func (LoadingPostsView) isDiscoverViewState()      {}
func (LoadingMorePostsView) isDiscoverViewState()  {}
func (DiscoverErrorView) isDiscoverViewState()     {}

// DiscoverViewModel drives the Discover screen.
type DiscoverViewModel struct {
	*mvi.StateMachine[DiscoverIntent, DiscoverResult, DiscoverViewState]
}

// NewDiscoverViewModel creates the Discover machine in an empty
// DefaultCategoryView.
func NewDiscoverViewModel(repo service.BrowseRepository, opts ...mvi.Option) *DiscoverViewModel {
	var initial DiscoverViewState = DefaultCategoryView{}
	return &DiscoverViewModel{
		StateMachine: mvi.New(initial, discoverDispatch(repo), reduceDiscover,
			append([]mvi.Option{mvi.WithName("discover")}, opts...)...),
	}
}

func discoverDispatch(repo service.BrowseRepository) mvi.Dispatch[DiscoverIntent, DiscoverResult] {
	return func(ctx context.Context, intent DiscoverIntent) iter.Seq[DiscoverResult] {
		switch in := intent.(type) {
		case LoadCategories:
			return fetchCategories(ctx, repo)
		case LoadPosts:
			return fetchPosts(ctx, repo, in.Category, "")
		case LoadMorePosts:
			return fetchPosts(ctx, repo, in.Category, in.NextPageID)
		default:
			panic(fmt.Sprintf("unexpected discover intent %T", intent))
		}
	}
}

func fetchCategories(ctx context.Context, repo service.BrowseRepository) iter.Seq[DiscoverResult] {
	return mvi.Apply(ctx,
		func(ctx context.Context) ([]CategoryItem, error) {
			categories, err := repo.FetchCategories(ctx)
			if err != nil {
				return nil, err
			}
			return mapCategories(categories), nil
		},
		func(categories []CategoryItem) DiscoverResult { return CategoriesSuccess{Categories: categories} },
		func(err error) DiscoverResult { return DiscoverFailure{Err: err, Mode: ModeLoadCategories} },
		DiscoverResult(DiscoverInProgress{Mode: ModeLoadCategories}),
	)
}

func fetchPosts(ctx context.Context, repo service.BrowseRepository, category CategoryItem, nextPageID string) iter.Seq[DiscoverResult] {
	mode := ModeLoadPosts
	if modeFor(nextPageID) == ModeLoadMore {
		mode = ModeLoadMorePosts
	}

	return mvi.Apply(ctx,
		func(ctx context.Context) (mvi.Page[PostItem], error) {
			stream, err := repo.FetchPostsByCategory(ctx, category.Slug, nextPageID)
			if err != nil {
				return mvi.Page[PostItem]{}, err
			}
			return mvi.Page[PostItem]{Items: mapPosts(stream), Next: stream.Next}, nil
		},
		func(page mvi.Page[PostItem]) DiscoverResult {
			return PostsSuccess{Page: page, Category: category, Mode: mode}
		},
		func(err error) DiscoverResult { return DiscoverFailure{Err: err, Mode: mode, Category: category} },
		DiscoverResult(DiscoverInProgress{Mode: mode, Category: category}),
	)
}

// reduceDiscover applies the pagination rules to the posts of the selected
// category. Post results for any other category are stale and leave the
// state untouched.
func reduceDiscover(prev DiscoverViewState, result DiscoverResult) DiscoverViewState {
	content := prev.Data()

	switch r := result.(type) {
	case DiscoverInProgress:
		switch r.Mode {
		case ModeLoadCategories:
			return LoadingCategoriesView{content}
		case ModeLoadPosts:
			if content.Selected.Slug != r.Category.Slug {
				content.Posts = mvi.Page[PostItem]{}
			}
			content.Selected = r.Category
			return LoadingPostsView{content}
		default:
			if content.Selected.Slug != r.Category.Slug {
				return prev
			}
			return LoadingMorePostsView{content}
		}
	case CategoriesSuccess:
		content.Categories = r.Categories
		return DefaultCategoryView{content}
	case PostsSuccess:
		if content.Selected.Slug != r.Category.Slug {
			return prev
		}
		if r.Mode == ModeLoadMorePosts {
			content.Posts = mvi.Extend(content.Posts, r.Page, postKey)
			return MorePostsView{content}
		}
		content.Posts = r.Page
		return DefaultPostsView{content}
	case DiscoverFailure:
		if r.Mode != ModeLoadCategories && content.Selected.Slug != r.Category.Slug {
			return prev
		}
		return DiscoverErrorView{DiscoverContent: content, Message: mvi.ErrorMessage(r.Err)}
	default:
		return prev
	}
}
