package viewmodel

import (
	"context"
	"fmt"
	"iter"

	"github.com/jasvilladarez/ello-go/internal/mvi"
)

// ListIntent is a user action on a paginated list screen.
//
//sumtype:decl
type ListIntent[T any] interface {
	isListIntent()
}

type (
	// Load fetches the first page, replacing whatever is shown.
	Load[T any] struct{}
	// LoadMore fetches the page after NextPageID. The cursor must come from
	// the most recently rendered state.
	LoadMore[T any] struct{ NextPageID string }
	// ItemClick selects an item.
	ItemClick[T any] struct{ Item T }
)

func (Load[T]) isListIntent()      {}
func (LoadMore[T]) isListIntent()  {}
func (ItemClick[T]) isListIntent() {}

// ListResult is the outcome of handling a [ListIntent].
//
//sumtype:decl
type ListResult[T any] interface {
	isListResult()
}

type (
	InProgress[T any] struct{ Mode Mode }
	Success[T any]    struct {
		Page mvi.Page[T]
		Mode Mode
	}
	Failure[T any]  struct{ Err error }
	Selected[T any] struct{ Item T }
)

func (InProgress[T]) isListResult() {}
func (Success[T]) isListResult()    {}
func (Failure[T]) isListResult()    {}
func (Selected[T]) isListResult()   {}

// ListViewState is what a paginated list screen renders. Every variant
// carries the list it was derived from.
//
//sumtype:decl
type ListViewState[T any] interface {
	Content() mvi.Page[T]
	isListViewState()
}

type (
	// DefaultView shows a freshly loaded list.
	DefaultView[T any] struct{ List mvi.Page[T] }
	// MoreView shows a list extended by LoadMore.
	MoreView[T any] struct{ List mvi.Page[T] }
	// InitialLoadingView is shown while the first page loads.
	InitialLoadingView[T any] struct{ List mvi.Page[T] }
	// MoreLoadingView is shown while the next page loads.
	MoreLoadingView[T any] struct{ List mvi.Page[T] }
	ErrorView[T any]       struct {
		List    mvi.Page[T]
		Message string
	}
	// SelectedView shows the detail of a clicked item over the list.
	SelectedView[T any] struct {
		List mvi.Page[T]
		Item T
	}
)

func (v DefaultView[T]) Content() mvi.Page[T]        { return v.List }
func (v MoreView[T]) Content() mvi.Page[T]           { return v.List }
func (v InitialLoadingView[T]) Content() mvi.Page[T] { return v.List }
func (v MoreLoadingView[T]) Content() mvi.Page[T]    { return v.List }
func (v ErrorView[T]) Content() mvi.Page[T]          { return v.List }
func (v SelectedView[T]) Content() mvi.Page[T]       { return v.List }

func (DefaultView[T]) isListViewState()        {}
func (MoreView[T]) isListViewState()           {}
func (InitialLoadingView[T]) isListViewState() {}
func (MoreLoadingView[T]) isListViewState()    {}
func (ErrorView[T]) isListViewState()          {}
func (SelectedView[T]) isListViewState()       {}

// ListViewModel drives a paginated list screen.
type ListViewModel[T any] struct {
	*mvi.StateMachine[ListIntent[T], ListResult[T], ListViewState[T]]
}

// pageFetcher loads the page after nextPageID; an empty cursor loads the
// first page.
type pageFetcher[T any] func(ctx context.Context, nextPageID string) (mvi.Page[T], error)

func newListViewModel[T any, K comparable](fetch pageFetcher[T], key func(T) K, opts ...mvi.Option) *ListViewModel[T] {
	var initial ListViewState[T] = DefaultView[T]{}
	return &ListViewModel[T]{
		StateMachine: mvi.New(initial, listDispatch(fetch), listReducer[T](key), opts...),
	}
}

func listDispatch[T any](fetch pageFetcher[T]) mvi.Dispatch[ListIntent[T], ListResult[T]] {
	return func(ctx context.Context, intent ListIntent[T]) iter.Seq[ListResult[T]] {
		switch in := intent.(type) {
		case Load[T]:
			return fetchPage(ctx, fetch, "")
		case LoadMore[T]:
			return fetchPage(ctx, fetch, in.NextPageID)
		case ItemClick[T]:
			return mvi.Just[ListResult[T]](Selected[T]{Item: in.Item})
		default:
			panic(fmt.Sprintf("unexpected list intent %T", intent))
		}
	}
}

func fetchPage[T any](ctx context.Context, fetch pageFetcher[T], nextPageID string) iter.Seq[ListResult[T]] {
	mode := modeFor(nextPageID)
	return mvi.Apply(ctx,
		func(ctx context.Context) (mvi.Page[T], error) { return fetch(ctx, nextPageID) },
		func(page mvi.Page[T]) ListResult[T] { return Success[T]{Page: page, Mode: mode} },
		func(err error) ListResult[T] { return Failure[T]{Err: err} },
		ListResult[T](InProgress[T]{Mode: mode}),
	)
}

// listReducer implements the pagination rules: a Load success replaces the
// list and cursor, a LoadMore success merges without duplicates and replaces
// the cursor, and errors keep the list.
func listReducer[T any, K comparable](key func(T) K) mvi.Reducer[ListViewState[T], ListResult[T]] {
	return func(prev ListViewState[T], result ListResult[T]) ListViewState[T] {
		list := prev.Content()

		switch r := result.(type) {
		case InProgress[T]:
			if r.Mode == ModeLoadMore {
				return MoreLoadingView[T]{List: list}
			}
			return InitialLoadingView[T]{List: list}
		case Success[T]:
			if r.Mode == ModeLoadMore {
				return MoreView[T]{List: mvi.Extend(list, r.Page, key)}
			}
			return DefaultView[T]{List: r.Page}
		case Failure[T]:
			return ErrorView[T]{List: list, Message: mvi.ErrorMessage(r.Err)}
		case Selected[T]:
			return SelectedView[T]{List: list, Item: r.Item}
		default:
			return prev
		}
	}
}
