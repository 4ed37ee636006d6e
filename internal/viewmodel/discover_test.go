package viewmodel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jasvilladarez/ello-go/internal/mock"
	"github.com/jasvilladarez/ello-go/internal/mvi"
	"github.com/jasvilladarez/ello-go/models"
)

var (
	categoryA = CategoryItem{Name: "Art", Slug: "art"}
	categoryB = CategoryItem{Name: "Photography", Slug: "photography"}
)

func postStream(next string, ids ...string) models.PostStream {
	stream := models.PostStream{
		Linked: models.Linked{Users: []models.User{{ID: "u1", Username: "jane"}}},
		Next:   next,
	}
	for _, id := range ids {
		stream.Posts = append(stream.Posts, models.Post{ID: models.ID(id), Token: "t" + id, AuthorID: "u1"})
	}
	return stream
}

func newTestDiscover(t *testing.T) (*DiscoverViewModel, *mock.MockBrowseRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockBrowseRepository(ctrl)
	vm := NewDiscoverViewModel(repo)
	t.Cleanup(vm.Clear)
	return vm, repo
}

func TestDiscover_LoadCategories(t *testing.T) {
	vm, repo := newTestDiscover(t)
	repo.EXPECT().FetchCategories(gomock.Any()).Return([]models.Category{
		{ID: "1", Name: "Art", Slug: "art"},
		{ID: "2", Name: "Photography", Slug: "photography"},
	}, nil)
	rec := record(t, vm.StateMachine)

	vm.Send(LoadCategories{})

	states := rec.waitLen(t, 3)
	assert.Equal(t, []DiscoverViewState{
		DefaultCategoryView{},
		LoadingCategoriesView{},
		DefaultCategoryView{DiscoverContent{Categories: []CategoryItem{categoryA, categoryB}}},
	}, states)
}

func TestDiscover_LoadPostsThenMore(t *testing.T) {
	vm, repo := newTestDiscover(t)
	gomock.InOrder(
		repo.EXPECT().FetchPostsByCategory(gomock.Any(), "art", "").Return(postStream("p2", "1", "2"), nil),
		repo.EXPECT().FetchPostsByCategory(gomock.Any(), "art", "p2").Return(postStream("", "2", "3"), nil),
	)
	rec := record(t, vm.StateMachine)

	vm.Send(LoadPosts{Category: categoryA})
	rec.waitLen(t, 3)
	vm.Send(LoadMorePosts{Category: categoryA, NextPageID: "p2"})

	states := rec.waitLen(t, 5)
	assert.IsType(t, LoadingPostsView{}, states[1])
	assert.Equal(t, categoryA, states[1].Data().Selected)
	assert.IsType(t, DefaultPostsView{}, states[2])
	assert.IsType(t, LoadingMorePostsView{}, states[3])

	more, ok := states[4].(MorePostsView)
	require.True(t, ok, "got %T", states[4])
	require.Len(t, more.Posts.Items, 3)
	assert.False(t, more.Posts.HasNext())
	assert.Equal(t, "jane", more.Posts.Items[0].AuthorUsername)
	assert.Equal(t, WebBaseURL+"/jane/post/t1", more.Posts.Items[0].Link)
}

func TestDiscover_SwitchingCategoryClearsPosts(t *testing.T) {
	vm, repo := newTestDiscover(t)
	repo.EXPECT().FetchPostsByCategory(gomock.Any(), "art", "").Return(postStream("n", "1"), nil)
	repo.EXPECT().FetchPostsByCategory(gomock.Any(), "photography", "").Return(postStream("", "9"), nil)

	vm.Send(LoadPosts{Category: categoryA})
	require.Eventually(t, func() bool { return vm.State().Value().Data().Posts.Len() == 1 }, waitFor, tick)

	rec := record(t, vm.StateMachine)
	vm.Send(LoadPosts{Category: categoryB})

	states := rec.waitLen(t, 3)
	assert.Equal(t, LoadingPostsView{DiscoverContent{Selected: categoryB}}, states[1])
	assert.Equal(t, models.ID("9"), states[2].Data().Posts.Items[0].ID)
}

func TestDiscover_StaleMorePostsDiscarded(t *testing.T) {
	vm, repo := newTestDiscover(t)
	release := make(chan struct{})
	repo.EXPECT().FetchPostsByCategory(gomock.Any(), "art", "").Return(postStream("p2", "1"), nil)
	repo.EXPECT().FetchPostsByCategory(gomock.Any(), "art", "p2").DoAndReturn(
		func(ctx context.Context, _, _ string) (models.PostStream, error) {
			<-release
			return postStream("p3", "2"), nil
		})
	repo.EXPECT().FetchPostsByCategory(gomock.Any(), "photography", "").Return(postStream("", "9"), nil)

	vm.Send(LoadPosts{Category: categoryA})
	require.Eventually(t, func() bool { return vm.State().Value().Data().Posts.Next == "p2" }, waitFor, tick)

	vm.Send(LoadMorePosts{Category: categoryA, NextPageID: "p2"})
	require.Eventually(t, func() bool {
		_, ok := vm.State().Value().(LoadingMorePostsView)
		return ok
	}, waitFor, tick)

	vm.Send(LoadPosts{Category: categoryB})
	require.Eventually(t, func() bool {
		_, ok := vm.State().Value().(DefaultPostsView)
		return ok
	}, waitFor, tick)

	close(release)
	time.Sleep(50 * time.Millisecond)

	assert.IsType(t, DefaultPostsView{}, vm.State().Value())
	data := vm.State().Value().Data()
	assert.Equal(t, categoryB, data.Selected)
	require.Len(t, data.Posts.Items, 1)
	assert.Equal(t, models.ID("9"), data.Posts.Items[0].ID)
}

func TestDiscover_ErrorKeepsContent(t *testing.T) {
	vm, repo := newTestDiscover(t)
	repo.EXPECT().FetchCategories(gomock.Any()).Return([]models.Category{{Name: "Art", Slug: "art"}}, nil)
	repo.EXPECT().FetchPostsByCategory(gomock.Any(), "art", "").Return(models.PostStream{}, errors.New("boom"))

	vm.Send(LoadCategories{})
	require.Eventually(t, func() bool { return len(vm.State().Value().Data().Categories) == 1 }, waitFor, tick)

	vm.Send(LoadPosts{Category: categoryA})
	require.Eventually(t, func() bool {
		_, ok := vm.State().Value().(DiscoverErrorView)
		return ok
	}, waitFor, tick)

	errView := vm.State().Value().(DiscoverErrorView)
	assert.Equal(t, "boom", errView.Message)
	assert.Equal(t, []CategoryItem{categoryA}, errView.Categories)
	assert.Equal(t, categoryA, errView.Selected)
}

func TestReduceDiscover_StaleFailureIgnored(t *testing.T) {
	prev := DefaultPostsView{DiscoverContent{
		Selected: categoryB,
		Posts:    mvi.Page[PostItem]{Items: []PostItem{{ID: "9"}}},
	}}

	got := reduceDiscover(prev, DiscoverFailure{Err: errors.New("late"), Mode: ModeLoadMorePosts, Category: categoryA})

	assert.Equal(t, DiscoverViewState(prev), got)
}

func TestReduceDiscover_StaleMorePostsSuccessIgnored(t *testing.T) {
	prev := LoadingPostsView{DiscoverContent{
		Selected: categoryB,
		Posts:    mvi.Page[PostItem]{Items: []PostItem{{ID: "9"}}, Next: "b2"},
	}}

	got := reduceDiscover(prev, PostsSuccess{
		Page:     mvi.Page[PostItem]{Items: []PostItem{{ID: "1"}}, Next: "a3"},
		Category: categoryA,
		Mode:     ModeLoadMorePosts,
	})

	assert.Equal(t, DiscoverViewState(prev), got)
}

func TestReduceDiscover_CategoriesFailureShown(t *testing.T) {
	got := reduceDiscover(DefaultCategoryView{}, DiscoverFailure{Err: errors.New("down"), Mode: ModeLoadCategories})

	assert.Equal(t, DiscoverViewState(DiscoverErrorView{Message: "down"}), got)
}
