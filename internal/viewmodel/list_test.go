package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jasvilladarez/ello-go/internal/mock"
	"github.com/jasvilladarez/ello-go/internal/mvi"
	"github.com/jasvilladarez/ello-go/models"
)

func editorials(from, to int) []models.Editorial {
	out := make([]models.Editorial, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, models.Editorial{
			ID:    models.ID(fmt.Sprintf("E%d", i)),
			Kind:  models.EditorialKindExternal,
			Title: fmt.Sprintf("Editorial %d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		})
	}
	return out
}

func newTestEditorial(t *testing.T) (*EditorialViewModel, *mock.MockBrowseRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockBrowseRepository(ctrl)
	vm := NewEditorialViewModel(repo, mvi.WithMaxConcurrency(2))
	t.Cleanup(vm.Clear)
	return vm, repo
}

func TestEditorial_LoadSequence(t *testing.T) {
	vm, repo := newTestEditorial(t)
	repo.EXPECT().FetchEditorials(gomock.Any(), "").
		Return(models.EditorialStream{Editorials: editorials(1, 2), Next: "123"}, nil)
	rec := record(t, vm.StateMachine)

	vm.Send(Load[EditorialItem]{})

	states := rec.waitLen(t, 3)
	require.Len(t, states, 3)
	assert.Equal(t, DefaultView[EditorialItem]{}, states[0])
	assert.Equal(t, InitialLoadingView[EditorialItem]{}, states[1])

	loaded, ok := states[2].(DefaultView[EditorialItem])
	require.True(t, ok, "got %T", states[2])
	assert.Equal(t, "123", loaded.List.Next)
	require.Len(t, loaded.List.Items, 2)
	assert.Equal(t, models.ID("E1"), loaded.List.Items[0].ID)
	assert.Equal(t, "https://example.com/1", loaded.List.Items[0].Link)
}

func TestEditorial_LoadMoreExtendsList(t *testing.T) {
	vm, repo := newTestEditorial(t)
	gomock.InOrder(
		repo.EXPECT().FetchEditorials(gomock.Any(), "").
			Return(models.EditorialStream{Editorials: editorials(1, 10), Next: "123"}, nil),
		repo.EXPECT().FetchEditorials(gomock.Any(), "123").
			Return(models.EditorialStream{Editorials: editorials(11, 15), Next: "456"}, nil),
	)

	vm.Send(Load[EditorialItem]{})
	require.Eventually(t, func() bool { return vm.State().Value().Content().Next == "123" }, waitFor, tick)

	rec := record(t, vm.StateMachine)
	vm.Send(LoadMore[EditorialItem]{NextPageID: vm.State().Value().Content().Next})

	states := rec.waitLen(t, 3)
	assert.IsType(t, MoreLoadingView[EditorialItem]{}, states[1])
	assert.Len(t, states[1].Content().Items, 10, "in-progress keeps the list")

	more, ok := states[2].(MoreView[EditorialItem])
	require.True(t, ok, "got %T", states[2])
	assert.Equal(t, "456", more.List.Next)
	require.Len(t, more.List.Items, 15)
	for i, item := range more.List.Items {
		assert.Equal(t, models.ID(fmt.Sprintf("E%d", i+1)), item.ID)
	}
}

func TestEditorial_LoadMoreSkipsDuplicates(t *testing.T) {
	vm, repo := newTestEditorial(t)
	repo.EXPECT().FetchEditorials(gomock.Any(), "").
		Return(models.EditorialStream{Editorials: editorials(1, 3), Next: "a"}, nil)
	repo.EXPECT().FetchEditorials(gomock.Any(), "a").
		Return(models.EditorialStream{Editorials: editorials(3, 5), Next: ""}, nil)

	vm.Send(Load[EditorialItem]{})
	require.Eventually(t, func() bool { return vm.State().Value().Content().Next == "a" }, waitFor, tick)

	vm.Send(LoadMore[EditorialItem]{NextPageID: "a"})
	require.Eventually(t, func() bool {
		_, ok := vm.State().Value().(MoreView[EditorialItem])
		return ok
	}, waitFor, tick)

	list := vm.State().Value().Content()
	assert.Len(t, list.Items, 5)
	assert.False(t, list.HasNext())
}

func TestEditorial_ErrorKeepsList(t *testing.T) {
	vm, repo := newTestEditorial(t)
	repo.EXPECT().FetchEditorials(gomock.Any(), "").
		Return(models.EditorialStream{Editorials: editorials(1, 2), Next: "123"}, nil)
	repo.EXPECT().FetchEditorials(gomock.Any(), "123").
		Return(models.EditorialStream{}, errors.New("boom"))

	vm.Send(Load[EditorialItem]{})
	require.Eventually(t, func() bool { return vm.State().Value().Content().Next == "123" }, waitFor, tick)

	vm.Send(LoadMore[EditorialItem]{NextPageID: "123"})
	require.Eventually(t, func() bool {
		_, ok := vm.State().Value().(ErrorView[EditorialItem])
		return ok
	}, waitFor, tick)

	errView := vm.State().Value().(ErrorView[EditorialItem])
	assert.Equal(t, "boom", errView.Message)
	assert.Len(t, errView.List.Items, 2)
	assert.Equal(t, "123", errView.List.Next)
}

func TestEditorial_LoadReplacesList(t *testing.T) {
	vm, repo := newTestEditorial(t)
	gomock.InOrder(
		repo.EXPECT().FetchEditorials(gomock.Any(), "").
			Return(models.EditorialStream{Editorials: editorials(1, 5), Next: "x"}, nil),
		repo.EXPECT().FetchEditorials(gomock.Any(), "").
			Return(models.EditorialStream{Editorials: editorials(6, 7), Next: "y"}, nil),
	)

	vm.Send(Load[EditorialItem]{})
	require.Eventually(t, func() bool { return vm.State().Value().Content().Next == "x" }, waitFor, tick)

	vm.Send(Load[EditorialItem]{})
	require.Eventually(t, func() bool { return vm.State().Value().Content().Next == "y" }, waitFor, tick)

	list := vm.State().Value().Content()
	require.Len(t, list.Items, 2)
	assert.Equal(t, models.ID("E6"), list.Items[0].ID)
}

func TestEditorial_LoadMoreWithoutCursorLoadsFirstPage(t *testing.T) {
	vm, repo := newTestEditorial(t)
	repo.EXPECT().FetchEditorials(gomock.Any(), "").
		Return(models.EditorialStream{Editorials: editorials(1, 1)}, nil)
	rec := record(t, vm.StateMachine)

	vm.Send(LoadMore[EditorialItem]{})

	states := rec.waitLen(t, 3)
	assert.IsType(t, InitialLoadingView[EditorialItem]{}, states[1])
	assert.IsType(t, DefaultView[EditorialItem]{}, states[2])
}

func TestEditorial_ItemClickSelectsItem(t *testing.T) {
	vm, repo := newTestEditorial(t)
	repo.EXPECT().FetchEditorials(gomock.Any(), "").
		Return(models.EditorialStream{Editorials: editorials(1, 2), Next: "n"}, nil)

	vm.Send(Load[EditorialItem]{})
	require.Eventually(t, func() bool { return vm.State().Value().Content().Len() == 2 }, waitFor, tick)

	item := vm.State().Value().Content().Items[1]
	vm.Send(ItemClick[EditorialItem]{Item: item})
	require.Eventually(t, func() bool {
		_, ok := vm.State().Value().(SelectedView[EditorialItem])
		return ok
	}, waitFor, tick)

	selected := vm.State().Value().(SelectedView[EditorialItem])
	assert.Equal(t, item, selected.Item)
	assert.Len(t, selected.List.Items, 2)
	assert.Equal(t, "n", selected.List.Next)
}

func TestEditorial_ClearStopsDelivery(t *testing.T) {
	vm, repo := newTestEditorial(t)
	release := make(chan struct{})
	repo.EXPECT().FetchEditorials(gomock.Any(), "").DoAndReturn(
		func(ctx context.Context, _ string) (models.EditorialStream, error) {
			select {
			case <-release:
			case <-ctx.Done():
			}
			return models.EditorialStream{Editorials: editorials(1, 1)}, nil
		}).AnyTimes()
	rec := record(t, vm.StateMachine)

	vm.Send(Load[EditorialItem]{})
	rec.waitLen(t, 2)

	vm.Clear()
	close(release)
	time.Sleep(20 * time.Millisecond)

	assert.Len(t, rec.snapshot(), 2)
	assert.True(t, vm.State().Closed())
}

func TestArtistInvites_LoadMoreUsesPageCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBrowseRepository(ctrl)
	vm := NewArtistInvitesViewModel(repo)
	t.Cleanup(vm.Clear)

	invite := func(id string, status models.ArtistInviteStatus) models.ArtistInvite {
		return models.ArtistInvite{ID: models.ID(id), Title: id, Status: status, Slug: id}
	}
	gomock.InOrder(
		repo.EXPECT().FetchArtistInvites(gomock.Any(), "").Return(models.ArtistInviteStream{
			ArtistInvites: []models.ArtistInvite{invite("a", models.ArtistInviteStatusOpen)},
			Next:          "2",
		}, nil),
		repo.EXPECT().FetchArtistInvites(gomock.Any(), "2").Return(models.ArtistInviteStream{
			ArtistInvites: []models.ArtistInvite{invite("b", "archived")},
			Next:          "3",
		}, nil),
	)

	vm.Send(Load[ArtistInviteItem]{})
	require.Eventually(t, func() bool { return vm.State().Value().Content().Next == "2" }, waitFor, tick)
	vm.Send(LoadMore[ArtistInviteItem]{NextPageID: "2"})
	require.Eventually(t, func() bool { return vm.State().Value().Content().Next == "3" }, waitFor, tick)

	list := vm.State().Value().Content()
	require.Len(t, list.Items, 2)
	assert.Equal(t, InviteOpen, list.Items[0].Status)
	assert.Equal(t, InviteClosed, list.Items[1].Status)
	assert.Equal(t, WebBaseURL+"/artist-invites/b", list.Items[1].Link)
}

func TestListReducer(t *testing.T) {
	reduce := listReducer[EditorialItem](editorialKey)
	page := mvi.Page[EditorialItem]{Items: []EditorialItem{{ID: "1"}}, Next: "n"}

	tests := []struct {
		name   string
		prev   ListViewState[EditorialItem]
		result ListResult[EditorialItem]
		want   ListViewState[EditorialItem]
	}{
		{
			name:   "load in progress",
			prev:   DefaultView[EditorialItem]{List: page},
			result: InProgress[EditorialItem]{Mode: ModeLoad},
			want:   InitialLoadingView[EditorialItem]{List: page},
		},
		{
			name:   "load more in progress",
			prev:   DefaultView[EditorialItem]{List: page},
			result: InProgress[EditorialItem]{Mode: ModeLoadMore},
			want:   MoreLoadingView[EditorialItem]{List: page},
		},
		{
			name:   "error from selected view keeps list",
			prev:   SelectedView[EditorialItem]{List: page, Item: EditorialItem{ID: "1"}},
			result: Failure[EditorialItem]{Err: errors.New("offline")},
			want:   ErrorView[EditorialItem]{List: page, Message: "offline"},
		},
		{
			name:   "more success on empty list",
			prev:   MoreLoadingView[EditorialItem]{},
			result: Success[EditorialItem]{Page: page, Mode: ModeLoadMore},
			want:   MoreView[EditorialItem]{List: page},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reduce(tt.prev, tt.result))
		})
	}
}
