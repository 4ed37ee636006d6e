package viewmodel

import (
	"context"

	"github.com/jasvilladarez/ello-go/internal/mvi"
	"github.com/jasvilladarez/ello-go/internal/service"
)

// Artist Invites screen variant sets.
type (
	ArtistInvitesIntent    = ListIntent[ArtistInviteItem]
	ArtistInvitesResult    = ListResult[ArtistInviteItem]
	ArtistInvitesViewState = ListViewState[ArtistInviteItem]
	ArtistInvitesViewModel = ListViewModel[ArtistInviteItem]
)

// NewArtistInvitesViewModel creates the Artist Invites screen machine. The
// cursor is a page number.
func NewArtistInvitesViewModel(repo service.BrowseRepository, opts ...mvi.Option) *ArtistInvitesViewModel {
	fetch := func(ctx context.Context, nextPageID string) (mvi.Page[ArtistInviteItem], error) {
		stream, err := repo.FetchArtistInvites(ctx, nextPageID)
		if err != nil {
			return mvi.Page[ArtistInviteItem]{}, err
		}
		return mvi.Page[ArtistInviteItem]{Items: mapArtistInvites(stream.ArtistInvites), Next: stream.Next}, nil
	}

	return newListViewModel(fetch, artistInviteKey, append([]mvi.Option{mvi.WithName("artist_invites")}, opts...)...)
}
