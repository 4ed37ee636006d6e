package viewmodel

import (
	"context"

	"github.com/jasvilladarez/ello-go/internal/mvi"
	"github.com/jasvilladarez/ello-go/internal/service"
)

// Editorial screen variant sets.
type (
	EditorialIntent    = ListIntent[EditorialItem]
	EditorialResult    = ListResult[EditorialItem]
	EditorialViewState = ListViewState[EditorialItem]
	EditorialViewModel = ListViewModel[EditorialItem]
)

// NewEditorialViewModel creates the Editorial screen machine. Its initial
// state is an empty DefaultView.
func NewEditorialViewModel(repo service.BrowseRepository, opts ...mvi.Option) *EditorialViewModel {
	fetch := func(ctx context.Context, nextPageID string) (mvi.Page[EditorialItem], error) {
		stream, err := repo.FetchEditorials(ctx, nextPageID)
		if err != nil {
			return mvi.Page[EditorialItem]{}, err
		}
		return mvi.Page[EditorialItem]{Items: mapEditorials(stream.Editorials), Next: stream.Next}, nil
	}

	return newListViewModel(fetch, editorialKey, append([]mvi.Option{mvi.WithName("editorial")}, opts...)...)
}
