package artist

import (
	"context"

	"fyyur/internal/show"
)

// Repository defines the contract for artist storage. Artists cannot be
// deleted.
type Repository interface {
	List(ctx context.Context) ([]Artist, error)
	Search(ctx context.Context, term string) ([]Artist, error)
	GetByID(ctx context.Context, id int64) (Artist, error)
	Create(ctx context.Context, a *Artist) error
	Update(ctx context.Context, a *Artist) error
}

type Schedules interface {
	ForArtist(ctx context.Context, artistID int64) (show.Schedule, error)
}
