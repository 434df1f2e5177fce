package venue

import (
	"context"

	"fyyur/internal/show"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=venue

// Repository defines the contract for venue storage.
type Repository interface {
	List(ctx context.Context) ([]Venue, error)
	Search(ctx context.Context, term string) ([]Venue, error)
	GetByID(ctx context.Context, id int64) (Venue, error)
	Create(ctx context.Context, v *Venue) error
	Update(ctx context.Context, v *Venue) error
	Delete(ctx context.Context, id int64) error
}

// Schedules builds the upcoming/past show lists for a venue.
type Schedules interface {
	ForVenue(ctx context.Context, venueID int64) (show.Schedule, error)
}
