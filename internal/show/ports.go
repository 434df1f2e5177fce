package show

import "context"

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=show

// Repository defines the contract for show storage.
type Repository interface {
	List(ctx context.Context) ([]Show, error)
	ListByVenue(ctx context.Context, venueID int64) ([]Show, error)
	ListByArtist(ctx context.Context, artistID int64) ([]Show, error)
	Create(ctx context.Context, s *Show) error
}
