package show

import (
	"context"
	"time"

	"fyyur/internal/httpx"
)

// Service provides show listing, booking and schedule building.
type Service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

// NewService creates a show service that reads form times as UTC.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, loc: time.UTC, now: time.Now}
}

// WithLocation sets the zone used for form times without an offset and for
// every start time the service returns.
func (s *Service) WithLocation(loc *time.Location) *Service {
	if loc != nil {
		s.loc = loc
	}
	return s
}

// WithClock replaces the clock used to split schedules.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context) ([]Show, error) {
	shows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.local(shows), nil
}

// local moves start times into the service location; drivers hand them back
// in UTC or time.Local.
func (s *Service) local(shows []Show) []Show {
	for i := range shows {
		shows[i].StartTime = shows[i].StartTime.In(s.loc)
	}
	return shows
}

// Create validates in and books the show. Unknown venue or artist ids are
// rejected by the store with store.ErrConstraint.
func (s *Service) Create(ctx context.Context, in Input) (Show, error) {
	if errs := httpx.ValidateStruct(in); errs != nil {
		return Show{}, errs
	}
	start, err := ParseStartTime(in.StartTime, s.loc)
	if err != nil {
		return Show{}, httpx.ValidationErrors{{Field: "start_time", Message: err.Error()}}
	}

	sh := Show{VenueID: in.VenueID, ArtistID: in.ArtistID, StartTime: start}
	if err := s.repo.Create(ctx, &sh); err != nil {
		return Show{}, err
	}
	return sh, nil
}

// ForVenue returns the venue's shows split around the current time.
func (s *Service) ForVenue(ctx context.Context, venueID int64) (Schedule, error) {
	shows, err := s.repo.ListByVenue(ctx, venueID)
	if err != nil {
		return Schedule{}, err
	}
	return Split(s.local(shows), s.now()), nil
}

// ForArtist returns the artist's shows split around the current time.
func (s *Service) ForArtist(ctx context.Context, artistID int64) (Schedule, error) {
	shows, err := s.repo.ListByArtist(ctx, artistID)
	if err != nil {
		return Schedule{}, err
	}
	return Split(s.local(shows), s.now()), nil
}
