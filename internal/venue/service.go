package venue

import (
	"context"

	"fyyur/internal/httpx"
)

// Service provides venue business logic.
type Service struct {
	repo  Repository
	shows Schedules
}

// NewService creates a new venue service.
func NewService(repo Repository, shows Schedules) *Service {
	return &Service{repo: repo, shows: shows}
}

func (s *Service) List(ctx context.Context) ([]Venue, error) {
	return s.repo.List(ctx)
}

// Areas returns every venue grouped by city and state.
func (s *Service) Areas(ctx context.Context) ([]Area, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByArea(venues), nil
}

// Search matches term case-insensitively against venue names only.
func (s *Service) Search(ctx context.Context, term string) (SearchResult, error) {
	venues, err := s.repo.Search(ctx, term)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Count: len(venues), Data: venues}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Venue, error) {
	return s.repo.GetByID(ctx, id)
}

// Detail returns the venue with its shows split around the current time.
func (s *Service) Detail(ctx context.Context, id int64) (Detail, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	sched, err := s.shows.ForVenue(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Venue: v, Schedule: sched}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Venue, error) {
	if errs := httpx.ValidateStruct(in); errs != nil {
		return Venue{}, errs
	}
	v := in.venue(0)
	if err := s.repo.Create(ctx, &v); err != nil {
		return Venue{}, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Venue, error) {
	if errs := httpx.ValidateStruct(in); errs != nil {
		return Venue{}, errs
	}
	v := in.venue(id)
	if err := s.repo.Update(ctx, &v); err != nil {
		return Venue{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
