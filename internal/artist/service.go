package artist

import (
	"context"

	"fyyur/internal/httpx"
)

// Service provides artist business logic.
type Service struct {
	repo  Repository
	shows Schedules
}

func NewService(repo Repository, shows Schedules) *Service {
	return &Service{repo: repo, shows: shows}
}

func (s *Service) List(ctx context.Context) ([]Artist, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, term string) (SearchResult, error) {
	artists, err := s.repo.Search(ctx, term)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Count: len(artists), Data: artists}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Artist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Detail(ctx context.Context, id int64) (Detail, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	sched, err := s.shows.ForArtist(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Artist: a, Schedule: sched}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Artist, error) {
	if errs := httpx.ValidateStruct(in); errs != nil {
		return Artist{}, errs
	}
	a := in.artist(0)
	if err := s.repo.Create(ctx, &a); err != nil {
		return Artist{}, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Artist, error) {
	if errs := httpx.ValidateStruct(in); errs != nil {
		return Artist{}, errs
	}
	a := in.artist(id)
	if err := s.repo.Update(ctx, &a); err != nil {
		return Artist{}, err
	}
	return a, nil
}
