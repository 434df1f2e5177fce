package show

import (
	"context"
	"time"

	"fyyur/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context) ([]Show, error) {
	const query = `
		SELECT id, venue_id, artist_id, start_time
		FROM shows
		ORDER BY start_time, id`
	return r.list(ctx, query)
}

func (r *PostgresRepo) ListByVenue(ctx context.Context, venueID int64) ([]Show, error) {
	const query = `
		SELECT id, venue_id, artist_id, start_time
		FROM shows
		WHERE venue_id = $1
		ORDER BY start_time, id`
	return r.list(ctx, query, venueID)
}

func (r *PostgresRepo) ListByArtist(ctx context.Context, artistID int64) ([]Show, error) {
	const query = `
		SELECT id, venue_id, artist_id, start_time
		FROM shows
		WHERE artist_id = $1
		ORDER BY start_time, id`
	return r.list(ctx, query, artistID)
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Show, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, store.Classify(err)
	}
	shows, err := pgx.CollectRows(rows, pgx.RowToStructByName[Show])
	if err != nil {
		return nil, store.Classify(err)
	}
	return shows, nil
}

func (r *PostgresRepo) Create(ctx context.Context, s *Show) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback(timeoutCtx)

	const query = `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := tx.QueryRow(timeoutCtx, query, s.VenueID, s.ArtistID, s.StartTime).Scan(&s.ID); err != nil {
		return store.Classify(err)
	}
	return store.Classify(tx.Commit(timeoutCtx))
}
