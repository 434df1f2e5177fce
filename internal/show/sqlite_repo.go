package show

import (
	"context"

	"fyyur/internal/store"

	"github.com/jmoiron/sqlx"
)

// SQLiteRepo stores shows in SQLite. Start times are written in UTC so that
// the text ordering of the column matches time ordering.
type SQLiteRepo struct {
	db *sqlx.DB
}

func NewSQLiteRepo(db *sqlx.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

func (r *SQLiteRepo) List(ctx context.Context) ([]Show, error) {
	const query = `SELECT id, venue_id, artist_id, start_time FROM shows ORDER BY start_time, id`
	return r.list(ctx, query)
}

func (r *SQLiteRepo) ListByVenue(ctx context.Context, venueID int64) ([]Show, error) {
	const query = `SELECT id, venue_id, artist_id, start_time FROM shows WHERE venue_id = ? ORDER BY start_time, id`
	return r.list(ctx, query, venueID)
}

func (r *SQLiteRepo) ListByArtist(ctx context.Context, artistID int64) ([]Show, error) {
	const query = `SELECT id, venue_id, artist_id, start_time FROM shows WHERE artist_id = ? ORDER BY start_time, id`
	return r.list(ctx, query, artistID)
}

func (r *SQLiteRepo) list(ctx context.Context, query string, args ...any) ([]Show, error) {
	shows := []Show{}
	if err := r.db.SelectContext(ctx, &shows, query, args...); err != nil {
		return nil, store.Classify(err)
	}
	return shows, nil
}

func (r *SQLiteRepo) Create(ctx context.Context, s *Show) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback()

	row := Show{VenueID: s.VenueID, ArtistID: s.ArtistID, StartTime: s.StartTime.UTC()}
	res, err := tx.NamedExecContext(ctx,
		`INSERT INTO shows (venue_id, artist_id, start_time) VALUES (:venue_id, :artist_id, :start_time)`, row)
	if err != nil {
		return store.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return store.Classify(err)
	}
	if err := tx.Commit(); err != nil {
		return store.Classify(err)
	}
	s.ID = id
	return nil
}
