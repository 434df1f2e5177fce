package venue

import (
	"context"
	"errors"
	"time"

	"fyyur/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link, genres`

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

func (r *PostgresRepo) List(ctx context.Context) ([]Venue, error) {
	const query = `SELECT ` + venueColumns + ` FROM venues ORDER BY state, city, name, id`
	return r.list(ctx, query)
}

func (r *PostgresRepo) Search(ctx context.Context, term string) ([]Venue, error) {
	const query = `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY name, id`
	return r.list(ctx, query, store.LikePattern(term))
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Venue, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, store.Classify(err)
	}
	venues, err := pgx.CollectRows(rows, pgx.RowToStructByName[Venue])
	if err != nil {
		return nil, store.Classify(err)
	}
	return venues, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Venue, error) {
	const query = `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, id)
	if err != nil {
		return Venue{}, store.Classify(err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Venue])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Venue{}, ErrNotFound
		}
		return Venue{}, store.Classify(err)
	}
	return v, nil
}

func (r *PostgresRepo) Create(ctx context.Context, v *Venue) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback(timeoutCtx)

	const query = `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, genres)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err = tx.QueryRow(timeoutCtx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink, v.Genres,
	).Scan(&v.ID)
	if err != nil {
		return store.Classify(err)
	}
	return store.Classify(tx.Commit(timeoutCtx))
}

func (r *PostgresRepo) Update(ctx context.Context, v *Venue) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback(timeoutCtx)

	const query = `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6,
		    image_link = $7, facebook_link = $8, genres = $9, updated_at = now()
		WHERE id = $1`
	tag, err := tx.Exec(timeoutCtx, query,
		v.ID, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink, v.Genres,
	)
	if err != nil {
		return store.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return store.Classify(tx.Commit(timeoutCtx))
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback(timeoutCtx)

	tag, err := tx.Exec(timeoutCtx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return store.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return store.Classify(tx.Commit(timeoutCtx))
}
