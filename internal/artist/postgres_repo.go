package artist

import (
	"context"
	"errors"
	"time"

	"fyyur/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link`

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

func (r *PostgresRepo) List(ctx context.Context) ([]Artist, error) {
	return r.list(ctx, `SELECT `+artistColumns+` FROM artists ORDER BY name, id`)
}

func (r *PostgresRepo) Search(ctx context.Context, term string) ([]Artist, error) {
	const query = `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY name, id`
	return r.list(ctx, query, store.LikePattern(term))
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Artist, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, store.Classify(err)
	}
	artists, err := pgx.CollectRows(rows, pgx.RowToStructByName[Artist])
	if err != nil {
		return nil, store.Classify(err)
	}
	return artists, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Artist, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, `SELECT `+artistColumns+` FROM artists WHERE id = $1`, id)
	if err != nil {
		return Artist{}, store.Classify(err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Artist])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Artist{}, ErrNotFound
		}
		return Artist{}, store.Classify(err)
	}
	return a, nil
}

func (r *PostgresRepo) Create(ctx context.Context, a *Artist) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback(timeoutCtx)

	const query = `
		INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err = tx.QueryRow(timeoutCtx, query,
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink, a.FacebookLink,
	).Scan(&a.ID)
	if err != nil {
		return store.Classify(err)
	}
	return store.Classify(tx.Commit(timeoutCtx))
}

func (r *PostgresRepo) Update(ctx context.Context, a *Artist) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback(timeoutCtx)

	const query = `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, genres = $6,
		    image_link = $7, facebook_link = $8, updated_at = now()
		WHERE id = $1`
	tag, err := tx.Exec(timeoutCtx, query,
		a.ID, a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink, a.FacebookLink,
	)
	if err != nil {
		return store.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return store.Classify(tx.Commit(timeoutCtx))
}
