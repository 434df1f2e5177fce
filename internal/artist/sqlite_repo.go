package artist

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"fyyur/internal/store"

	"github.com/jmoiron/sqlx"
)

type SQLiteRepo struct {
	db *sqlx.DB
}

func NewSQLiteRepo(db *sqlx.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

// sqliteRow mirrors Artist with genres as JSON text.
type sqliteRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	City         string `db:"city"`
	State        string `db:"state"`
	Phone        string `db:"phone"`
	Genres       string `db:"genres"`
	ImageLink    string `db:"image_link"`
	FacebookLink string `db:"facebook_link"`
}

func (row sqliteRow) artist() (Artist, error) {
	genres := []string{}
	if err := json.Unmarshal([]byte(row.Genres), &genres); err != nil {
		return Artist{}, fmt.Errorf("decode genres of artist %d: %w", row.ID, err)
	}
	return Artist{
		ID:           row.ID,
		Name:         row.Name,
		City:         row.City,
		State:        row.State,
		Phone:        row.Phone,
		Genres:       genres,
		ImageLink:    row.ImageLink,
		FacebookLink: row.FacebookLink,
	}, nil
}

func toSQLiteRow(a Artist) (sqliteRow, error) {
	genres := a.Genres
	if genres == nil {
		genres = []string{}
	}
	b, err := json.Marshal(genres)
	if err != nil {
		return sqliteRow{}, fmt.Errorf("encode genres: %w", err)
	}
	return sqliteRow{
		ID:           a.ID,
		Name:         a.Name,
		City:         a.City,
		State:        a.State,
		Phone:        a.Phone,
		Genres:       string(b),
		ImageLink:    a.ImageLink,
		FacebookLink: a.FacebookLink,
	}, nil
}

func (r *SQLiteRepo) List(ctx context.Context) ([]Artist, error) {
	return r.list(ctx, `SELECT `+artistColumns+` FROM artists ORDER BY name, id`)
}

func (r *SQLiteRepo) Search(ctx context.Context, term string) ([]Artist, error) {
	const query = `SELECT ` + artistColumns + ` FROM artists WHERE name LIKE ? ESCAPE '\' ORDER BY name, id`
	return r.list(ctx, query, store.LikePattern(term))
}

func (r *SQLiteRepo) list(ctx context.Context, query string, args ...any) ([]Artist, error) {
	var rows []sqliteRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, store.Classify(err)
	}
	artists := make([]Artist, 0, len(rows))
	for _, row := range rows {
		a, err := row.artist()
		if err != nil {
			return nil, err
		}
		artists = append(artists, a)
	}
	return artists, nil
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (Artist, error) {
	var row sqliteRow
	err := r.db.GetContext(ctx, &row, `SELECT `+artistColumns+` FROM artists WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, ErrNotFound
		}
		return Artist{}, store.Classify(err)
	}
	return row.artist()
}

func (r *SQLiteRepo) Create(ctx context.Context, a *Artist) error {
	row, err := toSQLiteRow(*a)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link)
		VALUES (:name, :city, :state, :phone, :genres, :image_link, :facebook_link)`, row)
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
	a.ID = id
	return nil
}

func (r *SQLiteRepo) Update(ctx context.Context, a *Artist) error {
	row, err := toSQLiteRow(*a)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, `
		UPDATE artists
		SET name = :name, city = :city, state = :state, phone = :phone, genres = :genres,
		    image_link = :image_link, facebook_link = :facebook_link
		WHERE id = :id`, row)
	if err != nil {
		return store.Classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return store.Classify(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return store.Classify(tx.Commit())
}
