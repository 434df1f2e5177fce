package venue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"fyyur/internal/store"

	"github.com/jmoiron/sqlx"
)

// SQLiteRepo stores venues in SQLite with genres kept as a JSON array.
type SQLiteRepo struct {
	db *sqlx.DB
}

func NewSQLiteRepo(db *sqlx.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

type sqliteRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	City         string `db:"city"`
	State        string `db:"state"`
	Address      string `db:"address"`
	Phone        string `db:"phone"`
	ImageLink    string `db:"image_link"`
	FacebookLink string `db:"facebook_link"`
	Genres       string `db:"genres"`
}

func (row sqliteRow) venue() (Venue, error) {
	genres := []string{}
	if err := json.Unmarshal([]byte(row.Genres), &genres); err != nil {
		return Venue{}, fmt.Errorf("decode genres of venue %d: %w", row.ID, err)
	}
	return Venue{
		ID:           row.ID,
		Name:         row.Name,
		City:         row.City,
		State:        row.State,
		Address:      row.Address,
		Phone:        row.Phone,
		ImageLink:    row.ImageLink,
		FacebookLink: row.FacebookLink,
		Genres:       genres,
	}, nil
}

func toSQLiteRow(v Venue) (sqliteRow, error) {
	genres := v.Genres
	if genres == nil {
		genres = []string{}
	}
	b, err := json.Marshal(genres)
	if err != nil {
		return sqliteRow{}, fmt.Errorf("encode genres: %w", err)
	}
	return sqliteRow{
		ID:           v.ID,
		Name:         v.Name,
		City:         v.City,
		State:        v.State,
		Address:      v.Address,
		Phone:        v.Phone,
		ImageLink:    v.ImageLink,
		FacebookLink: v.FacebookLink,
		Genres:       string(b),
	}, nil
}

func (r *SQLiteRepo) List(ctx context.Context) ([]Venue, error) {
	const query = `SELECT ` + venueColumns + ` FROM venues ORDER BY state, city, name, id`
	return r.list(ctx, query)
}

func (r *SQLiteRepo) Search(ctx context.Context, term string) ([]Venue, error) {
	const query = `SELECT ` + venueColumns + ` FROM venues WHERE name LIKE ? ESCAPE '\' ORDER BY name, id`
	return r.list(ctx, query, store.LikePattern(term))
}

func (r *SQLiteRepo) list(ctx context.Context, query string, args ...any) ([]Venue, error) {
	var rows []sqliteRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, store.Classify(err)
	}
	venues := make([]Venue, 0, len(rows))
	for _, row := range rows {
		v, err := row.venue()
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, nil
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (Venue, error) {
	var row sqliteRow
	err := r.db.GetContext(ctx, &row, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Venue{}, ErrNotFound
		}
		return Venue{}, store.Classify(err)
	}
	return row.venue()
}

func (r *SQLiteRepo) Create(ctx context.Context, v *Venue) error {
	row, err := toSQLiteRow(*v)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link, genres)
		VALUES (:name, :city, :state, :address, :phone, :image_link, :facebook_link, :genres)`, row)
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
	v.ID = id
	return nil
}

func (r *SQLiteRepo) Update(ctx context.Context, v *Venue) error {
	row, err := toSQLiteRow(*v)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, `
		UPDATE venues
		SET name = :name, city = :city, state = :state, address = :address, phone = :phone,
		    image_link = :image_link, facebook_link = :facebook_link, genres = :genres
		WHERE id = :id`, row)
	if err != nil {
		return store.Classify(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return store.Classify(err)
	} else if n == 0 {
		return ErrNotFound
	}
	return store.Classify(tx.Commit())
}

func (r *SQLiteRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return store.Classify(err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
	if err != nil {
		return store.Classify(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return store.Classify(err)
	} else if n == 0 {
		return ErrNotFound
	}
	return store.Classify(tx.Commit())
}
