package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint is returned when the store rejects a write because of an
	// integrity constraint (foreign key, unique, not null, check).
	ErrConstraint = errors.New("constraint violation")
	// ErrUnavailable covers every other store failure: connectivity,
	// timeouts, cancelled queries and unexpected driver errors.
	ErrUnavailable = errors.New("store unavailable")
)

// Postgres reports integrity violations with SQLSTATE class 23.
const postgresIntegrityClass = "23"

// Classify maps a driver error onto one of the store error kinds. Errors that
// already carry a kind are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraint) || errors.Is(err, ErrUnavailable) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, postgresIntegrityClass) {
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}

	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern turns a search term into a substring pattern for LIKE/ILIKE
// with ESCAPE '\'. Wildcards in term match literally; whitespace is kept.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
