package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed sqlite_schema.sql
var sqliteSchema string

// OpenSQLite opens a SQLite database with foreign keys enforced. The pool is
// pinned to one connection: every connection to ":memory:" is a separate
// database, and SQLite serializes writers anyway.
func OpenSQLite(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

// MigrateSQLite creates the venue, artist and show tables if they are missing.
func MigrateSQLite(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("load sqlite schema: %w", err)
	}
	return nil
}

// OpenMemory returns a migrated in-memory database, used by tests and by
// DB_DRIVER=sqlite with an empty DSN.
func OpenMemory(ctx context.Context) (*sqlx.DB, error) {
	db, err := OpenSQLite(ctx, ":memory:")
	if err != nil {
		return nil, err
	}
	if err := MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
