// Package db holds the Postgres schema migrations.
package db

import "embed"

// Migrations contains the goose migration files under "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS
