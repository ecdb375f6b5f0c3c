// Package migrations embeds the SQL schema of the cinetrack server
// (PostgreSQL) and of the CLI client token store (SQLite) and applies it
// with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("db is nil")

// Migrate applies the server schema to a PostgreSQL database.
func Migrate(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, "pgx", "postgres")
}

// MigrateClient applies the token store schema to a SQLite database.
func MigrateClient(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, "sqlite3", "sqlite")
}

func migrate(ctx context.Context, db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
