package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// OpenDB acquires the store connection pool. Called once at startup; a
// failure here is fatal and must terminate the process before it accepts
// connections.
func OpenDB(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates the schema when it does not exist yet. District ids use
// AUTOINCREMENT so they are monotonically assigned and never reused within a
// store lifetime, even after deletions.
func Migrate(ctx context.Context, db *bun.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS state (
			state_id INTEGER PRIMARY KEY,
			state_name TEXT NOT NULL,
			population INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS district (
			district_id INTEGER PRIMARY KEY AUTOINCREMENT,
			district_name TEXT NOT NULL,
			state_id INTEGER NOT NULL,
			cases INTEGER NOT NULL DEFAULT 0,
			cured INTEGER NOT NULL DEFAULT 0,
			active INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	return nil
}
