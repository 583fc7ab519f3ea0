package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps *sql.DB for GoodFoods storage. Schema is owned by the app and
// applied idempotently on Open; callers hold one DB per process and pass it
// explicitly to the executor and tools (no package-level connection).
type DB struct {
	*sql.DB
}

// Open opens the SQLite database at path and applies the schema. Creates the
// file if missing. Foreign keys are enabled via DSN pragma.
func Open(ctx context.Context, path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(15000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	// Migration for databases created before the veg_only column existed.
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pragma_table_info('restaurants') WHERE name='veg_only'").Scan(&count); err == nil && count == 0 {
		if _, err := db.ExecContext(ctx, "ALTER TABLE restaurants ADD COLUMN veg_only INTEGER DEFAULT 0"); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrating schema (restaurants.veg_only): %w", err)
		}
	}

	return &DB{db}, nil
}

// Close closes the database.
func (db *DB) Close() error {
	return db.DB.Close()
}
