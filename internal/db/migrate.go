package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the full
// list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Price book: reusable standard cost posts the editor inserts from.
	`CREATE TABLE IF NOT EXISTS price_book_entries (
		id            TEXT PRIMARY KEY,
		code          TEXT NOT NULL DEFAULT '',
		name          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		sfb_code      TEXT NOT NULL DEFAULT '',
		quantity_kind TEXT NOT NULL DEFAULT 'IfcQuantityCount',
		unit_price    REAL NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_price_book_code ON price_book_entries(code) WHERE code != ''`,
	`CREATE INDEX IF NOT EXISTS idx_price_book_name ON price_book_entries(name)`,

	// Recently opened documents.
	`CREATE TABLE IF NOT EXISTS recent_files (
		path           TEXT PRIMARY KEY,
		schedule_name  TEXT NOT NULL DEFAULT '',
		last_opened_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_recent_files_opened ON recent_files(last_opened_at)`,
}
