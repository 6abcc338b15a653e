package db

import (
	"database/sql"
	"fmt"
)

// MigrateUp creates the articles table and its index if they do not
// exist. Safe to run on every start.
func MigrateUp(database *sql.DB, kind Kind) error {
	var createTable string
	switch kind {
	case KindPostgres:
		createTable = `
CREATE TABLE IF NOT EXISTS articles (
    id        SERIAL PRIMARY KEY,
    title     TEXT NOT NULL,
    category  TEXT NOT NULL,
    content   TEXT NOT NULL,
    image_url TEXT,
    date      TEXT NOT NULL
)`
	default:
		createTable = `
CREATE TABLE IF NOT EXISTS articles (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    title     TEXT NOT NULL,
    category  TEXT NOT NULL,
    content   TEXT NOT NULL,
    image_url TEXT,
    date      TEXT NOT NULL
)`
	}

	if _, err := database.Exec(createTable); err != nil {
		return fmt.Errorf("create articles table: %w", err)
	}

	// Every collection query orders by date DESC.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
