package db

import (
	"database/sql"
	"fmt"
)

// MigrateUp creates the summaries table and its indexes for the given
// driver. Statements are idempotent so startup can always run this.
func MigrateUp(db *sql.DB, driver string) error {
	switch driver {
	case DriverPostgres:
		return migratePostgres(db)
	case DriverSQLite:
		return migrateSQLite(db)
	default:
		return fmt.Errorf("MigrateUp: unsupported driver %q", driver)
	}
}

func migratePostgres(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS summaries (
    id                      BIGSERIAL PRIMARY KEY,
    user_id                 TEXT NOT NULL,
    document_name           TEXT NOT NULL,
    document_type           TEXT NOT NULL DEFAULT '',
    original_excerpt        TEXT NOT NULL DEFAULT '',
    summary_text            TEXT NOT NULL,
    summary_style           VARCHAR(20) NOT NULL,
    quality_score           INTEGER,
    created_at              TIMESTAMPTZ NOT NULL DEFAULT now(),
    file_size_bytes         BIGINT,
    processing_time_seconds DOUBLE PRECISION,
    source_word_count       INTEGER,
    summary_word_count      INTEGER
)`); err != nil {
		return err
	}

	indexes := []string{
		// History and recent listings scan by owner, newest first.
		`CREATE INDEX IF NOT EXISTS idx_summaries_user_created ON summaries(user_id, created_at DESC)`,
		// Favorite-style aggregation groups by style per owner.
		`CREATE INDEX IF NOT EXISTS idx_summaries_user_style ON summaries(user_id, summary_style)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE search paths. Ignore errors: the
	// extension may already exist or require superuser rights.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)

	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_summaries_doc_name_gin ON summaries USING gin(document_name gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_text_gin ON summaries USING gin(summary_text gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// Fails without pg_trgm; the search still works, just slower.
		_, _ = db.Exec(idx)
	}

	return nil
}

func migrateSQLite(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS summaries (
    id                      INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id                 TEXT NOT NULL,
    document_name           TEXT NOT NULL,
    document_type           TEXT NOT NULL DEFAULT '',
    original_excerpt        TEXT NOT NULL DEFAULT '',
    summary_text            TEXT NOT NULL,
    summary_style           TEXT NOT NULL,
    quality_score           INTEGER,
    created_at              TIMESTAMP NOT NULL,
    file_size_bytes         INTEGER,
    processing_time_seconds REAL,
    source_word_count       INTEGER,
    summary_word_count      INTEGER
)`); err != nil {
		return err
	}

	if _, err := db.Exec(
		`CREATE INDEX IF NOT EXISTS idx_summaries_user_created ON summaries(user_id, created_at DESC)`,
	); err != nil {
		return err
	}

	return nil
}

// MigrateDown removes the summaries table and its indexes.
// Use with caution: this deletes all stored summaries.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_summaries_doc_name_gin`,
		`DROP INDEX IF EXISTS idx_summaries_text_gin`,
		`DROP INDEX IF EXISTS idx_summaries_user_style`,
		`DROP INDEX IF EXISTS idx_summaries_user_created`,
		`DROP TABLE IF EXISTS summaries`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
