package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateUp_SQLite(t *testing.T) {
	database, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	require.NoError(t, MigrateUp(database, DriverSQLite))
	// Idempotent: a second run must not fail.
	require.NoError(t, MigrateUp(database, DriverSQLite))

	_, err = database.Exec(`
INSERT INTO summaries (user_id, document_name, summary_text, summary_style, created_at)
VALUES ('user-1', 'doc.txt', 'A short summary.', 'bullet', CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM summaries`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrateUp_UnsupportedDriver(t *testing.T) {
	database, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	err = MigrateUp(database, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestMigrateDown_SQLite(t *testing.T) {
	database, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer func() { _ = database.Close() }()

	require.NoError(t, MigrateUp(database, DriverSQLite))
	require.NoError(t, MigrateDown(database))

	_, err = database.Exec(`SELECT COUNT(*) FROM summaries`)
	assert.Error(t, err, "table must be gone after MigrateDown")
}
