package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the worktimer
// schema for testing.
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS workspaces (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		workspace_id INTEGER NOT NULL,
		start_time INTEGER NOT NULL,
		end_time INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		description TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// InsertWorkspace inserts a workspace row.
func InsertWorkspace(t *testing.T, db *sql.DB, id int, name string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO workspaces (id, name) VALUES (?, ?)", id, name); err != nil {
		t.Fatalf("Failed to insert workspace: %v", err)
	}
}

// InsertEntry inserts an entry row with unix-millisecond timestamps and
// returns its assigned id.
func InsertEntry(t *testing.T, db *sql.DB, workspaceID int, startMS, endMS int64, description string) int64 {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO entries (workspace_id, start_time, end_time, duration_ms, description) VALUES (?, ?, ?, ?, ?)",
		workspaceID, startMS, endMS, endMS-startMS, description)
	if err != nil {
		t.Fatalf("Failed to insert entry: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get entry id: %v", err)
	}
	return id
}

// SetSetting writes a settings row.
func SetSetting(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value); err != nil {
		t.Fatalf("Failed to set setting: %v", err)
	}
}

// CountRows returns the number of rows in a table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
}
