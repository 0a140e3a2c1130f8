package internal

import (
	"database/sql"
	"strconv"
	"time"
)

// EntryStore is the durable storage contract the engine depends on. Any
// failed call aborts the action that issued it; the engine leaves its
// in-memory state untouched and surfaces the error.
type EntryStore interface {
	WorkspaceCount() (int, error)
	SetWorkspaceCount(n int) error
	ListWorkspaces() ([]Workspace, error)
	UpsertWorkspace(id int, name string) error

	// ListEntries returns entries ordered by start time descending.
	// workspaceID 0 means all workspaces.
	ListEntries(workspaceID int) ([]Entry, error)
	CreateEntry(e Entry) (int64, error)
	UpdateEntryDescription(entryID int64, description string) error
	DeleteEntry(entryID int64) error
	DeleteAllEntries() error

	// ActiveTimer returns the persisted running timer, or nil if none.
	ActiveTimer() (*ActiveTimer, error)
	SetActiveTimer(t *ActiveTimer) error

	// FlushTimer creates the flushed entry and replaces the persisted
	// active timer (nil clears it) in a single atomic step, so a stop is
	// durably recorded before any subsequent start becomes visible.
	FlushTimer(e Entry, next *ActiveTimer) (int64, error)
}

// SQLiteStore implements EntryStore over a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a store over an already-opened database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const (
	settingWorkspaceCount  = "workspace_count"
	settingActiveWorkspace = "active_workspace"
	settingActiveStart     = "active_start_ms"
	settingActiveBanked    = "active_accumulated_ms"
)

func (s *SQLiteStore) getSetting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "query setting " + key, Err: err}
	}
	return value, true, nil
}

func (s *SQLiteStore) setSetting(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return &StorageError{Op: "write setting " + key, Err: err}
	}
	return nil
}

func (s *SQLiteStore) deleteSetting(key string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return &StorageError{Op: "delete setting " + key, Err: err}
	}
	return nil
}

// WorkspaceCount returns the configured workspace count, defaulting to 1
// when nothing was persisted yet.
func (s *SQLiteStore) WorkspaceCount() (int, error) {
	value, ok, err := s.getSetting(settingWorkspaceCount)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 1, nil
	}
	return n, nil
}

func (s *SQLiteStore) SetWorkspaceCount(n int) error {
	return s.setSetting(settingWorkspaceCount, strconv.Itoa(n))
}

func (s *SQLiteStore) ListWorkspaces() ([]Workspace, error) {
	rows, err := s.db.Query("SELECT id, name FROM workspaces ORDER BY id")
	if err != nil {
		return nil, &StorageError{Op: "query workspaces", Err: err}
	}
	defer rows.Close()

	var workspaces []Workspace
	for rows.Next() {
		var w Workspace
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, &StorageError{Op: "scan workspace", Err: err}
		}
		workspaces = append(workspaces, w)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "iterate workspaces", Err: err}
	}
	return workspaces, nil
}

func (s *SQLiteStore) UpsertWorkspace(id int, name string) error {
	_, err := s.db.Exec(
		"INSERT INTO workspaces (id, name) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name",
		id, name)
	if err != nil {
		return &StorageError{Op: "upsert workspace", Err: err}
	}
	return nil
}

func (s *SQLiteStore) ListEntries(workspaceID int) ([]Entry, error) {
	query := "SELECT id, workspace_id, start_time, end_time, duration_ms, description FROM entries"
	var args []interface{}
	if workspaceID > 0 {
		query += " WHERE workspace_id = ?"
		args = append(args, workspaceID)
	}
	query += " ORDER BY start_time DESC, id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, &StorageError{Op: "query entries", Err: err}
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var startMS, endMS int64
		if err := rows.Scan(&e.ID, &e.WorkspaceID, &startMS, &endMS, &e.DurationMS, &e.Description); err != nil {
			return nil, &StorageError{Op: "scan entry", Err: err}
		}
		e.StartTime = time.UnixMilli(startMS)
		e.EndTime = time.UnixMilli(endMS)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "iterate entries", Err: err}
	}
	return entries, nil
}

func (s *SQLiteStore) CreateEntry(e Entry) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO entries (workspace_id, start_time, end_time, duration_ms, description) VALUES (?, ?, ?, ?, ?)",
		e.WorkspaceID, e.StartTime.UnixMilli(), e.EndTime.UnixMilli(), e.DurationMS, e.Description)
	if err != nil {
		return 0, &StorageError{Op: "create entry", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "entry id", Err: err}
	}
	return id, nil
}

func (s *SQLiteStore) UpdateEntryDescription(entryID int64, description string) error {
	if _, err := s.db.Exec("UPDATE entries SET description = ? WHERE id = ?", description, entryID); err != nil {
		return &StorageError{Op: "update entry", Err: err}
	}
	return nil
}

func (s *SQLiteStore) DeleteEntry(entryID int64) error {
	if _, err := s.db.Exec("DELETE FROM entries WHERE id = ?", entryID); err != nil {
		return &StorageError{Op: "delete entry", Err: err}
	}
	return nil
}

func (s *SQLiteStore) DeleteAllEntries() error {
	if _, err := s.db.Exec("DELETE FROM entries"); err != nil {
		return &StorageError{Op: "delete all entries", Err: err}
	}
	return nil
}

// FlushTimer runs the entry insert and the timer-state replacement in one
// transaction.
func (s *SQLiteStore) FlushTimer(e Entry, next *ActiveTimer) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, &StorageError{Op: "begin flush", Err: err}
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO entries (workspace_id, start_time, end_time, duration_ms, description) VALUES (?, ?, ?, ?, ?)",
		e.WorkspaceID, e.StartTime.UnixMilli(), e.EndTime.UnixMilli(), e.DurationMS, e.Description)
	if err != nil {
		return 0, &StorageError{Op: "create entry", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "entry id", Err: err}
	}

	if _, err := tx.Exec("DELETE FROM settings WHERE key IN (?, ?, ?)",
		settingActiveWorkspace, settingActiveStart, settingActiveBanked); err != nil {
		return 0, &StorageError{Op: "clear timer state", Err: err}
	}
	if next != nil {
		for key, value := range map[string]string{
			settingActiveWorkspace: strconv.Itoa(next.WorkspaceID),
			settingActiveStart:     strconv.FormatInt(next.StartTime.UnixMilli(), 10),
			settingActiveBanked:    strconv.FormatInt(next.AccumulatedMS, 10),
		} {
			if _, err := tx.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
				return 0, &StorageError{Op: "write timer state", Err: err}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &StorageError{Op: "commit flush", Err: err}
	}
	return id, nil
}

// ActiveTimer loads the persisted running timer. A missing or unparsable
// record is treated as no active timer.
func (s *SQLiteStore) ActiveTimer() (*ActiveTimer, error) {
	wsValue, ok, err := s.getSetting(settingActiveWorkspace)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	workspaceID, err := strconv.Atoi(wsValue)
	if err != nil || workspaceID < 1 {
		return nil, nil
	}

	startValue, ok, err := s.getSetting(settingActiveStart)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	startMS, err := strconv.ParseInt(startValue, 10, 64)
	if err != nil {
		return nil, nil
	}

	timer := &ActiveTimer{WorkspaceID: workspaceID, StartTime: time.UnixMilli(startMS)}
	if bankedValue, ok, err := s.getSetting(settingActiveBanked); err != nil {
		return nil, err
	} else if ok {
		if banked, err := strconv.ParseInt(bankedValue, 10, 64); err == nil {
			timer.AccumulatedMS = banked
		}
	}
	return timer, nil
}

// SetActiveTimer persists the running timer; nil clears it.
func (s *SQLiteStore) SetActiveTimer(t *ActiveTimer) error {
	if t == nil {
		for _, key := range []string{settingActiveWorkspace, settingActiveStart, settingActiveBanked} {
			if err := s.deleteSetting(key); err != nil {
				return err
			}
		}
		return nil
	}
	if err := s.setSetting(settingActiveWorkspace, strconv.Itoa(t.WorkspaceID)); err != nil {
		return err
	}
	if err := s.setSetting(settingActiveStart, strconv.FormatInt(t.StartTime.UnixMilli(), 10)); err != nil {
		return err
	}
	return s.setSetting(settingActiveBanked, strconv.FormatInt(t.AccumulatedMS, 10))
}
