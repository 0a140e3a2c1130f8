package internal

import "time"

// CreateTestEntry builds an entry with a consistent duration for tests.
func CreateTestEntry(id int64, workspaceID int, start time.Time, d time.Duration, description string) Entry {
	return Entry{
		ID:          id,
		WorkspaceID: workspaceID,
		StartTime:   start,
		EndTime:     start.Add(d),
		DurationMS:  d.Milliseconds(),
		Description: description,
	}
}

// CreateTestEntries builds n back-to-back one-hour entries for a workspace,
// most recent first, ending at the given time.
func CreateTestEntries(workspaceID int, n int, end time.Time) []Entry {
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		start := end.Add(-time.Duration(i+1) * time.Hour)
		entries = append(entries, CreateTestEntry(int64(i+1), workspaceID, start, time.Hour, DefaultDescription))
	}
	return entries
}
