package internal

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDescription is recorded when an entry is flushed without one.
const DefaultDescription = "No description"

// Workspace is one of the independent time-tracking buckets. Workspace ids
// are dense and start at 1; ids above the configured count are hidden, never
// deleted.
type Workspace struct {
	ID   int
	Name string
}

// DefaultWorkspaceName returns the name a workspace gets when none was set.
func DefaultWorkspaceName(id int) string {
	return fmt.Sprintf("Workspace %d", id)
}

// Entry is a persisted, completed work interval. Entries are immutable once
// created except for Description.
type Entry struct {
	ID          int64
	WorkspaceID int
	StartTime   time.Time
	EndTime     time.Time
	DurationMS  int64
	Description string
}

// TimerState holds the live state of one workspace's timer. StartTime is
// zero unless the workspace is the active one. AccumulatedMS is time banked
// from previous start/stop cycles that has not yet been flushed into an
// entry; it resets to zero when a stop flushes.
type TimerState struct {
	StartTime     time.Time
	AccumulatedMS int64
}

// Running reports whether the timer is currently accumulating.
func (ts TimerState) Running() bool {
	return !ts.StartTime.IsZero()
}

// ElapsedMS returns the effective elapsed time at now: banked time plus the
// live portion if running.
func (ts TimerState) ElapsedMS(now time.Time) int64 {
	ms := ts.AccumulatedMS
	if ts.Running() {
		ms += now.Sub(ts.StartTime).Milliseconds()
	}
	return ms
}

// ActiveTimer is the persisted form of the single running timer, if any.
type ActiveTimer struct {
	WorkspaceID   int
	StartTime     time.Time
	AccumulatedMS int64
}

// DateRange selects a time window anchored at local midnight.
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// ParseDateRange validates a user-supplied range name.
func ParseDateRange(s string) (DateRange, error) {
	switch DateRange(strings.ToLower(strings.TrimSpace(s))) {
	case RangeAll:
		return RangeAll, nil
	case RangeToday:
		return RangeToday, nil
	case RangeWeek:
		return RangeWeek, nil
	case RangeMonth:
		return RangeMonth, nil
	}
	return "", &ValidationError{Field: "range", Msg: fmt.Sprintf("unknown range %q (valid: all, today, week, month)", s)}
}

// FilterState narrows the entry history for the records view. Workspace 0
// means all workspaces. FilterState is transient and never persisted.
type FilterState struct {
	Workspace int
	Range     DateRange
}

// NormalizeDescription trims a description and substitutes the default when
// nothing is left.
func NormalizeDescription(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDescription
	}
	return s
}
