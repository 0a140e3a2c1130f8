package internal

import "time"

// ApplyFilter narrows entries by workspace scope and then by date scope.
// Boundaries are anchored at local midnight of now's calendar day: "today"
// keeps entries starting at or after midnight, "week" reaches back seven
// days, "month" one calendar month (see MonthAgo for the overflow rule).
//
// The input is never mutated and its ordering is preserved, so filtering is
// idempotent and the all/all filter is the identity.
func ApplyFilter(entries []Entry, f FilterState, now time.Time) []Entry {
	out := make([]Entry, 0, len(entries))
	cutoff, bounded := rangeCutoff(f.Range, now)
	for _, e := range entries {
		if f.Workspace != 0 && e.WorkspaceID != f.Workspace {
			continue
		}
		if bounded && e.StartTime.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func rangeCutoff(r DateRange, now time.Time) (time.Time, bool) {
	switch r {
	case RangeToday:
		return Midnight(now), true
	case RangeWeek:
		return WeekAgo(now), true
	case RangeMonth:
		return MonthAgo(now), true
	}
	return time.Time{}, false
}
