package internal

import (
	"sort"
	"time"
)

// Summary holds the reporting statistics for a set of entries.
type Summary struct {
	Count     int
	TotalMS   int64
	AverageMS int64
}

// Summarize computes count, total and average duration over an arbitrary
// entry set. An empty set yields all zeros.
func Summarize(entries []Entry) Summary {
	s := Summary{Count: len(entries)}
	for _, e := range entries {
		s.TotalMS += e.DurationMS
	}
	if s.Count > 0 {
		s.AverageMS = s.TotalMS / int64(s.Count)
	}
	return s
}

// TotalTodayMS sums the durations of every entry that started on now's
// calendar day across all workspaces, plus the live elapsed time of the
// active workspace. The live portion counts whenever a timer is running,
// even if it started before midnight.
func TotalTodayMS(entries map[int][]Entry, timers map[int]TimerState, active int, now time.Time) int64 {
	var total int64
	for _, list := range entries {
		for _, e := range list {
			if SameDay(now, e.StartTime) {
				total += e.DurationMS
			}
		}
	}
	if active != 0 {
		total += timers[active].ElapsedMS(now)
	}
	return total
}

// sortEntriesByStartDesc orders entries most recent first, newest id first
// within the same instant.
func sortEntriesByStartDesc(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].StartTime.Equal(entries[j].StartTime) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].StartTime.After(entries[j].StartTime)
	})
}
