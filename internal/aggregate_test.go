package internal

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    Summary
	}{
		{
			name:    "empty",
			entries: nil,
			want:    Summary{Count: 0, TotalMS: 0, AverageMS: 0},
		},
		{
			name: "two entries",
			entries: []Entry{
				{DurationMS: 1000},
				{DurationMS: 3000},
			},
			want: Summary{Count: 2, TotalMS: 4000, AverageMS: 2000},
		},
		{
			name: "average truncates",
			entries: []Entry{
				{DurationMS: 1000},
				{DurationMS: 1000},
				{DurationMS: 1001},
			},
			want: Summary{Count: 3, TotalMS: 3001, AverageMS: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.entries); got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTotalTodayMS(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	midnight := Midnight(now)

	entries := map[int][]Entry{
		1: {
			CreateTestEntry(1, 1, midnight.Add(8*time.Hour), time.Hour, "today"),
			CreateTestEntry(2, 1, midnight.Add(-3*time.Hour), time.Hour, "yesterday"),
		},
		2: {
			CreateTestEntry(3, 2, midnight.Add(time.Minute), 30*time.Minute, "today other workspace"),
		},
	}

	t.Run("no active timer", func(t *testing.T) {
		got := TotalTodayMS(entries, map[int]TimerState{}, 0, now)
		want := (time.Hour + 30*time.Minute).Milliseconds()
		if got != want {
			t.Errorf("TotalTodayMS() = %d, want %d", got, want)
		}
	})

	t.Run("live portion of active timer counts", func(t *testing.T) {
		timers := map[int]TimerState{
			2: {StartTime: now.Add(-20 * time.Minute)},
		}
		got := TotalTodayMS(entries, timers, 2, now)
		want := (time.Hour + 30*time.Minute + 20*time.Minute).Milliseconds()
		if got != want {
			t.Errorf("TotalTodayMS() = %d, want %d", got, want)
		}
	})

	t.Run("running interval started before midnight counts in full", func(t *testing.T) {
		timers := map[int]TimerState{
			1: {StartTime: midnight.Add(-2 * time.Hour)},
		}
		got := TotalTodayMS(entries, timers, 1, now)
		want := (time.Hour + 30*time.Minute + 12*time.Hour).Milliseconds()
		if got != want {
			t.Errorf("TotalTodayMS() = %d, want %d", got, want)
		}
	})

	t.Run("empty everything", func(t *testing.T) {
		if got := TotalTodayMS(nil, nil, 0, now); got != 0 {
			t.Errorf("TotalTodayMS() = %d, want 0", got)
		}
	})
}
