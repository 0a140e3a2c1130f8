package internal

import (
	"testing"
	"time"
)

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "code review", want: "code review"},
		{name: "trimmed", in: "  fix bug  ", want: "fix bug"},
		{name: "empty defaults", in: "", want: DefaultDescription},
		{name: "whitespace defaults", in: "   \t ", want: DefaultDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDescription(tt.in); got != tt.want {
				t.Errorf("NormalizeDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultWorkspaceName(t *testing.T) {
	if got := DefaultWorkspaceName(3); got != "Workspace 3" {
		t.Errorf("DefaultWorkspaceName(3) = %q, want %q", got, "Workspace 3")
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		in      string
		want    DateRange
		wantErr bool
	}{
		{in: "all", want: RangeAll},
		{in: "today", want: RangeToday},
		{in: "week", want: RangeWeek},
		{in: "month", want: RangeMonth},
		{in: " Week ", want: RangeWeek},
		{in: "yesterday", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDateRange(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDateRange(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimerStateElapsedMS(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	now := start.Add(30 * time.Minute)

	stopped := TimerState{AccumulatedMS: 1000}
	if got := stopped.ElapsedMS(now); got != 1000 {
		t.Errorf("stopped ElapsedMS = %d, want 1000", got)
	}
	if stopped.Running() {
		t.Error("stopped timer reports Running()")
	}

	running := TimerState{StartTime: start, AccumulatedMS: 1000}
	if got := running.ElapsedMS(now); got != 1000+30*60*1000 {
		t.Errorf("running ElapsedMS = %d, want %d", got, 1000+30*60*1000)
	}
	if !running.Running() {
		t.Error("running timer does not report Running()")
	}
}
