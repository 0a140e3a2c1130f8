package cmd

import (
	"testing"

	"github.com/iksnae/worktimer/internal"
)

func TestSummaryLine(t *testing.T) {
	tests := []struct {
		name    string
		summary internal.Summary
		want    string
	}{
		{
			name:    "empty",
			summary: internal.Summary{},
			want:    "0 entries, total 00:00:00, average 00:00:00",
		},
		{
			name:    "two entries",
			summary: internal.Summary{Count: 2, TotalMS: 4000, AverageMS: 2000},
			want:    "2 entries, total 00:00:04, average 00:00:02",
		},
		{
			name:    "long day",
			summary: internal.Summary{Count: 3, TotalMS: 5400000, AverageMS: 1800000},
			want:    "3 entries, total 01:30:00, average 00:30:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summaryLine(tt.summary); got != tt.want {
				t.Errorf("summaryLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
