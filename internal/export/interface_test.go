package export

import (
	"testing"
	"time"

	"github.com/iksnae/worktimer/internal"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{format: "csv", wantExt: "csv"},
		{format: "json", wantExt: "json"},
		{format: "yaml", wantExt: "yaml"},
		{format: "xml", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewExporter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && exporter.Extension() != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", exporter.Extension(), tt.wantExt)
			}
		})
	}
}

func TestBuildRows(t *testing.T) {
	start := time.Date(2024, 3, 10, 14, 30, 5, 0, time.Local)
	entries := []internal.Entry{
		internal.CreateTestEntry(1, 1, start, 45*time.Minute, "standup prep"),
	}

	rows := BuildRows(entries, map[int]string{1: "Team"})
	if len(rows) != 1 {
		t.Fatalf("BuildRows() returned %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.Workspace != "Team" {
		t.Errorf("Workspace = %q", row.Workspace)
	}
	if row.Date != "2024-03-10" {
		t.Errorf("Date = %q", row.Date)
	}
	if row.StartTime != "14:30:05" || row.EndTime != "15:15:05" {
		t.Errorf("times = %q - %q", row.StartTime, row.EndTime)
	}
	if row.Duration != "00:45:00" || row.DurationSeconds != 2700 {
		t.Errorf("duration = %q / %d", row.Duration, row.DurationSeconds)
	}
}
