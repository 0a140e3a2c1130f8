package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/iksnae/worktimer/internal"
)

func TestCSVExporter_Export(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	entry := internal.Entry{
		ID:          1,
		WorkspaceID: 1,
		StartTime:   start,
		EndTime:     start.Add(90 * time.Minute),
		DurationMS:  90 * 60 * 1000,
		Description: `a"b`,
	}
	names := map[int]string{1: "W1"}

	var buf bytes.Buffer
	exporter := &CSVExporter{}
	if err := exporter.Export([]internal.Entry{entry}, names, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Export() wrote %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Workspace,Date,Start Time,End Time,Duration,Duration (seconds),Description" {
		t.Errorf("header = %q", lines[0])
	}
	want := `"W1",2024-01-01,09:00:00,10:30:00,01:30:00,5400,"a""b"`
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestCSVExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	exporter := &CSVExporter{}
	err := exporter.Export(nil, nil, &buf)
	if !errors.Is(err, internal.ErrNoEntries) {
		t.Fatalf("Export() on empty set error = %v, want ErrNoEntries", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Export() on empty set wrote output: %q", buf.String())
	}
}

func TestCSVExporter_SortsDescending(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
	entries := []internal.Entry{
		internal.CreateTestEntry(1, 1, day1, time.Hour, "older"),
		internal.CreateTestEntry(2, 1, day2, time.Hour, "newer"),
		internal.CreateTestEntry(3, 1, day1.Add(2*time.Hour), time.Hour, "older but later"),
	}

	var buf bytes.Buffer
	exporter := &CSVExporter{}
	if err := exporter.Export(entries, nil, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	wantOrder := []string{"newer", "older but later", "older"}
	for i, desc := range wantOrder {
		if !strings.Contains(lines[i+1], desc) {
			t.Errorf("row %d = %q, want entry %q", i+1, lines[i+1], desc)
		}
	}
}

func TestCSVExporter_UnknownWorkspaceNameDefaults(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	entries := []internal.Entry{internal.CreateTestEntry(1, 7, start, time.Hour, "x")}

	var buf bytes.Buffer
	exporter := &CSVExporter{}
	if err := exporter.Export(entries, map[int]string{}, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"Workspace 7"`) {
		t.Errorf("output missing default workspace name:\n%s", buf.String())
	}
}

func TestCSVExporter_Extension(t *testing.T) {
	exporter := &CSVExporter{}
	if got := exporter.Extension(); got != "csv" {
		t.Errorf("CSVExporter.Extension() = %v, want csv", got)
	}
}

func TestQuoteField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: `"plain"`},
		{in: `has "quotes"`, want: `"has ""quotes"""`},
		{in: "has, comma", want: `"has, comma"`},
		{in: "", want: `""`},
	}
	for _, tt := range tests {
		if got := quoteField(tt.in); got != tt.want {
			t.Errorf("quoteField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
