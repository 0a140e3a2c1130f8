package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/iksnae/worktimer/internal"
)

// Exporter defines the interface for all export formats. Every exporter
// reports internal.ErrNoEntries when there is nothing to export and writes
// nothing in that case.
type Exporter interface {
	Export(entries []internal.Entry, names map[int]string, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "csv":
		return &CSVExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: csv, json, yaml)", format)
	}
}

// Row is one flattened entry ready for serialization. Dates render as
// ISO-8601 and times as HH:MM:SS in the exporting process's local timezone,
// which makes lexicographic ordering agree with chronological ordering.
type Row struct {
	Workspace       string `json:"workspace" yaml:"workspace"`
	Date            string `json:"date" yaml:"date"`
	StartTime       string `json:"start_time" yaml:"start_time"`
	EndTime         string `json:"end_time" yaml:"end_time"`
	Duration        string `json:"duration" yaml:"duration"`
	DurationSeconds int64  `json:"duration_seconds" yaml:"duration_seconds"`
	Description     string `json:"description" yaml:"description"`
}

// BuildRows flattens entries into rows sorted descending by (date, start
// time).
func BuildRows(entries []internal.Entry, names map[int]string) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		name, ok := names[e.WorkspaceID]
		if !ok {
			name = internal.DefaultWorkspaceName(e.WorkspaceID)
		}
		start := e.StartTime.Local()
		end := e.EndTime.Local()
		rows = append(rows, Row{
			Workspace:       name,
			Date:            start.Format("2006-01-02"),
			StartTime:       start.Format("15:04:05"),
			EndTime:         end.Format("15:04:05"),
			Duration:        internal.FormatClockDuration(e.DurationMS),
			DurationSeconds: e.DurationMS / 1000,
			Description:     e.Description,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].StartTime > rows[j].StartTime
	})
	return rows
}
