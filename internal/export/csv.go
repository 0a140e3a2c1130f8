package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/worktimer/internal"
)

// CSVExporter writes the flat tabular format consumed by spreadsheet tools.
// The workspace name and description fields are always quoted with inner
// quotes doubled; date, time and numeric fields are never quoted.
type CSVExporter struct{}

const csvHeader = "Workspace,Date,Start Time,End Time,Duration,Duration (seconds),Description"

// Export writes the header and one line per entry, newest first.
func (x *CSVExporter) Export(entries []internal.Entry, names map[int]string, w io.Writer) error {
	if len(entries) == 0 {
		return internal.ErrNoEntries
	}

	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, row := range BuildRows(entries, names) {
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%d,%s\n",
			quoteField(row.Workspace),
			row.Date,
			row.StartTime,
			row.EndTime,
			row.Duration,
			row.DurationSeconds,
			quoteField(row.Description))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return &internal.ExportError{Format: "csv", Err: err}
	}
	return nil
}

func (x *CSVExporter) Extension() string {
	return "csv"
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
