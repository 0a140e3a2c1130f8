package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/worktimer/internal"
)

// JSONExporter writes the row view as pretty-printed JSON.
type JSONExporter struct{}

func (x *JSONExporter) Export(entries []internal.Entry, names map[int]string, w io.Writer) error {
	if len(entries) == 0 {
		return internal.ErrNoEntries
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildRows(entries, names)); err != nil {
		return &internal.ExportError{Format: "json", Err: err}
	}
	return nil
}

func (x *JSONExporter) Extension() string {
	return "json"
}
