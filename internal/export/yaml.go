package export

import (
	"io"

	"github.com/iksnae/worktimer/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the row view as a YAML document.
type YAMLExporter struct{}

func (x *YAMLExporter) Export(entries []internal.Entry, names map[int]string, w io.Writer) error {
	if len(entries) == 0 {
		return internal.ErrNoEntries
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(BuildRows(entries, names)); err != nil {
		return &internal.ExportError{Format: "yaml", Err: err}
	}
	return nil
}

func (x *YAMLExporter) Extension() string {
	return "yaml"
}
