package internal

import (
	"errors"
	"fmt"
)

// ErrNoEntries is reported when an export matches zero entries; the export
// produces no output in that case.
var ErrNoEntries = errors.New("no entries to export")

// StorageError represents a failed EntryStore operation. The action that
// triggered it is abandoned with in-memory state unchanged.
type StorageError struct {
	Op  string // "open", "query", "exec", "scan"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ValidationError represents rejected input; nothing is mutated.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// ExportError represents errors during export serialization or writing.
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s]: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
