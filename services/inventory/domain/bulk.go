package domain

import (
	"fmt"
	"strings"
)

// maxReportedRows caps how many row errors a batch validation report lists.
const maxReportedRows = 10

// MissingColumnsError indicates the import header lacks required columns.
// The whole import fails before any row is examined.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// BatchValidationError indicates one or more rows failed validation.
// The batch is blocked entirely; no writes happen.
type BatchValidationError struct {
	RowErrors []string
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d row(s)", len(e.RowErrors))
}

// Details returns the row error list capped at maxReportedRows, with an
// ellipsis marker appended when more were collected.
func (e *BatchValidationError) Details() []string {
	if len(e.RowErrors) <= maxReportedRows {
		return e.RowErrors
	}
	out := make([]string, 0, maxReportedRows+1)
	out = append(out, e.RowErrors[:maxReportedRows]...)
	return append(out, "...")
}
