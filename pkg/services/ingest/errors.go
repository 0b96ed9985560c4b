package ingest

import (
	"errors"
	"fmt"
)

var (
	errMissingCell = errors.New("cell is missing")
	errEmptyCell   = errors.New("cell is empty")
	errNotFinite   = errors.New("value is not finite")
	errNegative    = errors.New("value is negative")
)

// MalformedRecordError reports a data row that failed validation. Row is the
// 1-based index of the data row in the source table, headers excluded.
type MalformedRecordError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("row %d: field %q: malformed value %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// InvalidTimestampError reports a timestamp cell that did not parse with the
// configured layout.
type InvalidTimestampError struct {
	Row    int
	Value  string
	Layout string
	Err    error
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("row %d: timestamp %q does not match layout %q", e.Row, e.Value, e.Layout)
}

func (e *InvalidTimestampError) Unwrap() error { return e.Err }
