package motion

import (
	"errors"
	"fmt"
)

// LoadError is a fatal, whole-file failure: the source cannot be opened
// or is not usable as a motion file at all. Nothing is produced and no
// downstream mutation happens.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("motion file %s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("motion file %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ColumnError is a per-column failure: one joint's track is rejected
// while the rest of the file loads normally. Row is the 0-based data row
// (header excluded) where loading stopped, or -1 when the failure is not
// tied to a row (e.g. a duplicate header).
type ColumnError struct {
	Column  string
	Row     int
	Message string
}

// Error implements the error interface.
func (e *ColumnError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("column %q: %s", e.Column, e.Message)
	}
	return fmt.Sprintf("column %q row %d: %s", e.Column, e.Row, e.Message)
}

// IsColumnError reports whether err is a per-column load failure.
// Uses errors.As to handle wrapped errors.
func IsColumnError(err error) bool {
	var ce *ColumnError
	return errors.As(err, &ce)
}
