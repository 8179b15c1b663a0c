package writer

import (
	"errors"
	"fmt"
)

// Sentinel errors for writer operations.
var (
	// ErrUnknownFormat indicates the requested format is not registered.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrNilStatblock indicates Write was called without a record.
	ErrNilStatblock = errors.New("nil statblock")
)

// Error wraps a writer failure with the format and operation.
type Error struct {
	Format string // Format name ("yaml", "latex", "foundry")
	Op     string // Operation that failed ("create", "write")
	Err    error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Format, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WriteError wraps err as a write failure of format. It returns nil for a
// nil err.
func WriteError(format string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Format: format, Op: "write", Err: err}
}
