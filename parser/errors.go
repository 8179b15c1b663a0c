package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for parse operations.
var (
	// ErrBadDescription indicates the strength/level line never appeared.
	ErrBadDescription = errors.New("bad monster description block format")

	// ErrBadDefenses indicates the defenses block is missing or incomplete.
	ErrBadDefenses = errors.New("bad monster defenses block format")

	// ErrUnknownLine indicates a line matched no known shape.
	ErrUnknownLine = errors.New("unknown statblock line")

	// ErrUnknownDialect indicates an unrecognized dialect name.
	ErrUnknownDialect = errors.New("unknown dialect")

	// ErrUnknownSection indicates an unrecognized section name.
	ErrUnknownSection = errors.New("unknown section")
)

// Cause classifies a LineError.
type Cause string

// Line error causes.
const (
	CauseUnknownLine Cause = "unknown_line"
)

// LineError reports a line the parser could not classify.
type LineError struct {
	Cause Cause  // Machine-checkable cause code
	Line  string // Offending line
	Index int    // Position of the line in the parsed input
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("%s at line %d: %q", e.Cause, e.Index+1, e.Line)
}

// Unwrap maps the cause to its sentinel for errors.Is support.
func (e *LineError) Unwrap() error {
	if e.Cause == CauseUnknownLine {
		return ErrUnknownLine
	}
	return nil
}

// IsFatal reports whether err aborted a parse because a required section
// was missing.
func IsFatal(err error) bool {
	return errors.Is(err, ErrBadDescription) || errors.Is(err, ErrBadDefenses)
}
