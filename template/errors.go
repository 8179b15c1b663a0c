package template

import "errors"

// Sentinel errors for rendering. Parse and execute failures wrap the
// text/template error after the sentinel.
var (
	ErrEmpty    = errors.New("empty statblock template")
	ErrParse    = errors.New("statblock template does not parse")
	ErrExecute  = errors.New("statblock template failed to render")
	ErrVariable = errors.New("statblock template references missing field")
)
