package cursor

import "strings"

// Cursor is an ordered sequence of lines with a mutable position.
type Cursor struct {
	lines []string
	index int
}

// Option configures how New splits text into lines.
type Option func(*options)

type options struct {
	trim bool
}

// WithTrim controls whether each line is trimmed and empty lines dropped.
// The default is true. Layouts where blank lines and exact spacing carry
// structure must pass false.
func WithTrim(trim bool) Option {
	return func(o *options) {
		o.trim = trim
	}
}

// New splits text on line breaks and returns a cursor positioned at line 0.
// A trailing carriage return is always stripped from each line.
func New(text string, opts ...Option) *Cursor {
	o := options{trim: true}
	for _, opt := range opts {
		opt(&o)
	}

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if o.trim {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
		}
		lines = append(lines, line)
	}

	return &Cursor{lines: lines}
}

// FromLines wraps lines that were already split by the caller.
func FromLines(lines []string) *Cursor {
	return &Cursor{lines: lines}
}

// Line returns the line at the current position, or "" when the cursor is
// at or past the end. Check AtEnd first to tell the two apart.
func (c *Cursor) Line() string {
	if c.index < 0 || c.index >= len(c.lines) {
		return ""
	}
	return c.lines[c.index]
}

// AtEnd reports whether the position is at or beyond the last line.
func (c *Cursor) AtEnd() bool {
	return c.index >= len(c.lines)
}

// Advance moves the position forward by n lines (1 when n is omitted).
func (c *Cursor) Advance(n ...int) {
	step := 1
	if len(n) > 0 {
		step = n[0]
	}
	c.index += step
}

// Index returns the current position.
func (c *Cursor) Index() int {
	return c.index
}

// SetIndex jumps to an absolute position.
func (c *Cursor) SetIndex(i int) {
	c.index = i
}

// Len returns the number of lines.
func (c *Cursor) Len() int {
	return len(c.lines)
}

// Peek returns the line at offset relative to the current position.
func (c *Cursor) Peek(offset int) (string, bool) {
	i := c.index + offset
	if i < 0 || i >= len(c.lines) {
		return "", false
	}
	return c.lines[i], true
}

// Rest returns the lines from the current position to the end.
func (c *Cursor) Rest() []string {
	if c.index < 0 || c.index >= len(c.lines) {
		return nil
	}
	return c.lines[c.index:]
}
