// Package prompt collects a statblock section by section from pasted text.
//
// A Session accumulates one record across several parse calls. A Prompter
// drives a Session over a reader/writer pair, asking for each section in
// statblock order:
//
//	s := prompt.NewSession(parser.New(parser.PDF))
//	sb, err := prompt.NewPrompter(s, os.Stdin, os.Stdout).Run(ctx)
//
// Sessions are not safe for concurrent use.
package prompt

import (
	"fmt"

	"github.com/randalmurphal/statkit/parser"
	"github.com/randalmurphal/statkit/statblock"
)

// Session accumulates the sections of one statblock.
type Session struct {
	parser  *parser.Parser
	record  *statblock.Statblock
	applied map[parser.Section]bool
}

// NewSession creates an empty session parsing with p.
func NewSession(p *parser.Parser) *Session {
	return &Session{
		parser:  p,
		record:  statblock.New(),
		applied: make(map[parser.Section]bool),
	}
}

// Apply parses text as the given section and merges the result into the
// record. A failed parse leaves the record unchanged.
func (s *Session) Apply(section parser.Section, text string) error {
	partial, err := s.parser.ParseSection(section, text)
	if err != nil {
		return fmt.Errorf("parse %s: %w", section, err)
	}
	s.record.Merge(partial)
	s.applied[section] = true
	return nil
}

// Applied reports whether section has been merged successfully.
func (s *Session) Applied(section parser.Section) bool {
	return s.applied[section]
}

// Record returns the accumulated statblock.
func (s *Session) Record() *statblock.Statblock {
	return s.record
}

// Reset discards everything merged so far.
func (s *Session) Reset() {
	s.record = statblock.New()
	s.applied = make(map[parser.Section]bool)
}
