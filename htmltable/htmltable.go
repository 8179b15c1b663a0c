package htmltable

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrEmpty is returned when a fragment holds no text.
var ErrEmpty = errors.New("html fragment has no text")

var (
	newlines    = regexp.MustCompile(`\r?\n`)
	interTag    = regexp.MustCompile(`>\s+<`)
	italicOpen  = regexp.MustCompile(`(?is)<(?:i|em)(?:\s[^>]*)?>\s*`)
	italicClose = regexp.MustCompile(`(?is)\s*</(?:i|em)>`)
)

// breaks are the elements whose start or end begins a new line.
var breaks = map[atom.Atom]bool{
	atom.Table: true, atom.Tr: true, atom.Td: true, atom.Th: true,
	atom.P: true, atom.Br: true, atom.Div: true, atom.Li: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// Normalize collapses newlines to spaces, removes whitespace between tags
// and rewrites italic markup to "_text_".
func Normalize(fragment string) string {
	s := newlines.ReplaceAllString(fragment, " ")
	s = interTag.ReplaceAllString(s, "><")
	// Whitespace removal can glue an italic run to the preceding word.
	s = italicOpen.ReplaceAllString(s, " _")
	s = italicClose.ReplaceAllString(s, "_")
	return s
}

// Lines normalizes fragment and returns the text of each cell, paragraph or
// line break separated run. Entities are decoded and runs of whitespace
// collapse to a single space.
func Lines(fragment string) ([]string, error) {
	z := html.NewTokenizer(strings.NewReader(Normalize(fragment)))

	var (
		lines   []string
		current strings.Builder
	)
	flush := func() {
		line := strings.Join(strings.Fields(current.String()), " ")
		if line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("tokenize html: %w", err)
			}
			flush()
			if len(lines) == 0 {
				return nil, ErrEmpty
			}
			return lines, nil

		case html.TextToken:
			current.Write(z.Text())

		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if breaks[atom.Lookup(name)] {
				flush()
			}
		}
	}
}
