package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/statkit/cursor"
	"github.com/randalmurphal/statkit/pattern"
	"github.com/randalmurphal/statkit/statblock"
)

// Dialect selects the input layout a Parser understands.
type Dialect int

const (
	// PDF is text pasted from the rulebook PDFs.
	PDF Dialect = iota

	// SRD is plain text copied from a rendered SRD table.
	SRD

	// SRDHTML is an HTML fragment of an SRD monster table.
	SRDHTML
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case PDF:
		return "pdf"
	case SRD:
		return "srd"
	case SRDHTML:
		return "html"
	default:
		return "unknown"
	}
}

// ParseDialect converts a dialect name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pdf", "":
		return PDF, nil
	case "srd", "srd-plain", "plain":
		return SRD, nil
	case "html", "srd-html":
		return SRDHTML, nil
	default:
		return PDF, fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}
}

// offsetStrategy says how the sections after the description are found.
type offsetStrategy int

const (
	// scanFromStart discovers every section by scanning from line 0.
	scanFromStart offsetStrategy = iota

	// fixedInitiative seeks directly to a known initiative line.
	fixedInitiative
)

// srdInitiativeIndex is the line holding "Initiative: +N" in SRD plain text:
// name on line 0, strength on line 1.
const srdInitiativeIndex = 2

// srdBlockSeparator is the sentinel line between SRD plain sections.
const srdBlockSeparator = "\t"

// dialectConfig is the per-dialect parameterization of the shared parser.
type dialectConfig struct {
	grammar *pattern.Grammar

	// trim is passed to cursor.WithTrim.
	trim bool

	// join separates follow-up text appended to a description.
	join string

	offset          offsetStrategy
	initiativeIndex int
}

var dialects = map[Dialect]dialectConfig{
	PDF: {
		grammar: pattern.PDF,
		trim:    true,
		join:    " ",
		offset:  scanFromStart,
	},
	SRD: {
		grammar:         pattern.SRD,
		trim:            false,
		join:            "<br>",
		offset:          fixedInitiative,
		initiativeIndex: srdInitiativeIndex,
	},
	SRDHTML: {
		grammar: pattern.SRDHTML,
		trim:    true,
		join:    " ",
		offset:  scanFromStart,
	},
}

// Parser extracts statblock records from pasted text in one dialect.
type Parser struct {
	dialect Dialect
	cfg     dialectConfig
	logger  *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for recovery diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a parser for the given dialect. Unknown dialects fall back
// to PDF.
func New(dialect Dialect, opts ...Option) *Parser {
	cfg, ok := dialects[dialect]
	if !ok {
		dialect = PDF
		cfg = dialects[PDF]
	}
	p := &Parser{
		dialect: dialect,
		cfg:     cfg,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Grammar returns the pattern catalog the parser matches against.
func (p *Parser) Grammar() *pattern.Grammar {
	return p.cfg.grammar
}

// Parse reads a complete statblock in the parser's dialect.
func (p *Parser) Parse(text string) (*statblock.Statblock, error) {
	switch p.dialect {
	case SRD:
		return p.parseSRD(text)
	case SRDHTML:
		return p.parseHTML(text)
	default:
		return p.parseFull(text)
	}
}

// ParseDescription reads the name, flavor text, strength/level line,
// initiative and vulnerability.
func (p *Parser) ParseDescription(text string) (*statblock.Statblock, error) {
	sb := statblock.New()
	if err := p.readDescription(p.newCursor(text), sb); err != nil {
		return nil, err
	}
	return sb, nil
}

// ParseAttacks reads an attack section. Traits that follow an attack nest
// under it; traits before the first attack are top level.
func (p *Parser) ParseAttacks(text string) (*statblock.Statblock, error) {
	sb := statblock.New()
	p.readAttacks(p.newCursor(text), sb)
	return sb, nil
}

// ParseTraits reads a trait section, including triggered attacks and an
// optional trailing "Nastier Specials" section.
func (p *Parser) ParseTraits(text string) (*statblock.Statblock, error) {
	sb := statblock.New()
	p.readTraits(p.newCursor(text), sb, false)
	return sb, nil
}

// ParseNastierTraits reads a "Nastier Specials" section. The header line is
// optional.
func (p *Parser) ParseNastierTraits(text string) (*statblock.Statblock, error) {
	sb := statblock.New()
	p.readTraits(p.newCursor(text), sb, true)
	return sb, nil
}

// ParseDefenses reads AC, PD, MD and HP. All four are required.
func (p *Parser) ParseDefenses(text string) (*statblock.Statblock, error) {
	sb := statblock.New()
	if err := p.readDefenses(p.newCursor(text).Rest(), sb); err != nil {
		return nil, err
	}
	return sb, nil
}

func (p *Parser) newCursor(text string) *cursor.Cursor {
	return cursor.New(text, cursor.WithTrim(p.cfg.trim))
}

// ParseDescription parses a PDF description section.
func ParseDescription(text string) (*statblock.Statblock, error) {
	return New(PDF).ParseDescription(text)
}

// ParseAttacks parses a PDF attack section.
func ParseAttacks(text string) (*statblock.Statblock, error) {
	return New(PDF).ParseAttacks(text)
}

// ParseTraits parses a PDF trait section.
func ParseTraits(text string) (*statblock.Statblock, error) {
	return New(PDF).ParseTraits(text)
}

// ParseNastierTraits parses a PDF nastier specials section.
func ParseNastierTraits(text string) (*statblock.Statblock, error) {
	return New(PDF).ParseNastierTraits(text)
}

// ParseDefenses parses a PDF defenses section.
func ParseDefenses(text string) (*statblock.Statblock, error) {
	return New(PDF).ParseDefenses(text)
}

// ParseSRD parses a complete SRD plain-text statblock.
func ParseSRD(text string) (*statblock.Statblock, error) {
	return New(SRD).Parse(text)
}

// ParseSRDHTML parses a complete SRD HTML statblock fragment.
func ParseSRDHTML(fragment string) (*statblock.Statblock, error) {
	return New(SRDHTML).Parse(fragment)
}
