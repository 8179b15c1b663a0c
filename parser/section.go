package parser

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/statkit/statblock"
)

// Section names one part of a statblock that can be parsed on its own.
type Section string

// Statblock sections, in the order a statblock presents them.
const (
	SectionDescription Section = "description"
	SectionAttacks     Section = "attacks"
	SectionTraits      Section = "traits"
	SectionNastier     Section = "nastier"
	SectionDefenses    Section = "defenses"
	SectionFull        Section = "full"
)

// Sections lists the individually parsed sections in statblock order.
var Sections = []Section{
	SectionDescription,
	SectionAttacks,
	SectionTraits,
	SectionNastier,
	SectionDefenses,
}

// ParseSection converts a section name to a Section.
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case SectionDescription, SectionAttacks, SectionTraits, SectionNastier, SectionDefenses, SectionFull:
		return s, nil
	case "":
		return SectionFull, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownSection, name)
	}
}

// ParseSection dispatches text to the parse operation for section.
func (p *Parser) ParseSection(section Section, text string) (*statblock.Statblock, error) {
	switch section {
	case SectionDescription:
		return p.ParseDescription(text)
	case SectionAttacks:
		return p.ParseAttacks(text)
	case SectionTraits:
		return p.ParseTraits(text)
	case SectionNastier:
		return p.ParseNastierTraits(text)
	case SectionDefenses:
		return p.ParseDefenses(text)
	case SectionFull:
		return p.Parse(text)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
}
