package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Strength is the parsed strength/level line.
type Strength struct {
	Size    string
	Level   string
	Ordinal string
	Role    string
	Type    string
	Mook    bool
}

// MatchStrength parses "[<size>] <level><ordinal> level <role> [<type>]".
// The size is lowercased. A role of "mook" or an explicit mook marker sets
// Mook.
func (g *Grammar) MatchStrength(line string) (Strength, bool) {
	line = strings.TrimSpace(line)
	for _, re := range g.Strength {
		m := groups(re, line)
		if m == nil {
			continue
		}
		size := m["size"]
		if size == "" {
			size = m["size2"]
		}
		s := Strength{
			Size:    strings.ToLower(size),
			Level:   m["level"],
			Ordinal: strings.ToLower(m["ordinal"]),
			Role:    strings.ToLower(m["role"]),
			Type:    strings.TrimSpace(m["type"]),
		}
		s.Mook = m["mook"] != "" || s.Role == "mook"
		return s, true
	}
	return Strength{}, false
}

// AttackStart is the parsed first line of an attack.
type AttackStart struct {
	// Special is the bracketed marker text, e.g. "Special trigger".
	Special string

	// Range is "C" or "R" for close and ranged attacks.
	Range string

	// Name includes the range prefix when there is one, e.g.
	// "R: Longbow +10 vs. AC".
	Name string

	// Remainder is the text after the separator.
	Remainder string

	// Triggered reports whether Special reads "special trigger".
	Triggered bool
}

// MatchAttack parses an attack starter line.
func (g *Grammar) MatchAttack(line string) (AttackStart, bool) {
	m := groups(g.AttackStart, line)
	if m == nil {
		return AttackStart{}, false
	}
	a := AttackStart{
		Special:   strings.TrimSpace(m["special"]),
		Range:     strings.ToUpper(m["range"]),
		Name:      strings.TrimSpace(m["name"]),
		Remainder: strings.TrimSpace(m["desc"]),
	}
	if a.Range != "" {
		a.Name = a.Range + ": " + a.Name
	}
	a.Triggered = strings.EqualFold(a.Special, "special trigger")
	return a, true
}

// TraitStart is a parsed "Name: description" line.
type TraitStart struct {
	Name        string
	Description string
}

// MatchTrait parses a top-level trait starter.
func (g *Grammar) MatchTrait(line string) (TraitStart, bool) {
	return g.matchTrait(g.TraitStart, line)
}

// MatchNestedTrait parses a trait nested under an attack.
func (g *Grammar) MatchNestedTrait(line string) (TraitStart, bool) {
	return g.matchTrait(g.NestedTraitStart, line)
}

func (g *Grammar) matchTrait(re *regexp.Regexp, line string) (TraitStart, bool) {
	m := groups(re, line)
	if m == nil {
		return TraitStart{}, false
	}
	t := TraitStart{
		Name:        stripEmphasis(m["name"]),
		Description: strings.TrimSpace(m["desc"]),
	}
	if g.RangedMarker.MatchString(t.Name) {
		return TraitStart{}, false
	}
	return t, true
}

// IsFollowUp reports whether line continues the previous description
// rather than starting a new record.
func (g *Grammar) IsFollowUp(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if g.IsNastierHeader(trimmed) {
		return false
	}
	if _, ok := g.MatchAttack(line); ok {
		return false
	}
	if _, ok := g.MatchTrait(line); ok {
		return false
	}
	if _, ok := g.MatchNestedTrait(line); ok {
		return false
	}
	if _, ok := g.MatchResist(trimmed); ok {
		return false
	}
	return g.FollowUp.MatchString(trimmed)
}

// ResistTemplate is the canonical description of a "Resist <element> <NN>+"
// trait.
const ResistTemplate = "When a %s attack targets this creature, the attacker must roll a natural %s+ " +
	"on the attack roll or it only deals half damage."

// Resist is a parsed "Resist <element> <NN>+." line.
type Resist struct {
	Name      string
	Element   string
	Threshold string
}

// Description fills ResistTemplate.
func (r Resist) Description() string {
	return fmt.Sprintf(ResistTemplate, r.Element, r.Threshold)
}

// MatchResist parses a bare resist line. The name is the line with its
// trailing punctuation stripped.
func (g *Grammar) MatchResist(line string) (Resist, bool) {
	line = strings.TrimSpace(line)
	m := groups(g.Resist, line)
	if m == nil {
		return Resist{}, false
	}
	return Resist{
		Name:      strings.TrimRight(line, ".:;, "),
		Element:   strings.TrimSpace(m["element"]),
		Threshold: m["threshold"],
	}, true
}

// IsNastierHeader reports whether line is the "Nastier Specials" header.
func (g *Grammar) IsNastierHeader(line string) bool {
	return g.Nastier.MatchString(line)
}

// MatchInitiative returns the initiative bonus without its plus sign.
func (g *Grammar) MatchInitiative(line string) (string, bool) {
	m := groups(g.Initiative, line)
	if m == nil {
		return "", false
	}
	return m["value"], true
}

// MatchVulnerability returns the vulnerability text.
func (g *Grammar) MatchVulnerability(line string) (string, bool) {
	m := groups(g.Vulnerability, line)
	if m == nil {
		return "", false
	}
	return m["value"], true
}

// Defense is one parsed defense value.
type Defense struct {
	// Name is "ac", "pd", "md" or "hp". It is empty for a bare qualifier
	// line, which belongs to the previous defense.
	Name      string
	Qualifier string
	Value     string
}

// MatchDefense parses a single labeled defense or a bare qualifier line.
func (g *Grammar) MatchDefense(line string) (Defense, bool) {
	if m := groups(g.DefenseLine, line); m != nil {
		return Defense{
			Name:      strings.ToLower(m["name"]),
			Qualifier: strings.TrimSpace(m["qual"]),
			Value:     strings.TrimSpace(m["value"]),
		}, true
	}
	if m := groups(g.DefenseQualifier, line); m != nil {
		return Defense{
			Qualifier: strings.TrimSpace(m["qual"]),
			Value:     strings.TrimSpace(m["value"]),
		}, true
	}
	return Defense{}, false
}

// MatchDefensesInline parses "AC 24 PD 22 MD 18 HP 340".
func (g *Grammar) MatchDefensesInline(line string) ([]Defense, bool) {
	m := groups(g.DefensesInline, line)
	if m == nil {
		return nil, false
	}
	return []Defense{
		{Name: "ac", Value: m["ac"]},
		{Name: "pd", Value: m["pd"]},
		{Name: "md", Value: m["md"]},
		{Name: "hp", Value: strings.TrimSpace(m["hp"])},
	}, true
}

// IsDefenseLabel reports whether line is a bare "AC", "PD", "MD" or "HP".
func (g *Grammar) IsDefenseLabel(line string) bool {
	return g.DefenseLabel.MatchString(line)
}

// IsInteger reports whether line holds a single integer.
func (g *Grammar) IsInteger(line string) bool {
	return g.Integer.MatchString(line)
}

// IsStandardAttackTrait reports whether name is one of the usual hit/miss
// qualifier names ("Natural 16+", "Miss", "Crit hit", "...per battle...").
func (g *Grammar) IsStandardAttackTrait(name string) bool {
	return g.StandardAttackTrait.MatchString(stripEmphasis(name))
}
