package parser

import (
	"strings"

	"github.com/randalmurphal/statkit/cursor"
	"github.com/randalmurphal/statkit/pattern"
	"github.com/randalmurphal/statkit/statblock"
)

// readDescription consumes the name, flavor text and strength line, then
// picks initiative and vulnerability out of the remaining lines until the
// cursor is exhausted. Unrecognized trailing lines are skipped.
func (p *Parser) readDescription(c *cursor.Cursor, sb *statblock.Statblock) error {
	g := p.cfg.grammar

	if c.AtEnd() {
		return ErrBadDescription
	}
	sb.Name = statblock.TitleCase(c.Line())
	c.Advance()

	var flavor []string
	found := false
	for ; !c.AtEnd(); c.Advance() {
		line := strings.TrimSpace(c.Line())
		if s, ok := g.MatchStrength(line); ok {
			applyStrength(sb, s)
			found = true
			c.Advance()
			break
		}
		if line != "" {
			flavor = append(flavor, line)
		}
	}
	if !found {
		return ErrBadDescription
	}
	sb.FlavorText = strings.Join(flavor, " ")

	for ; !c.AtEnd(); c.Advance() {
		line := c.Line()
		if v, ok := g.MatchInitiative(line); ok {
			sb.Initiative = v
			continue
		}
		if v, ok := g.MatchVulnerability(line); ok {
			sb.Vulnerability = statblock.TitleCase(v)
		}
	}
	return nil
}

func applyStrength(sb *statblock.Statblock, s pattern.Strength) {
	sb.Size = s.Size
	sb.Level = s.Level
	if s.Ordinal != "" {
		sb.LevelOrdinal = s.Level + s.Ordinal
	} else {
		sb.LevelOrdinal = statblock.OrdinalFromText(s.Level)
	}
	sb.Role = s.Role
	sb.Type = s.Type
	sb.Mook = s.Mook
}
