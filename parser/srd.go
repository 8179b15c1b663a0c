package parser

import (
	"strings"

	"github.com/randalmurphal/statkit/cursor"
	"github.com/randalmurphal/statkit/statblock"
)

// parseSRD reads SRD plain text. The layout is column-fixed: the
// description occupies lines 0 through the initiative line, attacks come
// next, then traits, triggered attacks and nastier specials, then a lone
// tab line, then defense names followed by their values.
func (p *Parser) parseSRD(text string) (*statblock.Statblock, error) {
	c := p.newCursor(text)
	if c.Len() <= p.cfg.initiativeIndex {
		return nil, ErrBadDescription
	}

	sb := statblock.New()
	head := trimAll(c.Rest()[:p.cfg.initiativeIndex+1])
	if err := p.readDescription(cursor.FromLines(head), sb); err != nil {
		return nil, err
	}

	c.SetIndex(p.cfg.initiativeIndex)
	c.Advance()
	p.skipToSRDBody(c, sb)

	b := &block{sb: sb, join: p.cfg.join}
	p.readSRDAttacks(c, b)
	if !p.readSRDTraits(c, b) {
		return nil, ErrBadDefenses
	}

	c.Advance()
	if err := p.readSRDDefenses(c, sb); err != nil {
		return nil, err
	}
	return sb, nil
}

// skipToSRDBody moves past blank lines and the vulnerability line to the
// first attack or trait.
func (p *Parser) skipToSRDBody(c *cursor.Cursor, sb *statblock.Statblock) {
	g := p.cfg.grammar
	for !c.AtEnd() {
		line := c.Line()
		if line == srdBlockSeparator {
			return
		}
		if strings.TrimSpace(line) == "" {
			c.Advance()
			continue
		}
		if v, ok := g.MatchVulnerability(line); ok {
			sb.Vulnerability = statblock.TitleCase(v)
			c.Advance()
			continue
		}
		return
	}
}

// readSRDAttacks reads column-0 attacks and their indented traits. It stops
// at the first top-level trait, nastier header or block separator.
func (p *Parser) readSRDAttacks(c *cursor.Cursor, b *block) {
	g := p.cfg.grammar
	for ; !c.AtEnd(); c.Advance() {
		line := c.Line()
		if line == srdBlockSeparator || g.IsNastierHeader(line) {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if a, ok := g.MatchAttack(line); ok {
			b.addAttack(statblock.NewAttack(a.Name, a.Remainder), a.Triggered)
			continue
		}
		if t, ok := g.MatchNestedTrait(line); ok {
			p.addSRDNested(b, statblock.NewTrait(t.Name, t.Description), false)
			continue
		}
		if _, ok := g.MatchTrait(line); ok {
			return
		}
		if _, ok := g.MatchResist(line); ok {
			return
		}
		p.continueLine(b, line, c.Index())
	}
}

// readSRDTraits reads the traits region up to the block separator. Plain
// attacks were consumed by readSRDAttacks, so a column-0 attack here is a
// triggered attack. It reports whether the separator was found.
func (p *Parser) readSRDTraits(c *cursor.Cursor, b *block) bool {
	g := p.cfg.grammar
	nastier := false
	for ; !c.AtEnd(); c.Advance() {
		line := c.Line()
		if line == srdBlockSeparator {
			return true
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if g.IsNastierHeader(line) {
			nastier = true
			continue
		}
		if r, ok := g.MatchResist(line); ok {
			b.addTrait(statblock.NewTrait(r.Name, r.Description()), nastier)
			continue
		}
		if a, ok := g.MatchAttack(line); ok {
			b.addAttack(statblock.NewAttack(a.Name, a.Remainder), true)
			continue
		}
		if t, ok := g.MatchTrait(line); ok {
			b.addTrait(statblock.NewTrait(t.Name, t.Description), nastier)
			continue
		}
		if t, ok := g.MatchNestedTrait(line); ok {
			p.addSRDNested(b, statblock.NewTrait(t.Name, t.Description), nastier)
			continue
		}
		p.continueLine(b, line, c.Index())
	}
	return false
}

// addSRDNested attaches an indented trait to the most recently created
// attack, or files it as a top-level trait when there is none.
func (p *Parser) addSRDNested(b *block, t *statblock.Trait, nastier bool) {
	if b.attack != nil {
		b.addNested(t)
		return
	}
	b.addTrait(t, nastier)
}

// readSRDDefenses consumes defense name lines up to the first integer
// line, then as many value lines as there were names, and pairs them by
// position.
func (p *Parser) readSRDDefenses(c *cursor.Cursor, sb *statblock.Statblock) error {
	g := p.cfg.grammar

	var names []string
	for ; !c.AtEnd() && !g.IsInteger(c.Line()); c.Advance() {
		if name := strings.TrimSpace(c.Line()); name != "" {
			names = append(names, name)
		}
	}

	var values []string
	for ; !c.AtEnd() && len(values) < len(names); c.Advance() {
		if value := strings.TrimSpace(c.Line()); value != "" {
			values = append(values, value)
		}
	}

	if len(values) == 0 {
		// Labeled "AC 24" lines instead of the name/value columns.
		return p.readDefenses(names, sb)
	}

	zipDefenses(names, values, sb)
	return requireDefenses(sb)
}
