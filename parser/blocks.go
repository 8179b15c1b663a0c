package parser

import (
	"log/slog"
	"strings"

	"github.com/randalmurphal/statkit/cursor"
	"github.com/randalmurphal/statkit/statblock"
)

// describer is anything whose description grows as follow-up lines turn up.
type describer interface {
	AppendDescription(text, sep string)
}

// block tracks the open records while a section is read.
type block struct {
	sb   *statblock.Statblock
	join string

	// attack is the attack that nested traits attach to.
	attack *statblock.Attack

	// last is the most recently created or extended record.
	last describer
}

func (b *block) addAttack(a *statblock.Attack, triggered bool) {
	if triggered {
		b.sb.TriggeredAttacks = append(b.sb.TriggeredAttacks, a)
	} else {
		b.sb.Attacks = append(b.sb.Attacks, a)
	}
	b.attack = a
	b.last = a
}

func (b *block) addNested(t *statblock.Trait) {
	b.attack.AddTrait(t)
	b.last = t
}

func (b *block) addTrait(t *statblock.Trait, nastier bool) {
	if nastier {
		b.sb.NastierTraits = append(b.sb.NastierTraits, t)
	} else {
		b.sb.Traits = append(b.sb.Traits, t)
	}
	b.last = t
}

// followUp appends line to the last record. It reports false when there is
// nothing to append to.
func (b *block) followUp(line string) bool {
	if b.last == nil {
		return false
	}
	b.last.AppendDescription(line, b.join)
	return true
}

// readAttacks reads an attack section. A trait nests under the attack
// whose starter it follows; traits before the first attack are top level.
// A "Nastier Specials" header hands the rest of the input to readTraits.
func (p *Parser) readAttacks(c *cursor.Cursor, sb *statblock.Statblock) {
	g := p.cfg.grammar
	b := &block{sb: sb, join: p.cfg.join}

	for ; !c.AtEnd(); c.Advance() {
		line := c.Line()

		if g.IsNastierHeader(line) {
			p.readTraits(c, sb, false)
			return
		}
		if r, ok := g.MatchResist(line); ok {
			b.addTrait(statblock.NewTrait(r.Name, r.Description()), false)
			continue
		}
		if a, ok := g.MatchAttack(line); ok {
			b.addAttack(statblock.NewAttack(a.Name, a.Remainder), a.Triggered)
			continue
		}
		if t, ok := g.MatchTrait(line); ok {
			trait := statblock.NewTrait(t.Name, t.Description)
			if b.attack != nil {
				b.addNested(trait)
			} else {
				b.addTrait(trait, false)
			}
			continue
		}
		p.continueLine(b, line, c.Index())
	}
}

// readTraits reads traits, triggered attacks and their qualifiers. A trait
// nests under the preceding attack only when its name is a standard
// hit/miss qualifier; any other trait closes the attack. A "Nastier
// Specials" header starts a nested read whose traits become nastier traits
// and whose triggered attacks join the parent's.
func (p *Parser) readTraits(c *cursor.Cursor, sb *statblock.Statblock, nastier bool) {
	g := p.cfg.grammar
	b := &block{sb: sb, join: p.cfg.join}

	for ; !c.AtEnd(); c.Advance() {
		line := c.Line()

		if g.IsNastierHeader(line) {
			if nastier {
				continue
			}
			c.Advance()
			sub := statblock.New()
			p.readTraits(c, sub, true)
			sb.NastierTraits = append(sb.NastierTraits, sub.NastierTraits...)
			for _, a := range sub.TriggeredAttacks {
				if !sb.HasTriggeredAttack(a.Name) {
					sb.TriggeredAttacks = append(sb.TriggeredAttacks, a)
				}
			}
			sb.Attacks = append(sb.Attacks, sub.Attacks...)
			return
		}
		if r, ok := g.MatchResist(line); ok {
			b.attack = nil
			b.addTrait(statblock.NewTrait(r.Name, r.Description()), nastier)
			continue
		}
		if a, ok := g.MatchAttack(line); ok {
			b.addAttack(statblock.NewAttack(a.Name, a.Remainder), a.Triggered)
			continue
		}
		if t, ok := g.MatchTrait(line); ok {
			trait := statblock.NewTrait(t.Name, t.Description)
			if b.attack != nil && g.IsStandardAttackTrait(t.Name) {
				b.addNested(trait)
			} else {
				b.attack = nil
				b.addTrait(trait, nastier)
			}
			continue
		}
		p.continueLine(b, line, c.Index())
	}
}

// continueLine folds an unclassified line into the last record.
func (p *Parser) continueLine(b *block, line string, index int) {
	if !p.cfg.grammar.IsFollowUp(line) {
		p.logger.Debug("unclassified statblock line treated as continuation",
			slog.String("dialect", p.dialect.String()),
			slog.Int("line", index+1),
			slog.String("text", line))
	}
	if !b.followUp(line) {
		p.logger.Debug("dropping continuation with nothing to continue",
			slog.Int("line", index+1),
			slog.String("text", line))
	}
}

// parseFull reads a whole PDF statblock: description, attacks, traits,
// nastier specials and defenses pasted as one block.
func (p *Parser) parseFull(text string) (*statblock.Statblock, error) {
	g := p.cfg.grammar
	lines := p.newCursor(text).Rest()

	strength := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		if _, ok := g.MatchStrength(line); ok {
			strength = i
			break
		}
	}
	if strength < 0 {
		return nil, ErrBadDescription
	}

	descEnd := strength + 1
	for descEnd < len(lines) && p.isDescriptionLine(lines[descEnd]) {
		descEnd++
	}

	defStart := -1
	for i := descEnd; i < len(lines); i++ {
		if p.isDefenseLine(lines[i]) {
			defStart = i
			break
		}
	}
	if defStart < 0 {
		return nil, ErrBadDefenses
	}

	sb := statblock.New()
	if err := p.readDescription(cursor.FromLines(lines[:descEnd]), sb); err != nil {
		return nil, err
	}
	p.readTraits(cursor.FromLines(lines[descEnd:defStart]), sb, false)
	if err := p.readDefenses(lines[defStart:], sb); err != nil {
		return nil, err
	}
	return sb, nil
}

// isDescriptionLine reports whether a line after the strength line still
// belongs to the description.
func (p *Parser) isDescriptionLine(line string) bool {
	g := p.cfg.grammar
	if _, ok := g.MatchInitiative(line); ok {
		return true
	}
	if _, ok := g.MatchVulnerability(line); ok {
		return true
	}
	return false
}

func (p *Parser) isDefenseLine(line string) bool {
	g := p.cfg.grammar
	if _, ok := g.MatchDefensesInline(line); ok {
		return true
	}
	if d, ok := g.MatchDefense(line); ok && d.Name != "" {
		return true
	}
	return g.IsDefenseLabel(line)
}

func trimAll(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.TrimSpace(line))
	}
	return out
}
