package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/randalmurphal/statkit/cursor"
	"github.com/randalmurphal/statkit/htmltable"
	"github.com/randalmurphal/statkit/statblock"
)

// inlineTrait finds a trait starting partway through a cell: an italic
// "_Name:_" or "_Name_:" run, or a single plain "Name:" token.
var inlineTrait = regexp.MustCompile(`(?:^|\s)(?:_(?P<em>\p{Lu}[^_:]*?):_|_(?P<em2>\p{Lu}[^_:]*?)_:|(?P<plain>\p{Lu}\w*):)(?:\s|$)`)

// htmlState is the running classification state of the HTML body.
type htmlState struct {
	*block

	// triggered is set once the first top-level trait or resist line has
	// been seen; every attack after it is a triggered attack.
	triggered bool

	nastier bool
}

// parseHTML reads an SRD HTML fragment. Cell and paragraph boundaries
// become lines; the description runs through the initiative and
// vulnerability lines, the body runs to the first defense line.
func (p *Parser) parseHTML(fragment string) (*statblock.Statblock, error) {
	lines, err := htmltable.Lines(fragment)
	if err != nil {
		if errors.Is(err, htmltable.ErrEmpty) {
			return nil, ErrBadDescription
		}
		return nil, fmt.Errorf("read statblock html: %w", err)
	}

	head, bodyStart, err := p.htmlDescription(lines)
	if err != nil {
		return nil, err
	}

	defStart := -1
	for i := bodyStart; i < len(lines); i++ {
		if p.isDefenseLine(lines[i]) {
			defStart = i
			break
		}
	}
	if defStart < 0 {
		return nil, ErrBadDefenses
	}

	sb := statblock.New()
	if err := p.readDescription(cursor.FromLines(head), sb); err != nil {
		return nil, err
	}

	st := &htmlState{block: &block{sb: sb, join: p.cfg.join}}
	for i := bodyStart; i < defStart; i++ {
		err := p.classify(st, lines[i], i)
		if err == nil {
			continue
		}
		var lineErr *LineError
		if errors.As(err, &lineErr) && st.followUp(lines[i]) {
			p.logger.Warn("recovered unclassified statblock line",
				slog.String("dialect", p.dialect.String()),
				slog.Int("line", i+1),
				slog.String("text", lines[i]))
			continue
		}
		return nil, err
	}

	if err := p.readHTMLDefenses(lines[defStart:], sb); err != nil {
		return nil, err
	}
	return sb, nil
}

// htmlDescription returns the description lines and the index of the first
// body line. A strength line split across cells is rejoined.
func (p *Parser) htmlDescription(lines []string) ([]string, int, error) {
	g := p.cfg.grammar

	anchor := -1
	for i, line := range lines {
		if _, ok := g.MatchInitiative(line); ok {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		// No initiative line: the strength line itself ends the
		// description.
		for i := 1; i < len(lines); i++ {
			if _, ok := g.MatchStrength(lines[i]); ok {
				anchor = i
				break
			}
		}
	}
	if anchor < 1 {
		return nil, 0, ErrBadDescription
	}

	end := anchor + 1
	for end < len(lines) {
		if _, ok := g.MatchVulnerability(lines[end]); !ok {
			break
		}
		end++
	}

	for i := 1; i <= anchor; i++ {
		if _, ok := g.MatchStrength(lines[i]); ok {
			return lines[:end], end, nil
		}
	}
	for k := 1; k < anchor; k++ {
		joined := strings.Join(lines[k:anchor], " ")
		if _, ok := g.MatchStrength(joined); ok {
			head := append(slices.Clone(lines[:k]), joined)
			return append(head, lines[anchor:end]...), end, nil
		}
	}
	return nil, 0, ErrBadDescription
}

// classify files one body line. It returns a *LineError for a line that is
// neither a record starter nor a follow-up of the last record.
func (p *Parser) classify(st *htmlState, line string, index int) error {
	g := p.cfg.grammar

	if g.IsNastierHeader(line) {
		st.nastier = true
		st.triggered = true
		st.attack = nil
		return nil
	}
	if r, ok := g.MatchResist(line); ok {
		st.triggered = true
		st.attack = nil
		st.addTrait(statblock.NewTrait(r.Name, r.Description()), st.nastier)
		return nil
	}
	if a, ok := g.MatchAttack(line); ok {
		desc, nested := p.splitTraits(a.Remainder)
		attack := statblock.NewAttack(a.Name, desc)
		st.addAttack(attack, a.Triggered || st.triggered)
		for _, t := range nested {
			st.addNested(t)
		}
		return nil
	}
	if t, ok := g.MatchTrait(line); ok {
		desc, nested := p.splitTraits(t.Description)
		trait := statblock.NewTrait(t.Name, desc)
		if st.attack != nil && g.IsStandardAttackTrait(t.Name) {
			st.addNested(trait)
			for _, n := range nested {
				st.addNested(n)
			}
			return nil
		}
		trait.Traits = append(trait.Traits, nested...)
		st.triggered = true
		st.attack = nil
		st.addTrait(trait, st.nastier)
		return nil
	}
	if g.IsFollowUp(line) && st.followUp(line) {
		return nil
	}
	return &LineError{Cause: CauseUnknownLine, Line: line, Index: index}
}

// splitTraits cuts the traits embedded in a cell's text out of it. It
// returns the text before the first embedded trait and the traits in
// order. A plain "Name:" token only counts when Name is a standard
// hit/miss qualifier.
func (p *Parser) splitTraits(text string) (string, []*statblock.Trait) {
	g := p.cfg.grammar

	type cut struct {
		start, end int
		name       string
	}
	var cuts []cut
	for _, m := range inlineTrait.FindAllStringSubmatchIndex(text, -1) {
		if name := submatch(text, m, "em"); name != "" {
			cuts = append(cuts, cut{m[0], m[1], name})
			continue
		}
		if name := submatch(text, m, "em2"); name != "" {
			cuts = append(cuts, cut{m[0], m[1], name})
			continue
		}
		if name := submatch(text, m, "plain"); name != "" && g.IsStandardAttackTrait(name) {
			cuts = append(cuts, cut{m[0], m[1], name})
		}
	}
	if len(cuts) == 0 {
		return strings.TrimSpace(text), nil
	}

	traits := make([]*statblock.Trait, 0, len(cuts))
	for i, c := range cuts {
		end := len(text)
		if i+1 < len(cuts) {
			end = cuts[i+1].start
		}
		traits = append(traits, statblock.NewTrait(c.name, text[c.end:end]))
	}
	return strings.TrimSpace(text[:cuts[0].start]), traits
}

func submatch(text string, m []int, name string) string {
	i := inlineTrait.SubexpIndex(name)
	if i < 0 || m[2*i] < 0 {
		return ""
	}
	return text[m[2*i]:m[2*i+1]]
}

// readHTMLDefenses partitions the defense lines into names and values and
// pairs them. Labeled "AC 24" lines and an inline four-defense line are
// read directly.
func (p *Parser) readHTMLDefenses(lines []string, sb *statblock.Statblock) error {
	g := p.cfg.grammar

	var names, values []string
	for _, line := range lines {
		if all, ok := g.MatchDefensesInline(line); ok {
			for _, d := range all {
				setDefense(sb, d.Name, d.Value)
			}
			continue
		}
		if d, ok := g.MatchDefense(line); ok && d.Name != "" && d.Qualifier == "" {
			names = append(names, d.Name)
			values = append(values, d.Value)
			continue
		}
		if leadingNumber.MatchString(line) {
			values = append(values, line)
		} else {
			names = append(names, line)
		}
	}

	zipDefenses(names, values, sb)
	return requireDefenses(sb)
}
