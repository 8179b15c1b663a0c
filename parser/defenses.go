package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/randalmurphal/statkit/statblock"
)

var (
	leadingNumber = regexp.MustCompile(`^[+-]?\d+`)
	mookMarker    = regexp.MustCompile(`(?i)\(\s*mook\s*\)`)
)

// defenseNames lists the required defenses in display order.
var defenseNames = []string{"ac", "pd", "md", "hp"}

// readDefenses reads labeled defense lines. A qualified line for a defense
// that is already set, or a bare "(qualifier) value" line, is appended to
// the earlier value rather than replacing it.
func (p *Parser) readDefenses(lines []string, sb *statblock.Statblock) error {
	g := p.cfg.grammar
	var prev string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if all, ok := g.MatchDefensesInline(line); ok {
			for _, d := range all {
				setDefense(sb, d.Name, d.Value)
			}
			prev = "hp"
			continue
		}
		d, ok := g.MatchDefense(line)
		if !ok {
			continue
		}
		switch {
		case d.Name == "":
			if prev != "" {
				qualifyDefense(sb, prev, d.Qualifier, d.Value)
			}
		case d.Qualifier != "":
			qualifyDefense(sb, d.Name, d.Qualifier, d.Value)
			prev = d.Name
		default:
			setDefense(sb, d.Name, d.Value)
			prev = d.Name
		}
	}

	return requireDefenses(sb)
}

// zipDefenses pairs defense names with values by position. A name that is
// not a defense label is a qualifier on the previous pair and is appended
// to it as "(qualifier: value)". Qualifiers never attach forward.
func zipDefenses(names, values []string, sb *statblock.Statblock) {
	var prev string
	for i, name := range names {
		if i >= len(values) {
			break
		}
		value := strings.TrimSpace(values[i])
		key := strings.ToLower(strings.TrimSpace(name))
		if isDefenseName(key) {
			setDefense(sb, key, value)
			prev = key
			continue
		}
		if prev != "" {
			qualifyDefense(sb, prev, name, value)
		}
	}
}

func requireDefenses(sb *statblock.Statblock) error {
	var missing []string
	for _, name := range defenseNames {
		if defense(sb, name) == "" {
			missing = append(missing, strings.ToUpper(name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrBadDefenses, strings.Join(missing, ", "))
	}
	return nil
}

func isDefenseName(name string) bool {
	for _, n := range defenseNames {
		if n == name {
			return true
		}
	}
	return false
}

func qualifyDefense(sb *statblock.Statblock, name, qualifier, value string) {
	qualifier = strings.TrimSpace(strings.Trim(strings.TrimSpace(qualifier), "()"))
	current := defense(sb, name)
	if current == "" {
		setDefense(sb, name, fmt.Sprintf("%s (%s)", value, qualifier))
		return
	}
	setDisplay(sb, name, fmt.Sprintf("%s (%s: %s)", current, qualifier, value))
}

// setDefense records a display value and its leading number as the base.
func setDefense(sb *statblock.Statblock, name, value string) {
	setDisplay(sb, name, value)
	setBase(sb, name, leadingNumber.FindString(value))
	if name == "hp" && mookMarker.MatchString(value) {
		sb.Mook = true
	}
}

func defense(sb *statblock.Statblock, name string) string {
	switch name {
	case "ac":
		return sb.AC
	case "pd":
		return sb.PD
	case "md":
		return sb.MD
	case "hp":
		return sb.HP
	}
	return ""
}

func setDisplay(sb *statblock.Statblock, name, value string) {
	switch name {
	case "ac":
		sb.AC = value
	case "pd":
		sb.PD = value
	case "md":
		sb.MD = value
	case "hp":
		sb.HP = value
	}
}

func setBase(sb *statblock.Statblock, name, value string) {
	value = strings.TrimPrefix(value, "+")
	switch name {
	case "ac":
		sb.ACBase = value
	case "pd":
		sb.PDBase = value
	case "md":
		sb.MDBase = value
	case "hp":
		sb.HPBase = value
	}
}
