package pattern

import (
	"regexp"
	"strings"
)

// Grammar is the set of line patterns for one input dialect.
type Grammar struct {
	// Name identifies the dialect ("pdf", "srd", "srd-html").
	Name string

	// Strength holds the strength/level line variants, tried in order:
	// the bracketed-type form first, then the space-delimited form.
	Strength []*regexp.Regexp

	// AttackStart matches "[Special trigger] C: Name +5 vs. AC—damage".
	AttackStart *regexp.Regexp

	// TraitStart matches a top-level "Name: description" line.
	TraitStart *regexp.Regexp

	// NestedTraitStart matches a trait nested under an attack.
	NestedTraitStart *regexp.Regexp

	// FollowUp matches lines that read as a continuation of the previous
	// description.
	FollowUp *regexp.Regexp

	Resist        *regexp.Regexp
	Nastier       *regexp.Regexp
	Initiative    *regexp.Regexp
	Vulnerability *regexp.Regexp

	// DefenseLine matches one labeled defense, optionally qualified:
	// "AC 24", "AC (in lair) 27", "HP 22 (mook)".
	DefenseLine *regexp.Regexp

	// DefenseQualifier matches a qualifier line with no label: "(in lair) 27".
	DefenseQualifier *regexp.Regexp

	// DefensesInline matches all four defenses on a single line.
	DefensesInline *regexp.Regexp

	// DefenseLabel matches a bare defense name with no value.
	DefenseLabel *regexp.Regexp

	// Integer matches a line holding a single integer.
	Integer *regexp.Regexp

	// StandardAttackTrait matches the names of hit/miss qualifiers that
	// belong to the attack they follow.
	StandardAttackTrait *regexp.Regexp

	// RangedMarker matches a trait name that is really a range prefix.
	RangedMarker *regexp.Regexp
}

const (
	// dash is the separator between an attack's name and its effect.
	dash = `(?:\s*[—–]\s*|\s+-\s+)`

	// traitName excludes separators that belong to other line kinds.
	traitName = `\p{Lu}[^:.—–]*?`
)

var (
	strengthBracketed = regexp.MustCompile(`(?i)^(?:(?P<size>[a-z][\w-]*(?:\s+[a-z][\w-]*)?)\s+)?` +
		`(?P<level>\d+)(?P<ordinal>st|nd|rd|th)?\s+level\s+` +
		`(?P<role>[a-z][\w-]*)\s*\[(?P<type>[^\]]+)\]\s*$`)

	strengthDelimited = regexp.MustCompile(`(?i)^(?:(?P<size>` + sizeWords + `)\s+)?` +
		`(?P<level>\d+)(?P<ordinal>st|nd|rd|th)?\s+level\s+` +
		`(?:(?P<size2>` + sizeWords + `)\s+)?(?:(?P<mook>mook)\s+)?` +
		`(?P<role>[a-z][\w-]*)\s+(?P<type>[a-z][\w -]*?)\s*$`)

	attackStart = regexp.MustCompile(`^(?:\[(?P<special>[^\]]+)\]\s*)?(?:(?P<range>[CR]):\s*)?` +
		`(?P<name>\p{Lu}[^:—–]*?)` + dash + `(?P<desc>.*)$`)

	traitStart       = regexp.MustCompile(`^(?P<name>` + traitName + `):\s*(?P<desc>.*)$`)
	nestedTraitStart = regexp.MustCompile(`^ (?P<name>` + traitName + `):\s*(?P<desc>.*)$`)

	// emphasizedTraitStart accepts the "_Name:_" convention produced from
	// italic markup as well as a plain "Name:".
	emphasizedTraitStart = regexp.MustCompile(`^\s*_?(?P<name>\p{Lu}[^_:.—–]*?)(?::_|_:|:)\s*(?P<desc>.*)$`)

	followUp = regexp.MustCompile(`^(?:[\p{Ll}\d(+\-"'“‘,;…]|[^:—–]*$)`)

	resist = regexp.MustCompile(`(?i)^resist\s+(?P<element>[a-z][a-z ,/&-]*?)\s+(?P<threshold>\d+)\+\.?$`)

	nastier = regexp.MustCompile(`(?i)^\s*nastier\s+specials?:?\s*$`)

	initiative    = regexp.MustCompile(`(?i)^\s*initiative:?\s*\+?(?P<value>-?\d+)`)
	vulnerability = regexp.MustCompile(`(?i)^\s*vulnerab(?:ility|le):?\s*(?P<value>.+?)\s*$`)

	defenseLine = regexp.MustCompile(`(?i)^\s*(?P<name>AC|PD|MD|HP)\b:?\s*(?:\((?P<qual>[^)]*)\)\s*)?` +
		`(?P<value>[+-]?\d+\S*(?:\s*\([^)]*\))?)\s*$`)
	defenseQualifier = regexp.MustCompile(`^\s*\((?P<qual>[^)]+)\)\s*(?P<value>\d+\S*)\s*$`)
	defensesInline   = regexp.MustCompile(`(?i)^\s*AC[\s:]+(?P<ac>\d+)[\s,]+PD[\s:]+(?P<pd>\d+)[\s,]+` +
		`MD[\s:]+(?P<md>\d+)[\s,]+HP[\s:]+(?P<hp>\d+(?:\s*\([^)]*\))?)\s*$`)
	defenseLabel = regexp.MustCompile(`(?i)^\s*(?:AC|PD|MD|HP)\s*$`)
	integer      = regexp.MustCompile(`^\s*[+-]?\d+\s*$`)

	standardAttackTrait = regexp.MustCompile(`(?i)^(?:natural\b.*|miss\b.*|.*\bhit\b.*|.*\bmiss$|.*per battle.*|` +
		`limited use|quick use|special|recharge\b.*|(?:first|second|third)\b.*\bsave\b.*)$`)

	rangedMarker = regexp.MustCompile(`(?:^|\s)[CR]Q?$`)
)

const sizeWords = `large|huge|small|tiny|normal|gargantuan|double-strength|triple-strength`

func baseGrammar(name string) *Grammar {
	return &Grammar{
		Name:                name,
		Strength:            []*regexp.Regexp{strengthBracketed, strengthDelimited},
		AttackStart:         attackStart,
		TraitStart:          traitStart,
		NestedTraitStart:    nestedTraitStart,
		FollowUp:            followUp,
		Resist:              resist,
		Nastier:             nastier,
		Initiative:          initiative,
		Vulnerability:       vulnerability,
		DefenseLine:         defenseLine,
		DefenseQualifier:    defenseQualifier,
		DefensesInline:      defensesInline,
		DefenseLabel:        defenseLabel,
		Integer:             integer,
		StandardAttackTrait: standardAttackTrait,
		RangedMarker:        rangedMarker,
	}
}

// The three dialect grammars.
var (
	// PDF covers text pasted from the rulebook PDFs.
	PDF = baseGrammar("pdf")

	// SRD covers plain text copied from a rendered SRD table. Indentation
	// is significant, so nested traits need their leading space.
	SRD = baseGrammar("srd")

	// SRDHTML covers cell text extracted from SRD HTML, where italic trait
	// names arrive wrapped in underscores.
	SRDHTML = func() *Grammar {
		g := baseGrammar("srd-html")
		g.TraitStart = emphasizedTraitStart
		g.NestedTraitStart = emphasizedTraitStart
		return g
	}()
)

// groups returns the named submatches of re in line, or nil on no match.
func groups(re *regexp.Regexp, line string) map[string]string {
	match := re.FindStringSubmatch(line)
	if match == nil {
		return nil
	}
	result := make(map[string]string, len(match))
	for i, name := range re.SubexpNames() {
		if name != "" {
			result[name] = match[i]
		}
	}
	return result
}

// stripEmphasis removes the underscore emphasis markers.
func stripEmphasis(s string) string {
	return strings.Trim(strings.TrimSpace(s), "_")
}
