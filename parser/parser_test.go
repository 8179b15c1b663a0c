package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/statkit/statblock"
)

func names[T interface{ *statblock.Trait | *statblock.Attack }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := any(item).(type) {
		case *statblock.Trait:
			out = append(out, v.Name)
		case *statblock.Attack:
			out = append(out, v.Name)
		}
	}
	return out
}

func TestParseDescription(t *testing.T) {
	text := `Fire Giant
Fire giants are hot-tempered.
Large 8th level wrecker [giant]
Initiative: +12
Vulnerability: cold`

	sb, err := ParseDescription(text)
	require.NoError(t, err)

	assert.Equal(t, "Fire Giant", sb.Name)
	assert.Equal(t, "Fire giants are hot-tempered.", sb.FlavorText)
	assert.Equal(t, "large", sb.Size)
	assert.Equal(t, "8", sb.Level)
	assert.Equal(t, "8th", sb.LevelOrdinal)
	assert.Equal(t, "wrecker", sb.Role)
	assert.Equal(t, "giant", sb.Type)
	assert.Equal(t, "12", sb.Initiative)
	assert.Equal(t, "Cold", sb.Vulnerability)
	assert.False(t, sb.Mook)
}

func TestParseDescription_ComputesMissingOrdinal(t *testing.T) {
	sb, err := ParseDescription("Ogre\n3 level troop [giant]")
	require.NoError(t, err)
	assert.Equal(t, "3rd", sb.LevelOrdinal)
}

func TestParseDescription_Mook(t *testing.T) {
	sb, err := ParseDescription("Goblin Grunt\n1st level mook [humanoid]\nInitiative: +3")
	require.NoError(t, err)
	assert.True(t, sb.Mook)
	assert.Equal(t, "3", sb.Initiative)
}

func TestParseDescription_MissingStrengthLine(t *testing.T) {
	sb, err := ParseDescription("Fire Giant\nFire giants are hot-tempered.\nInitiative: +12")
	require.Error(t, err)
	assert.Nil(t, sb)
	assert.True(t, errors.Is(err, ErrBadDescription))
	assert.True(t, IsFatal(err))
}

func TestParseAttacks(t *testing.T) {
	text := `Flaming greatsword +13 vs. AC (2 attacks)—50 damage
Natural even hit: The target takes 10 ongoing fire damage.
Miss: 25 damage.
and the target is dazed.
Rock +12 vs. PD—40 damage
[Special Trigger] C: Lava burst +13 vs. PD—30 fire damage`

	sb, err := ParseAttacks(text)
	require.NoError(t, err)

	require.Len(t, sb.Attacks, 2)
	sword := sb.Attacks[0]
	assert.Equal(t, "Flaming greatsword +13 vs. AC (2 attacks)", sword.Name)
	assert.Equal(t, "50 damage", sword.Description)
	assert.Equal(t, []string{"Natural even hit", "Miss"}, names(sword.Traits))
	assert.Equal(t, "25 damage. and the target is dazed.", sword.Traits[1].Description)

	assert.Equal(t, "Rock +12 vs. PD", sb.Attacks[1].Name)
	assert.Empty(t, sb.Attacks[1].Traits)

	require.Len(t, sb.TriggeredAttacks, 1)
	assert.Equal(t, "C: Lava burst +13 vs. PD", sb.TriggeredAttacks[0].Name)
	assert.Equal(t, "30 fire damage", sb.TriggeredAttacks[0].Description)
}

func TestParseAttacks_TraitBeforeFirstAttackIsTopLevel(t *testing.T) {
	sb, err := ParseAttacks("Flight: The dragon flies.\nBite +9 vs. AC—20 damage")
	require.NoError(t, err)
	assert.Equal(t, []string{"Flight"}, names(sb.Traits))
	require.Len(t, sb.Attacks, 1)
	assert.Empty(t, sb.Attacks[0].Traits)
}

func TestParseTraits(t *testing.T) {
	text := `Resist fire 16+.
Fiery escalator: The giant adds the escalation die to attacks.
[Special Trigger] Lava burst +13 vs. PD—30 fire damage
Natural 16+: The target is stuck.
Hot blood: Creatures that hit it take 5 damage.
Nastier Specials
Burning aura: Enemies engaged with it take 10 fire damage.
[Special Trigger] Flame jet +10 vs. PD—15 damage`

	sb, err := ParseTraits(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"Resist fire 16+", "Fiery escalator", "Hot blood"}, names(sb.Traits))
	assert.Equal(t,
		"When a fire attack targets this creature, the attacker must roll a natural 16+ on the attack roll or it only deals half damage.",
		sb.Traits[0].Description)

	assert.Equal(t, []string{"Lava burst +13 vs. PD", "Flame jet +10 vs. PD"}, names(sb.TriggeredAttacks))
	assert.Equal(t, []string{"Natural 16+"}, names(sb.TriggeredAttacks[0].Traits))

	assert.Equal(t, []string{"Burning aura"}, names(sb.NastierTraits))
	assert.Empty(t, sb.Attacks)
}

func TestParseNastierTraits(t *testing.T) {
	text := `Nastier Specials
Burning aura: Enemies engaged with it take 10 fire damage.
Resist cold 12+.
Nastier Specials
Hotter blood: Creatures that hit it take 10 damage.`

	sb, err := ParseNastierTraits(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"Burning aura", "Resist cold 12+", "Hotter blood"}, names(sb.NastierTraits))
	assert.Empty(t, sb.Traits)
}

func TestParseDefenses(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [4]string
		base [4]string
		mook bool
	}{
		{
			name: "one per line",
			text: "AC 24\nPD 22\nMD 18\nHP 340",
			want: [4]string{"24", "22", "18", "340"},
			base: [4]string{"24", "22", "18", "340"},
		},
		{
			name: "inline",
			text: "AC 24 PD 22 MD 18 HP 340",
			want: [4]string{"24", "22", "18", "340"},
			base: [4]string{"24", "22", "18", "340"},
		},
		{
			name: "bare qualifier line",
			text: "AC 24\n(in lair) 27\nPD 22\nMD 18\nHP 340",
			want: [4]string{"24 (in lair: 27)", "22", "18", "340"},
			base: [4]string{"24", "22", "18", "340"},
		},
		{
			name: "mook hit points",
			text: "AC 17\nPD 15\nMD 11\nHP 7 (mook)",
			want: [4]string{"17", "15", "11", "7 (mook)"},
			base: [4]string{"17", "15", "11", "7"},
			mook: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb, err := ParseDefenses(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, [4]string{sb.AC, sb.PD, sb.MD, sb.HP})
			assert.Equal(t, tt.base, [4]string{sb.ACBase, sb.PDBase, sb.MDBase, sb.HPBase})
			assert.Equal(t, tt.mook, sb.Mook)
		})
	}
}

func TestParseDefenses_Missing(t *testing.T) {
	sb, err := ParseDefenses("AC 24\nPD 22\nMD 18")
	require.Error(t, err)
	assert.Nil(t, sb)
	assert.True(t, errors.Is(err, ErrBadDefenses))
	assert.Contains(t, err.Error(), "missing HP")
}

func TestZipDefenses(t *testing.T) {
	sb := statblock.New()
	zipDefenses(
		[]string{"AC", "(in lair)", "PD", "MD", "HP"},
		[]string{"27", "25", "28", "26", "20"},
		sb)

	assert.Equal(t, "27 (in lair: 25)", sb.AC)
	assert.Equal(t, "27", sb.ACBase)
	assert.Equal(t, "28", sb.PD)
	assert.Equal(t, "26", sb.MD)
	assert.Equal(t, "20", sb.HP)
}

func TestZipDefenses_LeadingQualifierIsDropped(t *testing.T) {
	sb := statblock.New()
	zipDefenses([]string{"in lair", "AC"}, []string{"25", "27"}, sb)
	assert.Equal(t, "27", sb.AC)
}

func TestParse_PDFWholeBlock(t *testing.T) {
	text := `Fire Giant
Fire giants are hot-tempered.
Large 8th level wrecker [giant]
Initiative: +12
Vulnerability: cold
Flaming greatsword +13 vs. AC (2 attacks)—50 damage
Miss: 25 damage.
Fiery escalator: The giant adds the escalation die.
AC 24
PD 22
MD 18
HP 340`

	sb, err := New(PDF).Parse(text)
	require.NoError(t, err)

	assert.Equal(t, "Fire Giant", sb.Name)
	assert.Equal(t, "12", sb.Initiative)
	assert.Equal(t, "Cold", sb.Vulnerability)
	require.Len(t, sb.Attacks, 1)
	assert.Equal(t, []string{"Miss"}, names(sb.Attacks[0].Traits))
	assert.Equal(t, []string{"Fiery escalator"}, names(sb.Traits))
	assert.Equal(t, "340", sb.HP)
}

func TestParse_PDFWithoutDefenses(t *testing.T) {
	sb, err := New(PDF).Parse("Ogre\n3rd level troop [giant]\nClub +8 vs. AC—10 damage")
	assert.Nil(t, sb)
	assert.True(t, errors.Is(err, ErrBadDefenses))
}

func srdText(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestParseSRD(t *testing.T) {
	text := srdText(
		"Fire Giant",
		"Large 8th level wrecker [giant]",
		"Initiative: +12",
		"Vulnerability: cold",
		"",
		"Flaming greatsword +13 vs. AC (2 attacks)—50 damage",
		" Natural even hit: The target takes 10 ongoing fire damage.",
		" Miss: 25 damage.",
		"and the target is dazed.",
		"Fiery escalator: The giant adds the escalation die.",
		"",
		"Lava burst +13 vs. PD—30 fire damage",
		" Natural 16+: The target is stuck.",
		"Nastier Specials",
		"Burning aura: Enemies take 10 fire damage.",
		"\t",
		"AC",
		"PD",
		"MD",
		"HP",
		"24",
		"22",
		"18",
		"340",
	)

	sb, err := ParseSRD(text)
	require.NoError(t, err)

	assert.Equal(t, "Fire Giant", sb.Name)
	assert.Equal(t, "large", sb.Size)
	assert.Equal(t, "12", sb.Initiative)
	assert.Equal(t, "Cold", sb.Vulnerability)

	require.Len(t, sb.Attacks, 1)
	assert.Equal(t, []string{"Natural even hit", "Miss"}, names(sb.Attacks[0].Traits))
	assert.Equal(t, "25 damage.<br>and the target is dazed.", sb.Attacks[0].Traits[1].Description)

	assert.Equal(t, []string{"Fiery escalator"}, names(sb.Traits))
	require.Len(t, sb.TriggeredAttacks, 1)
	assert.Equal(t, "Lava burst +13 vs. PD", sb.TriggeredAttacks[0].Name)
	assert.Equal(t, []string{"Natural 16+"}, names(sb.TriggeredAttacks[0].Traits))
	assert.Equal(t, []string{"Burning aura"}, names(sb.NastierTraits))

	assert.Equal(t, [4]string{"24", "22", "18", "340"}, [4]string{sb.AC, sb.PD, sb.MD, sb.HP})
}

func TestParseSRD_SpecialTriggerInAttackPass(t *testing.T) {
	text := srdText(
		"Lava Wyrm",
		"Huge 9th level wrecker [dragon]",
		"Initiative: +15",
		"Bite +14 vs. AC—60 damage",
		"[Special Trigger] C: Fire breath +14 vs. PD—40 fire damage",
		"\t",
		"AC", "PD", "MD", "HP",
		"25", "23", "21", "560",
	)

	sb, err := ParseSRD(text)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bite +14 vs. AC"}, names(sb.Attacks))
	assert.Equal(t, []string{"C: Fire breath +14 vs. PD"}, names(sb.TriggeredAttacks))
}

func TestParseSRD_MissingSeparator(t *testing.T) {
	text := srdText(
		"Ogre",
		"3rd level troop [giant]",
		"Initiative: +5",
		"Club +8 vs. AC—10 damage",
		"AC", "PD", "MD", "HP",
		"19", "17", "13", "90",
	)

	sb, err := ParseSRD(text)
	assert.Nil(t, sb)
	assert.True(t, errors.Is(err, ErrBadDefenses))
}

func TestParseSRD_QualifiedDefenses(t *testing.T) {
	text := srdText(
		"Ogre",
		"3rd level troop [giant]",
		"Initiative: +5",
		"Club +8 vs. AC—10 damage",
		"\t",
		"AC", "in lair", "PD", "MD", "HP",
		"27", "25", "28", "26", "20",
	)

	sb, err := ParseSRD(text)
	require.NoError(t, err)
	assert.Equal(t, "27 (in lair: 25)", sb.AC)
	assert.Equal(t, "28", sb.PD)
	assert.Equal(t, "26", sb.MD)
	assert.Equal(t, "20", sb.HP)
}

func TestParseSRD_TooShort(t *testing.T) {
	_, err := ParseSRD("Ogre\n3rd level troop [giant]")
	assert.True(t, errors.Is(err, ErrBadDescription))
}

func TestSpecialTriggerRoutesToTriggeredInAllDialects(t *testing.T) {
	const line = "[Special Trigger] Tail lash +10 vs. PD—15 damage"

	sb, err := New(PDF).ParseAttacks(line)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tail lash +10 vs. PD"}, names(sb.TriggeredAttacks))

	sb, err = New(SRD).ParseAttacks(line)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tail lash +10 vs. PD"}, names(sb.TriggeredAttacks))

	html := `<table><tr><td>Drake</td></tr><tr><td>2nd level wrecker [dragon]</td></tr>
<tr><td>Initiative: +6</td></tr><tr><td>` + line + `</td></tr>
<tr><td>AC 18</td></tr><tr><td>PD 16</td></tr><tr><td>MD 12</td></tr><tr><td>HP 36</td></tr></table>`
	sb, err = ParseSRDHTML(html)
	require.NoError(t, err)
	assert.Empty(t, sb.Attacks)
	assert.Equal(t, []string{"Tail lash +10 vs. PD"}, names(sb.TriggeredAttacks))
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name string
		want Dialect
	}{
		{"pdf", PDF},
		{"", PDF},
		{"SRD", SRD},
		{"plain", SRD},
		{"html", SRDHTML},
		{"srd-html", SRDHTML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDialect(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDialect("docx")
	assert.True(t, errors.Is(err, ErrUnknownDialect))
}

func TestDialectString(t *testing.T) {
	assert.Equal(t, "pdf", PDF.String())
	assert.Equal(t, "srd", SRD.String())
	assert.Equal(t, "html", SRDHTML.String())
	assert.Equal(t, "unknown", Dialect(42).String())
}

func TestNew_UnknownDialectFallsBackToPDF(t *testing.T) {
	p := New(Dialect(42))
	assert.Equal(t, PDF, p.Dialect())
	assert.Equal(t, "pdf", p.Grammar().Name)
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("")
	require.NoError(t, err)
	assert.Equal(t, SectionFull, s)

	s, err = ParseSection(" Defenses ")
	require.NoError(t, err)
	assert.Equal(t, SectionDefenses, s)

	_, err = ParseSection("loot")
	assert.True(t, errors.Is(err, ErrUnknownSection))

	sb, err := New(PDF).ParseSection(SectionDefenses, "AC 24 PD 22 MD 18 HP 340")
	require.NoError(t, err)
	assert.Equal(t, "24", sb.AC)

	_, err = New(PDF).ParseSection(Section("loot"), "")
	assert.True(t, errors.Is(err, ErrUnknownSection))
}

func TestSectionsMerge(t *testing.T) {
	p := New(PDF)
	sb := statblock.New()

	parts := map[Section]string{
		SectionDescription: "Ogre\n3rd level troop [giant]\nInitiative: +5",
		SectionAttacks:     "Club +8 vs. AC—10 damage\nMiss: 4 damage.",
		SectionTraits:      "Big: It is big.",
		SectionDefenses:    "AC 19\nPD 17\nMD 13\nHP 90",
	}
	for _, section := range Sections {
		text, ok := parts[section]
		if !ok {
			continue
		}
		partial, err := p.ParseSection(section, text)
		require.NoError(t, err, section)
		sb.Merge(partial)
	}

	assert.Equal(t, "Ogre", sb.Name)
	assert.Equal(t, "5", sb.Initiative)
	assert.Equal(t, []string{"Club +8 vs. AC"}, names(sb.Attacks))
	assert.Equal(t, []string{"Big"}, names(sb.Traits))
	assert.Equal(t, "90", sb.HP)
}
