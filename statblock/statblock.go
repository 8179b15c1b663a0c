package statblock

// Statblock is the complete structured description of one creature.
type Statblock struct {
	Name          string `json:"name" yaml:"name"`
	FlavorText    string `json:"flavorText" yaml:"flavorText"`
	Size          string `json:"size" yaml:"size"`
	Level         string `json:"level" yaml:"level"`
	LevelOrdinal  string `json:"levelOrdinal" yaml:"levelOrdinal"`
	Role          string `json:"role" yaml:"role"`
	Type          string `json:"type" yaml:"type"`
	Initiative    string `json:"initiative" yaml:"initiative"`
	Vulnerability string `json:"vulnerability" yaml:"vulnerability"`
	Mook          bool   `json:"mook" yaml:"mook"`

	Attacks          []*Attack `json:"attacks" yaml:"attacks"`
	Traits           []*Trait  `json:"traits" yaml:"traits"`
	TriggeredAttacks []*Attack `json:"triggeredAttacks" yaml:"triggeredAttacks"`
	NastierTraits    []*Trait  `json:"nastierTraits" yaml:"nastierTraits"`

	// Defenses are display strings and may carry a qualifier, e.g.
	// "27 (in lair: 25)". The Base variants hold the leading number alone.
	AC     string `json:"ac" yaml:"ac"`
	PD     string `json:"pd" yaml:"pd"`
	MD     string `json:"md" yaml:"md"`
	HP     string `json:"hp" yaml:"hp"`
	ACBase string `json:"ac_base,omitempty" yaml:"ac_base,omitempty"`
	PDBase string `json:"pd_base,omitempty" yaml:"pd_base,omitempty"`
	MDBase string `json:"md_base,omitempty" yaml:"md_base,omitempty"`
	HPBase string `json:"hp_base,omitempty" yaml:"hp_base,omitempty"`

	Description string `json:"description" yaml:"description"`
}

// New returns an empty record with all list fields initialized.
func New() *Statblock {
	return &Statblock{
		Attacks:          []*Attack{},
		Traits:           []*Trait{},
		TriggeredAttacks: []*Attack{},
		NastierTraits:    []*Trait{},
	}
}

// Normalize replaces nil list fields with empty ones. Decoded records and
// zero values go through it before they are handed on.
func (s *Statblock) Normalize() *Statblock {
	if s.Attacks == nil {
		s.Attacks = []*Attack{}
	}
	if s.Traits == nil {
		s.Traits = []*Trait{}
	}
	if s.TriggeredAttacks == nil {
		s.TriggeredAttacks = []*Attack{}
	}
	if s.NastierTraits == nil {
		s.NastierTraits = []*Trait{}
	}
	return s
}

// Merge copies every non-empty field of partial onto s. Triggered attacks
// are appended only when no attack of the same name is already present, so
// merging the same partial twice is the same as merging it once.
func (s *Statblock) Merge(partial *Statblock) {
	if partial == nil {
		return
	}

	mergeString(&s.Name, partial.Name)
	mergeString(&s.FlavorText, partial.FlavorText)
	mergeString(&s.Size, partial.Size)
	mergeString(&s.Level, partial.Level)
	mergeString(&s.LevelOrdinal, partial.LevelOrdinal)
	mergeString(&s.Role, partial.Role)
	mergeString(&s.Type, partial.Type)
	mergeString(&s.Initiative, partial.Initiative)
	mergeString(&s.Vulnerability, partial.Vulnerability)
	if partial.Mook {
		s.Mook = true
	}

	if len(partial.Attacks) > 0 {
		s.Attacks = partial.Attacks
	}
	if len(partial.Traits) > 0 {
		s.Traits = partial.Traits
	}
	if len(partial.NastierTraits) > 0 {
		s.NastierTraits = partial.NastierTraits
	}
	for _, attack := range partial.TriggeredAttacks {
		if !s.HasTriggeredAttack(attack.Name) {
			s.TriggeredAttacks = append(s.TriggeredAttacks, attack)
		}
	}

	mergeString(&s.AC, partial.AC)
	mergeString(&s.PD, partial.PD)
	mergeString(&s.MD, partial.MD)
	mergeString(&s.HP, partial.HP)
	mergeString(&s.ACBase, partial.ACBase)
	mergeString(&s.PDBase, partial.PDBase)
	mergeString(&s.MDBase, partial.MDBase)
	mergeString(&s.HPBase, partial.HPBase)
	mergeString(&s.Description, partial.Description)

	s.Normalize()
}

// HasTriggeredAttack reports whether a triggered attack with the given name
// is already recorded.
func (s *Statblock) HasTriggeredAttack(name string) bool {
	probe := &Attack{Name: name}
	for _, existing := range s.TriggeredAttacks {
		if existing.Equal(probe) {
			return true
		}
	}
	return false
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
