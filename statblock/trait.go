package statblock

import "strings"

// Trait is a named passive ability or qualifier.
type Trait struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Traits      []*Trait `json:"subTraits,omitempty" yaml:"subTraits,omitempty"`
}

// NewTrait creates a trait with a trimmed name and description.
func NewTrait(name, description string) *Trait {
	return &Trait{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Traits:      []*Trait{},
	}
}

// AppendDescription adds follow-up text to the description, joined by sep.
func (t *Trait) AppendDescription(text, sep string) {
	t.Description = appendText(t.Description, text, sep)
}

// Attack is a named offensive action. Hit and miss clauses hang off it as
// nested traits.
type Attack struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Traits      []*Trait `json:"traits" yaml:"traits"`
}

// NewAttack creates an attack with a trimmed name and description.
func NewAttack(name, description string) *Attack {
	return &Attack{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Traits:      []*Trait{},
	}
}

// AppendDescription adds follow-up text to the description, joined by sep.
func (a *Attack) AppendDescription(text, sep string) {
	a.Description = appendText(a.Description, text, sep)
}

// AddTrait nests a trait under the attack.
func (a *Attack) AddTrait(t *Trait) {
	a.Traits = append(a.Traits, t)
}

// Equal reports whether two attacks share a name. Attack identity is the
// name alone.
func (a *Attack) Equal(other *Attack) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Name == other.Name
}

func appendText(current, text, sep string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return current
	}
	if current == "" {
		return text
	}
	return current + sep + text
}
