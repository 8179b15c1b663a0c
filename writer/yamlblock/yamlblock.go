// Package yamlblock writes statblocks as Fantasy Statblocks YAML.
package yamlblock

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/statkit/statblock"
	"github.com/randalmurphal/statkit/writer"
)

// Name is the format name the writer registers under.
const Name = "yaml"

// Layout is the Fantasy Statblocks layout the output targets.
const Layout = "Basic 13th Age Monster Layout"

const fence = "```statblock"

func init() {
	writer.Register(Name, func(opts writer.Options) (writer.Writer, error) {
		return New(opts), nil
	})
}

// Writer renders Fantasy Statblocks YAML.
type Writer struct {
	fenced bool
}

// New creates a YAML writer.
func New(opts writer.Options) *Writer {
	return &Writer{fenced: opts.Fenced}
}

// Name implements writer.Writer.
func (w *Writer) Name() string {
	return Name
}

// Write implements writer.Writer.
func (w *Writer) Write(sb *statblock.Statblock) ([]byte, error) {
	if sb == nil {
		return nil, writer.WriteError(Name, writer.ErrNilStatblock)
	}

	var buf bytes.Buffer
	if w.fenced {
		buf.WriteString(fence + "\n")
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fromStatblock(sb)); err != nil {
		return nil, writer.WriteError(Name, fmt.Errorf("encode statblock: %w", err))
	}
	if err := enc.Close(); err != nil {
		return nil, writer.WriteError(Name, fmt.Errorf("flush yaml: %w", err))
	}

	if w.fenced {
		buf.WriteString("```\n")
	}
	return buf.Bytes(), nil
}

// block is the Fantasy Statblocks document, fields in layout order.
type block struct {
	Layout        string `yaml:"layout"`
	Name          string `yaml:"name"`
	FlavorText    string `yaml:"flavor_text,omitempty"`
	Size          string `yaml:"size,omitempty"`
	Level         string `yaml:"level"`
	Ordinal       string `yaml:"ordinal"`
	Role          string `yaml:"role"`
	Type          string `yaml:"type"`
	Initiative    string `yaml:"initiative"`
	Vulnerability string `yaml:"vulnerability,omitempty"`
	Mook          bool   `yaml:"mook,omitempty"`

	Actions          []entry `yaml:"actions"`
	Traits           []entry `yaml:"traits"`
	TriggeredActions []entry `yaml:"triggered_actions"`
	NastierTraits    []entry `yaml:"nastier_traits"`

	AC string `yaml:"ac"`
	PD string `yaml:"pd"`
	MD string `yaml:"md"`
	HP string `yaml:"hp"`
}

type entry struct {
	Name   string  `yaml:"name"`
	Desc   string  `yaml:"desc"`
	Traits []entry `yaml:"traits,omitempty"`
}

func fromStatblock(sb *statblock.Statblock) block {
	return block{
		Layout:           Layout,
		Name:             sb.Name,
		FlavorText:       sb.FlavorText,
		Size:             statblock.TitleCase(sb.Size),
		Level:            sb.Level,
		Ordinal:          sb.LevelOrdinal,
		Role:             statblock.TitleCase(sb.Role),
		Type:             statblock.TitleCase(sb.Type),
		Initiative:       sb.Initiative,
		Vulnerability:    sb.Vulnerability,
		Mook:             sb.Mook,
		Actions:          fromAttacks(sb.Attacks),
		Traits:           fromTraits(sb.Traits),
		TriggeredActions: fromAttacks(sb.TriggeredAttacks),
		NastierTraits:    fromTraits(sb.NastierTraits),
		AC:               sb.AC,
		PD:               sb.PD,
		MD:               sb.MD,
		HP:               sb.HP,
	}
}

func fromAttacks(attacks []*statblock.Attack) []entry {
	out := make([]entry, 0, len(attacks))
	for _, a := range attacks {
		out = append(out, entry{Name: a.Name, Desc: a.Description, Traits: nested(a.Traits)})
	}
	return out
}

func fromTraits(traits []*statblock.Trait) []entry {
	out := make([]entry, 0, len(traits))
	for _, t := range traits {
		out = append(out, entry{Name: t.Name, Desc: t.Description, Traits: nested(t.Traits)})
	}
	return out
}

func nested(traits []*statblock.Trait) []entry {
	if len(traits) == 0 {
		return nil
	}
	return fromTraits(traits)
}
