// Package foundry writes statblocks as Foundry VTT actor documents for the
// Archmage (13th Age) system.
package foundry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/randalmurphal/statkit/statblock"
	"github.com/randalmurphal/statkit/writer"
)

// Name is the format name the writer registers under.
const Name = "foundry"

// ActorType is the Foundry actor type of every document written.
const ActorType = "npc"

func init() {
	writer.Register(Name, func(opts writer.Options) (writer.Writer, error) {
		return New(opts), nil
	})
}

// Writer renders actor JSON.
type Writer struct {
	image  string
	folder string
}

// New creates a Foundry writer.
func New(opts writer.Options) *Writer {
	return &Writer{image: opts.Foundry.Image, folder: opts.Foundry.Folder}
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
	out, err := json.MarshalIndent(w.Actor(sb), "", "  ")
	if err != nil {
		return nil, writer.WriteError(Name, fmt.Errorf("marshal actor: %w", err))
	}
	return append(out, '\n'), nil
}

// Actor converts a record to an actor document.
func (w *Writer) Actor(sb *statblock.Statblock) *Actor {
	hp := number(sb.HPBase, sb.HP)
	actor := &Actor{
		Name:   sb.Name,
		Type:   ActorType,
		Img:    w.image,
		Folder: w.folder,
		System: System{
			Attributes: Attributes{
				AC:    IntValue{number(sb.ACBase, sb.AC)},
				PD:    IntValue{number(sb.PDBase, sb.PD)},
				MD:    IntValue{number(sb.MDBase, sb.MD)},
				HP:    HitPoints{Value: hp, Max: hp},
				Init:  IntValue{number(sb.Initiative)},
				Level: IntValue{number(sb.Level)},
			},
			Details: Details{
				Size:          StringValue{sb.Size},
				Role:          StringValue{sb.Role},
				Type:          StringValue{sb.Type},
				Vulnerability: StringValue{sb.Vulnerability},
				Biography:     StringValue{sb.FlavorText},
				Mook:          BoolValue{sb.Mook},
				Defenses:      DefenseText{AC: sb.AC, PD: sb.PD, MD: sb.MD, HP: sb.HP},
			},
		},
		Items: []Item{},
	}

	for _, a := range sb.Attacks {
		actor.Items = append(actor.Items, action(a, GroupPrimary))
	}
	for _, a := range sb.TriggeredAttacks {
		actor.Items = append(actor.Items, action(a, GroupTriggered))
	}
	for _, t := range sb.Traits {
		actor.Items = append(actor.Items, trait(t, ItemTrait))
	}
	for _, t := range sb.NastierTraits {
		actor.Items = append(actor.Items, trait(t, ItemNastierSpecial))
	}
	return actor
}

// action maps an attack. A nested "Miss" trait becomes the miss clause;
// every other nested trait is kept as a named clause.
func action(a *statblock.Attack, group string) Item {
	item := Item{
		Name: a.Name,
		Type: ItemAction,
		System: ItemSystem{
			Group:  group,
			Attack: a.Name,
			Hit:    a.Description,
		},
	}
	for _, t := range a.Traits {
		if strings.EqualFold(t.Name, "miss") && item.System.Miss == "" {
			item.System.Miss = t.Description
			continue
		}
		item.System.Clauses = append(item.System.Clauses, Clause{Name: t.Name, Value: t.Description})
	}
	return item
}

func trait(t *statblock.Trait, kind string) Item {
	desc := t.Description
	for _, sub := range t.Traits {
		desc += fmt.Sprintf("\n%s: %s", sub.Name, sub.Description)
	}
	return Item{
		Name:   t.Name,
		Type:   kind,
		System: ItemSystem{Description: desc},
	}
}

// number returns the first candidate whose leading integer parses, or 0.
func number(candidates ...string) int {
	for _, c := range candidates {
		c = strings.TrimPrefix(strings.TrimSpace(c), "+")
		end := 0
		for end < len(c) && (c[end] >= '0' && c[end] <= '9' || (end == 0 && c[end] == '-')) {
			end++
		}
		if n, err := strconv.Atoi(c[:end]); err == nil {
			return n
		}
	}
	return 0
}
