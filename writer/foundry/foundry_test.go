package foundry

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/statkit/statblock"
	"github.com/randalmurphal/statkit/writer"
)

func fireGiant() *statblock.Statblock {
	sb := statblock.New()
	sb.Name = "Fire Giant"
	sb.FlavorText = "Hot-tempered."
	sb.Size = "large"
	sb.Level = "8"
	sb.LevelOrdinal = "8th"
	sb.Role = "wrecker"
	sb.Type = "giant"
	sb.Initiative = "12"

	sword := statblock.NewAttack("Flaming greatsword +13 vs. AC", "50 damage")
	sword.AddTrait(statblock.NewTrait("Natural even hit", "10 ongoing fire damage."))
	sword.AddTrait(statblock.NewTrait("Miss", "25 damage."))
	sb.Attacks = append(sb.Attacks, sword)
	sb.TriggeredAttacks = append(sb.TriggeredAttacks, statblock.NewAttack("C: Lava burst", "30 fire damage"))

	escalator := statblock.NewTrait("Fiery escalator", "Adds the escalation die.")
	escalator.Traits = append(escalator.Traits, statblock.NewTrait("Escalation", "Only while bloodied."))
	sb.Traits = append(sb.Traits, escalator)
	sb.NastierTraits = append(sb.NastierTraits, statblock.NewTrait("Burning aura", "10 damage."))

	sb.AC, sb.ACBase = "27 (in lair: 25)", "27"
	sb.PD, sb.PDBase = "22", "22"
	sb.MD, sb.MDBase = "18", "18"
	sb.HP, sb.HPBase = "340", "340"
	return sb
}

func TestWrite(t *testing.T) {
	w := New(writer.Options{Foundry: writer.FoundryOptions{Image: "icons/giant.webp", Folder: "abc123"}})
	out, err := w.Write(fireGiant())
	require.NoError(t, err)

	var actor Actor
	require.NoError(t, json.Unmarshal(out, &actor))

	assert.Equal(t, "Fire Giant", actor.Name)
	assert.Equal(t, ActorType, actor.Type)
	assert.Equal(t, "icons/giant.webp", actor.Img)
	assert.Equal(t, "abc123", actor.Folder)

	attrs := actor.System.Attributes
	assert.Equal(t, 27, attrs.AC.Value)
	assert.Equal(t, 22, attrs.PD.Value)
	assert.Equal(t, 18, attrs.MD.Value)
	assert.Equal(t, HitPoints{Value: 340, Max: 340}, attrs.HP)
	assert.Equal(t, 12, attrs.Init.Value)
	assert.Equal(t, 8, attrs.Level.Value)

	assert.Equal(t, "27 (in lair: 25)", actor.System.Details.Defenses.AC)
	assert.Equal(t, "Hot-tempered.", actor.System.Details.Biography.Value)

	require.Len(t, actor.Items, 4)
	sword := actor.Items[0]
	assert.Equal(t, ItemAction, sword.Type)
	assert.Equal(t, GroupPrimary, sword.System.Group)
	assert.Equal(t, "50 damage", sword.System.Hit)
	assert.Equal(t, "25 damage.", sword.System.Miss)
	assert.Equal(t, []Clause{{Name: "Natural even hit", Value: "10 ongoing fire damage."}}, sword.System.Clauses)

	assert.Equal(t, GroupTriggered, actor.Items[1].System.Group)

	assert.Equal(t, ItemTrait, actor.Items[2].Type)
	assert.Equal(t, "Adds the escalation die.\nEscalation: Only while bloodied.", actor.Items[2].System.Description)

	assert.Equal(t, ItemNastierSpecial, actor.Items[3].Type)
}

func TestActor_FallsBackToDisplayValues(t *testing.T) {
	sb := statblock.New()
	sb.Name = "Goblin"
	sb.HP = "7 (mook)"
	sb.Initiative = "+3"

	actor := New(writer.Options{}).Actor(sb)
	assert.Equal(t, 7, actor.System.Attributes.HP.Max)
	assert.Equal(t, 3, actor.System.Attributes.Init.Value)
	assert.Equal(t, 0, actor.System.Attributes.AC.Value)
	assert.Empty(t, actor.Items)
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in   []string
		want int
	}{
		{[]string{"24"}, 24},
		{[]string{"", "24 (in lair: 27)"}, 24},
		{[]string{"-1"}, -1},
		{[]string{"+5"}, 5},
		{[]string{"lots"}, 0},
		{nil, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, number(tt.in...), tt.in)
	}
}

func TestWrite_Nil(t *testing.T) {
	_, err := New(writer.Options{}).Write(nil)
	assert.True(t, errors.Is(err, writer.ErrNilStatblock))
}

func TestSchema(t *testing.T) {
	s := Schema()
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, SchemaID, string(s.ID))
	assert.Contains(t, s.Required, "name")
	assert.Contains(t, s.Required, "system")
	assert.NotContains(t, s.Required, "img")

	_, ok := s.Properties.Get("items")
	assert.True(t, ok)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"urn:statkit:foundry-actor"`)
}

func TestRegistered(t *testing.T) {
	w, err := writer.New(Name, writer.Options{})
	require.NoError(t, err)
	assert.Equal(t, Name, w.Name())
}
