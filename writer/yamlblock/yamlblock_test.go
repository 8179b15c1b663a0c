package yamlblock

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

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
	sword.AddTrait(statblock.NewTrait("Miss", "25 damage."))
	sb.Attacks = append(sb.Attacks, sword)
	sb.Traits = append(sb.Traits, statblock.NewTrait("Fiery escalator", "Adds the escalation die."))
	sb.AC, sb.PD, sb.MD, sb.HP = "24", "22", "18", "340"
	return sb
}

func TestWrite(t *testing.T) {
	out, err := New(writer.Options{}).Write(fireGiant())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))

	assert.Equal(t, Layout, doc["layout"])
	assert.Equal(t, "Fire Giant", doc["name"])
	assert.Equal(t, "Large", doc["size"])
	assert.Equal(t, "8th", doc["ordinal"])
	assert.Equal(t, "Wrecker", doc["role"])
	assert.Equal(t, "24", doc["ac"])
	assert.NotContains(t, doc, "mook")
	assert.NotContains(t, doc, "vulnerability")

	actions, ok := doc["actions"].([]any)
	require.True(t, ok)
	require.Len(t, actions, 1)
	action := actions[0].(map[string]any)
	assert.Equal(t, "Flaming greatsword +13 vs. AC", action["name"])
	assert.Equal(t, "50 damage", action["desc"])
	assert.Len(t, action["traits"], 1)

	assert.Equal(t, []any{}, doc["triggered_actions"])
}

func TestWrite_FieldOrder(t *testing.T) {
	out, err := New(writer.Options{}).Write(fireGiant())
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "layout: "+Layout+"\nname: Fire Giant\n"))
	assert.Less(t, strings.Index(text, "actions:"), strings.Index(text, "\nac:"))
}

func TestWrite_Fenced(t *testing.T) {
	out, err := New(writer.Options{Fenced: true}).Write(fireGiant())
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "```statblock\nlayout:"))
	assert.True(t, strings.HasSuffix(text, "\n```\n"))
}

func TestWrite_Nil(t *testing.T) {
	_, err := New(writer.Options{}).Write(nil)
	assert.True(t, errors.Is(err, writer.ErrNilStatblock))

	var werr *writer.Error
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, Name, werr.Format)
}

func TestRegistered(t *testing.T) {
	w, err := writer.New(Name, writer.Options{})
	require.NoError(t, err)
	assert.Equal(t, Name, w.Name())
}
