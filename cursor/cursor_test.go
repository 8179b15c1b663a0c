package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TrimsAndDropsBlankLines(t *testing.T) {
	c := New("  Fire Giant  \r\n\n\tLarge 8th level wrecker [giant]\n   \n")

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Fire Giant", c.Line())
	c.Advance()
	assert.Equal(t, "Large 8th level wrecker [giant]", c.Line())
}

func TestNew_WithoutTrimKeepsLayout(t *testing.T) {
	c := New("Name\n\n Natural 16+: more\n\t\r\n", WithTrim(false))

	require.Equal(t, 5, c.Len())
	assert.Equal(t, "", c.Rest()[1])
	assert.Equal(t, " Natural 16+: more", c.Rest()[2])
	assert.Equal(t, "\t", c.Rest()[3])
}

func TestCursor_AdvancePastEnd(t *testing.T) {
	c := FromLines([]string{"a", "b"})

	assert.False(t, c.AtEnd())
	c.Advance(5)
	assert.True(t, c.AtEnd())
	assert.Equal(t, 5, c.Index())
	assert.Equal(t, "", c.Line())
	assert.Nil(t, c.Rest())
}

func TestCursor_SetIndexIsUnchecked(t *testing.T) {
	c := FromLines([]string{"a", "b", "c"})

	c.SetIndex(-1)
	assert.Equal(t, -1, c.Index())
	assert.False(t, c.AtEnd())
	assert.Equal(t, "", c.Line())

	c.SetIndex(2)
	assert.Equal(t, "c", c.Line())
}

func TestCursor_Peek(t *testing.T) {
	c := FromLines([]string{"a", "b", "c"})
	c.Advance()

	tests := []struct {
		name   string
		offset int
		want   string
		ok     bool
	}{
		{name: "previous", offset: -1, want: "a", ok: true},
		{name: "current", offset: 0, want: "b", ok: true},
		{name: "next", offset: 1, want: "c", ok: true},
		{name: "past end", offset: 2, want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Peek(tt.offset)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
