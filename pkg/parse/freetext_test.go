package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeText(t *testing.T) {
	payload := []byte(`
[2017-10-30 13:07:01] Achievement unlocked: "First Blood"
[2017-10-30 13:09:44] loading save slot 2
[2017-10-30 13:12:03] achievement progress - Pacifist
trophy earned: 'Speedrun' unlocked
`)

	list := FreeText(payload)
	require.Len(t, list, 3)

	assert.Equal(t, "First Blood", list[0].Name)
	assert.True(t, list[0].Unlocked)

	assert.Equal(t, "Pacifist", list[1].Name)
	assert.False(t, list[1].Unlocked)

	assert.Equal(t, "Speedrun", list[2].Name)
	assert.True(t, list[2].Unlocked)
}

func TestFreeTextSkipsUnrelatedLines(t *testing.T) {
	payload := []byte(`
starting engine
shader cache: warm
player joined: "Gordon"
`)

	assert.Empty(t, FreeText(payload))
}

func TestFreeTextStripsStateTokens(t *testing.T) {
	payload := []byte(`ach: Night Owl unlocked`)

	list := FreeText(payload)
	require.Len(t, list, 1)
	assert.Equal(t, "Night Owl", list[0].Name)
	assert.True(t, list[0].Unlocked)
}

func TestFreeTextEmptyPayload(t *testing.T) {
	assert.Empty(t, FreeText(nil))
	assert.Empty(t, FreeText([]byte("   \n\n")))
}
