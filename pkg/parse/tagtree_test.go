package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagTree(t *testing.T) {
	payload := []byte(`<save>
		<achievement name="First Blood" description="Get a kill" unlocked="true"/>
		<achievement>
			<name>Pacifist</name>
			<desc>Finish without killing</desc>
			<unlocked>false</unlocked>
		</achievement>
		<achievement name="Speedrun" unlockedAt="2020-05-01"/>
	</save>`)

	list := TagTree(payload)
	require.Len(t, list, 3)

	assert.Equal(t, "First Blood", list[0].Name)
	assert.Equal(t, "Get a kill", list[0].Description)
	assert.True(t, list[0].Unlocked)

	assert.Equal(t, "Pacifist", list[1].Name)
	assert.Equal(t, "Finish without killing", list[1].Description)
	assert.False(t, list[1].Unlocked)

	assert.Equal(t, "Speedrun", list[2].Name)
	assert.True(t, list[2].Unlocked)
	assert.Equal(t, "2020-05-01", list[2].DateUnlocked)
}

func TestTagTreeSkipsNamelessNodes(t *testing.T) {
	payload := []byte(`<achievements><achievement unlocked="true"/></achievements>`)

	// The container tag also matches "ach" but yields no name.
	assert.Empty(t, TagTree(payload))
}
