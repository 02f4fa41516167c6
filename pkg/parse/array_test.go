package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	payload := []byte(`[
		{"name": "First Blood", "description": "Get a kill", "icon": "fb.png", "hidden": false, "percent": 62.1, "unlocked": true, "DateUnlocked": "October 30, 2017 1:07 PM"},
		{"name": "Pacifist", "description": "Finish without killing", "hidden": true, "unlocked": false}
	]`)

	list := Array(payload)
	require.Len(t, list, 2)

	assert.Equal(t, "First Blood", list[0].Name)
	assert.Equal(t, "Get a kill", list[0].Description)
	assert.Equal(t, "fb.png", list[0].Icon)
	assert.True(t, list[0].Unlocked)
	assert.Equal(t, "October 30, 2017 1:07 PM", list[0].DateUnlocked)
	assert.InDelta(t, 62.1, list[0].Percent, 0.001)

	assert.Equal(t, "Pacifist", list[1].Name)
	assert.True(t, list[1].Hidden)
	assert.False(t, list[1].Unlocked)
}

func TestArrayCandidateKeys(t *testing.T) {
	payload := []byte(`[
		{"Title": "Speedrun", "Desc": "Under an hour", "achieved": 1, "unlock_time": 1509368820}
	]`)

	list := Array(payload)
	require.Len(t, list, 1)

	assert.Equal(t, "Speedrun", list[0].Name)
	assert.Equal(t, "Under an hour", list[0].Description)
	assert.True(t, list[0].Unlocked)
	assert.Equal(t, "October 30, 2017 1:07 PM", list[0].DateUnlocked)
}

func TestArrayWrapperObject(t *testing.T) {
	payload := []byte(`{"achievements": [{"name": "Wrapped"}]}`)

	list := Array(payload)
	require.Len(t, list, 1)
	assert.Equal(t, "Wrapped", list[0].Name)
}

func TestArrayDateImpliesUnlocked(t *testing.T) {
	// Older cache files carried only a date.
	payload := []byte(`[{"name": "Legacy", "DateUnlocked": "October 30, 2017 1:07 PM"}]`)

	list := Array(payload)
	require.Len(t, list, 1)
	assert.True(t, list[0].Unlocked)
	assert.Equal(t, "October 30, 2017 1:07 PM", list[0].DateUnlocked)
}

func TestArrayExplicitLockedKeepsDate(t *testing.T) {
	payload := []byte(`[{"name": "Locked", "unlocked": false, "DateUnlocked": ""}]`)

	list := Array(payload)
	require.Len(t, list, 1)
	assert.False(t, list[0].Unlocked)
}

func TestArraySkipsNamelessElements(t *testing.T) {
	payload := []byte(`[
		{"description": "no name here"},
		42,
		{"name": "Kept"}
	]`)

	list := Array(payload)
	require.Len(t, list, 1)
	assert.Equal(t, "Kept", list[0].Name)
}

func TestArrayDecodesEntities(t *testing.T) {
	payload := []byte(`[{"name": "Rock &amp; Roll", "description": "It&#39;s loud"}]`)

	list := Array(payload)
	require.Len(t, list, 1)
	assert.Equal(t, "Rock & Roll", list[0].Name)
	assert.Equal(t, "It's loud", list[0].Description)
}

func TestArrayRejectsNonArray(t *testing.T) {
	assert.Nil(t, Array([]byte(`{"name": "not a list"}`)))
	assert.Nil(t, Array([]byte(`not json at all`)))
	assert.Empty(t, Array([]byte(`[]`)))
}
