package achievements

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, NormalizeName("First Blood"), NormalizeName("  first blood "))
	assert.Equal(t, NormalizeName("STRASSE"), NormalizeName("straße"))
	assert.NotEqual(t, NormalizeName("First Blood"), NormalizeName("First Blood II"))
}

func TestSetPutAndGet(t *testing.T) {
	s := NewSet()
	s.Put(&Achievement{Name: "First Blood", Description: "Get a kill"})

	got, ok := s.Get("  FIRST BLOOD ")
	require.True(t, ok)
	assert.Equal(t, "First Blood", got.Name)
	assert.Equal(t, "Get a kill", got.Description)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestSetOrderPreserved(t *testing.T) {
	s := FromList([]Achievement{
		{Name: "Alpha"},
		{Name: "Beta"},
		{Name: "Gamma"},
	})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "Beta", list[1].Name)
	assert.Equal(t, "Gamma", list[2].Name)
}

func TestFromListDuplicateLastWins(t *testing.T) {
	s := FromList([]Achievement{
		{Name: "Alpha", Description: "first"},
		{Name: "Beta"},
		{Name: "alpha", Description: "second", Unlocked: true},
	})

	require.Equal(t, 2, s.Len())
	list := s.List()
	// Last occurrence's record, first occurrence's position.
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "second", list[0].Description)
	assert.True(t, list[0].Unlocked)
	assert.Equal(t, "Beta", list[1].Name)
}

func TestFromListSkipsInvalid(t *testing.T) {
	s := FromList([]Achievement{
		{Name: ""},
		{Name: "   "},
		{Name: strings.Repeat("x", 300)},
		{Name: "Real"},
	})

	assert.Equal(t, 1, s.Len())
}

func TestSetJSONRoundTrip(t *testing.T) {
	s := FromList([]Achievement{
		{Name: "Alpha", Description: "desc", Icon: "a.png", Hidden: true, Percent: 12.5},
		{Name: "Beta", Unlocked: true, DateUnlocked: "October 30, 2017 1:07 PM", Points: 50},
	})

	data, err := json.Marshal(s)
	require.NoError(t, err)

	// Cache form uses the legacy field casing.
	assert.Contains(t, string(data), `"name":"Alpha"`)
	assert.Contains(t, string(data), `"DateUnlocked":"October 30, 2017 1:07 PM"`)

	restored := NewSet()
	require.NoError(t, json.Unmarshal(data, restored))
	require.Equal(t, 2, restored.Len())
	assert.Equal(t, s.List(), restored.List())
}
