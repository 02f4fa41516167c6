package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeForFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
		want Shape
	}{
		{"json array", "achievements.json", `[{"name":"a"}]`, ShapeArray},
		{"json keyed", "achievements.json", `{"ACH_ONE":{}}`, ShapeKeyed},
		{"json wrapped array", "achievements.json", `{"achievements":[{"name":"a"}]}`, ShapeArray},
		{"json wrapped array capitalized", "a.json", `{"Achievements":[{"name":"a"}]}`, ShapeArray},
		{"json wrapper holding object stays keyed", "a.json", `{"achievements":{"ACH_ONE":{}}}`, ShapeKeyed},
		{"json with byte order mark", "a.json", "\uFEFF[1]", ShapeArray},
		{"json array with leading space", "a.JSON", "  \n[", ShapeArray},
		{"xml", "stats.xml", "<save/>", ShapeTagTree},
		{"html", "page.html", "<div/>", ShapeMarkup},
		{"htm", "page.htm", "<div/>", ShapeMarkup},
		{"ini", "achievements.ini", "[ACH_ONE]", ShapeFreeText},
		{"log", "game.log", "achievement unlocked", ShapeFreeText},
		{"extensionless array", "achievements", `[1]`, ShapeArray},
		{"extensionless object", "achievements", `{"a":1}`, ShapeKeyed},
		{"extensionless markup", "achievements", `<root/>`, ShapeTagTree},
		{"extensionless text", "achievements", `plain`, ShapeFreeText},
		{"empty", "achievements", ``, ShapeFreeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShapeForFile(tt.path, []byte(tt.data)))
		})
	}
}

func TestShapeValidation(t *testing.T) {
	for _, shape := range Shapes() {
		assert.True(t, shape.IsValid(), "shape %q", shape)
	}
	assert.False(t, Shape("bogus").IsValid())
	assert.False(t, Shape("").IsValid())
}

func TestPayloadDispatch(t *testing.T) {
	array := []byte(`[{"name":"a"}]`)

	assert.Len(t, Payload(ShapeArray, array), 1)
	assert.Len(t, Payload(ShapeKeyed, []byte(`{"ACH":{"earned":true}}`)), 1)
	assert.Empty(t, Payload(Shape("bogus"), array))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"Rock &amp; Roll", "Rock & Roll"},
		{"double &amp;amp; escaped", "double & escaped"},
		{"percent%20encoded", "percent encoded"},
		{"keeps+plus", "keeps+plus"},
		{"&lt;span&gt;", "<span>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.input))
		})
	}
}
