package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkup(t *testing.T) {
	page := []byte(`<html><body><ul>
		<li class="achieveRow" data-tooltip="&lt;p&gt;Get a kill&lt;/p&gt;&lt;span&gt;October 30, 2017&lt;/span&gt;" data-percent="62.1">
			<img src="img/first_blood.jpg">
			<a class="achieveTitle title" href="/a/1">First Blood</a>
		</li>
		<div class="achievement">
			<h3>Pacifist</h3>
			<div class="achieveDesc">Finish without killing</div>
		</div>
		<li class="achieve">
			<a href="/a/3">Speedrun</a>
			<img src="images/unlock_icon.png">
		</li>
	</ul></body></html>`)

	list := Markup(page)
	require.Len(t, list, 3)

	assert.Equal(t, "First Blood", list[0].Name)
	assert.Equal(t, "Get a kill", list[0].Description)
	assert.True(t, list[0].Unlocked)
	assert.Equal(t, "October 30, 2017", list[0].DateUnlocked)
	assert.Equal(t, "img/first_blood.jpg", list[0].Icon)
	assert.InDelta(t, 62.1, list[0].Percent, 0.001)

	assert.Equal(t, "Pacifist", list[1].Name)
	assert.Equal(t, "Finish without killing", list[1].Description)
	assert.False(t, list[1].Unlocked)

	assert.Equal(t, "Speedrun", list[2].Name)
	assert.True(t, list[2].Unlocked, "unlock icon marks the item unlocked")
	assert.Empty(t, list[2].DateUnlocked)
}

func TestMarkupIgnoresUnrelatedItems(t *testing.T) {
	page := []byte(`<ul>
		<li class="newsRow"><a>Patch Notes</a></li>
		<li class="achieveRow"><a>Real One</a></li>
	</ul>`)

	list := Markup(page)
	require.Len(t, list, 1)
	assert.Equal(t, "Real One", list[0].Name)
}

func TestUnlockFromMarkup(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		wantDate string
		unlocked bool
	}{
		{
			"escaped span date",
			"Unlocked&lt;br/&gt;&lt;span&gt;October 30, 2017&lt;/span&gt;",
			"October 30, 2017",
			true,
		},
		{
			"iso date in body",
			"<span>Some flavor text</span> achieved on 2020-05-01",
			"2020-05-01",
			true,
		},
		{
			"day month year",
			"Earned 30/10/2017 at home",
			"30/10/2017",
			true,
		},
		{
			"no date no marker",
			"Kill 10 enemies",
			"",
			false,
		},
		{
			"empty",
			"",
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, unlocked := UnlockFromMarkup(tt.fragment)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.unlocked, unlocked)
		})
	}
}
