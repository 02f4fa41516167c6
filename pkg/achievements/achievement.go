// Package achievements defines the core data model for per-title achievement
// records and the ordered, name-keyed set they are reconciled into.
package achievements

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/trophycase/pkg/constants"
)

// Achievement represents one unlockable unit of progress for a title.
//
// The JSON field names match the cache files written by earlier releases and
// must not change casing.
type Achievement struct {
	// Name is the display name and the merge key. Matching is exact,
	// case-insensitive, after trimming.
	Name string `json:"name"`

	// Description of how the achievement is earned, if known.
	Description string `json:"description"`

	// Icon is an icon reference (URL or relative path), if known.
	Icon string `json:"icon"`

	// Hidden marks achievements the source flags as secret.
	Hidden bool `json:"hidden"`

	// Percent is the population-wide unlock rate, if the source supplies it.
	Percent float64 `json:"percent"`

	// Unlocked reports whether this account has earned the achievement.
	// Once true it never reverts during a merge.
	Unlocked bool `json:"unlocked"`

	// DateUnlocked is a free-form timestamp taken verbatim from whichever
	// source supplied it; it is never reformatted during merge.
	DateUnlocked string `json:"DateUnlocked"`

	// Points is the score value of the achievement, if the source supplies it.
	Points float64 `json:"points"`
}

// foldCaser performs Unicode case folding for merge-key comparison.
var foldCaser = cases.Fold()

// NormalizeName returns the merge key for a display name: surrounding
// whitespace trimmed, then case-folded.
func NormalizeName(name string) string {
	return foldCaser.String(strings.TrimSpace(name))
}

// Valid reports whether the record carries enough identity to merge. Absurdly
// long names are rejected; they come from misparsed payloads, not titles.
func (a *Achievement) Valid() bool {
	if a == nil {
		return false
	}
	name := strings.TrimSpace(a.Name)
	return name != "" && len(name) <= constants.MaxNameLength
}
