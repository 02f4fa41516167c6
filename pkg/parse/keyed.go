package parse

import (
	"github.com/tidwall/gjson"

	"github.com/agentstation/trophycase/pkg/achievements"
)

// Keyed parses a keyed-object payload: a top-level object whose keys are
// achievement names and whose values carry an "earned" flag and an optional
// "earned_time" in seconds since epoch. This is the layout several emulation
// layers write for per-game unlock state.
func Keyed(payload []byte) []achievements.Achievement {
	doc := gjson.ParseBytes(payload)
	if !doc.IsObject() {
		return nil
	}

	var list []achievements.Achievement
	doc.ForEach(func(key, value gjson.Result) bool {
		name := Decode(key.String())
		if name == "" || !value.IsObject() {
			return true
		}

		f := newFields(value)
		a := achievements.Achievement{
			Name:        name,
			Description: Decode(f.str(descriptionKeys)),
			Icon:        f.str(iconKeys),
		}

		earned, hasEarned := f.boolean([]string{"earned", "unlocked", "achieved"})
		if hasEarned {
			a.Unlocked = earned
		}
		if t, ok := f.lookup([]string{"earned_time", "unlock_time", "time"}); ok {
			if formatted := formatEpoch(t.Int()); formatted != "" {
				a.DateUnlocked = formatted
				if !hasEarned {
					a.Unlocked = true
				}
			}
		}

		list = append(list, a)
		return true
	})
	return list
}
