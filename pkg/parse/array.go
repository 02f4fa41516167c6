package parse

import (
	"time"

	"github.com/agentstation/utc"
	"github.com/tidwall/gjson"

	"github.com/agentstation/trophycase/pkg/achievements"
)

// unlockTimeLayout is the display form for timestamps that arrive as epoch
// seconds rather than preformatted text.
const unlockTimeLayout = "January 2, 2006 3:04 PM"

// formatEpoch renders integer seconds-since-epoch as display text.
func formatEpoch(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return utc.New(time.Unix(sec, 0)).Format(unlockTimeLayout)
}

// wrapperKeys are the container fields some stores wrap their array in.
var wrapperKeys = []string{"achievements", "Achievements", "items", "data"}

// Array parses an array-of-objects payload. Field names are matched via
// ordered candidate-key lists; elements that yield no name are skipped rather
// than failing the batch. Duplicate names keep the last occurrence.
func Array(payload []byte) []achievements.Achievement {
	doc := gjson.ParseBytes(payload)
	if !doc.IsArray() {
		// Some stores wrap the array in a container object.
		for _, wrapper := range wrapperKeys {
			if inner := doc.Get(wrapper); inner.IsArray() {
				doc = inner
				break
			}
		}
		if !doc.IsArray() {
			return nil
		}
	}

	var list []achievements.Achievement
	doc.ForEach(func(_, element gjson.Result) bool {
		if !element.IsObject() {
			return true
		}
		if a, ok := arrayElement(element); ok {
			list = append(list, a)
		}
		return true
	})
	return list
}

// arrayElement maps one object element to a record.
func arrayElement(element gjson.Result) (achievements.Achievement, bool) {
	f := newFields(element)

	name := Decode(f.str(nameKeys))
	if name == "" {
		return achievements.Achievement{}, false
	}

	a := achievements.Achievement{
		Name:        name,
		Description: Decode(f.str(descriptionKeys)),
		Icon:        f.str(iconKeys),
		Percent:     f.float(percentKeys),
		Points:      f.float(pointsKeys),
	}

	if hidden, ok := f.boolean(hiddenKeys); ok {
		a.Hidden = hidden
	}

	a.DateUnlocked = dateValue(f)

	if unlocked, ok := f.boolean(unlockedKeys); ok {
		a.Unlocked = unlocked
	} else if a.DateUnlocked != "" {
		// Older cache files carried only a date; a non-empty date means
		// unlocked.
		a.Unlocked = true
	}

	return a, true
}

// dateValue extracts the unlock timestamp, formatting epoch seconds and
// passing preformatted text through verbatim.
func dateValue(f *fields) string {
	value, ok := f.lookup(dateKeys)
	if !ok {
		return ""
	}
	if value.Type == gjson.Number {
		return formatEpoch(value.Int())
	}
	return Decode(value.String())
}
