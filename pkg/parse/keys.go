package parse

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Candidate key lists for each logical field, tried in order. Matching is
// case-insensitive, with a substring fallback when no exact candidate hits.
var (
	nameKeys        = []string{"name", "title", "label", "id", "apiname", "achievement"}
	descriptionKeys = []string{"description", "desc", "text", "details"}
	unlockedKeys    = []string{"unlocked", "achieved", "completed", "isUnlocked", "earned", "unlock"}
	dateKeys        = []string{"DateUnlocked", "unlockedAt", "achievedAt", "date", "unlock_time", "earned_time", "time"}
	iconKeys        = []string{"icon", "image", "img", "iconUrl", "icongray"}
	hiddenKeys      = []string{"hidden", "secret"}
	percentKeys     = []string{"percent", "percentage", "globalPercent", "rarity"}
	pointsKeys      = []string{"points", "score", "gamerscore", "value"}
)

// fields indexes one parsed object's members by lowercased key, preserving
// the original gjson results.
type fields struct {
	byKey map[string]gjson.Result
	order []string
}

// newFields builds a field index from a gjson object.
func newFields(obj gjson.Result) *fields {
	f := &fields{byKey: make(map[string]gjson.Result)}
	obj.ForEach(func(key, value gjson.Result) bool {
		lower := strings.ToLower(key.String())
		if _, seen := f.byKey[lower]; !seen {
			f.order = append(f.order, lower)
		}
		f.byKey[lower] = value
		return true
	})
	return f
}

// lookup tries each candidate key in order against the indexed object. Exact
// case-insensitive matches win; when none hit, the first object key containing
// a candidate as a substring is used.
func (f *fields) lookup(candidates []string) (gjson.Result, bool) {
	for _, candidate := range candidates {
		if value, ok := f.byKey[strings.ToLower(candidate)]; ok {
			return value, true
		}
	}
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		for _, key := range f.order {
			if strings.Contains(key, lower) {
				return f.byKey[key], true
			}
		}
	}
	return gjson.Result{}, false
}

// str returns the first non-empty string value among the candidates.
func (f *fields) str(candidates []string) string {
	if value, ok := f.lookup(candidates); ok {
		return strings.TrimSpace(value.String())
	}
	return ""
}

// boolean returns the candidate value coerced to bool, and whether any
// candidate was present. Numeric 1/0 and "true"/"false" strings coerce.
func (f *fields) boolean(candidates []string) (bool, bool) {
	value, ok := f.lookup(candidates)
	if !ok {
		return false, false
	}
	switch value.Type {
	case gjson.True:
		return true, true
	case gjson.False:
		return false, true
	case gjson.Number:
		return value.Int() != 0, true
	case gjson.String:
		s := strings.ToLower(strings.TrimSpace(value.String()))
		return s == "true" || s == "yes" || s == "1", true
	default:
		return false, false
	}
}

// float returns the candidate value as a float64, or 0.
func (f *fields) float(candidates []string) float64 {
	if value, ok := f.lookup(candidates); ok {
		return value.Float()
	}
	return 0
}
