package reconcile

import (
	"github.com/agentstation/trophycase/pkg/achievements"
)

// mergeInto folds one payload's parsed records into the accumulating set.
// Duplicate names within the payload are collapsed first, last occurrence
// winning, so merge order inside a payload is deterministic.
//
// Merge rules per record:
//   - Existing entry: first non-empty description/icon wins and is never
//     overwritten afterward; unlocked is OR-ed (monotonic, never unset); a
//     non-empty unlock date is adopted only when the existing one is empty;
//     zero-valued percent/points take the incoming value; hidden is OR-ed.
//   - No existing entry: inserted only when the payload is trusted. Untrusted
//     payloads cannot originate an achievement.
func mergeInto(set *achievements.Set, records []achievements.Achievement, trusted bool) {
	incoming := achievements.FromList(records)

	for _, record := range incoming.List() {
		existing, found := set.Get(record.Name)
		if !found {
			if trusted {
				r := record
				set.Put(&r)
			}
			continue
		}
		mergeRecord(existing, &record)
	}
}

// mergeRecord applies the field-union rules to an existing entry in place.
func mergeRecord(existing, incoming *achievements.Achievement) {
	if existing.Description == "" && incoming.Description != "" {
		existing.Description = incoming.Description
	}
	if existing.Icon == "" && incoming.Icon != "" {
		existing.Icon = incoming.Icon
	}
	if incoming.Unlocked {
		existing.Unlocked = true
	}
	if existing.DateUnlocked == "" && incoming.DateUnlocked != "" {
		existing.DateUnlocked = incoming.DateUnlocked
	}
	if incoming.Hidden {
		existing.Hidden = true
	}
	if existing.Percent == 0 && incoming.Percent != 0 {
		existing.Percent = incoming.Percent
	}
	if existing.Points == 0 && incoming.Points != 0 {
		existing.Points = incoming.Points
	}
}
