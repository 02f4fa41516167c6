package achievements

import (
	"encoding/json"
)

// Set is the unified, ordered collection of achievements for one
// (title, platform). Records are keyed by normalized name; insertion order is
// preserved for display. A Set is built fresh per resolution request and is
// not safe for concurrent mutation.
type Set struct {
	byName map[string]*Achievement
	order  []string
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{
		byName: make(map[string]*Achievement),
	}
}

// FromList builds a Set from a slice, preserving order. Duplicate names keep
// the last occurrence's record in the first occurrence's position.
func FromList(list []Achievement) *Set {
	s := NewSet()
	for i := range list {
		a := list[i]
		if !a.Valid() {
			continue
		}
		s.Put(&a)
	}
	return s
}

// Get returns the record for a display name, looked up by normalized key.
func (s *Set) Get(name string) (*Achievement, bool) {
	a, ok := s.byName[NormalizeName(name)]
	return a, ok
}

// Put inserts or replaces the record for its normalized name. A replacement
// keeps the original insertion position.
func (s *Set) Put(a *Achievement) {
	if !a.Valid() {
		return
	}
	key := NormalizeName(a.Name)
	if _, exists := s.byName[key]; !exists {
		s.order = append(s.order, key)
	}
	s.byName[key] = a
}

// Len returns the number of records in the set.
func (s *Set) Len() int {
	return len(s.byName)
}

// List returns the records in insertion order.
func (s *Set) List() []Achievement {
	list := make([]Achievement, 0, len(s.order))
	for _, key := range s.order {
		list = append(list, *s.byName[key])
	}
	return list
}

// MarshalJSON serializes the set as an ordered JSON array, the durable cache
// form.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON restores a set from the ordered JSON array cache form.
func (s *Set) UnmarshalJSON(data []byte) error {
	var list []Achievement
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = *FromList(list)
	return nil
}
