package model

import "sort"

// Selection is a set of artwork identifiers.
//
// Only identifiers are kept, never records, so selecting rows on other pages
// does not retain their payload. The zero value is not usable; call
// NewSelection.
type Selection struct {
	ids map[int]struct{}
}

// NewSelection creates a Selection holding ids.
func NewSelection(ids ...int) *Selection {
	s := &Selection{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Add inserts id.
func (s *Selection) Add(id int) {
	s.ids[id] = struct{}{}
}

// Remove deletes id. Removing an absent id is a no-op.
func (s *Selection) Remove(id int) {
	delete(s.ids, id)
}

// Has reports whether id is selected.
func (s *Selection) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected identifiers.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected identifiers in ascending order.
func (s *Selection) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clone returns an independent copy.
func (s *Selection) Clone() *Selection {
	c := &Selection{ids: make(map[int]struct{}, len(s.ids))}
	for id := range s.ids {
		c.ids[id] = struct{}{}
	}
	return c
}

// Equal reports whether both selections hold the same identifiers.
func (s *Selection) Equal(other *Selection) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id := range s.ids {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
