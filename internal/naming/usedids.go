package naming

// UsedIDSet is the set of identifiers currently present in a topology
// document. It is owned by the document layer; the allocator only reads it.
type UsedIDSet struct {
	ids map[string]struct{}
}

// NewUsedIDSet creates a set seeded with the given identifiers.
func NewUsedIDSet(ids ...string) *UsedIDSet {
	s := &UsedIDSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether id is present in the set.
func (s *UsedIDSet) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// Add inserts id into the set. Callers must add every freshly generated
// identifier before generating the next one.
func (s *UsedIDSet) Add(id string) {
	s.ids[id] = struct{}{}
}

// Remove drops id from the set. Called when the owning element is deleted
// from the document.
func (s *UsedIDSet) Remove(id string) {
	delete(s.ids, id)
}

// Len returns the number of identifiers in the set.
func (s *UsedIDSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// All returns the identifiers in unspecified order.
func (s *UsedIDSet) All() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
