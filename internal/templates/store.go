package templates

// Store is an immutable ordered template collection. A session loads one
// Store up front and passes it by reference; the edit operation replaces it
// wholesale rather than mutating it.
type Store struct {
	list []Template
}

// NewStore builds a store from an ordered collection, dropping entries whose
// raw command duplicates an earlier one.
func NewStore(list []Template) *Store {
	seen := make(map[string]bool, len(list))
	deduped := make([]Template, 0, len(list))
	for _, t := range list {
		if seen[t.Command] {
			continue
		}
		seen[t.Command] = true
		deduped = append(deduped, t)
	}
	return &Store{list: deduped}
}

// Merge returns a new store with extra templates appended, skipping any
// whose command text already appears. Used to union history entries into the
// session palette without duplicate listings.
func (s *Store) Merge(extra []Template) *Store {
	merged := make([]Template, 0, len(s.list)+len(extra))
	merged = append(merged, s.list...)
	merged = append(merged, extra...)
	return NewStore(merged)
}

// Replace returns a new store holding exactly the given collection. The
// editor round-trip calls this with the re-parsed edited text.
func (s *Store) Replace(list []Template) *Store {
	return NewStore(list)
}

// All returns the ordered collection.
func (s *Store) All() []Template {
	return s.list
}

// Len returns the number of templates.
func (s *Store) Len() int {
	return len(s.list)
}

// Lines renders every template in "description :: command" form, in order.
func (s *Store) Lines() []string {
	lines := make([]string, len(s.list))
	for i, t := range s.list {
		lines[i] = t.String()
	}
	return lines
}

// Contains reports whether a template with the exact raw command exists.
func (s *Store) Contains(command string) bool {
	for _, t := range s.list {
		if t.Command == command {
			return true
		}
	}
	return false
}

// Find returns the first template whose line form equals the given string.
func (s *Store) Find(line string) (Template, bool) {
	for _, t := range s.list {
		if t.String() == line {
			return t, true
		}
	}
	return Template{}, false
}
