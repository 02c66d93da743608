/*
Package wordset implements the small string-set primitives the
suggestion pipeline needs outside the dictionary proper: the per-query
banned-word set (spec.md §4.5). It is a plain map with no eviction,
since a set lives for a single query.
*/
package wordset

// Set is an unordered string membership set, safe for single-query
// use (not goroutine-safe; callers run one query at a time per
// spec.md §5).
type Set struct {
	members map[string]struct{}
}

// New returns an empty Set.
func New() *Set {
	return &Set{members: make(map[string]struct{})}
}

// Add interns word into the set.
func (s *Set) Add(word string) {
	s.members[word] = struct{}{}
}

// Contains reports whether word has been added.
func (s *Set) Contains(word string) bool {
	_, ok := s.members[word]
	return ok
}

// Len reports the number of interned words.
func (s *Set) Len() int { return len(s.members) }

// Remove drops word from the set, if present.
func (s *Set) Remove(word string) {
	delete(s.members, word)
}
