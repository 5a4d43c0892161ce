package segment

import "slices"

// Set is a set of tokens. Occurrence counts are not kept.
type Set map[string]struct{}

// NewSet returns a Set holding words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts word.
func (s Set) Add(word string) {
	s[word] = struct{}{}
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of tokens.
func (s Set) Len() int {
	return len(s)
}

// Union adds every token of other to s.
func (s Set) Union(other Set) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// Slice returns the tokens in no particular order.
func (s Set) Slice() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	return out
}

// Sorted returns the tokens in ascending byte order, which for valid UTF-8
// is code point order.
func (s Set) Sorted() []string {
	out := s.Slice()
	slices.Sort(out)
	return out
}
