package vocab

import (
	"slices"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Lexicon is a known-word set backed by a Patricia trie, so besides
// membership it can list the known words under a prefix.
type Lexicon struct {
	trie  *patricia.Trie
	count int
}

// NewLexicon returns a Lexicon holding words. Empty words are skipped.
func NewLexicon(words ...string) *Lexicon {
	l := &Lexicon{trie: patricia.NewTrie()}
	for _, w := range words {
		l.Add(w)
	}
	return l
}

// Add inserts word and reports whether it was new.
func (l *Lexicon) Add(word string) bool {
	if word == "" {
		return false
	}
	if !l.trie.Insert(patricia.Prefix(word), true) {
		return false
	}
	l.count++
	return true
}

// Delete removes word and reports whether it was present.
func (l *Lexicon) Delete(word string) bool {
	if word == "" {
		return false
	}
	if !l.trie.Delete(patricia.Prefix(word)) {
		return false
	}
	l.count--
	return true
}

// Contains reports whether word is known.
func (l *Lexicon) Contains(word string) bool {
	if word == "" {
		return false
	}
	return l.trie.Match(patricia.Prefix(word))
}

// Len returns the number of known words.
func (l *Lexicon) Len() int {
	return l.count
}

// WithPrefix returns the known words starting with prefix, sorted. A limit
// above zero caps the result.
func (l *Lexicon) WithPrefix(prefix string, limit int) []string {
	var words []string
	visit := func(p patricia.Prefix, _ patricia.Item) error {
		words = append(words, string(p))
		return nil
	}

	// visit never fails, so neither walk can return an error
	if prefix == "" {
		_ = l.trie.Visit(visit)
	} else {
		_ = l.trie.VisitSubtree(patricia.Prefix(prefix), visit)
	}

	slices.Sort(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
