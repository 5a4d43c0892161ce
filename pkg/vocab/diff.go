// Package vocab compares segmented study material against what a learner
// already knows.
package vocab

import (
	"math/rand/v2"

	"github.com/bastiangx/wordseg/internal/utils"
	"github.com/bastiangx/wordseg/pkg/segment"
)

// Membership is a known-word set. Both segment.Set and Lexicon satisfy it.
type Membership interface {
	Contains(word string) bool
}

// Order selects how a word collection is arranged for output.
type Order int

const (
	// OrderSorted sorts words in ascending code point order.
	OrderSorted Order = iota
	// OrderRandom shuffles words into a uniformly random permutation.
	OrderRandom
)

// Unknown returns the words of dialogueWords that known does not contain.
// No case folding or normalization is applied.
func Unknown(known Membership, dialogueWords segment.Set) segment.Set {
	unknown := make(segment.Set)
	for w := range dialogueWords {
		if !known.Contains(w) {
			unknown.Add(w)
		}
	}
	return unknown
}

// ExtractLines segments every line on its own and unions the tokens.
func ExtractLines(seg *segment.Segmenter, lines []string) segment.Set {
	words := make(segment.Set)
	for _, line := range lines {
		words.Union(seg.Segment(line))
	}
	return words
}

// Arrange returns the words of set in the given order. A nil rng shuffles
// with the global source.
func Arrange(set segment.Set, order Order, rng *rand.Rand) []string {
	if order == OrderRandom {
		words := set.Slice()
		Shuffle(words, rng)
		return words
	}
	return set.Sorted()
}

// Shuffle permutes words in place. Every permutation is equally likely
// (Fisher-Yates via rand.Shuffle).
func Shuffle(words []string, rng *rand.Rand) {
	swap := func(i, j int) { words[i], words[j] = words[j], words[i] }
	if rng == nil {
		rand.Shuffle(len(words), swap)
		return
	}
	rng.Shuffle(len(words), swap)
}

// NewRand returns a source seeded with seed, for reproducible shuffles.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IsNoise reports whether token is made only of punctuation and whitespace.
func IsNoise(token string) bool {
	return utils.IsPunctOrSpace(token)
}

// FilterNoise returns a copy of set without noise tokens.
func FilterNoise(set segment.Set) segment.Set {
	out := make(segment.Set, len(set))
	for w := range set {
		if !IsNoise(w) {
			out.Add(w)
		}
	}
	return out
}
