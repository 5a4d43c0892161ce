// Package segment splits unspaced text into dictionary words with greedy
// longest-match scanning.
//
// At each position the scanner follows the dictionary from the root for as
// long as edges exist and keeps the longest complete word seen on the way.
// A position whose code point starts no dictionary word, or whose path never
// reaches a complete word, yields that single code point. The emitted tokens
// always cover the text exactly, left to right, with no gap or overlap.
package segment

import (
	"unicode/utf8"

	"github.com/bastiangx/wordseg/pkg/trie"
)

// Token is one piece of segmented text. Start and End are byte offsets into
// the source string. Known is set when Text is a dictionary word.
type Token struct {
	Text  string
	Start int
	End   int
	Known bool
}

// Segmenter tokenizes text against a dictionary. It only reads the
// dictionary, so one Segmenter may serve many goroutines as long as the
// dictionary is not mutated meanwhile.
type Segmenter struct {
	dict *trie.Trie
}

// New returns a Segmenter reading from dict.
func New(dict *trie.Trie) *Segmenter {
	return &Segmenter{dict: dict}
}

// Segment is a shorthand for New(dict).Segment(text).
func Segment(text string, dict *trie.Trie) Set {
	return New(dict).Segment(text)
}

// Segment returns the set of tokens of text.
func (s *Segmenter) Segment(text string) Set {
	set := make(Set)
	s.scan(text, func(tok Token) {
		set.Add(tok.Text)
	})
	return set
}

// Tokens returns the tokens of text in emission order.
func (s *Segmenter) Tokens(text string) []Token {
	var tokens []Token
	s.scan(text, func(tok Token) {
		tokens = append(tokens, tok)
	})
	return tokens
}

// scan walks text once and hands every token to emit. Bytes that are not
// valid UTF-8 decode to utf8.RuneError with width one, so coverage holds on
// raw bytes too.
func (s *Segmenter) scan(text string, emit func(Token)) {
	pos := 0
	for pos < len(text) {
		r, width := utf8.DecodeRuneInString(text[pos:])

		n, ok := s.dict.Child(trie.Root, r)
		if !ok {
			emit(Token{Text: text[pos : pos+width], Start: pos, End: pos + width})
			pos += width
			continue
		}

		bestEnd := -1
		end := pos + width
		for {
			if s.dict.IsEnd(n) {
				bestEnd = end
			}
			if end >= len(text) {
				break
			}
			next, w := utf8.DecodeRuneInString(text[end:])
			child, ok := s.dict.Child(n, next)
			if !ok {
				break
			}
			n = child
			end += w
		}

		if bestEnd < 0 {
			// a path existed but never completed a word
			emit(Token{Text: text[pos : pos+width], Start: pos, End: pos + width})
			pos += width
			continue
		}
		emit(Token{Text: text[pos:bestEnd], Start: pos, End: bestEnd, Known: true})
		pos = bestEnd
	}
}
