// Package trie implements the word dictionary: a tree keyed by one Unicode
// code point per edge, used for exact and prefix word lookup.
//
// Nodes live in an arena owned by the Trie and children are referenced by
// index, so the whole tree is released at once by Clear. Pruned nodes go on
// a free list and their slots are reused by later inserts.
//
// A Trie is safe for concurrent readers as long as nothing inserts or
// removes at the same time.
package trie

import "slices"

// Node is a handle to a node of a Trie. Handles stay valid until the node is
// pruned by Remove or the trie is cleared.
type Node int32

// Root is the handle of the root node. The root is never a word.
const Root Node = 0

type node struct {
	children map[rune]Node
	isEnd    bool
}

// Trie is a dictionary of words keyed by code point.
type Trie struct {
	nodes []node
	free  []Node
	size  int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{nodes: make([]node, 1, 64)}
}

// Build returns a Trie holding every non-empty word of words.
func Build(words []string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds word to the trie. Empty words are ignored and inserting a word
// twice leaves the trie unchanged.
//
// Bytes that are not valid UTF-8 are stored as U+FFFD edges, so such a word
// reads back from Words and FindAllWithPrefix with U+FFFD in their place and
// Search matches either spelling.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	n := Root
	for _, r := range word {
		child, ok := t.nodes[n].children[r]
		if !ok {
			child = t.alloc()
			if t.nodes[n].children == nil {
				t.nodes[n].children = make(map[rune]Node, 1)
			}
			t.nodes[n].children[r] = child
		}
		n = child
	}
	if !t.nodes[n].isEnd {
		t.nodes[n].isEnd = true
		t.size++
	}
}

// Search reports whether word was inserted. A word that is only a prefix of
// stored words is not found.
func (t *Trie) Search(word string) bool {
	n, ok := t.walk(word)
	return ok && t.nodes[n].isEnd
}

// StartsWith reports whether the full path for prefix exists, whether or not
// it ends on a word. The empty prefix always exists.
func (t *Trie) StartsWith(prefix string) bool {
	_, ok := t.walk(prefix)
	return ok
}

// FindAllWithPrefix returns every stored word beginning with prefix. Words
// come out depth first with children visited in ascending code point order,
// so a word precedes its extensions. It returns an empty slice when prefix
// is not a path of the trie.
func (t *Trie) FindAllWithPrefix(prefix string) []string {
	start, ok := t.walk(prefix)
	if !ok {
		return []string{}
	}

	type frame struct {
		n    Node
		word string
	}

	var results []string
	stack := []frame{{n: start, word: prefix}}
	keys := make([]rune, 0, 8)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[f.n]
		if nd.isEnd {
			results = append(results, f.word)
		}
		if len(nd.children) == 0 {
			continue
		}

		keys = keys[:0]
		for r := range nd.children {
			keys = append(keys, r)
		}
		slices.Sort(keys)
		// pushed in reverse so the smallest edge is popped first
		for i := len(keys) - 1; i >= 0; i-- {
			stack = append(stack, frame{n: nd.children[keys[i]], word: f.word + string(keys[i])})
		}
	}
	if results == nil {
		return []string{}
	}
	return results
}

// Words returns all stored words in the order of FindAllWithPrefix("").
func (t *Trie) Words() []string {
	return t.FindAllWithPrefix("")
}

// Remove deletes word and prunes every ancestor left without children and
// without a word of its own. It returns false and changes nothing when word
// is not stored.
func (t *Trie) Remove(word string) bool {
	if word == "" {
		return false
	}

	type step struct {
		parent Node
		edge   rune
		child  Node
	}

	path := make([]step, 0, len(word))
	n := Root
	for _, r := range word {
		child, ok := t.nodes[n].children[r]
		if !ok {
			return false
		}
		path = append(path, step{parent: n, edge: r, child: child})
		n = child
	}
	if !t.nodes[n].isEnd {
		return false
	}

	t.nodes[n].isEnd = false
	t.size--

	for i := len(path) - 1; i >= 0; i-- {
		s := path[i]
		c := &t.nodes[s.child]
		if c.isEnd || len(c.children) > 0 {
			break
		}
		delete(t.nodes[s.parent].children, s.edge)
		t.release(s.child)
	}
	return true
}

// Size returns the number of distinct words stored.
func (t *Trie) Size() int {
	return t.size
}

// NodeCount returns the number of live nodes, root included.
func (t *Trie) NodeCount() int {
	return len(t.nodes) - len(t.free)
}

// Clear drops every word and node.
func (t *Trie) Clear() {
	t.nodes = make([]node, 1, 64)
	t.free = nil
	t.size = 0
}

// Child returns the child of n reached through edge r.
func (t *Trie) Child(n Node, r rune) (Node, bool) {
	child, ok := t.nodes[n].children[r]
	return child, ok
}

// IsEnd reports whether a word ends exactly at n.
func (t *Trie) IsEnd(n Node) bool {
	return t.nodes[n].isEnd
}

// HasRootEdge reports whether any stored word starts with r.
func (t *Trie) HasRootEdge(r rune) bool {
	_, ok := t.nodes[Root].children[r]
	return ok
}

func (t *Trie) walk(s string) (Node, bool) {
	n := Root
	for _, r := range s {
		child, ok := t.nodes[n].children[r]
		if !ok {
			return 0, false
		}
		n = child
	}
	return n, true
}

func (t *Trie) alloc() Node {
	if k := len(t.free); k > 0 {
		n := t.free[k-1]
		t.free = t.free[:k-1]
		return n
	}
	t.nodes = append(t.nodes, node{})
	return Node(len(t.nodes) - 1)
}

func (t *Trie) release(n Node) {
	t.nodes[n] = node{}
	t.free = append(t.free, n)
}
