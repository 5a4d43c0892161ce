package trie

import (
	"fmt"
	"slices"
	"testing"
)

func TestInsertAndSearch(t *testing.T) {
	words := []string{"你好", "你好世界", "世界", "hello", "world"}
	tr := Build(words)

	for _, w := range words {
		if !tr.Search(w) {
			t.Errorf("Search(%q): expected true after insert", w)
		}
	}
	if tr.Size() != len(words) {
		t.Errorf("Size: expected %d, got %d", len(words), tr.Size())
	}

	// prefixes of stored words are paths, not words
	for _, w := range []string{"你", "hell", "世"} {
		if tr.Search(w) {
			t.Errorf("Search(%q): prefix only, expected false", w)
		}
		if !tr.StartsWith(w) {
			t.Errorf("StartsWith(%q): expected true", w)
		}
	}
	if tr.Search("你好世") || tr.Search("goodbye") {
		t.Error("Search: unexpected hit for missing word")
	}
	if tr.StartsWith("世间") {
		t.Error("StartsWith(世间): expected false")
	}
}

func TestInsertDuplicateAndEmpty(t *testing.T) {
	tr := New()
	tr.Insert("")
	if tr.Size() != 0 || tr.NodeCount() != 1 {
		t.Fatalf("empty insert changed the trie: size=%d nodes=%d", tr.Size(), tr.NodeCount())
	}
	if tr.Search("") {
		t.Error("root must never be a word")
	}

	tr.Insert("猫")
	tr.Insert("猫")
	if tr.Size() != 1 {
		t.Errorf("duplicate insert: expected size 1, got %d", tr.Size())
	}
}

func TestInsertInvalidUTF8(t *testing.T) {
	tr := New()
	tr.Insert("a\xff")

	for _, w := range []string{"a\xff", "a\uFFFD"} {
		if !tr.Search(w) {
			t.Errorf("Search(%q): expected true", w)
		}
	}
	if got := tr.Words(); !slices.Equal(got, []string{"a\uFFFD"}) {
		t.Errorf("Words: expected [a\uFFFD], got %q", got)
	}
	if tr.Size() != 1 {
		t.Errorf("expected size 1, got %d", tr.Size())
	}
}

func TestStartsWithEmptyPrefix(t *testing.T) {
	tr := New()
	if !tr.StartsWith("") {
		t.Error("empty prefix is always a path")
	}
}

func TestScripts(t *testing.T) {
	testCases := []struct {
		description string
		words       []string
		prefix      string
	}{
		{"Japanese", []string{"こんにちは", "さようなら", "ありがとう"}, "こん"},
		{"Korean", []string{"안녕하세요", "세계", "컴퓨터"}, "안녕"},
		{"Mixed scripts", []string{"hello你好", "world世界", "computer컴퓨터"}, "world世"},
		{"Emoji", []string{"🌍", "🌍🌏"}, "🌍"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			tr := Build(tc.words)
			for _, w := range tc.words {
				if !tr.Search(w) {
					t.Errorf("Search(%q): expected true", w)
				}
			}
			if !tr.StartsWith(tc.prefix) {
				t.Errorf("StartsWith(%q): expected true", tc.prefix)
			}
		})
	}
}

func TestFindAllWithPrefix(t *testing.T) {
	tr := Build([]string{"你好", "你好世界", "你们", "世界"})

	testCases := []struct {
		prefix   string
		expected []string
	}{
		// 们 (U+4EEC) sorts before 好 (U+597D)
		{"你", []string{"你们", "你好", "你好世界"}},
		{"你好", []string{"你好", "你好世界"}},
		{"世界", []string{"世界"}},
		{"我", []string{}},
		{"", []string{"世界", "你们", "你好", "你好世界"}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("prefix=%q", tc.prefix), func(t *testing.T) {
			got := tr.FindAllWithPrefix(tc.prefix)
			if got == nil {
				t.Fatal("expected a non-nil slice")
			}
			if !slices.Equal(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestFindAllWithPrefixOrder(t *testing.T) {
	tr := Build([]string{"b", "abc", "a", "ab", "ac", "bc"})
	expected := []string{"a", "ab", "abc", "ac", "b", "bc"}
	if got := tr.Words(); !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestRemove(t *testing.T) {
	tr := Build([]string{"你好", "你好世界", "世界"})

	if !tr.Remove("你好") {
		t.Fatal("Remove(你好): expected true")
	}
	if tr.Search("你好") {
		t.Error("Search(你好): expected false after remove")
	}
	if !tr.Search("你好世界") || !tr.Search("世界") {
		t.Error("remove touched other words")
	}
	if !tr.StartsWith("你好") {
		t.Error("path to 你好世界 must survive")
	}
	if tr.Size() != 2 {
		t.Errorf("Size: expected 2, got %d", tr.Size())
	}
}

func TestRemoveAbsent(t *testing.T) {
	tr := Build([]string{"你好世界", "cat"})
	nodes := tr.NodeCount()

	for _, w := range []string{"你好", "dog", "cats", ""} {
		if tr.Remove(w) {
			t.Errorf("Remove(%q): expected false", w)
		}
	}
	if tr.Size() != 2 {
		t.Errorf("Size: expected 2, got %d", tr.Size())
	}
	if tr.NodeCount() != nodes {
		t.Errorf("NodeCount changed from %d to %d", nodes, tr.NodeCount())
	}

	tr.Remove("cat")
	if tr.Remove("cat") {
		t.Error("second Remove(cat): expected false")
	}
	if tr.Size() != 1 {
		t.Errorf("Size: expected 1, got %d", tr.Size())
	}
}

func TestRemovePrunes(t *testing.T) {
	tr := Build([]string{"ab"})
	baseline := tr.NodeCount()

	tr.Insert("abcde")
	tr.Remove("abcde")
	if tr.NodeCount() != baseline {
		t.Errorf("dead branch not pruned: expected %d nodes, got %d", baseline, tr.NodeCount())
	}
	if tr.StartsWith("abc") {
		t.Error("StartsWith(abc): pruned path still reachable")
	}
	if !tr.Search("ab") {
		t.Error("pruning went past a terminal ancestor")
	}

	tr.Insert("ax")
	tr.Remove("ab")
	if !tr.StartsWith("a") || !tr.Search("ax") {
		t.Error("pruning went past an ancestor with other children")
	}

	tr.Remove("ax")
	if tr.NodeCount() != 1 {
		t.Errorf("expected only the root left, got %d nodes", tr.NodeCount())
	}
}

func TestRemoveReusesSlots(t *testing.T) {
	tr := New()
	tr.Insert("abc")
	tr.Remove("abc")
	tr.Insert("xyz")
	if len(tr.nodes) != 4 {
		t.Errorf("freed slots not reused: arena holds %d nodes", len(tr.nodes))
	}
	if !tr.Search("xyz") || tr.StartsWith("a") {
		t.Error("reused slots carried stale state")
	}
}

func TestSizeAndClear(t *testing.T) {
	tr := Build([]string{"你好", "你好世界", "世界", "hello", "world"})
	if tr.Size() != 5 {
		t.Errorf("Size: expected 5, got %d", tr.Size())
	}

	tr.Clear()
	if tr.Size() != 0 {
		t.Errorf("Size after Clear: expected 0, got %d", tr.Size())
	}
	if tr.Search("你好") || tr.Search("hello") {
		t.Error("words survived Clear")
	}
	if tr.NodeCount() != 1 {
		t.Errorf("NodeCount after Clear: expected 1, got %d", tr.NodeCount())
	}
}

func TestWalkingAPI(t *testing.T) {
	tr := Build([]string{"ab"})
	if !tr.HasRootEdge('a') || tr.HasRootEdge('b') {
		t.Fatal("HasRootEdge: wrong root edges")
	}
	a, ok := tr.Child(Root, 'a')
	if !ok || tr.IsEnd(a) {
		t.Fatal("Child(root, a): expected non-terminal node")
	}
	b, ok := tr.Child(a, 'b')
	if !ok || !tr.IsEnd(b) {
		t.Fatal("Child(a, b): expected terminal node")
	}
	if _, ok := tr.Child(b, 'c'); ok {
		t.Error("Child(b, c): expected no edge")
	}
}

func BenchmarkBuild(b *testing.B) {
	words := make([]string, 10000)
	for i := range words {
		words[i] = fmt.Sprintf("词%d语", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(words)
	}
}
