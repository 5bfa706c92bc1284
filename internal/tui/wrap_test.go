package tui

import "testing"

func plainWords(words ...string) []styledWord {
	out := make([]styledWord, 0, len(words))
	for _, w := range words {
		out = append(out, styledWord{s: w, width: len(w)})
	}
	return out
}

func TestWrapWordsFitsOnOneLine(t *testing.T) {
	got := wrapWords(plainWords("one", "two", "three"), 40)
	if got != "one two three" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapWordsBreaksAtWidth(t *testing.T) {
	got := wrapWords(plainWords("one", "two", "three", "four"), 8)
	if got != "one two\nthree\nfour" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapWordsExactWidth(t *testing.T) {
	got := wrapWords(plainWords("abc", "def"), 7)
	if got != "abc def" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapWordsLongWord(t *testing.T) {
	got := wrapWords(plainWords("a", "extraordinary", "b"), 5)
	if got != "a\nextraordinary\nb" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapWordsNoWidth(t *testing.T) {
	got := wrapWords(plainWords("a", "b"), 0)
	if got != "a b" {
		t.Fatalf("unexpected wrap %q", got)
	}
}
