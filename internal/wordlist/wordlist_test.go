package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSkipsHeader(t *testing.T) {
	input := "Copyright notice\nsome license text\n---\ncat\ndog\r\n\n  bird  \n"
	words, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	expected := []string{"cat", "dog", "bird"}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d (%v)", len(expected), len(words), words)
	}
	for i, word := range expected {
		if words[i] != word {
			t.Fatalf("expected %q at %d, got %q", word, i, words[i])
		}
	}
}

func TestParseMissingSentinel(t *testing.T) {
	_, err := Parse(strings.NewReader("cat\ndog\n"))
	if !errors.Is(err, ErrNoSentinel) {
		t.Fatalf("expected ErrNoSentinel, got %v", err)
	}
}

func TestParseEmptyBody(t *testing.T) {
	_, err := Parse(strings.NewReader("header\n---\n\n"))
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestParseSentinelOnlyMatchesWholeLine(t *testing.T) {
	_, err := Parse(strings.NewReader("----\n--- \nword\n"))
	if !errors.Is(err, ErrNoSentinel) {
		t.Fatalf("expected ErrNoSentinel, got %v", err)
	}
}

func TestLoadDictionaryMissingFile(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "dict.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadDictionaryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	if err := os.WriteFile(path, []byte("---\nalpha\nbeta\n"), 0o644); err != nil {
		t.Fatalf("write dict: %v", err)
	}
	words, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(words) != 2 || words[0] != "alpha" || words[1] != "beta" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestDefaultDictionary(t *testing.T) {
	words, err := Load("")
	if err != nil {
		t.Fatalf("default dictionary: %v", err)
	}
	if len(words) < 200 {
		t.Fatalf("expected at least 200 embedded words, got %d", len(words))
	}
	filter := Typable()
	for _, word := range words {
		if !filter(word) {
			t.Fatalf("embedded word %q is not typable", word)
		}
	}
}
