// Package wordlist loads dictionaries from files.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// HeaderSentinel ends the header block of a dictionary file.
const HeaderSentinel = "---"

var (
	// ErrNoSentinel is returned when a dictionary has no header sentinel line.
	ErrNoSentinel = errors.New("dictionary header sentinel not found")
	// ErrEmpty is returned when a dictionary has no usable words.
	ErrEmpty = errors.New("dictionary is empty")
)

//go:embed dict.txt
var defaultDict string

// Default returns the embedded dictionary.
func Default() ([]string, error) {
	return Parse(strings.NewReader(defaultDict))
}

// Load returns the dictionary at path, or the embedded one when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default()
	}
	return LoadDictionary(path)
}

// LoadDictionary reads a dictionary file: header lines up to and including
// HeaderSentinel are skipped, then one word per line.
func LoadDictionary(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only dictionary.
			_ = cerr
		}
	}()
	return Parse(file)
}

// Parse reads a dictionary from r. Blank lines and entries that cannot be
// typed are dropped.
func Parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	found := false
	for scanner.Scan() {
		if strings.TrimRight(scanner.Text(), "\r") == HeaderSentinel {
			found = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoSentinel
	}

	keep := Typable()
	var words []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !keep(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}
