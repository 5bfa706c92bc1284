// Package wordlist provides word list filtering helpers.
package wordlist

import "unicode"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Typable keeps non-empty words without whitespace. Space submits the word
// in progress, so a word containing one can never be matched.
func Typable() FilterFunc {
	return filterTypable
}

func filterTypable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
