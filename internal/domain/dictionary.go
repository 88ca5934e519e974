package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Dictionary is a deduplicated, lowercase word list of a single length.
// It is built once and shared read-only.
type Dictionary struct {
	words  []string
	length int
}

// NewDictionary normalizes words and keeps those of the given rune length
// (any length when length <= 0). Words with non-letter runes are dropped and
// the first occurrence of a duplicate wins.
func NewDictionary(words []string, length int) *Dictionary {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if length > 0 && utf8.RuneCountInString(w) != length {
			continue
		}
		if !isWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return &Dictionary{words: out, length: length}
}

func isWord(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Words returns the words in load order. Callers must not modify the slice.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return d.words
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// WordLength is the configured length, 0 when unrestricted.
func (d *Dictionary) WordLength() int {
	if d == nil {
		return 0
	}
	return d.length
}
