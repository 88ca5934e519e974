package assets

import (
	"testing"
	"unicode/utf8"
)

func TestDefaultWords(t *testing.T) {
	words, err := DefaultWords()
	if err != nil {
		t.Fatalf("DefaultWords: %v", err)
	}
	if len(words) < 100 {
		t.Fatalf("expected a usable embedded list, got %d words", len(words))
	}
	seen := map[string]bool{}
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n != 5 {
			t.Fatalf("word %q has length %d", w, n)
		}
		if seen[w] {
			t.Fatalf("duplicate word %q", w)
		}
		seen[w] = true
	}
}
