// Package filter selects the dictionary words consistent with a constraint set.
//
// Two strategies implement ports.Filter: Scanner tests each word against the
// rules in turn, Indexed answers the same question with per-letter bitsets.
package filter

import (
	"slices"

	"svw.info/wordsolver/internal/domain"
)

// Candidates returns the words satisfying cs, in input order.
func Candidates(cs *domain.ConstraintSet, words []string) []string {
	m := newMatcher(cs)
	out := make([]string, 0, len(words)/8)
	for _, w := range words {
		if m.match(w) {
			out = append(out, w)
		}
	}
	return out
}

// Match reports whether a single word satisfies cs.
func Match(cs *domain.ConstraintSet, word string) bool {
	return newMatcher(cs).match(word)
}

// matcher holds the per-search precomputation shared by every word.
type matcher struct {
	cs         *domain.ConstraintSet
	shortcut   []rune // excluded letters without an exact count
	restricted []rune
}

func newMatcher(cs *domain.ConstraintSet) matcher {
	m := matcher{cs: cs, restricted: cs.Restricted()}
	for _, l := range cs.Excluded.Sorted() {
		if _, ok := cs.ExactCounts[l]; ok {
			continue
		}
		m.shortcut = append(m.shortcut, l)
	}
	return m
}

func (m matcher) match(word string) bool {
	w := []rune(word)
	cs := m.cs
	if len(w) != len(cs.Pattern) {
		return false
	}
	for _, l := range m.shortcut {
		if slices.Contains(w, l) {
			return false
		}
	}
	for i, l := range cs.Pattern {
		if l != 0 && w[i] != l {
			return false
		}
	}
	for l, positions := range cs.Forbidden {
		for _, p := range positions {
			if p >= 0 && p < len(w) && w[p] == l {
				return false
			}
		}
	}
	for _, l := range m.restricted {
		n := count(w, l)
		if exact, ok := cs.ExactCounts[l]; ok {
			if n != exact {
				return false
			}
			continue
		}
		if least, ok := cs.MinCounts[l]; ok {
			if n < least {
				return false
			}
			continue
		}
		if n > 0 {
			return false
		}
	}
	return true
}

func count(w []rune, l rune) int {
	n := 0
	for _, r := range w {
		if r == l {
			n++
		}
	}
	return n
}
