package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrRowLength = errors.New("guess and mask lengths differ")
	ErrMaskChar  = errors.New("mask must contain only g, y or b")
)

// Cell is one typed letter and its feedback. Letter 0 means the cell is empty.
type Cell struct {
	Letter rune      `json:"letter,omitempty"`
	State  CellState `json:"state"`
}

// GuessRow is one played (or unplayed) row of the grid.
type GuessRow []Cell

// Empty reports whether no cell of the row holds a letter.
func (r GuessRow) Empty() bool {
	for _, c := range r {
		if c.Letter != 0 {
			return false
		}
	}
	return true
}

// Word returns the typed letters, empty cells rendered as '_'.
func (r GuessRow) Word() string {
	var b strings.Builder
	for _, c := range r {
		if c.Letter == 0 {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(c.Letter)
	}
	return b.String()
}

// Mask returns the row feedback in g/y/b form.
func (r GuessRow) Mask() string {
	b := make([]byte, len(r))
	for i, c := range r {
		b[i] = c.State.Mask()
	}
	return string(b)
}

// Solved reports whether every cell is a Correct letter.
func (r GuessRow) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, c := range r {
		if c.Letter == 0 || c.State != Correct {
			return false
		}
	}
	return true
}

// ParseRow builds a row from a guess and its g/y/b mask, e.g. ("crane", "bbyyg").
func ParseRow(word, mask string) (GuessRow, error) {
	letters := []rune(word)
	if len(letters) != utf8.RuneCountInString(mask) {
		return nil, fmt.Errorf("%w: %q/%q", ErrRowLength, word, mask)
	}
	row := make(GuessRow, len(letters))
	i := 0
	for _, m := range mask {
		st, ok := ParseState(m)
		if !ok {
			return nil, fmt.Errorf("%w: %q has %q", ErrMaskChar, mask, m)
		}
		row[i] = Cell{Letter: NormalizeLetter(letters[i]), State: st}
		i++
	}
	return row, nil
}

// NormalizeLetter returns the canonical lowercase letter.
func NormalizeLetter(r rune) rune {
	return unicode.ToLower(r)
}

// LetterSet is a set of canonical letters.
type LetterSet map[rune]struct{}

func (s LetterSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

func (s LetterSet) Add(r rune) {
	s[r] = struct{}{}
}

// Sorted returns the members in rune order.
func (s LetterSet) Sorted() []rune {
	out := make([]rune, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// ConstraintSet is the rule set derived from a grid. It is rebuilt on every
// search and must not be modified once derived.
type ConstraintSet struct {
	// Pattern has one slot per position; 0 is unconstrained.
	Pattern []rune
	// Forbidden maps a letter to the sorted positions it cannot occupy.
	Forbidden map[rune][]int
	// MinCounts is the minimum number of occurrences of a letter.
	MinCounts map[rune]int
	// ExactCounts overrides MinCounts for the same letter.
	ExactCounts map[rune]int
	// Excluded letters must not appear at all.
	Excluded LetterSet
}

// Restricted returns every letter with a count or exclusion rule, sorted.
func (c *ConstraintSet) Restricted() []rune {
	set := make(LetterSet, len(c.MinCounts)+len(c.ExactCounts)+len(c.Excluded))
	for r := range c.MinCounts {
		set.Add(r)
	}
	for r := range c.ExactCounts {
		set.Add(r)
	}
	for r := range c.Excluded {
		set.Add(r)
	}
	return set.Sorted()
}

// Permissive reports whether the set accepts every word of its length.
func (c *ConstraintSet) Permissive() bool {
	for _, r := range c.Pattern {
		if r != 0 {
			return false
		}
	}
	return len(c.Forbidden) == 0 && len(c.MinCounts) == 0 && len(c.ExactCounts) == 0 && len(c.Excluded) == 0
}

// PatternString renders the pattern with '_' for open slots.
func (c *ConstraintSet) PatternString() string {
	var b strings.Builder
	for _, r := range c.Pattern {
		if r == 0 {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type constraintJSON struct {
	Pattern     string           `json:"pattern"`
	Forbidden   map[string][]int `json:"forbidden,omitempty"`
	MinCounts   map[string]int   `json:"minCounts,omitempty"`
	ExactCounts map[string]int   `json:"exactCounts,omitempty"`
	Excluded    []string         `json:"excluded,omitempty"`
}

// MarshalJSON keys letters by their string form instead of code points.
func (c ConstraintSet) MarshalJSON() ([]byte, error) {
	out := constraintJSON{Pattern: c.PatternString()}
	if len(c.Forbidden) > 0 {
		out.Forbidden = make(map[string][]int, len(c.Forbidden))
		for r, pos := range c.Forbidden {
			out.Forbidden[string(r)] = pos
		}
	}
	if len(c.MinCounts) > 0 {
		out.MinCounts = make(map[string]int, len(c.MinCounts))
		for r, n := range c.MinCounts {
			out.MinCounts[string(r)] = n
		}
	}
	if len(c.ExactCounts) > 0 {
		out.ExactCounts = make(map[string]int, len(c.ExactCounts))
		for r, n := range c.ExactCounts {
			out.ExactCounts[string(r)] = n
		}
	}
	for _, r := range c.Excluded.Sorted() {
		out.Excluded = append(out.Excluded, string(r))
	}
	return json.Marshal(out)
}

// RankedCandidate is a surviving word with its heuristic scores.
type RankedCandidate struct {
	Word      string `json:"word"`
	Coverage  int    `json:"coverage"`
	Frequency int    `json:"frequency"`
}

// LetterFrequency counts the candidates containing a letter at least once.
type LetterFrequency struct {
	Letter rune `json:"-"`
	Words  int  `json:"words"`
}

func (f LetterFrequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Letter string `json:"letter"`
		Words  int    `json:"words"`
	}{string(f.Letter), f.Words})
}

// SearchResult is what a search hands back to the presentation layer.
type SearchResult struct {
	Constraints ConstraintSet     `json:"constraints"`
	Total       int               `json:"total"`
	Ranked      []RankedCandidate `json:"ranked"`
	Letters     []LetterFrequency `json:"letters,omitempty"`
}

// Suggestions returns the ranked words in order.
func (r *SearchResult) Suggestions() []string {
	out := make([]string, len(r.Ranked))
	for i, rc := range r.Ranked {
		out[i] = rc.Word
	}
	return out
}
