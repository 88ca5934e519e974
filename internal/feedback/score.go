package feedback

import (
	"errors"
	"fmt"
	"unicode"

	"svw.info/wordsolver/internal/domain"
)

var (
	ErrLengthMismatch = errors.New("guess and target lengths differ")
	ErrInvalidWord    = errors.New("word must contain only letters")
)

// Scorer produces the feedback a game would show for a guess.
type Scorer struct{}

func NewScorer() *Scorer { return &Scorer{} }

func (s *Scorer) Score(guess, target string) (domain.GuessRow, error) {
	return Score(guess, target)
}

// Score marks exact matches Correct first, then marks remaining letters
// Present while unmatched copies of them are left in the target.
func Score(guess, target string) (domain.GuessRow, error) {
	g, err := letters(guess)
	if err != nil {
		return nil, err
	}
	t, err := letters(target)
	if err != nil {
		return nil, err
	}
	if len(g) != len(t) {
		return nil, fmt.Errorf("%w: %q (%d) vs %q (%d)", ErrLengthMismatch, guess, len(g), target, len(t))
	}

	row := make(domain.GuessRow, len(g))
	left := make(map[rune]int, len(t))
	for i := range g {
		row[i].Letter = g[i]
		if g[i] == t[i] {
			row[i].State = domain.Correct
			continue
		}
		left[t[i]]++
	}
	for i := range g {
		if row[i].State == domain.Correct {
			continue
		}
		if left[g[i]] > 0 {
			row[i].State = domain.Present
			left[g[i]]--
		}
	}
	return row, nil
}

func letters(w string) ([]rune, error) {
	out := make([]rune, 0, len(w))
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		out = append(out, domain.NormalizeLetter(r))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	return out, nil
}
