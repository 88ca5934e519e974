package constraint

import (
	"slices"

	"svw.info/wordsolver/internal/domain"
)

// Extractor implements ports.Extractor.
type Extractor struct{}

func NewExtractor() *Extractor { return &Extractor{} }

func (e *Extractor) Derive(grid []domain.GuessRow, wordLength int) domain.ConstraintSet {
	return Derive(grid, wordLength)
}

// rowFacts is what a single played row proves.
type rowFacts struct {
	input    map[rune]int
	feedback map[rune]int
	present  map[rune][]int
}

func factsOf(row domain.GuessRow) rowFacts {
	f := rowFacts{
		input:    map[rune]int{},
		feedback: map[rune]int{},
		present:  map[rune][]int{},
	}
	for c, cell := range row {
		if cell.Letter == 0 {
			continue
		}
		l := domain.NormalizeLetter(cell.Letter)
		f.input[l]++
		switch cell.State {
		case domain.Correct:
			f.feedback[l]++
		case domain.Present:
			f.feedback[l]++
			f.present[l] = append(f.present[l], c)
		}
	}
	return f
}

// Derive builds the constraint set for a grid. Rows of the wrong length and
// rows with no letters are skipped; it never fails.
func Derive(grid []domain.GuessRow, wordLength int) domain.ConstraintSet {
	if wordLength < 0 {
		wordLength = 0
	}
	rows := make([]domain.GuessRow, 0, len(grid))
	for _, r := range grid {
		if len(r) != wordLength || r.Empty() {
			continue
		}
		rows = append(rows, r)
	}

	cs := domain.ConstraintSet{
		Pattern:     patternOf(rows, wordLength),
		Forbidden:   map[rune][]int{},
		MinCounts:   map[rune]int{},
		ExactCounts: map[rune]int{},
		Excluded:    domain.LetterSet{},
	}

	used := domain.LetterSet{}
	for _, r := range rows {
		f := factsOf(r)
		merge(&cs, f)
		for l := range f.input {
			used.Add(l)
		}
	}

	for l := range used {
		_, hasMin := cs.MinCounts[l]
		_, hasExact := cs.ExactCounts[l]
		if !hasMin && !hasExact {
			cs.Excluded.Add(l)
		}
	}
	for l, n := range cs.ExactCounts {
		if n == 0 {
			cs.Excluded.Add(l)
		}
	}
	return cs
}

// patternOf fixes each slot from the first row marking it Correct.
func patternOf(rows []domain.GuessRow, wordLength int) []rune {
	pattern := make([]rune, wordLength)
	for c := range wordLength {
		for _, r := range rows {
			cell := r[c]
			if cell.State == domain.Correct && cell.Letter != 0 {
				pattern[c] = domain.NormalizeLetter(cell.Letter)
				break
			}
		}
	}
	return pattern
}

// merge folds one row into the running set. The first exact count derived for
// a letter is kept.
func merge(cs *domain.ConstraintSet, f rowFacts) {
	for l, n := range f.feedback {
		if n > cs.MinCounts[l] {
			cs.MinCounts[l] = n
		}
	}
	for l, typed := range f.input {
		fb := f.feedback[l]
		if typed <= fb {
			continue
		}
		if _, ok := cs.ExactCounts[l]; !ok {
			cs.ExactCounts[l] = fb
		}
	}
	for l, positions := range f.present {
		for _, p := range positions {
			if !slices.Contains(cs.Forbidden[l], p) {
				cs.Forbidden[l] = append(cs.Forbidden[l], p)
			}
		}
		slices.Sort(cs.Forbidden[l])
	}
}
