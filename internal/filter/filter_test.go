package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/wordsolver/internal/constraint"
	"svw.info/wordsolver/internal/domain"
	"svw.info/wordsolver/internal/feedback"
	"svw.info/wordsolver/internal/ports"
)

var sample = []string{
	"crane", "moist", "candy", "pious", "onion", "moody", "floor", "robot",
	"igloo", "spicy", "crisp", "hippo", "upset", "pouch", "geese", "eerie",
	"llama", "allot", "paper", "apple", "abide", "speed", "sling", "track",
}

func derive(t *testing.T, rows ...string) domain.ConstraintSet {
	t.Helper()
	grid := make([]domain.GuessRow, 0, len(rows)/2)
	for i := 0; i+1 < len(rows); i += 2 {
		r, err := domain.ParseRow(rows[i], rows[i+1])
		require.NoError(t, err)
		grid = append(grid, r)
	}
	return constraint.Derive(grid, 5)
}

func strategies() map[string]ports.Filter {
	return map[string]ports.Filter{
		"scan":  NewScanner(),
		"index": NewIndexed(),
	}
}

func TestScenarios(t *testing.T) {
	dict := domain.NewDictionary(sample, 5)
	cases := []struct {
		name string
		rows []string
		want []string
	}{
		{"all absent", []string{"crane", "bbbbb"}, []string{"moist", "pious", "moody", "igloo", "hippo"}},
		{"present and correct duplicate", []string{"robot", "bybgb"}, []string{"onion", "igloo"}},
		{"mixed duplicate feedback", []string{"apple", "bybbb"}, []string{"pious", "crisp", "pouch"}},
		{"empty grid", nil, dict.Words()},
	}

	for name, f := range strategies() {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				cs := derive(t, tc.rows...)
				got, st, err := f.Filter(context.Background(), &cs, dict)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				assert.Equal(t, dict.Len(), st.Scanned)
			})
		}
	}
}

func TestCandidatesRejectsWrongPositions(t *testing.T) {
	cs := derive(t, "robot", "bybgb")
	assert.False(t, Match(&cs, "moody"))
	assert.True(t, Match(&cs, "onion"))
	assert.False(t, Match(&cs, "floor"), "excluded letter")
	assert.False(t, Match(&cs, "onions"), "length")
}

func TestCandidatesSubsetAndIdempotent(t *testing.T) {
	cs := derive(t, "sling", "bbybb", "pious", "bgbbb")
	first := Candidates(&cs, sample)
	second := Candidates(&cs, sample)
	assert.Equal(t, first, second)
	assert.Subset(t, sample, first)
}

func TestCandidatesMonotonic(t *testing.T) {
	base := derive(t, "crane", "bbbbb")
	before := Candidates(&base, sample)

	narrowed := derive(t, "crane", "bbbbb", "moist", "ggggg")
	after := Candidates(&narrowed, sample)

	assert.Subset(t, before, after)
	assert.LessOrEqual(t, len(after), len(before))
	assert.Equal(t, []string{"moist"}, after)
}

func TestEmptyDictionary(t *testing.T) {
	cs := derive(t, "crane", "bbbbb")
	for name, f := range strategies() {
		got, _, err := f.Filter(context.Background(), &cs, domain.NewDictionary(nil, 5))
		require.NoError(t, err, name)
		assert.Empty(t, got, name)
	}
}

func TestCanceledScan(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cs := derive(t)
	_, _, err := NewScanner().Filter(ctx, &cs, domain.NewDictionary(sample, 5))
	assert.ErrorIs(t, err, context.Canceled)
}

// The target must survive its own feedback, and both strategies must agree.
func TestTargetSurvivesFeedback(t *testing.T) {
	dict := domain.NewDictionary(sample, 5)
	scan, idx := NewScanner(), NewIndexed()
	ctx := context.Background()

	for _, target := range dict.Words() {
		for _, guess := range dict.Words() {
			row, err := feedback.Score(guess, target)
			require.NoError(t, err)
			cs := constraint.Derive([]domain.GuessRow{row}, 5)

			a, _, err := scan.Filter(ctx, &cs, dict)
			require.NoError(t, err)
			b, _, err := idx.Filter(ctx, &cs, dict)
			require.NoError(t, err)

			assert.Contains(t, a, target, "guess %s target %s", guess, target)
			assert.Equal(t, a, b, "guess %s target %s", guess, target)
		}
	}
}

func TestIndexedMatchesScannerOnHandBuiltSets(t *testing.T) {
	dict := domain.NewDictionary(append(sample, "abc", "llamas"), 0)
	sets := []domain.ConstraintSet{
		{
			Pattern:   make([]rune, 5),
			MinCounts: map[rune]int{'l': 2},
		},
		{
			Pattern:     make([]rune, 5),
			ExactCounts: map[rune]int{'e': 3},
			Excluded:    domain.LetterSet{'z': {}},
		},
		{
			Pattern:   []rune{0, 0, 0, 0, 'e'},
			Forbidden: map[rune][]int{'e': {0, 9}, 'p': {-1}},
			MinCounts: map[rune]int{'q': 1},
		},
		{
			Pattern:     make([]rune, 5),
			MinCounts:   map[rune]int{'o': 1},
			ExactCounts: map[rune]int{'o': 2},
			Excluded:    domain.LetterSet{'a': {}},
		},
		{
			Pattern: make([]rune, 3),
		},
		{
			Pattern: make([]rune, 7),
		},
	}
	scan, idx := NewScanner(), NewIndexed()
	for i := range sets {
		a, _, err := scan.Filter(context.Background(), &sets[i], dict)
		require.NoError(t, err)
		b, _, err := idx.Filter(context.Background(), &sets[i], dict)
		require.NoError(t, err)
		assert.Equal(t, a, b, "set %d", i)
	}
}

func TestIndexedRebuildsForNewDictionary(t *testing.T) {
	idx := NewIndexed()
	cs := derive(t)
	first, _, err := idx.Filter(context.Background(), &cs, domain.NewDictionary([]string{"crane"}, 5))
	require.NoError(t, err)
	second, _, err := idx.Filter(context.Background(), &cs, domain.NewDictionary([]string{"moist", "pious"}, 5))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane"}, first)
	assert.Equal(t, []string{"moist", "pious"}, second)
}
