package rank

import (
	"context"
	"slices"
	"sort"

	"svw.info/wordsolver/internal/domain"
)

// DefaultLimit is the number of suggestions returned when no limit is given.
const DefaultLimit = 10

// Ranker scores candidates by how many distinct, common-among-survivors
// letters they cover. It implements ports.Ranker.
type Ranker struct{}

func NewRanker() *Ranker { return &Ranker{} }

func (r *Ranker) Rank(ctx context.Context, candidates []string, limit int) ([]domain.RankedCandidate, []domain.LetterFrequency, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	freq := LetterFrequencies(candidates)
	ranked := score(candidates, freq)
	return head(ranked, limit), freq, nil
}

// LetterFrequencies counts, per letter, the candidates containing it at least
// once. The table is ordered by count, ties by first encounter.
func LetterFrequencies(candidates []string) []domain.LetterFrequency {
	pos := map[rune]int{}
	var out []domain.LetterFrequency
	for _, w := range candidates {
		for _, l := range distinct(w) {
			i, ok := pos[l]
			if !ok {
				i = len(out)
				pos[l] = i
				out = append(out, domain.LetterFrequency{Letter: l})
			}
			out[i].Words++
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Words > out[j].Words })
	return out
}

// Rank scores every candidate and sorts by frequency sum, then by distinct
// letter count, both descending. Remaining ties keep input order.
func Rank(candidates []string) []domain.RankedCandidate {
	return score(candidates, LetterFrequencies(candidates))
}

// Top returns at most limit suggested words; limit <= 0 means DefaultLimit.
func Top(candidates []string, limit int) []string {
	ranked := head(Rank(candidates), limit)
	out := make([]string, len(ranked))
	for i, rc := range ranked {
		out[i] = rc.Word
	}
	return out
}

func score(candidates []string, freq []domain.LetterFrequency) []domain.RankedCandidate {
	table := make(map[rune]int, len(freq))
	for _, f := range freq {
		table[f.Letter] = f.Words
	}
	ranked := make([]domain.RankedCandidate, len(candidates))
	for i, w := range candidates {
		letters := distinct(w)
		sum := 0
		for _, l := range letters {
			sum += table[l]
		}
		ranked[i] = domain.RankedCandidate{Word: w, Coverage: len(letters), Frequency: sum}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Frequency != ranked[j].Frequency {
			return ranked[i].Frequency > ranked[j].Frequency
		}
		return ranked[i].Coverage > ranked[j].Coverage
	})
	return ranked
}

func head(ranked []domain.RankedCandidate, limit int) []domain.RankedCandidate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return slices.Clip(ranked)
}

// distinct returns the letters of w without repeats, in order of appearance.
func distinct(w string) []rune {
	out := make([]rune, 0, len(w))
	for _, r := range w {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
