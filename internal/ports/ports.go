package ports

import (
	"context"
	"time"

	"svw.info/wordsolver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Scanned  int
	Duration time.Duration
}

// Validator checks the grid shape before constraints are derived.
type Validator interface {
	Validate(ctx context.Context, grid []domain.GuessRow, wordLength int) error
}

// Extractor turns a grid into a constraint set.
type Extractor interface {
	Derive(grid []domain.GuessRow, wordLength int) domain.ConstraintSet
}

// Filter selects the dictionary words consistent with a constraint set,
// preserving dictionary order.
type Filter interface {
	Filter(ctx context.Context, cs *domain.ConstraintSet, dict *domain.Dictionary) ([]string, Stats, error)
}

// Ranker orders candidates by how informative they are as the next guess.
type Ranker interface {
	Rank(ctx context.Context, candidates []string, limit int) ([]domain.RankedCandidate, []domain.LetterFrequency, error)
}

// Scorer computes the feedback a guess would receive against a target.
type Scorer interface {
	Score(guess, target string) (domain.GuessRow, error)
}

// WordSource loads raw word lists.
type WordSource interface {
	LoadAll(ctx context.Context, paths []string) ([]string, error)
}
