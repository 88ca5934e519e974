package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"svw.info/wordsolver/internal/domain"
	"svw.info/wordsolver/internal/ports"
)

type Service struct {
	Validator ports.Validator
	Extractor ports.Extractor
	Filter    ports.Filter
	Ranker    ports.Ranker
	Scorer    ports.Scorer
	Words     *domain.Dictionary
	Logger    *slog.Logger
}

func NewService(v ports.Validator, e ports.Extractor, f ports.Filter, r ports.Ranker, sc ports.Scorer, words *domain.Dictionary, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Validator: v, Extractor: e, Filter: f, Ranker: r, Scorer: sc, Words: words, Logger: logger}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Search validates the grid, derives its constraints, filters the dictionary
// and ranks the survivors. An empty dictionary yields an empty result.
func (u *Service) Search(ctx context.Context, grid []domain.GuessRow, wordLength, limit int) (*domain.SearchResult, ports.Stats, error) {
	if u.Validator == nil || u.Extractor == nil || u.Filter == nil || u.Ranker == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	start := time.Now()
	if err := u.Validator.Validate(ctx, grid, wordLength); err != nil {
		return nil, ports.Stats{}, err
	}
	cs := u.Extractor.Derive(grid, wordLength)
	candidates, st, err := u.Filter.Filter(ctx, &cs, u.Words)
	if err != nil {
		return nil, st, err
	}
	ranked, letters, err := u.Ranker.Rank(ctx, candidates, limit)
	if err != nil {
		return nil, st, err
	}
	st.Duration = time.Since(start)
	u.Logger.Debug("search",
		"pattern", cs.PatternString(),
		"dictionary", u.Words.Len(),
		"candidates", len(candidates),
		"suggestions", len(ranked),
		"dur", st.Duration,
	)
	return &domain.SearchResult{
		Constraints: cs,
		Total:       len(candidates),
		Ranked:      ranked,
		Letters:     letters,
	}, st, nil
}

// Score returns the feedback guess would receive against target.
func (u *Service) Score(guess, target string) (domain.GuessRow, error) {
	if u.Scorer == nil {
		return nil, errNotConfigured
	}
	return u.Scorer.Score(guess, target)
}
