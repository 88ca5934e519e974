package filter

import (
	"context"
	"time"

	"svw.info/wordsolver/internal/domain"
	"svw.info/wordsolver/internal/ports"
)

// Scanner is a straightforward linear filter over the dictionary.
type Scanner struct{}

func NewScanner() *Scanner { return &Scanner{} }

// checkEvery is how many words are tested between context checks.
const checkEvery = 4096

func (s *Scanner) Filter(ctx context.Context, cs *domain.ConstraintSet, dict *domain.Dictionary) ([]string, ports.Stats, error) {
	start := time.Now()
	words := dict.Words()
	m := newMatcher(cs)
	out := make([]string, 0, len(words)/8)
	for i, w := range words {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return nil, ports.Stats{Scanned: i, Duration: time.Since(start)}, ctx.Err()
		}
		if m.match(w) {
			out = append(out, w)
		}
	}
	return out, ports.Stats{Scanned: len(words), Duration: time.Since(start)}, nil
}
