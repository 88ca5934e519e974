package usecase

import (
	"context"
	"errors"
	"unicode/utf8"

	"svw.info/wordsolver/internal/domain"
)

// ErrNoSuggestion is returned when the candidates run out before the target
// is found, typically because the target is not in the dictionary.
var ErrNoSuggestion = errors.New("no candidates left")

// Turn is one simulated guess and the number of candidates it left.
type Turn struct {
	Guess     string `json:"guess"`
	Mask      string `json:"mask"`
	Remaining int    `json:"remaining"`
}

// Simulate plays against target, guessing start first (the top suggestion
// when empty) and then always the top suggestion. It stops when solved or
// after maxRows guesses.
func (u *Service) Simulate(ctx context.Context, target, start string, maxRows int) ([]Turn, bool, error) {
	if u.Scorer == nil {
		return nil, false, errNotConfigured
	}
	length := utf8.RuneCountInString(target)
	var turns []Turn
	guess := start
	var grid []domain.GuessRow
	for len(turns) < maxRows {
		if err := ctx.Err(); err != nil {
			return turns, false, err
		}
		if guess == "" {
			res, _, err := u.Search(ctx, grid, length, 1)
			if err != nil {
				return turns, false, err
			}
			if len(res.Ranked) == 0 {
				return turns, false, ErrNoSuggestion
			}
			guess = res.Ranked[0].Word
		}
		row, err := u.Score(guess, target)
		if err != nil {
			return turns, false, err
		}
		grid = append(grid, row)
		res, _, err := u.Search(ctx, grid, length, 1)
		if err != nil {
			return turns, false, err
		}
		turns = append(turns, Turn{Guess: row.Word(), Mask: row.Mask(), Remaining: res.Total})
		if row.Solved() {
			return turns, true, nil
		}
		guess = ""
	}
	return turns, false, nil
}
