package validator

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"svw.info/wordsolver/internal/domain"
)

var (
	ErrInvalidGridShape  = errors.New("invalid grid shape")
	ErrInvalidLetter     = errors.New("invalid letter")
	ErrInvalidWordLength = errors.New("invalid word length")
)

// GridValidator checks row lengths and cell contents before a search.
type GridValidator struct{}

func New() *GridValidator { return &GridValidator{} }

// Validate reports every malformed row, joined into one error.
func (v *GridValidator) Validate(ctx context.Context, grid []domain.GuessRow, wordLength int) error {
	if wordLength < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWordLength, wordLength)
	}
	var errs []error
	for r, row := range grid {
		if len(row) != wordLength {
			errs = append(errs, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGridShape, r, len(row), wordLength))
			continue
		}
		for c, cell := range row {
			if cell.Letter == 0 {
				continue
			}
			if !unicode.IsLetter(cell.Letter) {
				errs = append(errs, fmt.Errorf("%w: %q at row %d col %d", ErrInvalidLetter, cell.Letter, r, c))
			}
		}
	}
	return errors.Join(errs...)
}
