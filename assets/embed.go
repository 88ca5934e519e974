package assets

import (
	_ "embed"
	"fmt"

	"svw.info/wordsolver/internal/infrastructure/wordlist"
)

//go:embed wordlist.txt
var defaultList []byte

// DefaultWords returns the embedded five-letter word list.
func DefaultWords() ([]string, error) {
	words, err := wordlist.ParseText(defaultList)
	if err != nil {
		return nil, fmt.Errorf("embedded word list: %w", err)
	}
	return words, nil
}
