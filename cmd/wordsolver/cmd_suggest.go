package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/wordsolver/internal/domain"
)

var errGuessFormat = errors.New("guess must look like word:mask")

func newSuggestCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "suggest [word:mask ...]",
		Short: "Print the words consistent with the given guesses",
		Long: `Each argument is a previous guess and its feedback, one mask letter per
position: g (or +) for the right letter in the right place, y (or ?) for a
letter elsewhere in the word, b (or - or .) for a miss.

  wordsolver suggest crane:bbyyg spilt:bybbb`,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := parseGuesses(args)
			if err != nil {
				return err
			}
			svc, err := newService(cmd.Context(), opts.cfg, opts.source, opts.logger)
			if err != nil {
				return err
			}
			res, _, err := svc.Search(cmd.Context(), grid, opts.cfg.WordLength, opts.cfg.Limit)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

// parseGuess splits "crane:bbyyg" into a row.
func parseGuess(arg string) (domain.GuessRow, error) {
	word, mask, ok := strings.Cut(arg, ":")
	if !ok || word == "" || mask == "" {
		return nil, fmt.Errorf("%w: %q", errGuessFormat, arg)
	}
	return domain.ParseRow(word, mask)
}

func parseGuesses(args []string) ([]domain.GuessRow, error) {
	grid := make([]domain.GuessRow, 0, len(args))
	var errs []error
	for _, a := range args {
		row, err := parseGuess(a)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		grid = append(grid, row)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return grid, nil
}

func printResult(w io.Writer, res *domain.SearchResult) {
	fmt.Fprintf(w, "Pattern: %s\n", res.Constraints.PatternString())
	fmt.Fprintf(w, "Found %d possible words.\n", res.Total)
	if len(res.Ranked) > 0 {
		fmt.Fprintln(w, "Best guesses:")
		for i, rc := range res.Ranked {
			fmt.Fprintf(w, "%3d. %s  (letters %d, score %d)\n", i+1, rc.Word, rc.Coverage, rc.Frequency)
		}
	}
	if len(res.Letters) > 0 {
		parts := make([]string, len(res.Letters))
		for i, f := range res.Letters {
			parts[i] = fmt.Sprintf("%c %d", f.Letter, f.Words)
		}
		fmt.Fprintf(w, "Common letters: %s\n", strings.Join(parts, ", "))
	}
}
