package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/wordsolver/internal/adapters/tui"
	"svw.info/wordsolver/internal/domain"
)

func newSimulateCmd(opts *options) *cobra.Command {
	var target, start string
	cmd := &cobra.Command{
		Use:   "simulate --target word",
		Short: "Play against a known word using the top suggestion each turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd.Context(), opts.cfg, opts.source, opts.logger)
			if err != nil {
				return err
			}
			target = strings.ToLower(strings.TrimSpace(target))
			start = strings.ToLower(strings.TrimSpace(start))
			turns, solved, err := svc.Simulate(cmd.Context(), target, start, opts.cfg.Rows)

			out := cmd.OutOrStdout()
			theme := tui.ThemeByName(opts.cfg.Theme)
			for _, t := range turns {
				row, perr := domain.ParseRow(t.Guess, t.Mask)
				if perr != nil {
					return errors.Join(err, perr)
				}
				fmt.Fprintf(out, "%s  %d left\n", tui.RenderRow(theme, row), t.Remaining)
			}
			if err != nil {
				return err
			}
			if solved {
				fmt.Fprintf(out, "Solved %s in %d/%d.\n", strings.ToUpper(target), len(turns), opts.cfg.Rows)
			} else {
				fmt.Fprintf(out, "Not solved in %d guesses.\n", len(turns))
			}
			opts.logger.Info("simulation finished", "target", target, "guesses", len(turns), "solved", solved)
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "word to find")
	cmd.Flags().StringVarP(&start, "start", "s", "", "first guess (default: top suggestion)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
