package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"svw.info/wordsolver/internal/adapters/tui"
)

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:         "play",
		Short:       "Open the interactive guess grid",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}
}

func runPlay(cmd *cobra.Command, opts *options) error {
	svc, err := newService(cmd.Context(), opts.cfg, opts.source, opts.logger)
	if err != nil {
		return err
	}
	m := tui.New(cmd.Context(), svc, tui.Config{
		Rows:       opts.cfg.Rows,
		WordLength: opts.cfg.WordLength,
		Limit:      opts.cfg.Limit,
		Theme:      opts.cfg.Theme,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		opts.logger.Error("tui exited", "err", err)
		return err
	}
	return nil
}
