package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"svw.info/wordsolver/internal/config"
	"svw.info/wordsolver/internal/infrastructure/wordlist"
	"svw.info/wordsolver/internal/ports"
)

// options holds the global flag values and the state prepared from them
// before a command runs.
type options struct {
	configPath string
	wordLists  []string
	wordLength int
	rows       int
	limit      int
	filter     string
	theme      string
	logLevel   string
	logFile    string

	source   ports.WordSource
	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error
}

// annotationTUI marks commands that take over the terminal; their logs are
// discarded unless --log-file is set.
const annotationTUI = "tui"

var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{source: wordlist.NewFS("")}
	rootCmd := &cobra.Command{
		Use:   "wordsolver",
		Short: "Suggests the next guess for five-letter word games",
		Long: `wordsolver narrows a dictionary down to the words consistent with the
colored feedback of your previous guesses and ranks them by letter frequency.

Run it without arguments in a terminal to open the interactive grid.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdinIsTerminal() {
				return cmd.Help()
			}
			return runPlay(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringArrayVarP(&opts.wordLists, "words", "w", nil, "word list file, .json or text (repeatable)")
	flags.IntVarP(&opts.wordLength, "length", "l", 0, "word length")
	flags.IntVar(&opts.rows, "rows", 0, "number of guess rows")
	flags.IntVarP(&opts.limit, "limit", "n", 0, "number of suggestions")
	flags.StringVar(&opts.filter, "filter", "", "filter strategy: scan|index")
	flags.StringVar(&opts.theme, "theme", "", "color theme: dark|light")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file")

	rootCmd.AddCommand(newPlayCmd(opts), newSuggestCmd(opts), newSimulateCmd(opts), newConfigCmd(opts))
	return rootCmd, opts
}

// execute runs the command tree and releases the log file whether or not
// the command succeeded.
func execute(ctx context.Context, root *cobra.Command, opts *options) error {
	err := root.ExecuteContext(ctx)
	if err != nil && opts.logger != nil {
		opts.logger.Error("command failed", "err", err)
	}
	if cerr := opts.finish(); err == nil {
		err = cerr
	}
	return err
}

func (o *options) finish() error {
	if o.closeLog == nil {
		return nil
	}
	err := o.closeLog()
	o.closeLog = nil
	return err
}

// prepare loads the config file, applies explicitly set flags over it and
// sets up logging.
func (o *options) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	fallback := cmd.ErrOrStderr()
	if isInteractive(cmd) {
		fallback = nil
	}
	logger, closeLog, err := newLogger(cfg, fallback)
	if err != nil {
		return err
	}
	o.logger, o.closeLog = logger, closeLog
	logger.Debug("config", "path", o.configPath, "length", cfg.WordLength, "filter", cfg.Filter, "lists", len(cfg.WordLists))
	return nil
}

func (o *options) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.WordLists = o.wordLists
	}
	if flags.Changed("length") {
		cfg.WordLength = o.wordLength
	}
	if flags.Changed("rows") {
		cfg.Rows = o.rows
	}
	if flags.Changed("limit") {
		cfg.Limit = o.limit
	}
	if flags.Changed("filter") {
		cfg.Filter = o.filter
	}
	if flags.Changed("theme") {
		cfg.Theme = o.theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
}

func isInteractive(cmd *cobra.Command) bool {
	if _, ok := cmd.Annotations[annotationTUI]; ok {
		return true
	}
	return !cmd.HasParent() && stdinIsTerminal()
}
