package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"svw.info/wordsolver/assets"
	"svw.info/wordsolver/internal/config"
	"svw.info/wordsolver/internal/constraint"
	"svw.info/wordsolver/internal/domain"
	"svw.info/wordsolver/internal/feedback"
	"svw.info/wordsolver/internal/filter"
	"svw.info/wordsolver/internal/ports"
	"svw.info/wordsolver/internal/rank"
	"svw.info/wordsolver/internal/usecase"
	"svw.info/wordsolver/internal/validator"
)

// newLogger writes text logs to the configured file, or to fallback when no
// file is set. A nil fallback discards them.
func newLogger(cfg config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	out, closeLog := fallback, func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open the log file: %w", err)
		}
		out, closeLog = f, f.Close
	}
	if out == nil {
		out = io.Discard
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.SlogLevel()})), closeLog, nil
}

func newFilter(kind string) ports.Filter {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "index":
		return filter.NewIndexed()
	default:
		return filter.NewScanner()
	}
}

// loadWords reads the configured lists, or the embedded list when none are set.
func loadWords(ctx context.Context, cfg config.Config, src ports.WordSource) ([]string, error) {
	if len(cfg.WordLists) == 0 {
		return assets.DefaultWords()
	}
	return src.LoadAll(ctx, cfg.WordLists)
}

// newService wires providers into the use case service.
func newService(ctx context.Context, cfg config.Config, src ports.WordSource, logger *slog.Logger) (*usecase.Service, error) {
	words, err := loadWords(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	dict := domain.NewDictionary(words, cfg.WordLength)
	if dict.Len() == 0 {
		logger.Warn("dictionary is empty", "length", cfg.WordLength, "lists", cfg.WordLists)
	}
	logger.Info("dictionary loaded", "words", dict.Len(), "read", len(words), "length", cfg.WordLength, "filter", cfg.Filter)

	return usecase.NewService(
		validator.New(),
		constraint.NewExtractor(),
		newFilter(cfg.Filter),
		rank.NewRanker(),
		feedback.NewScorer(),
		dict,
		logger,
	), nil
}
