package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/wordsolver/internal/config"
	"svw.info/wordsolver/internal/domain"
	"svw.info/wordsolver/internal/ports"
	"svw.info/wordsolver/internal/usecase"
	"svw.info/wordsolver/internal/validator"
)

func writeList(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWith(t, nil, args...)
	return out, err
}

// runWith runs the command tree with an optional word source replacing the
// file system and returns the options for inspection.
func runWith(t *testing.T, src ports.WordSource, args ...string) (string, *options, error) {
	t.Helper()
	saved := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = saved })

	var out, errOut bytes.Buffer
	root, opts := newRootCmd()
	if src != nil {
		opts.source = src
	}
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := execute(context.Background(), root, opts)
	return out.String(), opts, err
}

func TestParseGuess(t *testing.T) {
	cases := []struct {
		arg  string
		word string
		mask string
		err  error
	}{
		{arg: "crane:bbyyg", word: "crane", mask: "bbyyg"},
		{arg: "CRANE:BBYYG", word: "crane", mask: "bbyyg"},
		{arg: "crane:-?+.b", word: "crane", mask: "bygbb"},
		{arg: "crane", err: errGuessFormat},
		{arg: ":bbbbb", err: errGuessFormat},
		{arg: "crane:", err: errGuessFormat},
		{arg: "crane:bbb", err: domain.ErrRowLength},
		{arg: "crane:bbxbb", err: domain.ErrMaskChar},
	}
	for _, tc := range cases {
		t.Run(tc.arg, func(t *testing.T) {
			row, err := parseGuess(tc.arg)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.word, row.Word())
			assert.Equal(t, tc.mask, row.Mask())
		})
	}
}

func TestParseGuessesReportsEveryBadArgument(t *testing.T) {
	_, err := parseGuesses([]string{"crane", "moist:bbbbb", "pious:bb"})
	assert.ErrorIs(t, err, errGuessFormat)
	assert.ErrorIs(t, err, domain.ErrRowLength)
}

func TestSuggest(t *testing.T) {
	list := writeList(t, "crane", "moist", "pious", "moody")
	out, err := runCLI(t, "suggest", "--words", list, "crane:bbbbb")
	require.NoError(t, err)
	assert.Contains(t, out, "Pattern: _____")
	assert.Contains(t, out, "Found 3 possible words.")
	assert.Contains(t, out, "1. moist  (letters 5, score 10)")
	assert.Contains(t, out, "Common letters: o 3")
	assert.NotContains(t, out, "crane")
}

func TestSuggestJSON(t *testing.T) {
	list := writeList(t, "crane", "moist", "pious", "moody")
	out, err := runCLI(t, "suggest", "--json", "-w", list, "--filter", "index", "crane:bbbbb", "moist:byyyb")
	require.NoError(t, err)

	var got struct {
		Total  int `json:"total"`
		Ranked []struct {
			Word string `json:"word"`
		} `json:"ranked"`
		Constraints struct {
			Excluded []string `json:"excluded"`
		} `json:"constraints"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Total)
	require.Len(t, got.Ranked, 1)
	assert.Equal(t, "pious", got.Ranked[0].Word)
	assert.Contains(t, got.Constraints.Excluded, "m")
}

func TestSuggestDefaultList(t *testing.T) {
	out, err := runCLI(t, "suggest", "--limit", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3. ")
	assert.NotContains(t, out, "4. ")
}

func TestSuggestErrors(t *testing.T) {
	list := writeList(t, "crane", "moist")

	_, err := runCLI(t, "suggest", "-w", list, "crane")
	assert.ErrorIs(t, err, errGuessFormat)

	_, err = runCLI(t, "suggest", "-w", list, "--length", "6", "crane:bbbbb")
	assert.ErrorIs(t, err, validator.ErrInvalidGridShape)

	_, err = runCLI(t, "suggest", "-w", filepath.Join(t.TempDir(), "missing.txt"), "crane:bbbbb")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidFlagValue(t *testing.T) {
	_, err := runCLI(t, "suggest", "--filter", "dlx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Filter")
}

func TestConfigFile(t *testing.T) {
	list := writeList(t, "crane", "moist", "pious", "moody")
	cfgPath := filepath.Join(t.TempDir(), "wordsolver.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("limit: 1\nword_lists:\n  - "+list+"\n"), 0o644))

	out, err := runCLI(t, "suggest", "--config", cfgPath, "crane:bbbbb")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 3 possible words.")
	assert.Contains(t, out, "1. moist")
	assert.NotContains(t, out, "2. ")

	out, err = runCLI(t, "suggest", "--config", cfgPath, "--limit", "2", "crane:bbbbb")
	require.NoError(t, err)
	assert.Contains(t, out, "2. ", "flags override the file")
}

func TestLogFile(t *testing.T) {
	list := writeList(t, "crane", "moist")
	logPath := filepath.Join(t.TempDir(), "wordsolver.log")
	_, err := runCLI(t, "suggest", "-w", list, "--log-file", logPath, "--log-level", "debug")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dictionary loaded")
	assert.Contains(t, string(data), "msg=search")
}

func TestSimulate(t *testing.T) {
	list := writeList(t, "crane", "moist", "pious", "moody")

	out, err := runCLI(t, "simulate", "-w", list, "--target", "moist")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved MOIST in 1/6.")

	out, err = runCLI(t, "simulate", "-w", list, "--target", "MOIST", "--start", "crane")
	require.NoError(t, err)
	assert.Contains(t, out, "3 left")
	assert.Contains(t, out, "Solved MOIST in 2/6.")
}

func TestSimulateErrors(t *testing.T) {
	list := writeList(t, "crane", "moist", "pious", "moody")

	_, err := runCLI(t, "simulate", "-w", list)
	require.Error(t, err, "target is required")

	out, err := runCLI(t, "simulate", "-w", list, "--target", "zzzzz")
	assert.ErrorIs(t, err, usecase.ErrNoSuggestion)
	assert.Contains(t, out, "left", "played turns are still printed")
}

func TestRootPrintsHelpWithoutTerminal(t *testing.T) {
	out, err := runCLI(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "suggest")
}

type fakeSource struct {
	paths []string
	words []string
}

func (f *fakeSource) LoadAll(_ context.Context, paths []string) ([]string, error) {
	f.paths = append(f.paths, paths...)
	return f.words, nil
}

func TestSuggestUsesWordSource(t *testing.T) {
	src := &fakeSource{words: []string{"crane", "moist", "pious"}}
	out, _, err := runWith(t, src, "suggest", "-w", "a.txt", "-w", "b.json", "crane:bbbbb")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.json"}, src.paths)
	assert.Contains(t, out, "Found 2 possible words.")

	src = &fakeSource{}
	_, _, err = runWith(t, src, "suggest", "crane:bbbbb")
	require.NoError(t, err)
	assert.Empty(t, src.paths, "no lists configured means the embedded list")
}

func TestLogFileClosedOnFailure(t *testing.T) {
	list := writeList(t, "crane", "moist")
	logPath := filepath.Join(t.TempDir(), "wordsolver.log")
	_, opts, err := runWith(t, nil, "suggest", "-w", list, "--log-file", logPath, "crane")
	assert.ErrorIs(t, err, errGuessFormat)
	assert.Nil(t, opts.closeLog, "log file released")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command failed")
}

func TestConfigCommand(t *testing.T) {
	out, err := runCLI(t, "config", "--limit", "4", "--theme", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "limit: 4")
	assert.Contains(t, out, "theme: light")

	path := filepath.Join(t.TempDir(), "saved.yaml")
	out, err = runCLI(t, "config", "--filter", "index", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "index", cfg.Filter)
	assert.Equal(t, 5, cfg.WordLength)
}
