package wordlist

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FS reads word lists from the local file system.
type FS struct{ dir string }

// NewFS resolves relative paths against dir ("" means the working directory).
func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(p string) string {
	if s.dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.dir, p)
}

// Load reads one list. Files ending in .json hold an array of strings; any
// other file has one word per line with '#' comments.
func (s *FS) Load(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.pathFor(path))
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}
	words, err := ParseText(data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, nil
}

// LoadAll reads every list concurrently and concatenates them in argument order.
func (s *FS) LoadAll(ctx context.Context, paths []string) ([]string, error) {
	lists := make([][]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			words, err := s.Load(ctx, p)
			if err != nil {
				return fmt.Errorf("load %s: %w", p, err)
			}
			lists[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out, nil
}

// ParseJSON decodes a JSON array of words.
func ParseJSON(data []byte) ([]string, error) {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("word list is not a JSON array of strings: %w", err)
	}
	return words, nil
}

// ParseText splits newline separated words, skipping blanks and comments.
// A line longer than bufio.MaxScanTokenSize is an error.
func ParseText(data []byte) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
