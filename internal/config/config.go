// Package config loads the solver settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every command. Flags override values
// read from the file.
type Config struct {
	WordLength int      `yaml:"word_length" validate:"min=2,max=15"`
	Rows       int      `yaml:"rows" validate:"min=1,max=12"`
	Limit      int      `yaml:"limit" validate:"min=1,max=100"`
	WordLists  []string `yaml:"word_lists,omitempty" validate:"dive,required"`
	Filter     string   `yaml:"filter" validate:"oneof=scan index"`
	Theme      string   `yaml:"theme" validate:"oneof=dark light"`
	LogLevel   string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFile    string   `yaml:"log_file,omitempty"`
}

// Default mirrors the classic game: five letters, six guesses.
func Default() Config {
	return Config{
		WordLength: 5,
		Rows:       6,
		Limit:      10,
		Filter:     "scan",
		Theme:      "dark",
		LogLevel:   "info",
	}
}

var validate = validator.New()

// Validate checks the value ranges of every field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes cfg as YAML to w.
func Encode(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Write stores cfg as YAML, creating or truncating path.
func Write(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create the config file: %w", err)
	}
	if err := Encode(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SlogLevel maps LogLevel onto slog levels.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
