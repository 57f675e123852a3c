// Package config loads the settings of a case split search from YAML
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cottand/casesplit/goal"
	"github.com/cottand/casesplit/split"
)

type Config struct {
	// MaxSplits bounds the number of splits along any branch of the search
	MaxSplits uint `yaml:"max_splits"`

	SplitIte     bool `yaml:"split_ite"`
	SplitMatch   bool `yaml:"split_match"`
	SplitIndPred bool `yaml:"split_ind_pred"`

	// CheckProofs checks every split before it is committed
	CheckProofs bool `yaml:"check_proofs"`
	Tracing     bool `yaml:"tracing"`

	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		MaxSplits:    8,
		SplitIte:     true,
		SplitMatch:   true,
		SplitIndPred: true,
		CheckProofs:  true,
		LogLevel:     "warn",
	}
}

// Load reads the config at path. Settings missing from the file keep their default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxSplits == 0 {
		return errors.New("max_splits must be at least 1")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c Config) Options() split.Options {
	return split.Options{
		Shapes: split.Shapes{
			Ite:     c.SplitIte,
			Match:   c.SplitMatch,
			IndPred: c.SplitIndPred,
		},
		CheckProofs: c.CheckProofs,
		Tracing:     c.Tracing,
	}
}

func (c Config) Budget() goal.Budget {
	return goal.Budget{Max: c.MaxSplits}
}
