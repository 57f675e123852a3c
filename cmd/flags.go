package cmd

import (
	"fmt"

	"github.com/cottand/casesplit/config"
	"github.com/cottand/casesplit/internal/log"
	"github.com/cottand/casesplit/problem"
	"github.com/spf13/cobra"
)

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to a YAML config file")
	cmd.Flags().String("log-level", "", "overrides the log_level of the config (debug, info, warn, error)")
}

// loadConfig reads the config named by the flags of cmd and applies its log level
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	level, err := cfg.Level()
	if err != nil {
		return cfg, err
	}
	log.SetLevel(level)
	return cfg, nil
}

func loadProblem(path string) (*problem.Problem, error) {
	p, err := problem.Load(path)
	if err != nil {
		return nil, fmt.Errorf("could not load problem %s: %w", path, err)
	}
	return p, nil
}
