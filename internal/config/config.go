// Package config loads the optional ambient `.jackrc.yaml` file that
// customizes REPL color mode, history location, and the evaluator's
// recursion-depth ceiling, following the teacher's eval_harness spec-file
// loading pattern (read YAML into a plain struct, apply defaults for
// anything absent).
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color selects when the CLI/REPL emit ANSI color codes.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config holds everything `.jackrc.yaml` (or the --config flag) can set.
type Config struct {
	Color       Color  `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
	MaxDepth    int    `yaml:"max_depth"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	historyFile := filepath.Join(os.TempDir(), ".jack_history")
	return &Config{
		Color:       ColorAuto,
		HistoryFile: historyFile,
		MaxDepth:    0, // 0 means "use eval.DefaultMaxDepth"
	}
}

// Load reads path, if non-empty. Otherwise it looks for `.jackrc.yaml` in
// the current directory, then in $HOME, taking the first one found. A
// missing file is not an error: Load silently falls back to Default(). A
// present-but-malformed file is an error, since the user clearly intended
// to configure something.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = ".jackrc.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil && os.IsNotExist(err) && !explicit {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			data, err = os.ReadFile(filepath.Join(home, ".jackrc.yaml"))
		}
	}
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = Default().HistoryFile
	}
	return cfg, nil
}
