package app

import (
	"errors"
	"path/filepath"

	"github.com/specialistvlad/covrunner/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Option    string   // preset key; empty means ask interactively
	ExtraArgs []string // appended to the selected command

	Dir        string // project root
	ConfigPath string // HCL project file; defaults to Dir/covrunner.hcl

	LogFormat string
	LogLevel  string

	List   bool
	DryRun bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.List && cfg.DryRun {
		return nil, errors.New("-list and -dry-run cannot be combined")
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = filepath.Join(cfg.Dir, config.DefaultFile)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return &cfg, nil
}
