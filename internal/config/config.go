// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config holds the immutable run configuration for an extract run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDateFormat is the Go time layout applied to date columns when no
// other format is configured.
const DefaultDateFormat = "02-01-2006"

// Config is the run configuration. Values are fixed before the pipeline
// starts; nothing mutates a Config afterwards.
type Config struct {
	// DateFormat is a Go time layout applied to every date column of the
	// CSV artifact.
	DateFormat string `yaml:"date_format"`

	// SprintKeywords keeps only issues with at least one sprint whose name
	// contains at least one of the keywords. Empty means no filtering.
	SprintKeywords []string `yaml:"sprint_keywords"`

	// OmitOutsideSprint skips issues with no sprint assignments at all.
	OmitOutsideSprint bool `yaml:"omit_outside_sprint"`
}

// Default returns the configuration used when no file or flags are given.
func Default() Config {
	return Config{DateFormat: DefaultDateFormat}
}

// Load reads a YAML configuration file, filling unset values with defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultDateFormat
	}
	return cfg, nil
}
