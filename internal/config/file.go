package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig models the YAML config file. Pointer fields distinguish
// "absent" from false.
type fileConfig struct {
	Color   string `yaml:"color,omitempty"`
	Log     string `yaml:"log,omitempty"`
	Journal string `yaml:"journal,omitempty"`
	Verbose *bool  `yaml:"verbose,omitempty"`
	DryRun  *bool  `yaml:"dry_run,omitempty"`
}

// LoadFile reads a YAML config file and applies the keys it sets to cfg.
// Phases and the directory cannot be set from the file.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if parsed.Color != "" {
		cfg.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(parsed.Color)))
	}
	if parsed.Log != "" {
		cfg.LogFile = parsed.Log
	}
	if parsed.Journal != "" {
		cfg.JournalPath = parsed.Journal
	}
	if parsed.Verbose != nil {
		cfg.Verbose = *parsed.Verbose
	}
	if parsed.DryRun != nil {
		cfg.DryRun = *parsed.DryRun
	}
	cfg.ConfigFile = path
	return nil
}
