// Package config holds runtime configuration: defaults, CLI argument
// parsing, the optional YAML config file, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Phase is one unit of work selectable on the command line.
type Phase string

const (
	PhaseMerge       Phase = "merge"       // Restructure, then prune.
	PhaseRestructure Phase = "restructure" // Rename and move into Actor_<NN>.
	PhaseCleanup     Phase = "cleanup"     // Prune empty directories.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then the optional config file, then [ParseArgs].
type Config struct {
	// Root of the dataset tree (positional arg).
	Directory string

	// Phases. Independent; run in the order merge, restructure, cleanup.
	Merge       bool
	Restructure bool
	Cleanup     bool

	// Behavior flags.
	DryRun    bool // Log the planned moves without touching the tree.
	CheckOnly bool // Preflight + scan report, then exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.

	// JournalPath is the SQLite move journal. Empty disables it.
	JournalPath string

	// ConfigFile is the YAML file the settings above were loaded from, if any.
	ConfigFile string
}

// DefaultConfig returns a Config with no phases selected and colors on auto.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and requires a directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if c.Directory == "" {
		return errors.New("need a directory to scan")
	}
	return nil
}

// Phases returns the selected phases in execution order.
func (c *Config) Phases() []Phase {
	var out []Phase
	if c.Merge {
		out = append(out, PhaseMerge)
	}
	if c.Restructure {
		out = append(out, PhaseRestructure)
	}
	if c.Cleanup {
		out = append(out, PhaseCleanup)
	}
	return out
}

// HasWork reports whether at least one phase was selected.
func (c *Config) HasWork() bool {
	return len(c.Phases()) > 0
}
