package config

// This file implements CLI argument parsing on top of go-arg.
// Values from the config file are loaded first so that flags given on the
// command line win.

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
)

// Returned by ParseArgs after printing help or version text. Callers should
// exit successfully.
var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

// cliArgs is the go-arg destination. Bools default to false so that only
// flags actually given override the config file.
type cliArgs struct {
	Directory   string `arg:"positional,required" help:"directory containing the audio files"`
	Merge       bool   `arg:"--merge" help:"rename, restructure and remove empty directories"`
	Restructure bool   `arg:"--restructure" help:"rename and restructure the audio files"`
	Cleanup     bool   `arg:"--cleanup" help:"remove empty directories"`
	DryRun      bool   `arg:"-n,--dry-run" help:"log planned moves without changing anything"`
	Check       bool   `arg:"--check" help:"check the directory and print a scan report, then exit"`
	Journal     string `arg:"--journal" placeholder:"PATH" help:"record runs and moves in a SQLite journal"`
	Config      string `arg:"--config" placeholder:"PATH" help:"YAML file with default settings"`
	Log         string `arg:"-l,--log" placeholder:"PATH" help:"append logs to file"`
	Verbose     bool   `arg:"-v,--verbose" help:"verbose output"`
	Color       bool   `arg:"--color" help:"force colored logs"`
	NoColor     bool   `arg:"--no-color" help:"disable colored logs"`

	version string
}

func (a *cliArgs) Version() string { return "emomerge v" + a.version }

func (a *cliArgs) Description() string {
	return "Rename and restructure RAVDESS and ASVP-ESD audio files into one unified dataset layout."
}

// ParseArgs parses argv (without the program name) into cfg. Help and
// version text go to stdout, usage errors to stderr.
func ParseArgs(cfg *Config, argv []string, version string, stdout, stderr io.Writer) error {
	a := cliArgs{version: version}
	p, err := arg.NewParser(arg.Config{Program: "emomerge"}, &a)
	if err != nil {
		return err
	}

	switch err := p.Parse(argv); {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stdout)
		return ErrHelp
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stdout, a.Version())
		return ErrVersion
	case err != nil:
		p.WriteUsage(stderr)
		return err
	}

	if a.Config != "" {
		if err := LoadFile(a.Config, cfg); err != nil {
			return err
		}
	}
	applyArgs(cfg, &a)
	return nil
}

// applyArgs copies parsed arguments into cfg. Only flags that were set
// override values from the config file.
func applyArgs(cfg *Config, a *cliArgs) {
	cfg.Directory = NormalizeDirArg(a.Directory)
	cfg.Merge = a.Merge
	cfg.Restructure = a.Restructure
	cfg.Cleanup = a.Cleanup
	cfg.CheckOnly = a.Check

	if a.DryRun {
		cfg.DryRun = true
	}
	if a.Verbose {
		cfg.Verbose = true
	}
	if a.Journal != "" {
		cfg.JournalPath = a.Journal
	}
	if a.Log != "" {
		cfg.LogFile = a.Log
	}
	if a.NoColor {
		cfg.ColorMode = ColorNever
	} else if a.Color {
		cfg.ColorMode = ColorAlways
	}
}
