// Command emomerge merges RAVDESS and ASVP-ESD audio files into one dataset
// layout.
//
// It parses flags, validates configuration, and either runs the directory
// check and scan report (--check) or the selected merge phases.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/emomerge/internal/check"
	"github.com/backmassage/emomerge/internal/config"
	"github.com/backmassage/emomerge/internal/display"
	"github.com/backmassage/emomerge/internal/journal"
	"github.com/backmassage/emomerge/internal/logging"
	"github.com/backmassage/emomerge/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: no logger yet, errors go straight to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseArgs(&cfg, os.Args[1:], version, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, config.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "emomerge: %v\n", err)
		return 2
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "emomerge: %v\n", err)
		return 2
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emomerge: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.CheckOnly {
		return runCheck(ctx, &cfg, log)
	}
	if !cfg.HasWork() {
		log.Info("No phase selected (use --merge, --restructure or --cleanup); nothing to do")
		return 0
	}

	if err := check.CheckRoot(cfg.Directory); err != nil {
		log.Error("Directory %s: %v", cfg.Directory, err)
		return 1
	}

	log.Info("=== emomerge v%s (%s) ===", version, commit)
	log.Info("Dir: %s", cfg.Directory)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be moved or removed")
	}

	var rec pipeline.Recorder
	var j *journal.Journal
	if cfg.JournalPath != "" {
		j, err = journal.Open(cfg.JournalPath)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		defer j.Close()

		phases := make([]string, 0, 3)
		for _, p := range cfg.Phases() {
			phases = append(phases, string(p))
		}
		runID, err := j.BeginRun(ctx, cfg.Directory, phases, cfg.DryRun)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		log.Debug("Journal run %s in %s", runID, cfg.JournalPath)
		rec = j
	}

	_, runErr := pipeline.Run(ctx, &cfg, log, rec)

	if j != nil {
		status := journal.StatusOK
		if runErr != nil {
			status = journal.StatusFailed
		}
		// The run context may already be cancelled; the final status must
		// still be written.
		if err := j.FinishRun(context.Background(), status); err != nil {
			log.Warn("Journal: %v", err)
		}
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			log.Warn("Interrupted")
		} else {
			log.Error("%v", runErr)
		}
		return 1
	}
	return 0
}

// runCheck validates the directory and journal location, then prints what
// a restructure would do.
func runCheck(ctx context.Context, cfg *config.Config, log *logging.Logger) int {
	if !check.RunCheck(cfg, log) {
		return 1
	}
	report, err := pipeline.Analyze(ctx, cfg.Directory, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	pipeline.WriteReport(os.Stdout, report)
	if report.Failed > 0 {
		return 1
	}
	return 0
}
