package pipeline

import (
	"context"

	"github.com/backmassage/emomerge/internal/config"
	"github.com/backmassage/emomerge/internal/display"
	"github.com/backmassage/emomerge/internal/logging"
)

// Run executes the phases selected in cfg in the order merge, restructure,
// cleanup, and returns the combined stats. With no phase selected it does
// nothing. rec may be nil.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, rec Recorder) (RunStats, error) {
	var total RunStats
	opts := Options{DryRun: cfg.DryRun, Recorder: rec}

	phases := cfg.Phases()
	if len(phases) == 0 {
		log.Info("No phase selected (use --merge, --restructure or --cleanup); nothing to do")
		return total, nil
	}

	if cfg.DryRun && len(phases) > 1 {
		log.Warn("[DRY] Each phase is planned against the unchanged tree; moves planned by an earlier phase are not carried over")
	}

	for _, phase := range phases {
		log.Info("=== %s ===", phase)
		var err error
		switch phase {
		case config.PhaseMerge:
			err = runRestructure(ctx, cfg.Directory, log, opts, &total)
			if err == nil {
				err = runPrune(ctx, cfg.Directory, log, opts, &total)
			}
		case config.PhaseRestructure:
			err = runRestructure(ctx, cfg.Directory, log, opts, &total)
		case config.PhaseCleanup:
			err = runPrune(ctx, cfg.Directory, log, opts, &total)
		}
		if err != nil {
			logSummary(cfg, log, &total)
			return total, err
		}
	}

	logSummary(cfg, log, &total)
	return total, nil
}

func runRestructure(ctx context.Context, root string, log *logging.Logger, opts Options, total *RunStats) error {
	stats, err := Restructure(ctx, root, log, opts)
	total.Add(stats)
	if err != nil {
		return err
	}
	log.Success("Restructured %s (%d RAVDESS, %d ASVP-ESD)",
		display.Plural(stats.Moved, "file"), stats.Unified, stats.Secondary)
	return nil
}

func runPrune(ctx context.Context, root string, log *logging.Logger, opts Options, total *RunStats) error {
	n, err := PruneEmptyDirs(ctx, root, log, opts)
	total.Pruned += n
	if err != nil {
		return err
	}
	log.Success("Removed %s", display.Plural(n, "empty directory"))
	return nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	prefix := ""
	if cfg.DryRun {
		prefix = "[DRY] "
	}
	log.Info("%sDone: %s moved, %s removed", prefix,
		display.Plural(stats.Moved, "file"), display.Plural(stats.Pruned, "directory"))
	if stats.Total > 0 {
		log.Info("  ASVP-ESD share: %s of %d files", display.Percent(stats.Secondary, stats.Total), stats.Total)
	}
	if stats.Collisions > 0 {
		log.Warn("  %s replaced an earlier file with the same unified name",
			display.Plural(stats.Collisions, "move"))
	}
}
