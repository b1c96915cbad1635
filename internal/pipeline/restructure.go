package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/emomerge/internal/logging"
	"github.com/backmassage/emomerge/internal/naming"
)

// Recorder receives every completed move and prune. The journal package
// provides the SQLite implementation.
type Recorder interface {
	RecordMove(ctx context.Context, source, destination string, actor int) error
	RecordPrune(ctx context.Context, path string) error
}

// Options controls a restructure or prune pass.
type Options struct {
	DryRun   bool     // Log the plan; leave the tree untouched.
	Recorder Recorder // Optional.
}

// Restructure renames every .wav file under root into the unified schema and
// moves it to root/Actor_<NN>/. Files are processed in [Discover] order with
// a fresh actor state, and the first error stops the pass.
//
// Moves use os.Rename: an existing file at the destination is replaced.
// Collisions within the pass are counted and logged but not avoided.
func Restructure(ctx context.Context, root string, log *logging.Logger, opts Options) (RunStats, error) {
	var stats RunStats

	files, err := Discover(root)
	if err != nil {
		return stats, fmt.Errorf("discover %s: %w", root, err)
	}
	stats.Total = len(files)
	log.Info("Found %d audio files in %s", stats.Total, root)

	state := naming.NewActorState()
	tracker := naming.NewDestinationTracker()

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			log.Warn("Interrupted after %d of %d files", i, stats.Total)
			return stats, err
		}
		stats.Current = i + 1

		u, next, err := naming.Remap(filepath.Base(path), state)
		if err != nil {
			return stats, fmt.Errorf("%s: %w", path, err)
		}
		state = next

		switch u.Source {
		case naming.SchemaUnified:
			stats.Unified++
		case naming.SchemaSecondary:
			stats.Secondary++
		}

		dest := naming.GetOutputPath(u, root)
		if prev, collided := tracker.Claim(path, dest); collided {
			stats.Collisions++
			log.Warn("Collision: %s replaces %s at %s", relPath(root, path), relPath(root, prev), relPath(root, dest))
		}

		if opts.DryRun {
			log.Info("[DRY] %s -> %s", relPath(root, path), relPath(root, dest))
			stats.Moved++
			continue
		}

		if err := moveFile(path, dest); err != nil {
			return stats, err
		}
		log.Debug("[%d/%d] %s -> %s", stats.Current, stats.Total, relPath(root, path), relPath(root, dest))
		stats.Moved++

		if opts.Recorder != nil {
			// The file has moved; record it even if the run was just cancelled.
			if err := opts.Recorder.RecordMove(context.WithoutCancel(ctx), path, dest, u.ActorID); err != nil {
				return stats, err
			}
		}
	}

	log.Debug("Actor state after pass: last male %d, last female %d", state.LastMale, state.LastFemale)
	return stats, nil
}

// moveFile creates the destination directory and renames src onto dst.
func moveFile(src, dst string) error {
	if src == dst {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("move: %w", err)
	}
	return nil
}

// relPath shortens path for log output; falls back to path itself.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
