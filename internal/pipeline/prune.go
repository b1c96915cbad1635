package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/emomerge/internal/logging"
)

// PruneEmptyDirs removes every directory below root that has no entries.
// Directories are visited deepest first, so a parent left empty by removing
// its children is removed in the same pass. root itself is never removed.
// Returns the number of directories removed (or that would be, in a dry run).
func PruneEmptyDirs(ctx context.Context, root string, log *logging.Logger, opts Options) (int, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("walk %s: %w", root, err)
	}

	// WalkDir is pre-order, so every directory precedes its descendants.
	// Walking the list backwards handles children before parents.
	removed := make(map[string]bool)
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return len(removed), err
		}
		dir := dirs[i]

		empty, err := isEmptyDir(dir, removed)
		if err != nil {
			return len(removed), err
		}
		if !empty {
			continue
		}

		if opts.DryRun {
			log.Info("[DRY] Would remove %s", relPath(root, dir))
		} else {
			if err := os.Remove(dir); err != nil {
				return len(removed), fmt.Errorf("remove %s: %w", dir, err)
			}
			log.Debug("Removed %s", relPath(root, dir))
		}
		removed[dir] = true

		if opts.Recorder != nil && !opts.DryRun {
			if err := opts.Recorder.RecordPrune(context.WithoutCancel(ctx), dir); err != nil {
				return len(removed), err
			}
		}
	}
	return len(removed), nil
}

// isEmptyDir reports whether dir has no entries other than subdirectories
// already marked removed (only possible in a dry run).
func isEmptyDir(dir string, removed map[string]bool) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() && removed[filepath.Join(dir, e.Name())] {
			continue
		}
		return false, nil
	}
	return true, nil
}
