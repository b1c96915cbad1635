package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/backmassage/emomerge/internal/display"
	"github.com/backmassage/emomerge/internal/logging"
	"github.com/backmassage/emomerge/internal/naming"
)

// maxPreviewRows caps the per-file preview table printed by Analyze.
const maxPreviewRows = 20

// ScanEntry is the planned outcome for one discovered file.
type ScanEntry struct {
	Path        string
	Schema      naming.Schema
	Destination string // Empty when Err is set.
	Err         error
}

// ScanReport summarizes what a restructure of root would do.
type ScanReport struct {
	Root       string
	Entries    []ScanEntry
	Unified    int
	Secondary  int
	Failed     int
	Collisions int
	Actors     int // Distinct destination directories.
}

// Analyze discovers files under root and simulates a restructure pass
// without touching the tree. Unlike [Restructure] it keeps going after a
// file fails to remap, so every problem is reported; a real run stops at
// the first one.
func Analyze(ctx context.Context, root string, log *logging.Logger) (ScanReport, error) {
	report := ScanReport{Root: root}

	files, err := Discover(root)
	if err != nil {
		return report, fmt.Errorf("discover %s: %w", root, err)
	}

	state := naming.NewActorState()
	tracker := naming.NewDestinationTracker()
	actors := make(map[string]bool)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		entry := ScanEntry{Path: path}

		u, next, err := naming.Remap(filepath.Base(path), state)
		if err != nil {
			entry.Err = err
			report.Failed++
			log.Warn("Cannot remap %s: %v", relPath(root, path), err)
			report.Entries = append(report.Entries, entry)
			continue
		}
		state = next

		entry.Schema = u.Source
		entry.Destination = naming.GetOutputPath(u, root)
		actors[u.ActorDir()] = true
		if u.Source == naming.SchemaUnified {
			report.Unified++
		} else {
			report.Secondary++
		}
		if _, collided := tracker.Claim(path, entry.Destination); collided {
			report.Collisions++
		}
		report.Entries = append(report.Entries, entry)
	}
	report.Actors = len(actors)
	return report, nil
}

// WriteReport renders the schema summary and a preview of the first
// planned moves to w.
func WriteReport(w io.Writer, r ScanReport) {
	total := len(r.Entries)
	fmt.Fprintln(w, display.Table(
		[]string{"Schema", "Files", "Share"},
		[][]string{
			{naming.SchemaUnified.String(), strconv.Itoa(r.Unified), display.Percent(r.Unified, total)},
			{naming.SchemaSecondary.String(), strconv.Itoa(r.Secondary), display.Percent(r.Secondary, total)},
			{"failed", strconv.Itoa(r.Failed), display.Percent(r.Failed, total)},
		},
	))

	rows := make([][]string, 0, maxPreviewRows)
	for _, e := range r.Entries {
		if len(rows) == maxPreviewRows {
			break
		}
		dest := relPath(r.Root, e.Destination)
		if e.Err != nil {
			dest = "error: " + e.Err.Error()
		}
		rows = append(rows, []string{relPath(r.Root, e.Path), dest})
	}
	if len(rows) > 0 {
		fmt.Fprintln(w, display.Table([]string{"Source", "Destination"}, rows))
	}
	if total > len(rows) {
		fmt.Fprintf(w, "… and %d more\n", total-len(rows))
	}
	fmt.Fprintf(w, "%s, %s\n",
		display.Plural(r.Actors, "actor directory"), display.Plural(r.Collisions, "collision"))
}
