// Package journal records runs, file moves and pruned directories in a
// SQLite database. It is an audit trail only; nothing reads it back to undo
// a run.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Run statuses.
const (
	StatusRunning = "running"
	StatusOK      = "ok"
	StatusFailed  = "failed"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	root        TEXT NOT NULL,
	phases      TEXT NOT NULL,
	dry_run     INTEGER NOT NULL DEFAULT 0,
	started_at  TEXT NOT NULL,
	finished_at TEXT,
	status      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS moves (
	run_id      TEXT NOT NULL REFERENCES runs(run_id),
	seq         INTEGER NOT NULL,
	source      TEXT NOT NULL,
	destination TEXT NOT NULL,
	actor       INTEGER NOT NULL,
	moved_at    TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);
CREATE TABLE IF NOT EXISTS pruned (
	run_id     TEXT NOT NULL REFERENCES runs(run_id),
	path       TEXT NOT NULL,
	removed_at TEXT NOT NULL
);
`

var errNoRun = errors.New("journal: no run in progress")

// Move is one recorded file move.
type Move struct {
	RunID       string
	Seq         int
	Source      string
	Destination string
	Actor       int
	MovedAt     time.Time
}

// Run is one recorded invocation.
type Run struct {
	ID         string
	Root       string
	Phases     []string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Status     string
}

// Journal is an open journal database. A Journal tracks at most one run in
// progress at a time.
type Journal struct {
	db    *sql.DB
	runID string
	seq   int
	now   func() time.Time
}

// Open creates (if needed) and opens the journal at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Single writer; keeps one connection so pragmas apply everywhere.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma foreign_keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Journal{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// RunID returns the id of the run in progress, or "".
func (j *Journal) RunID() string { return j.runID }

// BeginRun records a new run and makes it the current one.
func (j *Journal) BeginRun(ctx context.Context, root string, phases []string, dryRun bool) (string, error) {
	id := uuid.NewString()
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, root, phases, dry_run, started_at, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, root, strings.Join(phases, ","), dryRun, j.timestamp(), StatusRunning)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	j.runID = id
	j.seq = 0
	return id, nil
}

// FinishRun stamps the current run with status and clears it.
func (j *Journal) FinishRun(ctx context.Context, status string) error {
	if j.runID == "" {
		return errNoRun
	}
	_, err := j.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, status = ? WHERE run_id = ?
	`, j.timestamp(), status, j.runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	j.runID = ""
	return nil
}

// RecordMove appends a move to the current run.
func (j *Journal) RecordMove(ctx context.Context, source, destination string, actor int) error {
	if j.runID == "" {
		return errNoRun
	}
	j.seq++
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO moves (run_id, seq, source, destination, actor, moved_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, j.runID, j.seq, source, destination, actor, j.timestamp())
	if err != nil {
		return fmt.Errorf("insert move: %w", err)
	}
	return nil
}

// RecordPrune appends a removed directory to the current run.
func (j *Journal) RecordPrune(ctx context.Context, path string) error {
	if j.runID == "" {
		return errNoRun
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO pruned (run_id, path, removed_at) VALUES (?, ?, ?)
	`, j.runID, path, j.timestamp())
	if err != nil {
		return fmt.Errorf("insert pruned: %w", err)
	}
	return nil
}

// Moves lists the moves of a run in the order they happened.
func (j *Journal) Moves(ctx context.Context, runID string) ([]Move, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, seq, source, destination, actor, moved_at
		FROM moves WHERE run_id = ? ORDER BY seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	var out []Move
	for rows.Next() {
		var m Move
		var at string
		if err := rows.Scan(&m.RunID, &m.Seq, &m.Source, &m.Destination, &m.Actor, &at); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		m.MovedAt = parseTimestamp(at)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Pruned lists the directories removed during a run.
func (j *Journal) Pruned(ctx context.Context, runID string) ([]string, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT path FROM pruned WHERE run_id = ? ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("list pruned: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan pruned: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetRun loads one run by id.
func (j *Journal) GetRun(ctx context.Context, runID string) (Run, error) {
	var r Run
	var phases, started string
	var finished sql.NullString
	err := j.db.QueryRowContext(ctx, `
		SELECT run_id, root, phases, dry_run, started_at, finished_at, status
		FROM runs WHERE run_id = ?
	`, runID).Scan(&r.ID, &r.Root, &phases, &r.DryRun, &started, &finished, &r.Status)
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	if phases != "" {
		r.Phases = strings.Split(phases, ",")
	}
	r.StartedAt = parseTimestamp(started)
	if finished.Valid {
		r.FinishedAt = parseTimestamp(finished.String)
	}
	return r, nil
}

func (j *Journal) timestamp() string {
	return j.now().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
