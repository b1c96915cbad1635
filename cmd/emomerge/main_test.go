package main

import (
	"os"
	"path/filepath"
	"testing"
)

// runWith calls run with argv as the command line and returns its exit code.
func runWith(t *testing.T, argv ...string) int {
	t.Helper()
	saved := os.Args
	t.Cleanup(func() { os.Args = saved })
	os.Args = append([]string{"emomerge", "--no-color"}, argv...)
	return run()
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRun_ExitCodes(t *testing.T) {
	good := t.TempDir()
	touch(t, filepath.Join(good, "asvp", "actor_01"), "03-01-09-01-01-01-01-13-02.wav")

	bad := t.TempDir()
	touch(t, filepath.Join(bad, "x"), "03-01-05-01-02-24.wav")

	file := touch(t, t.TempDir(), "plain.txt")
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name string
		argv []string
		want int
	}{
		{"help", []string{"--help"}, 0},
		{"version", []string{"--version"}, 0},
		{"missing directory argument", nil, 2},
		{"unknown flag", []string{"--bogus", good}, 2},
		{"no phase, missing directory", []string{missing}, 0},
		{"no phase, regular file", []string{file}, 0},
		{"merge, missing directory", []string{"--merge", missing}, 1},
		{"merge, regular file", []string{"--merge", file}, 1},
		{"merge, malformed name", []string{"--merge", bad}, 1},
		{"check, malformed name", []string{"--check", bad}, 1},
		{"check, missing directory", []string{"--check", missing}, 1},
		{"dry-run merge", []string{"--merge", "--dry-run", good}, 0},
		{"check", []string{"--check", good}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runWith(t, tt.argv...); got != tt.want {
				t.Errorf("exit code = %d, want %d", got, tt.want)
			}
		})
	}

	// None of the cases above may have moved the good file.
	if !exists(filepath.Join(good, "asvp", "actor_01", "03-01-09-01-01-01-01-13-02.wav")) {
		t.Error("good tree modified by a dry run or check")
	}
}

func TestRun_NoPhaseTouchesNothing(t *testing.T) {
	root := t.TempDir()
	src := touch(t, filepath.Join(root, "asvp"), "03-01-09-01-01-01-01-13-02.wav")

	if got := runWith(t, root); got != 0 {
		t.Fatalf("exit code = %d, want 0", got)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "asvp" || !exists(src) {
		t.Errorf("root changed with no phase selected: %v", entries)
	}
}

func TestRun_MergeWithJournal(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "asvp", "actor_01"), "03-01-09-01-01-01-01-13-02.wav")
	journalPath := filepath.Join(t.TempDir(), "state", "journal.db")

	if got := runWith(t, "--merge", "--journal", journalPath, root); got != 0 {
		t.Fatalf("exit code = %d, want 0", got)
	}
	if !exists(filepath.Join(root, "Actor_25", "03-01-03-01-1001-01-25-02-01-00.wav")) {
		t.Error("file not moved into Actor_25")
	}
	if exists(filepath.Join(root, "asvp")) {
		t.Error("empty source directory not pruned")
	}
	if !exists(journalPath) {
		t.Error("journal not written")
	}
}
