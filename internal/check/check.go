// Package check provides the --check diagnostics and the pre-run validation
// (CheckRoot) of the dataset directory and journal location.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/emomerge/internal/config"
)

// Sentinel errors returned by CheckRoot and CheckJournalDir.
var (
	ErrRootNotFound       = errors.New("directory not found")
	ErrRootNotDir         = errors.New("path is not a directory")
	ErrRootNotWritable    = errors.New("directory is not writable")
	ErrJournalNotWritable = errors.New("journal directory is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck logs the state of the dataset directory and the journal
// location. Returns false if anything a run needs is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	ok := true

	if err := CheckRoot(cfg.Directory); err != nil {
		log.Error("Directory %s: %v", cfg.Directory, err)
		ok = false
	} else {
		log.Success("Directory %s is writable", cfg.Directory)
	}

	if cfg.JournalPath == "" {
		log.Info("Journal: off")
	} else if err := CheckJournalDir(cfg.JournalPath); err != nil {
		log.Error("Journal %s: %v", cfg.JournalPath, err)
		ok = false
	} else {
		log.Success("Journal: %s", cfg.JournalPath)
	}

	if cfg.LogFile != "" {
		log.Info("Log file: %s", cfg.LogFile)
	}
	return ok
}

// CheckRoot verifies that root exists, is a directory, and accepts new
// entries. The probe file is removed again before returning.
func CheckRoot(root string) error {
	fi, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrRootNotFound
		}
		return err
	}
	if !fi.IsDir() {
		return ErrRootNotDir
	}
	if err := probeWritable(root); err != nil {
		return fmt.Errorf("%w: %v", ErrRootNotWritable, err)
	}
	return nil
}

// CheckJournalDir verifies that the journal's parent directory exists (or
// can be created) and is writable.
func CheckJournalDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrJournalNotWritable, err)
	}
	if err := probeWritable(dir); err != nil {
		return fmt.Errorf("%w: %v", ErrJournalNotWritable, err)
	}
	return nil
}

// probeWritable creates and removes a temp file in dir.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".emomerge-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
