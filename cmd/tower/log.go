package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tower/internal/games/stacker"
	"github.com/vovakirdan/tui-tower/internal/storage"
)

// newLogger builds the CLI logger.
// Without --log-file, logs go to fallback; nil discards them.
// The returned close func is always safe to call.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "tower",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the scores database and wires the stacker games to it.
// On failure the games keep their best score in memory and store is nil.
func openStore(logger *log.Logger) *storage.Store {
	stacker.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable, best score kept in memory", "path", flagDBPath, "error", err)
		stacker.SetBestStore(stacker.NewMemoryBestStore())
		return nil
	}

	stacker.SetBestStore(store)
	return store
}
