package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/componentdb/metanetx-assets/store"
)

// newLogger builds the console logger every subcommand shares.
// Verbose mode enables debug output.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// openStore opens (and, on first use, initializes) the SQLite
// database behind the --db flag.
func openStore(path string) (*store.Store, error) {
	if path == "" {
		return nil, fmt.Errorf("a database path is required (--db)")
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return s, nil
}
