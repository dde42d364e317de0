package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the watch-mode logger. Timestamps are left out; the dev
// server output around it already has them.
func newLogger(w io.Writer, verbose, quiet bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case quiet:
		level = log.ErrorLevel
	case verbose:
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          "themegen",
		Level:           level,
		ReportTimestamp: false,
	})
}
