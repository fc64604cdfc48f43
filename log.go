package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the app logger with timestamp formatting. Verbose runs
// drop the level to debug.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
