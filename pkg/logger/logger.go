// Package logger builds the diagnostic logger shared by the commands.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a [log.Logger] writing to w, which defaults to [os.Stderr].
// Debug enables debug output with timestamps and caller reporting; otherwise
// only warnings and errors are shown.
func New(w io.Writer, debug bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{
		Level:           log.WarnLevel,
		ReportTimestamp: debug,
		ReportCaller:    debug,
	}
	if debug {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(w, opts)
}

// Install makes l the default logger.
func Install(l *log.Logger) {
	log.SetDefault(l)
}
