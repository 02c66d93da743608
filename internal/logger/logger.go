// Package logger provides the charmbracelet/log setup shared by every
// subsystem so suggestion traces from different packages carry a
// consistent prefix and level.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a subsystem logger with a timestamp, for long-running
// components (dictionary loading, the server loop).
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// Quiet creates a subsystem logger without a timestamp, for per-query
// components where the timestamp would just be noise (the CLI's
// suggestion output).
func Quiet(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a logger with full control over caller
// reporting, timestamp and formatter, for callers that need something
// other than New/Quiet's defaults.
func NewWithConfig(prefix string, level log.Level, caller, showTimestamp bool, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       formatter,
	})
}
