// Package logging builds the levelled loggers used by the floodcross commands.
package logging

import (
	"io"
	"strings"

	"github.com/gologme/log"
)

// Levels lists the supported log levels from least to most verbose.
var Levels = [...]string{"error", "warn", "info", "debug", "trace"}

// New returns a logger writing to w with the given level enabled.
func New(w io.Writer, level string) *log.Logger {
	logger := log.New(w, "", log.Flags())
	SetLevel(logger, level)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger { return log.New(io.Discard, "", 0) }

// SetLevel enables every level up to and including level. Unknown levels fall
// back to info.
func SetLevel(logger *log.Logger, level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	known := false
	for _, l := range Levels {
		if l == level {
			known = true
			break
		}
	}
	if !known {
		logger.EnableLevel("info")
		logger.Infoln("Unknown log level", level, "- using info")
		level = "info"
	}
	for _, l := range Levels {
		logger.EnableLevel(l)
		if l == level {
			break
		}
	}
}
