// Package loggertest provides a zerolog-backed iostreams.Logger for tests.
package loggertest

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
)

// TestLogger records JSON log lines in memory.
type TestLogger struct {
	logger zerolog.Logger
	buf    *bytes.Buffer
}

// New creates a test logger that captures all output, debug included.
func New() *TestLogger {
	buf := &bytes.Buffer{}
	return &TestLogger{
		logger: zerolog.New(buf).Level(zerolog.DebugLevel),
		buf:    buf,
	}
}

// NewNop creates a test logger that discards all output.
func NewNop() *TestLogger {
	return &TestLogger{
		logger: zerolog.Nop(),
		buf:    &bytes.Buffer{},
	}
}

// Debug returns a debug-level zerolog.Event.
func (tl *TestLogger) Debug() *zerolog.Event { return tl.logger.Debug() }

// Info returns an info-level zerolog.Event.
func (tl *TestLogger) Info() *zerolog.Event { return tl.logger.Info() }

// Warn returns a warn-level zerolog.Event.
func (tl *TestLogger) Warn() *zerolog.Event { return tl.logger.Warn() }

// Error returns an error-level zerolog.Event.
func (tl *TestLogger) Error() *zerolog.Event { return tl.logger.Error() }

// Output returns captured log output as a string.
func (tl *TestLogger) Output() string { return tl.buf.String() }

// Reset clears captured output.
func (tl *TestLogger) Reset() { tl.buf.Reset() }

// Lines returns captured output split into one entry per log record.
func (tl *TestLogger) Lines() []string {
	out := strings.TrimRight(tl.buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
