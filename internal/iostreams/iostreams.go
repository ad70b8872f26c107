// Package iostreams wraps the process's standard streams with terminal
// detection, colors, a spinner and the status line used by every command.
package iostreams

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// IOStreams provides access to standard input/output/error streams.
// It follows the GitHub CLI pattern for testable I/O.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Logger receives diagnostic events from the command layer.
	Logger Logger

	// TTY caches: -1 = unchecked, 0 = false, 1 = true
	isInputTTY  int
	isOutputTTY int
	isStderrTTY int

	// colorEnabled: -1 = auto (detect from TTY), 0 = disabled, 1 = enabled
	colorEnabled int

	progressIndicatorEnabled bool
	spinnerDisabled          bool
	activeSpinner            *spinner
	spinnerMu                sync.Mutex

	// transientStatus erases status lines after their TTL instead of
	// leaving them in the scrollback.
	transientStatus bool
	status          *statusLine
	statusMu        sync.Mutex

	neverPrompt bool
}

// System creates an IOStreams connected to the process's standard streams.
func System() *IOStreams {
	ios := &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		isInputTTY:   -1,
		isOutputTTY:  -1,
		isStderrTTY:  -1,
		colorEnabled: -1,
	}

	if ios.IsStderrTTY() {
		ios.progressIndicatorEnabled = true
	}
	if os.Getenv("BRICKYARD_SPINNER_DISABLED") != "" {
		ios.spinnerDisabled = true
	}
	if os.Getenv("NO_COLOR") != "" {
		ios.colorEnabled = 0
	}

	return ios
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsInputTTY returns true if stdin is a terminal.
func (s *IOStreams) IsInputTTY() bool {
	if s.isInputTTY == -1 {
		s.isInputTTY = boolToInt(isTerminal(s.In))
	}
	return s.isInputTTY == 1
}

// IsOutputTTY returns true if stdout is a terminal.
func (s *IOStreams) IsOutputTTY() bool {
	if s.isOutputTTY == -1 {
		s.isOutputTTY = boolToInt(isTerminal(s.Out))
	}
	return s.isOutputTTY == 1
}

// IsStderrTTY returns true if stderr is a terminal.
func (s *IOStreams) IsStderrTTY() bool {
	if s.isStderrTTY == -1 {
		s.isStderrTTY = boolToInt(isTerminal(s.ErrOut))
	}
	return s.isStderrTTY == 1
}

// SetStdinTTY overrides stdin terminal detection.
func (s *IOStreams) SetStdinTTY(v bool) { s.isInputTTY = boolToInt(v) }

// SetStdoutTTY overrides stdout terminal detection.
func (s *IOStreams) SetStdoutTTY(v bool) { s.isOutputTTY = boolToInt(v) }

// SetStderrTTY overrides stderr terminal detection.
func (s *IOStreams) SetStderrTTY(v bool) { s.isStderrTTY = boolToInt(v) }

// IsInteractive returns true if both stdin and stdout are terminals.
func (s *IOStreams) IsInteractive() bool {
	return s.IsInputTTY() && s.IsOutputTTY()
}

// CanPrompt returns whether interactive prompts should be shown.
func (s *IOStreams) CanPrompt() bool {
	if s.neverPrompt {
		return false
	}
	return s.IsInteractive()
}

// SetNeverPrompt disables all interactive prompts.
func (s *IOStreams) SetNeverPrompt(never bool) {
	s.neverPrompt = never
}

// ColorEnabled returns whether color output is enabled.
func (s *IOStreams) ColorEnabled() bool {
	if s.colorEnabled == -1 {
		return s.IsStderrTTY()
	}
	return s.colorEnabled == 1
}

// SetColorEnabled explicitly enables or disables color output.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = boolToInt(enabled)
}

// ColorScheme returns a ColorScheme configured for this IOStreams.
func (s *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(s.ColorEnabled())
}

// SetProgressIndicatorEnabled toggles the spinner.
func (s *IOStreams) SetProgressIndicatorEnabled(enabled bool) {
	s.progressIndicatorEnabled = enabled
}

// SetSpinnerDisabled selects the textual fallback instead of the animation.
func (s *IOStreams) SetSpinnerDisabled(v bool) {
	s.spinnerDisabled = v
}

// SetTransientStatus makes status lines disappear after their TTL when
// stderr is a terminal. Long-running commands such as watch enable it.
func (s *IOStreams) SetTransientStatus(v bool) {
	s.transientStatus = v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
