package term

import (
	"os"

	"golang.org/x/term"
)

// RawMode manages putting a terminal into raw mode and back.
type RawMode struct {
	fd       int
	oldState *term.State
	isRaw    bool
}

// NewRawMode creates a RawMode manager for the given file descriptor.
func NewRawMode(fd int) *RawMode {
	return &RawMode{fd: fd}
}

// NewRawModeFile creates a RawMode manager for f.
func NewRawModeFile(f *os.File) *RawMode {
	return NewRawMode(int(f.Fd()))
}

// Enable puts the terminal into raw mode. Calling it twice is a no-op.
func (r *RawMode) Enable() error {
	if r.isRaw {
		return nil
	}

	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return err
	}

	r.oldState = oldState
	r.isRaw = true
	return nil
}

// Restore returns the terminal to the state saved by Enable.
func (r *RawMode) Restore() error {
	if !r.isRaw || r.oldState == nil {
		return nil
	}

	err := term.Restore(r.fd, r.oldState)
	if err == nil {
		r.isRaw = false
	}
	return err
}

// IsRaw returns true if the terminal is currently in raw mode.
func (r *RawMode) IsRaw() bool {
	return r.isRaw
}

// IsTerminal checks if the file descriptor is a terminal.
func (r *RawMode) IsTerminal() bool {
	return term.IsTerminal(r.fd)
}

// GetSize returns the current terminal size.
func (r *RawMode) GetSize() (width, height int, err error) {
	return term.GetSize(r.fd)
}

// IsTerminalFile reports whether f is attached to a terminal.
func IsTerminalFile(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
