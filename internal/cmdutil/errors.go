package cmdutil

import (
	"errors"
	"fmt"
)

// ExitError carries a specific process exit status. Commands return it
// instead of calling os.Exit so deferred cleanup runs; Main exits with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// FlagError indicates bad flags or arguments. When Main() encounters this error
// type, it prints the error message followed by the command's usage string.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf creates a FlagError with a formatted message.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// FlagErrorWrap wraps an existing error as a FlagError.
func FlagErrorWrap(err error) error {
	return &FlagError{err: err}
}

// SilentError signals that the error has already been displayed to the user.
// Main() will exit non-zero but not print anything additional.
var SilentError = errors.New("SilentError")

// CancelError signals that the user dismissed a prompt. Main() exits 130
// without printing anything.
var CancelError = errors.New("CancelError")

// PreconditionError is a blocking, user-facing failure detected before any
// subprocess runs, e.g. a missing mason.yaml.
type PreconditionError struct {
	msg string
}

func (e *PreconditionError) Error() string { return e.msg }

// Preconditionf creates a PreconditionError with a formatted message.
func Preconditionf(format string, args ...any) error {
	return &PreconditionError{msg: fmt.Sprintf(format, args...)}
}

// IsUserCancel reports whether err means the user backed out.
func IsUserCancel(err error) bool {
	return errors.Is(err, CancelError)
}
