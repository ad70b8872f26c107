// Package mason invokes the mason CLI: the installation probe, captured
// runs with progress and status reporting, and runs in a visible terminal.
package mason

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// DefaultBinary is the executable looked up on PATH.
const DefaultBinary = "mason"

// ExecutionError is returned when mason exits non-zero or cannot be started.
type ExecutionError struct {
	// Command is the full command line, e.g. "mason add hello".
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecutionError) Error() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return fmt.Sprintf("Command failed: %s\n%s", e.Command, msg)
	}
	return fmt.Sprintf("Command failed: %s: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Executor spawns the mason binary.
type Executor struct {
	binary string
}

// NewExecutor creates an Executor for binary, DefaultBinary when empty.
func NewExecutor(binary string) *Executor {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Executor{binary: binary}
}

// CommandLine renders the command as a user would type it.
func (e *Executor) CommandLine(args string) string {
	return CommandLine(e.binary, args)
}

// CommandLine joins binary and args with a single space.
func CommandLine(binary, args string) string {
	args = strings.TrimSpace(args)
	if args == "" {
		return binary
	}
	return binary + " " + args
}

// SplitArgs tokenizes an argument string with shell quoting rules, so
// `--name "a b"` is one argument. Nothing is expanded.
func SplitArgs(args string) ([]string, error) {
	argv, err := shlex.Split(args)
	if err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return argv, nil
}

// Run executes `<binary> <args>` in dir and returns stdout. args is split
// with SplitArgs. dir "" means the current directory.
func (e *Executor) Run(ctx context.Context, args, dir string) (string, error) {
	command := e.CommandLine(args)

	argv, err := SplitArgs(args)
	if err != nil {
		return "", &ExecutionError{Command: command, ExitCode: -1, Err: err}
	}

	cmd := exec.CommandContext(ctx, e.binary, argv...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return stdout.String(), &ExecutionError{
			Command:  command,
			ExitCode: code,
			Stderr:   stderr.String(),
			Err:      err,
		}
	}
	return stdout.String(), nil
}

// IsInstalled runs the binary with no arguments and reports whether it
// exited zero.
func (e *Executor) IsInstalled(ctx context.Context) bool {
	_, err := e.Run(ctx, "", "")
	return err == nil
}
