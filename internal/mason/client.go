package mason

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/logger"
	"github.com/schmitthub/brickyard/internal/term"
)

// DefaultInstallURL documents how to install the mason CLI.
const DefaultInstallURL = "https://github.com/felangel/mason/tree/master/packages/mason_cli#installation"

// ErrNotInstalled is returned when the probe finds no mason binary. The
// warning has already been shown.
var ErrNotInstalled = errors.New("mason is not installed")

// Runner executes captured mason commands.
type Runner interface {
	Run(ctx context.Context, args, dir string) (string, error)
	IsInstalled(ctx context.Context) bool
}

// Terminal runs a command in the visible terminal.
type Terminal interface {
	Run(ctx context.Context, req term.Request) error
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(message string, defaultYes bool) (bool, error)
}

// Client wraps every mason invocation with the installation check and
// user feedback. Failures are displayed before they are returned.
type Client struct {
	IOStreams *iostreams.IOStreams
	Runner    Runner
	Terminal  Terminal
	Prompter  Confirmer
	// OpenBrowser opens the installation instructions.
	OpenBrowser func(url string) error

	Binary        string
	InstallURL    string
	StatusTimeout time.Duration

	warnOnce sync.Once
}

func (c *Client) binary() string {
	if c.Binary == "" {
		return DefaultBinary
	}
	return c.Binary
}

func (c *Client) installURL() string {
	if c.InstallURL == "" {
		return DefaultInstallURL
	}
	return c.InstallURL
}

// Run executes `mason <args>` in dir with a spinner. Success leaves a
// "✓ mason <args>" status; failure prints the error text.
func (c *Client) Run(ctx context.Context, args, dir string) (string, error) {
	if err := c.ensureInstalled(ctx); err != nil {
		return "", err
	}

	label := CommandLine(c.binary(), args)
	log := logger.WithField("invocation", uuid.NewString())
	log.Debug().Str("args", args).Str("dir", dir).Msg("running mason")

	start := time.Now()
	var out string
	err := c.IOStreams.RunWithSpinner(label, func() error {
		var err error
		out, err = c.Runner.Run(ctx, args, dir)
		return err
	})
	event := log.Debug().Dur("duration", time.Since(start))

	if err != nil {
		var execErr *ExecutionError
		if errors.As(err, &execErr) {
			event = event.Int("exit_code", execErr.ExitCode)
		}
		event.Err(err).Msg("mason failed")
		c.IOStreams.PrintFailure("%s", err.Error())
		return "", err
	}

	event.Int("exit_code", 0).Msg("mason finished")
	c.IOStreams.PrintStatus(c.StatusTimeout, "✓ "+label)
	return out, nil
}

// RunInTerminal runs `mason <args>` in the terminal, replacing any terminal
// still open from an earlier run, and waits for it to finish. args is split
// exactly as Run splits it.
func (c *Client) RunInTerminal(ctx context.Context, args, dir string) error {
	if err := c.ensureInstalled(ctx); err != nil {
		return err
	}

	line := CommandLine(c.binary(), args)
	argv, err := SplitArgs(args)
	if err != nil {
		execErr := &ExecutionError{Command: line, ExitCode: -1, Err: err}
		c.IOStreams.PrintFailure("%s", execErr.Error())
		return execErr
	}

	log := logger.WithField("invocation", uuid.NewString())
	log.Debug().Str("args", args).Str("dir", dir).Msg("running mason in terminal")

	c.IOStreams.ClearStatus()
	start := time.Now()
	err = c.Terminal.Run(ctx, term.Request{
		Name:   c.binary(),
		Dir:    dir,
		Argv:   append([]string{c.binary()}, argv...),
		Stdin:  fileOr(c.IOStreams.In, os.Stdin),
		Stdout: fileOr(c.IOStreams.Out, os.Stdout),
		Stderr: fileOr(c.IOStreams.ErrOut, os.Stderr),
	})
	event := log.Debug().Dur("duration", time.Since(start))
	if err == nil {
		event.Int("exit_code", 0).Msg("terminal finished")
		return nil
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	execErr := &ExecutionError{Command: line, ExitCode: code, Err: err}
	event.Int("exit_code", code).Err(err).Msg("terminal failed")
	if ctx.Err() == nil {
		c.IOStreams.PrintFailure("%s", execErr.Error())
	}
	return execErr
}

// IsInstalled reports whether the mason binary can be run.
func (c *Client) IsInstalled(ctx context.Context) bool {
	return c.Runner.IsInstalled(ctx)
}

func (c *Client) ensureInstalled(ctx context.Context) error {
	if c.Runner.IsInstalled(ctx) {
		return nil
	}
	logger.Debug().Str("binary", c.binary()).Msg("mason installation not found")
	c.warnOnce.Do(c.showMissingInstallationWarning)
	return ErrNotInstalled
}

func (c *Client) showMissingInstallationWarning() {
	ios := c.IOStreams
	url := c.installURL()

	c.IOStreams.PrintWarning("No mason installation was found.")
	fmt.Fprintf(ios.ErrOut, "  %s\n", ios.ColorScheme().Muted(url))

	if c.Prompter == nil || c.OpenBrowser == nil || !ios.CanPrompt() {
		return
	}
	open, err := c.Prompter.Confirm("Open installation instructions?", false)
	if err != nil || !open {
		return
	}
	if err := c.OpenBrowser(url); err != nil {
		logger.Debug().Err(err).Msg("failed to open browser")
		ios.PrintWarning("Could not open a browser: %v", err)
	}
}

func fileOr(v any, fallback *os.File) *os.File {
	if f, ok := v.(*os.File); ok {
		return f
	}
	return fallback
}
