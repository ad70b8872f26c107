// Package brickyard wires the factory and the command tree into the CLI
// entry point.
package brickyard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmd/factory"
	"github.com/schmitthub/brickyard/internal/cmd/root"
	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/logger"
	"github.com/schmitthub/brickyard/internal/signals"
)

// Build-time variables injected via ldflags
var (
	Version = "DEV"
	Commit  = ""
)

const (
	exitOk     = 0
	exitError  = 1
	exitUsage  = 2
	exitCancel = 130
)

// Main is the entry point for the brickyard CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	ctx, stop := signals.InterruptContext(context.Background())
	defer stop()

	f := factory.New(Version, Commit)
	rootCmd := root.NewCmdRoot(f, Version, Commit)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	return handleError(f.IOStreams, cmd, err)
}

// handleError prints err the way its type asks for and returns the exit code.
func handleError(ios *iostreams.IOStreams, cmd *cobra.Command, err error) int {
	if err == nil {
		return exitOk
	}

	var (
		flagErr *cmdutil.FlagError
		exitErr *cmdutil.ExitError
		preErr  *cmdutil.PreconditionError
	)
	switch {
	case cmdutil.IsUserCancel(err):
		return exitCancel
	case errors.Is(err, cmdutil.SilentError):
		return exitError
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &flagErr) || strings.HasPrefix(err.Error(), "unknown command "):
		fmt.Fprintln(ios.ErrOut, err)
		if cmd != nil && !strings.Contains(err.Error(), "--help") {
			fmt.Fprintf(ios.ErrOut, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
		return exitUsage
	case errors.As(err, &preErr):
		ios.PrintFailure("%s", preErr.Error())
		return exitError
	default:
		logger.Debug().Err(err).Msg("command failed")
		printError(ios.ErrOut, cmd, err)
		return exitError
	}
}

func printError(w io.Writer, cmd *cobra.Command, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
	if cmd != nil {
		fmt.Fprintf(w, "Run '%s --help' for more information.\n", cmd.CommandPath())
	}
}
