// Package term runs commands in a visible, interactive terminal: on a
// pseudo-terminal proxied to the user's terminal, or with inherited stdio
// when no terminal is attached.
package term

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/muesli/cancelreader"

	"github.com/schmitthub/brickyard/internal/logger"
	"github.com/schmitthub/brickyard/internal/signals"
)

// outputDrainTimeout bounds how long we keep copying pty output after the
// command has exited.
const outputDrainTimeout = 250 * time.Millisecond

// ErrNoCommand is returned for a Request without an executable.
var ErrNoCommand = errors.New("no command to run")

// Request describes one command to run in a terminal.
type Request struct {
	// Name identifies the terminal, e.g. "mason".
	Name string
	// Dir is the command's working directory.
	Dir string
	// Argv is the executable followed by its arguments. Elements are passed
	// through verbatim; no shell sees them.
	Argv []string

	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

func (r Request) streams() (in, out, errOut *os.File) {
	in, out, errOut = r.Stdin, r.Stdout, r.Stderr
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return in, out, errOut
}

func (r Request) command(ctx context.Context) (*exec.Cmd, error) {
	if len(r.Argv) == 0 || r.Argv[0] == "" {
		return nil, ErrNoCommand
	}
	cmd := exec.CommandContext(ctx, r.Argv[0], r.Argv[1:]...)
	cmd.Dir = r.Dir
	cmd.Env = os.Environ()
	return cmd, nil
}

// Start runs req on a pseudo-terminal when stdin is a terminal and the
// platform supports one, otherwise with inherited stdio.
func Start(ctx context.Context, req Request) error {
	in, _, _ := req.streams()
	if IsTerminalFile(in) {
		err := RunPTY(ctx, req)
		if !errors.Is(err, pty.ErrUnsupported) {
			return err
		}
		logger.Debug().Msg("pty unsupported on this platform, falling back to inherited stdio")
	}
	return RunInherited(ctx, req)
}

// RunPTY starts req.Argv on a pseudo-terminal in req.Dir and proxies the
// local terminal until the command exits. Input forwarding stops when RunPTY
// returns, so later readers of stdin see every keystroke.
func RunPTY(ctx context.Context, req Request) error {
	in, out, _ := req.streams()

	cmd, err := req.command(context.Background())
	if err != nil {
		return err
	}
	stdin, err := cancelreader.NewReader(in)
	if err != nil {
		return err
	}
	defer stdin.Close()

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer ptmx.Close()

	raw := NewRawModeFile(in)
	if raw.IsTerminal() {
		window := signals.WatchWindow(func() (signals.Size, error) {
			width, height, err := raw.GetSize()
			return signals.Size{Rows: uint16(height), Cols: uint16(width)}, err
		}, func(s signals.Size) error {
			return pty.Setsize(ptmx, &pty.Winsize{Rows: s.Rows, Cols: s.Cols})
		})
		defer window.Close()

		if err := raw.Enable(); err != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			return err
		}
		defer func() {
			if err := raw.Restore(); err != nil {
				logger.Debug().Err(err).Msg("failed to restore terminal")
			}
		}()
	}

	inDone := make(chan struct{})
	go func() {
		defer close(inDone)
		_, _ = io.Copy(ptmx, stdin)
	}()
	defer func() {
		if stdin.Cancel() {
			<-inDone
		}
	}()

	outDone := make(chan struct{})
	go func() {
		defer close(outDone)
		_, _ = io.Copy(out, ptmx)
	}()

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-waitErr
		return ctx.Err()
	case err := <-waitErr:
		select {
		case <-outDone:
		case <-time.After(outputDrainTimeout):
		}
		return err
	}
}

// RunInherited runs req.Argv with the caller's stdio attached.
func RunInherited(ctx context.Context, req Request) error {
	in, out, errOut := req.streams()

	cmd, err := req.command(ctx)
	if err != nil {
		return err
	}
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = errOut
	return cmd.Run()
}
