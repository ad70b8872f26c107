package mason

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/brickyard/internal/iostreams/iostreamstest"
	"github.com/schmitthub/brickyard/internal/term"
)

type fakeRunner struct {
	installed bool
	out       string
	err       error

	probes int
	calls  []string
	dirs   []string
}

func (r *fakeRunner) Run(_ context.Context, args, dir string) (string, error) {
	r.calls = append(r.calls, args)
	r.dirs = append(r.dirs, dir)
	return r.out, r.err
}

func (r *fakeRunner) IsInstalled(context.Context) bool {
	r.probes++
	return r.installed
}

type fakeTerminal struct {
	err  error
	reqs []term.Request
}

func (f *fakeTerminal) Run(_ context.Context, req term.Request) error {
	f.reqs = append(f.reqs, req)
	return f.err
}

type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (f *fakeConfirmer) Confirm(message string, _ bool) (bool, error) {
	f.asked = append(f.asked, message)
	return f.answer, nil
}

func newTestClient(runner *fakeRunner) (*Client, *iostreamstest.TestIOStreams) {
	ios := iostreamstest.New()
	return &Client{
		IOStreams:     ios.IOStreams,
		Runner:        runner,
		Terminal:      &fakeTerminal{},
		StatusTimeout: 3 * time.Second,
	}, ios
}

func TestClient_Run(t *testing.T) {
	runner := &fakeRunner{installed: true, out: "Bricks:\n  hello  /x\n"}
	c, ios := newTestClient(runner)

	out, err := c.Run(context.Background(), "list", "/work/app")
	require.NoError(t, err)
	assert.Equal(t, "Bricks:\n  hello  /x\n", out)
	assert.Equal(t, []string{"list"}, runner.calls)
	assert.Equal(t, []string{"/work/app"}, runner.dirs)
	assert.Equal(t, "✓ mason list\n", ios.ErrBuf.String())
}

func TestClient_Run_Failure(t *testing.T) {
	runner := &fakeRunner{
		installed: true,
		err:       &ExecutionError{Command: "mason add nope", ExitCode: 64, Stderr: "brick not found"},
	}
	c, ios := newTestClient(runner)

	_, err := c.Run(context.Background(), "add nope", "/work/app")
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 64, execErr.ExitCode)
	assert.Equal(t, "[error] Command failed: mason add nope\nbrick not found\n", ios.ErrBuf.String())
	assert.NotContains(t, ios.ErrBuf.String(), "✓")
}

func TestClient_Run_SpinnerLabel(t *testing.T) {
	runner := &fakeRunner{installed: true}
	c, ios := newTestClient(runner)
	ios.SetProgressEnabled(true)
	ios.SetSpinnerDisabled(true)

	_, err := c.Run(context.Background(), "add -g hello", "/work")
	require.NoError(t, err)
	assert.Equal(t, "mason add -g hello...\n✓ mason add -g hello\n", ios.ErrBuf.String())
}

func TestClient_NotInstalled(t *testing.T) {
	runner := &fakeRunner{installed: false}
	c, ios := newTestClient(runner)

	_, err := c.Run(context.Background(), "get", "/work")
	require.ErrorIs(t, err, ErrNotInstalled)
	err = c.RunInTerminal(context.Background(), "make hello", "/work")
	require.ErrorIs(t, err, ErrNotInstalled)

	assert.Empty(t, runner.calls, "nothing beyond the probe is spawned")
	assert.Empty(t, c.Terminal.(*fakeTerminal).reqs)
	assert.Equal(t, 2, runner.probes, "installation is re-checked every time")
	assert.Equal(t,
		"[warn] No mason installation was found.\n  "+DefaultInstallURL+"\n",
		ios.ErrBuf.String(),
		"the warning is shown once")
}

func TestClient_NotInstalled_OpensInstructions(t *testing.T) {
	tests := []struct {
		name       string
		answer     bool
		wantOpened []string
	}{
		{name: "accepted", answer: true, wantOpened: []string{"https://example.com/install"}},
		{name: "declined", answer: false, wantOpened: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ios := newTestClient(&fakeRunner{})
			ios.SetInteractive(true)
			confirmer := &fakeConfirmer{answer: tt.answer}
			var opened []string
			c.Prompter = confirmer
			c.InstallURL = "https://example.com/install"
			c.OpenBrowser = func(url string) error {
				opened = append(opened, url)
				return nil
			}

			_, err := c.Run(context.Background(), "init", "/work")
			require.ErrorIs(t, err, ErrNotInstalled)
			assert.Equal(t, []string{"Open installation instructions?"}, confirmer.asked)
			assert.Equal(t, tt.wantOpened, opened)
		})
	}
}

func TestClient_NotInstalled_NoPromptWhenNonInteractive(t *testing.T) {
	c, _ := newTestClient(&fakeRunner{})
	confirmer := &fakeConfirmer{answer: true}
	c.Prompter = confirmer
	c.OpenBrowser = func(string) error { t.Fatal("browser opened"); return nil }

	_, err := c.Run(context.Background(), "init", "/work")
	require.ErrorIs(t, err, ErrNotInstalled)
	assert.Empty(t, confirmer.asked)
}

func TestClient_RunInTerminal(t *testing.T) {
	c, ios := newTestClient(&fakeRunner{installed: true})
	tm := c.Terminal.(*fakeTerminal)

	args := `make hello --name "Dash Rendar" --output-dir=/work/lib --on-conflict=skip`
	require.NoError(t, c.RunInTerminal(context.Background(), args, "/work"))

	require.Len(t, tm.reqs, 1)
	assert.Equal(t, "mason", tm.reqs[0].Name)
	assert.Equal(t, "/work", tm.reqs[0].Dir)
	assert.Equal(t, []string{"mason", "make", "hello", "--name", "Dash Rendar", "--output-dir=/work/lib", "--on-conflict=skip"}, tm.reqs[0].Argv)
	assert.Empty(t, ios.ErrBuf.String())
}

func TestClient_RunInTerminal_BadQuoting(t *testing.T) {
	c, ios := newTestClient(&fakeRunner{installed: true})
	tm := c.Terminal.(*fakeTerminal)

	err := c.RunInTerminal(context.Background(), `make hello --name "open`, "/work")
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Empty(t, tm.reqs)
	assert.Contains(t, ios.ErrBuf.String(), "invalid arguments")
}

// Captured and terminal runs of the same argument string must hand mason
// the same argv, whatever shell metacharacters the values carry.
func TestClient_TerminalAndCapturedArgvMatch(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	script := filepath.Join(dir, "mason")
	record := filepath.Join(dir, "argv")
	body := "#!/bin/sh\nfor a in \"$@\"; do printf '%s\\n' \"$a\"; done > \"$ARGV_OUT\"\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	t.Setenv("ARGV_OUT", record)

	args := `make hello --name "x;touch${IFS}PWNED" --greeting "$HOME" --cmd "a & b | c" ` +
		`--quote "it's \"quoted\"" --platforms '["android","web"]' --output-dir="/work/my lib" --on-conflict=skip`
	want, err := SplitArgs(args)
	require.NoError(t, err)

	readArgv := func() []string {
		content, err := os.ReadFile(record)
		require.NoError(t, err)
		return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	}

	ios := iostreamstest.New()
	c := &Client{
		IOStreams: ios.IOStreams,
		Runner:    NewExecutor(script),
		Terminal:  term.NewManager(term.RunInherited),
		Binary:    script,
	}

	_, err = c.Run(context.Background(), args, dir)
	require.NoError(t, err)
	captured := readArgv()

	require.NoError(t, c.RunInTerminal(context.Background(), args, dir))
	terminal := readArgv()

	assert.Equal(t, want, captured)
	assert.Equal(t, captured, terminal)
	assert.NoFileExists(t, filepath.Join(dir, "PWNED"))
}

func TestClient_RunInTerminal_Failure(t *testing.T) {
	c, ios := newTestClient(&fakeRunner{installed: true})
	c.Binary = "sh"
	exitErr := exec.Command("sh", "-c", "exit 2").Run()
	c.Terminal = &fakeTerminal{err: exitErr}

	err := c.RunInTerminal(context.Background(), "make hello", "/work")
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "sh make hello", execErr.Command)
	if _, ok := exitErr.(*exec.ExitError); ok {
		assert.Equal(t, 2, execErr.ExitCode)
	}
	assert.Contains(t, ios.ErrBuf.String(), "[error] Command failed: sh make hello")
}

func TestClient_RunInTerminal_CancelledIsQuiet(t *testing.T) {
	c, ios := newTestClient(&fakeRunner{installed: true})
	c.Terminal = &fakeTerminal{err: context.Canceled}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.RunInTerminal(ctx, "make hello", "/work")
	require.Error(t, err)
	assert.Empty(t, ios.ErrBuf.String())
}
