package factory

import (
	"os"
	"sync"

	"github.com/schmitthub/brickyard/internal/bricks"
	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/config"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/logger"
	"github.com/schmitthub/brickyard/internal/mason"
	"github.com/schmitthub/brickyard/internal/prompter"
	"github.com/schmitthub/brickyard/internal/term"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/brickyard/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.System()
	ios.Logger = logger.Global{}

	// Respect CI environment (disable prompts)
	if os.Getenv("CI") != "" {
		ios.SetNeverPrompt(true)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	f.Config = configFunc()
	f.Workspace = workspaceFunc(f)
	f.Prompter = prompterFunc(f)
	f.Mason = masonFunc(f)
	f.CacheDir = bricks.CacheDir

	return f
}

func configFunc() func() (config.Config, error) {
	var (
		once sync.Once
		cfg  config.Config
		err  error
	)
	return func() (config.Config, error) {
		once.Do(func() {
			cfg, err = config.NewConfig()
		})
		return cfg, err
	}
}

// workspaceFunc resolves the workspace root on first use so the
// --workspace flag has been parsed by then.
func workspaceFunc(f *cmdutil.Factory) func() (string, error) {
	var (
		once sync.Once
		root string
		err  error
	)
	return func() (string, error) {
		once.Do(func() {
			var cwd string
			cwd, err = os.Getwd()
			if err != nil {
				return
			}
			root, err = cmdutil.ResolveWorkspace(f.WorkspaceFlag, cwd)
		})
		return root, err
	}
}

func prompterFunc(f *cmdutil.Factory) func() *prompter.Prompter {
	var (
		once sync.Once
		p    *prompter.Prompter
	)
	return func() *prompter.Prompter {
		once.Do(func() {
			useTUI := true
			if cfg, err := f.Config(); err == nil {
				useTUI = cfg.Settings().Prompt.TUI
			}
			p = prompter.NewPrompter(f.IOStreams, prompter.WithTUI(useTUI))
		})
		return p
	}
}

func masonFunc(f *cmdutil.Factory) func() (*mason.Client, error) {
	var (
		once   sync.Once
		client *mason.Client
		err    error
	)
	return func() (*mason.Client, error) {
		once.Do(func() {
			var cfg config.Config
			cfg, err = f.Config()
			if err != nil {
				return
			}
			s := cfg.Settings()
			client = &mason.Client{
				IOStreams:     f.IOStreams,
				Runner:        mason.NewExecutor(s.Mason.Executable),
				Terminal:      term.NewManager(nil),
				Prompter:      f.Prompter(),
				OpenBrowser:   cmdutil.OpenBrowser,
				Binary:        s.Mason.Executable,
				InstallURL:    s.Mason.InstallURL,
				StatusTimeout: s.Status.Timeout,
			}
		})
		return client, err
	}
}
