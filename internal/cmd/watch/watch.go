// Package watch provides the watch command, which refreshes bricks whenever
// a mason.yaml is saved.
package watch

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/config"
	"github.com/schmitthub/brickyard/internal/git"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/logger"
	"github.com/schmitthub/brickyard/internal/mason"
	"github.com/schmitthub/brickyard/internal/watch"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	IOStreams *iostreams.IOStreams
	Config    func() (config.Config, error)
	Workspace func() (string, error)
	Mason     func() (*mason.Client, error)
	LocksDir  func() string
}

// NewCmdWatch creates the watch command.
func NewCmdWatch(f *cmdutil.Factory, runF func(context.Context, *WatchOptions) error) *cobra.Command {
	opts := &WatchOptions{
		IOStreams: f.IOStreams,
		Config:    f.Config,
		Workspace: f.Workspace,
		Mason:     f.Mason,
		LocksDir:  config.LocksDir,
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run mason get whenever a mason.yaml is saved",
		Long: `Watches the workspace tree and runs "mason get" in the containing
directory each time a file named mason.yaml is written or created.

Directories listed in watch.ignore and, inside a git repository, gitignored
paths are skipped. Only one watcher may run per workspace. Press Ctrl+C to
stop.`,
		Example: `  # Watch the current workspace
  brickyard watch

  # Watch another workspace
  brickyard watch -C ~/src/app`,
		Args: cmdutil.NoArgs,
		Annotations: map[string]string{
			cmdutil.AnnotationMasonCommand: "get",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return watchRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func watchRun(ctx context.Context, opts *WatchOptions) error {
	ios := opts.IOStreams

	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	ws, err := opts.Workspace()
	if err != nil {
		return err
	}
	client, err := opts.Mason()
	if err != nil {
		return err
	}

	lock, err := watch.AcquireLock(opts.LocksDir(), ws)
	if errors.Is(err, watch.ErrAlreadyWatching) {
		return cmdutil.Preconditionf("Another watcher is already running for %s.", ws)
	}
	if err != nil {
		return err
	}
	defer lock.Release()

	settings := cfg.Settings().Watch
	w, err := watch.New(watch.Options{
		Root:     ws,
		Debounce: settings.Debounce,
		Ignore:   settings.Ignore,
		Skip:     gitignoreMatcher(ws),
		OnSave: func(ctx context.Context, dir string) error {
			_, err := client.Run(ctx, "get", dir)
			return err
		},
	})
	if err != nil {
		return err
	}

	ios.SetTransientStatus(true)
	ios.PrintInfo("Watching %s for mason.yaml changes (%d directories). Press Ctrl+C to stop.", ws, len(w.WatchedDirs()))
	return w.Run(ctx)
}

// gitignoreMatcher returns the workspace's gitignore rules, or nil outside a
// repository.
func gitignoreMatcher(ws string) func(path string, isDir bool) bool {
	repo, err := git.Open(ws)
	if err != nil {
		return nil
	}
	match, err := repo.IgnoreMatcher()
	if err != nil {
		logger.Debug().Err(err).Msg("gitignore rules unavailable")
		return nil
	}
	return match
}
