package root

import (
	"github.com/spf13/cobra"

	addcmd "github.com/schmitthub/brickyard/internal/cmd/add"
	getcmd "github.com/schmitthub/brickyard/internal/cmd/get"
	infocmd "github.com/schmitthub/brickyard/internal/cmd/info"
	initcmd "github.com/schmitthub/brickyard/internal/cmd/init"
	listcmd "github.com/schmitthub/brickyard/internal/cmd/list"
	makecmd "github.com/schmitthub/brickyard/internal/cmd/make"
	newcmd "github.com/schmitthub/brickyard/internal/cmd/new"
	removecmd "github.com/schmitthub/brickyard/internal/cmd/remove"
	versioncmd "github.com/schmitthub/brickyard/internal/cmd/version"
	watchcmd "github.com/schmitthub/brickyard/internal/cmd/watch"
	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/config"
	"github.com/schmitthub/brickyard/internal/logger"
)

// NewCmdRoot creates the root command for the brickyard CLI.
func NewCmdRoot(f *cmdutil.Factory, version, commit string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brickyard",
		Short: "Generate code from mason bricks in your terminal",
		Long: `Brickyard drives the mason CLI: it initializes workspaces, adds and removes
bricks, prompts for every variable a brick declares and runs "mason make"
with the answers.

Quick start:
  brickyard init          # Create mason.yaml in the workspace
  brickyard add hello     # Add a brick
  brickyard make ./lib    # Pick a brick, answer its prompts, generate
  brickyard watch         # Run "mason get" whenever mason.yaml is saved

The workspace is the --workspace directory, else the git worktree
containing the current directory, else the current directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, commit),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f)

			workspace := ""
			if f.Workspace != nil {
				if ws, err := f.Workspace(); err == nil {
					workspace = ws
				}
			}
			logger.SetContext(workspace, cmd.Name())

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", f.Debug).
				Msg("brickyard starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&f.Debug, "debug", "D", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&f.WorkspaceFlag, "workspace", "C", "", "Workspace root (default: git worktree root or current directory)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, commit))

	cmd.AddCommand(initcmd.NewCmdInit(f, nil))
	cmd.AddCommand(getcmd.NewCmdGet(f, nil))
	cmd.AddCommand(addcmd.NewCmdAdd(f, nil))
	cmd.AddCommand(removecmd.NewCmdRemove(f, nil))
	cmd.AddCommand(listcmd.NewCmdList(f, nil))
	cmd.AddCommand(infocmd.NewCmdInfo(f, nil))
	cmd.AddCommand(makecmd.NewCmdMake(f, nil))
	cmd.AddCommand(newcmd.NewCmdNew(f, nil))
	cmd.AddCommand(watchcmd.NewCmdWatch(f, nil))
	cmd.AddCommand(versioncmd.NewCmdVersion(f))

	return cmd
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(f *cmdutil.Factory) {
	if f.Config == nil {
		logger.Init(f.Debug)
		return
	}

	cfg, err := f.Config()
	if err != nil {
		// The command reports the settings error itself.
		logger.Init(f.Debug)
		logger.Debug().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	s := cfg.Settings().Logging
	logCfg := &logger.LoggingConfig{
		FileEnabled: s.FileEnabled,
		MaxSizeMB:   s.MaxSizeMB,
		MaxAgeDays:  s.MaxAgeDays,
		MaxBackups:  s.MaxBackups,
	}

	if err := logger.InitWithFile(f.Debug, config.LogsDir(), logCfg); err != nil {
		logger.Init(f.Debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
