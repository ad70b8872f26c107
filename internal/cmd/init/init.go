// Package initcmd provides the init command.
package initcmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/logger"
	"github.com/schmitthub/brickyard/internal/mason"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	IOStreams *iostreams.IOStreams
	Workspace func() (string, error)
	Mason     func() (*mason.Client, error)
}

// NewCmdInit creates the init command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams: f.IOStreams,
		Workspace: f.Workspace,
		Mason:     f.Mason,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mason in the current workspace",
		Long: `Runs "mason init" in the workspace root, creating mason.yaml.

Fails without running anything when the workspace already has a mason.yaml.`,
		Example: `  # Initialize the workspace containing the current directory
  brickyard init

  # Initialize another directory
  brickyard init -C ./packages/app`,
		Args: cmdutil.NoArgs,
		Annotations: map[string]string{
			cmdutil.AnnotationMasonCommand: "init",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func initRun(ctx context.Context, opts *InitOptions) error {
	ws, err := opts.Workspace()
	if err != nil {
		return err
	}
	if cmdutil.HasManifest(ws) {
		return cmdutil.Preconditionf("A mason.yaml already exists in the current workspace.")
	}

	client, err := opts.Mason()
	if err != nil {
		return err
	}
	logger.Debug().Str("workspace", ws).Msg("initializing workspace")
	_, err = client.Run(ctx, "init", ws)
	return cmdutil.MasonError(ctx, err)
}
