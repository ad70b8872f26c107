// Package get provides the get command.
package get

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/mason"
)

// GetOptions holds options for the get command.
type GetOptions struct {
	IOStreams *iostreams.IOStreams
	Workspace func() (string, error)
	Mason     func() (*mason.Client, error)

	Dir string
}

// NewCmdGet creates the get command.
func NewCmdGet(f *cmdutil.Factory, runF func(context.Context, *GetOptions) error) *cobra.Command {
	opts := &GetOptions{
		IOStreams: f.IOStreams,
		Workspace: f.Workspace,
		Mason:     f.Mason,
	}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch the bricks listed in mason.yaml",
		Long: `Runs "mason get" in the workspace root, or in --dir, installing every
brick mason.yaml lists. "brickyard watch" runs this automatically whenever a
mason.yaml is saved.`,
		Example: `  # Fetch bricks for the workspace
  brickyard get

  # Fetch bricks for a nested package
  brickyard get --dir packages/app`,
		Args: cmdutil.NoArgs,
		Annotations: map[string]string{
			cmdutil.AnnotationMasonCommand: "get",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return getRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "Directory containing mason.yaml (default: workspace root)")

	return cmd
}

func getRun(ctx context.Context, opts *GetOptions) error {
	dir := opts.Dir
	if dir == "" {
		ws, err := opts.Workspace()
		if err != nil {
			return err
		}
		dir = ws
	} else {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		if !cmdutil.IsDir(abs) {
			return cmdutil.Preconditionf("%s is not a directory.", abs)
		}
		dir = abs
	}
	if !cmdutil.HasManifest(dir) {
		return cmdutil.Preconditionf("No mason.yaml was found in the current workspace.")
	}

	client, err := opts.Mason()
	if err != nil {
		return err
	}
	_, err = client.Run(ctx, "get", dir)
	return cmdutil.MasonError(ctx, err)
}
