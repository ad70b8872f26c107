// Package list provides the list command.
package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/mason"
)

// ListOptions holds options for the list command.
type ListOptions struct {
	IOStreams *iostreams.IOStreams
	Workspace func() (string, error)
	Mason     func() (*mason.Client, error)

	Global bool
	JSON   bool
}

// NewCmdList creates the list command.
func NewCmdList(f *cmdutil.Factory, runF func(context.Context, *ListOptions) error) *cobra.Command {
	opts := &ListOptions{
		IOStreams: f.IOStreams,
		Workspace: f.Workspace,
		Mason:     f.Mason,
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List installed bricks",
		Long: `Runs "mason list" and prints the installed brick names, one per line.

Use --global to list bricks in the global cache and --json for a JSON array.`,
		Example: `  # List workspace bricks
  brickyard list

  # List global bricks as JSON
  brickyard ls -g --json`,
		Args: cmdutil.NoArgs,
		Annotations: map[string]string{
			cmdutil.AnnotationMasonCommand: "list",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return listRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Global, "global", "g", false, "List bricks in the global cache")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as a JSON array")

	return cmd
}

func listRun(ctx context.Context, opts *ListOptions) error {
	ios := opts.IOStreams

	ws, err := opts.Workspace()
	if err != nil {
		return err
	}
	client, err := opts.Mason()
	if err != nil {
		return err
	}

	args := "list"
	if opts.Global {
		args = "list -g"
	}
	out, err := client.Run(ctx, args, ws)
	if err != nil {
		return cmdutil.MasonError(ctx, err)
	}

	names, err := mason.ParseList(out)
	if err != nil && !errors.Is(err, mason.ErrNoBricks) {
		return err
	}
	if names == nil {
		names = []string{}
	}

	if opts.JSON {
		return cmdutil.WriteJSON(ios.Out, names)
	}
	if len(names) == 0 {
		if opts.Global {
			return cmdutil.Preconditionf("No global bricks found.")
		}
		return cmdutil.Preconditionf("No bricks found.")
	}
	for _, name := range names {
		fmt.Fprintln(ios.Out, name)
	}
	return nil
}
