// Package remove provides the remove command.
package remove

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/mason"
	"github.com/schmitthub/brickyard/internal/prompter"
)

// RemoveOptions holds options for the remove command.
type RemoveOptions struct {
	IOStreams *iostreams.IOStreams
	Workspace func() (string, error)
	Mason     func() (*mason.Client, error)
	Prompter  func() *prompter.Prompter

	Brick  string
	Global bool
}

// NewCmdRemove creates the remove command.
func NewCmdRemove(f *cmdutil.Factory, runF func(context.Context, *RemoveOptions) error) *cobra.Command {
	opts := &RemoveOptions{
		IOStreams: f.IOStreams,
		Workspace: f.Workspace,
		Mason:     f.Mason,
		Prompter:  f.Prompter,
	}

	cmd := &cobra.Command{
		Use:     "remove [BRICK]",
		Aliases: []string{"rm"},
		Short:   "Remove a brick from the workspace or globally",
		Long: `Runs "mason remove" for BRICK.

Without BRICK the name is prompted for. Local removals require a mason.yaml
in the workspace.`,
		Example: `  # Remove a brick from the workspace
  brickyard remove hello

  # Remove a global brick
  brickyard rm -g hello`,
		Args: cmdutil.RequiresMaxArgs(1),
		Annotations: map[string]string{
			cmdutil.AnnotationMasonCommand: "remove",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Brick = args[0]
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return removeRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Global, "global", "g", false, "Remove the brick from the global cache")

	return cmd
}

func removeRun(ctx context.Context, opts *RemoveOptions) error {
	ws, err := opts.Workspace()
	if err != nil {
		return err
	}
	if !opts.Global && !cmdutil.HasManifest(ws) {
		return cmdutil.Preconditionf("No mason.yaml was found in the current workspace.")
	}

	name := opts.Brick
	if name == "" {
		name, err = opts.Prompter().String(prompter.PromptConfig{
			Message:     "Enter the brick name.",
			Placeholder: "hello",
			Required:    true,
		})
		if err != nil {
			return cmdutil.PromptError(err, "brick name required when not running interactively: pass BRICK")
		}
	}

	client, err := opts.Mason()
	if err != nil {
		return err
	}
	args := "remove " + name
	if opts.Global {
		args = "remove -g " + name
	}
	_, err = client.Run(ctx, args, ws)
	return cmdutil.MasonError(ctx, err)
}
