// Package add provides the add command.
package add

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/mason"
	"github.com/schmitthub/brickyard/internal/prompter"
)

// AddOptions holds options for the add command.
type AddOptions struct {
	IOStreams *iostreams.IOStreams
	Workspace func() (string, error)
	Mason     func() (*mason.Client, error)
	Prompter  func() *prompter.Prompter

	Brick  string
	Global bool
}

// NewCmdAdd creates the add command.
func NewCmdAdd(f *cmdutil.Factory, runF func(context.Context, *AddOptions) error) *cobra.Command {
	opts := &AddOptions{
		IOStreams: f.IOStreams,
		Workspace: f.Workspace,
		Mason:     f.Mason,
		Prompter:  f.Prompter,
	}

	cmd := &cobra.Command{
		Use:   "add [BRICK]",
		Short: "Add a brick to the workspace or globally",
		Long: `Runs "mason add" for BRICK.

Without BRICK the name is prompted for. The answer is passed to mason as
typed, so extra mason arguments such as "--path ./bricks/widget" may follow
the name. Local adds require a mason.yaml in the workspace.`,
		Example: `  # Add a brick to the workspace
  brickyard add hello

  # Add a brick globally
  brickyard add -g hello

  # Prompt for the brick name
  brickyard add`,
		Args: cmdutil.RequiresMaxArgs(1),
		Annotations: map[string]string{
			cmdutil.AnnotationMasonCommand: "add",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Brick = args[0]
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return addRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Global, "global", "g", false, "Add the brick to the global cache")

	return cmd
}

func addRun(ctx context.Context, opts *AddOptions) error {
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
	args := "add " + name
	if opts.Global {
		args = "add -g " + name
	}
	_, err = client.Run(ctx, args, ws)
	return cmdutil.MasonError(ctx, err)
}
