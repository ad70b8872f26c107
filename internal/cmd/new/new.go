// Package newcmd provides the new command, which scaffolds a brick.
package newcmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/mason"
	"github.com/schmitthub/brickyard/internal/prompter"
)

var hookChoices = []string{"no", "yes"}

// NewOptions holds options for the new command.
type NewOptions struct {
	IOStreams *iostreams.IOStreams
	Mason     func() (*mason.Client, error)
	Prompter  func() *prompter.Prompter

	Dir      string
	Name     string
	Hooks    bool
	HooksSet bool
}

// NewCmdNew creates the new command.
func NewCmdNew(f *cmdutil.Factory, runF func(context.Context, *NewOptions) error) *cobra.Command {
	opts := &NewOptions{
		IOStreams: f.IOStreams,
		Mason:     f.Mason,
		Prompter:  f.Prompter,
	}

	cmd := &cobra.Command{
		Use:   "new [DIR]",
		Short: "Create a new brick",
		Long: `Runs "mason new" in DIR to scaffold a brick.

The brick name and whether to generate hooks are prompted for unless given
with --name and --hooks. Without DIR the directory is prompted for.`,
		Example: `  # Create a brick in ./bricks, answering the prompts
  brickyard new ./bricks

  # Create a brick with hooks without prompting
  brickyard new ./bricks --name my_brick --hooks`,
		Args: cmdutil.RequiresMaxArgs(1),
		Annotations: map[string]string{
			cmdutil.AnnotationMasonCommand: "new",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Dir = args[0]
			}
			opts.HooksSet = cmd.Flags().Changed("hooks")
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return newRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Name of the new brick")
	cmd.Flags().BoolVar(&opts.Hooks, "hooks", false, "Generate hooks as part of the brick")

	return cmd
}

func newRun(ctx context.Context, opts *NewOptions) error {
	dir, err := cmdutil.TargetDirectory(opts.IOStreams, opts.Prompter, opts.Dir)
	if err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		name, err = opts.Prompter().String(prompter.PromptConfig{
			Message:     "Enter the brick name.",
			Placeholder: "my_brick",
			Required:    true,
		})
		if err != nil {
			return cmdutil.PromptError(err, "brick name required when not running interactively: pass --name")
		}
	}

	hooks := opts.Hooks
	if !opts.HooksSet {
		idx, err := opts.Prompter().Select("Do you want to generate hooks as part of the brick?", hookChoices, 0)
		if err != nil {
			return cmdutil.PromptError(err, "pass --hooks or --hooks=false")
		}
		hooks = hookChoices[idx] == "yes"
	}

	client, err := opts.Mason()
	if err != nil {
		return err
	}
	args := "new " + name
	if hooks {
		args += " --hooks"
	}
	_, err = client.Run(ctx, args, dir)
	return cmdutil.MasonError(ctx, err)
}

