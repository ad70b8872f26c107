// Package info provides the info command.
package info

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/logger"
	"github.com/schmitthub/brickyard/internal/mason"
)

// InfoOptions holds options for the info command.
type InfoOptions struct {
	IOStreams *iostreams.IOStreams
	Workspace func() (string, error)
	Mason     func() (*mason.Client, error)

	Brick string
}

// NewCmdInfo creates the info command.
func NewCmdInfo(f *cmdutil.Factory, runF func(context.Context, *InfoOptions) error) *cobra.Command {
	opts := &InfoOptions{
		IOStreams: f.IOStreams,
		Workspace: f.Workspace,
		Mason:     f.Mason,
	}

	cmd := &cobra.Command{
		Use:   "info BRICK",
		Short: "Show details about a brick",
		Long: `Runs "mason info BRICK --format=json" and prints the result as indented
JSON.`,
		Example: `  # Show details for the hello brick
  brickyard info hello`,
		Args: cmdutil.ExactArgs(1),
		Annotations: map[string]string{
			cmdutil.AnnotationMasonCommand: "info",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Brick = args[0]
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return infoRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func infoRun(ctx context.Context, opts *InfoOptions) error {
	ios := opts.IOStreams

	ws, err := opts.Workspace()
	if err != nil {
		return err
	}
	client, err := opts.Mason()
	if err != nil {
		return err
	}

	out, err := client.Run(ctx, "info "+opts.Brick+" --format=json", ws)
	if err != nil {
		return cmdutil.MasonError(ctx, err)
	}
	if err := cmdutil.WriteIndentedJSON(ios.Out, []byte(out)); err != nil {
		logger.Debug().Err(err).Msg("mason info output is not JSON")
		fmt.Fprint(ios.Out, out)
	}
	return nil
}
