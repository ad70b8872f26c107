// Package version provides the version command.
package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/brickyard/internal/cmdutil"
)

// NewCmdVersion creates the "version" subcommand.
func NewCmdVersion(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of brickyard",
		Args:  cmdutil.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(f.IOStreams.Out, cmd.Root().Annotations["versionInfo"])
		},
	}

	return cmd
}

// Format returns the version string for display.
func Format(version, commit string) string {
	version = strings.TrimPrefix(version, "v")
	if version == "" {
		version = "DEV"
	}

	var commitStr string
	if commit != "" {
		commitStr = fmt.Sprintf(" (%s)", commit)
	}

	return fmt.Sprintf("brickyard version %s%s\n", version, commitStr)
}
