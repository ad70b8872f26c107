// Package docs renders the brickyard command reference as Markdown, man
// pages and YAML. Hidden commands and the generated help command are
// skipped.
package docs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/schmitthub/brickyard/internal/cmdutil"
)

// walk calls fn for every visible command below cmd, children first, and
// then for cmd itself.
func walk(cmd *cobra.Command, fn func(*cobra.Command) error) error {
	for _, c := range visibleCommands(cmd) {
		if err := walk(c, fn); err != nil {
			return err
		}
	}
	return fn(cmd)
}

// writeTree renders every command of the tree into its own file in dir.
func writeTree(cmd *cobra.Command, dir string, filename func(*cobra.Command) string, render func(*cobra.Command, io.Writer) error) error {
	return walk(cmd, func(c *cobra.Command) error {
		path := filepath.Join(dir, filename(c))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file %s: %w", path, err)
		}
		if err := render(c, f); err != nil {
			f.Close()
			return fmt.Errorf("failed to render %s: %w", path, err)
		}
		return f.Close()
	})
}

// visibleCommands returns the non-hidden subcommands of cmd sorted by name.
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.Hidden || c.Name() == "help" {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func joinPath(cmd *cobra.Command, sep string) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", sep)
}

// masonCommand returns the "mason <sub>" line a command runs, if any.
func masonCommand(cmd *cobra.Command) string {
	if sub := cmd.Annotations[cmdutil.AnnotationMasonCommand]; sub != "" {
		return "mason " + sub
	}
	return ""
}

// flagDoc is one documented flag.
type flagDoc struct {
	Name      string
	Shorthand string
	Type      string
	Default   string
	Usage     string
}

// collectFlags lists the visible flags of fs by name. Zero defaults are
// dropped.
func collectFlags(fs *pflag.FlagSet) []flagDoc {
	var out []flagDoc
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		d := flagDoc{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Type:      f.Value.Type(),
			Default:   f.DefValue,
			Usage:     f.Usage,
		}
		switch d.Default {
		case "false", "0", "[]":
			d.Default = ""
		}
		out = append(out, d)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func prepare(cmd *cobra.Command) {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()
}
