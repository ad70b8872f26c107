// gen-docs writes the brickyard command reference as Markdown, man pages
// or YAML without running the CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/schmitthub/brickyard/internal/cmd/root"
	"github.com/schmitthub/brickyard/internal/cmdutil"
	"github.com/schmitthub/brickyard/internal/docs"
)

func main() {
	if err := run(os.Args, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type format struct {
	name string
	dir  string
	gen  func(cmd *cobra.Command, dir string) error
}

func run(args []string, stderr io.Writer) error {
	flags := pflag.NewFlagSet("gen-docs", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		docPath  string
		markdown bool
		manPage  bool
		yamlRef  bool
		website  bool
	)
	flags.StringVar(&docPath, "doc-path", "", "Output directory for generated docs (required)")
	flags.BoolVar(&markdown, "markdown", false, "Generate Markdown documentation")
	flags.BoolVar(&manPage, "man-page", false, "Generate man pages")
	flags.BoolVar(&yamlRef, "yaml", false, "Generate YAML reference")
	flags.BoolVar(&website, "website", false, "Add Jekyll front matter and MDX-safe prose (requires --markdown)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage of %s:\n\n%s", filepath.Base(args[0]), flags.FlagUsages())
	}

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if docPath == "" {
		return errors.New("--doc-path is required")
	}
	if !markdown && !manPage && !yamlRef {
		return errors.New("at least one format must be specified (--markdown, --man-page, --yaml)")
	}
	if website && !markdown {
		return errors.New("--website requires --markdown")
	}

	mdOpts := docs.MarkdownOptions{}
	if website {
		mdOpts = docs.MarkdownOptions{
			FrontMatter: jekyllFrontMatter,
			Link:        docs.MarkdownFilename,
			MDX:         true,
		}
	}

	var formats []format
	if markdown {
		formats = append(formats, format{"Markdown documentation", "markdown", func(cmd *cobra.Command, dir string) error {
			return docs.GenMarkdownTree(cmd, dir, mdOpts)
		}})
	}
	if manPage {
		formats = append(formats, format{"man pages", "man", func(cmd *cobra.Command, dir string) error {
			return docs.GenManTree(cmd, dir, nil)
		}})
	}
	if yamlRef {
		formats = append(formats, format{"YAML reference", "yaml", docs.GenYamlTree})
	}

	rootCmd := root.NewCmdRoot(&cmdutil.Factory{}, "", "")
	rootCmd.DisableAutoGenTag = true

	for _, ft := range formats {
		dir := filepath.Join(docPath, ft.dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", ft.dir, err)
		}
		if err := ft.gen(rootCmd, dir); err != nil {
			return fmt.Errorf("failed to generate %s: %w", ft.name, err)
		}
		fmt.Fprintf(stderr, "Generated %s in %s\n", ft.name, dir)
	}
	return nil
}

// jekyllFrontMatter maps "brickyard_make.md" to a page titled
// "brickyard make" served at /cli/brickyard/make/.
func jekyllFrontMatter(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), ".md")
	return fmt.Sprintf("---\nlayout: manual\npermalink: /cli/%s/\ntitle: %s\n---\n\n",
		strings.ReplaceAll(name, "_", "/"),
		strings.ReplaceAll(name, "_", " "))
}
