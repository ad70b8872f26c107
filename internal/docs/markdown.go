package docs

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// MarkdownOptions customizes Markdown output. The zero value writes plain
// files linked by filename.
type MarkdownOptions struct {
	// FrontMatter returns text written at the top of the file, e.g. Jekyll
	// front matter.
	FrontMatter func(filename string) string
	// Link turns a command path into a link target.
	Link func(cmdPath string) string
	// MDX wraps bare <placeholders> in prose with backticks so MDX sites do
	// not parse them as tags.
	MDX bool
}

var placeholderRe = regexp.MustCompile(`<(\w[\w-]*)>`)

// MarkdownFilename maps "brickyard make" to "brickyard_make.md".
func MarkdownFilename(cmdPath string) string {
	return strings.ReplaceAll(cmdPath, " ", "_") + ".md"
}

// GenMarkdownTree writes one Markdown file per command into dir.
func GenMarkdownTree(cmd *cobra.Command, dir string, opts MarkdownOptions) error {
	return writeTree(cmd, dir,
		func(c *cobra.Command) string { return MarkdownFilename(c.CommandPath()) },
		func(c *cobra.Command, w io.Writer) error {
			if opts.FrontMatter != nil {
				if _, err := io.WriteString(w, opts.FrontMatter(MarkdownFilename(c.CommandPath()))); err != nil {
					return err
				}
			}
			return GenMarkdown(c, w, opts)
		})
}

// GenMarkdown writes the reference for a single command.
func GenMarkdown(cmd *cobra.Command, w io.Writer, opts MarkdownOptions) error {
	prepare(cmd)
	link := opts.Link
	if link == nil {
		link = MarkdownFilename
	}
	prose := func(s string) string {
		if opts.MDX {
			return EscapeMDXProse(s)
		}
		return s
	}

	var buf bytes.Buffer
	buf.WriteString("## " + cmd.CommandPath() + "\n\n")
	if cmd.Short != "" {
		buf.WriteString(prose(cmd.Short) + "\n\n")
	}

	if cmd.Runnable() || len(visibleCommands(cmd)) > 0 {
		buf.WriteString("### Synopsis\n\n")
		if cmd.Long != "" {
			buf.WriteString(prose(cmd.Long) + "\n\n")
		}
		if cmd.Runnable() {
			buf.WriteString("```\n" + cmd.UseLine() + "\n```\n\n")
		}
	}

	if line := masonCommand(cmd); line != "" {
		buf.WriteString("### Runs\n\n`" + line + "`\n\n")
	}

	if len(cmd.Aliases) > 0 {
		names := append([]string{cmd.Name()}, cmd.Aliases...)
		buf.WriteString("### Aliases\n\n`" + strings.Join(names, "`, `") + "`\n\n")
	}

	if cmd.Example != "" {
		buf.WriteString("### Examples\n\n```\n" + cmd.Example + "\n```\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("### Commands\n\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "* [%s](%s) - %s\n", c.CommandPath(), link(c.CommandPath()), prose(c.Short))
		}
		buf.WriteString("\n")
	}

	if fs := cmd.NonInheritedFlags(); fs.HasAvailableFlags() {
		buf.WriteString("### Options\n\n```\n" + fs.FlagUsages() + "```\n\n")
	}
	if fs := cmd.InheritedFlags(); fs.HasAvailableFlags() {
		buf.WriteString("### Options inherited from parent commands\n\n```\n" + fs.FlagUsages() + "```\n\n")
	}

	if cmd.HasParent() {
		p := cmd.Parent()
		buf.WriteString("### See also\n\n")
		fmt.Fprintf(&buf, "* [%s](%s) - %s\n", p.CommandPath(), link(p.CommandPath()), prose(p.Short))
	}

	_, err := buf.WriteTo(w)
	return err
}

// EscapeMDXProse wraps bare <word> placeholders in backticks.
func EscapeMDXProse(s string) string {
	return placeholderRe.ReplaceAllString(s, "`<$1>`")
}
