package docs

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
)

// ManHeader is the .TH metadata of every page.
type ManHeader struct {
	Section string
	Date    *time.Time
	Source  string
	Manual  string
}

// DefaultManHeader is used when GenManTree gets a nil header.
var DefaultManHeader = ManHeader{
	Section: "1",
	Source:  "Brickyard",
	Manual:  "Brickyard Manual",
}

// GenManTree writes one man page per command into dir, named like
// brickyard-make.1.
func GenManTree(cmd *cobra.Command, dir string, header *ManHeader) error {
	h := DefaultManHeader
	if header != nil {
		h = *header
	}
	if h.Section == "" {
		h.Section = "1"
	}
	return writeTree(cmd, dir,
		func(c *cobra.Command) string { return joinPath(c, "-") + "." + h.Section },
		func(c *cobra.Command, w io.Writer) error { return GenMan(c, &h, w) })
}

// GenMan renders the man page of a single command.
func GenMan(cmd *cobra.Command, header *ManHeader, w io.Writer) error {
	h := DefaultManHeader
	if header != nil {
		h = *header
	}
	if h.Section == "" {
		h.Section = "1"
	}
	_, err := w.Write(md2man.Render(manSource(cmd, h)))
	return err
}

func manSource(cmd *cobra.Command, h ManHeader) []byte {
	prepare(cmd)
	var buf bytes.Buffer

	date := ""
	if h.Date != nil {
		date = h.Date.Format("Jan 2006")
	}
	title := strings.ToUpper(joinPath(cmd, "-"))
	fmt.Fprintf(&buf, "%% %s(%s) %s | %s\n\n", title, h.Section, date, h.Manual)

	short := cmd.Short
	if short == "" {
		short = "manual page for " + cmd.CommandPath()
	}
	fmt.Fprintf(&buf, "# NAME\n%s \\- %s\n\n", cmd.CommandPath(), short)

	buf.WriteString("# SYNOPSIS\n")
	if cmd.Runnable() {
		buf.WriteString("**" + cmd.UseLine() + "**\n\n")
	} else {
		buf.WriteString("**" + cmd.CommandPath() + "** COMMAND\n\n")
	}

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n" + cmd.Long + "\n\n")
	}

	if line := masonCommand(cmd); line != "" {
		buf.WriteString("# MASON\nRuns **" + line + "**.\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	flags := append(collectFlags(cmd.NonInheritedFlags()), collectFlags(cmd.InheritedFlags())...)
	if len(flags) > 0 {
		buf.WriteString("# OPTIONS\n")
		for _, f := range flags {
			if f.Shorthand != "" {
				fmt.Fprintf(&buf, "**-%s**, ", f.Shorthand)
			}
			fmt.Fprintf(&buf, "**--%s**", f.Name)
			if f.Type != "bool" {
				fmt.Fprintf(&buf, " <%s>", f.Type)
			}
			buf.WriteString("\n: " + f.Usage)
			if f.Default != "" {
				fmt.Fprintf(&buf, " (default: %s)", f.Default)
			}
			buf.WriteString("\n\n")
		}
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n```\n" + cmd.Example + "\n```\n\n")
	}

	var related []string
	if cmd.HasParent() {
		related = append(related, joinPath(cmd.Parent(), "-"))
	}
	for _, c := range visibleCommands(cmd) {
		related = append(related, joinPath(c, "-"))
	}
	if len(related) > 0 {
		buf.WriteString("# SEE ALSO\n")
		for i, name := range related {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "**%s(%s)**", name, h.Section)
		}
		buf.WriteString("\n")
	}
	return buf.Bytes()
}
