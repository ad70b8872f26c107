package docs

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// CommandDoc is the YAML reference of one command.
type CommandDoc struct {
	Name             string       `yaml:"name"`
	Synopsis         string       `yaml:"synopsis,omitempty"`
	Description      string       `yaml:"description,omitempty"`
	Usage            string       `yaml:"usage,omitempty"`
	Mason            string       `yaml:"mason,omitempty"`
	Aliases          []string     `yaml:"aliases,omitempty"`
	Options          []OptionDoc  `yaml:"options,omitempty"`
	InheritedOptions []OptionDoc  `yaml:"inherited_options,omitempty"`
	Commands         []CommandDoc `yaml:"commands,omitempty"`
	Examples         string       `yaml:"examples,omitempty"`
	SeeAlso          []string     `yaml:"see_also,omitempty"`
}

// OptionDoc is the YAML reference of one flag.
type OptionDoc struct {
	Name         string `yaml:"name"`
	Shorthand    string `yaml:"shorthand,omitempty"`
	DefaultValue string `yaml:"default_value,omitempty"`
	Usage        string `yaml:"usage"`
	Type         string `yaml:"type,omitempty"`
}

// GenYamlTree writes one YAML file per command into dir.
func GenYamlTree(cmd *cobra.Command, dir string) error {
	return writeTree(cmd, dir,
		func(c *cobra.Command) string { return joinPath(c, "_") + ".yaml" },
		GenYaml)
}

// GenYaml writes the YAML reference of a single command.
func GenYaml(cmd *cobra.Command, w io.Writer) error {
	prepare(cmd)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewCommandDoc(cmd)); err != nil {
		return err
	}
	return enc.Close()
}

// NewCommandDoc builds the reference of cmd. Subcommands carry only their
// name and synopsis.
func NewCommandDoc(cmd *cobra.Command) CommandDoc {
	doc := CommandDoc{
		Name:             cmd.CommandPath(),
		Synopsis:         cmd.Short,
		Description:      cmd.Long,
		Mason:            masonCommand(cmd),
		Aliases:          cmd.Aliases,
		Options:          optionDocs(collectFlags(cmd.NonInheritedFlags())),
		InheritedOptions: optionDocs(collectFlags(cmd.InheritedFlags())),
		Examples:         cmd.Example,
	}
	if cmd.Runnable() {
		doc.Usage = cmd.UseLine()
	}
	if cmd.HasParent() {
		doc.SeeAlso = append(doc.SeeAlso, cmd.Parent().CommandPath())
	}
	for _, c := range visibleCommands(cmd) {
		doc.Commands = append(doc.Commands, CommandDoc{Name: c.Name(), Synopsis: c.Short})
		doc.SeeAlso = append(doc.SeeAlso, c.CommandPath())
	}
	return doc
}

func optionDocs(flags []flagDoc) []OptionDoc {
	var out []OptionDoc
	for _, f := range flags {
		out = append(out, OptionDoc{
			Name:         f.Name,
			Shorthand:    f.Shorthand,
			DefaultValue: f.Default,
			Usage:        f.Usage,
			Type:         f.Type,
		})
	}
	return out
}
