package bricks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// BrickFileName is the per-template descriptor file.
const BrickFileName = "brick.yaml"

// ErrUnreadableBrick is returned when brick.yaml is missing or malformed.
var ErrUnreadableBrick = errors.New("Could not read brick.yaml")

// Brick is the subset of brick.yaml brickyard consumes.
type Brick struct {
	Name        string `validate:"required"`
	Description string
	Version     string
	// Vars keeps declaration order.
	Vars []Variable `validate:"dive"`
}

// descriptor is the raw shape of one vars entry.
type descriptor struct {
	Type        string   `mapstructure:"type"`
	Description string   `mapstructure:"description"`
	Prompt      string   `mapstructure:"prompt"`
	Default     any      `mapstructure:"default"`
	Defaults    []string `mapstructure:"defaults"`
	Values      []string `mapstructure:"values"`
}

var validate = validator.New()

// ReadBrick reads and parses <dir>/brick.yaml. Any failure wraps
// ErrUnreadableBrick.
func ReadBrick(dir string) (*Brick, error) {
	path := filepath.Join(dir, BrickFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableBrick, err)
	}
	b, err := ParseBrick(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableBrick, path, err)
	}
	return b, nil
}

// ParseBrick decodes brick.yaml content. Variables come back in the order
// they are declared in the document.
func ParseBrick(data []byte) (*Brick, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", root.Line)
	}

	b := &Brick{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var err error
		switch key.Value {
		case "name":
			err = val.Decode(&b.Name)
		case "description":
			err = val.Decode(&b.Description)
		case "version":
			err = val.Decode(&b.Version)
		case "vars":
			b.Vars, err = parseVars(val)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key.Value, err)
		}
	}

	if err := validate.Struct(b); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return b, nil
}

func parseVars(node *yaml.Node) ([]Variable, error) {
	switch node.Kind {
	case yaml.MappingNode:
		vars := make([]Variable, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := parseVariable(node.Content[i].Value, node.Content[i+1])
			if err != nil {
				return nil, err
			}
			vars = append(vars, v)
		}
		return vars, nil
	case yaml.SequenceNode:
		// Legacy form: a list of names, all strings.
		vars := make([]Variable, 0, len(node.Content))
		for _, item := range node.Content {
			vars = append(vars, Variable{Name: item.Value, Kind: KindString, Type: "string"})
		}
		return vars, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("line %d: vars must be a mapping", node.Line)
}

func parseVariable(name string, node *yaml.Node) (Variable, error) {
	raw := map[string]any{}
	if err := node.Decode(&raw); err != nil {
		return Variable{}, fmt.Errorf("%s: %w", name, err)
	}

	var d descriptor
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &d,
	})
	if err != nil {
		return Variable{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Variable{}, fmt.Errorf("%s: %w", name, err)
	}

	v := Variable{
		Name:        name,
		Kind:        ParseKind(d.Type),
		Type:        d.Type,
		Description: d.Description,
		Prompt:      d.Prompt,
		Default:     d.Default,
		Defaults:    d.Defaults,
		Values:      d.Values,
	}

	// Arrays may carry their pre-selection in a list-valued default.
	if list, ok := d.Default.([]any); ok {
		if len(v.Defaults) == 0 {
			for _, item := range list {
				v.Defaults = append(v.Defaults, fmt.Sprint(item))
			}
		}
		v.Default = nil
	}
	return v, nil
}
