package bricks

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/schmitthub/brickyard/internal/prompter"
)

// Prompter is the prompting surface the collector needs.
type Prompter interface {
	String(cfg prompter.PromptConfig) (string, error)
	Select(message string, options []string, defaultIdx int) (int, error)
	MultiSelect(message string, options, checked []string) ([]string, error)
}

// MissingDefaultError aborts collection when an unsupported variable has
// nothing to fall back on.
type MissingDefaultError struct {
	Name string
	Type string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("Could not find a default value for %s.", e.Name)
}

// Collector asks for a value for every variable of a brick and renders the
// answers as mason flags.
type Collector struct {
	Prompter Prompter
	// Notify receives informational messages, such as an unsupported type.
	Notify func(msg string)
}

// Collect prompts for vars in order and returns the flags joined by single
// spaces. Any cancellation or failure aborts the whole collection.
func (c *Collector) Collect(vars []Variable) (string, error) {
	flags := make([]string, 0, len(vars))
	for _, v := range vars {
		value, err := c.value(v)
		if err != nil {
			return "", err
		}
		flags = append(flags, FormatFlag(v.Name, value))
	}
	return strings.Join(flags, " "), nil
}

// FormatFlag renders one --key value pair. value must already be quoted.
func FormatFlag(key, value string) string {
	return "--" + key + " " + value
}

func (c *Collector) value(v Variable) (string, error) {
	switch v.Kind {
	case KindString:
		return c.text(v, nil)
	case KindNumber:
		return c.text(v, validateNumber)
	case KindBoolean:
		return c.boolean(v)
	case KindEnum:
		return c.enum(v)
	case KindArray:
		return c.array(v)
	case KindUnsupported:
		return c.unsupported(v)
	default:
		panic(fmt.Sprintf("bricks: unhandled kind %d", v.Kind))
	}
}

func (c *Collector) text(v Variable, validator func(string) error) (string, error) {
	answer, err := c.Prompter.String(prompter.PromptConfig{
		Message:     v.PromptText(),
		Default:     v.DefaultString(),
		Placeholder: v.DefaultString(),
		Validator:   validator,
	})
	if err != nil {
		return "", err
	}
	return Quote(answer), nil
}

func (c *Collector) boolean(v Variable) (string, error) {
	d := v.DefaultBool()
	options := []string{strconv.FormatBool(d), strconv.FormatBool(!d)}
	idx, err := c.Prompter.Select(v.PromptText(), options, 0)
	if err != nil {
		return "", err
	}
	return options[idx], nil
}

// EnumOptions puts the default first, followed by the remaining values in
// declaration order. Without a default the first value is used.
func EnumOptions(v Variable) []string {
	d := v.DefaultString()
	if d == "" && len(v.Values) > 0 {
		d = v.Values[0]
	}
	options := []string{d}
	for _, item := range v.Values {
		if item != d {
			options = append(options, item)
		}
	}
	return options
}

func (c *Collector) enum(v Variable) (string, error) {
	options := EnumOptions(v)
	idx, err := c.Prompter.Select(v.PromptText(), options, 0)
	if err != nil {
		return "", err
	}
	return Quote(options[idx]), nil
}

func (c *Collector) array(v Variable) (string, error) {
	picked, err := c.Prompter.MultiSelect(v.PromptText(), v.Values, v.Defaults)
	if err != nil {
		return "", err
	}
	return EncodeArray(picked)
}

func (c *Collector) unsupported(v Variable) (string, error) {
	if c.Notify != nil {
		c.Notify(fmt.Sprintf("%s type is not supported.", v.TypeLabel()))
	}
	if d := v.DefaultString(); d != "" {
		return Quote(d), nil
	}
	if len(v.Defaults) > 0 {
		return Quote(strings.Join(v.Defaults, ",")), nil
	}
	return "", &MissingDefaultError{Name: v.Name, Type: v.TypeLabel()}
}

func validateNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}

// Quote wraps s in double quotes when the argument tokenizer would
// otherwise split or reinterpret it. Empty values become "".
func Quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\"'\\#") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// EncodeArray renders a selection as a JSON array in single quotes, e.g.
// '["a","b"]'. Selections containing a single quote fall back to double
// quoting.
func EncodeArray(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	s := string(data)
	if strings.Contains(s, "'") {
		return Quote(s), nil
	}
	return "'" + s + "'", nil
}
