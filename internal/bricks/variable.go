package bricks

import (
	"fmt"
	"strconv"
)

// Kind is the declared type of a brick variable.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindEnum
	KindArray
	KindUnsupported
)

// ParseKind maps a brick.yaml type tag to a Kind. Unknown tags are
// KindUnsupported.
func ParseKind(tag string) Kind {
	switch tag {
	case "string":
		return KindString
	case "number":
		return KindNumber
	case "boolean":
		return KindBoolean
	case "enum":
		return KindEnum
	case "array":
		return KindArray
	default:
		return KindUnsupported
	}
}

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	default:
		return "unsupported"
	}
}

// Variable is one entry of a brick's vars mapping.
type Variable struct {
	Name        string
	Kind        Kind
	Type        string // declared tag, as written
	Description string
	Prompt      string
	Default     any
	Defaults    []string
	Values      []string
}

// DefaultString returns the declared default as text, or "" when absent.
func (v Variable) DefaultString() string {
	if v.Default == nil {
		return ""
	}
	return fmt.Sprint(v.Default)
}

// DefaultBool interprets the declared default as a boolean. Absent or
// unparsable defaults are false.
func (v Variable) DefaultBool() bool {
	switch d := v.Default.(type) {
	case bool:
		return d
	case string:
		b, _ := strconv.ParseBool(d)
		return b
	default:
		return false
	}
}

// PromptText returns the text shown when asking for the variable.
func (v Variable) PromptText() string {
	if v.Prompt != "" {
		return v.Prompt
	}
	return v.Name
}

// TypeLabel is the declared type for messages, "undefined" when missing.
func (v Variable) TypeLabel() string {
	if v.Type == "" {
		return "undefined"
	}
	return v.Type
}
