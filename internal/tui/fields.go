package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/brickyard/internal/iostreams"
)

// ---------------------------------------------------------------------------
// SelectField: arrow-key single selection
// ---------------------------------------------------------------------------

// SelectField is a BubbleTea model for picking one option.
type SelectField struct {
	Prompt    string
	Options   []string
	cursor    int
	confirmed bool
	cancelled bool
}

// NewSelectField creates a SelectField. defaultIdx is clamped to the options.
func NewSelectField(prompt string, options []string, defaultIdx int) SelectField {
	if defaultIdx < 0 || defaultIdx >= len(options) {
		defaultIdx = 0
	}
	return SelectField{Prompt: prompt, Options: options, cursor: defaultIdx}
}

func (f SelectField) Init() tea.Cmd { return nil }

// Update moves the cursor with wraparound. Enter confirms, esc cancels.
func (f SelectField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(f.Options) == 0 {
		return f, nil
	}
	switch {
	case IsEnter(keyMsg):
		f.confirmed = true
		return f, tea.Quit
	case IsCancel(keyMsg):
		f.cancelled = true
		return f, tea.Quit
	case IsUp(keyMsg):
		f.cursor = (f.cursor - 1 + len(f.Options)) % len(f.Options)
	case IsDown(keyMsg):
		f.cursor = (f.cursor + 1) % len(f.Options)
	}
	return f, nil
}

func (f SelectField) View() string {
	var b strings.Builder
	writePrompt(&b, f.Prompt)
	for i, opt := range f.Options {
		if i == f.cursor {
			b.WriteString(iostreams.CursorStyle.Render(">"))
			b.WriteString(iostreams.ListItemSelectedStyle.Render(opt))
		} else {
			b.WriteString(" ")
			b.WriteString(iostreams.ListItemStyle.Render(opt))
		}
		b.WriteString("\n")
	}
	writeHelp(&b, "↑/↓ move", "enter select", "esc cancel")
	return b.String()
}

// SelectedIndex returns the cursor position.
func (f SelectField) SelectedIndex() int { return f.cursor }

// Value returns the option under the cursor.
func (f SelectField) Value() string {
	if len(f.Options) == 0 {
		return ""
	}
	return f.Options[f.cursor]
}

// IsConfirmed reports whether enter was pressed.
func (f SelectField) IsConfirmed() bool { return f.confirmed }

// IsCancelled reports whether the prompt was dismissed.
func (f SelectField) IsCancelled() bool { return f.cancelled }

// ---------------------------------------------------------------------------
// MultiSelectField: checkbox list
// ---------------------------------------------------------------------------

// MultiSelectField is a BubbleTea model for picking any number of options.
type MultiSelectField struct {
	Prompt    string
	Options   []string
	checked   []bool
	cursor    int
	confirmed bool
	cancelled bool
}

// NewMultiSelectField creates a MultiSelectField with the given options
// pre-checked.
func NewMultiSelectField(prompt string, options []string, checked []string) MultiSelectField {
	f := MultiSelectField{
		Prompt:  prompt,
		Options: options,
		checked: make([]bool, len(options)),
	}
	for i, opt := range options {
		for _, c := range checked {
			if opt == c {
				f.checked[i] = true
				break
			}
		}
	}
	return f
}

func (f MultiSelectField) Init() tea.Cmd { return nil }

// Update moves the cursor, toggles with space, confirms with enter.
func (f MultiSelectField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}
	switch {
	case IsEnter(keyMsg):
		f.confirmed = true
		return f, tea.Quit
	case IsCancel(keyMsg):
		f.cancelled = true
		return f, tea.Quit
	}
	if len(f.Options) == 0 {
		return f, nil
	}
	switch {
	case IsUp(keyMsg):
		f.cursor = (f.cursor - 1 + len(f.Options)) % len(f.Options)
	case IsDown(keyMsg):
		f.cursor = (f.cursor + 1) % len(f.Options)
	case IsToggle(keyMsg):
		f.checked = append([]bool(nil), f.checked...)
		f.checked[f.cursor] = !f.checked[f.cursor]
	}
	return f, nil
}

func (f MultiSelectField) View() string {
	var b strings.Builder
	writePrompt(&b, f.Prompt)
	for i, opt := range f.Options {
		if i == f.cursor {
			b.WriteString(iostreams.CursorStyle.Render(">"))
		} else {
			b.WriteString(" ")
		}
		box := "[ ]"
		if f.checked[i] {
			box = iostreams.CheckedStyle.Render("[x]")
		}
		b.WriteString(" ")
		b.WriteString(box)
		b.WriteString(" ")
		b.WriteString(opt)
		b.WriteString("\n")
	}
	writeHelp(&b, "↑/↓ move", "space toggle", "enter confirm", "esc cancel")
	return b.String()
}

// Values returns the checked options in declaration order.
func (f MultiSelectField) Values() []string {
	var out []string
	for i, opt := range f.Options {
		if f.checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// IsConfirmed reports whether enter was pressed.
func (f MultiSelectField) IsConfirmed() bool { return f.confirmed }

// IsCancelled reports whether the prompt was dismissed.
func (f MultiSelectField) IsCancelled() bool { return f.cancelled }

// ---------------------------------------------------------------------------
// TextField: text input wrapping bubbles/textinput
// ---------------------------------------------------------------------------

// TextField is a BubbleTea model for free text input.
type TextField struct {
	Prompt    string
	input     textinput.Model
	validator func(string) error
	confirmed bool
	cancelled bool
	errMsg    string
}

// TextFieldOption is a functional option for configuring a TextField.
type TextFieldOption func(*TextField)

// WithPlaceholder sets the placeholder text shown when the input is empty.
func WithPlaceholder(s string) TextFieldOption {
	return func(f *TextField) {
		f.input.Placeholder = s
	}
}

// WithValidator sets a validation function called on Enter.
func WithValidator(fn func(string) error) TextFieldOption {
	return func(f *TextField) {
		f.validator = fn
	}
}

// NewTextField creates a focused TextField.
func NewTextField(prompt string, opts ...TextFieldOption) TextField {
	ti := textinput.New()
	ti.Focus()

	f := TextField{Prompt: prompt, input: ti}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func (f TextField) Init() tea.Cmd {
	return textinput.Blink
}

// Update validates and confirms on enter; other keys go to the text input.
func (f TextField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case IsEnter(keyMsg):
			f.errMsg = ""
			if f.validator != nil {
				if err := f.validator(f.input.Value()); err != nil {
					f.errMsg = err.Error()
					return f, nil
				}
			}
			f.confirmed = true
			return f, tea.Quit
		case IsCancel(keyMsg):
			f.cancelled = true
			return f, tea.Quit
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f TextField) View() string {
	var b strings.Builder
	writePrompt(&b, f.Prompt)
	b.WriteString("  ")
	b.WriteString(f.input.View())
	b.WriteString("\n")
	if f.errMsg != "" {
		b.WriteString("  ")
		b.WriteString(iostreams.ErrorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	writeHelp(&b, "enter confirm", "esc cancel")
	return b.String()
}

// Value returns the current text.
func (f TextField) Value() string { return f.input.Value() }

// IsConfirmed reports whether enter was pressed.
func (f TextField) IsConfirmed() bool { return f.confirmed }

// IsCancelled reports whether the prompt was dismissed.
func (f TextField) IsCancelled() bool { return f.cancelled }

func writePrompt(b *strings.Builder, prompt string) {
	b.WriteString(iostreams.PromptTitleStyle.Render(prompt))
	b.WriteString("\n")
}

func writeHelp(b *strings.Builder, items ...string) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		k, desc, _ := strings.Cut(item, " ")
		parts = append(parts, iostreams.HelpKeyStyle.Render(k)+" "+iostreams.HelpDescStyle.Render(desc))
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n")
}
