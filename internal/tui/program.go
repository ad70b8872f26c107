package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/brickyard/internal/iostreams"
)

// ErrCancelled is returned when a field is dismissed with esc or ctrl+c.
var ErrCancelled = errors.New("prompt cancelled")

// RunProgram runs model as a BubbleTea program reading ios.In. The UI
// renders on stderr so stdout stays clean for piping.
func RunProgram(ios *iostreams.IOStreams, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model,
		tea.WithInput(ios.In),
		tea.WithOutput(ios.ErrOut),
	).Run()
}

// RunSelect shows a SelectField and returns the chosen index.
func RunSelect(ios *iostreams.IOStreams, prompt string, options []string, defaultIdx int) (int, error) {
	final, err := RunProgram(ios, NewSelectField(prompt, options, defaultIdx))
	if err != nil {
		return -1, fmt.Errorf("select prompt: %w", err)
	}
	f := final.(SelectField)
	if !f.IsConfirmed() {
		return -1, ErrCancelled
	}
	return f.SelectedIndex(), nil
}

// RunMultiSelect shows a MultiSelectField and returns the checked options.
func RunMultiSelect(ios *iostreams.IOStreams, prompt string, options, checked []string) ([]string, error) {
	final, err := RunProgram(ios, NewMultiSelectField(prompt, options, checked))
	if err != nil {
		return nil, fmt.Errorf("multi-select prompt: %w", err)
	}
	f := final.(MultiSelectField)
	if !f.IsConfirmed() {
		return nil, ErrCancelled
	}
	return f.Values(), nil
}

// RunText shows a TextField and returns the entered text.
func RunText(ios *iostreams.IOStreams, prompt string, opts ...TextFieldOption) (string, error) {
	final, err := RunProgram(ios, NewTextField(prompt, opts...))
	if err != nil {
		return "", fmt.Errorf("text prompt: %w", err)
	}
	f := final.(TextField)
	if !f.IsConfirmed() {
		return "", ErrCancelled
	}
	return f.Value(), nil
}
