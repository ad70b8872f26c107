package prompter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schmitthub/brickyard/internal/iostreams"
	"github.com/schmitthub/brickyard/internal/logger"
	"github.com/schmitthub/brickyard/internal/tui"
)

var (
	// ErrCancelled is returned when the user dismisses a prompt (EOF, esc,
	// ctrl+c, or an empty answer to a required question).
	ErrCancelled = errors.New("prompt cancelled")

	// ErrRequiredInput is returned when a required value has no default and
	// the session cannot prompt.
	ErrRequiredInput = errors.New("required input missing in non-interactive mode")
)

// Prompter provides interactive prompting functionality.
// It uses IOStreams for testable I/O. Line-based prompts read from ios.In;
// with TUI enabled and a terminal attached, bubbletea fields are used instead.
type Prompter struct {
	ios    *iostreams.IOStreams
	reader *bufio.Reader
	useTUI bool
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithTUI enables bubbletea fields when the session is interactive.
func WithTUI(enabled bool) Option {
	return func(p *Prompter) {
		p.useTUI = enabled
	}
}

// NewPrompter creates a new Prompter with the given IOStreams.
func NewPrompter(ios *iostreams.IOStreams, opts ...Option) *Prompter {
	p := &Prompter{ios: ios}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PromptConfig configures a string prompt.
type PromptConfig struct {
	Message     string
	Default     string
	Placeholder string
	Required    bool
	Validator   func(string) error
}

func (p *Prompter) tuiEnabled() bool {
	return p.useTUI && p.ios.CanPrompt()
}

// readLine reads one answer. The reader is kept across prompts so buffered
// input for later questions is not lost.
func (p *Prompter) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.ios.In)
	}
	response, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && response == "" {
			fmt.Fprintln(p.ios.ErrOut)
			return "", ErrCancelled
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimSpace(response), nil
}

func (p *Prompter) runTUI(fn func() error) error {
	logger.SetInteractiveMode(true)
	defer logger.SetInteractiveMode(false)
	if err := fn(); err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			return ErrCancelled
		}
		return err
	}
	return nil
}

// String prompts the user for a string value.
// Returns the default if the user enters nothing.
// In non-interactive mode, returns the default without prompting.
func (p *Prompter) String(cfg PromptConfig) (string, error) {
	if !p.ios.CanPrompt() {
		if cfg.Required && cfg.Default == "" {
			return "", ErrRequiredInput
		}
		return cfg.Default, nil
	}

	var response string
	if p.tuiEnabled() {
		// An empty answer means the default, so show it where the user types.
		placeholder := cfg.Placeholder
		if cfg.Default != "" {
			placeholder = cfg.Default
		}
		opts := []tui.TextFieldOption{tui.WithPlaceholder(placeholder)}
		if cfg.Validator != nil {
			// Reject bad input in place instead of ending the prompt.
			opts = append(opts, tui.WithValidator(func(s string) error {
				if s = strings.TrimSpace(s); s == "" {
					s = cfg.Default
				}
				return cfg.Validator(s)
			}))
		}
		err := p.runTUI(func() error {
			var err error
			response, err = tui.RunText(p.ios, cfg.Message, opts...)
			return err
		})
		if err != nil {
			return "", err
		}
		response = strings.TrimSpace(response)
	} else {
		prompt := cfg.Message
		switch {
		case cfg.Default != "":
			prompt = fmt.Sprintf("%s [%s]", cfg.Message, cfg.Default)
		case cfg.Placeholder != "":
			prompt = fmt.Sprintf("%s (e.g. %s)", cfg.Message, cfg.Placeholder)
		}
		fmt.Fprintf(p.ios.ErrOut, "%s: ", prompt)

		var err error
		if response, err = p.readLine(); err != nil {
			return "", err
		}
	}

	if response == "" {
		response = cfg.Default
	}
	if cfg.Required && response == "" {
		return "", ErrCancelled
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(response); err != nil {
			return "", err
		}
	}
	return response, nil
}

// Confirm prompts the user for a yes/no confirmation.
// In non-interactive mode, returns the default without prompting.
func (p *Prompter) Confirm(message string, defaultYes bool) (bool, error) {
	if !p.ios.CanPrompt() {
		return defaultYes, nil
	}

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.ios.ErrOut, "%s %s ", message, hint)

	response, err := p.readLine()
	if err != nil {
		return false, err
	}
	response = strings.ToLower(response)
	if response == "" {
		return defaultYes, nil
	}
	return response == "y" || response == "yes", nil
}

// Select prompts the user to pick one of options and returns its index.
// In non-interactive mode, returns defaultIdx without prompting.
func (p *Prompter) Select(message string, options []string, defaultIdx int) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options provided")
	}
	if defaultIdx < 0 || defaultIdx >= len(options) {
		defaultIdx = 0
	}
	if !p.ios.CanPrompt() {
		return defaultIdx, nil
	}

	if p.tuiEnabled() {
		idx := -1
		err := p.runTUI(func() error {
			var err error
			idx, err = tui.RunSelect(p.ios, message, options, defaultIdx)
			return err
		})
		return idx, err
	}

	fmt.Fprintf(p.ios.ErrOut, "%s:\n", message)
	for i, opt := range options {
		marker := "  "
		if i == defaultIdx {
			marker = "> "
		}
		fmt.Fprintf(p.ios.ErrOut, "%s%d. %s\n", marker, i+1, opt)
	}
	fmt.Fprintf(p.ios.ErrOut, "Enter selection [%d]: ", defaultIdx+1)

	response, err := p.readLine()
	if err != nil {
		return -1, err
	}
	if response == "" {
		return defaultIdx, nil
	}

	idx, err := strconv.Atoi(response)
	if err != nil || idx < 1 || idx > len(options) {
		return -1, fmt.Errorf("invalid selection: %s", response)
	}
	return idx - 1, nil
}

// MultiSelect prompts the user to pick any number of options. checked holds
// the options selected by default. The result keeps the order of options.
// In non-interactive mode, returns the defaults without prompting.
//
// Line mode accepts numbers separated by commas or spaces; an empty answer
// keeps the defaults and "-" selects nothing.
func (p *Prompter) MultiSelect(message string, options, checked []string) ([]string, error) {
	isChecked := make(map[string]bool, len(checked))
	for _, c := range checked {
		isChecked[c] = true
	}
	var defaults []string
	for _, opt := range options {
		if isChecked[opt] {
			defaults = append(defaults, opt)
		}
	}

	if !p.ios.CanPrompt() {
		return defaults, nil
	}

	if p.tuiEnabled() {
		var values []string
		err := p.runTUI(func() error {
			var err error
			values, err = tui.RunMultiSelect(p.ios, message, options, checked)
			return err
		})
		return values, err
	}

	fmt.Fprintf(p.ios.ErrOut, "%s:\n", message)
	for i, opt := range options {
		box := "[ ]"
		if isChecked[opt] {
			box = "[x]"
		}
		fmt.Fprintf(p.ios.ErrOut, "  %s %d. %s\n", box, i+1, opt)
	}
	fmt.Fprint(p.ios.ErrOut, "Enter selections (e.g. 1,3; - for none) [defaults]: ")

	response, err := p.readLine()
	if err != nil {
		return nil, err
	}
	switch response {
	case "":
		return defaults, nil
	case "-":
		return nil, nil
	}

	picked := make([]bool, len(options))
	for _, field := range strings.FieldsFunc(response, func(r rune) bool { return r == ',' || r == ' ' }) {
		idx, err := strconv.Atoi(field)
		if err != nil || idx < 1 || idx > len(options) {
			return nil, fmt.Errorf("invalid selection: %s", field)
		}
		picked[idx-1] = true
	}
	var values []string
	for i, opt := range options {
		if picked[i] {
			values = append(values, opt)
		}
	}
	return values, nil
}
