package prompter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/brickyard/internal/iostreams/iostreamstest"
)

func newTestPrompter(input string, interactive bool) (*Prompter, *iostreamstest.TestIOStreams) {
	ios := iostreamstest.New()
	ios.SetInteractive(interactive)
	ios.InBuf.SetInput(input)
	return NewPrompter(ios.IOStreams), ios
}

func TestNewPrompter(t *testing.T) {
	ios := iostreamstest.New()
	p := NewPrompter(ios.IOStreams, WithTUI(true))
	require.NotNil(t, p)
	assert.Same(t, ios.IOStreams, p.ios)
	assert.True(t, p.useTUI)
	assert.False(t, p.tuiEnabled(), "tui needs a terminal")
}

func TestPrompter_String(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		cfg         PromptConfig
		interactive bool
		want        string
		wantErr     error
	}{
		{
			name:        "typed value",
			input:       "widget\n",
			cfg:         PromptConfig{Message: "Enter the brick name.", Placeholder: "hello", Required: true},
			interactive: true,
			want:        "widget",
		},
		{
			name:        "empty uses default",
			input:       "\n",
			cfg:         PromptConfig{Message: "What is your name?", Default: "Dash"},
			interactive: true,
			want:        "Dash",
		},
		{
			name:        "value is trimmed",
			input:       "  hello world  \n",
			cfg:         PromptConfig{Message: "Greeting"},
			interactive: true,
			want:        "hello world",
		},
		{
			name:        "last line without newline",
			input:       "hello",
			cfg:         PromptConfig{Message: "Brick"},
			interactive: true,
			want:        "hello",
		},
		{
			name:        "empty required is a cancel",
			input:       "\n",
			cfg:         PromptConfig{Message: "Enter the brick name.", Required: true},
			interactive: true,
			wantErr:     ErrCancelled,
		},
		{
			name:        "EOF is a cancel",
			input:       "",
			cfg:         PromptConfig{Message: "Brick", Default: "hello"},
			interactive: true,
			wantErr:     ErrCancelled,
		},
		{
			name: "non-interactive default",
			cfg:  PromptConfig{Message: "Brick", Default: "hello"},
			want: "hello",
		},
		{
			name:    "non-interactive required",
			cfg:     PromptConfig{Message: "Brick", Required: true},
			wantErr: ErrRequiredInput,
		},
		{
			name:  "validator rejects",
			input: "nope\n",
			cfg: PromptConfig{Message: "Dir", Validator: func(string) error {
				return errors.New("Please select a valid directory")
			}},
			interactive: true,
			wantErr:     errors.New("Please select a valid directory"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input, tt.interactive)
			got, err := p.String(tt.cfg)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompter_String_PromptText(t *testing.T) {
	p, ios := newTestPrompter("x\ny\n", true)

	_, err := p.String(PromptConfig{Message: "Enter the brick name.", Placeholder: "hello"})
	require.NoError(t, err)
	_, err = p.String(PromptConfig{Message: "What is your name?", Default: "Dash"})
	require.NoError(t, err)

	assert.Equal(t, "Enter the brick name. (e.g. hello): What is your name? [Dash]: ", ios.ErrBuf.String())
}

func TestPrompter_SharedReader(t *testing.T) {
	p, _ := newTestPrompter("first\nsecond\n", true)

	a, err := p.String(PromptConfig{Message: "a"})
	require.NoError(t, err)
	b, err := p.String(PromptConfig{Message: "b"})
	require.NoError(t, err)

	assert.Equal(t, "first", a)
	assert.Equal(t, "second", b)
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		defaultYes  bool
		interactive bool
		want        bool
		wantErr     error
	}{
		{name: "y", input: "y\n", interactive: true, want: true},
		{name: "yes", input: "YES\n", interactive: true, want: true},
		{name: "n", input: "n\n", defaultYes: true, interactive: true, want: false},
		{name: "empty default no", input: "\n", interactive: true, want: false},
		{name: "empty default yes", input: "\n", defaultYes: true, interactive: true, want: true},
		{name: "EOF", input: "", interactive: true, wantErr: ErrCancelled},
		{name: "non-interactive", defaultYes: true, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input, tt.interactive)
			got, err := p.Confirm("Open installation instructions?", tt.defaultYes)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompter_Select(t *testing.T) {
	options := []string{"hello", "widget", "app"}
	tests := []struct {
		name        string
		input       string
		defaultIdx  int
		interactive bool
		want        int
		wantErr     string
	}{
		{name: "pick second", input: "2\n", interactive: true, want: 1},
		{name: "empty takes default", input: "\n", defaultIdx: 2, interactive: true, want: 2},
		{name: "out of range", input: "9\n", interactive: true, wantErr: "invalid selection: 9"},
		{name: "not a number", input: "abc\n", interactive: true, wantErr: "invalid selection: abc"},
		{name: "EOF", input: "", interactive: true, wantErr: ErrCancelled.Error()},
		{name: "non-interactive", defaultIdx: 1, want: 1},
		{name: "default clamped", defaultIdx: 10, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input, tt.interactive)
			got, err := p.Select("Pick a brick", options, tt.defaultIdx)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompter_Select_Output(t *testing.T) {
	p, ios := newTestPrompter("1\n", true)
	_, err := p.Select("Pick a brick", []string{"hello", "widget"}, 1)
	require.NoError(t, err)

	assert.Equal(t, "Pick a brick:\n  1. hello\n> 2. widget\nEnter selection [2]: ", ios.ErrBuf.String())
}

func TestPrompter_Select_NoOptions(t *testing.T) {
	p, _ := newTestPrompter("", true)
	_, err := p.Select("Pick a brick", nil, 0)
	require.EqualError(t, err, "no options provided")
}

func TestPrompter_MultiSelect(t *testing.T) {
	options := []string{"android", "ios", "web"}
	tests := []struct {
		name        string
		input       string
		checked     []string
		interactive bool
		want        []string
		wantErr     string
	}{
		{name: "numbers", input: "3,1\n", interactive: true, want: []string{"android", "web"}},
		{name: "spaces", input: "2 3\n", interactive: true, want: []string{"ios", "web"}},
		{name: "empty keeps defaults in option order", input: "\n", checked: []string{"web", "android"}, interactive: true, want: []string{"android", "web"}},
		{name: "unknown defaults ignored", input: "\n", checked: []string{"linux"}, interactive: true, want: nil},
		{name: "dash selects none", input: "-\n", checked: []string{"ios"}, interactive: true, want: nil},
		{name: "invalid", input: "0\n", interactive: true, wantErr: "invalid selection: 0"},
		{name: "EOF", input: "", interactive: true, wantErr: ErrCancelled.Error()},
		{name: "non-interactive", checked: []string{"ios"}, want: []string{"ios"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input, tt.interactive)
			got, err := p.MultiSelect("Which platforms?", options, tt.checked)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
