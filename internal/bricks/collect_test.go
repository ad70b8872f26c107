package bricks

import (
	"errors"
	"testing"

	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/brickyard/internal/prompter"
)

// scriptedPrompter answers prompts from queues and records what it was asked.
type scriptedPrompter struct {
	strings []string
	indexes []int
	multis  [][]string
	err     error

	asked   []prompter.PromptConfig
	options [][]string
	checked [][]string
}

func (p *scriptedPrompter) String(cfg prompter.PromptConfig) (string, error) {
	p.asked = append(p.asked, cfg)
	if p.err != nil {
		return "", p.err
	}
	answer := p.strings[0]
	p.strings = p.strings[1:]
	if answer == "" {
		answer = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (p *scriptedPrompter) Select(_ string, options []string, _ int) (int, error) {
	p.options = append(p.options, options)
	if p.err != nil {
		return -1, p.err
	}
	idx := p.indexes[0]
	p.indexes = p.indexes[1:]
	return idx, nil
}

func (p *scriptedPrompter) MultiSelect(_ string, options, checked []string) ([]string, error) {
	p.options = append(p.options, options)
	p.checked = append(p.checked, checked)
	if p.err != nil {
		return nil, p.err
	}
	picked := p.multis[0]
	p.multis = p.multis[1:]
	return picked, nil
}

func TestCollector_Collect(t *testing.T) {
	b, err := ParseBrick([]byte(greetingBrick))
	require.NoError(t, err)

	p := &scriptedPrompter{
		strings: []string{"Dash Rendar", ""},
		indexes: []int{1, 0},
		multis:  [][]string{{"android", "web"}},
	}
	var notes []string
	c := &Collector{Prompter: p, Notify: func(msg string) { notes = append(notes, msg) }}

	flags, err := c.Collect(b.Vars)
	require.NoError(t, err)
	assert.Equal(t,
		`--name "Dash Rendar" --shout false --style fancy --platforms '["android","web"]' --count 3 --mystery x`,
		flags)

	// Boolean lists the default first, enum puts the default before the rest.
	assert.Equal(t, [][]string{
		{"true", "false"},
		{"fancy", "plain", "loud"},
		{"android", "ios", "web"},
	}, p.options)
	assert.Equal(t, [][]string{{"ios"}}, p.checked)
	assert.Equal(t, "What is your name?", p.asked[0].Message)
	assert.Equal(t, "Dash", p.asked[0].Default)
	assert.Equal(t, []string{"list type is not supported."}, notes)

	argv, err := shlex.Split("make greeting " + flags)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"make", "greeting",
		"--name", "Dash Rendar",
		"--shout", "false",
		"--style", "fancy",
		"--platforms", `["android","web"]`,
		"--count", "3",
		"--mystery", "x",
	}, argv)
}

func TestCollector_NoVars(t *testing.T) {
	c := &Collector{Prompter: &scriptedPrompter{}}
	flags, err := c.Collect(nil)
	require.NoError(t, err)
	assert.Empty(t, flags)
}

func TestCollector_CancelAborts(t *testing.T) {
	p := &scriptedPrompter{err: prompter.ErrCancelled}
	c := &Collector{Prompter: p}

	_, err := c.Collect([]Variable{
		{Name: "a", Kind: KindString},
		{Name: "b", Kind: KindString},
	})
	require.ErrorIs(t, err, prompter.ErrCancelled)
	assert.Len(t, p.asked, 1, "collection stops at the first cancellation")
}

func TestCollector_NumberValidation(t *testing.T) {
	p := &scriptedPrompter{strings: []string{"twelve"}}
	c := &Collector{Prompter: p}

	_, err := c.Collect([]Variable{{Name: "count", Kind: KindNumber}})
	require.EqualError(t, err, `"twelve" is not a number`)
}

func TestCollector_Unsupported(t *testing.T) {
	tests := []struct {
		name    string
		v       Variable
		want    string
		wantErr string
	}{
		{
			name: "default",
			v:    Variable{Name: "m", Kind: KindUnsupported, Type: "map", Default: "a b"},
			want: `--m "a b"`,
		},
		{
			name: "defaults joined",
			v:    Variable{Name: "m", Kind: KindUnsupported, Type: "map", Defaults: []string{"a", "b"}},
			want: "--m a,b",
		},
		{
			name:    "nothing to fall back on",
			v:       Variable{Name: "m", Kind: KindUnsupported, Type: "map"},
			wantErr: "Could not find a default value for m.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Collector{Prompter: &scriptedPrompter{}}
			got, err := c.Collect([]Variable{tt.v})
			if tt.wantErr != "" {
				var missing *MissingDefaultError
				require.True(t, errors.As(err, &missing))
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnumOptions(t *testing.T) {
	tests := []struct {
		name string
		v    Variable
		want []string
	}{
		{name: "default moves first", v: Variable{Values: []string{"a", "b", "c"}, Default: "c"}, want: []string{"c", "a", "b"}},
		{name: "no default uses first", v: Variable{Values: []string{"a", "b"}}, want: []string{"a", "b"}},
		{name: "default outside values", v: Variable{Values: []string{"a"}, Default: "z"}, want: []string{"z", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnumOptions(tt.v))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "hello", want: "hello"},
		{in: "hello world", want: `"hello world"`},
		{in: "", want: `""`},
		{in: `say "hi"`, want: `"say \"hi\""`},
		{in: "it's", want: `"it's"`},
		{in: `C:\bricks`, want: `"C:\\bricks"`},
		{in: "#fff", want: `"#fff"`},
		{in: "x;touch${IFS}PWNED", want: "x;touch${IFS}PWNED"},
		{in: "$HOME", want: "$HOME"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Quote(tt.in)
			assert.Equal(t, tt.want, got)

			argv, err := shlex.Split("--x " + got)
			require.NoError(t, err)
			assert.Equal(t, []string{"--x", tt.in}, argv)
		})
	}
}

func TestEncodeArray(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{in: nil, want: `'[]'`},
		{in: []string{"a", "b"}, want: `'["a","b"]'`},
		{in: []string{"it's"}, want: `"[\"it's\"]"`},
	}
	for _, tt := range tests {
		got, err := EncodeArray(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
