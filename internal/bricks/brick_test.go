package bricks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greetingBrick = `name: greeting
description: A greeting brick
version: 0.1.0+1

vars:
  name:
    type: string
    description: Your name
    default: Dash
    prompt: What is your name?
  shout:
    type: boolean
    default: true
  style:
    type: enum
    values: [plain, fancy, loud]
    default: fancy
  platforms:
    type: array
    values: [android, ios, web]
    defaults: [ios]
  count:
    type: number
    default: 3
  mystery:
    type: list
    default: x
`

func TestParseBrick(t *testing.T) {
	b, err := ParseBrick([]byte(greetingBrick))
	require.NoError(t, err)

	assert.Equal(t, "greeting", b.Name)
	assert.Equal(t, "A greeting brick", b.Description)
	assert.Equal(t, "0.1.0+1", b.Version)

	names := make([]string, len(b.Vars))
	for i, v := range b.Vars {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"name", "shout", "style", "platforms", "count", "mystery"}, names)

	name := b.Vars[0]
	assert.Equal(t, KindString, name.Kind)
	assert.Equal(t, "Dash", name.DefaultString())
	assert.Equal(t, "What is your name?", name.PromptText())
	assert.Equal(t, "Your name", name.Description)

	assert.Equal(t, KindBoolean, b.Vars[1].Kind)
	assert.True(t, b.Vars[1].DefaultBool())

	assert.Equal(t, KindEnum, b.Vars[2].Kind)
	assert.Equal(t, []string{"plain", "fancy", "loud"}, b.Vars[2].Values)

	assert.Equal(t, KindArray, b.Vars[3].Kind)
	assert.Equal(t, []string{"ios"}, b.Vars[3].Defaults)

	assert.Equal(t, KindNumber, b.Vars[4].Kind)
	assert.Equal(t, "3", b.Vars[4].DefaultString())

	assert.Equal(t, KindUnsupported, b.Vars[5].Kind)
	assert.Equal(t, "list", b.Vars[5].TypeLabel())
}

func TestParseBrick_ListDefaultForArray(t *testing.T) {
	b, err := ParseBrick([]byte(`name: x
vars:
  colors:
    type: array
    values: [red, green]
    default: [green]
`))
	require.NoError(t, err)
	require.Len(t, b.Vars, 1)
	assert.Equal(t, []string{"green"}, b.Vars[0].Defaults)
	assert.Nil(t, b.Vars[0].Default)
}

func TestParseBrick_LegacyVarList(t *testing.T) {
	b, err := ParseBrick([]byte("name: legacy\nvars:\n  - name\n  - city\n"))
	require.NoError(t, err)
	require.Len(t, b.Vars, 2)
	assert.Equal(t, "city", b.Vars[1].Name)
	assert.Equal(t, KindString, b.Vars[1].Kind)
	assert.Equal(t, "city", b.Vars[1].PromptText())
}

func TestParseBrick_NoVars(t *testing.T) {
	b, err := ParseBrick([]byte("name: bare\n"))
	require.NoError(t, err)
	assert.Empty(t, b.Vars)

	b, err = ParseBrick([]byte("name: bare\nvars:\n"))
	require.NoError(t, err)
	assert.Empty(t, b.Vars)
}

func TestParseBrick_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "not a mapping", data: "- a\n- b\n"},
		{name: "missing name", data: "description: nothing\n"},
		{name: "bad yaml", data: "name: [unterminated\n"},
		{name: "vars scalar", data: "name: x\nvars: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBrick([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestReadBrick(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BrickFileName), []byte(greetingBrick), 0o644))

	b, err := ReadBrick(dir)
	require.NoError(t, err)
	assert.Equal(t, "greeting", b.Name)
}

func TestReadBrick_Missing(t *testing.T) {
	_, err := ReadBrick(t.TempDir())
	require.ErrorIs(t, err, ErrUnreadableBrick)
	assert.Contains(t, err.Error(), "Could not read brick.yaml")
}

func TestReadBrick_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BrickFileName), []byte("vars: {}\n"), 0o644))

	_, err := ReadBrick(dir)
	require.ErrorIs(t, err, ErrUnreadableBrick)
}

func TestKind(t *testing.T) {
	for _, tag := range []string{"string", "number", "boolean", "enum", "array"} {
		assert.Equal(t, tag, ParseKind(tag).String())
	}
	assert.Equal(t, KindUnsupported, ParseKind(""))
	assert.Equal(t, "unsupported", ParseKind("map").String())
}

func TestVariable_TypeLabel(t *testing.T) {
	assert.Equal(t, "undefined", Variable{}.TypeLabel())
	assert.Equal(t, "map", Variable{Type: "map"}.TypeLabel())
}

func TestVariable_DefaultBool(t *testing.T) {
	assert.False(t, Variable{}.DefaultBool())
	assert.True(t, Variable{Default: "true"}.DefaultBool())
	assert.False(t, Variable{Default: 1}.DefaultBool())
}
