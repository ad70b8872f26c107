package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestSelectField_Navigation(t *testing.T) {
	var m tea.Model = NewSelectField("Pick a brick", []string{"hello", "widget", "app"}, 0)

	m, _ = m.Update(keyPress(tea.KeyDown))
	assert.Equal(t, 1, m.(SelectField).SelectedIndex())

	m, _ = m.Update(runes("j"))
	assert.Equal(t, 2, m.(SelectField).SelectedIndex())

	m, _ = m.Update(keyPress(tea.KeyDown))
	assert.Equal(t, 0, m.(SelectField).SelectedIndex(), "wraps to first")

	m, _ = m.Update(keyPress(tea.KeyUp))
	assert.Equal(t, 2, m.(SelectField).SelectedIndex(), "wraps to last")
	assert.Equal(t, "app", m.(SelectField).Value())
}

func TestSelectField_DefaultClamped(t *testing.T) {
	f := NewSelectField("Pick", []string{"true", "false"}, 7)
	assert.Equal(t, 0, f.SelectedIndex())

	f = NewSelectField("Pick", []string{"true", "false"}, 1)
	assert.Equal(t, "false", f.Value())
}

func TestSelectField_ConfirmAndCancel(t *testing.T) {
	var m tea.Model = NewSelectField("Pick", []string{"a", "b"}, 1)
	m, cmd := m.Update(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, m.(SelectField).IsConfirmed())

	m = NewSelectField("Pick", []string{"a", "b"}, 0)
	m, _ = m.Update(keyPress(tea.KeyEsc))
	assert.True(t, m.(SelectField).IsCancelled())
	assert.False(t, m.(SelectField).IsConfirmed())

	m = NewSelectField("Pick", []string{"a", "b"}, 0)
	m, _ = m.Update(keyPress(tea.KeyCtrlC))
	assert.True(t, m.(SelectField).IsCancelled())
}

func TestSelectField_View(t *testing.T) {
	view := NewSelectField("Pick a brick", []string{"hello", "widget"}, 1).View()
	assert.Contains(t, view, "Pick a brick")
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, ">")
}

func TestMultiSelectField_Toggle(t *testing.T) {
	var m tea.Model = NewMultiSelectField("Platforms", []string{"android", "ios", "web"}, []string{"ios"})
	assert.Equal(t, []string{"ios"}, m.(MultiSelectField).Values())

	m, _ = m.Update(keyPress(tea.KeySpace))
	m, _ = m.Update(keyPress(tea.KeyDown))
	m, _ = m.Update(keyPress(tea.KeySpace))
	m, _ = m.Update(keyPress(tea.KeyDown))
	m, _ = m.Update(runes("x"))

	assert.Equal(t, []string{"android", "web"}, m.(MultiSelectField).Values())

	m, _ = m.Update(keyPress(tea.KeyEnter))
	assert.True(t, m.(MultiSelectField).IsConfirmed())
}

func TestMultiSelectField_EmptySelection(t *testing.T) {
	var m tea.Model = NewMultiSelectField("Platforms", []string{"android"}, nil)
	m, _ = m.Update(keyPress(tea.KeyEnter))
	assert.True(t, m.(MultiSelectField).IsConfirmed())
	assert.Empty(t, m.(MultiSelectField).Values())
}

func TestMultiSelectField_View(t *testing.T) {
	view := NewMultiSelectField("Platforms", []string{"android", "ios"}, []string{"ios"}).View()
	assert.Contains(t, view, "[ ] android")
	assert.Contains(t, view, "[x]")
}

func TestTextField_Input(t *testing.T) {
	var m tea.Model = NewTextField("Enter the brick name.", WithPlaceholder("hello"))
	m, _ = m.Update(runes("widget"))
	assert.Equal(t, "widget", m.(TextField).Value())

	m, _ = m.Update(keyPress(tea.KeyEnter))
	assert.True(t, m.(TextField).IsConfirmed())
}

func TestTextField_Validator(t *testing.T) {
	var m tea.Model = NewTextField("Select a folder", WithValidator(func(s string) error {
		if s == "" {
			return errors.New("Please select a valid directory")
		}
		return nil
	}))

	m, _ = m.Update(keyPress(tea.KeyEnter))
	assert.False(t, m.(TextField).IsConfirmed())
	assert.Contains(t, m.(TextField).View(), "Please select a valid directory")

	m, _ = m.Update(runes("lib"))
	m, _ = m.Update(keyPress(tea.KeyEnter))
	assert.True(t, m.(TextField).IsConfirmed())
}

func TestTextField_Cancel(t *testing.T) {
	var m tea.Model = NewTextField("name?")
	m, _ = m.Update(keyPress(tea.KeyEsc))
	assert.True(t, m.(TextField).IsCancelled())
}
