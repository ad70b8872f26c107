package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings shared by the prompt fields.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Enter  key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// IsUp returns true if the key message matches up navigation keys.
func IsUp(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().Up)
}

// IsDown returns true if the key message matches down navigation keys.
func IsDown(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().Down)
}

// IsToggle returns true if the key message toggles a multi-select item.
func IsToggle(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().Toggle)
}

// IsEnter returns true if the key message is enter.
func IsEnter(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().Enter)
}

// IsCancel returns true if the key message dismisses the prompt.
func IsCancel(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().Cancel)
}
