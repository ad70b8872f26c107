package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyHelpers(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		fn   func(tea.KeyMsg) bool
		want bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, IsUp, true},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, IsUp, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, IsDown, true},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, IsDown, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, IsToggle, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, IsEnter, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, IsCancel, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, IsCancel, true},
		{"q is not cancel", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, IsCancel, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.msg))
		})
	}
}
