package iostreams

import "github.com/charmbracelet/lipgloss"

// ColorScheme renders text with the package styles.
// When colors are disabled, methods return the input string unmodified.
type ColorScheme struct {
	enabled bool
}

// NewColorScheme creates a new ColorScheme.
func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

func (cs *ColorScheme) render(style lipgloss.Style, s string) string {
	if !cs.enabled {
		return s
	}
	return style.Render(s)
}

// Red returns the string in the error color.
func (cs *ColorScheme) Red(s string) string {
	return cs.render(ErrorStyle, s)
}

// Yellow returns the string in the warning color.
func (cs *ColorScheme) Yellow(s string) string {
	return cs.render(WarningStyle, s)
}

// Green returns the string in the success color.
func (cs *ColorScheme) Green(s string) string {
	return cs.render(SuccessStyle, s)
}

// Cyan returns the string in the info color.
func (cs *ColorScheme) Cyan(s string) string {
	return cs.render(InfoStyle, s)
}

// Bold returns the string in bold.
func (cs *ColorScheme) Bold(s string) string {
	return cs.render(BoldStyle, s)
}

// Muted returns the string in a muted gray.
func (cs *ColorScheme) Muted(s string) string {
	return cs.render(MutedStyle, s)
}

// WarningIconWithColor returns a warning indicator with custom text.
func (cs *ColorScheme) WarningIconWithColor(text string) string {
	if cs.enabled {
		return cs.Yellow("! " + text)
	}
	return "[warn] " + text
}

// FailureIconWithColor returns a failure indicator with custom text.
func (cs *ColorScheme) FailureIconWithColor(text string) string {
	if cs.enabled {
		return cs.Red("✗ " + text)
	}
	return "[error] " + text
}

// InfoIconWithColor returns an info indicator with custom text.
func (cs *ColorScheme) InfoIconWithColor(text string) string {
	if cs.enabled {
		return cs.Cyan("ℹ " + text)
	}
	return "[info] " + text
}
