package iostreams

import "github.com/charmbracelet/lipgloss"

// Named colors. These define the actual values and never change.
var (
	ColorBrick   = lipgloss.Color("#C8553D") // Fired clay red
	ColorEmerald = lipgloss.Color("#04B575")
	ColorAmber   = lipgloss.Color("#FFCC00")
	ColorHotPink = lipgloss.Color("#FF5F87")
	ColorDimGray = lipgloss.Color("#626262")
	ColorSkyBlue = lipgloss.Color("#87CEEB")
	ColorGold    = lipgloss.Color("#FFD700")
)

// Semantic theme. Swap the RHS to change the whole palette.
var (
	ColorPrimary  = ColorBrick
	ColorSuccess  = ColorEmerald
	ColorWarning  = ColorAmber
	ColorError    = ColorHotPink
	ColorMuted    = ColorDimGray
	ColorInfo     = ColorSkyBlue
	ColorSelected = ColorGold
)

// Text styles.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	BoldStyle    = lipgloss.NewStyle().Bold(true)
)

// Prompt field styles, shared by the tui package.
var (
	PromptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	CursorStyle = lipgloss.NewStyle().Foreground(ColorSelected).Bold(true)

	ListItemStyle = lipgloss.NewStyle().PaddingLeft(2)

	ListItemSelectedStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(ColorSelected).
				Bold(true)

	CheckedStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
