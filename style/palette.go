package style

import "github.com/charmbracelet/lipgloss"

// Palette. Catppuccin Mocha.
var (
	Text     = lipgloss.Color("#cdd6f4")
	Overlay  = lipgloss.Color("#6c7086")
	Surface  = lipgloss.Color("#313244")
	Mauve    = lipgloss.Color("#cba6f7")
	Pink     = lipgloss.Color("#f5c2e7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor = Mauve
	HiRed       = Red
)

// Seek bar roles.
var (
	Played    = AccentColor
	Remaining = Surface

	ThumbDisabled = Overlay
	ThumbJumped   = Peach
	ThumbDragged  = Pink
	ThumbFocused  = Lavender

	ButtonText       = Text
	ButtonBackground = Surface
)
