package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	Masculine = lipgloss.Color("#38BDF8") // Sky
	Feminine  = lipgloss.Color("#F472B6") // Pink
	Unknown   = lipgloss.Color("#A3A3A3") // Neutral
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(Text).
			Bold(true)

	Agree = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Disagree = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// GenderStyle returns the foreground style used for a gender label.
func GenderStyle(label string) lipgloss.Style {
	switch label {
	case "masculino":
		return lipgloss.NewStyle().Foreground(Masculine)
	case "femenino":
		return lipgloss.NewStyle().Foreground(Feminine)
	case "":
		return Hint
	default:
		return lipgloss.NewStyle().Foreground(Unknown)
	}
}
