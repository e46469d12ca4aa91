package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — warm and quiet, easy on late-evening terminals
var (
	Primary   = lipgloss.Color("#C08A3E") // Amber Gold
	Secondary = lipgloss.Color("#3E7CB1") // Lake Blue
	Success   = lipgloss.Color("#5E9C76") // Olive Green
	Error     = lipgloss.Color("#B4574E") // Brick
	Text      = lipgloss.Color("#F5F0E6") // Parchment
	TextDim   = lipgloss.Color("#9A917F") // Faded Ink
	BgCard    = lipgloss.Color("#2A2620") // Dark Walnut
	Border    = lipgloss.Color("#4A4336") // Walnut
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Verse = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	StreakLit = lipgloss.NewStyle().
			Foreground(Primary)

	StreakDim = lipgloss.NewStyle().
			Foreground(Border)

	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)
