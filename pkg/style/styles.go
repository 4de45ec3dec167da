package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	CodeStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Background(SurfaceColor).
			Padding(0, 1)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Rule and verdict styles
var (
	WhitelistStyle = lipgloss.NewStyle().
			Foreground(WhitelistColor).
			Bold(true)

	BlacklistStyle = lipgloss.NewStyle().
			Foreground(BlacklistColor).
			Bold(true)

	NoVerdictStyle = lipgloss.NewStyle().
			Foreground(NoVerdictColor)

	InactiveStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Strikethrough(true)
)

// Indicators
var (
	IncludeIndicator  = WhitelistStyle.Render("+")
	ExcludeIndicator  = BlacklistStyle.Render("-")
	InactiveIndicator = MutedStyle.Render("○")
	ErrorIndicator    = ErrorStyle.Render("✗")
)

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Italic(s string) string {
	return lipgloss.NewStyle().Italic(true).Render(s)
}
