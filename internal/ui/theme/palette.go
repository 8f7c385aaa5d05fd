package theme

import "github.com/charmbracelet/lipgloss"

var (
	Paper   = lipgloss.Color("#fafafa")
	Ink     = lipgloss.Color("#262626")
	Ash     = lipgloss.Color("#8e8e8e")
	Rule    = lipgloss.Color("#dbdbdb")
	Link    = lipgloss.Color("#0095f6")
	Heart   = lipgloss.Color("#ed4956")
	Sunset  = lipgloss.Color("#f58529")
	Magenta = lipgloss.Color("#dd2a7b")

	Header = lipgloss.NewStyle().
		Foreground(Ink).
		Bold(true)

	Divider = lipgloss.NewStyle().Foreground(Rule)

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Rule).
		Padding(0, 1)

	Modal = Card.BorderForeground(Magenta)

	Title  = lipgloss.NewStyle().Foreground(Ink).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Ash)
	Hot    = lipgloss.NewStyle().Foreground(Magenta).Bold(true)
	Action = lipgloss.NewStyle().Foreground(Link).Bold(true)
	Danger = lipgloss.NewStyle().Foreground(Heart).Bold(true)
	Ring   = lipgloss.NewStyle().Foreground(Sunset)
)
