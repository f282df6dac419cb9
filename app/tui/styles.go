package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#F472B6")
	muted  = lipgloss.Color("#9CA3AF")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	statusStyle = lipgloss.NewStyle().Foreground(muted)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	cardCursorStyle = cardStyle.BorderForeground(accent)

	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	deleteHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))

	inputLabelStyle = lipgloss.NewStyle().Bold(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Padding(1, 3)
)
