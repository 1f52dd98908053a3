package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	ScoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	FooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	LinkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	DisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)
