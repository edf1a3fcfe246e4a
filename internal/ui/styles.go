package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	listRowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	hoverRowStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Reverse(true)

	activeMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	searchingStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("244")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)
