package main

import "github.com/charmbracelet/lipgloss"

// Color palette for CLI output, tuned for dark terminals.
const (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorMuted     = lipgloss.Color("#6B7280")
	colorSuccess   = lipgloss.Color("#10B981")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorHighlight = lipgloss.Color("#3B82F6")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// patternStyle renders composed patterns and group names.
	patternStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	keyStyle = lipgloss.NewStyle().
			Width(28).
			Foreground(colorMuted)
)
