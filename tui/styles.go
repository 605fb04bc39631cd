// styles.go holds the shared palette (ANSI-256 colors).
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorText      = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorAccent    = lipgloss.Color("39")
	ColorSuccess   = lipgloss.Color("42")
	ColorError     = lipgloss.Color("196")
	ColorMoney     = lipgloss.Color("214")
	ColorSource    = lipgloss.Color("141")
	ColorSelection = lipgloss.Color("236")
)

var (
	StyleDimmed = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold   = lipgloss.NewStyle().Bold(true).Foreground(ColorText)

	// Feedback
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorMoney)

	// Frame
	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted)

	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StylePrompt = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// Header tabs
	StyleTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Padding(0, 1)

	StyleTabInactive = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	// Selected list entry (tables sidebar, prompt library)
	StyleListItemActive = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Background(ColorSelection).
				Bold(true)

	// Chat
	StyleUser      = lipgloss.NewStyle().Foreground(ColorMuted).Bold(true)
	StyleAssistant = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleSQL       = lipgloss.NewStyle().Foreground(ColorMoney)
	StyleSource    = lipgloss.NewStyle().Foreground(ColorSource).Italic(true)
	StyleBar       = lipgloss.NewStyle().Foreground(ColorAccent)

	// Tables
	StyleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1)
	StyleTableCell   = lipgloss.NewStyle().Padding(0, 1)

	// Bottom bar
	StyleStatusBar = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleHelpKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
