// Package styles centralizes the stepdeck lipgloss palette and style set.
package styles

import "github.com/charmbracelet/lipgloss"

// GitHub terminal light theme palette.
var (
	ColorFg      = lipgloss.Color("#24292f") // primary foreground
	ColorMuted   = lipgloss.Color("#656d76") // muted/dim text
	ColorAccent  = lipgloss.Color("#0969da") // accent blue
	ColorError   = lipgloss.Color("#cf222e") // error red
	ColorSuccess = lipgloss.Color("#1a7f37") // success green
	ColorWarning = lipgloss.Color("#9a6700") // warning amber
)

// Centralized style definitions for the deck TUI.
var (
	// Deck chrome.
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorFg)
	HintStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// Dial rows.
	LabelStyle         = lipgloss.NewStyle().Foreground(ColorFg)
	SelectedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	ValueStyle         = lipgloss.NewStyle().Foreground(ColorFg)
	CursorStyle        = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// Actuator cells.
	ActuatorStyle        = lipgloss.NewStyle().Foreground(ColorMuted)
	ActuatorActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	ActuatorClampedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)

	// Dial flags (wrap / auto-repeat markers).
	FlagStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// Hold indicator shown while a repeat is running.
	HoldStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)

	// Help overlay frame.
	HelpBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)
)
