package tui

import "github.com/charmbracelet/lipgloss"

// Shared color palette.
const (
	colorPrimary = lipgloss.Color("63")
	colorSuccess = lipgloss.Color("42")
	colorError   = lipgloss.Color("196")
	colorWarning = lipgloss.Color("214")
	colorSubtle  = lipgloss.Color("241")
)

// Layout defaults.
const (
	defaultWidth   = 80
	borderPadding  = 4
	maxBarWidth    = 60
	maxRecentLines = 5
)

// Styles used by the batch view.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values.
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	LabelStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
	ValueStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorError)
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	SubtleStyle  = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)
	BoxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)
