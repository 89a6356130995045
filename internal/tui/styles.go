package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("205")
	Secondary = lipgloss.Color("86")
	Subtle    = lipgloss.Color("241")
	Success   = lipgloss.Color("46")
	Warning   = lipgloss.Color("214")
	Error     = lipgloss.Color("196")

	// Header styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(Primary).
			Padding(0, 2).
			Align(lipgloss.Center)

	// Status line styles
	StatusStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Network row styles
	SSIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	HiddenStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	ActiveStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	SecurityStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	BandStyle = lipgloss.NewStyle().
			Foreground(Subtle)

	// Dim style
	DimStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(Subtle).
			MarginTop(1)

	// Loading style
	LoadingStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Padding(2, 4)
)

// Signal strength display thresholds.
const (
	signalExcellent = 70
	signalGood      = 40
)

var (
	signalStrongStyle = lipgloss.NewStyle().Foreground(Success)
	signalMidStyle    = lipgloss.NewStyle().Foreground(Warning)
	signalWeakStyle   = lipgloss.NewStyle().Foreground(Error)
)

// SignalStyle returns the style for a 0-100 signal value.
func SignalStyle(percent int) lipgloss.Style {
	switch {
	case percent >= signalExcellent:
		return signalStrongStyle
	case percent >= signalGood:
		return signalMidStyle
	default:
		return signalWeakStyle
	}
}

// RenderBar renders a progress bar.
func RenderBar(value, max int, width int) string {
	if max == 0 {
		max = 1
	}

	filled := int(float64(value) / float64(max) * float64(width))
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}

	return SignalStyle(value).Render(bar)
}
