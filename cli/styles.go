// ABOUTME: Shared lipgloss styles for CLI output
// ABOUTME: Defines colors and text styles used across commands

package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorOK      = lipgloss.Color("#10B981") // Green
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorDanger  = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleOK = lipgloss.NewStyle().
		Foreground(colorOK).
		Bold(true)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	styleCritical = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// utilizationStyle picks a style for a utilization percentage: green
// below 70, amber to 90, red above.
func utilizationStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 70:
		return styleOK
	case pct <= 90:
		return styleWarning
	default:
		return styleCritical
	}
}
