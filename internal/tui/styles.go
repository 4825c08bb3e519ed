// Package tui provides the Bubble Tea learner screens for the quiz and the
// typing tutor.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4F7CFF"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2DB55D"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	barFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4F7CFF"))

	pendingStyle = mutedStyle
	typedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	wrongStyle   = badStyle.Underline(true)
)

// progressBar renders percent (0-100) as a fixed-width bar.
func progressBar(percent float64, width int) string {
	if width < 1 {
		width = 1
	}
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(width, filled))
	return barFillStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", width-filled))
}
