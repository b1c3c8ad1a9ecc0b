// Package common provides the probe's shared infrastructure: configuration
// loading, logging setup, terminal display helpers, and process plumbing.
package common

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	PrimaryColor    = lipgloss.Color("#7D56F4") // Purple
	SuccessColor    = lipgloss.Color("#00FF00") // Bright Green
	WarningColor    = lipgloss.Color("#F5B041") // Yellow
	ErrorColor      = lipgloss.Color("#FF0000") // Bright Red
	NormalTextColor = lipgloss.Color("#FFFFFF") // White
)

// DisplayBox wraps content in a rounded-border box with a styled title.
func DisplayBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(0).
		Width(80)

	titleStyle := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	return boxStyle.Render(titleStyle.Render(title) + "\n\n" + content)
}

// SectionTitle formats a section title
func SectionTitle(title string) string {
	sectionStyle := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	return sectionStyle.Render(title)
}

// ThresholdListItem formats one queue line of the detail view, coloring the
// observed value by the state it produced.
func ThresholdListItem(label string, value string, limits string, state string) string {
	valueStyle := lipgloss.NewStyle().Foreground(SuccessColor)
	switch state {
	case "CRITICAL":
		valueStyle = lipgloss.NewStyle().Foreground(ErrorColor)
	case "WARNING":
		valueStyle = lipgloss.NewStyle().Foreground(WarningColor)
	}

	contentStyle := lipgloss.NewStyle().
		Align(lipgloss.Left).
		PaddingLeft(8)

	itemStyle := lipgloss.NewStyle().
		Foreground(NormalTextColor)

	line := fmt.Sprintf("•  %-20s  %s %s",
		label,
		valueStyle.Render(value),
		limits)

	return contentStyle.Render(itemStyle.Render(line))
}
