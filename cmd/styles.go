package cmd

import (
	"strings"

	"charm.land/lipgloss/v2"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorDim     = lipgloss.Color("#94A3B8")
	colorGood    = lipgloss.Color("#22C55E")
	colorBad     = lipgloss.Color("#F43F5E")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	goodStyle    = lipgloss.NewStyle().Foreground(colorGood)
	badStyle     = lipgloss.NewStyle().Foreground(colorBad)
)

func rule(width int) string {
	return dimStyle.Render(strings.Repeat("─", width))
}

func heading(s string) string {
	return headingStyle.Render(s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
