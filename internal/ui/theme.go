package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bijmantra/wsctl/internal/workspace"
)

type Theme struct {
	Header       lipgloss.Style
	SectionTitle lipgloss.Style
	Accent       lipgloss.Style
	Success      lipgloss.Style
	Warn         lipgloss.Style
	Error        lipgloss.Style
	Muted        lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Header:       lipgloss.NewStyle().Bold(true),
		SectionTitle: lipgloss.NewStyle().Bold(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Warn:         lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// ColorStyle maps a workspace palette key to a foreground style.
func ColorStyle(key string) lipgloss.Style {
	color, exists := workspace.Colors[key]
	if !exists {
		color = workspace.Colors[workspace.DefaultColor]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color.ANSI))
}
