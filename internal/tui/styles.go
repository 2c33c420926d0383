package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/tipsplitter/internal/theme"
)

type styles struct {
	frame     lipgloss.Style
	title     lipgloss.Style
	header    lipgloss.Style
	surface   lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	cursor    lipgloss.Style
	done      lipgloss.Style
	segment   lipgloss.Style
	active    lipgloss.Style
	perPerson lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	surface := lipgloss.NewStyle().Background(t.Surface)

	return styles{
		frame: lipgloss.NewStyle().
			Background(t.Background).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Primary).
			Bold(true),
		header: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Secondary).
			MarginTop(1),
		surface: surface,
		label:   surface.Foreground(t.Secondary),
		value:   surface.Foreground(t.Primary),
		cursor:  surface.Foreground(t.Accent).Bold(true),
		done: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Accent).
			Bold(true),
		segment: surface.Foreground(t.Secondary).Padding(0, 1),
		active: lipgloss.NewStyle().
			Background(t.Accent).
			Foreground(t.Background).
			Bold(true).
			Padding(0, 1),
		perPerson: surface.Foreground(t.Critical).Bold(true),
	}
}
