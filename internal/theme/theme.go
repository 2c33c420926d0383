// Package theme defines the fixed dark palette the form is drawn with.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is the set of colors the render layer draws with.
type Theme struct {
	Background lipgloss.Color // screen background
	Surface    lipgloss.Color // row background
	Primary    lipgloss.Color // values
	Secondary  lipgloss.Color // labels and section headers
	Accent     lipgloss.Color // cursor, selection, Done control
	Critical   lipgloss.Color // amount per person
}

// Dark is the only theme. It is not user-configurable.
func Dark() Theme {
	return Theme{
		Background: lipgloss.Color("#000000"),
		Surface:    lipgloss.Color("#2A2A2A"),
		Primary:    lipgloss.Color("#FFFFFF"),
		Secondary:  lipgloss.Color("#CCCCCC"),
		Accent:     lipgloss.Color("#FFF2CC"),
		Critical:   lipgloss.Color("#CC0000"),
	}
}
