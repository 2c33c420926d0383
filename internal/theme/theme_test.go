package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDarkPalette(t *testing.T) {
	th := Dark()

	assert.Equal(t, lipgloss.Color("#000000"), th.Background)
	assert.Equal(t, lipgloss.Color("#2A2A2A"), th.Surface)
	assert.Equal(t, lipgloss.Color("#CCCCCC"), th.Secondary)
	assert.Equal(t, lipgloss.Color("#FFF2CC"), th.Accent)
	assert.Equal(t, lipgloss.Color("#CC0000"), th.Critical)
}

func TestDarkReturnsIndependentValues(t *testing.T) {
	a := Dark()
	a.Critical = lipgloss.Color("#00FF00")

	assert.Equal(t, lipgloss.Color("#CC0000"), Dark().Critical)
}
