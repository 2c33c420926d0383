package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/tipsplitter/internal/form"
	"github.com/mmynk/tipsplitter/internal/models"
)

const (
	title     = "Tip Splitter"
	doneLabel = "Done"
)

func (m *Model) View() string {
	st := m.snap.State
	split := m.snap.Split

	sections := []string{
		m.titleBar(st),

		m.styles.header.Render("Input"),
		m.row("Bill Amount", m.amountValue(st), st.Selected == form.FieldAmount, m.styles.value),
		m.row("Number of People", m.partyValue(st), st.Selected == form.FieldPartySize, m.styles.value),

		m.styles.header.Render("How much tip do you want to leave?"),
		m.tipControl(st),

		m.styles.header.Render("Results"),
		m.row("Tip Amount", m.format.CurrencyAmount(split.TipValue), false, m.styles.value),
		m.row("Grand Total", m.format.CurrencyAmount(split.GrandTotal), false, m.styles.value),
		m.row("Amount Per Person", m.format.CurrencyAmount(split.PerPersonAmount), false, m.styles.perPerson),

		"",
		m.help.View(m.keys.forState(st)),
	}

	return m.styles.frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// titleBar shows the Done control only while the amount is being edited.
func (m *Model) titleBar(st form.State) string {
	if !st.AmountFocused {
		return m.styles.title.Width(m.width).Render(title)
	}
	left := m.styles.title.Render(title)
	right := m.styles.done.Render(doneLabel)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + m.styles.title.Render(strings.Repeat(" ", gap)) + right
}

// row renders a label on the left and a right-aligned value, with a cursor
// mark when the row's control is selected.
func (m *Model) row(label, value string, selected bool, valueStyle lipgloss.Style) string {
	mark := m.styles.surface.Render("  ")
	if selected {
		mark = m.styles.cursor.Render("› ")
	}
	l := m.styles.label.Render(label)
	v := valueStyle.Render(value)
	end := m.styles.surface.Render(" ")

	gap := m.width - lipgloss.Width(mark) - lipgloss.Width(l) - lipgloss.Width(v) - lipgloss.Width(end)
	if gap < 1 {
		gap = 1
	}
	return mark + l + m.styles.surface.Render(strings.Repeat(" ", gap)) + v + end
}

func (m *Model) amountValue(st form.State) string {
	if st.AmountFocused {
		return st.AmountText + "▏"
	}
	return m.format.CurrencyAmount(float64(st.Amount))
}

func (m *Model) partyValue(st form.State) string {
	label := m.format.People(st.PartySize)
	if st.Selected != form.FieldPartySize {
		return label
	}
	var b strings.Builder
	if st.PartySize > models.MinPartySize {
		b.WriteString("‹ ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(label)
	if st.PartySize < models.MaxPartySize {
		b.WriteString(" ›")
	} else {
		b.WriteString("  ")
	}
	return b.String()
}

// tipControl renders the segmented tip selector in display order.
func (m *Model) tipControl(st form.State) string {
	mark := m.styles.surface.Render("  ")
	if st.Selected == form.FieldTipRate {
		mark = m.styles.cursor.Render("› ")
	}

	parts := []string{mark}
	for _, r := range models.TipRates() {
		s := m.styles.segment
		if r == st.TipRate {
			s = m.styles.active
		}
		parts = append(parts, s.Render(m.format.Percent(r)))
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	if pad := m.width - lipgloss.Width(line); pad > 0 {
		line += m.styles.surface.Render(strings.Repeat(" ", pad))
	}
	return line
}
