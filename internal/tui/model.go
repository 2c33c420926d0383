// Package tui is the terminal rendition of the tip form. It feeds key
// presses into the form store as events and re-renders from the snapshot
// the store publishes after every update.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/tipsplitter/internal/form"
	"github.com/mmynk/tipsplitter/internal/format"
	"github.com/mmynk/tipsplitter/internal/theme"
)

const (
	defaultWidth = 48
	minWidth     = 36
	maxWidth     = 64

	// maxAmountLen bounds the amount field's text.
	maxAmountLen = 12

	pageStep = 10
)

// Model is the bubbletea model for the form.
type Model struct {
	store  *form.Store
	format *format.Formatter
	styles styles
	keys   keyMap
	help   help.Model

	snap        form.Snapshot
	unsubscribe func()
	width       int
}

// New binds a model to store. The theme is fixed for the model's lifetime.
func New(store *form.Store, f *format.Formatter, t theme.Theme) *Model {
	m := &Model{
		store:  store,
		format: f,
		styles: newStyles(t),
		keys:   defaultKeyMap(),
		help:   help.New(),
		snap:   store.Snapshot(),
		width:  defaultWidth,
	}
	m.help.Styles.ShortKey = m.help.Styles.ShortKey.Foreground(t.Accent)
	m.help.Styles.ShortDesc = m.help.Styles.ShortDesc.Foreground(t.Secondary)
	m.unsubscribe = store.Subscribe(func(s form.Snapshot) {
		m.snap = s
	})
	return m
}

// Close detaches the model from its store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = clampWidth(msg.Width - 4)
		m.help.Width = m.width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	st := m.snap.State
	if st.AmountFocused {
		return m.handleEditingKey(msg, st)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(st.Selected, -1)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(st.Selected, 1)
		return nil
	}

	switch st.Selected {
	case form.FieldAmount:
		switch {
		case key.Matches(msg, m.keys.Edit):
			m.store.Dispatch(form.AmountFocused{})
		case key.Matches(msg, m.keys.Delete):
			m.editAmount(st.AmountText, msg)
		case msg.Type == tea.KeyRunes:
			m.editAmount(st.AmountText, msg)
		}
	case form.FieldPartySize:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.store.Dispatch(form.PartySizeSelected{Size: form.PrevPartySize(st.PartySize, 1)})
		case key.Matches(msg, m.keys.Right):
			m.store.Dispatch(form.PartySizeSelected{Size: form.NextPartySize(st.PartySize, 1)})
		case key.Matches(msg, m.keys.PageDown):
			m.store.Dispatch(form.PartySizeSelected{Size: form.PrevPartySize(st.PartySize, pageStep)})
		case key.Matches(msg, m.keys.PageUp):
			m.store.Dispatch(form.PartySizeSelected{Size: form.NextPartySize(st.PartySize, pageStep)})
		}
	case form.FieldTipRate:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.store.Dispatch(form.TipRateSelected{Rate: form.PrevTipRate(st.TipRate)})
		case key.Matches(msg, m.keys.Right):
			m.store.Dispatch(form.TipRateSelected{Rate: form.NextTipRate(st.TipRate)})
		}
	}
	return nil
}

func (m *Model) handleEditingKey(msg tea.KeyMsg, st form.State) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Done):
		m.store.Dispatch(form.Dismissed{})
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(st.Selected, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(st.Selected, 1)
	case key.Matches(msg, m.keys.Delete), msg.Type == tea.KeyRunes:
		m.editAmount(st.AmountText, msg)
	}
	return nil
}

// editAmount applies a backspace or typed runes to the amount text. Only
// digits and separators are accepted. Keystrokes allow a single separator;
// pasted text keeps all of its separators and calculator.ParseAmount
// decides which one is the decimal point.
func (m *Model) editAmount(text string, msg tea.KeyMsg) {
	runes := []rune(text)
	if msg.Type == tea.KeyBackspace {
		if len(runes) == 0 {
			return
		}
		m.store.Dispatch(form.AmountEdited{Text: string(runes[:len(runes)-1])})
		return
	}

	pasted := msg.Paste || len(msg.Runes) > 1
	changed := false
	for _, r := range msg.Runes {
		if len(runes) >= maxAmountLen {
			break
		}
		switch {
		case r >= '0' && r <= '9':
		case (r == '.' || r == ',') && (pasted || !hasSeparator(runes)):
		default:
			continue
		}
		runes = append(runes, r)
		changed = true
	}
	if changed {
		m.store.Dispatch(form.AmountEdited{Text: string(runes)})
	}
}

func (m *Model) moveCursor(from form.Field, delta int) {
	n := len(form.Fields)
	to := form.Fields[(int(from)+delta+n)%n]
	m.store.Dispatch(form.FieldSelected{Field: to})
}

func (m *Model) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

func hasSeparator(runes []rune) bool {
	for _, r := range runes {
		if r == '.' || r == ',' {
			return true
		}
	}
	return false
}

func clampWidth(w int) int {
	switch {
	case w < minWidth:
		return minWidth
	case w > maxWidth:
		return maxWidth
	default:
		return w
	}
}
