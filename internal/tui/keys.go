package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mmynk/tipsplitter/internal/form"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Edit      key.Binding
	Done      key.Binding
	Delete    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "less"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "more"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "+10 people"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "-10 people"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit amount"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "close keypad"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// forState returns a copy with only the bindings that do something in s
// enabled, for the help footer.
func (k keyMap) forState(s form.State) keyMap {
	editing := s.AmountFocused
	k.Edit.SetEnabled(!editing && s.Selected == form.FieldAmount)
	k.Done.SetEnabled(editing)
	k.Delete.SetEnabled(editing)
	k.Quit.SetEnabled(!editing)
	k.Left.SetEnabled(!editing && s.Selected != form.FieldAmount)
	k.Right.SetEnabled(!editing && s.Selected != form.FieldAmount)
	k.PageUp.SetEnabled(!editing && s.Selected == form.FieldPartySize)
	k.PageDown.SetEnabled(!editing && s.Selected == form.FieldPartySize)
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Edit, k.Done, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Left, k.Right, k.PageUp, k.PageDown},
		{k.Edit, k.Done, k.Delete, k.Quit},
	}
}
