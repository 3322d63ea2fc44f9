package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings for the application.
type keyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Escape      key.Binding
	SelectFile  key.Binding
	RefreshNow  key.Binding
	FontBigger  key.Binding
	FontSmaller key.Binding
	NextBg      key.Binding
	PrevBg      key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		SelectFile: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "select log file"),
		),
		RefreshNow: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh now"),
		),
		FontBigger: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger font"),
		),
		FontSmaller: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller font"),
		),
		NextBg: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "next background"),
		),
		PrevBg: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "previous background"),
		),
	}
}

// helpEntries returns the bindings in help-screen order.
func (k keyMap) helpEntries() []key.Binding {
	return []key.Binding{
		k.SelectFile,
		k.RefreshNow,
		k.FontBigger,
		k.FontSmaller,
		k.NextBg,
		k.PrevBg,
		k.Help,
		k.Quit,
	}
}
