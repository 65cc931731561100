package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab3       key.Binding
	Tab4       key.Binding
	SavedOnly  key.Binding
	Save       key.Binding
	Open       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		ScrollUp:   key.NewBinding(key.WithKeys("K", "pgup"), key.WithHelp("K", "scroll preview up")),
		ScrollDown: key.NewBinding(key.WithKeys("J", "pgdown"), key.WithHelp("J", "scroll preview down")),
		NextTab:    key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab", "previous tab")),
		Tab1:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "jump to tab")),
		Tab2:       key.NewBinding(key.WithKeys("2")),
		Tab3:       key.NewBinding(key.WithKeys("3")),
		Tab4:       key.NewBinding(key.WithKeys("4")),
		SavedOnly:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "saved only")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Open:       key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o", "open")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Save, k.SavedOnly, k.NextTab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ScrollUp, k.ScrollDown},
		{k.NextTab, k.PrevTab, k.Tab1, k.SavedOnly},
		{k.Open, k.Save, k.Help, k.Quit},
	}
}
