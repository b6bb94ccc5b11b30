package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Toggle   key.Binding
	Timer    key.Binding
	NewHabit key.Binding
	Delete   key.Binding
	Checkin  key.Binding
	Send     key.Binding
	Clear    key.Binding
	Export   key.Binding
	Reset    key.Binding
	Language key.Binding
	Persona  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle done")),
		Timer:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "start/stop timer")),
		NewHabit: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new habit")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete habit")),
		Checkin:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "daily check-in")),
		Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear chat")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export data")),
		Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset app")),
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "cycle language")),
		Persona:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "cycle personality")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Toggle, k.NewHabit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Quit},
		{k.Toggle, k.Timer, k.NewHabit, k.Delete},
		{k.Checkin, k.Send, k.Clear},
		{k.Export, k.Reset, k.Language, k.Persona},
	}
}
