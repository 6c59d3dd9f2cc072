package operations

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Process  key.Binding
	Submit   key.Binding
	Logs     key.Binding
	Export   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Next:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
	Process:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "process comments")),
	Submit:   key.NewBinding(key.WithKeys("ctrl+s", "enter"), key.WithHelp("ctrl+s", "submit answer")),
	Logs:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "get logs")),
	Export:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "compose log file")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Process, k.Submit, k.Logs, k.Export, k.Back}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Process, k.Submit, k.Logs, k.Export},
		{k.Next, k.PageUp, k.PageDown, k.Back, k.Quit},
	}
}
