package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Cancel     key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Yank       key.Binding
	Copy       key.Binding
	ExportPNG  key.Binding
	ExportText key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel connection"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k", "K", "shift+up"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "J", "shift+down"),
		key.WithHelp("↓/j", "scroll down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h", "H", "shift+left"),
		key.WithHelp("←/h", "scroll left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l", "L", "shift+right"),
		key.WithHelp("→/l", "scroll right"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy connections"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy selection"),
	),
	ExportPNG: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "export png"),
	),
	ExportText: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "export txt"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Yank, k.ExportPNG, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown},
		{k.Cancel, k.Yank, k.Copy},
		{k.ExportPNG, k.ExportText, k.Help, k.Quit},
	}
}

