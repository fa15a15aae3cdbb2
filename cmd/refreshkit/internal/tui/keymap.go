package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo key bindings.
type keyMap struct {
	Pull    key.Binding
	Push    key.Binding
	Release key.Binding
	Tap     key.Binding
	Refresh key.Binding
	Fail    key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Pull: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "drag down"),
		),
		Push: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "drag up"),
		),
		Release: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "release"),
		),
		Tap: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tap footer"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Fail: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fail next refresh"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset footer"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pull, k.Push, k.Release, k.Tap, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pull, k.Push, k.Release},
		{k.Tap, k.Refresh, k.Fail, k.Reset},
		{k.Help, k.Quit},
	}
}
