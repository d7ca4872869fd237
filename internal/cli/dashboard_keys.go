package cli

import "github.com/charmbracelet/bubbles/key"

// dashboardKeyMap holds the dashboard bindings. It satisfies help.KeyMap.
type dashboardKeyMap struct {
	Send       key.Binding
	SwitchPane key.Binding
	Up         key.Binding
	Down       key.Binding
	Pick       key.Binding
	Timer      key.Binding
	Reset      key.Binding
	Focus      key.Binding
	Break      key.Binding
	Deep       key.Binding
	Quit       key.Binding
}

func defaultDashboardKeys() dashboardKeyMap {
	return dashboardKeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "prompts/input"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev prompt"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next prompt"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "ask prompt"),
		),
		Timer: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset timer"),
		),
		Focus: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "focus"),
		),
		Break: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "break"),
		),
		Deep: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "deep"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.SwitchPane, k.Pick, k.Timer, k.Focus, k.Break, k.Deep, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.SwitchPane, k.Up, k.Down, k.Pick},
		{k.Timer, k.Reset, k.Focus, k.Break, k.Deep},
		{k.Quit},
	}
}
