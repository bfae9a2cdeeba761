package ui

import "charm.land/bubbles/v2/key"

// KeyMap defines all global keybindings.
type KeyMap struct {
	Quit      key.Binding
	Left      key.Binding
	Right     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	ScaleUp   key.Binding
	ScaleDown key.Binding
	Refresh   key.Binding
	Export    key.Binding
	Filter    key.Binding
	Theme     key.Binding
	Style     key.Binding
	Custom    key.Binding
	Import    key.Binding
	ParamDown key.Binding
	ParamUp   key.Binding
	AltDown   key.Binding
	AltUp     key.Binding
	Toggle    key.Binding
	Copy      key.Binding
	Inspect   key.Binding
	Console   key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous chart"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next chart"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next chart"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous chart"),
		),
		ScaleUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "scale up"),
		),
		ScaleDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "scale down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f", "/"),
			key.WithHelp("f", "filter"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Style: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "style"),
		),
		Custom: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "custom data"),
		),
		Import: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "import"),
		),
		ParamDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "first option −"),
		),
		ParamUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "first option +"),
		),
		AltDown: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "second option −"),
		),
		AltUp: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "second option +"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("space"),
			key.WithHelp("space", "toggle option"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy scene"),
		),
		Inspect: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inspect"),
		),
		Console: key.NewBinding(
			key.WithKeys("~", "f12"),
			key.WithHelp("~", "dev console"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns keybindings to show in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScaleUp, k.ScaleDown, k.Refresh, k.Filter, k.Theme, k.Style, k.Custom, k.Import, k.Export, k.Help, k.Quit}
}

// FullHelp returns keybindings grouped for the help dialog.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Tab, k.ShiftTab},
		{k.ScaleUp, k.ScaleDown, k.Refresh, k.Filter, k.Theme},
		{k.ParamDown, k.ParamUp, k.AltDown, k.AltUp, k.Toggle, k.Custom, k.Inspect, k.Copy},
		{k.Style, k.Import, k.Export},
		{k.Console, k.Help, k.Quit},
	}
}
