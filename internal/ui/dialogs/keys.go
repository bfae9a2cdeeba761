package dialogs

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// KeyMap defines keyboard bindings shared by dialogs.
type KeyMap struct {
	Close   key.Binding
	Confirm key.Binding
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
}

// DefaultKeyMap returns the default dialog key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Close: key.NewBinding(
			key.WithKeys("esc", "alt+esc"),
			key.WithHelp("esc", "close"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
	}
}

// Keys is the shared dialog key map.
var Keys = DefaultKeyMap()

// Close returns a command that closes the top dialog.
func Close() tea.Msg {
	return CloseDialogMsg{}
}

// Emit returns a command that sends msg.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Center returns the row and column that center a w×h box in the window.
func Center(windowWidth, windowHeight, w, h int) (int, int) {
	return max((windowHeight-h)/2, 0), max((windowWidth-w)/2, 0)
}

// Size clamps a preferred dialog size to the window, leaving a margin.
func Size(windowWidth, windowHeight, width, height int) (int, int) {
	width = min(width, max(windowWidth-4, 10))
	height = min(height, max(windowHeight-2, 3))
	return width, height
}
