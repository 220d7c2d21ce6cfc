package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the pickup screen. Letter bindings only apply
// at the photo and signature steps; at the identity step letters are typed.
type KeyMap struct {
	Next        key.Binding
	Back        key.Binding
	SwitchField key.Binding

	Capture key.Binding
	Retake  key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pen   key.Binding
	Clear key.Binding

	Cancel key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the binding set used by the pickup screen.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "continue"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	SwitchField: key.NewBinding(
		key.WithKeys("tab", "shift+tab", "up", "down"),
		key.WithHelp("tab", "next field"),
	),
	Capture: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "capture"),
	),
	Retake: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retake"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("→", "right"),
	),
	Pen: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "pen up/down"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("C-x", "cancel pickup"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
