package tree

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for a tree Model. It mirrors
// bubbles/list's KeyMap shape: one key.Binding field per bound action,
// constructed through DefaultKeyMap and freely overridable per field.
type KeyMap struct {
	LineUp       key.Binding
	LineDown     key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	Expand key.Binding

	// Toggle applies a point-toggle gesture to the node under the cursor.
	Toggle key.Binding
	// RangeSelect applies a range gesture from the current anchor to the
	// node under the cursor.
	RangeSelect key.Binding
	// ExtendUp and ExtendDown move the cursor while preserving the rest of
	// the selection, instead of replacing it.
	ExtendUp   key.Binding
	ExtendDown key.Binding
	// SelectParent selects the nearest visible ancestor of the current
	// selection.
	SelectParent key.Binding
}

// DefaultKeyMap returns a KeyMap with sensible default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LineUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		LineDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "go to bottom"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/collapse"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle selection"),
		),
		RangeSelect: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "select range"),
		),
		ExtendUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑", "extend up"),
		),
		ExtendDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓", "extend down"),
		),
		SelectParent: key.NewBinding(
			key.WithKeys("left", "u"),
			key.WithHelp("←/u", "select parent"),
		),
	}
}
