package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"memmatch/internal/game"
)

// KeyMap defines the key bindings for every screen
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Title
	Prev  key.Binding
	Next  key.Binding
	Start key.Binding

	// Game
	Flip key.Binding
	Back key.Binding

	// Win
	Again key.Binding
	Home  key.Binding

	// Anywhere
	Sound key.Binding
	Exit  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "easier"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "harder"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Flip: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "flip"),
		),
		Back: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit to title"),
		),
		Again: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "play again"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "esc"),
			key.WithHelp("h/esc", "title"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// bindings is a flat help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// For returns the bindings that apply on the given screen.
func (k KeyMap) For(s game.Screen) help.KeyMap {
	switch s {
	case game.ScreenGame:
		return bindings{k.Up, k.Down, k.Left, k.Right, k.Flip, k.Back, k.Sound, k.Exit}
	case game.ScreenWin:
		return bindings{k.Again, k.Home, k.Sound, k.Exit}
	default:
		return bindings{k.Prev, k.Next, k.Start, k.Sound, k.Exit}
	}
}
