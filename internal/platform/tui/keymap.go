package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Undo    key.Binding
	NewGame key.Binding
	Save    key.Binding
	Load    key.Binding
	Help    key.Binding
	Quit    key.Binding

	// Active only while the play-again prompt is open.
	Confirm key.Binding
	Decline key.Binding
}

// DefaultKeyMap returns the default bindings: WASD and arrows to move.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Load: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "load"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "play again"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Undo, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.NewGame, k.Save, k.Load},
		{k.Help, k.Quit},
	}
}

// promptHelp is shown in place of the regular help while a game-over prompt is open.
type promptHelp struct{ k KeyMap }

func (p promptHelp) ShortHelp() []key.Binding {
	return []key.Binding{p.k.Confirm, p.k.Decline, p.k.Undo}
}

func (p promptHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}

// Action translates a key to a game action. While prompting only the
// prompt answers, undo and quit are recognized, so n declines instead of
// starting a new game.
func (k KeyMap) Action(msg tea.KeyMsg, prompting bool) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	if prompting {
		switch {
		case key.Matches(msg, k.Confirm):
			return core.ActionConfirm
		case key.Matches(msg, k.Decline):
			return core.ActionDecline
		case key.Matches(msg, k.Undo):
			return core.ActionUndo
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame
	case key.Matches(msg, k.Save):
		return core.ActionSave
	case key.Matches(msg, k.Load):
		return core.ActionLoad
	}
	return core.ActionNone
}
