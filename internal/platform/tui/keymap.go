package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/core"
)

// KeyMap defines the key bindings for play and menus.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	EMP        key.Binding
	Shield     key.Binding
	Gravity    key.Binding
	Hyper      key.Binding
	Summon     key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Help       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Fire, k.EMP, k.Shield, k.Gravity, k.Hyper, k.Pause, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.EMP, k.Shield, k.Gravity, k.Hyper},
		{k.Summon, k.Confirm, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
// Shifted directions move at boost speed.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "shift+up", "W"),
			key.WithHelp("↑/w", "move (shift: boost)"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "shift+down", "S"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "shift+left", "A"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "shift+right", "D"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "fire"),
		),
		EMP: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "emp"),
		),
		Shield: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "shield"),
		),
		Gravity: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "gravity"),
		),
		Hyper: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hyper"),
		),
		Summon: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "summon boss"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// isBoosted reports whether a movement key was pressed with shift.
func isBoosted(msg tea.KeyMsg) bool {
	s := msg.String()
	if strings.HasPrefix(s, "shift+") {
		return true
	}
	return s == "W" || s == "A" || s == "S" || s == "D"
}

// MapKey translates a key message to a game action.
// Boost is true for shifted movement keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, boost bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, isBoosted(msg)
	case key.Matches(msg, k.Down):
		return core.ActionDown, isBoosted(msg)
	case key.Matches(msg, k.Left):
		return core.ActionLeft, isBoosted(msg)
	case key.Matches(msg, k.Right):
		return core.ActionRight, isBoosted(msg)
	case key.Matches(msg, k.Fire):
		return core.ActionFire, false
	case key.Matches(msg, k.EMP):
		return core.ActionEMP, false
	case key.Matches(msg, k.Shield):
		return core.ActionShield, false
	case key.Matches(msg, k.Gravity):
		return core.ActionGravity, false
	case key.Matches(msg, k.Hyper):
		return core.ActionHyper, false
	case key.Matches(msg, k.Summon):
		return core.ActionSummon, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (k KeyMap) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
