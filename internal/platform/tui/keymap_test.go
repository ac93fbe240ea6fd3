package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		boost  bool
	}{
		{"w", runes("w"), core.ActionUp, false},
		{"W", runes("W"), core.ActionUp, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"shift up", tea.KeyMsg{Type: tea.KeyShiftUp}, core.ActionUp, true},
		{"a", runes("a"), core.ActionLeft, false},
		{"shift right", tea.KeyMsg{Type: tea.KeyShiftRight}, core.ActionRight, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionFire, false},
		{"e", runes("e"), core.ActionEMP, false},
		{"f", runes("f"), core.ActionShield, false},
		{"g", runes("g"), core.ActionGravity, false},
		{"h", runes("h"), core.ActionHyper, false},
		{"o", runes("o"), core.ActionSummon, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runes("p"), core.ActionPause, false},
		{"r", runes("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runes("q"), core.ActionQuit, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, false},
		{"unbound", runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, boost := keys.MapKey(tt.msg)
			if action != tt.action || boost != tt.boost {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, boost, tt.action, tt.boost)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runes("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := keys.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tt.msg.String(), got, tt.want)
		}
	}
}
