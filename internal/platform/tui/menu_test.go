package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	tests := []struct {
		msg  tea.KeyMsg
		want config.DifficultyPreset
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, config.DifficultyEasy},
		{tea.KeyMsg{Type: tea.KeyRight}, config.DifficultyHard},
		{tea.KeyMsg{Type: tea.KeyRight}, config.DifficultyFixed},
		{tea.KeyMsg{Type: tea.KeyRight}, config.DifficultyNormal},
		{tea.KeyMsg{Type: tea.KeyLeft}, config.DifficultyFixed},
	}

	for i, tt := range tests {
		next, _ := m.Update(tt.msg)
		m = next.(MenuModel)
		if got := m.Difficulty(); got != tt.want {
			t.Errorf("step %d: Difficulty() = %q, expected %q", i, got, tt.want)
		}
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(MenuModel)

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(core.DefaultConfig(), nil)

	// Move the cursor onto the stub entry
	for _, info := range registry.List() {
		if info.ID == "stub" {
			break
		}
		next, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
		s = next.(SessionModel)
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.gameModel == nil {
		t.Fatal("selecting a variant did not start a game")
	}
	if !s.gameModel.embedded {
		t.Error("session game should be embedded")
	}

	// Back is accepted once the game is paused
	g := s.gameModel.game.(*stubGame)
	g.state = core.GameState{Paused: true}
	next, _ = s.Update(TickMsg{Gen: s.gameModel.gen})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)

	if s.gameModel != nil {
		t.Error("back did not return to the menu")
	}
	if s.quitting {
		t.Error("back should not end the session")
	}
}
