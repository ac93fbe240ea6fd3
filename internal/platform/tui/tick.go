// Package tui provides the Bubble Tea integration for skyraid.
// It handles the terminal UI loop, input mapping, the variant menu and
// the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the model whose loop scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// generations hands out tick loop IDs, so a tick left over from a finished
// game never drives the next one.
var generations atomic.Uint64

func nextGeneration() uint64 {
	return generations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
