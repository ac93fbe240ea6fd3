package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
)

// RoundPhase is the progression manager's sub-state.
type RoundPhase int

const (
	RoundSteady RoundPhase = iota
	RoundTitle             // Showing the round banner
	RoundSlide             // Sliding the background in
)

// String returns the phase name.
func (p RoundPhase) String() string {
	switch p {
	case RoundTitle:
		return "title"
	case RoundSlide:
		return "slide"
	default:
		return "steady"
	}
}

// Progression tracks the current round and its transition.
type Progression struct {
	dm      *config.DifficultyManager
	enabled bool

	Round int
	Phase RoundPhase
	timer Lifetime

	titleTicks int
	slideTicks int
}

// NewProgression creates a progression manager. A disabled manager stays
// in round 0, steady, forever.
func NewProgression(cfg config.RoundsConfig, enabled bool) *Progression {
	return &Progression{
		dm:         config.NewDifficultyManager(cfg),
		enabled:    enabled,
		Phase:      RoundSteady,
		titleTicks: cfg.TitleTicks,
		slideTicks: cfg.SlideTicks,
	}
}

// Enabled reports whether rounds advance.
func (p *Progression) Enabled() bool {
	return p.enabled
}

// Start enters the banner for the first round.
func (p *Progression) Start() {
	p.Round = 0
	if p.enabled {
		p.enterTitle()
	}
}

func (p *Progression) enterTitle() {
	p.Phase = RoundTitle
	p.timer = NewLifetime(p.titleTicks)
}

// Advance moves to the next round when the score reaches its threshold.
// At most one round is gained per call.
func (p *Progression) Advance(score int) bool {
	if !p.enabled || !p.dm.ShouldAdvance(p.Round, score) {
		return false
	}
	p.Round = p.dm.ClampRound(p.Round + 1)
	p.enterTitle()
	return true
}

// Tick counts down the current transition. It reports whether the
// manager reached steady state on this tick.
func (p *Progression) Tick() bool {
	switch p.Phase {
	case RoundTitle:
		if p.timer.Tick() {
			p.Phase = RoundSlide
			p.timer = NewLifetime(p.slideTicks)
		}
	case RoundSlide:
		if p.timer.Tick() {
			p.Phase = RoundSteady
			return true
		}
	}
	return false
}

// Transitioning reports whether spawning is suspended.
func (p *Progression) Transitioning() bool {
	return p.Phase != RoundSteady
}

// IsFinal reports whether the current round is the last in the table.
func (p *Progression) IsFinal() bool {
	return p.enabled && p.Round == p.dm.LastRound()
}

// Tier returns the difficulty tier of the current round.
func (p *Progression) Tier() config.TierConfig {
	return p.dm.Tier(p.Round)
}

// Items returns the drops scheduled for the current round.
func (p *Progression) Items() []config.ItemDrop {
	return p.dm.ItemsFor(p.Round)
}

// BackgroundOffset returns the vertical background offset: -height while the
// banner shows, moving linearly to 0 over the slide.
func (p *Progression) BackgroundOffset(height float64) float64 {
	switch p.Phase {
	case RoundTitle:
		return -height
	case RoundSlide:
		if p.slideTicks <= 0 {
			return 0
		}
		remaining := float64(p.timer.Left+1) / float64(p.slideTicks)
		return -height * remaining
	default:
		return 0
	}
}

// TimerLeft exposes the transition countdown for snapshots.
func (p *Progression) TimerLeft() int {
	return p.timer.Left
}
