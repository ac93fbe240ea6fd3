package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// BossPhase is the boss's behaviour mode, driven by remaining HP.
type BossPhase int

const (
	Phase1 BossPhase = iota
	Phase2
	Phase3
)

// String returns the phase name.
func (p BossPhase) String() string {
	switch p {
	case Phase1:
		return "phase1"
	case Phase2:
		return "phase2"
	default:
		return "phase3"
	}
}

// Boss is the final encounter.
type Boss struct {
	Entity
	HP    int
	MaxHP int
	Phase BossPhase
	State EnemyState
	Bound float64

	cfg config.BossConfig
}

// NewBoss spawns the boss at the top centre.
func NewBoss(cfg config.BossConfig, fieldW float64) *Boss {
	return &Boss{
		Entity: Entity{
			Box:  core.NewBox(fieldW/2, 0, cfg.Width, cfg.Height),
			Vel:  core.Vec2{Y: cfg.DescentSpeed},
			Life: Forever(),
		},
		HP:    cfg.HP,
		MaxHP: cfg.HP,
		Phase: Phase1,
		State: Descending,
		Bound: cfg.StopAltitude,
		cfg:   cfg,
	}
}

// phaseFor maps HP onto a phase: phase3 at or below a quarter of max,
// phase2 at or below half.
func phaseFor(hp, maxHP int) BossPhase {
	switch {
	case 4*hp <= maxHP:
		return Phase3
	case 2*hp <= maxHP:
		return Phase2
	default:
		return Phase1
	}
}

// Damage removes HP and reports whether the phase changed.
// Phases never move backwards. The boss dies at zero HP.
func (b *Boss) Damage(n int) bool {
	b.HP -= n
	if b.HP <= 0 {
		b.HP = 0
		b.Kill()
	}
	next := phaseFor(b.HP, b.MaxHP)
	if next > b.Phase {
		b.Phase = next
		return true
	}
	return false
}

// DropInterval returns the ticks between regular drops in the current phase.
func (b *Boss) DropInterval() int {
	idx := int(b.Phase)
	if idx >= len(b.cfg.DropIntervals) {
		idx = len(b.cfg.DropIntervals) - 1
	}
	if idx < 0 || b.cfg.DropIntervals[idx] < 1 {
		return 1
	}
	return b.cfg.DropIntervals[idx]
}

// DropMode returns the bomb mode of regular drops.
func (b *Boss) DropMode() BombMode {
	if b.Phase == Phase3 {
		return BombScatter
	}
	return BombBeam
}

// ShouldDrop reports whether a regular drop happens on this tick.
func (b *Boss) ShouldDrop(tick int) bool {
	return b.Alive() && tick%b.DropInterval() == 0
}

// ShouldDropBone reports whether the independent bone timer fires on this tick.
func (b *Boss) ShouldDropBone(tick int) bool {
	if !b.Alive() || b.Phase == Phase1 || b.cfg.BoneInterval < 1 {
		return false
	}
	return tick%b.cfg.BoneInterval == 0
}

// Update moves the boss with a random walk confined per phase.
func (b *Boss) Update(fieldW, fieldH float64, rng *SimpleRNG) {
	b.Vel.X += rng.Sign() * b.cfg.Accel
	b.Box.Move(b.Vel.X, b.Vel.Y)

	b.reflectSides(fieldW)

	if b.Phase == Phase1 {
		if b.State == Descending && b.Box.C.Y > b.Bound {
			b.Vel.Y = 0
			b.State = Stopped
		}
		return
	}

	b.State = Stopped
	b.Vel.Y += rng.Sign() * b.cfg.Accel
	if b.Box.Top() < 0 {
		b.Box.SetTop(0)
		b.Vel.Y = b.cfg.EdgeSpeed
	}
	if limit := fieldH * b.cfg.PatrolBand; b.Box.Bottom() > limit {
		b.Box.SetBottom(limit)
		b.Vel.Y = -b.cfg.EdgeSpeed
	}
	b.Vel.X = core.ClampF(b.Vel.X, -b.cfg.SpeedCap, b.cfg.SpeedCap)
	b.Vel.Y = core.ClampF(b.Vel.Y, -b.cfg.SpeedCap, b.cfg.SpeedCap)
}

func (b *Boss) reflectSides(fieldW float64) {
	if b.Box.Left() < 0 {
		b.Box.SetLeft(0)
		b.Vel.X = b.cfg.EdgeSpeed
	}
	if b.Box.Right() > fieldW {
		b.Box.SetRight(fieldW)
		b.Vel.X = -b.cfg.EdgeSpeed
	}
}
