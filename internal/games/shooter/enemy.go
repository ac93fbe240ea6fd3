package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// EnemyState is the descent state of an enemy or boss.
type EnemyState int

const (
	Descending EnemyState = iota
	Stopped
)

// IntervalNever suspends bomb drops permanently.
const IntervalNever = -1

// Enemy descends to a random altitude, stops and drops aimed bombs.
type Enemy struct {
	Entity
	Bound    float64
	State    EnemyState
	Interval int
	Disabled bool
	Look     int // Sprite variation
}

// NewEnemy spawns an enemy at a random x on the top edge.
// Speed and interval scaling come from the round tier.
func NewEnemy(cfg config.EnemyConfig, tier config.TierConfig, fieldW float64, rng *SimpleRNG) *Enemy {
	x := float64(rng.Range(0, int(fieldW)))
	interval := int(float64(rng.Range(cfg.MinInterval, cfg.MaxInterval)) * tier.IntervalScale)
	if interval < 1 {
		interval = 1
	}
	return &Enemy{
		Entity: Entity{
			Box:  core.NewBox(x, 0, cfg.Width, cfg.Height),
			Vel:  core.Vec2{Y: tier.EnemySpeed},
			Life: Forever(),
		},
		Bound:    float64(rng.Range(int(cfg.MinBound), int(cfg.MaxBound))),
		State:    Descending,
		Interval: interval,
		Look:     rng.Intn(3),
	}
}

// Update moves the enemy, then stops it once its centre is past its bound.
// Stopping is one-way.
func (e *Enemy) Update() {
	if e.State == Stopped {
		return
	}
	e.Box.Move(e.Vel.X, e.Vel.Y)
	if e.Box.C.Y > e.Bound {
		e.Vel = core.Vec2{}
		e.State = Stopped
	}
}

// ShouldDrop reports whether the enemy drops a bomb on this tick.
func (e *Enemy) ShouldDrop(tick int) bool {
	return e.Alive() && e.State == Stopped && e.Interval > 0 && tick%e.Interval == 0
}

// Disable suspends drops for good without destroying the enemy.
func (e *Enemy) Disable() {
	e.Interval = IntervalNever
	e.Disabled = true
}
