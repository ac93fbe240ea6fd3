package shooter

import (
	"math"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// PlayerState is the player's invulnerability state.
type PlayerState int

const (
	PlayerNormal PlayerState = iota
	PlayerHyper
)

// Player is the flyer controlled by the user.
type Player struct {
	Entity

	// Facing is the last nonzero movement intent, each component in {-1, 0, 1}.
	Facing core.Vec2
	State  PlayerState
	Hyper  Lifetime
	HP     int
	MaxHP  int
	Grace  int // Ticks left in which hits are ignored

	speed      float64
	boostSpeed float64
	graceTicks int
}

// NewPlayer places a player at the bottom centre of the playfield, facing right.
func NewPlayer(cfg config.PlayerConfig, fieldW, fieldH float64) *Player {
	return &Player{
		Entity: Entity{
			Box:  core.NewBox(fieldW/2, fieldH-cfg.StartOffset, cfg.Width, cfg.Height),
			Life: Forever(),
		},
		Facing:     core.Vec2{X: 1, Y: 0},
		State:      PlayerNormal,
		HP:         cfg.HitPoints,
		MaxHP:      cfg.HitPoints,
		speed:      cfg.Speed,
		boostSpeed: cfg.BoostSpeed,
		graceTicks: cfg.GraceTicks,
	}
}

// intent sums the unit deltas of every held direction.
func intent(in core.InputFrame) core.Vec2 {
	var d core.Vec2
	if in.Has(core.ActionUp) {
		d.Y--
	}
	if in.Has(core.ActionDown) {
		d.Y++
	}
	if in.Has(core.ActionLeft) {
		d.X--
	}
	if in.Has(core.ActionRight) {
		d.X++
	}
	return d
}

// Move applies held directions. A move that would leave the playfield is
// reverted on the offending axis.
func (p *Player) Move(in core.InputFrame, fieldW, fieldH float64) {
	d := intent(in)
	if d.IsZero() {
		return
	}
	p.Facing = d

	speed := p.speed
	if in.Has(core.ActionBoost) {
		speed = p.boostSpeed
	}

	p.Box.Move(d.X*speed, 0)
	if h, _ := core.InBounds(p.Box, fieldW, fieldH); !h {
		p.Box.Move(-d.X*speed, 0)
	}
	p.Box.Move(0, d.Y*speed)
	if _, v := core.InBounds(p.Box, fieldW, fieldH); !v {
		p.Box.Move(0, -d.Y*speed)
	}
}

// Aim returns the facing direction as a unit vector.
func (p *Player) Aim() core.Vec2 {
	angle := math.Atan2(-p.Facing.Y, p.Facing.X)
	return core.Vec2{X: math.Cos(angle), Y: -math.Sin(angle)}
}

// Octant returns the facing as one of eight orientations:
// 0 = east, counting counter-clockwise to 7 = south-east.
func (p *Player) Octant() int {
	angle := math.Atan2(-p.Facing.Y, p.Facing.X)
	o := int(math.Round(angle/(math.Pi/4))) % 8
	if o < 0 {
		o += 8
	}
	return o
}

// EnterHyper switches to hyper for the given ticks. Only a normal player
// can enter hyper.
func (p *Player) EnterHyper(ticks int) bool {
	if p.State != PlayerNormal {
		return false
	}
	p.State = PlayerHyper
	p.Hyper = NewLifetime(ticks)
	return true
}

// Update ages hyper and the grace window.
func (p *Player) Update() {
	if p.State == PlayerHyper && p.Hyper.Tick() {
		p.State = PlayerNormal
	}
	if p.Grace > 0 {
		p.Grace--
	}
}

// Hit applies one unshielded hit. It reports whether the hit was taken and
// whether it was fatal. Hits during the grace window are ignored.
func (p *Player) Hit() (taken, fatal bool) {
	if p.Grace > 0 {
		return false, false
	}
	p.HP--
	if p.HP <= 0 {
		p.HP = 0
		return true, true
	}
	p.Grace = p.graceTicks
	return true, false
}
