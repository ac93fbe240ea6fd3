package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// BombMode selects a hostile projectile's trajectory and vulnerability.
type BombMode int

const (
	BombAimed   BombMode = iota // Round bomb aimed at the player at spawn time
	BombBeam                    // Boss beam, aimed, bounces off the side walls
	BombBone                    // Aimed, bounces, immune to offensive weapons
	BombScatter                 // One of five fixed directions, bounces
)

// scatterDirections are the fixed directions of scatter bombs.
var scatterDirections = []core.Vec2{
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
}

// bombColors are the colours of aimed bombs.
var bombColors = []core.Color{
	core.ColorRed, core.ColorGreen, core.ColorBlue,
	core.ColorYellow, core.ColorMagenta, core.ColorCyan,
}

// Bomb is a hostile projectile.
type Bomb struct {
	Entity
	Mode     BombMode
	Dir      core.Vec2
	Speed    float64
	Hit      bool // False when offensive weapons cannot destroy it
	Inactive bool
	Radius   int
	Color    core.Color
}

// NewBomb drops a bomb from the dropper's lower edge. The direction is
// fixed at spawn and never re-aimed.
func NewBomb(mode BombMode, dropper, target core.Box, speed float64, cfg config.BombConfig, rng *SimpleRNG) *Bomb {
	b := &Bomb{
		Mode:  mode,
		Dir:   core.DirectionTo(dropper, target),
		Speed: speed,
		Hit:   mode != BombBone,
		Color: core.ColorBrightRed,
	}

	var size float64
	switch mode {
	case BombAimed:
		b.Radius = rng.Range(cfg.MinRadius, cfg.MaxRadius)
		b.Color = bombColors[rng.Intn(len(bombColors))]
		size = float64(2 * b.Radius)
	case BombBone:
		size = cfg.BoneSize
		b.Color = core.ColorBrightWhite
	case BombScatter:
		b.Dir = scatterDirections[rng.Intn(len(scatterDirections))]
		size = cfg.BeamSize
	default:
		size = cfg.BeamSize
	}

	b.Entity = Entity{
		Box:  core.NewBox(dropper.C.X, dropper.C.Y+dropper.H/2, size, size),
		Life: NewLifetime(cfg.MaxTicks),
	}
	b.Vel = b.Dir.Scale(speed)
	return b
}

// Bounces reports whether the bomb reflects off the side walls.
func (b *Bomb) Bounces() bool {
	return b.Mode != BombAimed
}

// Update moves the bomb and retires it when it leaves the playfield
// vertically or its tick budget runs out.
func (b *Bomb) Update(fieldW, fieldH float64) {
	b.Box.Move(b.Vel.X, b.Vel.Y)

	if b.Bounces() {
		if x := core.ClampF(b.Box.C.X, 0, fieldW); x != b.Box.C.X {
			b.Box.C.X = x
			b.Dir.X = -b.Dir.X
		}
		b.Vel = b.Dir.Scale(b.Speed)
	}

	if _, v := core.InBounds(b.Box, fieldW, fieldH); !v {
		b.Kill()
		return
	}
	b.Age()
}

// Slow halves the bomb's speed and marks it inactive.
func (b *Bomb) Slow() {
	b.Speed /= 2
	b.Vel = b.Dir.Scale(b.Speed)
	b.Inactive = true
}
