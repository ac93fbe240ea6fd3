package shooter

import (
	"math"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Explosion is a purely visual effect left by destroyed enemies and bombs.
type Explosion struct {
	Entity
}

// NewExplosion creates an explosion centred on a destroyed entity.
func NewExplosion(at core.Box, ticks int) *Explosion {
	return &Explosion{Entity: Entity{
		Box:  core.NewBox(at.C.X, at.C.Y, at.W, at.H),
		Life: NewLifetime(ticks),
	}}
}

// Update ages the explosion.
func (x *Explosion) Update() {
	x.Age()
}

// Frame alternates between two frames every ten ticks.
func (x *Explosion) Frame() int {
	left := x.Life.Left
	if left < 0 {
		left = 0
	}
	return left / 10 % 2
}

// FieldKind tags a friendly defensive field.
type FieldKind int

const (
	FieldShield FieldKind = iota
	FieldGravity
)

// Field is a timed friendly hazard or barrier.
type Field struct {
	Entity
	Kind FieldKind
}

// Update ages the field.
func (f *Field) Update() {
	f.Age()
}

// NewGravity covers the whole playfield.
func NewGravity(cfg config.AbilitiesConfig, fieldW, fieldH float64) *Field {
	return &Field{
		Entity: Entity{
			Box:  core.NewBox(fieldW/2, fieldH/2, fieldW, fieldH),
			Life: NewLifetime(cfg.GravityTicks),
		},
		Kind: FieldGravity,
	}
}

// NewShield places a barrier on the player's facing side. The barrier is
// ShieldWidth thick and twice the player's height long, turned to face
// outwards; diagonal facings use its rotated bounding box.
func NewShield(p *Player, cfg config.AbilitiesConfig) *Field {
	thick, long := cfg.ShieldWidth, 2*p.Box.H
	bw := p.Box.W
	fx, fy := p.Facing.X, p.Facing.Y

	var w, h, dx, dy float64
	switch {
	case fy == 0: // east or west
		w, h = thick, long
		dx = fx * bw
	case fx == 0: // north or south
		w, h = long, thick
		dy = fy * bw
	default:
		side := (thick + long) / math.Sqrt2
		w, h = side, side
		dx, dy = fx*bw/2, fy*bw/2
	}

	return &Field{
		Entity: Entity{
			Box:  core.NewBox(p.Box.C.X+dx, p.Box.C.Y+dy, w, h),
			Life: NewLifetime(cfg.ShieldTicks),
		},
		Kind: FieldShield,
	}
}

// ItemSize is the pickup box size.
const ItemSize = 32

// Item is a pickup granting a weapon effect exactly once.
type Item struct {
	Entity
	Effect string
}

// NewItem places an item; items never expire on their own.
func NewItem(drop config.ItemDrop) *Item {
	return &Item{
		Entity: Entity{
			Box:  core.NewBox(drop.X, drop.Y, ItemSize, ItemSize),
			Life: Forever(),
		},
		Effect: drop.Effect,
	}
}
