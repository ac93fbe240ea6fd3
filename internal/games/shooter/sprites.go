package shooter

import (
	"github.com/vovakirdan/skyraid/internal/core"
)

// SpriteKind tells the renderer what an entity is.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpriteBoss
	SpriteBomb
	SpriteWeapon
	SpriteExplosion
	SpriteShield
	SpriteGravity
	SpriteItem
)

// SpriteFlags carry the visual state of an entity.
type SpriteFlags uint8

const (
	FlagHyper     SpriteFlags = 1 << iota // Player in hyper
	FlagDisabled                          // Enemy hit by EMP, bomb slowed
	FlagPhase3                            // Boss in its last phase
	FlagGrace                             // Player in its post-hit grace window
	FlagReturning                         // Boomerang on its way back
)

// Sprite is the presentation export of one live entity: its bounds and a
// visual-state tag, never pixels.
type Sprite struct {
	Kind   SpriteKind
	Box    core.Box
	Octant int        // Player facing, 0 = east counter-clockwise
	Frame  int        // Explosion frame, boss phase or look variation
	Flags  SpriteFlags
	Weapon WeaponKind // For SpriteWeapon
	Bomb   BombMode   // For SpriteBomb
	Effect string     // For SpriteItem
	Angle  float64    // Boomerang spin
	Color  core.Color
}

// Has reports whether a flag is set.
func (s Sprite) Has(f SpriteFlags) bool {
	return s.Flags&f != 0
}

// Sprites exports every live entity in drawing order, back to front.
func (g *Game) Sprites() []Sprite {
	var out []Sprite

	for _, f := range g.gravities {
		out = append(out, Sprite{Kind: SpriteGravity, Box: f.Box})
	}
	for _, it := range g.items {
		out = append(out, Sprite{Kind: SpriteItem, Box: it.Box, Effect: it.Effect})
	}
	for _, e := range g.enemies {
		s := Sprite{Kind: SpriteEnemy, Box: e.Box, Frame: e.Look}
		if e.Disabled {
			s.Flags |= FlagDisabled
		}
		out = append(out, s)
	}
	for _, b := range g.bosses {
		s := Sprite{Kind: SpriteBoss, Box: b.Box, Frame: int(b.Phase)}
		if b.Phase == Phase3 {
			s.Flags |= FlagPhase3
		}
		out = append(out, s)
	}
	for _, group := range [][]*Bomb{g.bombs, g.bones} {
		for _, b := range group {
			s := Sprite{Kind: SpriteBomb, Box: b.Box, Bomb: b.Mode, Color: b.Color}
			if b.Inactive {
				s.Flags |= FlagDisabled
			}
			out = append(out, s)
		}
	}
	for _, w := range g.weapons {
		s := Sprite{Kind: SpriteWeapon, Box: w.Box, Weapon: w.Kind, Angle: w.Angle}
		if w.Returning {
			s.Flags |= FlagReturning
		}
		out = append(out, s)
	}
	for _, f := range g.shields {
		out = append(out, Sprite{Kind: SpriteShield, Box: f.Box})
	}
	for _, x := range g.explosions {
		out = append(out, Sprite{Kind: SpriteExplosion, Box: x.Box, Frame: x.Frame()})
	}

	p := Sprite{Kind: SpritePlayer, Box: g.player.Box, Octant: g.player.Octant()}
	if g.player.State == PlayerHyper {
		p.Flags |= FlagHyper
	}
	if g.player.Grace > 0 {
		p.Flags |= FlagGrace
	}
	out = append(out, p)
	return out
}
