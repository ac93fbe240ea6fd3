package shooter

import (
	"math"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// WeaponKind tags a friendly weapon instance.
type WeaponKind int

const (
	WeaponBeam WeaponKind = iota
	WeaponStraight
	WeaponPenetrating
	WeaponSatellite
	WeaponSatelliteShooter
	WeaponSubShot
	WeaponSlash
	WeaponBoomerang
	weaponKindCount
)

var weaponNames = [weaponKindCount]string{
	WeaponBeam:             "beam",
	WeaponStraight:         "straight",
	WeaponPenetrating:      "penetrating",
	WeaponSatellite:        "satellite",
	WeaponSatelliteShooter: "satellite-shooter",
	WeaponSubShot:          "sub-shot",
	WeaponSlash:            "slash",
	WeaponBoomerang:        "boomerang",
}

// String returns the weapon kind name.
func (k WeaponKind) String() string {
	if k < 0 || k >= weaponKindCount {
		return "unknown"
	}
	return weaponNames[k]
}

// Target is the hostile group a weapon collides with.
type Target int

const (
	TargetEnemy Target = iota
	TargetBomb
	TargetBone
	TargetBoss
	targetCount
)

// ShotMaxTicks bounds the life of travelling shots that never leave the field.
const ShotMaxTicks = 300

// Weapon is a friendly projectile or field.
type Weapon struct {
	Entity
	Kind WeaponKind

	Speed     float64
	Angle     float64 // Orbit angle for satellites, spin for boomerangs
	Travelled float64
	Returning bool
	Timer     int // Sub-shot timer of shooter satellites
	BossCD    int // Ticks until this instance may damage the boss again
}

// moveContext is what a weapon may look at while moving.
type moveContext struct {
	player *Player
	fieldW float64
	fieldH float64
	cfg    *config.WeaponsConfig
}

// behaviour is the capability set of a weapon kind.
type behaviour struct {
	move       func(w *Weapon, ctx moveContext)
	exitsField bool // Removed as soon as it leaves the playfield
	consumedBy [targetCount]bool
}

var (
	consumedByAll  = [targetCount]bool{true, true, true, true}
	consumedByNone = [targetCount]bool{}
)

var behaviours = [weaponKindCount]behaviour{
	WeaponBeam:     {move: moveLinear, exitsField: true, consumedBy: consumedByAll},
	WeaponStraight: {move: moveLinear, exitsField: true, consumedBy: consumedByAll},
	WeaponPenetrating: {move: moveLinear, exitsField: true, consumedBy: [targetCount]bool{
		TargetBone: true, TargetBoss: true,
	}},
	WeaponSatellite: {move: moveOrbit, consumedBy: [targetCount]bool{
		TargetBomb: true, TargetBone: true,
	}},
	WeaponSatelliteShooter: {move: moveOrbit, consumedBy: [targetCount]bool{
		TargetBomb: true, TargetBone: true,
	}},
	WeaponSubShot:   {move: moveLinear, exitsField: true, consumedBy: consumedByAll},
	WeaponSlash:     {move: moveStatic, consumedBy: consumedByAll},
	WeaponBoomerang: {move: moveBoomerang, consumedBy: consumedByNone},
}

// ConsumedBy reports whether contact with the target destroys the weapon.
func (w *Weapon) ConsumedBy(t Target) bool {
	return behaviours[w.Kind].consumedBy[t]
}

// IsSatellite reports whether the weapon orbits the player.
func (w *Weapon) IsSatellite() bool {
	return w.Kind == WeaponSatellite || w.Kind == WeaponSatelliteShooter
}

// Update moves the weapon by its kind's rule and retires it when it
// leaves the playfield (for kinds that do) or its lifetime lapses.
func (w *Weapon) Update(ctx moveContext) {
	if w.BossCD > 0 {
		w.BossCD--
	}
	b := behaviours[w.Kind]
	b.move(w, ctx)
	if w.Dead {
		return
	}
	if b.exitsField {
		if h, v := core.InBounds(w.Box, ctx.fieldW, ctx.fieldH); !h || !v {
			w.Kill()
			return
		}
	}
	w.Age()
}

func moveLinear(w *Weapon, _ moveContext) {
	w.Box.Move(w.Vel.X, w.Vel.Y)
}

func moveStatic(*Weapon, moveContext) {}

func moveOrbit(w *Weapon, ctx moveContext) {
	sat := ctx.cfg.Satellite
	w.Angle = math.Mod(w.Angle+sat.AngularSpeed, 2*math.Pi)
	w.Box.C = orbitPoint(ctx.player.Box.C, sat.Radius, w.Angle)
}

func orbitPoint(center core.Vec2, radius, angle float64) core.Vec2 {
	return core.Vec2{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// moveBoomerang flies out along its launch vector, then homes on the
// player's current position and is caught on contact.
func moveBoomerang(w *Weapon, ctx moveContext) {
	w.Angle = math.Mod(w.Angle+ctx.cfg.Boomerang.Spin, 2*math.Pi)

	if !w.Returning {
		w.Box.Move(w.Vel.X, w.Vel.Y)
		w.Travelled += w.Speed
		if w.Travelled >= ctx.cfg.Boomerang.Range {
			w.Returning = true
		}
		return
	}

	dir := core.DirectionTo(w.Box, ctx.player.Box)
	w.Vel = dir.Scale(w.Speed)
	w.Box.Move(w.Vel.X, w.Vel.Y)
	if w.Box.Intersects(ctx.player.Box) {
		w.Kill()
	}
}

// newLinearShot creates a shot travelling with constant velocity.
func newLinearShot(kind WeaponKind, center, vel core.Vec2, w, h float64) *Weapon {
	return &Weapon{
		Entity: Entity{
			Box:  core.NewBox(center.X, center.Y, w, h),
			Vel:  vel,
			Life: NewLifetime(ShotMaxTicks),
		},
		Kind:  kind,
		Speed: vel.Len(),
	}
}

// NewBeam fires a beam along the player's facing, spawned one body length ahead.
func NewBeam(p *Player, cfg config.WeaponsConfig) *Weapon {
	aim := p.Aim()
	center := core.Vec2{
		X: p.Box.C.X + p.Box.W*aim.X,
		Y: p.Box.C.Y + p.Box.H*aim.Y,
	}
	return newLinearShot(WeaponBeam, center, aim.Scale(cfg.BeamSpeed), cfg.BeamSize, cfg.BeamSize)
}

// NewShotPair fires two upward shots at a lateral offset from the player.
func NewShotPair(kind WeaponKind, p *Player, cfg config.WeaponsConfig) []*Weapon {
	vel := core.Vec2{Y: -cfg.ShotSpeed}
	y := p.Box.Top()
	return []*Weapon{
		newLinearShot(kind, core.Vec2{X: p.Box.C.X - cfg.ShotOffset, Y: y}, vel, cfg.ShotWidth, cfg.ShotHeight),
		newLinearShot(kind, core.Vec2{X: p.Box.C.X + cfg.ShotOffset, Y: y}, vel, cfg.ShotWidth, cfg.ShotHeight),
	}
}

// NewSubShot fires a slow upward shot from a satellite.
func NewSubShot(from core.Vec2, cfg config.WeaponsConfig) *Weapon {
	vel := core.Vec2{Y: -cfg.Satellite.SubShotSpeed}
	return newLinearShot(WeaponSubShot, from, vel, cfg.ShotWidth, cfg.ShotHeight)
}

// NewSatelliteSet creates count satellites evenly spaced around the player.
func NewSatelliteSet(p *Player, shooter bool, cfg config.WeaponsConfig) []*Weapon {
	sat := cfg.Satellite
	kind := WeaponSatellite
	if shooter {
		kind = WeaponSatelliteShooter
	}
	set := make([]*Weapon, 0, sat.Count)
	for i := 0; i < sat.Count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sat.Count)
		c := orbitPoint(p.Box.C, sat.Radius, angle)
		set = append(set, &Weapon{
			Entity: Entity{
				Box:  core.NewBox(c.X, c.Y, sat.Size, sat.Size),
				Life: Forever(),
			},
			Kind:  kind,
			Angle: angle,
		})
	}
	return set
}

// NewSlash places a static slash one body width ahead of the player.
func NewSlash(p *Player, cfg config.WeaponsConfig) *Weapon {
	aim := p.Aim()
	c := p.Box.C.Add(aim.Scale(p.Box.W))
	return &Weapon{
		Entity: Entity{
			Box:  core.NewBox(c.X, c.Y, cfg.Slash.Size, cfg.Slash.Size),
			Life: NewLifetime(cfg.Slash.Ticks),
		},
		Kind: WeaponSlash,
	}
}

// NewBoomerang launches a boomerang along the player's facing.
func NewBoomerang(p *Player, cfg config.WeaponsConfig) *Weapon {
	bc := cfg.Boomerang
	return &Weapon{
		Entity: Entity{
			Box:  core.NewBox(p.Box.C.X, p.Box.C.Y, bc.Size, bc.Size),
			Vel:  p.Aim().Scale(bc.Speed),
			Life: NewLifetime(bc.MaxTicks),
		},
		Kind:  WeaponBoomerang,
		Speed: bc.Speed,
	}
}
