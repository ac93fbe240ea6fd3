package shooter

import "github.com/vovakirdan/skyraid/internal/core"

// Lifetime counts down the ticks an entity has left.
// A lifetime built with n expires on its n-th Tick.
type Lifetime struct {
	Left     int
	Infinite bool
}

// NewLifetime returns a lifetime that expires after exactly n ticks.
func NewLifetime(n int) Lifetime {
	return Lifetime{Left: n - 1}
}

// Forever returns a lifetime that never expires.
func Forever() Lifetime {
	return Lifetime{Infinite: true}
}

// Tick consumes one tick and reports whether the counter went negative.
func (l *Lifetime) Tick() bool {
	if l.Infinite {
		return false
	}
	l.Left--
	return l.Left < 0
}

// Entity is the state shared by everything on the playfield.
type Entity struct {
	Box  core.Box
	Vel  core.Vec2
	Life Lifetime
	Dead bool
}

// Alive reports whether the entity is still in play.
func (e *Entity) Alive() bool {
	return !e.Dead
}

// Kill marks the entity for removal at the end of the tick.
func (e *Entity) Kill() {
	e.Dead = true
}

// Age advances the lifetime and kills the entity when it lapses.
func (e *Entity) Age() {
	if e.Life.Tick() {
		e.Kill()
	}
}

// Overlaps reports whether two live entities intersect.
func (e *Entity) Overlaps(o *Entity) bool {
	return !e.Dead && !o.Dead && e.Box.Intersects(o.Box)
}

type living interface {
	Alive() bool
}

// compact removes dead entries in place, keeping order.
func compact[T living](group []T) []T {
	out := group[:0]
	for _, e := range group {
		if e.Alive() {
			out = append(out, e)
		}
	}
	var zero T
	for i := len(out); i < len(group); i++ {
		group[i] = zero
	}
	return out
}
