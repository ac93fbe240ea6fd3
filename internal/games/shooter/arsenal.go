package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
)

// Cooldown counts ticks since a weapon last fired.
type Cooldown struct {
	Every   int
	Elapsed int
}

func newCooldown(every int) Cooldown {
	if every < 1 {
		every = 1
	}
	// Ready on the first tick
	return Cooldown{Every: every, Elapsed: every}
}

// Tick advances the timer by one tick.
func (c *Cooldown) Tick() {
	if c.Elapsed < c.Every {
		c.Elapsed++
	}
}

// Ready reports whether the weapon may fire.
func (c Cooldown) Ready() bool {
	return c.Elapsed >= c.Every
}

// Fire resets the timer.
func (c *Cooldown) Fire() {
	c.Elapsed = 0
}

// Shorten scales the period by factor, never below one tick.
func (c *Cooldown) Shorten(factor float64) {
	c.Every = int(float64(c.Every) * factor)
	if c.Every < 1 {
		c.Every = 1
	}
}

// Arsenal holds the player's weapon toggles and their timers.
type Arsenal struct {
	cfg config.WeaponsConfig

	Primary   string
	Satellite bool
	Shooter   bool
	Slash     bool
	Boomerang bool

	primaryCD   Cooldown
	satelliteCD Cooldown
	slashCD     Cooldown
	boomerangCD Cooldown
	subShotCD   Cooldown // Period only; each satellite keeps its own timer
}

// NewArsenal builds the starting arsenal from config.
func NewArsenal(cfg config.WeaponsConfig) *Arsenal {
	return &Arsenal{
		cfg:         cfg,
		Primary:     cfg.Primary,
		Satellite:   cfg.Satellite.Enabled || cfg.Satellite.Shooter,
		Shooter:     cfg.Satellite.Shooter,
		Slash:       cfg.Slash.Enabled,
		Boomerang:   cfg.Boomerang.Enabled,
		primaryCD:   newCooldown(cfg.PrimaryCooldown),
		satelliteCD: newCooldown(cfg.Satellite.Cooldown),
		slashCD:     newCooldown(cfg.Slash.Cooldown),
		boomerangCD: newCooldown(cfg.Boomerang.Cooldown),
		subShotCD:   newCooldown(cfg.Satellite.SubShotCooldown),
	}
}

// Tick advances every timer.
func (a *Arsenal) Tick() {
	a.primaryCD.Tick()
	a.satelliteCD.Tick()
	a.slashCD.Tick()
	a.boomerangCD.Tick()
}

// FirePrimary spawns the primary weapon if the mode is on and ready.
func (a *Arsenal) FirePrimary(p *Player) []*Weapon {
	if a.Primary == config.PrimaryOff || !a.primaryCD.Ready() {
		return nil
	}
	var shots []*Weapon
	switch a.Primary {
	case config.PrimaryBeam:
		shots = []*Weapon{NewBeam(p, a.cfg)}
	case config.PrimaryStraight:
		shots = NewShotPair(WeaponStraight, p, a.cfg)
	case config.PrimaryPenetrating:
		shots = NewShotPair(WeaponPenetrating, p, a.cfg)
	default:
		return nil
	}
	a.primaryCD.Fire()
	return shots
}

// AutoFire runs the independent toggles against the current weapon pool.
// It returns the pool with expired satellites dropped and new instances added.
func (a *Arsenal) AutoFire(p *Player, pool []*Weapon) []*Weapon {
	if a.Satellite {
		pool = a.refreshSatellites(p, pool)
	}

	if a.Shooter {
		for _, w := range pool {
			if w.Kind != WeaponSatelliteShooter || w.Dead {
				continue
			}
			w.Timer++
			if w.Timer >= a.subShotCD.Every {
				w.Timer = 0
				pool = append(pool, NewSubShot(w.Box.C, a.cfg))
			}
		}
	}

	if a.Slash && a.slashCD.Ready() {
		pool = append(pool, NewSlash(p, a.cfg))
		a.slashCD.Fire()
	}

	if a.Boomerang && a.boomerangCD.Ready() {
		pool = append(pool, NewBoomerang(p, a.cfg))
		a.boomerangCD.Fire()
	}
	return pool
}

// refreshSatellites re-creates the full set when fewer than the barrier
// count are alive and the satellite timer has elapsed. A set of the wrong
// kind is replaced at once.
func (a *Arsenal) refreshSatellites(p *Player, pool []*Weapon) []*Weapon {
	alive, stale := 0, false
	for _, w := range pool {
		if w.IsSatellite() && w.Alive() {
			alive++
			if (w.Kind == WeaponSatelliteShooter) != a.Shooter {
				stale = true
			}
		}
	}
	if !stale && (alive >= a.cfg.Satellite.Count || !a.satelliteCD.Ready()) {
		return pool
	}
	for _, w := range pool {
		if w.IsSatellite() {
			w.Kill()
		}
	}
	a.satelliteCD.Fire()
	return append(pool, NewSatelliteSet(p, a.Shooter, a.cfg)...)
}

// Apply grants an item effect. It reports whether the arsenal changed.
func (a *Arsenal) Apply(effect string) bool {
	switch effect {
	case config.EffectStraight:
		a.Primary = config.PrimaryStraight
	case config.EffectPenetrating:
		a.Primary = config.PrimaryPenetrating
	case config.EffectSatellite:
		a.Satellite = true
	case config.EffectSatelliteShooter:
		a.Satellite = true
		a.Shooter = true
	case config.EffectSlash:
		a.Slash = true
	case config.EffectBoomerang:
		a.Boomerang = true
	case config.EffectCooldown:
		f := a.cfg.CooldownFactor
		a.primaryCD.Shorten(f)
		a.satelliteCD.Shorten(f)
		a.slashCD.Shorten(f)
		a.boomerangCD.Shorten(f)
		a.subShotCD.Shorten(f)
	default:
		return false
	}
	return true
}

// Active lists the names of the weapons currently switched on.
func (a *Arsenal) Active() []string {
	var out []string
	if a.Primary != config.PrimaryOff {
		out = append(out, a.Primary)
	}
	if a.Shooter {
		out = append(out, config.EffectSatelliteShooter)
	} else if a.Satellite {
		out = append(out, config.EffectSatellite)
	}
	if a.Slash {
		out = append(out, config.EffectSlash)
	}
	if a.Boomerang {
		out = append(out, config.EffectBoomerang)
	}
	return out
}
