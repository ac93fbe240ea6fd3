package shooter

import "github.com/vovakirdan/skyraid/internal/core"

// useAbilities handles the score-priced abilities and the boss summon.
func (g *Game) useAbilities(in core.InputFrame) {
	if g.cfg.Features.ManualSummon && in.Has(core.ActionSummon) {
		g.spawnBoss()
	}
	if !g.cfg.Features.Abilities {
		return
	}

	ab := g.cfg.Abilities

	if in.Has(core.ActionEMP) && g.score >= ab.EMPCost {
		g.score -= ab.EMPCost
		g.emp()
	}

	if in.Has(core.ActionShield) && len(g.shields) == 0 && g.score >= ab.ShieldCost {
		g.score -= ab.ShieldCost
		g.shields = append(g.shields, NewShield(g.player, ab))
		g.emit(EventShield, ab.ShieldTicks)
	}

	if in.Has(core.ActionGravity) && g.score > ab.GravityCost {
		g.score -= ab.GravityCost
		g.gravities = append(g.gravities, NewGravity(ab, g.fieldW, g.fieldH))
		g.emit(EventGravity, ab.GravityTicks)
	}

	if in.Has(core.ActionHyper) && g.player.State == PlayerNormal && g.score >= ab.HyperCost {
		g.score -= ab.HyperCost
		g.player.EnterHyper(ab.HyperTicks)
		g.emit(EventHyper, ab.HyperTicks)
	}
}

// emp disables every enemy, slows every bomb and freezes the foreground
// for a short flash.
func (g *Game) emp() {
	for _, e := range g.enemies {
		e.Disable()
	}
	for _, b := range g.bombs {
		b.Slow()
	}
	g.freeze = g.runtime.TicksFor(g.cfg.Timing.EMPFreezeMs)
	g.emit(EventEMP, len(g.enemies))
}
