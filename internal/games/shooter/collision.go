package shooter

// resolveCollisions runs the collision passes in their fixed order.
// Entities consumed by an earlier pass are invisible to later passes.
func (g *Game) resolveCollisions() {
	g.enemiesVsWeapons()
	g.bombsVsWeapons()
	g.bonesVsWeapons()
	g.bombsVsShields()
	g.enemiesVsGravity()
	g.bombsVsGravity()
	g.bossesVsWeapons()
	g.itemsVsPlayer()
	g.playerVsHostiles()
}

// strike checks every live weapon against one hostile. It reports whether
// any weapon touched it and consumes the weapons whose kind is consumed
// by that target.
func (g *Game) strike(target *Entity, kind Target) bool {
	hit := false
	for _, w := range g.weapons {
		if !w.Overlaps(target) {
			continue
		}
		hit = true
		if w.ConsumedBy(kind) {
			w.Kill()
		}
	}
	return hit
}

// Pass 1: weapons destroy enemies.
func (g *Game) enemiesVsWeapons() {
	for _, e := range g.enemies {
		if e.Dead {
			continue
		}
		if g.strike(&e.Entity, TargetEnemy) {
			g.killEnemy(e)
		}
	}
}

// Pass 2: weapons destroy destructible bombs.
func (g *Game) bombsVsWeapons() {
	for _, b := range g.bombs {
		if b.Dead || !b.Hit {
			continue
		}
		if g.strike(&b.Entity, TargetBomb) {
			g.killBomb(b, true)
		}
	}
}

// Pass 3: bones absorb the weapons they consume and survive.
func (g *Game) bonesVsWeapons() {
	for _, b := range g.bones {
		if b.Dead {
			continue
		}
		g.strike(&b.Entity, TargetBone)
	}
}

// Pass 4: a shield stops the first bomb or bone it meets and is used up.
func (g *Game) bombsVsShields() {
	for _, s := range g.shields {
		for _, group := range [][]*Bomb{g.bombs, g.bones} {
			for _, b := range group {
				if s.Dead {
					break
				}
				if b.Overlaps(&s.Entity) {
					g.killBomb(b, false)
					s.Kill()
				}
			}
		}
	}
}

// Pass 5: gravity destroys every enemy inside it and persists.
func (g *Game) enemiesVsGravity() {
	for _, f := range g.gravities {
		for _, e := range g.enemies {
			if e.Overlaps(&f.Entity) {
				g.killEnemy(e)
			}
		}
	}
}

// Pass 6: gravity destroys every bomb and bone inside it.
func (g *Game) bombsVsGravity() {
	for _, f := range g.gravities {
		for _, group := range [][]*Bomb{g.bombs, g.bones} {
			for _, b := range group {
				if b.Overlaps(&f.Entity) {
					g.killBomb(b, true)
				}
			}
		}
	}
}

// Pass 7: weapons damage the boss. Consumed weapons deal one point each;
// weapons that survive contact deal one point per boss hit interval.
func (g *Game) bossesVsWeapons() {
	for _, boss := range g.bosses {
		for _, w := range g.weapons {
			if boss.Dead {
				break
			}
			if !w.Overlaps(&boss.Entity) {
				continue
			}
			switch {
			case w.ConsumedBy(TargetBoss):
				w.Kill()
			case w.BossCD > 0:
				continue
			default:
				w.BossCD = g.cfg.Weapons.BossHitInterval
			}
			if boss.Damage(1) {
				g.emit(EventBossPhase, int(boss.Phase))
			}
		}
		if boss.Dead {
			g.explosions = append(g.explosions, NewExplosion(boss.Box, g.cfg.Enemy.ExplosionTicks))
			g.emit(EventBossDown, g.score)
		}
	}
}

// Pass 8: the player collects items.
func (g *Game) itemsVsPlayer() {
	for _, it := range g.items {
		if !it.Overlaps(&g.player.Entity) {
			continue
		}
		it.Kill()
		if g.arsenal.Apply(it.Effect) {
			g.emit(EventItem, len(g.arsenal.Active()))
		}
	}
}

// Pass 9: bombs, bones and the boss against the player. In hyper the
// player destroys the projectiles it touches; otherwise any contact is a
// hit, and a fatal hit ends the game with the score unchanged.
func (g *Game) playerVsHostiles() {
	p := g.player

	if p.State == PlayerHyper {
		for _, group := range [][]*Bomb{g.bombs, g.bones} {
			for _, b := range group {
				if b.Overlaps(&p.Entity) {
					g.killBomb(b, true)
				}
			}
		}
		return
	}

	touched := false
	for _, group := range [][]*Bomb{g.bombs, g.bones} {
		for _, b := range group {
			if b.Overlaps(&p.Entity) {
				b.Kill()
				touched = true
			}
		}
	}
	for _, boss := range g.bosses {
		if boss.Overlaps(&p.Entity) {
			touched = true
		}
	}
	if !touched {
		return
	}

	taken, fatal := p.Hit()
	if !taken {
		return
	}
	g.emit(EventPlayerHit, p.HP)
	if fatal {
		g.defeat()
	}
}

func (g *Game) killEnemy(e *Enemy) {
	e.Kill()
	g.explosions = append(g.explosions, NewExplosion(e.Box, g.cfg.Enemy.ExplosionTicks))
	g.score += g.cfg.Score.EnemyKill
	g.emit(EventEnemyKill, g.score)
}

func (g *Game) killBomb(b *Bomb, scored bool) {
	b.Kill()
	g.explosions = append(g.explosions, NewExplosion(b.Box, g.cfg.Bomb.ExplosionTicks))
	if scored {
		g.score += g.cfg.Score.BombKill
	}
}
