package game

import "math"

// largest enemy radius, used to widen grid queries
const maxEnemyRadius = 25.0

// CollisionSystem resolves every interaction of a tick in a fixed order:
// player vs enemies, player bullets vs enemies, player bullets vs bosses,
// hostile projectiles and hazards vs player, then pickups.
type CollisionSystem struct {
	game    *Game
	grid    *Grid
	scratch []int
}

// NewCollisionSystem creates a collision system for a game
func NewCollisionSystem(g *Game) *CollisionSystem {
	return &CollisionSystem{
		game:    g,
		grid:    NewGrid(g.arena, 100),
		scratch: make([]int, 0, 32),
	}
}

// Resolve runs every collision pass for the current tick
func (c *CollisionSystem) Resolve() {
	c.playerVsEnemies()
	c.bulletsVsEnemies()
	c.bulletsVsBosses()
	c.hostilesVsPlayer()
	c.pickups()
}

// playerVsEnemies costs the player 1 HP per touching enemy unless shielded
func (c *CollisionSystem) playerVsEnemies() {
	g := c.game
	p := g.player
	for _, e := range g.enemies {
		b := e.Body()
		if !p.IsColliding(b) {
			continue
		}
		g.hurtPlayer(enemyTouchDamage)
		e.OnCollideWithPlayer(g)
	}
}

// bulletsVsEnemies lets each player bullet hit the first overlapping enemy in list order
func (c *CollisionSystem) bulletsVsEnemies() {
	g := c.game
	if len(g.enemies) == 0 {
		return
	}

	c.grid.Rebuild(g.enemies)
	dirty := false
	removed := false

	kept := g.player.Bullets[:0]
	for _, bullet := range g.player.Bullets {
		if dirty {
			c.grid.Rebuild(g.enemies)
			dirty = false
		}

		hit := -1
		c.scratch = c.grid.Query(bullet.Pos, bullet.Radius+maxEnemyRadius, c.scratch)
		for _, i := range c.scratch {
			e := g.enemies[i]
			if e == nil {
				continue
			}
			b := e.Body()
			if CirclesOverlap(bullet.Pos, bullet.Radius, b.Pos, b.Radius) {
				hit = i
				break
			}
		}
		if hit < 0 {
			kept = append(kept, bullet)
			continue
		}

		enemy := g.enemies[hit]
		var outcome HitOutcome
		if bullet.Explosive {
			// Explosive rounds kill outright, even splitting enemies
			outcome = HitOutcome{
				Removed:   true,
				Kill:      true,
				Explosion: NewExplosion(bullet.Pos, bullet.ExplosiveDamage, true),
			}
		} else {
			outcome = enemy.OnHitByProjectile(g, bullet)
		}

		if outcome.Removed {
			g.enemies[hit] = nil
			removed = true
			dirty = true
		}
		if outcome.Kill {
			g.creditKill()
		}
		if len(outcome.Spawn) > 0 {
			g.enemies = append(g.enemies, outcome.Spawn...)
			dirty = true
		}
		if outcome.Explosion != nil {
			g.explosions = append(g.explosions, outcome.Explosion)
		}
	}
	clearTail(g.player.Bullets, len(kept))
	g.player.Bullets = kept

	if removed {
		g.enemies = compactEnemies(g.enemies)
	}
}

// bulletsVsBosses applies the player's damage stat to the first living boss each bullet touches
func (c *CollisionSystem) bulletsVsBosses() {
	g := c.game
	if len(g.bosses) == 0 {
		return
	}

	kept := g.player.Bullets[:0]
	for _, bullet := range g.player.Bullets {
		consumed := false
		for _, boss := range g.bosses {
			if boss.Dying() {
				continue
			}
			b := boss.Body()
			if !CirclesOverlap(bullet.Pos, bullet.Radius, b.Pos, b.Radius) {
				continue
			}
			consumed = true
			if bullet.Explosive {
				g.explosions = append(g.explosions, NewExplosion(bullet.Pos, bullet.ExplosiveDamage, true))
			}
			if boss.TakeDamage(g, g.player.Damage) {
				g.bossDefeated(boss)
			}
			break
		}
		if !consumed {
			kept = append(kept, bullet)
		}
	}
	clearTail(g.player.Bullets, len(kept))
	g.player.Bullets = kept
}

// hostilesVsPlayer runs boss bullets, enemy bullets, hostile blasts and boss hazards against the player
func (c *CollisionSystem) hostilesVsPlayer() {
	g := c.game
	p := g.player

	for _, boss := range g.bosses {
		boss.SetBullets(c.bossBulletsVsPlayer(boss.Bullets()))
	}

	for _, e := range g.enemies {
		gunner, ok := e.(Gunner)
		if !ok {
			continue
		}
		bullets := gunner.Bullets()
		kept := bullets[:0]
		for _, b := range bullets {
			if CirclesOverlap(b.Pos, b.Radius, p.Pos, p.Radius) {
				g.hurtPlayer(hazardHitDamage)
				continue
			}
			kept = append(kept, b)
		}
		clearTail(bullets, len(kept))
		gunner.SetBullets(kept)
	}

	for _, ex := range g.explosions {
		if !ex.Friendly && ex.Contains(p.Pos) {
			g.hurtPlayer(int(math.Round(ex.Damage)))
		}
	}

	for _, boss := range g.bosses {
		if owner, ok := boss.(HazardOwner); ok {
			c.hazardsVsPlayer(owner.Hazards())
		}
		if !boss.Dying() && p.IsColliding(boss.Body()) {
			boss.OnCollideWithPlayer(g)
		}
	}
}

// bossBulletsVsPlayer returns the bullets left after hitting the player.
// Lasers only push and black holes pull before they hit.
func (c *CollisionSystem) bossBulletsVsPlayer(bullets []*Projectile) []*Projectile {
	g := c.game
	p := g.player
	kept := bullets[:0]
	for _, b := range bullets {
		if !b.Collides() {
			kept = append(kept, b)
			continue
		}

		if b.Laser {
			if SegmentDistance(p.Pos, b.Pos, b.LaserEnd()) < p.Radius+b.Radius {
				p.Push(pushAway(b.Pos, b.Angle, p.Pos, laserPush), g.arena)
			}
			kept = append(kept, b)
			continue
		}

		if b.BlackHole && Distance(b.Pos, p.Pos) < blackHolePullRadius {
			p.Pos = g.arena.Clamp(PullToward(p.Pos, b.Pos, blackHolePull), p.Radius)
		}

		if CirclesOverlap(b.Pos, b.Radius, p.Pos, p.Radius) {
			g.hurtPlayer(hazardHitDamage)
			continue
		}
		kept = append(kept, b)
	}
	clearTail(bullets, len(kept))
	return kept
}

// hazardsVsPlayer applies beams, rifts, vortex pull and the supernova
func (c *CollisionSystem) hazardsVsPlayer(h *BossHazards) {
	g := c.game
	p := g.player

	if beam := h.Beam; beam != nil && beam.Firing && beam.Touches(p.Pos, p.Radius) {
		if beam.Push > 0 {
			p.Push(pushAway(beam.Origin, beam.Angle, p.Pos, beam.Push), g.arena)
		}
		if beam.Damage > 0 && !beam.damaged {
			beam.damaged = true
			g.hurtPlayer(beam.Damage)
		}
	}

	for _, r := range h.Rifts {
		if r.Spent || p.Shield {
			continue
		}
		if CirclesOverlap(r.Pos, r.Radius, p.Pos, p.Radius) {
			r.Spent = true
			g.hurtPlayer(hazardHitDamage)
		}
	}

	if v := h.Vortex; v != nil && Distance(v.Center, p.Pos) < v.Radius {
		p.Pos = g.arena.Clamp(PullToward(p.Pos, v.Center, v.Pull), p.Radius)
	}

	if sn := h.Supernova; sn != nil && Distance(sn.Center, p.Pos) <= sn.Radius {
		p.Kill()
	}
}

// pickups grants any powerup the player touches
func (c *CollisionSystem) pickups() {
	g := c.game
	p := g.player
	kept := g.powerups[:0]
	for _, pu := range g.powerups {
		if !CirclesOverlap(pu.Pos, pu.Radius, p.Pos, p.Radius) {
			kept = append(kept, pu)
			continue
		}
		exclusive := !g.session.AllowMultiplePowerups
		switch pu.Kind {
		case PowerupShield:
			p.ActivateShield(exclusive)
		case PowerupMultiShot:
			p.ActivateMultiShot(exclusive)
		}
		logger().Debug("powerup collected", "kind", pu.Kind.String())
	}
	g.powerups = kept
}

// pushAway returns a displacement perpendicular to a line through origin at angle,
// pointing to the side p is on
func pushAway(origin Vec2, angle float64, p Vec2, force float64) Vec2 {
	dir := FromAngle(angle, 1)
	rel := p.Sub(origin)
	side := math.Pi / 2
	if dir.X*rel.Y-dir.Y*rel.X < 0 {
		side = -side
	}
	return FromAngle(angle+side, force)
}

func compactEnemies(list []Enemy) []Enemy {
	kept := list[:0]
	for _, e := range list {
		if e != nil {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}

func clearTail(list []*Projectile, n int) {
	for i := n; i < len(list); i++ {
		list[i] = nil
	}
}
