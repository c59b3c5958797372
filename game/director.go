package game

// Director keeps the arena populated and decides when bosses arrive
type Director struct {
	game *Game
}

// NewDirector creates a director for a game
func NewDirector(g *Game) *Director {
	return &Director{game: g}
}

// Update runs the spawn rules for one tick
func (d *Director) Update() {
	g := d.game
	if len(g.bosses) > 0 {
		return
	}
	d.maybeSpawnPowerup()
	if g.session.LevelKills >= KillsToBoss {
		d.spawnWave()
		return
	}
	d.topUp()
}

// topUp adds random enemies at the edges until there are EnemyTarget of them
func (d *Director) topUp() {
	g := d.game
	for len(g.enemies) < EnemyTarget {
		g.enemies = append(g.enemies, NewEnemy(GetRandomEnemyKind(g.rng), g.arena.RandomEdge(g.rng)))
	}
}

// BossCount returns how many standard bosses a level's wave holds
func BossCount(level int, endless bool) int {
	if endless {
		return max(1, (level-EndlessFirstLevel)/3+2)
	}
	return level/6 + 1
}

// spawnWave clears the field and brings in the level's bosses along the top edge
func (d *Director) spawnWave() {
	g := d.game
	level := g.session.Level
	top := Vec2{X: g.arena.W / 2}

	switch level {
	case BehemothLevel:
		g.bosses = []Boss{NewBehemoth(top, g.player.Damage)}
	case LeviathanLevel:
		g.bosses = []Boss{NewLeviathan(top)}
	default:
		n := BossCount(level, g.session.Endless)
		g.bosses = make([]Boss, 0, n)
		for i := 0; i < n; i++ {
			x := g.arena.W / float64(n+1) * float64(i+1)
			g.bosses = append(g.bosses, NewStandardBoss(Vec2{X: x}, level))
		}
	}

	clear(g.enemies)
	g.enemies = g.enemies[:0]
	g.explosions = nil
	g.powerups = nil
	g.player.Bullets = nil
	g.session.LevelKills = 0
	g.powerupSpawned = false

	logger().Info("boss wave", "level", level, "bosses", len(g.bosses))
}

// maybeSpawnPowerup drops a pickup the first time the level's kills reach KillsToPowerup
func (d *Director) maybeSpawnPowerup() {
	g := d.game
	if g.powerupSpawned || len(g.bosses) > 0 || g.session.LevelKills < KillsToPowerup {
		return
	}
	g.powerupSpawned = true
	kind := powerupForBossKills(g.session.BossKills)
	g.powerups = append(g.powerups, newPowerup(kind, g.arena, g.rng))
	logger().Debug("powerup spawned", "kind", kind.String())
}
