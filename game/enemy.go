package game

// HitOutcome tells the collision engine what a player bullet did to an enemy
type HitOutcome struct {
	// Removed takes the enemy out of the field
	Removed bool
	// Kill credits one kill and KillScore points
	Kill bool
	// Spawn are enemies added in its place
	Spawn []Enemy
	// Explosion is a hazard left behind
	Explosion *Explosion
}

// Enemy is a regular (non-boss) hostile
type Enemy interface {
	Body() *Body
	Kind() EnemyKind
	Update(g *Game)
	// OnCollideWithPlayer reacts to touching the player and reports whether the enemy moved away
	OnCollideWithPlayer(g *Game) bool
	OnHitByProjectile(g *Game, p *Projectile) HitOutcome
}

// Gunner is an enemy that owns projectiles aimed at the player
type Gunner interface {
	Bullets() []*Projectile
	SetBullets([]*Projectile)
}

// NewEnemy creates an enemy of the given kind at pos
func NewEnemy(kind EnemyKind, pos Vec2) Enemy {
	base := newBaseEnemy(kind, pos)
	switch kind {
	case EnemySplitLarge, EnemySplitMedium, EnemySplitSmall:
		return &SplittingEnemy{baseEnemy: base}
	case EnemyExploding:
		return &ExplodingEnemy{baseEnemy: base}
	case EnemyShooting:
		return &ShootingEnemy{baseEnemy: base}
	default:
		return &BasicEnemy{baseEnemy: base}
	}
}

type baseEnemy struct {
	body Body
	kind EnemyKind
}

func newBaseEnemy(kind EnemyKind, pos Vec2) baseEnemy {
	cfg := GetEnemyKindConfig(kind)
	return baseEnemy{
		body: Body{Pos: pos, Radius: cfg.Radius, Speed: cfg.Speed},
		kind: cfg.Kind,
	}
}

func (e *baseEnemy) Body() *Body     { return &e.body }
func (e *baseEnemy) Kind() EnemyKind { return e.kind }

func (e *baseEnemy) Update(g *Game) {
	Pursue(&e.body, g.player.Pos)
}

func (e *baseEnemy) OnCollideWithPlayer(g *Game) bool {
	return false
}

func (e *baseEnemy) OnHitByProjectile(g *Game, p *Projectile) HitOutcome {
	return HitOutcome{Removed: true, Kill: true}
}

// BasicEnemy chases the player and is thrown back to an edge when it touches them
type BasicEnemy struct {
	baseEnemy
}

func (e *BasicEnemy) OnCollideWithPlayer(g *Game) bool {
	e.body.Pos = g.arena.RandomEdge(g.rng)
	return true
}

// SplittingEnemy breaks into smaller pieces; only the smallest piece counts as a kill
type SplittingEnemy struct {
	baseEnemy
}

func (e *SplittingEnemy) OnHitByProjectile(g *Game, p *Projectile) HitOutcome {
	pos := e.body.Pos
	switch e.kind {
	case EnemySplitLarge:
		d := splitLargeOffset
		return HitOutcome{
			Removed: true,
			Spawn: []Enemy{
				NewEnemy(EnemySplitMedium, pos.Add(Vec2{-d, -d})),
				NewEnemy(EnemySplitMedium, pos.Add(Vec2{d, -d})),
				NewEnemy(EnemySplitMedium, pos.Add(Vec2{-d, d})),
				NewEnemy(EnemySplitMedium, pos.Add(Vec2{d, d})),
			},
		}
	case EnemySplitMedium:
		d := splitMediumOffset
		return HitOutcome{
			Removed: true,
			Spawn: []Enemy{
				NewEnemy(EnemySplitSmall, pos.Add(Vec2{-d, 0})),
				NewEnemy(EnemySplitSmall, pos.Add(Vec2{d, 0})),
			},
		}
	default:
		return HitOutcome{Removed: true, Kill: true}
	}
}

// ExplodingEnemy leaves a hostile explosion where it dies
type ExplodingEnemy struct {
	baseEnemy
}

func (e *ExplodingEnemy) OnHitByProjectile(g *Game, p *Projectile) HitOutcome {
	return HitOutcome{
		Removed:   true,
		Kill:      true,
		Explosion: NewExplosion(e.body.Pos, explosionDamage, false),
	}
}

// ShootingEnemy chases the player and fires one bullet at them every second
type ShootingEnemy struct {
	baseEnemy
	cooldown int
	bullets  []*Projectile
}

func (e *ShootingEnemy) Update(g *Game) {
	e.baseEnemy.Update(g)

	e.cooldown--
	if e.cooldown <= 0 {
		angle := AngleTo(e.body.Pos, g.player.Pos)
		e.bullets = append(e.bullets, NewProjectile(ProjectileEnemy, e.body.Pos, angle))
		e.cooldown = shooterDelay
	}

	e.bullets = advanceProjectiles(e.bullets, g.arena, g.player.Pos)
}

func (e *ShootingEnemy) Bullets() []*Projectile     { return e.bullets }
func (e *ShootingEnemy) SetBullets(b []*Projectile) { e.bullets = b }
