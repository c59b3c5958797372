package game

import "math"

// Boss is any boss variant
type Boss interface {
	Body() *Body
	Kind() BossKind
	HP() float64
	MaxHP() float64
	Phase() int
	// Dying bosses have taken their killing blow and no longer collide
	Dying() bool
	Update(g *Game)
	// TakeDamage applies a hit and reports whether it defeated the boss
	TakeDamage(g *Game, amount float64) bool
	OnCollideWithPlayer(g *Game)
	Bullets() []*Projectile
	SetBullets([]*Projectile)
}

// bossCore is the state every boss variant shares
type bossCore struct {
	body Body
	cfg  BossKindConfig

	hp    float64
	maxHP float64

	attackCooldown int
	rotation       float64
	bullets        []*Projectile
	dying          bool
}

func newBossCore(kind BossKind, pos Vec2, hp float64) bossCore {
	cfg := GetBossKindConfig(kind)
	return bossCore{
		body:  Body{Pos: pos, Radius: cfg.Radius, Speed: cfg.Speed},
		cfg:   cfg,
		hp:    hp,
		maxHP: hp,
	}
}

func (b *bossCore) Body() *Body                { return &b.body }
func (b *bossCore) Kind() BossKind             { return b.cfg.Kind }
func (b *bossCore) HP() float64                { return b.hp }
func (b *bossCore) MaxHP() float64             { return b.maxHP }
func (b *bossCore) Phase() int                 { return 1 }
func (b *bossCore) Dying() bool                { return b.dying }
func (b *bossCore) Bullets() []*Projectile     { return b.bullets }
func (b *bossCore) SetBullets(p []*Projectile) { b.bullets = p }

// Rotation is the cosmetic spin of the boss body
func (b *bossCore) Rotation() float64 { return b.rotation }

// OnCollideWithPlayer shoves the player out of the boss body. Contact itself does no damage.
func (b *bossCore) OnCollideWithPlayer(g *Game) {
	p := g.player
	d := Distance(b.body.Pos, p.Pos)
	overlap := b.body.Radius + p.Radius - d
	if overlap <= 0 {
		return
	}
	angle := 0.0
	if d > 0 {
		angle = AngleTo(b.body.Pos, p.Pos)
	}
	p.Push(FromAngle(angle, overlap), g.arena)
}

// tickAttack counts the attack cooldown down and reports whether an attack is due.
// The cooldown resets to the kind's attack delay when it fires.
func (b *bossCore) tickAttack() bool {
	b.attackCooldown--
	if b.attackCooldown <= 0 {
		b.attackCooldown = b.cfg.AttackDelay
		return true
	}
	return false
}

// damagePool drains hp and reports whether it ran out
func (b *bossCore) damagePool(amount float64) bool {
	if amount <= 0 {
		return false
	}
	b.hp = math.Max(0, b.hp-amount)
	return b.hp <= 0
}

// die marks the boss as dying and drops its bullets
func (b *bossCore) die() {
	b.dying = true
	b.bullets = nil
}

// Burst patterns shared by every boss

// lineBurst fires 10 bullets in a line toward the target, 30 px apart
func lineBurst(from, target Vec2) []*Projectile {
	angle := AngleTo(from, target)
	out := make([]*Projectile, 0, 10)
	for i := 0; i < 10; i++ {
		pos := from.Add(FromAngle(angle, float64(i)*30))
		out = append(out, NewBossBullet(pos, angle, 4, 7))
	}
	return out
}

// bigRing fires 8 huge slow bullets evenly around the boss
func bigRing(from Vec2) []*Projectile {
	return ring(from, 8, 45, 5, 0)
}

// smallRing fires 10 small fast bullets evenly around the boss
func smallRing(from Vec2) []*Projectile {
	return ring(from, 10, 4, 7, 0)
}

func ring(from Vec2, count int, radius, speed, offset float64) []*Projectile {
	out := make([]*Projectile, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i)/float64(count)*2*math.Pi + offset
		out = append(out, NewBossBullet(from, angle, radius, speed))
	}
	return out
}

// standardBurst picks one of the three standard patterns uniformly
func standardBurst(g *Game, from Vec2) []*Projectile {
	switch g.rng.Intn(3) {
	case 0:
		return lineBurst(from, g.player.Pos)
	case 1:
		return bigRing(from)
	default:
		return smallRing(from)
	}
}

// StandardBoss chases the player and fires one burst every five seconds
type StandardBoss struct {
	bossCore
}

// NewStandardBoss creates a standard boss sized for the level
func NewStandardBoss(pos Vec2, level int) *StandardBoss {
	return &StandardBoss{bossCore: newBossCore(BossStandard, pos, StandardBossHP(level))}
}

func (b *StandardBoss) Update(g *Game) {
	if b.dying {
		return
	}
	Pursue(&b.body, g.player.Pos)

	if b.tickAttack() {
		b.bullets = append(b.bullets, standardBurst(g, b.body.Pos)...)
	}

	b.bullets = advanceProjectiles(b.bullets, g.arena, g.player.Pos)
	b.rotation += b.cfg.RotationSpeed
}

func (b *StandardBoss) TakeDamage(g *Game, amount float64) bool {
	if b.dying {
		return false
	}
	if b.damagePool(amount) {
		b.die()
		return true
	}
	return false
}
