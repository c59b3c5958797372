package game

import "math"

// Projectile is any bullet in flight: player shots, boss patterns and enemy shots
type Projectile struct {
	Kind ProjectileKind

	Pos    Vec2
	Vel    Vec2
	Radius float64
	Speed  float64
	Angle  float64

	// Bounce budget (player bullets only)
	Bounces    int
	MaxBounces int

	// Explosive bullets leave a friendly blast on impact
	Explosive       bool
	ExplosiveDamage float64

	// Homing bullets steer toward the player each tick
	Homing         bool
	HomingStrength float64

	// Spiral bullets curl their heading every tick, the curl fading as they fly
	Spiral      bool
	SpiralSpeed float64

	// BlackHole bullets pull the player in before they hit
	BlackHole bool

	// Laser bullets are tested as a segment along their heading and only push
	Laser bool

	// Accelerating bullets gain Acceleration speed every tick
	Accelerating bool
	Acceleration float64

	// Warning and Decorative bullets never collide
	Warning    bool
	Decorative bool

	// Ticks alive, cosmetic only
	Lifetime int

	Margin float64
}

// NewProjectile creates a projectile of the given kind with its default speed and radius
func NewProjectile(kind ProjectileKind, pos Vec2, angle float64) *Projectile {
	cfg := GetProjectileConfig(kind)
	return newProjectile(kind, pos, angle, cfg.Radius, cfg.Speed, cfg.Margin)
}

// NewBossBullet creates a boss projectile with explicit size and speed
func NewBossBullet(pos Vec2, angle, radius, speed float64) *Projectile {
	return newProjectile(ProjectileBoss, pos, angle, radius, speed, bossBulletMargin)
}

func newProjectile(kind ProjectileKind, pos Vec2, angle, radius, speed, margin float64) *Projectile {
	return &Projectile{
		Kind:   kind,
		Pos:    pos,
		Vel:    FromAngle(angle, speed),
		Radius: radius,
		Speed:  speed,
		Angle:  angle,
		Margin: margin,
	}
}

// Advance moves the projectile one tick, applying steering modifiers and edge reflection
func (p *Projectile) Advance(arena Arena, target Vec2) {
	steered := false
	if p.Homing {
		p.Angle = RotateTowardsTarget(p.Angle, AngleTo(p.Pos, target), p.HomingStrength)
		steered = true
	}
	if p.Spiral {
		p.Angle += p.SpiralSpeed
		p.SpiralSpeed *= spiralDecay
		steered = true
	}
	if p.Accelerating {
		p.Speed += p.Acceleration
		steered = true
	}
	if steered {
		p.Vel = FromAngle(p.Angle, p.Speed)
	}

	p.Pos = p.Pos.Add(p.Vel)
	p.Lifetime++

	if p.MaxBounces > 0 {
		p.reflect(arena)
	}
}

// reflect flips the velocity axis that left the arena while the bounce budget lasts.
// Only outward motion is reflected so a bullet sitting past the edge is not flipped twice.
func (p *Projectile) reflect(arena Arena) {
	if p.Bounces < p.MaxBounces &&
		((p.Pos.X <= 0 && p.Vel.X < 0) || (p.Pos.X >= arena.W && p.Vel.X > 0)) {
		p.Vel.X = -p.Vel.X
		p.Bounces++
	}
	if p.Bounces < p.MaxBounces &&
		((p.Pos.Y <= 0 && p.Vel.Y < 0) || (p.Pos.Y >= arena.H && p.Vel.Y > 0)) {
		p.Vel.Y = -p.Vel.Y
		p.Bounces++
	}
	p.Angle = math.Atan2(p.Vel.Y, p.Vel.X)
}

// Expired reports whether the projectile has left the playfield with no bounces left
func (p *Projectile) Expired(arena Arena) bool {
	if p.Bounces < p.MaxBounces {
		return false
	}
	return !arena.Contains(p.Pos, p.Margin)
}

// Collides reports whether the projectile takes part in collision tests
func (p *Projectile) Collides() bool {
	return !p.Warning && !p.Decorative
}

// LaserEnd returns the far end of a laser projectile's segment
func (p *Projectile) LaserEnd() Vec2 {
	return p.Pos.Add(FromAngle(p.Angle, laserLength))
}

// advanceProjectiles moves every projectile and drops nil, invalid and expired ones
func advanceProjectiles(list []*Projectile, arena Arena, target Vec2) []*Projectile {
	kept := list[:0]
	for i, p := range list {
		if p == nil || p.Pos.IsNaN() {
			logger().Warn("skipping malformed projectile", "index", i)
			continue
		}
		p.Advance(arena, target)
		if !p.Expired(arena) {
			kept = append(kept, p)
		}
	}
	// Clear the tail so dropped projectiles can be collected
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}
