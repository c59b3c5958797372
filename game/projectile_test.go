package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileBounceBudget(t *testing.T) {
	arena := Arena{W: 100, H: 100}

	for _, budget := range []int{0, 1, 2, 3} {
		p := NewProjectile(ProjectilePlayer, Vec2{50, 50}, 0)
		p.MaxBounces = budget

		expiredAt := -1
		for tick := 0; tick < 1000 && expiredAt < 0; tick++ {
			p.Advance(arena, Vec2{})
			if p.Expired(arena) {
				expiredAt = tick
			}
			if p.Bounces < budget {
				assert.False(t, p.Expired(arena), "budget %d: expired with bounces left", budget)
			}
		}

		require.GreaterOrEqual(t, expiredAt, 0, "budget %d never expired", budget)
		assert.Equal(t, budget, p.Bounces)
		assert.False(t, arena.Contains(p.Pos, 0))
	}
}

func TestProjectileReflectsOnlyOutwardMotion(t *testing.T) {
	arena := Arena{W: 100, H: 100}
	p := NewProjectile(ProjectilePlayer, Vec2{-12, 50}, math.Pi)
	p.MaxBounces = 5

	p.Advance(arena, Vec2{})
	assert.Equal(t, 1, p.Bounces)
	assert.Greater(t, p.Vel.X, 0.0)

	// Still past the edge but heading back in
	p.Advance(arena, Vec2{})
	assert.Equal(t, 1, p.Bounces)
	assert.Greater(t, p.Vel.X, 0.0)
}

func TestProjectileLifetimeNeverExpires(t *testing.T) {
	arena := Arena{W: 100, H: 100}
	p := NewProjectile(ProjectileBoss, Vec2{50, 50}, 0)
	p.Vel = Vec2{}
	p.Speed = 0
	p.Lifetime = 1 << 20

	p.Advance(arena, Vec2{})
	assert.False(t, p.Expired(arena))
}

func TestBossBulletMargin(t *testing.T) {
	arena := Arena{W: 100, H: 100}
	p := NewBossBullet(Vec2{-40, 50}, math.Pi, 4, 0)

	assert.False(t, p.Expired(arena), "inside the 50px margin")
	p.Pos.X = -51
	assert.True(t, p.Expired(arena))
}

func TestHomingProjectileTurnsTowardTarget(t *testing.T) {
	arena := Arena{W: 1000, H: 1000}
	p := NewBossBullet(Vec2{500, 500}, 0, 10, 3)
	p.Homing = true
	p.HomingStrength = 0.1

	p.Advance(arena, Vec2{500, 900})
	assert.InDelta(t, 0.1, p.Angle, 1e-9)
	assert.Greater(t, p.Vel.Y, 0.0)
}

func TestAcceleratingProjectile(t *testing.T) {
	arena := Arena{W: 1000, H: 1000}
	p := NewBossBullet(Vec2{500, 500}, 0, 5, 3)
	p.Accelerating = true
	p.Acceleration = 0.2

	for i := 0; i < 10; i++ {
		p.Advance(arena, Vec2{})
	}
	assert.InDelta(t, 5, p.Speed, 1e-9)
	assert.InDelta(t, 5, p.Vel.Len(), 1e-9)
}

func TestSpiralProjectileStraightensOut(t *testing.T) {
	arena := Arena{W: 10000, H: 10000}
	p := NewBossBullet(Vec2{5000, 5000}, 0, 8, 4)
	p.Spiral = true
	p.SpiralSpeed = 0.1

	for i := 0; i < 300; i++ {
		p.Advance(arena, Vec2{})
	}
	assert.Less(t, p.SpiralSpeed, 0.001)
	assert.Greater(t, Distance(p.Pos, Vec2{5000, 5000}), 300.0)
}

func TestWarningAndDecorativeNeverCollide(t *testing.T) {
	p := NewBossBullet(Vec2{}, 0, 4, 2)
	assert.True(t, p.Collides())

	p.Warning = true
	assert.False(t, p.Collides())

	p.Warning = false
	p.Decorative = true
	assert.False(t, p.Collides())
}
