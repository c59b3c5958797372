package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardBossHP(t *testing.T) {
	assert.Equal(t, 5000.0, StandardBossHP(1))
	assert.Equal(t, 5000.0, StandardBossHP(12))
	assert.Equal(t, 11000.0, StandardBossHP(13))
}

func TestStandardBossBursts(t *testing.T) {
	g, _ := quietGame(t)
	boss := NewStandardBoss(Vec2{640, 0}, 1)

	boss.Update(g)
	n := len(boss.Bullets())
	assert.Contains(t, []int{8, 10}, n, "one burst on the first update")

	for i := 0; i < 100; i++ {
		boss.Update(g)
	}
	assert.LessOrEqual(t, len(boss.Bullets()), n, "no second burst before the delay")
}

func TestStandardBossTakeDamage(t *testing.T) {
	g, _ := quietGame(t)
	boss := NewStandardBoss(Vec2{640, 0}, 1)

	assert.False(t, boss.TakeDamage(g, 4999))
	assert.Equal(t, 1.0, boss.HP())
	assert.True(t, boss.TakeDamage(g, 10))
	assert.Zero(t, boss.HP())
	assert.True(t, boss.Dying())
	assert.False(t, boss.TakeDamage(g, 10), "only one killing blow")
}

func TestBossBurstShapes(t *testing.T) {
	line := lineBurst(Vec2{0, 0}, Vec2{100, 0})
	require.Len(t, line, 10)
	assert.InDelta(t, 270, line[9].Pos.X, 1e-9)
	assert.Equal(t, 4.0, line[0].Radius)

	big := bigRing(Vec2{})
	require.Len(t, big, 8)
	assert.Equal(t, 45.0, big[0].Radius)
	assert.Equal(t, 5.0, big[0].Speed)

	small := smallRing(Vec2{})
	require.Len(t, small, 10)
	assert.Equal(t, 7.0, small[0].Speed)
}

func TestBehemothPhases(t *testing.T) {
	g, _ := quietGame(t)
	g.player.Damage = 3
	b := NewBehemoth(Vec2{640, 100}, g.player.Damage)

	hits := 0
	defeated := false
	for !defeated && hits < 100 {
		hits++
		defeated = b.TakeDamage(g, 1000)

		switch hits {
		case 20:
			assert.Equal(t, 2, b.Phase())
			assert.Equal(t, 22000.0, b.HP())
			assert.Equal(t, 13.0, g.player.Damage)
		case 42:
			assert.Equal(t, 3, b.Phase())
			assert.Equal(t, 25000.0, b.HP())
			assert.Equal(t, 23.0, g.player.Damage)
		}
	}

	assert.True(t, defeated)
	assert.Equal(t, 67, hits)
	assert.Equal(t, 3.0, g.player.Damage, "buff reverts on death")
	assert.True(t, b.Dying())
}

func TestBehemothOverflowIsLost(t *testing.T) {
	g, _ := quietGame(t)
	b := NewBehemoth(Vec2{640, 100}, 1)

	assert.False(t, b.TakeDamage(g, 50000))
	assert.Equal(t, 2, b.Phase())
	assert.Equal(t, 22000.0, b.HP())
}

func TestBehemothPhaseChangeCancelsBeam(t *testing.T) {
	g, _ := quietGame(t)
	b := NewBehemoth(Vec2{640, 100}, 1)
	b.hazards.Beam = &Beam{Warning: true}

	b.TakeDamage(g, 20000)
	assert.Nil(t, b.Hazards().Beam)
}

func TestBehemothDeathSequence(t *testing.T) {
	g, sink := quietGame(t)
	b := NewBehemoth(Vec2{200, 100}, g.player.Damage)
	b.phase = 3
	b.hp = 1
	g.bosses = []Boss{b}
	g.player.Bullets = []*Projectile{stillBullet(Vec2{200, 100})}

	g.collisions.Resolve()
	require.True(t, b.Dying())
	require.Len(t, g.bosses, 1, "the body stays for the death sequence")
	assert.Zero(t, g.session.Coins)

	for i := 0; i < bossDeathTicks-1; i++ {
		g.Tick(Input{})
	}
	assert.Len(t, g.bosses, 1)
	assert.False(t, g.player.HasBlink)

	g.Tick(Input{})
	assert.Empty(t, g.bosses)
	assert.Equal(t, ultimateCoins, g.session.Coins)
	assert.Equal(t, ultimateScore, g.player.Score)
	assert.True(t, g.player.HasBlink)
	assert.True(t, g.session.Blink)
	assert.True(t, g.session.Victory)
	assert.Equal(t, "Dimensional Blink", g.HUD().Reward)
	assert.NotEmpty(t, sink.saved)
}

func TestBehemothSupernovaCountdown(t *testing.T) {
	g, _ := quietGame(t)
	b := NewBehemoth(Vec2{640, 100}, 1)
	b.phase = 3
	b.hp = 100
	g.bosses = []Boss{b}

	b.phaseThreeAttack(g)
	left, ok := b.SupernovaIn(g.Now())
	require.True(t, ok)
	assert.Equal(t, supernovaCountdown, left)

	warnings := 0
	for _, p := range b.Bullets() {
		if p.Warning {
			warnings++
		}
	}
	assert.Equal(t, 36, warnings)

	// A second low-HP attack does not restart the countdown
	event, at := b.countdownEvent, b.countdownAt
	b.phaseThreeAttack(g)
	assert.Equal(t, event, b.countdownEvent)
	assert.Equal(t, at, b.countdownAt)

	g.scheduler.RunDue(g.scheduler.Now() + supernovaCountdown)
	require.NotNil(t, b.Hazards().Supernova)

	b.Hazards().Supernova.Radius = 500
	b.startSupernova(g)
	assert.Equal(t, 500.0, b.Hazards().Supernova.Radius, "a running supernova is not restarted")
}

func TestSupernovaIgnoresShield(t *testing.T) {
	g, _ := quietGame(t)
	b := NewBehemoth(Vec2{200, 100}, 1)
	b.hazards.Supernova = &Supernova{Center: b.Body().Pos, Radius: 2000, Limit: 3000}
	g.bosses = []Boss{b}

	g.collisions.Resolve()
	assert.False(t, g.player.Alive)
	assert.True(t, g.GameOver())

	tick := g.Now()
	g.Tick(Input{})
	assert.Equal(t, tick, g.Now(), "a dead player freezes the game")
}

func TestBehemothEnrage(t *testing.T) {
	g, _ := quietGame(t)
	b := NewBehemoth(Vec2{640, 100}, 1)
	b.phase = 3
	b.phase3Ticks = supernovaEnrageTicks - 1

	b.Update(g)
	assert.NotNil(t, b.Hazards().Supernova)
}

func TestBehemothBeamLifecycle(t *testing.T) {
	b := NewBehemoth(Vec2{640, 100}, 1)
	b.hazards.Beam = &Beam{HalfWidth: beamStartWidth, Length: laserLength, Warning: true, Push: laserPush}

	for i := 1; i < beamWarningTicks; i++ {
		b.updateBeam()
	}
	require.NotNil(t, b.hazards.Beam)
	assert.True(t, b.hazards.Beam.Warning)
	assert.Equal(t, beamStartWidth, b.hazards.Beam.HalfWidth)

	b.updateBeam()
	assert.True(t, b.hazards.Beam.Firing)
	assert.Equal(t, beamStartWidth+beamWidthGrowth, b.hazards.Beam.HalfWidth)

	for b.hazards.Beam != nil {
		b.updateBeam()
	}
}

func TestLaserPushesWithoutDamage(t *testing.T) {
	g, _ := quietGame(t)
	g.player.Shield = false
	g.player.MaxHP, g.player.HP = 5, 5
	start := g.player.Pos

	b := NewBehemoth(Vec2{100, 100}, 1)
	laser := NewBossBullet(start.Add(Vec2{-100, -5}), 0, 8, 4)
	laser.Laser = true
	b.SetBullets([]*Projectile{laser})
	g.bosses = []Boss{b}

	g.collisions.Resolve()

	assert.Equal(t, 5, g.player.HP)
	assert.InDelta(t, start.Y+laserPush, g.player.Pos.Y, 1e-9)
	assert.Len(t, b.Bullets(), 1, "lasers are not consumed")
}

func TestRiftHitsOnceAndRespectsShield(t *testing.T) {
	g, _ := quietGame(t)
	b := NewBehemoth(Vec2{100, 100}, 1)
	rift := newRift(g.player.Pos)
	rift.Radius = 40
	b.hazards.Rifts = []*Rift{rift}
	g.bosses = []Boss{b}
	g.player.MaxHP, g.player.HP = 5, 5

	g.collisions.Resolve()
	assert.Equal(t, 5, g.player.HP, "shielded")
	assert.False(t, rift.Spent)

	g.player.Shield = false
	g.collisions.Resolve()
	g.collisions.Resolve()
	assert.Equal(t, 4, g.player.HP)
	assert.True(t, rift.Spent)
}

func TestLeviathanPhase(t *testing.T) {
	g, _ := quietGame(t)
	l := NewLeviathan(Vec2{640, 100})
	assert.Equal(t, 1, l.Phase())

	l.TakeDamage(g, 8000)
	assert.Equal(t, 2, l.Phase())

	l.TakeDamage(g, 8000)
	assert.Equal(t, 3, l.Phase())

	assert.True(t, l.TakeDamage(g, 8000))
	assert.Equal(t, 3, l.Phase())
	assert.True(t, l.Dying())
}

func TestLeviathanSegmentsTrail(t *testing.T) {
	g, _ := quietGame(t)
	l := NewLeviathan(Vec2{640, 100})
	require.Len(t, l.Segments(), serpentSegmentCount)

	for i := 0; i < 200; i++ {
		l.Update(g)
	}
	leader := l.Body().Pos
	for _, s := range l.Segments() {
		assert.LessOrEqual(t, Distance(s, leader), serpentSegmentSpacing+1e-6)
		leader = s
	}
}

func TestLeviathanBeamDamagesOnce(t *testing.T) {
	g, _ := quietGame(t)
	g.player.Shield = false
	g.player.MaxHP, g.player.HP = 5, 5

	l := NewLeviathan(Vec2{100, g.player.Pos.Y})
	l.hazards.Beam = &Beam{
		Origin:    l.Body().Pos,
		Angle:     0,
		Length:    laserLength,
		HalfWidth: serpentBeamHalfWidth,
		Firing:    true,
		Damage:    1,
	}
	g.bosses = []Boss{l}

	g.collisions.Resolve()
	g.collisions.Resolve()
	assert.Equal(t, 4, g.player.HP)
}

func TestLeviathanDeathGrantsDash(t *testing.T) {
	g, _ := quietGame(t)
	l := NewLeviathan(Vec2{200, 100})
	l.hp = 1
	g.bosses = []Boss{l}
	g.player.Bullets = []*Projectile{stillBullet(Vec2{200, 100})}

	g.collisions.Resolve()

	assert.Empty(t, g.bosses)
	assert.True(t, g.player.HasDash)
	assert.True(t, g.session.Dash)
	assert.Equal(t, ultimateCoins, g.session.Coins)
}

func TestVortexPullsPlayer(t *testing.T) {
	g, _ := quietGame(t)
	l := NewLeviathan(Vec2{100, 100})
	start := g.player.Pos
	l.hazards.Vortex = &Vortex{Center: start.Add(Vec2{100, 0}), Radius: 200, MaxRadius: 200, Pull: vortexPull, Duration: vortexTicks}
	g.bosses = []Boss{l}

	g.collisions.Resolve()
	assert.InDelta(t, start.X+vortexPull, g.player.Pos.X, 1e-9)
}
