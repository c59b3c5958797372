package game

import "math"

// Behemoth is the three-phase ultimate boss. Each phase has its own HP pool;
// damage beyond a pool is lost, and every phase change buffs the player's damage.
type Behemoth struct {
	bossCore

	phase      int
	baseDamage float64
	hazards    BossHazards

	phase3Ticks int

	// Supernova bookkeeping: the low-HP countdown and the enrage timer both lead to one blast
	countdownEvent   EventID
	countdownAt      uint64
	countdownStarted bool
	enrageWarned     bool
	supernovaStarted bool
}

// NewBehemoth creates the Behemoth, capturing the player's damage so the phase buff can be reverted
func NewBehemoth(pos Vec2, playerDamage float64) *Behemoth {
	return &Behemoth{
		bossCore:   newBossCore(BossBehemoth, pos, behemothPhaseHP[0]),
		phase:      1,
		baseDamage: playerDamage,
	}
}

func (b *Behemoth) Phase() int            { return b.phase }
func (b *Behemoth) Hazards() *BossHazards { return &b.hazards }

// Plates returns the positions of the eight armour plates around the hull
func (b *Behemoth) Plates() []Vec2 {
	return orbit(b.body.Pos, 8, b.body.Radius, b.rotation)
}

// Satellites returns the positions of the four counter-rotating satellites
func (b *Behemoth) Satellites() []Vec2 {
	return orbit(b.body.Pos, 4, 150, -2*b.rotation)
}

func orbit(center Vec2, count int, distance, offset float64) []Vec2 {
	out := make([]Vec2, count)
	for i := range out {
		angle := float64(i)/float64(count)*2*math.Pi + offset
		out[i] = center.Add(FromAngle(angle, distance))
	}
	return out
}

// SupernovaIn returns the ticks left before the supernova, if one is pending
func (b *Behemoth) SupernovaIn(now uint64) (int, bool) {
	if b.supernovaStarted {
		return 0, false
	}
	left := -1
	if b.countdownStarted && b.countdownAt >= now {
		left = int(b.countdownAt - now)
	}
	if b.enrageWarned {
		enrage := supernovaEnrageTicks - b.phase3Ticks
		if left < 0 || enrage < left {
			left = enrage
		}
	}
	return left, left >= 0
}

func (b *Behemoth) Update(g *Game) {
	if b.dying {
		return
	}
	Pursue(&b.body, g.player.Pos)
	b.rotation += b.cfg.RotationSpeed

	b.updateBeam()

	if b.tickAttack() {
		switch b.phase {
		case 1:
			b.phaseOneAttack(g)
		case 2:
			b.phaseTwoAttack(g)
		default:
			b.phaseThreeAttack(g)
		}
	}

	b.bullets = advanceProjectiles(b.bullets, g.arena, g.player.Pos)
	b.hazards.updateRifts()

	if b.phase == 3 {
		b.phase3Ticks++
		if b.phase3Ticks >= supernovaEnrageWarn && !b.enrageWarned {
			b.enrageWarned = true
			logger().Info("behemoth enraged", "ticks_left", supernovaEnrageTicks-b.phase3Ticks)
		}
		if b.phase3Ticks >= supernovaEnrageTicks {
			b.startSupernova(g)
		}
	}

	if sn := b.hazards.Supernova; sn != nil {
		sn.Center = b.body.Pos
		sn.Update()
		if sn.Done() {
			b.hazards.Supernova = nil
		}
	}
}

// updateBeam advances a charging beam: a warning window, then a widening firing window
func (b *Behemoth) updateBeam() {
	beam := b.hazards.Beam
	if beam == nil {
		return
	}
	beam.Tick++
	beam.Origin = b.body.Pos
	if beam.Tick < beamWarningTicks {
		beam.Warning, beam.Firing = true, false
		return
	}
	beam.Warning, beam.Firing = false, true
	beam.HalfWidth += beamWidthGrowth
	if beam.Tick > beamFireEnd {
		b.hazards.Beam = nil
	}
}

func (b *Behemoth) phaseOneAttack(g *Game) {
	// Nothing else fires while the beam charges or burns
	if b.hazards.Beam != nil {
		return
	}
	aim := AngleTo(b.body.Pos, g.player.Pos)
	if g.rng.Float64() < 0.2 {
		b.hazards.Beam = &Beam{
			Origin:    b.body.Pos,
			Angle:     aim,
			Length:    laserLength,
			HalfWidth: beamStartWidth,
			Warning:   true,
			Push:      laserPush,
		}
		return
	}

	for _, p := range ring(b.body.Pos, 12, 8, 4, b.rotation) {
		p.Laser = true
		b.bullets = append(b.bullets, p)
	}

	if g.rng.Float64() < 0.3 {
		for i := 0; i < 4; i++ {
			pos := b.body.Pos.Add(FromAngle(float64(i)/4*2*math.Pi, 100))
			sentinel := NewBossBullet(pos, aim, 10, 3)
			sentinel.Homing = true
			sentinel.HomingStrength = 0.1
			b.bullets = append(b.bullets, sentinel)
		}
	}
}

func (b *Behemoth) phaseTwoAttack(g *Game) {
	if g.rng.Float64() < 0.3 {
		for i := 0; i < 3; i++ {
			b.hazards.Rifts = append(b.hazards.Rifts, newRift(g.arena.RandomInterior(g.rng, 0)))
		}
	}
	if g.rng.Float64() < 0.5 {
		aim := AngleTo(b.body.Pos, g.player.Pos)
		for i := 0; i < 3; i++ {
			hole := NewBossBullet(b.body.Pos, aim+float64(i-1)*math.Pi/4, 15, 2)
			hole.BlackHole = true
			b.bullets = append(b.bullets, hole)
		}
	}
}

func (b *Behemoth) phaseThreeAttack(g *Game) {
	for _, p := range ring(b.body.Pos, 16, 5, 3, b.rotation) {
		p.Accelerating = true
		p.Acceleration = 0.2
		b.bullets = append(b.bullets, p)
	}

	if g.rng.Float64() < 0.1 {
		g.ReverseControls(controlReversalTicks)
		for _, p := range ring(b.body.Pos, 24, 8, 4, b.rotation) {
			p.Spiral = true
			p.SpiralSpeed = 0.1
			p.Decorative = true
			b.bullets = append(b.bullets, p)
		}
	}

	if b.hp < behemothPhaseHP[2]*supernovaThreshold && !b.countdownStarted && !b.supernovaStarted {
		b.countdownStarted = true
		b.countdownAt = g.scheduler.Now() + supernovaCountdown
		b.countdownEvent = g.scheduler.After(supernovaCountdown, func() {
			b.startSupernova(g)
		})
		for _, p := range ring(b.body.Pos, 36, 4, 2, 0) {
			p.Warning = true
			b.bullets = append(b.bullets, p)
		}
		logger().Info("supernova countdown started", "ticks", supernovaCountdown)
	}
}

// startSupernova fires the blast once; later triggers are ignored
func (b *Behemoth) startSupernova(g *Game) {
	if b.supernovaStarted || b.dying {
		return
	}
	b.supernovaStarted = true
	g.scheduler.Cancel(b.countdownEvent)
	b.hazards.Supernova = &Supernova{
		Center: b.body.Pos,
		Limit:  1.5 * g.arena.MaxSide(),
	}
	logger().Warn("supernova")
}

func (b *Behemoth) TakeDamage(g *Game, amount float64) bool {
	if b.dying || !b.damagePool(amount) {
		return false
	}

	if b.phase < 3 {
		b.phase++
		b.hp = behemothPhaseHP[b.phase-1]
		b.maxHP = b.hp
		b.hazards.Beam = nil
		g.player.Damage = b.baseDamage + behemothDamageBuff*float64(b.phase-1)
		logger().Info("behemoth phase change", "phase", b.phase, "player_damage", g.player.Damage)
		return false
	}

	g.player.Damage = b.baseDamage
	g.scheduler.Cancel(b.countdownEvent)
	b.hazards.clear()
	b.die()
	return true
}
