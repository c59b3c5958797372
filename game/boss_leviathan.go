package game

import "math"

// Leviathan is the serpent ultimate boss. Its phase only changes how it looks.
type Leviathan struct {
	bossCore

	segments []Vec2
	hazards  BossHazards
}

// NewLeviathan creates the serpent with its body trailing to the left of the head
func NewLeviathan(pos Vec2) *Leviathan {
	l := &Leviathan{
		bossCore: newBossCore(BossLeviathan, pos, leviathanHP),
		segments: make([]Vec2, serpentSegmentCount),
	}
	for i := range l.segments {
		l.segments[i] = pos.Add(Vec2{X: -float64(i) * serpentSegmentSpacing})
	}
	return l
}

// Phase is 1 at full health and reaches 3 as the pool drains
func (l *Leviathan) Phase() int {
	if l.maxHP <= 0 {
		return 1
	}
	phase := 1 + int(math.Floor(3*(1-l.hp/l.maxHP)))
	return min(max(phase, 1), 3)
}

func (l *Leviathan) Hazards() *BossHazards { return &l.hazards }

// Segments returns the body segment positions, head end first
func (l *Leviathan) Segments() []Vec2 { return l.segments }

func (l *Leviathan) Update(g *Game) {
	if l.dying {
		return
	}
	Pursue(&l.body, g.player.Pos)
	l.rotation += l.cfg.RotationSpeed

	leader := l.body.Pos
	for i := range l.segments {
		l.segments[i] = Follow(l.segments[i], leader, serpentSegmentSpacing)
		leader = l.segments[i]
	}

	l.updateVortex()
	l.updateBeam()

	if l.tickAttack() {
		l.attack(g)
	}

	l.bullets = advanceProjectiles(l.bullets, g.arena, g.player.Pos)
}

// attack picks uniformly among the three bursts, the vortex and the beam.
// A special that is already running falls back to a burst.
func (l *Leviathan) attack(g *Game) {
	switch g.rng.Intn(5) {
	case 0:
		l.bullets = append(l.bullets, lineBurst(l.body.Pos, g.player.Pos)...)
	case 1:
		l.bullets = append(l.bullets, bigRing(l.body.Pos)...)
	case 2:
		l.bullets = append(l.bullets, smallRing(l.body.Pos)...)
	case 3:
		if l.hazards.Vortex != nil {
			l.bullets = append(l.bullets, smallRing(l.body.Pos)...)
			return
		}
		l.hazards.Vortex = &Vortex{
			Center:    l.body.Pos,
			MaxRadius: vortexMaxRadius,
			Pull:      vortexPull,
			Duration:  vortexTicks,
		}
	default:
		if l.hazards.Beam != nil {
			l.bullets = append(l.bullets, smallRing(l.body.Pos)...)
			return
		}
		l.hazards.Beam = &Beam{
			Origin:    l.body.Pos,
			Angle:     AngleTo(l.body.Pos, g.player.Pos),
			Length:    laserLength,
			HalfWidth: serpentBeamHalfWidth,
			Warning:   true,
			Damage:    1,
		}
	}
}

func (l *Leviathan) updateVortex() {
	v := l.hazards.Vortex
	if v == nil {
		return
	}
	v.Update(l.body.Pos)
	if v.Done() {
		l.hazards.Vortex = nil
	}
}

// updateBeam runs the warning window, then the firing window, tracking the head
func (l *Leviathan) updateBeam() {
	beam := l.hazards.Beam
	if beam == nil {
		return
	}
	beam.Tick++
	beam.Origin = l.body.Pos
	beam.Warning = beam.Tick < serpentBeamWarning
	beam.Firing = !beam.Warning
	if beam.Tick >= serpentBeamWarning+serpentBeamFire {
		l.hazards.Beam = nil
	}
}

func (l *Leviathan) TakeDamage(g *Game, amount float64) bool {
	if l.dying || !l.damagePool(amount) {
		return false
	}
	l.hazards.clear()
	l.die()
	return true
}
