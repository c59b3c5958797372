package game

// Explosion is a growing blast. Hostile blasts hurt the player every tick it is inside;
// friendly blasts mark where an explosive player bullet landed and hurt nobody.
type Explosion struct {
	Pos       Vec2
	Radius    float64
	MaxRadius float64
	Timer     int
	Duration  int
	Damage    float64
	Friendly  bool
}

// NewExplosion creates a blast that has not started growing yet
func NewExplosion(pos Vec2, damage float64, friendly bool) *Explosion {
	return &Explosion{
		Pos:       pos,
		MaxRadius: explosionRadius,
		Timer:     explosionTicks,
		Duration:  explosionTicks,
		Damage:    damage,
		Friendly:  friendly,
	}
}

// Update grows the blast for one tick
func (e *Explosion) Update() {
	e.Radius = e.MaxRadius * (1 - float64(e.Timer)/float64(e.Duration))
	e.Timer--
}

// Done reports whether the blast has burnt out
func (e *Explosion) Done() bool {
	return e.Timer <= 0
}

// Progress returns how far through its life the blast is, 0 to 1
func (e *Explosion) Progress() float64 {
	if e.Duration == 0 {
		return 1
	}
	return 1 - float64(e.Timer)/float64(e.Duration)
}

// Contains reports whether a point is strictly inside the blast
func (e *Explosion) Contains(p Vec2) bool {
	return Distance(e.Pos, p) < e.Radius
}
