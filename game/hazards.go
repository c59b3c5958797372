package game

import "math"

// Beam is a charged straight-line attack. It only acts while Firing.
type Beam struct {
	Origin    Vec2
	Angle     float64
	Length    float64
	HalfWidth float64

	// Ticks since the charge began
	Tick    int
	Warning bool
	Firing  bool
	Push    float64
	Damage  int
	damaged bool
}

// End returns the far end of the beam
func (b *Beam) End() Vec2 {
	return b.Origin.Add(FromAngle(b.Angle, b.Length))
}

// Touches reports whether a circle is within reach of the beam
func (b *Beam) Touches(p Vec2, radius float64) bool {
	return SegmentDistance(p, b.Origin, b.End()) < radius+b.HalfWidth
}

// Rift is a tear that grows, then dissipates. It hurts the player once.
type Rift struct {
	Pos       Vec2
	Radius    float64
	MaxRadius float64
	Age       int
	Duration  int
	Spent     bool
}

func newRift(pos Vec2) *Rift {
	return &Rift{Pos: pos, MaxRadius: riftMaxRadius, Duration: riftTicks}
}

// Update grows the rift over the first half of its life and shrinks it over the second
func (r *Rift) Update() {
	r.Age++
	half := float64(r.Duration) / 2
	t := float64(r.Age)
	if t <= half {
		r.Radius = r.MaxRadius * t / half
	} else {
		r.Radius = r.MaxRadius * math.Max(0, (float64(r.Duration)-t)/half)
	}
}

// Done reports whether the rift has closed
func (r *Rift) Done() bool {
	return r.Age >= r.Duration
}

// Vortex pulls the player toward its center without hurting them
type Vortex struct {
	Center    Vec2
	Radius    float64
	MaxRadius float64
	Pull      float64
	Age       int
	Duration  int
}

// Update grows the vortex to full size over its first third
func (v *Vortex) Update(center Vec2) {
	v.Center = center
	v.Age++
	grow := float64(v.Duration) / 3
	v.Radius = v.MaxRadius * math.Min(1, float64(v.Age)/grow)
}

// Done reports whether the vortex has collapsed
func (v *Vortex) Done() bool {
	return v.Age >= v.Duration
}

// Supernova is the Behemoth's last resort: an expanding lethal shell
type Supernova struct {
	Center Vec2
	Radius float64
	Limit  float64
}

// Update expands the shell one tick
func (s *Supernova) Update() {
	s.Radius += supernovaGrowth
}

// Done reports whether the shell has passed the edge of the arena
func (s *Supernova) Done() bool {
	return s.Radius > s.Limit
}

// BossHazards are the area effects a boss currently has in play
type BossHazards struct {
	Beam      *Beam
	Rifts     []*Rift
	Vortex    *Vortex
	Supernova *Supernova
}

// HazardOwner is a boss that places area hazards besides its bullets
type HazardOwner interface {
	Hazards() *BossHazards
}

// updateRifts ticks every rift and drops the closed ones
func (h *BossHazards) updateRifts() {
	kept := h.Rifts[:0]
	for _, r := range h.Rifts {
		r.Update()
		if !r.Done() {
			kept = append(kept, r)
		}
	}
	h.Rifts = kept
}

// clear removes every hazard
func (h *BossHazards) clear() {
	*h = BossHazards{}
}
