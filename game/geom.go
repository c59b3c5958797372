package game

import (
	"math"
	"math/rand"
)

// Vec2 is a point or direction on the playfield
type Vec2 struct {
	X, Y float64
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the vector length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsNaN reports whether either component is NaN or infinite
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// FromAngle returns a vector of the given length pointing at angle (radians, 0 = east)
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// AngleTo returns the heading from one point to another
func AngleTo(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CirclesOverlap reports whether two circles intersect.
// Touching circles (distance == r1+r2) do not overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return Distance(a, b) < ra+rb
}

// SegmentDistance returns the perpendicular distance from p to the segment a-b,
// or the distance to the nearest endpoint when the projection falls outside it
func SegmentDistance(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lenSq
	t = Clamp(t, 0, 1)
	return Distance(p, a.Add(ab.Scale(t)))
}

// NormalizeAngle wraps an angle into [-π, π]
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Arena is the rectangular playfield [0,W]x[0,H]
type Arena struct {
	W, H float64
}

// Clamp keeps a circle of the given radius fully inside the arena
func (a Arena) Clamp(p Vec2, radius float64) Vec2 {
	return Vec2{
		X: Clamp(p.X, radius, a.W-radius),
		Y: Clamp(p.Y, radius, a.H-radius),
	}
}

// Contains reports whether p lies inside the arena grown by margin on every side
func (a Arena) Contains(p Vec2, margin float64) bool {
	return p.X >= -margin && p.X <= a.W+margin && p.Y >= -margin && p.Y <= a.H+margin
}

// Center returns the middle of the arena
func (a Arena) Center() Vec2 {
	return Vec2{a.W / 2, a.H / 2}
}

// MaxSide returns the larger arena side, used to size arena-covering effects
func (a Arena) MaxSide() float64 {
	return math.Max(a.W, a.H)
}

// RandomEdge picks a point on a random arena edge
func (a Arena) RandomEdge(rng *rand.Rand) Vec2 {
	if rng.Float64() < 0.5 {
		x := 0.0
		if rng.Float64() < 0.5 {
			x = a.W
		}
		return Vec2{x, rng.Float64() * a.H}
	}
	y := 0.0
	if rng.Float64() < 0.5 {
		y = a.H
	}
	return Vec2{rng.Float64() * a.W, y}
}

// RandomInterior picks a point at least margin away from every edge
func (a Arena) RandomInterior(rng *rand.Rand, margin float64) Vec2 {
	return Vec2{
		X: rng.Float64()*(a.W-2*margin) + margin,
		Y: rng.Float64()*(a.H-2*margin) + margin,
	}
}
