package game

// Body is the physical part shared by every actor on the playfield
type Body struct {
	// Position in arena coordinates
	Pos Vec2

	// Collision radius in pixels
	Radius float64

	// Movement speed in pixels per tick
	Speed float64
}

// DistanceTo calculates the distance to another body
func (b *Body) DistanceTo(other *Body) float64 {
	return Distance(b.Pos, other.Pos)
}

// IsColliding checks if this body overlaps another
func (b *Body) IsColliding(other *Body) bool {
	return CirclesOverlap(b.Pos, b.Radius, other.Pos, other.Radius)
}

// Valid reports whether the body can take part in a tick
func (b *Body) Valid() bool {
	return b != nil && !b.Pos.IsNaN()
}
