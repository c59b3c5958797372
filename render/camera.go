package render

import (
	"math"

	"quackshot/game"
)

// Camera maps the arena onto the window, letterboxing to keep the aspect ratio
type Camera struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// NewCamera creates a camera that fits the arena into a width x height window
func NewCamera(arena game.Arena, width, height float64) *Camera {
	c := &Camera{Zoom: 1}
	c.Fit(arena, width, height)
	return c
}

// Fit recomputes zoom and offsets for a new window size
func (c *Camera) Fit(arena game.Arena, width, height float64) {
	c.Width, c.Height = width, height
	if arena.W <= 0 || arena.H <= 0 || width <= 0 || height <= 0 {
		c.Zoom, c.OffsetX, c.OffsetY = 1, 0, 0
		return
	}
	c.Zoom = math.Min(width/arena.W, height/arena.H)
	c.OffsetX = (width - arena.W*c.Zoom) / 2
	c.OffsetY = (height - arena.H*c.Zoom) / 2
}

// WorldToScreen converts arena coordinates to screen coordinates
func (c *Camera) WorldToScreen(p game.Vec2) (float64, float64) {
	return p.X*c.Zoom + c.OffsetX, p.Y*c.Zoom + c.OffsetY
}

// ScreenToWorld converts screen coordinates to arena coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) game.Vec2 {
	return game.Vec2{
		X: (sx - c.OffsetX) / c.Zoom,
		Y: (sy - c.OffsetY) / c.Zoom,
	}
}
