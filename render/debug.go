package render

// DebugState holds debug flags that persist across level resets
type DebugState struct {
	ShowHitboxes bool // Outline every sprite's collision circle and print frame stats
}

// Toggle flips the hitbox overlay
func (d *DebugState) Toggle() {
	d.ShowHitboxes = !d.ShowHitboxes
}
