package game

// Action is a held control sampled once per tick
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionBlink
	ActionDash
)

// ActionSet is a bit set of held actions
type ActionSet uint8

// With returns the set with a added
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Has reports whether a is held
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Input is the per-tick snapshot of the player's controls
type Input struct {
	Held    ActionSet
	Pointer Vec2

	// Fire is true while the fire button is held; the player shoots every tick it is set
	Fire bool
}

// InputSource produces the next tick's input.
// Front ends (desktop window, terminal) implement it over their own devices.
type InputSource interface {
	Sample() Input
}

// Movement returns the unit step implied by the held direction actions.
// Opposing directions cancel out.
func (in Input) Movement() Vec2 {
	var m Vec2
	if in.Held.Has(ActionLeft) {
		m.X--
	}
	if in.Held.Has(ActionRight) {
		m.X++
	}
	if in.Held.Has(ActionUp) {
		m.Y--
	}
	if in.Held.Has(ActionDown) {
		m.Y++
	}
	return m
}
