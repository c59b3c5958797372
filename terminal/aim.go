package terminal

import (
	"math"

	"quackshot/game"
)

// a target that jumps further than this between ticks is treated as a new one
const maxTrackStep = 30

// Aimer picks the nearest hostile and leads it using its tracked velocity
type Aimer struct {
	prev    game.Vec2
	hasPrev bool
}

// Aim returns the point to fire at, or false when nothing is in the arena
func (a *Aimer) Aim(g *game.Game) (game.Vec2, bool) {
	shooter := g.Player().Pos
	target, ok := nearestHostile(g, shooter)
	if !ok {
		a.hasPrev = false
		return game.Vec2{}, false
	}

	var vel game.Vec2
	if a.hasPrev && game.Distance(a.prev, target) < maxTrackStep {
		vel = target.Sub(a.prev)
	}
	a.prev, a.hasPrev = target, true

	speed := game.GetProjectileConfig(game.ProjectilePlayer).Speed
	return game.PredictiveAim(shooter, target, vel, speed), true
}

func nearestHostile(g *game.Game, from game.Vec2) (game.Vec2, bool) {
	best := math.Inf(1)
	var at game.Vec2
	consider := func(p game.Vec2) {
		if d := game.Distance(from, p); d < best {
			best, at = d, p
		}
	}

	for _, b := range g.Bosses() {
		if !b.Dying() {
			consider(b.Body().Pos)
		}
	}
	for _, e := range g.Enemies() {
		consider(e.Body().Pos)
	}
	return at, !math.IsInf(best, 1)
}
