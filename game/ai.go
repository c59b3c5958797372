package game

import "math"

// Pursue moves a body straight at the target at its own speed
func Pursue(b *Body, target Vec2) {
	angle := AngleTo(b.Pos, target)
	b.Pos = b.Pos.Add(FromAngle(angle, b.Speed))
}

// Follow moves a point toward a leader so that it trails at the given spacing.
// Used for serpent segments; a point already within spacing stays put.
func Follow(p, leader Vec2, spacing float64) Vec2 {
	d := Distance(p, leader)
	if d <= spacing || d == 0 {
		return p
	}
	angle := AngleTo(leader, p)
	return leader.Add(FromAngle(angle, spacing))
}

// PullToward displaces a point toward a center by at most step pixels
func PullToward(p, center Vec2, step float64) Vec2 {
	d := Distance(p, center)
	if d == 0 {
		return p
	}
	if step > d {
		step = d
	}
	return p.Add(FromAngle(AngleTo(p, center), step))
}

// RotateTowardsTarget turns a heading towards a target angle by at most maxStep radians
func RotateTowardsTarget(current, target, maxStep float64) float64 {
	diff := NormalizeAngle(target - current)
	if math.Abs(diff) > maxStep {
		if diff > 0 {
			diff = maxStep
		} else {
			diff = -maxStep
		}
	}
	return current + diff
}

// PredictiveAim returns where to aim so that a projectile of the given speed
// meets a target moving at constant velocity
func PredictiveAim(shooter, target, targetVel Vec2, projectileSpeed float64) Vec2 {
	// Stationary target
	if math.Abs(targetVel.X) < 0.01 && math.Abs(targetVel.Y) < 0.01 {
		return target
	}

	distance := Distance(shooter, target)
	if distance < 1.0 || projectileSpeed <= 0 {
		return target
	}

	// Iterate time-to-intercept a few times
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		predicted := target.Add(targetVel.Scale(t))
		newT := Distance(shooter, predicted) / projectileSpeed
		if math.Abs(newT-t) < 0.001 {
			break
		}
		t = newT
	}

	return target.Add(targetVel.Scale(t))
}
