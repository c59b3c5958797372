package game

import "math/rand"

// PowerupKind is the effect a pickup grants
type PowerupKind int

const (
	PowerupShield PowerupKind = iota
	PowerupMultiShot
)

func (k PowerupKind) String() string {
	if k == PowerupMultiShot {
		return "powerup-multishot"
	}
	return "powerup-shield"
}

// Powerup is a pickup lying in the arena
type Powerup struct {
	Kind   PowerupKind
	Pos    Vec2
	Radius float64
}

func newPowerup(kind PowerupKind, arena Arena, rng *rand.Rand) *Powerup {
	return &Powerup{
		Kind:   kind,
		Pos:    arena.RandomInterior(rng, powerupEdgeInset),
		Radius: powerupRadius,
	}
}

// powerupForBossKills alternates shield and multi-shot with the boss kill count
func powerupForBossKills(bossKills int) PowerupKind {
	if bossKills%2 == 0 {
		return PowerupShield
	}
	return PowerupMultiShot
}
