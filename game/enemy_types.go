package game

import "math/rand"

// EnemyKind defines the regular enemy variants
type EnemyKind int

const (
	EnemyBasic       EnemyKind = iota // Chases the player, bounces back to an edge on contact
	EnemySplitLarge                   // Splits into four medium pieces
	EnemySplitMedium                  // Splits into two small pieces
	EnemySplitSmall                   // Dies for good
	EnemyExploding                    // Leaves an explosion where it dies
	EnemyShooting                     // Fires at the player once a second
)

// String returns the sprite tag for the kind
func (k EnemyKind) String() string {
	return GetEnemyKindConfig(k).Tag
}

// EnemyKindConfig holds configuration for each enemy kind
type EnemyKindConfig struct {
	Kind   EnemyKind
	Tag    string
	Radius float64
	Speed  float64
}

// GetEnemyKindConfig returns configuration for an enemy kind
func GetEnemyKindConfig(kind EnemyKind) EnemyKindConfig {
	switch kind {
	case EnemyBasic:
		return EnemyKindConfig{Kind: kind, Tag: "enemy-basic", Radius: 15, Speed: 2}
	case EnemySplitLarge:
		return EnemyKindConfig{Kind: kind, Tag: "enemy-split-large", Radius: 25, Speed: 1.5}
	case EnemySplitMedium:
		return EnemyKindConfig{Kind: kind, Tag: "enemy-split-medium", Radius: 15, Speed: 2}
	case EnemySplitSmall:
		return EnemyKindConfig{Kind: kind, Tag: "enemy-split-small", Radius: 8, Speed: 2.5}
	case EnemyExploding:
		return EnemyKindConfig{Kind: kind, Tag: "enemy-exploding", Radius: 20, Speed: 2}
	case EnemyShooting:
		return EnemyKindConfig{Kind: kind, Tag: "enemy-shooting", Radius: 18, Speed: 2}
	default:
		return GetEnemyKindConfig(EnemyBasic)
	}
}

// spawnableKinds are the kinds the director tops up with, chosen uniformly
var spawnableKinds = [...]EnemyKind{EnemySplitLarge, EnemyExploding, EnemyShooting, EnemyBasic}

// GetRandomEnemyKind returns a uniformly chosen spawnable kind
func GetRandomEnemyKind(rng *rand.Rand) EnemyKind {
	return spawnableKinds[rng.Intn(len(spawnableKinds))]
}
