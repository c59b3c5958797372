package game

// ProjectileKind identifies who fired a projectile
type ProjectileKind int

const (
	ProjectilePlayer ProjectileKind = iota
	ProjectileBoss
	ProjectileEnemy
)

// String returns the sprite tag for the kind
func (k ProjectileKind) String() string {
	switch k {
	case ProjectilePlayer:
		return "player-bullet"
	case ProjectileBoss:
		return "boss-bullet"
	case ProjectileEnemy:
		return "enemy-bullet"
	default:
		return "bullet"
	}
}

// ProjectileConfig holds the defaults for each projectile kind
type ProjectileConfig struct {
	Kind   ProjectileKind
	Speed  float64
	Radius float64

	// Margin is how far past the arena edge the projectile may travel before it is off-screen
	Margin float64
}

// GetProjectileConfig returns configuration for a projectile kind
func GetProjectileConfig(kind ProjectileKind) ProjectileConfig {
	switch kind {
	case ProjectilePlayer:
		return ProjectileConfig{
			Kind:   ProjectilePlayer,
			Speed:  playerBulletSpeed,
			Radius: playerBulletRadius,
		}
	case ProjectileBoss:
		return ProjectileConfig{
			Kind:   ProjectileBoss,
			Speed:  7,
			Radius: 4,
			Margin: bossBulletMargin,
		}
	case ProjectileEnemy:
		return ProjectileConfig{
			Kind:   ProjectileEnemy,
			Speed:  enemyBulletSpeed,
			Radius: enemyBulletRadius,
		}
	default:
		return GetProjectileConfig(ProjectilePlayer)
	}
}
