package game

// BossKind defines the boss variants
type BossKind int

const (
	BossStandard  BossKind = iota
	BossBehemoth           // Three-phase ultimate boss on level 61
	BossLeviathan          // Segmented serpent ultimate boss on level 62
)

// String returns the sprite tag for the kind
func (k BossKind) String() string {
	return GetBossKindConfig(k).Tag
}

// Reward is the permanent ability an ultimate boss grants
type Reward int

const (
	RewardNone Reward = iota
	RewardBlink
	RewardDash
)

func (r Reward) String() string {
	switch r {
	case RewardBlink:
		return "Dimensional Blink"
	case RewardDash:
		return "Void Serpent Coil"
	default:
		return ""
	}
}

// BossKindConfig holds configuration for each boss kind
type BossKindConfig struct {
	Kind          BossKind
	Name          string
	Tag           string
	Radius        float64
	Speed         float64
	AttackDelay   int
	RotationSpeed float64

	// Paid on defeat
	Score  int
	Coins  int
	Reward Reward

	// Ticks between the killing blow and removal; 0 removes at once
	DeathTicks int
}

// GetBossKindConfig returns configuration for a boss kind
func GetBossKindConfig(kind BossKind) BossKindConfig {
	switch kind {
	case BossStandard:
		return BossKindConfig{
			Kind:          BossStandard,
			Name:          "Boss",
			Tag:           "boss-standard",
			Radius:        45,
			Speed:         1.5,
			AttackDelay:   300,
			RotationSpeed: 0.05,
			Score:         bossScore,
			Coins:         bossCoins,
		}
	case BossBehemoth:
		return BossKindConfig{
			Kind:          BossBehemoth,
			Name:          "Galactic Behemoth",
			Tag:           "boss-behemoth",
			Radius:        80,
			Speed:         1,
			AttackDelay:   60,
			RotationSpeed: 0.02,
			Score:         ultimateScore,
			Coins:         ultimateCoins,
			Reward:        RewardBlink,
			DeathTicks:    bossDeathTicks,
		}
	case BossLeviathan:
		return BossKindConfig{
			Kind:          BossLeviathan,
			Name:          "Celestial Leviathan",
			Tag:           "boss-leviathan",
			Radius:        40,
			Speed:         2,
			AttackDelay:   300,
			RotationSpeed: 0.03,
			Score:         ultimateScore,
			Coins:         ultimateCoins,
			Reward:        RewardDash,
		}
	default:
		return GetBossKindConfig(BossStandard)
	}
}

// StandardBossHP returns a standard boss's pool for a level
func StandardBossHP(level int) float64 {
	if level <= 12 {
		return 5000
	}
	return 11000
}

// behemothPhaseHP are the independent phase pools
var behemothPhaseHP = [...]float64{20000, 22000, 25000}

const leviathanHP = 22000.0
