package game

import "math"

// Simulation
const (
	TicksPerSecond = 60
	MaxLevels      = 62
	BehemothLevel  = 61
	LeviathanLevel = 62
)

// Progression
const (
	EnemyTarget       = 8
	KillsToBoss       = 50
	KillsToPowerup    = 25
	KillScore         = 10
	UpgradeCost       = 50
	EndlessFirstLevel = 60
)

// Player
const (
	playerRadius         = 20.0
	playerBaseSpeed      = 5.0
	playerBaseHP         = 5
	playerBaseDamage     = 1.0
	blinkDistance        = 150.0
	blinkCooldown        = 120
	dashDistance         = 200.0
	dashCooldown         = 180
	afterimageLifetime   = 120
	multiShotCount       = 5
	multiShotSpread      = math.Pi / 8
	playerBulletSpeed    = 10.0
	playerBulletRadius   = 4.0
	enemyTouchDamage     = 1
	hazardHitDamage      = 1
	controlReversalTicks = 180
)

// Enemies
const (
	enemyBulletSpeed  = 5.0
	enemyBulletRadius = 3.0
	shooterDelay      = 60
	explosionRadius   = 60.0
	explosionTicks    = 180
	explosionDamage   = 2.0
	splitLargeOffset  = 20.0
	splitMediumOffset = 15.0
)

// Bosses
const (
	bossBulletMargin      = 50.0
	spiralDecay           = 0.97
	laserLength           = 1000.0
	laserPush             = 15.0
	blackHolePullRadius   = 150.0
	blackHolePull         = 1.5
	bossDeathTicks        = 180
	behemothDamageBuff    = 10.0
	beamWarningTicks      = 120
	beamFireEnd           = 180
	beamStartWidth        = 5.0
	beamWidthGrowth       = 0.5
	riftMaxRadius         = 80.0
	riftTicks             = 120
	supernovaThreshold    = 0.2
	supernovaCountdown    = 600
	supernovaGrowth       = 10.0
	supernovaEnrageWarn   = 1200
	supernovaEnrageTicks  = 1800
	vortexTicks           = 180
	vortexMaxRadius       = 200.0
	vortexPull            = 2.0
	serpentBeamWarning    = 90
	serpentBeamFire       = 60
	serpentBeamHalfWidth  = 12.0
	serpentSegmentCount   = 12
	serpentSegmentSpacing = 50.0
)

// Rewards
const (
	bossScore        = 100
	bossCoins        = 50
	ultimateScore    = 5000
	ultimateCoins    = 500
	powerupRadius    = 15.0
	powerupEdgeInset = 15.0
)
