package game

import (
	"math/rand"
	"time"
)

// Game is the simulation. It owns every entity container; only Tick mutates them.
type Game struct {
	config Config
	arena  Arena
	rng    *rand.Rand

	session    *Session
	scheduler  *Scheduler
	collisions *CollisionSystem
	director   *Director

	player     *Player
	enemies    []Enemy
	bosses     []Boss
	explosions []*Explosion
	powerups   []*Powerup

	powerupSpawned bool
	paused         bool
	waveCleared    bool
	tick           uint64

	reversalEvent EventID

	// Name of the last ability won, for the HUD
	lastReward Reward
}

// NewGame creates a game for the session and starts its current level
func NewGame(config Config, session *Session) *Game {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if session == nil {
		session = NewSession(DefaultSnapshot(), nil)
	}
	session.Endless = session.Endless || config.Endless
	session.AllowMultiplePowerups = session.AllowMultiplePowerups || config.AllowMultiplePowerups

	g := &Game{
		config:    config,
		arena:     config.Arena(),
		rng:       rand.New(rand.NewSource(seed)),
		session:   session,
		scheduler: NewScheduler(),
	}
	g.collisions = NewCollisionSystem(g)
	g.director = NewDirector(g)
	g.ResetLevel()
	return g
}

// ResetLevel restarts the current level: a fresh player built from the session,
// eight new enemies, and no bosses, hazards or pickups. Pending timers are dropped.
func (g *Game) ResetLevel() {
	g.scheduler.Clear()
	g.reversalEvent = 0
	g.player = NewPlayer(g.arena, g.session.PlayerStats())

	g.enemies = make([]Enemy, 0, EnemyTarget*2)
	for i := 0; i < EnemyTarget; i++ {
		g.enemies = append(g.enemies, NewEnemy(GetRandomEnemyKind(g.rng), g.arena.RandomEdge(g.rng)))
	}
	g.bosses = nil
	g.explosions = nil
	g.powerups = nil
	g.powerupSpawned = false
	g.waveCleared = false
	g.session.LevelKills = 0

	logger().Info("level start",
		"level", g.session.Level,
		"max_hp", g.player.MaxHP,
		"damage", g.player.Damage,
		"endless", g.session.Endless)
}

// Tick advances the simulation by one step. Nothing moves while paused,
// after the player dies, or while the victory screen is up.
func (g *Game) Tick(in Input) {
	if g.paused || !g.player.Alive || g.session.Victory {
		return
	}

	g.tick++
	g.scheduler.RunDue(g.tick)
	g.dropInvalid()

	p := g.player
	if in.Fire {
		p.Shoot(in.Pointer)
	}
	p.HandleInput(in, g.arena)
	p.Update(g.arena)

	if len(g.bosses) == 0 {
		for _, e := range g.enemies {
			e.Update(g)
		}
	}
	for _, b := range g.bosses {
		b.Update(g)
	}
	g.updateExplosions()

	g.collisions.Resolve()
	g.director.Update()

	if g.waveCleared {
		g.waveCleared = false
		if g.session.waveCleared() {
			logger().Info("endless advance", "level", g.session.Level)
			g.ResetLevel()
		} else {
			logger().Info("victory", "level", g.session.Level)
		}
	}

	if !p.Alive {
		logger().Info("player died", "level", g.session.Level, "score", p.Score)
	}
}

// dropInvalid removes nil entities and entities with broken positions before they can spread NaNs
func (g *Game) dropInvalid() {
	kept := g.enemies[:0]
	for i, e := range g.enemies {
		if e == nil || !e.Body().Valid() {
			logger().Warn("dropping malformed enemy", "index", i)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(g.enemies); i++ {
		g.enemies[i] = nil
	}
	g.enemies = kept

	bosses := g.bosses[:0]
	for i, b := range g.bosses {
		if b == nil || !b.Body().Valid() {
			logger().Warn("dropping malformed boss", "index", i)
			continue
		}
		bosses = append(bosses, b)
	}
	g.bosses = bosses
}

func (g *Game) updateExplosions() {
	kept := g.explosions[:0]
	for _, ex := range g.explosions {
		ex.Update()
		if !ex.Done() {
			kept = append(kept, ex)
		}
	}
	g.explosions = kept
}

// hurtPlayer applies flat damage unless the shield is up
func (g *Game) hurtPlayer(amount int) {
	if g.player.Shield {
		return
	}
	g.player.TakeDamage(amount)
}

// creditKill books an enemy kill
func (g *Game) creditKill() {
	g.session.creditKill()
	g.player.Score += KillScore
}

// bossDefeated pays out a boss, immediately or after its death sequence
func (g *Game) bossDefeated(b Boss) {
	cfg := GetBossKindConfig(b.Kind())
	logger().Info("boss defeated", "boss", cfg.Name, "death_ticks", cfg.DeathTicks)
	if cfg.DeathTicks > 0 {
		g.scheduler.After(cfg.DeathTicks, func() { g.finishBoss(b) })
		return
	}
	g.finishBoss(b)
}

// finishBoss removes a defeated boss and grants its rewards
func (g *Game) finishBoss(b Boss) {
	remaining := make([]Boss, 0, len(g.bosses))
	found := false
	for _, other := range g.bosses {
		if other == b {
			found = true
			continue
		}
		remaining = append(remaining, other)
	}
	if !found {
		return
	}
	g.bosses = remaining

	cfg := GetBossKindConfig(b.Kind())
	g.player.Score += cfg.Score
	g.session.Coins += cfg.Coins
	if cfg.Reward != RewardNone {
		g.session.grantReward(cfg.Reward)
		g.lastReward = cfg.Reward
		switch cfg.Reward {
		case RewardBlink:
			g.player.HasBlink = true
			g.player.BlinkCooldown = 0
		case RewardDash:
			g.player.HasDash = true
			g.player.DashCooldown = 0
		}
		logger().Info("ability unlocked", "reward", cfg.Reward.String())
	}

	if len(g.bosses) == 0 {
		g.waveCleared = true
	}
}

// ReverseControls inverts the player's movement for the given ticks.
// Triggering it again while active extends it from now.
func (g *Game) ReverseControls(ticks int) {
	g.scheduler.Cancel(g.reversalEvent)
	g.player.ControlsReversed = true
	g.reversalEvent = g.scheduler.After(ticks, func() {
		g.player.ControlsReversed = false
		g.reversalEvent = 0
	})
}

// SetPaused freezes or resumes the simulation, scheduled events included
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// Paused reports whether the simulation is frozen
func (g *Game) Paused() bool { return g.paused }

// TogglePause flips the pause state
func (g *Game) TogglePause() { g.paused = !g.paused }

// ChooseUpgrade takes the victory reward and applies it to the player at once
func (g *Game) ChooseUpgrade(choice UpgradeChoice) error {
	if err := g.session.ChooseUpgrade(choice); err != nil {
		return err
	}
	switch choice {
	case UpgradeHP:
		g.player.MaxHP++
		g.player.HP = g.player.MaxHP
	case UpgradeSpeed:
		g.player.Speed++
	}
	return nil
}

// NextLevel leaves the victory screen for the next level.
// It reports false when the final level was beaten and the run is over.
func (g *Game) NextLevel() bool {
	if !g.session.NextLevel() {
		return false
	}
	g.ResetLevel()
	return true
}

// SelectLevel starts a new run on an unlocked level
func (g *Game) SelectLevel(level int) error {
	if err := g.session.SelectLevel(level); err != nil {
		return err
	}
	g.session.BossKills = 0
	g.paused = false
	g.ResetLevel()
	return nil
}

// Accessors for front ends and tests

func (g *Game) Player() *Player          { return g.player }
func (g *Game) Session() *Session        { return g.session }
func (g *Game) Enemies() []Enemy         { return g.enemies }
func (g *Game) Bosses() []Boss           { return g.bosses }
func (g *Game) Explosions() []*Explosion { return g.explosions }
func (g *Game) Powerups() []*Powerup     { return g.powerups }
func (g *Game) Arena() Arena             { return g.arena }
func (g *Game) Config() Config           { return g.config }
func (g *Game) Now() uint64              { return g.tick }

// GameOver reports whether the player has died
func (g *Game) GameOver() bool { return !g.player.Alive }
