package game

// PlayerStats is everything a level start derives from the session and active codes
type PlayerStats struct {
	MaxHP  int
	Speed  float64
	Damage float64

	Mods BulletMods

	Blink bool
	Dash  bool
}

// Afterimage is the fading copy a dash leaves behind
type Afterimage struct {
	Pos    Vec2
	Radius float64
	Life   int
}

// Player is the duck
type Player struct {
	Body

	HP     int
	MaxHP  int
	Alive  bool
	Damage float64
	Score  int

	// Pickups
	Shield    bool
	MultiShot bool

	// Abilities granted by ultimate bosses
	HasBlink      bool
	BlinkCooldown int
	BlinkFlash    int
	HasDash       bool
	DashCooldown  int
	Afterimages   []Afterimage

	Mods BulletMods

	ControlsReversed bool

	// Heading toward the pointer, for drawing
	Facing float64

	Bullets []*Projectile
}

// NewPlayer places a fresh player in the middle of the arena
func NewPlayer(arena Arena, stats PlayerStats) *Player {
	maxHP := stats.MaxHP
	if maxHP < 1 {
		maxHP = 1
	}
	speed := stats.Speed
	if speed <= 0 {
		speed = playerBaseSpeed
	}
	return &Player{
		Body: Body{
			Pos:    arena.Center(),
			Radius: playerRadius,
			Speed:  speed,
		},
		HP:       maxHP,
		MaxHP:    maxHP,
		Alive:    true,
		Damage:   stats.Damage,
		Mods:     stats.Mods,
		HasBlink: stats.Blink,
		HasDash:  stats.Dash,
	}
}

// HandleInput applies movement and the movement abilities for one tick
func (p *Player) HandleInput(in Input, arena Arena) {
	move := in.Movement()
	if p.ControlsReversed {
		move = move.Scale(-1)
	}
	p.Pos = arena.Clamp(p.Pos.Add(move.Scale(p.Speed)), p.Radius)
	p.Facing = AngleTo(p.Pos, in.Pointer)

	if p.HasBlink && in.Held.Has(ActionBlink) && p.BlinkCooldown <= 0 {
		p.Pos = arena.Clamp(p.Pos.Add(FromAngle(p.Facing, blinkDistance)), p.Radius)
		p.BlinkCooldown = blinkCooldown
		p.BlinkFlash = 20
	}

	if p.HasDash && in.Held.Has(ActionDash) && p.DashCooldown <= 0 {
		p.Afterimages = append(p.Afterimages, Afterimage{
			Pos:    p.Pos,
			Radius: p.Radius,
			Life:   afterimageLifetime,
		})
		p.Pos = arena.Clamp(p.Pos.Add(FromAngle(p.Facing, dashDistance)), p.Radius)
		p.DashCooldown = dashCooldown
	}
}

// Update ticks cooldowns, moves the player's bullets and fades afterimages
func (p *Player) Update(arena Arena) {
	if p.BlinkCooldown > 0 {
		p.BlinkCooldown--
	}
	if p.DashCooldown > 0 {
		p.DashCooldown--
	}
	if p.BlinkFlash > 0 {
		p.BlinkFlash--
	}

	p.Bullets = advanceProjectiles(p.Bullets, arena, p.Pos)

	kept := p.Afterimages[:0]
	for _, a := range p.Afterimages {
		a.Life--
		if a.Life > 0 {
			kept = append(kept, a)
		}
	}
	p.Afterimages = kept
}

// shotCount returns how many bullets one trigger pull fans out; 0 means a single straight shot
func (p *Player) shotCount() int {
	n := 0
	if p.MultiShot {
		n = multiShotCount
	}
	return max(n, p.Mods.Multishot)
}

// Shoot fires at the target, fanning bullets π/8 apart when multi-shot applies
func (p *Player) Shoot(target Vec2) {
	angle := AngleTo(p.Pos, target)
	n := p.shotCount()
	if n == 0 {
		p.Bullets = append(p.Bullets, p.newBullet(angle))
		return
	}
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * multiShotSpread
		p.Bullets = append(p.Bullets, p.newBullet(angle+offset))
	}
}

func (p *Player) newBullet(angle float64) *Projectile {
	b := NewProjectile(ProjectilePlayer, p.Pos, angle)
	b.MaxBounces = p.Mods.Bounces
	b.Explosive = p.Mods.Explosive
	b.ExplosiveDamage = p.Mods.ExplosiveDamage
	return b
}

// TakeDamage removes HP, clamping at zero. The player dies when HP reaches zero.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 || !p.Alive {
		return
	}
	p.HP = int(Clamp(float64(p.HP-amount), 0, float64(p.MaxHP)))
	if p.HP == 0 {
		p.Alive = false
	}
}

// Kill drops HP to zero regardless of shields
func (p *Player) Kill() {
	p.HP = 0
	p.Alive = false
}

// Push displaces the player and keeps it inside the arena
func (p *Player) Push(delta Vec2, arena Arena) {
	p.Pos = arena.Clamp(p.Pos.Add(delta), p.Radius)
}

// ActivateShield grants the shield; exclusive drops multi-shot
func (p *Player) ActivateShield(exclusive bool) {
	if exclusive {
		p.MultiShot = false
	}
	p.Shield = true
}

// ActivateMultiShot grants multi-shot; exclusive drops the shield
func (p *Player) ActivateMultiShot(exclusive bool) {
	if exclusive {
		p.Shield = false
	}
	p.MultiShot = true
}
