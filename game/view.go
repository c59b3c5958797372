package game

// Sprite is one drawable thing. Front ends pick a look by Tag.
type Sprite struct {
	Tag     string
	Pos     Vec2
	Radius  float64
	HPRatio float64
	Phase   int
	Angle   float64
	Alpha   float64

	// End is the far point of line sprites (beams, lasers)
	End Vec2
}

// BossBar is the HUD line for one boss
type BossBar struct {
	Name    string
	HPRatio float64
	Phase   int
	Dying   bool
}

// HUD is the text state shown over the playfield
type HUD struct {
	Level       int
	Endless     bool
	Kills       int
	KillsToBoss int
	TotalKills  int
	Score       int
	Coins       int
	HP          int
	MaxHP       int
	Damage      float64

	Shield    bool
	MultiShot bool

	Blink      bool
	BlinkReady float64
	Dash       bool
	DashReady  float64

	ControlsReversed bool

	Bosses []BossBar

	// Ticks until the supernova; -1 when none is pending
	SupernovaIn int

	Paused          bool
	Victory         bool
	AwaitingUpgrade bool
	GameOver        bool
	Reward          string
}

// readiness turns a cooldown into a 0..1 ready fraction
func readiness(cooldown, full int) float64 {
	if full <= 0 {
		return 1
	}
	return 1 - Clamp(float64(cooldown)/float64(full), 0, 1)
}

// HUD reports the state for the heads-up display
func (g *Game) HUD() HUD {
	p := g.player
	s := g.session
	h := HUD{
		Level:            s.Level,
		Endless:          s.Endless,
		Kills:            s.LevelKills,
		KillsToBoss:      KillsToBoss,
		TotalKills:       s.TotalKills,
		Score:            p.Score,
		Coins:            s.Coins,
		HP:               p.HP,
		MaxHP:            p.MaxHP,
		Damage:           p.Damage,
		Shield:           p.Shield,
		MultiShot:        p.MultiShot,
		Blink:            p.HasBlink,
		BlinkReady:       readiness(p.BlinkCooldown, blinkCooldown),
		Dash:             p.HasDash,
		DashReady:        readiness(p.DashCooldown, dashCooldown),
		ControlsReversed: p.ControlsReversed,
		SupernovaIn:      -1,
		Paused:           g.paused,
		Victory:          s.Victory,
		AwaitingUpgrade:  s.AwaitingUpgrade,
		GameOver:         !p.Alive,
		Reward:           g.lastReward.String(),
	}
	for _, b := range g.bosses {
		h.Bosses = append(h.Bosses, BossBar{
			Name:    GetBossKindConfig(b.Kind()).Name,
			HPRatio: hpRatio(b),
			Phase:   b.Phase(),
			Dying:   b.Dying(),
		})
		if bh, ok := b.(*Behemoth); ok {
			if left, ok := bh.SupernovaIn(g.tick); ok {
				h.SupernovaIn = left
			}
		}
	}
	return h
}

func hpRatio(b Boss) float64 {
	if b.MaxHP() <= 0 {
		return 0
	}
	return Clamp(b.HP()/b.MaxHP(), 0, 1)
}

// Sprites lists everything to draw, back to front
func (g *Game) Sprites() []Sprite {
	out := make([]Sprite, 0, 64+len(g.player.Bullets))
	p := g.player

	for _, pu := range g.powerups {
		out = append(out, Sprite{Tag: pu.Kind.String(), Pos: pu.Pos, Radius: pu.Radius, Alpha: 1})
	}

	for _, ex := range g.explosions {
		tag := "explosion"
		if ex.Friendly {
			tag = "explosion-friendly"
		}
		out = append(out, Sprite{Tag: tag, Pos: ex.Pos, Radius: ex.Radius, Alpha: 0.8 * (1 - ex.Progress())})
	}

	for _, e := range g.enemies {
		b := e.Body()
		out = append(out, Sprite{Tag: e.Kind().String(), Pos: b.Pos, Radius: b.Radius, Alpha: 1})
		if gunner, ok := e.(Gunner); ok {
			out = appendProjectiles(out, gunner.Bullets())
		}
	}

	for _, boss := range g.bosses {
		out = g.appendBoss(out, boss)
	}

	for _, a := range p.Afterimages {
		out = append(out, Sprite{Tag: "afterimage", Pos: a.Pos, Radius: a.Radius,
			Alpha: float64(a.Life) / afterimageLifetime * 0.5})
	}
	out = appendProjectiles(out, p.Bullets)

	hp := 0.0
	if p.MaxHP > 0 {
		hp = float64(p.HP) / float64(p.MaxHP)
	}
	out = append(out, Sprite{Tag: "player", Pos: p.Pos, Radius: p.Radius, HPRatio: hp, Angle: p.Facing, Alpha: 1})
	if p.Shield {
		out = append(out, Sprite{Tag: "player-shield", Pos: p.Pos, Radius: p.Radius + 10, Alpha: 1})
	}
	if p.MultiShot {
		out = append(out, Sprite{Tag: "player-multishot", Pos: p.Pos, Radius: p.Radius + 15, Alpha: 1})
	}
	if p.BlinkFlash > 0 {
		out = append(out, Sprite{Tag: "blink", Pos: p.Pos, Radius: 5 * float64(p.BlinkFlash) / 4,
			Alpha: float64(p.BlinkFlash) / 20})
	}
	return out
}

func (g *Game) appendBoss(out []Sprite, boss Boss) []Sprite {
	b := boss.Body()
	alpha := 1.0
	if boss.Dying() {
		alpha = 0.4
	}

	if owner, ok := boss.(HazardOwner); ok {
		h := owner.Hazards()
		for _, r := range h.Rifts {
			out = append(out, Sprite{Tag: "rift", Pos: r.Pos, Radius: r.Radius, Alpha: 0.7})
		}
		if v := h.Vortex; v != nil {
			out = append(out, Sprite{Tag: "vortex", Pos: v.Center, Radius: v.Radius, Alpha: 0.5})
		}
		if beam := h.Beam; beam != nil {
			tag := "beam"
			if beam.Warning {
				tag = "beam-warning"
			}
			out = append(out, Sprite{Tag: tag, Pos: beam.Origin, End: beam.End(), Radius: beam.HalfWidth,
				Angle: beam.Angle, Alpha: 0.8})
		}
		if sn := h.Supernova; sn != nil {
			out = append(out, Sprite{Tag: "supernova", Pos: sn.Center, Radius: sn.Radius, Alpha: 0.6})
		}
	}

	switch v := boss.(type) {
	case *Leviathan:
		segs := v.Segments()
		for i := len(segs) - 1; i >= 0; i-- {
			size := b.Radius * (1 - float64(i)/float64(len(segs))*0.3)
			out = append(out, Sprite{Tag: "leviathan-segment", Pos: segs[i], Radius: size,
				Phase: v.Phase(), Alpha: alpha})
		}
	case *Behemoth:
		for _, s := range v.Satellites() {
			out = append(out, Sprite{Tag: "behemoth-satellite", Pos: s, Radius: 12, Phase: v.Phase(), Alpha: alpha})
		}
	}

	rotation := 0.0
	if r, ok := boss.(interface{ Rotation() float64 }); ok {
		rotation = r.Rotation()
	}
	out = append(out, Sprite{
		Tag:     boss.Kind().String(),
		Pos:     b.Pos,
		Radius:  b.Radius,
		HPRatio: hpRatio(boss),
		Phase:   boss.Phase(),
		Angle:   rotation,
		Alpha:   alpha,
	})

	if bh, ok := boss.(*Behemoth); ok {
		for _, pl := range bh.Plates() {
			out = append(out, Sprite{Tag: "behemoth-plate", Pos: pl, Radius: 10, Phase: bh.Phase(), Alpha: alpha})
		}
	}

	return appendProjectiles(out, boss.Bullets())
}

func appendProjectiles(out []Sprite, list []*Projectile) []Sprite {
	for _, p := range list {
		tag := p.Kind.String()
		switch {
		case p.Warning:
			tag = "boss-warning"
		case p.Decorative:
			tag = "boss-spiral"
		case p.BlackHole:
			tag = "boss-blackhole"
		case p.Laser:
			tag = "boss-laser"
		case p.Homing:
			tag = "boss-sentinel"
		}
		s := Sprite{Tag: tag, Pos: p.Pos, Radius: p.Radius, Angle: p.Angle, Alpha: 1}
		if p.Explosive {
			s.Tag = "player-bullet-explosive"
		}
		if p.Laser {
			s.End = p.LaserEnd()
		}
		out = append(out, s)
	}
	return out
}
