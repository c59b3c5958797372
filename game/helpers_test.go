package game

import (
	"testing"
)

type recordingSink struct {
	saved []Snapshot
	err   error
}

func (s *recordingSink) Save(snap Snapshot) error {
	s.saved = append(s.saved, snap)
	return s.err
}

func (s *recordingSink) last() Snapshot {
	if len(s.saved) == 0 {
		return Snapshot{}
	}
	return s.saved[len(s.saved)-1]
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 12345
	return cfg
}

func newTestGame(t *testing.T) (*Game, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	g := NewGame(testConfig(), NewSession(DefaultSnapshot(), sink))
	return g, sink
}

// quietGame returns a game with no regular enemies and a shielded player
func quietGame(t *testing.T) (*Game, *recordingSink) {
	t.Helper()
	g, sink := newTestGame(t)
	g.enemies = nil
	g.player.Shield = true
	return g, sink
}

// stillBullet is a player bullet parked at pos
func stillBullet(pos Vec2) *Projectile {
	b := NewProjectile(ProjectilePlayer, pos, 0)
	b.Vel = Vec2{}
	b.Speed = 0
	return b
}
