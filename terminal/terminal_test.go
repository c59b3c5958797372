package terminal

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quackshot/game"
)

type cell struct{ x, y int }

type recordingCanvas map[cell]rune

func (c recordingCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	c[cell{x, y}] = primary
}

func TestKeyDecay(t *testing.T) {
	k := NewKeyState()
	k.Press(game.ActionLeft, 10)

	assert.True(t, k.Held(10).Has(game.ActionLeft))
	assert.True(t, k.Held(10+holdTicks-1).Has(game.ActionLeft))
	assert.False(t, k.Held(10+holdTicks).Has(game.ActionLeft))

	// a repeat refreshes the hold
	k.Press(game.ActionUp, 20)
	k.Press(game.ActionUp, 25)
	assert.True(t, k.Held(30).Has(game.ActionUp))

	k.Reset()
	assert.Zero(t, k.Held(30))
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		r      rune
		action game.Action
		ok     bool
	}{
		{tcell.KeyUp, 0, game.ActionUp, true},
		{tcell.KeyLeft, 0, game.ActionLeft, true},
		{tcell.KeyRune, 'd', game.ActionRight, true},
		{tcell.KeyRune, 'S', game.ActionDown, true},
		{tcell.KeyRune, ' ', game.ActionBlink, true},
		{tcell.KeyRune, 'e', game.ActionDash, true},
		{tcell.KeyRune, 'q', 0, false},
		{tcell.KeyEnter, 0, 0, false},
	}
	for _, tt := range tests {
		action, ok := actionFor(tt.key, tt.r)
		assert.Equal(t, tt.ok, ok, "key %v rune %q", tt.key, tt.r)
		if tt.ok {
			assert.Equal(t, tt.action, action)
		}
	}
}

func TestGridCell(t *testing.T) {
	g := NewGrid(game.Arena{W: 800, H: 600}, 80, 32, 2)

	x, y, ok := g.Cell(game.Vec2{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 2, y, "rows start below the HUD")

	x, y, ok = g.Cell(game.Vec2{X: 799, Y: 599})
	require.True(t, ok)
	assert.Equal(t, 79, x)
	assert.Equal(t, 31, y)

	_, _, ok = g.Cell(game.Vec2{X: 800, Y: 10})
	assert.False(t, ok)
	_, _, ok = g.Cell(game.Vec2{X: -1, Y: 10})
	assert.False(t, ok)
}

func TestGridDrawsShapes(t *testing.T) {
	g := NewGrid(game.Arena{W: 800, H: 600}, 80, 62, 2)

	c := recordingCanvas{}
	g.Draw(c, []game.Sprite{{Tag: "player", Pos: game.Vec2{X: 405, Y: 305}, Radius: 20, Alpha: 1}})
	assert.Equal(t, map[cell]rune{{40, 32}: '@'}, map[cell]rune(c))

	c = recordingCanvas{}
	g.Draw(c, []game.Sprite{{Tag: "boss-standard", Pos: game.Vec2{X: 400, Y: 300}, Radius: 50, Alpha: 1}})
	assert.Greater(t, len(c), 50, "bosses fill a disc")

	c = recordingCanvas{}
	g.Draw(c, []game.Sprite{{Tag: "beam", Pos: game.Vec2{X: 5, Y: 5}, End: game.Vec2{X: 795, Y: 5}, Alpha: 1}})
	assert.Len(t, c, 80, "a beam crosses every column")

	c = recordingCanvas{}
	g.Draw(c, []game.Sprite{{Tag: "enemy-basic", Pos: game.Vec2{X: 100, Y: 100}, Alpha: 0}})
	assert.Empty(t, c, "invisible sprites are skipped")
}

func TestAimerTargetsNearestHostile(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 12345
	g := game.NewGame(cfg, nil)

	var a Aimer
	first, ok := a.Aim(g)
	require.True(t, ok)

	// stationary on the first sample: aim at the nearest hostile itself
	nearest, _ := nearestHostile(g, g.Player().Pos)
	assert.Equal(t, nearest, first)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cfg := game.DefaultConfig()
	cfg.Seed = 12345
	return New(screen, cfg, game.NewSession(game.DefaultSnapshot(), nil), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAppPauseAndFireToggle(t *testing.T) {
	a := newTestApp(t)

	a.step()
	assert.Equal(t, uint64(1), a.game.Now())

	assert.True(t, a.handleRune('p'))
	a.step()
	assert.Equal(t, uint64(1), a.game.Now())

	assert.True(t, a.handleRune('f'))
	assert.False(t, a.autoFire)
	assert.False(t, a.handleRune('q'))
}

func TestAppManualFire(t *testing.T) {
	a := newTestApp(t)
	a.autoFire = false

	a.handleRune('j')
	a.step()
	assert.NotEmpty(t, a.game.Player().Bullets)
	assert.False(t, a.fireNow)
}

func TestAppUpgradeAndRetry(t *testing.T) {
	a := newTestApp(t)
	a.session.Unlock(2)
	a.session.Victory = true
	a.session.AwaitingUpgrade = true

	a.handleRune('1')
	assert.Equal(t, 2, a.session.Level)
	assert.False(t, a.finished)

	a.game.Player().TakeDamage(1000)
	require.True(t, a.game.GameOver())
	a.handleRune('r')
	assert.False(t, a.game.GameOver())
	assert.Equal(t, 2, a.session.Level)
}

func TestAppDrawsHUD(t *testing.T) {
	a := newTestApp(t)
	a.draw()

	var line []rune
	for x := 0; x < 2; x++ {
		r, _, _, _ := a.screen.GetContent(x, 0)
		line = append(line, r)
	}
	assert.Equal(t, "L1", string(line))
}
