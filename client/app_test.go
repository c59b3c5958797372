package client

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quackshot/game"
)

type idleInput struct{}

func (idleInput) Sample() game.Input { return game.Input{} }

func newTestApp(t *testing.T, snap game.Snapshot) *App {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 12345
	a := New(cfg, game.NewSession(snap, nil), slog.New(slog.NewTextHandler(io.Discard, nil)))
	a.input = idleInput{}
	return a
}

func selectMenu(t *testing.T, a *App, option string) {
	t.Helper()
	for i, o := range menuOptions {
		if o == option {
			a.cursor = i
			require.NoError(t, a.handle(cmdConfirm))
			return
		}
	}
	t.Fatalf("no menu option %q", option)
}

func TestMenuNavigationWraps(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())

	require.NoError(t, a.handle(cmdUp))
	assert.Equal(t, len(menuOptions)-1, a.cursor)
	require.NoError(t, a.handle(cmdDown))
	assert.Equal(t, 0, a.cursor)
}

func TestQuitFromMenu(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())
	assert.ErrorIs(t, a.handle(cmdBack), ebiten.Termination)

	selectMenu(t, a, "Select Level")
	assert.Equal(t, screenLevels, a.screen)
}

func TestPlayStartsLevel(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())
	selectMenu(t, a, "Play")
	require.Equal(t, screenPlaying, a.screen)

	before := a.game.Now()
	a.step()
	assert.Equal(t, before+1, a.game.Now())
}

func TestPauseFreezesAndQuitsToMenu(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())
	selectMenu(t, a, "Play")

	require.NoError(t, a.handle(cmdQuit))
	assert.Equal(t, screenPlaying, a.screen, "quit only works while paused")

	require.NoError(t, a.handle(cmdPause))
	now := a.game.Now()
	a.step()
	assert.Equal(t, now, a.game.Now())

	require.NoError(t, a.handle(cmdQuit))
	assert.Equal(t, screenMenu, a.screen)
}

func TestLevelSelect(t *testing.T) {
	a := newTestApp(t, game.Snapshot{UnlockedLevels: []int{1, 2, 5}})
	selectMenu(t, a, "Select Level")

	require.NoError(t, a.handle(cmdLeft))
	assert.Equal(t, 2, a.cursor)
	require.NoError(t, a.handle(cmdConfirm))

	assert.Equal(t, screenPlaying, a.screen)
	assert.Equal(t, 5, a.session.Level)
}

func TestShopPurchase(t *testing.T) {
	a := newTestApp(t, game.Snapshot{Coins: 60})
	selectMenu(t, a, "Shop")

	require.NoError(t, a.handle(cmdConfirm))
	assert.Equal(t, 10, a.session.Coins)
	assert.Equal(t, 1, a.session.Upgrades.ExtraProjectiles)

	require.NoError(t, a.handle(cmdConfirm))
	assert.Equal(t, "Not enough coins", a.message)

	require.NoError(t, a.handle(cmdBack))
	assert.Equal(t, screenMenu, a.screen)
	assert.Empty(t, a.message)
}

func TestCodeEntry(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())
	selectMenu(t, a, "Enter Code")

	a.typeRunes([]rune("wad-dlex"))
	assert.Equal(t, "waddlex", string(a.code))
	require.NoError(t, a.handle(cmdErase))
	require.NoError(t, a.handle(cmdConfirm))

	assert.Equal(t, game.CodeRedeemed.String(), a.message)
	assert.Equal(t, []string{"WADDLE"}, a.session.ActiveCodes)
	assert.Empty(t, a.code)

	a.typeRunes([]rune("waddle"))
	require.NoError(t, a.handle(cmdConfirm))
	assert.Equal(t, game.CodeAlreadyRedeemed.String(), a.message)
}

func TestCodeEntryWithSpaces(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())
	selectMenu(t, a, "Enter Code")

	a.typeRunes([]rune("duck and laser"))
	assert.Equal(t, "duck and laser", string(a.code))
	require.NoError(t, a.handle(cmdConfirm))

	assert.Equal(t, game.CodeRedeemed.String(), a.message)
	assert.Equal(t, []string{"DUCK AND LASER"}, a.session.ActiveCodes)
}

func TestCodeLengthCapped(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())
	for i := 0; i < 40; i++ {
		a.typeRunes([]rune("a"))
	}
	assert.Len(t, a.code, maxCodeLength)
}

func TestGameOverRetry(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())
	selectMenu(t, a, "Play")

	a.game.Player().TakeDamage(1000)
	a.step()
	require.Equal(t, screenGameOver, a.screen)

	require.NoError(t, a.handle(cmdConfirm))
	assert.Equal(t, screenPlaying, a.screen)
	assert.True(t, a.game.Player().Alive)
}

func TestVictoryUpgradeAdvances(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())
	selectMenu(t, a, "Play")

	a.session.Victory = true
	a.session.AwaitingUpgrade = true
	a.step()
	require.Equal(t, screenVictory, a.screen)

	require.NoError(t, a.handle(cmdDown))
	require.NoError(t, a.handle(cmdConfirm))
	assert.Equal(t, screenPlaying, a.screen)
	assert.Equal(t, 2, a.session.Level)
	assert.Equal(t, 1.0, a.session.Bonus.Speed)
}

func TestFinalVictoryEndsRun(t *testing.T) {
	a := newTestApp(t, game.DefaultSnapshot())
	a.session.Level = game.MaxLevels
	a.session.Victory = true
	a.session.AwaitingUpgrade = true
	a.screen = screenVictory

	require.NoError(t, a.handle(cmdConfirm))
	assert.Equal(t, screenFinished, a.screen)

	require.NoError(t, a.handle(cmdConfirm))
	assert.Equal(t, screenMenu, a.screen)
}

func TestWindow(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f"}

	got, sel := window(items, 0, 3)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, sel)

	got, sel = window(items, 5, 3)
	assert.Equal(t, []string{"d", "e", "f"}, got)
	assert.Equal(t, 2, sel)

	got, sel = window(items[:2], 1, 3)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, sel)
}

func TestFPSMonitor(t *testing.T) {
	m := NewFPSMonitor(55)
	start := time.Unix(0, 0)

	// 20 fps during warmup is ignored
	now := start
	for i := 0; i < 10; i++ {
		now = now.Add(50 * time.Millisecond)
		assert.False(t, m.Frame(now))
	}

	now = start.Add(4 * time.Second)
	assert.True(t, m.Frame(now), "slow window after warmup")
	assert.Less(t, m.FPS(), 55.0)

	// cooldown suppresses an immediate second report
	for i := 0; i < 10; i++ {
		now = now.Add(50 * time.Millisecond)
		assert.False(t, m.Frame(now))
	}
}

func TestProfilerCooldown(t *testing.T) {
	p := NewProfiler(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.last = time.Now()
	assert.ErrorIs(t, p.CaptureProfile("test"), errCaptureCooldown)
	assert.False(t, p.IsProfiling())
}

func TestProfilerWritesCaptures(t *testing.T) {
	dir := t.TempDir()
	p := NewProfiler(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.Window = 20 * time.Millisecond

	require.NoError(t, p.CaptureProfile("level3", "fps", 41.0))
	assert.ErrorIs(t, p.CaptureProfile("again"), errAlreadyCapture)
	require.Eventually(t, func() bool { return !p.IsProfiling() }, 5*time.Second, 10*time.Millisecond)

	prof, err := filepath.Glob(filepath.Join(dir, "*-level3.cpu.prof"))
	require.NoError(t, err)
	assert.Len(t, prof, 1)
	traces, err := filepath.Glob(filepath.Join(dir, "*-level3.trace"))
	require.NoError(t, err)
	assert.Len(t, traces, 1)

	assert.ErrorIs(t, p.CaptureProfile("later"), errCaptureCooldown)
}
