package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"quackshot/game"
)

const (
	hudRows       = 2
	autoFireEvery = 10
)

// App runs the game on a character terminal
type App struct {
	screen  tcell.Screen
	game    *game.Game
	session *game.Session
	log     *slog.Logger

	keys     *KeyState
	aim      Aimer
	grid     Grid
	autoFire bool
	fireNow  bool
	finished bool

	// frame counts front-end ticks; key decay keeps running while the game is paused
	frame uint64
}

// New creates a terminal front end on an initialised screen
func New(screen tcell.Screen, config game.Config, session *game.Session, log *slog.Logger) *App {
	a := &App{
		screen:   screen,
		game:     game.NewGame(config, session),
		session:  session,
		log:      log,
		keys:     NewKeyState(),
		autoFire: true,
	}
	a.resize()
	return a
}

// Run drives the game at the simulation rate until the player quits or ctx ends
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / game.TicksPerSecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.step()
			a.draw()
		}
	}
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.grid = NewGrid(a.game.Arena(), w, h, hudRows)
}

// handleEvent applies one terminal event and reports whether to keep running
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if action, ok := actionFor(ev.Key(), ev.Rune()); ok {
			a.keys.Press(action, a.frame)
			return true
		}
		if ev.Key() == tcell.KeyRune {
			return a.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch {
	case r == 'q':
		return false
	case r == 'p':
		a.game.TogglePause()
	case r == 'f':
		a.autoFire = !a.autoFire
	case r == 'j':
		a.fireNow = true
	case a.session.AwaitingUpgrade && (r == '1' || r == '2'):
		choice := game.UpgradeHP
		if r == '2' {
			choice = game.UpgradeSpeed
		}
		if err := a.game.ChooseUpgrade(choice); err != nil {
			a.log.Warn("upgrade failed", "error", err)
			return true
		}
		a.finished = !a.game.NextLevel()
		a.keys.Reset()
	case a.game.GameOver() && r == 'r':
		if err := a.game.SelectLevel(a.session.Level); err != nil {
			a.log.Warn("restart failed", "error", err)
		}
		a.keys.Reset()
	}
	return true
}

// step samples the input and advances the simulation one tick
func (a *App) step() {
	a.frame++
	if a.finished {
		return
	}
	in := game.Input{Held: a.keys.Held(a.frame)}
	if target, ok := a.aim.Aim(a.game); ok {
		in.Pointer = target
		in.Fire = a.fireNow || (a.autoFire && a.frame%autoFireEvery == 0)
	}
	a.fireNow = false
	a.game.Tick(in)
}

func (a *App) draw() {
	a.screen.Clear()
	a.grid.Draw(a.screen, a.game.Sprites())
	a.drawHUD(a.game.HUD())
	a.screen.Show()
}

func (a *App) drawHUD(hud game.HUD) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	warn := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	status := fmt.Sprintf("L%d  HP %d/%d  kills %d/%d  score %d  coins %d",
		hud.Level, hud.HP, hud.MaxHP, hud.Kills, hud.KillsToBoss, hud.Score, hud.Coins)
	if hud.Shield {
		status += "  [shield]"
	}
	if hud.MultiShot {
		status += "  [multi]"
	}
	if !a.autoFire {
		status += "  [manual fire]"
	}
	a.text(0, 0, status, style)

	var line string
	lineStyle := style
	switch {
	case a.finished:
		line, lineStyle = "All levels cleared! q to quit", warn
	case hud.GameOver:
		line, lineStyle = "GAME OVER - r to retry, q to quit", warn
	case hud.AwaitingUpgrade:
		line = fmt.Sprintf("Level %d cleared! 1: +1 max HP  2: +1 speed", hud.Level)
		if hud.Reward != "" {
			line += "  new ability: " + hud.Reward
		}
		lineStyle = warn
	case hud.Paused:
		line = "PAUSED - p to resume"
	case hud.SupernovaIn >= 0:
		line, lineStyle = fmt.Sprintf("SUPERNOVA IN %.1fs", float64(hud.SupernovaIn)/game.TicksPerSecond), warn
	case len(hud.Bosses) > 0:
		for _, b := range hud.Bosses {
			line += fmt.Sprintf("%s P%d %3.0f%%  ", b.Name, b.Phase, b.HPRatio*100)
		}
	case hud.ControlsReversed:
		line, lineStyle = "CONTROLS REVERSED", warn
	default:
		line = "wasd move  space blink  e dash  f autofire  j fire  p pause  q quit"
	}
	a.text(0, 1, line, lineStyle)
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	w, _ := a.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
