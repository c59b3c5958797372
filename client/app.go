package client

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"quackshot/game"
	"quackshot/render"
)

type screenID int

const (
	screenMenu screenID = iota
	screenLevels
	screenShop
	screenCodes
	screenPlaying
	screenVictory
	screenGameOver
	screenFinished
)

// command is a menu or flow action decoded from the keyboard
type command int

const (
	cmdUp command = iota
	cmdDown
	cmdLeft
	cmdRight
	cmdConfirm
	cmdBack
	cmdPause
	cmdQuit
	cmdErase
)

var commandKeys = []struct {
	key ebiten.Key
	cmd command
}{
	{ebiten.KeyArrowUp, cmdUp},
	{ebiten.KeyArrowDown, cmdDown},
	{ebiten.KeyArrowLeft, cmdLeft},
	{ebiten.KeyArrowRight, cmdRight},
	{ebiten.KeyEnter, cmdConfirm},
	{ebiten.KeyEscape, cmdBack},
	{ebiten.KeyP, cmdPause},
	{ebiten.KeyQ, cmdQuit},
	{ebiten.KeyBackspace, cmdErase},
}

var menuOptions = []string{"Play", "Select Level", "Shop", "Enter Code", "Quit"}

var upgradeOptions = []struct {
	label  string
	choice game.UpgradeChoice
}{
	{"+1 Max HP", game.UpgradeHP},
	{"+1 Speed", game.UpgradeSpeed},
}

const maxCodeLength = 24

var (
	menuBackground = color.RGBA{10, 12, 28, 255}
	overlayText    = color.RGBA{255, 255, 255, 255}
)

// App is the desktop front end. It owns the menus and drives the simulation
// one tick per ebiten update.
type App struct {
	session *game.Session
	game    *game.Game

	camera   *render.Camera
	renderer *render.Renderer
	debug    render.DebugState
	input    game.InputSource

	screen  screenID
	cursor  int
	code    []rune
	message string

	monitor  *FPSMonitor
	profiler *Profiler
	log      *slog.Logger
}

// New creates the front end for a session
func New(config game.Config, session *game.Session, log *slog.Logger) *App {
	a := &App{
		session: session,
		game:    game.NewGame(config, session),
		monitor: NewFPSMonitor(55),
		log:     log,
	}
	a.camera = render.NewCamera(config.Arena(), float64(config.ScreenWidth), float64(config.ScreenHeight))
	a.renderer = render.NewRenderer(a.camera, &a.debug)
	a.input = NewKeyboardInput(a.camera)
	return a
}

// EnableProfiling captures a CPU profile and trace into dir on sustained frame drops
func (a *App) EnableProfiling(dir string) {
	a.profiler = NewProfiler(dir, a.log)
}

// Update implements ebiten.Game
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug.Toggle()
	}
	a.watchFrameRate()

	for _, ck := range commandKeys {
		if inpututil.IsKeyJustPressed(ck.key) {
			if err := a.handle(ck.cmd); err != nil {
				return err
			}
		}
	}
	if a.screen == screenCodes {
		a.typeRunes(ebiten.AppendInputChars(nil))
	}
	a.step()
	return nil
}

// step advances the simulation while a level is on screen
func (a *App) step() {
	if a.screen != screenPlaying {
		return
	}
	a.game.Tick(a.input.Sample())

	switch {
	case a.game.GameOver():
		a.log.Info("game over", "level", a.session.Level, "score", a.game.Player().Score)
		a.enter(screenGameOver)
	case a.session.AwaitingUpgrade:
		a.enter(screenVictory)
	}
}

func (a *App) enter(s screenID) {
	a.screen = s
	a.cursor = 0
}

// handle applies one command to the current screen.
// It returns ebiten.Termination when the player quits from the main menu.
func (a *App) handle(cmd command) error {
	switch a.screen {
	case screenMenu:
		return a.handleMenu(cmd)

	case screenLevels:
		levels := a.session.UnlockedLevels()
		switch cmd {
		case cmdLeft, cmdUp:
			a.cursor = wrap(a.cursor-1, len(levels))
		case cmdRight, cmdDown:
			a.cursor = wrap(a.cursor+1, len(levels))
		case cmdConfirm:
			a.startRun(levels[a.cursor])
		case cmdBack:
			a.enter(screenMenu)
		}

	case screenShop:
		switch cmd {
		case cmdUp:
			a.cursor = wrap(a.cursor-1, len(game.ShopItems))
		case cmdDown:
			a.cursor = wrap(a.cursor+1, len(game.ShopItems))
		case cmdConfirm:
			a.buy(game.ShopItems[a.cursor])
		case cmdBack:
			a.message = ""
			a.enter(screenMenu)
		}

	case screenCodes:
		switch cmd {
		case cmdErase:
			if len(a.code) > 0 {
				a.code = a.code[:len(a.code)-1]
			}
		case cmdConfirm:
			result := a.session.RedeemCode(string(a.code))
			a.log.Info("code entered", "result", result.String())
			a.message = result.String()
			a.code = a.code[:0]
		case cmdBack:
			a.message = ""
			a.code = a.code[:0]
			a.enter(screenMenu)
		}

	case screenPlaying:
		switch cmd {
		case cmdPause, cmdBack:
			a.game.TogglePause()
		case cmdQuit:
			if a.game.Paused() {
				a.enter(screenMenu)
			}
		}

	case screenVictory:
		switch cmd {
		case cmdUp:
			a.cursor = wrap(a.cursor-1, len(upgradeOptions))
		case cmdDown:
			a.cursor = wrap(a.cursor+1, len(upgradeOptions))
		case cmdConfirm:
			a.chooseUpgrade(upgradeOptions[a.cursor].choice)
		}

	case screenGameOver:
		switch cmd {
		case cmdConfirm:
			a.startRun(a.session.Level)
		case cmdBack:
			a.enter(screenMenu)
		}

	case screenFinished:
		if cmd == cmdConfirm || cmd == cmdBack {
			a.enter(screenMenu)
		}
	}
	return nil
}

func (a *App) handleMenu(cmd command) error {
	switch cmd {
	case cmdUp:
		a.cursor = wrap(a.cursor-1, len(menuOptions))
	case cmdDown:
		a.cursor = wrap(a.cursor+1, len(menuOptions))
	case cmdBack, cmdQuit:
		return ebiten.Termination
	case cmdConfirm:
		switch menuOptions[a.cursor] {
		case "Play":
			a.startRun(a.session.Level)
		case "Select Level":
			a.enter(screenLevels)
		case "Shop":
			a.enter(screenShop)
		case "Enter Code":
			a.enter(screenCodes)
		case "Quit":
			return ebiten.Termination
		}
	}
	return nil
}

func (a *App) startRun(level int) {
	if err := a.game.SelectLevel(level); err != nil {
		a.log.Warn("level select failed", "level", level, "error", err)
		a.message = "Level " + strconv.Itoa(level) + " is locked"
		return
	}
	a.message = ""
	a.enter(screenPlaying)
}

func (a *App) buy(item game.ShopItem) {
	err := a.session.Purchase(item)
	switch {
	case err == nil:
		a.message = "Bought " + item.Label()
	case errors.Is(err, game.ErrInsufficientCoins):
		a.message = "Not enough coins"
	default:
		a.message = err.Error()
	}
	a.log.Info("purchase", "item", string(item), "coins", a.session.Coins, "error", err)
}

func (a *App) chooseUpgrade(choice game.UpgradeChoice) {
	if err := a.game.ChooseUpgrade(choice); err != nil {
		a.log.Warn("upgrade failed", "error", err)
		return
	}
	if !a.game.NextLevel() {
		a.enter(screenFinished)
		return
	}
	a.enter(screenPlaying)
}

func (a *App) typeRunes(rs []rune) {
	for _, r := range rs {
		if len(a.code) >= maxCodeLength {
			return
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			a.code = append(a.code, r)
		}
	}
}

func (a *App) watchFrameRate() {
	if !a.monitor.Frame(time.Now()) || a.profiler == nil {
		return
	}
	fps := a.monitor.FPS()
	a.log.Warn("frame rate drop", "fps", fps)
	err := a.profiler.CaptureProfile(fmt.Sprintf("level%d", a.session.Level),
		"fps", fps,
		"enemies", len(a.game.Enemies()),
		"bosses", len(a.game.Bosses()),
		"tick", a.game.Now())
	if err != nil {
		a.log.Debug("profile skipped", "error", err)
	}
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	switch a.screen {
	case screenMenu:
		screen.Fill(menuBackground)
		render.DrawMenu(screen, "Quackshot", menuOptions, a.cursor)
		render.DrawFooter(screen, fmt.Sprintf("Level %d  Coins %d  |  arrows + enter, esc to quit", a.session.Level, a.session.Coins))

	case screenLevels:
		screen.Fill(menuBackground)
		levels := a.session.UnlockedLevels()
		labels := make([]string, 0, len(levels))
		for _, l := range levels {
			labels = append(labels, levelLabel(l))
		}
		items, selected := window(labels, a.cursor, 12)
		render.DrawMenu(screen, "Select Level", items, selected)
		a.drawMessage(screen)

	case screenShop:
		screen.Fill(menuBackground)
		labels := make([]string, 0, len(game.ShopItems))
		for _, item := range game.ShopItems {
			labels = append(labels, fmt.Sprintf("%s (%d coins)", item.Label(), game.UpgradeCost))
		}
		render.DrawMenu(screen, fmt.Sprintf("Shop - %d coins", a.session.Coins), labels, a.cursor)
		a.drawMessage(screen)

	case screenCodes:
		screen.Fill(menuBackground)
		render.DrawMenu(screen, "Enter Code", []string{string(a.code) + "_"}, 0)
		a.drawMessage(screen)

	default:
		a.renderer.Draw(screen, a.game.Sprites(), a.game.HUD())
		a.drawOverlay(screen)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	hud := a.game.HUD()

	switch a.screen {
	case screenPlaying:
		if hud.Paused {
			render.DrawCentered(screen, "PAUSED", h/2, overlayText)
			render.DrawCentered(screen, "P to resume, Q for the menu", h/2+20, overlayText)
		}
	case screenVictory:
		labels := make([]string, 0, len(upgradeOptions))
		for _, o := range upgradeOptions {
			labels = append(labels, o.label)
		}
		render.DrawMenu(screen, fmt.Sprintf("Level %d cleared", hud.Level), labels, a.cursor)
		if hud.Reward != "" {
			render.DrawCentered(screen, "New ability: "+hud.Reward, h/2+80, overlayText)
		}
	case screenGameOver:
		render.DrawCentered(screen, "GAME OVER", h/2, overlayText)
		render.DrawCentered(screen, fmt.Sprintf("Score %d - enter to retry, esc for the menu", hud.Score), h/2+20, overlayText)
	case screenFinished:
		render.DrawCentered(screen, "ALL LEVELS CLEARED", h/2, overlayText)
		render.DrawCentered(screen, "enter for the menu", h/2+20, overlayText)
	}
}

func (a *App) drawMessage(screen *ebiten.Image) {
	if a.message != "" {
		render.DrawCentered(screen, a.message, screen.Bounds().Dy()-48, overlayText)
	}
	render.DrawFooter(screen, "enter to confirm, esc to go back")
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.camera.Fit(a.game.Arena(), float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func levelLabel(level int) string {
	switch level {
	case game.BehemothLevel:
		return fmt.Sprintf("Level %d - Galactic Behemoth", level)
	case game.LeviathanLevel:
		return fmt.Sprintf("Level %d - Celestial Leviathan", level)
	}
	return "Level " + strconv.Itoa(level)
}

// window returns up to size items around the cursor and the cursor's index within them
func window(items []string, cursor, size int) ([]string, int) {
	if len(items) <= size {
		return items, cursor
	}
	from := min(max(cursor-size/2, 0), len(items)-size)
	return items[from : from+size], cursor - from
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

var _ ebiten.Game = (*App)(nil)
