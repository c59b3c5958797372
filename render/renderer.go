package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"quackshot/game"
)

var bossTags = map[string]bool{
	"boss-standard":  true,
	"boss-behemoth":  true,
	"boss-leviathan": true,
}

var ringTags = map[string]bool{
	"player-shield":    true,
	"player-multishot": true,
	"vortex":           true,
	"supernova":        true,
	"blink":            true,
	"boss-warning":     true,
}

// Renderer draws the game's sprites and HUD
type Renderer struct {
	camera *Camera
	debug  *DebugState
}

// NewRenderer creates a renderer for the given camera and debug flags
func NewRenderer(camera *Camera, debug *DebugState) *Renderer {
	if debug == nil {
		debug = &DebugState{}
	}
	return &Renderer{camera: camera, debug: debug}
}

// Camera returns the renderer's camera
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Draw renders one frame: arena, sprites back to front, then the HUD
func (r *Renderer) Draw(screen *ebiten.Image, sprites []game.Sprite, hud game.HUD) {
	screen.Fill(colorBackground)
	r.drawArena(screen)

	for _, s := range sprites {
		r.DrawSprite(screen, s)
	}
	if r.debug.ShowHitboxes {
		r.drawHitboxes(screen, sprites)
	}

	r.drawHUD(screen, hud)
}

func (r *Renderer) drawArena(screen *ebiten.Image) {
	c := r.camera
	w := float32(c.Width - 2*c.OffsetX)
	h := float32(c.Height - 2*c.OffsetY)
	vector.StrokeRect(screen, float32(c.OffsetX), float32(c.OffsetY), w, h, 2, colorArenaEdge, false)
}

// DrawSprite renders a single sprite
func (r *Renderer) DrawSprite(screen *ebiten.Image, s game.Sprite) {
	if s.Alpha <= 0 {
		return
	}
	sx, sy := r.camera.WorldToScreen(s.Pos)
	clr := fade(colorFor(s.Tag, s.Phase), s.Alpha)

	radius := s.Radius * r.camera.Zoom
	if radius < 1 {
		radius = 1
	}

	switch {
	case s.Tag == "beam" || s.Tag == "beam-warning" || s.Tag == "boss-laser":
		ex, ey := r.camera.WorldToScreen(s.End)
		width := float32(2 * radius)
		if s.Tag != "beam" {
			width = 2
		}
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(ex), float32(ey), width, clr, true)
		return

	case ringTags[s.Tag]:
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 2, clr, true)
		return
	}

	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), clr, true)

	// Direction indicator
	if s.Tag == "player" || s.Tag == "boss-behemoth" {
		dirLength := radius * 1.5
		endX := sx + math.Cos(s.Angle)*dirLength
		endY := sy + math.Sin(s.Angle)*dirLength
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(endX), float32(endY), 2, clr, true)
	}

	if bossTags[s.Tag] || (s.Tag == "player" && s.HPRatio < 1) {
		r.drawHealthBar(screen, sx, sy, radius, s.HPRatio)
	}
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, sx, sy, radius, ratio float64) {
	barWidth := radius * 2
	barHeight := 4.0 * r.camera.Zoom
	barX := sx - barWidth/2
	barY := sy - radius - barHeight - 2

	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), colorHealthBack, true)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth*game.Clamp(ratio, 0, 1)), float32(barHeight), colorHealth, true)
}

func (r *Renderer) drawHitboxes(screen *ebiten.Image, sprites []game.Sprite) {
	for _, s := range sprites {
		if s.Radius <= 0 {
			continue
		}
		sx, sy := r.camera.WorldToScreen(s.Pos)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(s.Radius*r.camera.Zoom), 1, colorHitbox, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f  sprites: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(sprites)), 10, int(r.camera.Height)-20)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, hud game.HUD) {
	level := fmt.Sprintf("Level %d", hud.Level)
	if hud.Endless {
		level += " (endless)"
	}
	lines := []string{
		level,
		fmt.Sprintf("HP: %d/%d", hud.HP, hud.MaxHP),
		fmt.Sprintf("Score: %d  Coins: %d", hud.Score, hud.Coins),
		fmt.Sprintf("Kills: %d/%d", hud.Kills, hud.KillsToBoss),
		fmt.Sprintf("Damage: %g", hud.Damage),
	}
	if hud.Shield {
		lines = append(lines, "Shield active")
	}
	if hud.MultiShot {
		lines = append(lines, "Multi-shot active")
	}

	y := lineHeight
	for _, l := range lines {
		DrawText(screen, l, 10, y, colorText)
		y += lineHeight
	}

	if hud.Blink {
		r.drawCooldown(screen, "Blink", hud.BlinkReady, y)
		y += lineHeight
	}
	if hud.Dash {
		r.drawCooldown(screen, "Dash", hud.DashReady, y)
		y += lineHeight
	}
	if hud.ControlsReversed {
		DrawText(screen, "CONTROLS REVERSED", 10, y, colorWarning)
	}

	r.drawBossBars(screen, hud)

	if hud.SupernovaIn >= 0 {
		DrawCentered(screen, fmt.Sprintf("SUPERNOVA IN %.1fs", float64(hud.SupernovaIn)/game.TicksPerSecond),
			int(r.camera.Height)/2-80, colorWarning)
	}
}

func (r *Renderer) drawCooldown(screen *ebiten.Image, label string, ready float64, y int) {
	DrawText(screen, label, 10, y, colorText)
	x := float32(10 + TextWidth(label) + 8)
	top := float32(y - 9)
	vector.DrawFilledRect(screen, x, top, 80, 8, colorHealthBack, false)
	fill := colorHealth
	if ready < 1 {
		fill = colorArenaEdge
	}
	vector.DrawFilledRect(screen, x, top, float32(80*ready), 8, fill, false)
}

func (r *Renderer) drawBossBars(screen *ebiten.Image, hud game.HUD) {
	const barWidth = 300
	x := (screen.Bounds().Dx() - barWidth) / 2
	y := lineHeight

	for _, b := range hud.Bosses {
		label := fmt.Sprintf("%s  phase %d", b.Name, b.Phase)
		clr := color.Color(colorText)
		if b.Dying {
			label = b.Name + "  DEFEATED"
			clr = colorHealth
		}
		DrawCentered(screen, label, y, clr)
		y += 4
		vector.DrawFilledRect(screen, float32(x), float32(y), barWidth, 8, colorHealthBack, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(barWidth*b.HPRatio), 8, colorWarning, false)
		y += lineHeight + 4
	}
}
