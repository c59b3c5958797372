package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"quackshot/game"
)

type shape int

const (
	shapeDot shape = iota
	shapeDisc
	shapeRing
	shapeLine
)

type glyph struct {
	r     rune
	style tcell.Style
	shape shape
}

func fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(c)
}

var glyphs = map[string]glyph{
	"player":                  {'@', fg(tcell.ColorYellow).Bold(true), shapeDot},
	"player-shield":           {'o', fg(tcell.ColorDodgerBlue), shapeRing},
	"player-multishot":        {'+', fg(tcell.ColorOrange), shapeRing},
	"blink":                   {'*', fg(tcell.ColorMediumPurple), shapeRing},
	"player-bullet":           {'.', fg(tcell.ColorLightYellow), shapeDot},
	"player-bullet-explosive": {'*', fg(tcell.ColorOrange), shapeDot},
	"afterimage":              {'@', fg(tcell.ColorMediumPurple), shapeDot},
	"enemy-basic":             {'x', fg(tcell.ColorRed), shapeDot},
	"enemy-split-large":       {'O', fg(tcell.ColorGreen), shapeDot},
	"enemy-split-medium":      {'o', fg(tcell.ColorGreen), shapeDot},
	"enemy-split-small":       {'.', fg(tcell.ColorGreen), shapeDot},
	"enemy-exploding":         {'!', fg(tcell.ColorOrangeRed), shapeDot},
	"enemy-shooting":          {'Y', fg(tcell.ColorFuchsia), shapeDot},
	"enemy-bullet":            {'-', fg(tcell.ColorPink), shapeDot},
	"explosion":               {'*', fg(tcell.ColorOrangeRed), shapeRing},
	"explosion-friendly":      {'*', fg(tcell.ColorGold), shapeRing},
	"powerup-shield":          {'S', fg(tcell.ColorDodgerBlue).Bold(true), shapeDot},
	"powerup-multishot":       {'M', fg(tcell.ColorOrange).Bold(true), shapeDot},
	"boss-standard":           {'#', fg(tcell.ColorDarkRed), shapeDisc},
	"boss-behemoth":           {'#', fg(tcell.ColorMediumPurple), shapeDisc},
	"behemoth-plate":          {'=', fg(tcell.ColorSilver), shapeDot},
	"behemoth-satellite":      {'%', fg(tcell.ColorMediumPurple), shapeDot},
	"boss-leviathan":          {'&', fg(tcell.ColorTeal), shapeDisc},
	"leviathan-segment":       {'~', fg(tcell.ColorTeal), shapeDisc},
	"boss-bullet":             {'o', fg(tcell.ColorRed), shapeDot},
	"boss-warning":            {'?', fg(tcell.ColorWhite), shapeDot},
	"boss-laser":              {'|', fg(tcell.ColorRed), shapeLine},
	"boss-blackhole":          {'@', fg(tcell.ColorPurple), shapeDot},
	"boss-sentinel":           {'+', fg(tcell.ColorAqua), shapeDot},
	"boss-spiral":             {'\'', fg(tcell.ColorPlum), shapeDot},
	"beam":                    {'=', fg(tcell.ColorRed).Bold(true), shapeLine},
	"beam-warning":            {':', fg(tcell.ColorWhite), shapeLine},
	"rift":                    {'^', fg(tcell.ColorDarkViolet), shapeRing},
	"vortex":                  {'@', fg(tcell.ColorBlue), shapeRing},
	"supernova":               {'#', fg(tcell.ColorLightYellow), shapeRing},
}

var fallbackGlyph = glyph{'?', fg(tcell.ColorWhite), shapeDot}

// canvas is the part of tcell.Screen the grid draws on
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Grid maps the arena onto the terminal's character cells below the HUD rows
type Grid struct {
	arena game.Arena
	cols  int
	rows  int
	top   int
}

// NewGrid fits the arena into a cols x rows terminal, leaving top rows for the HUD
func NewGrid(arena game.Arena, cols, rows, top int) Grid {
	return Grid{arena: arena, cols: max(cols, 1), rows: max(rows-top, 1), top: top}
}

// Cell returns the character cell covering p
func (g Grid) Cell(p game.Vec2) (int, int, bool) {
	if g.arena.W <= 0 || g.arena.H <= 0 || p.IsNaN() {
		return 0, 0, false
	}
	x := int(math.Floor(p.X / g.arena.W * float64(g.cols)))
	y := int(math.Floor(p.Y / g.arena.H * float64(g.rows)))
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return 0, 0, false
	}
	return x, y + g.top, true
}

// center returns the arena point at the middle of a cell
func (g Grid) center(x, y int) game.Vec2 {
	return game.Vec2{
		X: (float64(x) + 0.5) * g.arena.W / float64(g.cols),
		Y: (float64(y-g.top) + 0.5) * g.arena.H / float64(g.rows),
	}
}

// cellSize returns the arena extent of one cell
func (g Grid) cellSize() (float64, float64) {
	return g.arena.W / float64(g.cols), g.arena.H / float64(g.rows)
}

// Draw puts every sprite on the screen, back to front
func (g Grid) Draw(s canvas, sprites []game.Sprite) {
	for _, sp := range sprites {
		if sp.Alpha <= 0 {
			continue
		}
		gl, ok := glyphs[sp.Tag]
		if !ok {
			gl = fallbackGlyph
		}
		if sp.Tag == "player" && sp.HPRatio < 0.34 {
			gl.style = gl.style.Foreground(tcell.ColorRed)
		}

		switch gl.shape {
		case shapeDisc:
			g.disc(s, sp.Pos, sp.Radius, gl)
		case shapeRing:
			g.ring(s, sp.Pos, sp.Radius, gl)
		case shapeLine:
			g.line(s, sp.Pos, sp.End, gl)
		default:
			g.plot(s, sp.Pos, gl)
		}
	}
}

func (g Grid) plot(s canvas, p game.Vec2, gl glyph) {
	if x, y, ok := g.Cell(p); ok {
		s.SetContent(x, y, gl.r, nil, gl.style)
	}
}

func (g Grid) disc(s canvas, c game.Vec2, r float64, gl glyph) {
	x0, y0 := g.clampedCell(c.Sub(game.Vec2{X: r, Y: r}))
	x1, y1 := g.clampedCell(c.Add(game.Vec2{X: r, Y: r}))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if game.Distance(g.center(x, y), c) <= r {
				s.SetContent(x, y, gl.r, nil, gl.style)
			}
		}
	}
	g.plot(s, c, gl)
}

// clampedCell is Cell for points that may lie outside the arena
func (g Grid) clampedCell(p game.Vec2) (int, int) {
	cw, ch := g.cellSize()
	x := min(max(int(math.Floor(p.X/cw)), 0), g.cols-1)
	y := min(max(int(math.Floor(p.Y/ch)), 0), g.rows-1)
	return x, y + g.top
}

func (g Grid) ring(s canvas, c game.Vec2, r float64, gl glyph) {
	cw, ch := g.cellSize()
	steps := int(math.Ceil(2 * math.Pi * r / math.Min(cw, ch)))
	if steps < 8 {
		g.plot(s, c, gl)
		return
	}
	for i := 0; i < steps; i++ {
		g.plot(s, c.Add(game.FromAngle(2*math.Pi*float64(i)/float64(steps), r)), gl)
	}
}

func (g Grid) line(s canvas, a, b game.Vec2, gl glyph) {
	cw, ch := g.cellSize()
	steps := int(math.Ceil(game.Distance(a, b) / math.Min(cw, ch)))
	if steps < 1 {
		g.plot(s, a, gl)
		return
	}
	d := b.Sub(a)
	for i := 0; i <= steps; i++ {
		g.plot(s, a.Add(d.Scale(float64(i)/float64(steps))), gl)
	}
}
