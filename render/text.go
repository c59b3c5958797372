package render

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	glyphWidth = 7
	lineHeight = 16
)

// TextWidth returns the pixel width of s in the HUD font
func TextWidth(s string) int {
	return len([]rune(s)) * glyphWidth
}

// DrawText draws s with its baseline at y
func DrawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

// DrawCentered draws s horizontally centred on the screen
func DrawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	w := screen.Bounds().Dx()
	DrawText(screen, s, (w-TextWidth(s))/2, y, clr)
}

// DrawMenu draws a title and a list of options, highlighting the selected one
func DrawMenu(screen *ebiten.Image, title string, options []string, selected int) {
	h := screen.Bounds().Dy()
	y := h/2 - (len(options)+2)*lineHeight/2

	DrawCentered(screen, strings.ToUpper(title), y, colorHealth)
	y += lineHeight * 2
	for i, opt := range options {
		clr := color.Color(colorText)
		if i == selected {
			opt = "> " + opt + " <"
			clr = colorWarning
		}
		DrawCentered(screen, opt, y, clr)
		y += lineHeight
	}
}

// DrawFooter draws a hint line at the bottom of the screen
func DrawFooter(screen *ebiten.Image, s string) {
	DrawCentered(screen, s, screen.Bounds().Dy()-lineHeight, colorArenaEdge)
}
