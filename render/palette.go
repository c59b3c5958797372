package render

import (
	"image/color"
	"strings"
)

var (
	colorBackground = color.RGBA{10, 12, 28, 255}
	colorArenaEdge  = color.RGBA{60, 70, 110, 255}
	colorText       = color.RGBA{230, 230, 240, 255}
	colorWarning    = color.RGBA{255, 80, 80, 255}
	colorHealthBack = color.RGBA{100, 0, 0, 255}
	colorHealth     = color.RGBA{0, 255, 0, 255}
	colorHitbox     = color.RGBA{0, 255, 255, 160}
)

// behemoth hull colour per phase
var behemothPhaseColors = []color.RGBA{
	{160, 90, 255, 255},
	{255, 120, 40, 255},
	{255, 30, 60, 255},
}

// colorFor picks the colour of a sprite by tag
func colorFor(tag string, phase int) color.RGBA {
	switch tag {
	case "player":
		return color.RGBA{255, 220, 0, 255}
	case "player-shield":
		return color.RGBA{80, 180, 255, 255}
	case "player-multishot":
		return color.RGBA{255, 150, 0, 255}
	case "player-bullet":
		return color.RGBA{255, 255, 120, 255}
	case "player-bullet-explosive":
		return color.RGBA{255, 120, 0, 255}
	case "afterimage", "blink":
		return color.RGBA{150, 120, 255, 255}
	case "enemy-basic":
		return color.RGBA{255, 0, 0, 255}
	case "enemy-split-large", "enemy-split-medium", "enemy-split-small":
		return color.RGBA{0, 220, 120, 255}
	case "enemy-exploding":
		return color.RGBA{255, 100, 0, 255}
	case "enemy-shooting":
		return color.RGBA{255, 0, 200, 255}
	case "enemy-bullet":
		return color.RGBA{255, 80, 200, 255}
	case "explosion":
		return color.RGBA{255, 90, 0, 255}
	case "explosion-friendly":
		return color.RGBA{255, 200, 60, 255}
	case "powerup-shield":
		return color.RGBA{80, 180, 255, 255}
	case "powerup-multishot":
		return color.RGBA{255, 150, 0, 255}
	case "boss-standard":
		return color.RGBA{200, 0, 0, 255}
	case "boss-behemoth", "behemoth-plate", "behemoth-satellite":
		i := min(max(phase, 1), len(behemothPhaseColors)) - 1
		return behemothPhaseColors[i]
	case "boss-leviathan", "leviathan-segment":
		return color.RGBA{0, uint8(120 + 40*min(phase, 3)), 200, 255}
	case "boss-warning", "beam-warning":
		return color.RGBA{255, 255, 255, 255}
	case "boss-laser", "beam":
		return color.RGBA{255, 40, 40, 255}
	case "boss-blackhole":
		return color.RGBA{40, 0, 60, 255}
	case "boss-sentinel":
		return color.RGBA{0, 255, 255, 255}
	case "boss-spiral":
		return color.RGBA{200, 120, 255, 255}
	case "rift":
		return color.RGBA{170, 0, 255, 255}
	case "vortex":
		return color.RGBA{60, 60, 255, 255}
	case "supernova":
		return color.RGBA{255, 255, 200, 255}
	}
	if strings.HasPrefix(tag, "boss-") {
		return color.RGBA{255, 60, 60, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

// fade scales a colour's alpha
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	// premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
