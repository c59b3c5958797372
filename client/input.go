package client

import (
	"github.com/hajimehoshi/ebiten/v2"

	"quackshot/game"
	"quackshot/render"
)

var keyBindings = map[game.Action][]ebiten.Key{
	game.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	game.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	game.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	game.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	game.ActionBlink: {ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeySpace},
	game.ActionDash:  {ebiten.KeyE},
}

// KeyboardInput samples keyboard and mouse state once per tick
type KeyboardInput struct {
	camera *render.Camera
}

// NewKeyboardInput creates an input source that maps the cursor through camera
func NewKeyboardInput(camera *render.Camera) *KeyboardInput {
	return &KeyboardInput{camera: camera}
}

// Sample implements game.InputSource
func (k *KeyboardInput) Sample() game.Input {
	var in game.Input
	for action, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				in.Held = in.Held.With(action)
				break
			}
		}
	}

	cx, cy := ebiten.CursorPosition()
	in.Pointer = k.camera.ScreenToWorld(float64(cx), float64(cy))
	in.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return in
}

var _ game.InputSource = (*KeyboardInput)(nil)
