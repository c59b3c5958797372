package terminal

import (
	"github.com/gdamore/tcell/v2"

	"quackshot/game"
)

// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held for holdTicks after its last press.
const holdTicks = 9

// KeyState turns press events into held actions that decay without repeats
type KeyState struct {
	lastPress map[game.Action]uint64
}

// NewKeyState creates an empty key state
func NewKeyState() *KeyState {
	return &KeyState{lastPress: make(map[game.Action]uint64)}
}

// Press records a press of action at tick
func (k *KeyState) Press(action game.Action, tick uint64) {
	k.lastPress[action] = tick
}

// Held returns the actions still held at tick
func (k *KeyState) Held(tick uint64) game.ActionSet {
	var held game.ActionSet
	for action, at := range k.lastPress {
		if tick-at < holdTicks {
			held = held.With(action)
		} else {
			delete(k.lastPress, action)
		}
	}
	return held
}

// Reset forgets every press
func (k *KeyState) Reset() {
	clear(k.lastPress)
}

// actionFor maps a key press to a game action
func actionFor(key tcell.Key, r rune) (game.Action, bool) {
	switch key {
	case tcell.KeyUp:
		return game.ActionUp, true
	case tcell.KeyDown:
		return game.ActionDown, true
	case tcell.KeyLeft:
		return game.ActionLeft, true
	case tcell.KeyRight:
		return game.ActionRight, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.ActionUp, true
		case 's', 'S':
			return game.ActionDown, true
		case 'a', 'A':
			return game.ActionLeft, true
		case 'd', 'D':
			return game.ActionRight, true
		case ' ':
			return game.ActionBlink, true
		case 'e', 'E':
			return game.ActionDash, true
		}
	}
	return 0, false
}
