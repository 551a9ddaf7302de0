package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/tubejump/internal/application/system"
)

// holdFrames is how long a direction stays held after its last key event.
// Terminals report presses and autorepeat but never releases.
const holdFrames = 8

type action int

const (
	actNone action = iota
	actLeft
	actRight
	actJump
	actFire
	actDebug
	actReset
	actQuit
)

func actionFor(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actLeft
	case tcell.KeyRight:
		return actRight
	case tcell.KeyUp:
		return actJump
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'z', 'Z':
			return actJump
		case ' ', 'x', 'X':
			return actFire
		case 'd', 'D':
			return actDebug
		case 'r', 'R':
			return actReset
		case 'q', 'Q':
			return actQuit
		}
	}
	return actNone
}

// keyState turns a stream of key events into per-tick input.
type keyState struct {
	frame     int
	lastLeft  int
	lastRight int

	jump, fire, debug, reset bool
}

func newKeyState() *keyState {
	return &keyState{lastLeft: -holdFrames, lastRight: -holdFrames}
}

func (k *keyState) press(a action) {
	switch a {
	case actLeft:
		k.lastLeft = k.frame
		k.lastRight = -holdFrames
	case actRight:
		k.lastRight = k.frame
		k.lastLeft = -holdFrames
	case actJump:
		k.jump = true
	case actFire:
		k.fire = true
	case actDebug:
		k.debug = true
	case actReset:
		k.reset = true
	}
}

// next returns the input for the coming tick and clears one-shot presses.
func (k *keyState) next() system.Input {
	in := system.Input{
		Left:  k.frame-k.lastLeft < holdFrames,
		Right: k.frame-k.lastRight < holdFrames,
		Jump:  k.jump,
		Fire:  k.fire,
		Debug: k.debug,
		Reset: k.reset,
	}
	k.jump, k.fire, k.debug, k.reset = false, false, false, false
	k.frame++
	return in
}
