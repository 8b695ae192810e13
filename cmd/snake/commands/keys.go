package commands

import (
	"unicode"

	"github.com/battlesnakeio/snake/game"
	termbox "github.com/nsf/termbox-go"
)

// keyDirection maps the arrow keys and WASD to a direction.
func keyDirection(ev termbox.Event) (game.Direction, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return game.Up, true
	case termbox.KeyArrowDown:
		return game.Down, true
	case termbox.KeyArrowLeft:
		return game.Left, true
	case termbox.KeyArrowRight:
		return game.Right, true
	}

	switch unicode.ToLower(ev.Ch) {
	case 'w':
		return game.Up, true
	case 's':
		return game.Down, true
	case 'a':
		return game.Left, true
	case 'd':
		return game.Right, true
	}
	return "", false
}

func isQuit(ev termbox.Event) bool {
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return true
	}
	return unicode.ToLower(ev.Ch) == 'q'
}

// promptAnswer reads a yes or no from a key press. ok is false for any other
// key.
func promptAnswer(ev termbox.Event) (yes bool, ok bool) {
	if ev.Key == termbox.KeyEnter {
		return true, true
	}
	switch unicode.ToLower(ev.Ch) {
	case 'y':
		return true, true
	case 'n':
		return false, true
	}
	return false, false
}
