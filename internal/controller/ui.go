// Package controller provides the terminal front ends for the bitrot puzzle.
package controller

import (
	m "github.com/mouse-blink/bitrot/internal/model"
)

// MenuEntry is one numbered line of the main menu.
type MenuEntry struct {
	Key   int
	Label string
}

// UI defines what the game needs from a front end. Every Prompt call
// blocks until the player submits one line; io.EOF means the player left.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start() error
	Close()
	DisplayMenu(entries []MenuEntry)
	DisplayBoard(board m.Board)
	DisplayNotice(msg string)
	DisplayVictory(mistakes int)
	Prompt(label string) (string, error)
}
