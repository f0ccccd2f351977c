package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/t2048/internal/board"
)

// Action is a game command mapped from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionNewGame
	ActionQuit
)

// ActionFor maps a key message to a game action. Letters are
// case-insensitive; unrecognized keys map to ActionNone.
func ActionFor(msg tea.KeyMsg) Action {
	switch strings.ToLower(msg.String()) {
	case "ctrl+c", "q":
		return ActionQuit
	case "n":
		return ActionNewGame
	case "left", "h":
		return ActionMoveLeft
	case "right", "l":
		return ActionMoveRight
	case "down", "j":
		return ActionMoveDown
	case "up", "k":
		return ActionMoveUp
	}
	return ActionNone
}

// Direction returns the board direction for a move action.
// The second return value is false for non-move actions.
func (a Action) Direction() (board.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return board.DirUp, true
	case ActionMoveDown:
		return board.DirDown, true
	case ActionMoveLeft:
		return board.DirLeft, true
	case ActionMoveRight:
		return board.DirRight, true
	}
	return 0, false
}
