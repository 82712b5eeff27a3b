package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/puzzle-deck/internal/core"
)

// KeyMapper translates Bubble Tea key messages to plugin actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
//
// A single key can carry more than one action: "w" is both cursor-up
// (for board games) and walk-away (for the quiz). Plugins pick the
// action they understand.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return true
	}

	switch key {
	case "up", "k":
		frame.Set(core.ActionUp)
	case "w":
		frame.Set(core.ActionUp)
		frame.Set(core.ActionWalkAway)
	case "down", "s", "j":
		frame.Set(core.ActionDown)
	case "left", "a":
		frame.Set(core.ActionLeft)
	case "right", "d":
		frame.Set(core.ActionRight)
	case "enter", " ":
		frame.Set(core.ActionSelect)
	case "esc", "backspace":
		frame.Set(core.ActionCancel)
	case "p":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)
	case "h":
		frame.Set(core.ActionHint)
	case "1", "2", "3", "4", "5", "6", "7", "8":
		frame.Set(core.ActionNum1 + core.Action(key[0]-'1'))
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
