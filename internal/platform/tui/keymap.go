package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// actionBinding ties a set of keys to a round action.
type actionBinding struct {
	key    key.Binding
	action core.Action
}

// menuBinding ties a set of keys to a menu action.
type menuBinding struct {
	key    key.Binding
	action MenuAction
}

// KeyMapper translates Bubble Tea key messages to round and menu actions.
// Bindings are checked in order, so quit keys shadow everything else.
type KeyMapper struct {
	quit  key.Binding
	round []actionBinding
	menu  []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings:
// arrows, WASD and vim keys steer; P, Space or Esc pause.
func NewKeyMapper() *KeyMapper {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}

	return &KeyMapper{
		quit: bind("quit", "q", "ctrl+c"),
		round: []actionBinding{
			{bind("up", "up", "w", "k"), core.ActionUp},
			{bind("down", "down", "s", "j"), core.ActionDown},
			{bind("left", "left", "a", "h"), core.ActionLeft},
			{bind("right", "right", "d", "l"), core.ActionRight},
			{bind("pause", "p", " ", "esc"), core.ActionPause},
			{bind("restart", "r"), core.ActionRestart},
			{bind("confirm", "enter"), core.ActionConfirm},
			{bind("menu", "b"), core.ActionBack},
		},
		menu: []menuBinding{
			{bind("up", "up", "w", "k"), MenuActionUp},
			{bind("down", "down", "s", "j"), MenuActionDown},
			{bind("select", "enter", " "), MenuActionSelect},
			{bind("back", "esc", "b"), MenuActionBack},
		},
	}
}

// MapKey translates a key message to a round action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.round {
		if key.Matches(msg, b.key) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame appends the key's action to an input frame.
// Quit is reported but never buffered.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
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
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.key) {
			return b.action
		}
	}
	return MenuActionNone
}
