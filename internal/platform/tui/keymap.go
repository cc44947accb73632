package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skyroads/internal/core"
)

type gameBinding struct {
	key.Binding
	action core.Action
}

type menuBinding struct {
	key.Binding
	action MenuAction
}

// KeyMapper owns the key bindings for runs and menus.
type KeyMapper struct {
	quit key.Binding
	game []gameBinding
	menu []menuBinding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// NewKeyMapper returns the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		quit: bind("q", "quit", "q", "ctrl+c"),
		game: []gameBinding{
			{bind("w/↑", "faster", "w", "up"), core.ActionUp},
			{bind("s/↓", "slower", "s", "down"), core.ActionDown},
			{bind("a/←", "left", "a", "left"), core.ActionLeft},
			{bind("d/→", "right", "d", "right"), core.ActionRight},
			{bind("space", "jump", " "), core.ActionJump},
			{bind("c", "camera", "c"), core.ActionCamera},
			{bind("i/j/k/l", "look", "i"), core.ActionLookUp},
			{bind("k", "look down", "k"), core.ActionLookDown},
			{bind("j", "look left", "j"), core.ActionLookLeft},
			{bind("l", "look right", "l"), core.ActionLookRight},
			{bind("enter", "confirm", "enter"), core.ActionConfirm},
			{bind("b", "menu", "b"), core.ActionBack},
			{bind("p/esc", "pause", "p", "esc"), core.ActionPause},
			{bind("r", "restart", "r"), core.ActionRestart},
		},
		menu: []menuBinding{
			{bind("↑/k", "up", "w", "up", "k"), MenuActionUp},
			{bind("↓/j", "down", "s", "down", "j"), MenuActionDown},
			{bind("←/h", "easier", "a", "left", "h"), MenuActionLeft},
			{bind("→/l", "harder", "d", "right", "l"), MenuActionRight},
			{bind("enter", "select", "enter", " "), MenuActionSelect},
			{bind("esc", "back", "b", "esc"), MenuActionBack},
			{bind("tab", "scores", "tab"), MenuActionScoreboard},
		},
	}
}

// MapKey returns the action bound to msg, or ActionNone. isQuit is set for
// the quit keys, which the platform handles itself.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.Binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the action bound to msg to frame and reports whether
// msg asked to quit. Quit is never forwarded to the game.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is an intent on a menu screen.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.Binding) {
			return b.action
		}
	}
	return MenuActionNone
}

// menuHelp exposes the menu bindings to a bubbles help.Model.
type menuHelp struct{ km *KeyMapper }

func (h menuHelp) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(h.km.menu)+1)
	for _, b := range h.km.menu {
		if b.action == MenuActionBack {
			continue
		}
		out = append(out, b.Binding)
	}
	return append(out, h.km.quit)
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// gameHelp lists the in-run bindings, for the controls line under a menu.
type gameHelp struct{ km *KeyMapper }

func (h gameHelp) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(h.km.game))
	for _, b := range h.km.game {
		switch b.action {
		// One "look" entry stands for all four look keys.
		case core.ActionConfirm, core.ActionBack, core.ActionLookDown, core.ActionLookLeft, core.ActionLookRight:
			continue
		}
		out = append(out, b.Binding)
	}
	return out
}

func (h gameHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
