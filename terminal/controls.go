// Package terminal is the tcell frontend: it polls keys into entity.Input and draws game snapshots
//
// Terminals report key presses and auto-repeats but never releases, so a held direction
// is modelled as a press that expires unless refreshed by the next repeat.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-swarm/entity"
	"github.com/lixenwraith/void-swarm/parameter"
)

// Action is a discrete command decoded from a key
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionPick1
	ActionPick2
	ActionPick3
	ActionReroll
	ActionMute
	ActionRestart
)

// PickIndex returns the menu slot of a pick action, -1 otherwise
func (a Action) PickIndex() int {
	switch a {
	case ActionPick1:
		return 0
	case ActionPick2:
		return 1
	case ActionPick3:
		return 2
	}
	return -1
}

type direction uint8

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// opposite cancels the reverse direction so reversals are immediate
var opposite = [dirCount]direction{dirUp: dirDown, dirDown: dirUp, dirLeft: dirRight, dirRight: dirLeft}

// Controls turns key events into held movement and actions
type Controls struct {
	held [dirCount]time.Time
}

// NewControls creates controls with nothing held
func NewControls() *Controls {
	return &Controls{}
}

// HandleKey records a key press; movement keys return ActionNone
func (c *Controls) HandleKey(key tcell.Key, ch rune, now time.Time) Action {
	switch key {
	case tcell.KeyUp:
		c.press(dirUp, now)
		return ActionNone
	case tcell.KeyDown:
		c.press(dirDown, now)
		return ActionNone
	case tcell.KeyLeft:
		c.press(dirLeft, now)
		return ActionNone
	case tcell.KeyRight:
		c.press(dirRight, now)
		return ActionNone
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionRestart
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ch {
	case 'w', 'W':
		c.press(dirUp, now)
	case 's', 'S':
		c.press(dirDown, now)
	case 'a', 'A':
		c.press(dirLeft, now)
	case 'd', 'D':
		c.press(dirRight, now)
	case 'q', 'Q':
		return ActionQuit
	case 'p', 'P', ' ':
		return ActionPause
	case '1':
		return ActionPick1
	case '2':
		return ActionPick2
	case '3':
		return ActionPick3
	case 'r', 'R':
		return ActionReroll
	case 'm', 'M':
		return ActionMute
	case 'n', 'N':
		return ActionRestart
	}
	return ActionNone
}

func (c *Controls) press(d direction, now time.Time) {
	hold := parameter.KeyHoldInitial
	if now.Before(c.held[d]) {
		hold = parameter.KeyHoldRepeat
	}
	c.held[d] = now.Add(hold)
	c.held[opposite[d]] = time.Time{}
}

// Input returns the movement state at now
func (c *Controls) Input(now time.Time) entity.Input {
	var in entity.Input
	if now.Before(c.held[dirUp]) {
		in.MoveY--
	}
	if now.Before(c.held[dirDown]) {
		in.MoveY++
	}
	if now.Before(c.held[dirLeft]) {
		in.MoveX--
	}
	if now.Before(c.held[dirRight]) {
		in.MoveX++
	}
	return in
}

// Release drops every held direction
func (c *Controls) Release() {
	c.held = [dirCount]time.Time{}
}
