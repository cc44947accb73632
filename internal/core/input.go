package core

// Action is a player intent, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone      Action = iota
	ActionUp               // speed up
	ActionDown             // slow down
	ActionLeft             // steer left
	ActionRight            // steer right
	ActionJump             // jump while grounded
	ActionCamera           // toggle first/third person
	ActionConfirm          // confirm a menu entry
	ActionBack             // leave to the menu
	ActionRestart          // start over after game over
	ActionQuit             // end the session
	ActionPause            // pause or resume
	ActionLookUp           // tilt the camera up
	ActionLookDown         // tilt the camera down
	ActionLookLeft         // turn the camera left
	ActionLookRight        // turn the camera right

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionJump:      "Jump",
	ActionCamera:    "Camera",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
	ActionLookUp:    "LookUp",
	ActionLookDown:  "LookDown",
	ActionLookLeft:  "LookLeft",
	ActionLookRight: "LookRight",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks a as pressed. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Clear drops every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Empty reports whether nothing was pressed.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Actions lists the pressed actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
