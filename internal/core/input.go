package core

// Action is a semantic player intent, decoupled from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
	ActionPause
	ActionRestart
	ActionToggleGhost
	ActionToggleMute
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionSoftDrop:    "SoftDrop",
	ActionHardDrop:    "HardDrop",
	ActionRotateCW:    "RotateCW",
	ActionRotateCCW:   "RotateCCW",
	ActionPause:       "Pause",
	ActionRestart:     "Restart",
	ActionToggleGhost: "ToggleGhost",
	ActionToggleMute:  "ToggleMute",
	ActionQuit:        "Quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the actions triggered during one tick, in arrival order.
// Repeated key presses within a tick are kept so fast tapping is not lost.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has reports whether the action was triggered at least once this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the frame's actions in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Len returns the number of buffered actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear empties the frame, keeping its backing storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
