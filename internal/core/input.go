package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Move the selection cursor left
	ActionRight         // Move the selection cursor right
	ActionSelect        // Pick the frame under the cursor
	ActionPause         // Pause/unpause
	ActionQuit          // Leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a screen cell coordinate.
type Point struct {
	X, Y int
}

// InputFrame is the input collected during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool

	// Click is the screen cell the player clicked this tick, if any.
	Click *Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a pointer click. Only the last click in a tick counts.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Point{X: x, Y: y}
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}
