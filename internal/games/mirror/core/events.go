package core

// Event is something that happened during a tick, for renderers, audio and
// particle effects to react to.
type Event interface {
	event()
}

// FrameReplaced is emitted when a frame is recycled, either because it
// crossed the left bound or because it was selected.
type FrameReplaced struct {
	ID    FrameID // The removed frame
	NewID FrameID // Its replacement
	Name  string  // Slot name shared by both
}

// MatchOutcome is emitted when the player selects a frame.
type MatchOutcome struct {
	Matched  bool
	Position float64 // Position of the selected frame at selection time
	FrameID  FrameID
}

// SecondElapsed is emitted once per whole simulated second.
type SecondElapsed struct {
	Count int
}

// BackgroundToggled is emitted when the background characters are shown or hidden.
type BackgroundToggled struct {
	Visible bool
}

func (FrameReplaced) event()     {}
func (MatchOutcome) event()      {}
func (SecondElapsed) event()     {}
func (BackgroundToggled) event() {}
