// Package core provides the UI-agnostic model of the Mirror Lane game:
// the sprite pair generator, the scrolling frame lane and the engine that
// drives them one tick at a time. It is deterministic for a given seed.
package core

import "fmt"

// FrameID identifies one frame instance. IDs are never reused, so a
// selection that refers to a recycled frame can be detected as stale.
type FrameID uint64

// NoFrame is the zero FrameID, used when no frame is selected.
const NoFrame FrameID = 0

// Frame is one lane slot holding a top and bottom row of sprites.
type Frame struct {
	ID       FrameID
	Name     string  // Slot name, kept across respawns (e.g. "Frame_3")
	Position float64 // X of the left edge
	Width    float64
	Top      []Sprite
	Bottom   []Sprite
	Match    bool // Bottom equals Top at every position
}

// Right returns the X of the frame's right edge.
func (f Frame) Right() float64 {
	return f.Position + f.Width
}

// Contains reports whether x falls inside the frame's horizontal extent.
func (f Frame) Contains(x float64) bool {
	return x >= f.Position && x < f.Right()
}

// Slots returns the number of sprites per row.
func (f Frame) Slots() int {
	return len(f.Top)
}

func (f Frame) String() string {
	return fmt.Sprintf("%s#%d@%.2f", f.Name, f.ID, f.Position)
}

// clone returns a copy that shares no slices with f.
func (f Frame) clone() Frame {
	c := f
	c.Top = append([]Sprite(nil), f.Top...)
	c.Bottom = append([]Sprite(nil), f.Bottom...)
	return c
}

func slotName(n int) string {
	return fmt.Sprintf("Frame_%d", n)
}
