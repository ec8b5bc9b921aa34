package core

import "math"

// Default lane tuning.
const (
	DefaultGapRatio       = 0.1  // Gap between spawned frames, as a fraction of width
	DefaultCatchUp        = 10.0 // Speed multiplier for frames closing a gap
	DefaultThresholdRatio = 0.5  // Clearance (fraction of width) that triggers catch-up
)

// Bounds is the horizontal spawn/expiry window of the lane.
type Bounds struct {
	Left  float64
	Right float64
}

// Width returns the extent of the window.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// LaneConfig describes the geometry of a lane.
type LaneConfig struct {
	Bounds   Bounds
	Width    float64 // Frame width, shared by all frames
	GapRatio float64 // Spawn gap as a fraction of Width
	CatchUp  float64 // Speed multiplier applied while closing a gap
}

// DefaultLaneConfig returns a lane config with the standard gap and catch-up rules.
func DefaultLaneConfig(bounds Bounds, width float64) LaneConfig {
	return LaneConfig{
		Bounds:   bounds,
		Width:    width,
		GapRatio: DefaultGapRatio,
		CatchUp:  DefaultCatchUp,
	}
}

// Validate checks the config for values the lane cannot work with.
func (c LaneConfig) Validate() error {
	if !(c.Width > 0) || math.IsInf(c.Width, 0) {
		return configErr("width", "must be positive, got %v", c.Width)
	}
	if !(c.Bounds.Left < c.Bounds.Right) {
		return configErr("bounds", "left bound %v must be below right bound %v", c.Bounds.Left, c.Bounds.Right)
	}
	if c.GapRatio < 0 {
		return configErr("gap_ratio", "must not be negative, got %v", c.GapRatio)
	}
	if c.CatchUp < 1 {
		return configErr("catch_up", "must be at least 1, got %v", c.CatchUp)
	}
	return nil
}

// Lane is the ordered, scrolling row of frames.
//
// Frames are kept sorted by ascending position. New frames are only ever
// appended behind the rightmost frame, so removal and append preserve order.
//
//	left bound                                         right bound
//	   |[frame] [frame] [frame] [frame] [frame] [frame]   |
type Lane struct {
	frames []Frame
	cfg    LaneConfig
	gap    float64
	src    PairSource
	nextID FrameID
}

// NewLane tiles frames from the left bound towards the right bound and
// returns the populated lane. Tiling stops at the first position that is
// not below the right bound, so the lane always holds at least one frame.
func NewLane(cfg LaneConfig, src PairSource) (*Lane, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, configErr("pair_source", "a pair source is required")
	}

	l := &Lane{
		cfg: cfg,
		gap: cfg.Width * cfg.GapRatio,
		src: src,
	}

	step := cfg.Width + l.gap
	for n := 0; ; n++ {
		// Multiply rather than accumulate so long lanes don't drift.
		x := cfg.Bounds.Left + float64(n)*step
		if x >= cfg.Bounds.Right {
			break
		}
		l.frames = append(l.frames, l.newFrame(slotName(n), x, src.Generate()))
	}

	return l, nil
}

// newFrame assigns a fresh ID and derives Match from the rows themselves.
func (l *Lane) newFrame(name string, x float64, p Pair) Frame {
	l.nextID++
	return Frame{
		ID:       l.nextID,
		Name:     name,
		Position: x,
		Width:    l.cfg.Width,
		Top:      p.Top,
		Bottom:   p.Bottom,
		Match:    Mirrored(p.Top, p.Bottom),
	}
}

// Len returns the number of frames in the lane.
func (l *Lane) Len() int {
	return len(l.frames)
}

// Bounds returns the lane's spawn/expiry window.
func (l *Lane) Bounds() Bounds {
	return l.cfg.Bounds
}

// Width returns the shared frame width.
func (l *Lane) Width() float64 {
	return l.cfg.Width
}

// Gap returns the spawn gap between consecutive frames.
func (l *Lane) Gap() float64 {
	return l.gap
}

// Frames returns a copy of the frames, ordered by position.
func (l *Lane) Frames() []Frame {
	out := make([]Frame, len(l.frames))
	for i, f := range l.frames {
		out[i] = f.clone()
	}
	return out
}

// Rightmost returns the position of the rightmost frame.
func (l *Lane) Rightmost() float64 {
	if len(l.frames) == 0 {
		return l.cfg.Bounds.Left
	}
	return l.frames[len(l.frames)-1].Position
}

// FindByID returns the frame with the given ID.
func (l *Lane) FindByID(id FrameID) (Frame, bool) {
	if i := l.index(id); i >= 0 {
		return l.frames[i].clone(), true
	}
	return Frame{}, false
}

// FrameAt returns the frame covering x, if any.
func (l *Lane) FrameAt(x float64) (Frame, bool) {
	for _, f := range l.frames {
		if f.Contains(x) {
			return f.clone(), true
		}
	}
	return Frame{}, false
}

func (l *Lane) index(id FrameID) int {
	if id == NoFrame {
		return -1
	}
	for i := range l.frames {
		if l.frames[i].ID == id {
			return i
		}
	}
	return -1
}

// clearance returns the distance between the frame at index i and whatever
// bounds it on the left: the right edge of its left neighbour, or the left
// bound for the leftmost frame.
func (l *Lane) clearance(i int) float64 {
	if i == 0 {
		return l.frames[0].Position - l.cfg.Bounds.Left
	}
	return l.frames[i].Position - l.frames[i-1].Right()
}

// Tick moves every frame left by speed*dt. Frames whose clearance exceeds
// threshold move at the catch-up rate instead, closing gaps left by removed
// frames. Clearances are measured before anything moves.
//
// A catching-up frame stops one spawn gap behind its neighbour, and the
// leftmost frame does not sprint past the left bound.
func (l *Lane) Tick(dt, speed, threshold float64) {
	if !(dt > 0) || math.IsInf(dt, 0) || len(l.frames) == 0 {
		return
	}

	step := speed * dt
	fast := make([]bool, len(l.frames))
	for i := range l.frames {
		fast[i] = l.clearance(i) > threshold
	}

	for i := range l.frames {
		f := &l.frames[i]
		base := f.Position - step
		if !fast[i] {
			f.Position = base
			continue
		}

		floor := l.cfg.Bounds.Left
		if i > 0 {
			floor = l.frames[i-1].Right() + l.gap
		}
		// Catching up never means moving slower than the base rate.
		floor = math.Min(floor, base)
		f.Position = math.Max(f.Position-step*l.cfg.CatchUp, floor)
	}
}

// RespawnExpired replaces every frame that has crossed the left bound with a
// new frame behind the rightmost one. Replacements keep the expired frame's
// name. Expired frames are handled left to right, each exactly once, and no
// replacement lands left of the bound, so one call leaves nothing expired.
// It returns the IDs of the frames that were removed.
func (l *Lane) RespawnExpired() []FrameID {
	var ids []FrameID
	for _, r := range l.respawn() {
		ids = append(ids, r.ID)
	}
	return ids
}

func (l *Lane) respawn() []FrameReplaced {
	var expired []FrameID
	for _, f := range l.frames {
		if f.Position < l.cfg.Bounds.Left {
			expired = append(expired, f.ID)
		}
	}

	var out []FrameReplaced
	for _, id := range expired {
		nf, ok := l.Replace(id, l.src.Generate())
		if ok {
			out = append(out, FrameReplaced{ID: id, NewID: nf.ID, Name: nf.Name})
		}
	}
	return out
}

// Replace removes the frame with the given ID and appends a new frame built
// from pair at rightmost + width + gap. The rightmost position is taken
// before removal. If the whole lane has scrolled past the left bound, the
// new frame starts at the bound instead. The new frame inherits the removed
// frame's name.
func (l *Lane) Replace(id FrameID, pair Pair) (Frame, bool) {
	i := l.index(id)
	if i < 0 {
		return Frame{}, false
	}

	x := math.Max(l.Rightmost()+l.cfg.Width+l.gap, l.cfg.Bounds.Left)
	name := l.frames[i].Name

	l.removeAt(i)
	nf := l.newFrame(name, x, pair)
	l.frames = append(l.frames, nf)

	return nf.clone(), true
}

// Remove deletes the frame with the given ID without replacing it.
// The lane will close the resulting gap through the catch-up rule.
// A lane never drops its last frame.
func (l *Lane) Remove(id FrameID) bool {
	i := l.index(id)
	if i < 0 || len(l.frames) == 1 {
		return false
	}
	l.removeAt(i)
	return true
}

func (l *Lane) removeAt(i int) {
	copy(l.frames[i:], l.frames[i+1:])
	l.frames[len(l.frames)-1] = Frame{}
	l.frames = l.frames[:len(l.frames)-1]
}
