package core

import (
	"math"
	"math/rand"
)

// EngineState is the lifecycle state of an Engine.
type EngineState int

const (
	StateUninitialized EngineState = iota
	StateRunning
)

// String returns a human-readable name for the state.
func (s EngineState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Params holds the tuning the engine applies on every tick.
type Params struct {
	Catalog          *Catalog
	Slots            int     // Sprites per row
	MatchProbability float64 // Chance a new frame is mirrored

	Speed          float64 // Leftward scroll rate, world units per second
	ThresholdRatio float64 // Catch-up clearance as a fraction of frame width
	GapRatio       float64
	CatchUp        float64

	SecondInterval     float64 // Seconds per elapsed-time tick
	BackgroundInterval float64 // Seconds between background toggles
	Background         Background
}

// DefaultParams returns the standard tuning for the given catalog.
func DefaultParams(catalog *Catalog) Params {
	return Params{
		Catalog:            catalog,
		Slots:              6,
		MatchProbability:   0.5,
		Speed:              5,
		ThresholdRatio:     DefaultThresholdRatio,
		GapRatio:           DefaultGapRatio,
		CatchUp:            DefaultCatchUp,
		SecondInterval:     1,
		BackgroundInterval: 3,
		Background:         Background{Amplitude: 5, Period: 1},
	}
}

// Validate checks the engine-level tuning. Lane geometry is checked by the lane.
func (p Params) Validate() error {
	if p.Speed < 0 || math.IsNaN(p.Speed) || math.IsInf(p.Speed, 0) {
		return configErr("speed", "must be a finite non-negative rate, got %v", p.Speed)
	}
	if p.ThresholdRatio < 0 {
		return configErr("threshold_ratio", "must not be negative, got %v", p.ThresholdRatio)
	}
	if !(p.SecondInterval > 0) {
		return configErr("second_interval", "must be positive, got %v", p.SecondInterval)
	}
	if !(p.BackgroundInterval > 0) {
		return configErr("background_interval", "must be positive, got %v", p.BackgroundInterval)
	}
	return nil
}

// Stats counts what happened over the engine's lifetime.
type Stats struct {
	Ticks      uint64
	Respawned  int // Frames recycled after crossing the left bound
	Selections int
	Matches    int
	Misses     int
}

// Engine drives one Mirror Lane game. It owns the score and timers and
// holds the lane it advances every tick.
type Engine struct {
	params Params
	state  EngineState
	lane   *Lane
	gen    *Generator

	score             int
	elapsed           int
	backgroundVisible bool

	clock           float64 // Total simulated time
	secondTimer     float64
	backgroundTimer float64

	stats Stats
}

// NewEngine creates an uninitialized engine. Tick is a no-op until
// Initialize succeeds.
func NewEngine(p Params) *Engine {
	return &Engine{params: p}
}

// Initialize builds the generator and lane and starts the game. Calling it
// again restarts from scratch. Invalid configuration leaves the engine in
// its previous state.
func (e *Engine) Initialize(bounds Bounds, width float64, seed int64) error {
	if err := e.params.Validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	gen, err := NewGenerator(e.params.Catalog, e.params.Slots, e.params.MatchProbability, rng)
	if err != nil {
		return err
	}

	cfg := LaneConfig{
		Bounds:   bounds,
		Width:    width,
		GapRatio: e.params.GapRatio,
		CatchUp:  e.params.CatchUp,
	}
	lane, err := NewLane(cfg, gen)
	if err != nil {
		return err
	}

	e.gen = gen
	e.lane = lane
	e.state = StateRunning
	e.score = 0
	e.elapsed = 0
	e.backgroundVisible = false
	e.clock = 0
	e.secondTimer = 0
	e.backgroundTimer = 0
	e.stats = Stats{}
	return nil
}

// Tick advances the game by dt seconds and resolves an optional selection
// (NoFrame for none). A selection that no longer names a frame in the lane
// is ignored. It returns the events produced by this tick.
func (e *Engine) Tick(dt float64, selected FrameID) []Event {
	if e.state != StateRunning {
		return nil
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	e.stats.Ticks++

	var events []Event

	// 1. Scroll and recycle.
	threshold := e.lane.Width() * e.params.ThresholdRatio
	e.lane.Tick(dt, e.params.Speed, threshold)
	for _, r := range e.lane.respawn() {
		events = append(events, r)
		e.stats.Respawned++
	}

	// 2. Selection.
	if selected != NoFrame {
		if f, ok := e.lane.FindByID(selected); ok {
			matched := Evaluate(f)
			nf, _ := e.lane.Replace(f.ID, e.gen.Generate())
			events = append(events, FrameReplaced{ID: f.ID, NewID: nf.ID, Name: nf.Name})

			e.stats.Selections++
			if matched {
				e.score++
				e.stats.Matches++
			} else {
				e.stats.Misses++
			}
			events = append(events, MatchOutcome{Matched: matched, Position: f.Position, FrameID: f.ID})
		}
	}

	// 3. Timers.
	e.clock += dt
	e.secondTimer += dt
	seconds := drain(&e.secondTimer, e.params.SecondInterval)
	for i := max(seconds-maxTimerEvents, 0); i < seconds; i++ {
		events = append(events, SecondElapsed{Count: e.elapsed + i + 1})
	}
	e.elapsed += seconds

	e.backgroundTimer += dt
	toggles := drain(&e.backgroundTimer, e.params.BackgroundInterval)
	for i := max(toggles-maxTimerEvents, 0); i < toggles; i++ {
		// An odd-numbered toggle inverts the starting visibility.
		events = append(events, BackgroundToggled{Visible: e.backgroundVisible != ((i+1)%2 == 1)})
	}
	if toggles%2 == 1 {
		e.backgroundVisible = !e.backgroundVisible
	}

	return events
}

// maxTimerEvents caps the events one timer emits in a single tick. A long
// stall still advances the counters in full; only the oldest events are dropped.
const maxTimerEvents = 64

// maxTimerFires bounds how many intervals a single tick can account for.
const maxTimerFires = 1 << 53

// drain removes every whole interval from timer and returns how many fired.
func drain(timer *float64, interval float64) int {
	if *timer < interval {
		return 0
	}
	n := math.Floor(*timer / interval)
	*timer = math.Mod(*timer, interval)
	return int(math.Min(n, maxTimerFires))
}

// State returns the lifecycle state.
func (e *Engine) State() EngineState {
	return e.state
}

// Score returns the number of confirmed matches.
func (e *Engine) Score() int {
	return e.score
}

// Elapsed returns the number of whole simulated seconds.
func (e *Engine) Elapsed() int {
	return e.elapsed
}

// Clock returns the total simulated time in seconds.
func (e *Engine) Clock() float64 {
	return e.clock
}

// BackgroundVisible reports whether the background characters are shown.
func (e *Engine) BackgroundVisible() bool {
	return e.backgroundVisible
}

// BackgroundOffset returns the current horizontal swing of the background.
func (e *Engine) BackgroundOffset() float64 {
	return e.params.Background.Offset(e.clock)
}

// Lane returns the engine's lane, or nil before Initialize.
func (e *Engine) Lane() *Lane {
	return e.lane
}

// Frames returns a copy of the lane's frames, or nil before Initialize.
func (e *Engine) Frames() []Frame {
	if e.lane == nil {
		return nil
	}
	return e.lane.Frames()
}

// Params returns the engine's tuning.
func (e *Engine) Params() Params {
	return e.params
}

// Stats returns lifetime counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Snapshot captures the engine state for determinism testing.
type Snapshot struct {
	State             EngineState
	Tick              uint64
	Score             int
	Elapsed           int
	BackgroundVisible bool
	FrameIDs          []FrameID
	Names             []string
	Positions         []float64
	Matches           []bool
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:             e.state,
		Tick:              e.stats.Ticks,
		Score:             e.score,
		Elapsed:           e.elapsed,
		BackgroundVisible: e.backgroundVisible,
	}
	if e.lane == nil {
		return s
	}
	for _, f := range e.lane.frames {
		s.FrameIDs = append(s.FrameIDs, f.ID)
		s.Names = append(s.Names, f.Name)
		s.Positions = append(s.Positions, f.Position)
		s.Matches = append(s.Matches, f.Match)
	}
	return s
}
