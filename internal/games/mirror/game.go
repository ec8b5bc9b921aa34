// Package mirror adapts the Mirror Lane engine to the platform: it maps
// configuration onto engine parameters, turns cursor moves and pointer
// clicks into frame selections, and projects the world onto a Screen.
package mirror

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/mirror-lane/internal/core"
	"github.com/vovakirdan/mirror-lane/internal/config"
	"github.com/vovakirdan/mirror-lane/internal/games/mirror/core"
)

// Layout rows relative to the lane's top row.
const (
	frameHeight = 5 // border, top row, divider, bottom row, border
	burstRow    = -1
	cursorRow   = frameHeight
	namesRow    = frameHeight + 1
	minScreenW  = 20
)

type spriteStyle struct {
	glyph rune
	color platformcore.Color
	index int // Position in the catalog, used for colour cycling
}

type character struct {
	name  string
	art   string
	x     float64
	row   int
	color platformcore.Color
}

// burst is a short-lived particle effect left by a selection.
type burst struct {
	x       float64 // World X of the burst centre
	success bool
	ttl     float64
}

// Game runs one Mirror Lane session for the platform.
type Game struct {
	cfg    config.MirrorConfig
	engine *core.Engine
	logger *log.Logger

	bounds  core.Bounds
	styles  map[core.Sprite]spriteStyle
	palette []platformcore.Color
	chars   []character

	screenW  int
	screenH  int
	seed     int64
	dt       float64
	tick     uint64
	paused   bool
	tooSmall bool
	cursor   int // Screen column of the selection cursor

	bursts []burst
}

// New validates cfg and creates a game. A nil logger discards output.
func New(cfg config.MirrorConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:    cfg,
		logger: logger,
		styles: make(map[core.Sprite]spriteStyle, len(cfg.Sprites.Catalog)),
		bounds: core.Bounds{Left: cfg.Lane.LeftBound, Right: cfg.Lane.RightBound},
	}

	ids := make([]core.Sprite, 0, len(cfg.Sprites.Catalog))
	for i, s := range cfg.Sprites.Catalog {
		id := core.Sprite(s.ID)
		color, ok := platformcore.ParseColor(s.Color)
		if !ok {
			return nil, fmt.Errorf("sprite %q: unknown color %q", s.ID, s.Color)
		}
		glyph, _ := utf8.DecodeRuneInString(s.Glyph)
		if glyph == utf8.RuneError {
			glyph, _ = utf8.DecodeRuneInString(s.ID)
		}
		ids = append(ids, id)
		g.styles[id] = spriteStyle{glyph: glyph, color: color, index: i}
		g.palette = append(g.palette, color)
	}

	catalog, err := core.NewCatalog(ids...)
	if err != nil {
		return nil, fmt.Errorf("sprite catalog: %w", err)
	}

	for _, c := range cfg.Background.Characters {
		color, ok := platformcore.ParseColor(c.Color)
		if !ok {
			return nil, fmt.Errorf("background character %q: unknown color %q", c.Name, c.Color)
		}
		g.chars = append(g.chars, character{name: c.Name, art: c.Art, x: c.X, row: c.Row, color: color})
	}

	if !(cfg.View.Left < cfg.View.Right) {
		return nil, fmt.Errorf("view: left %v must be below right %v", cfg.View.Left, cfg.View.Right)
	}

	g.engine = core.NewEngine(paramsFromConfig(cfg, catalog))

	// Initialize once so geometry and tuning errors surface here rather than in Reset.
	if err := g.engine.Initialize(g.bounds, cfg.Lane.FrameWidth, 0); err != nil {
		return nil, fmt.Errorf("mirror engine: %w", err)
	}

	g.Reset(platformcore.DefaultConfig())
	return g, nil
}

func paramsFromConfig(cfg config.MirrorConfig, catalog *core.Catalog) core.Params {
	p := core.DefaultParams(catalog)
	p.Slots = cfg.Sprites.Slots
	p.MatchProbability = cfg.Sprites.MatchProbability
	p.Speed = cfg.Lane.Speed
	p.ThresholdRatio = cfg.Lane.ThresholdRatio
	p.GapRatio = cfg.Lane.GapRatio
	p.CatchUp = cfg.Lane.CatchUp
	p.SecondInterval = cfg.Timing.SecondInterval
	p.BackgroundInterval = cfg.Timing.BackgroundInterval
	p.Background = core.Background{Amplitude: cfg.Background.Amplitude, Period: cfg.Background.Period}
	return p
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "mirror"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Mirror Lane"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.seed = cfg.Seed
	g.dt = cfg.TickSeconds()
	g.tick = 0
	g.paused = false
	g.bursts = nil

	// New already proved these parameters; a failure here means the engine
	// stays in its previous state, which is still playable.
	if err := g.engine.Initialize(g.bounds, g.cfg.Lane.FrameWidth, cfg.Seed); err != nil {
		g.logger.Error("engine reset failed", "err", err)
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.cursor = g.screenW / 2

	g.logger.Info("game reset",
		"seed", cfg.Seed,
		"frames", g.engine.Lane().Len(),
		"screen", fmt.Sprintf("%dx%d", g.screenW, g.screenH))
}

// Resize reprojects the view onto a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < g.cfg.View.LaneRow+namesRow+1
	g.cursor = platformcore.Clamp(g.cursor, 0, max(w-1, 0))
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionLeft) {
		g.cursor = platformcore.Clamp(g.cursor-g.cursorStep(), 0, g.screenW-1)
	}
	if in.Has(platformcore.ActionRight) {
		g.cursor = platformcore.Clamp(g.cursor+g.cursorStep(), 0, g.screenW-1)
	}

	selected := core.NoFrame
	if in.Click != nil {
		if f, ok := g.FrameAtCell(in.Click.X, in.Click.Y); ok {
			selected = f.ID
			g.cursor = in.Click.X
		}
	} else if in.Has(platformcore.ActionSelect) {
		if f, ok := g.engine.Lane().FrameAt(g.worldX(g.cursor)); ok {
			selected = f.ID
		}
	}

	return g.Advance(selected)
}

// Advance runs one engine tick with an already resolved selection and
// turns the engine's events into effects and cues. Headless drivers call
// it directly.
func (g *Game) Advance(selected core.FrameID) platformcore.StepResult {
	g.tick++
	events := g.engine.Tick(g.dt, selected)
	g.ageBursts(g.dt)

	var cues []platformcore.Cue
	for _, ev := range events {
		switch ev := ev.(type) {
		case core.MatchOutcome:
			g.bursts = append(g.bursts, burst{
				x:       ev.Position + g.cfg.Lane.FrameWidth/2,
				success: ev.Matched,
				ttl:     g.cfg.Timing.EffectDuration,
			})
			if ev.Matched {
				cues = append(cues, platformcore.CueCorrect)
			} else {
				cues = append(cues, platformcore.CueWrong)
			}
			g.logger.Debug("selection", "frame", ev.FrameID, "matched", ev.Matched, "score", g.engine.Score())
		case core.FrameReplaced:
			g.logger.Debug("frame replaced", "name", ev.Name, "old", ev.ID, "new", ev.NewID)
		case core.SecondElapsed:
			g.logger.Debug("second elapsed", "count", ev.Count)
		case core.BackgroundToggled:
			g.logger.Debug("background toggled", "visible", ev.Visible)
		}
	}

	return platformcore.StepResult{State: g.State(), Cues: cues}
}

func (g *Game) ageBursts(dt float64) {
	kept := g.bursts[:0]
	for _, b := range g.bursts {
		b.ttl -= dt
		if b.ttl > 0 {
			kept = append(kept, b)
		}
	}
	g.bursts = kept
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:   g.engine.Score(),
		Elapsed: g.engine.Elapsed(),
		Paused:  g.paused,
	}
}

// Engine exposes the underlying engine for headless drivers and tests.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// Visible returns the world-space window drawn on screen.
func (g *Game) Visible() core.Bounds {
	return core.Bounds{Left: g.cfg.View.Left, Right: g.cfg.View.Right}
}

// Cursor returns the cursor's screen column.
func (g *Game) Cursor() int {
	return g.cursor
}

// FrameAtCell hit-tests a screen cell against the frames on the lane.
func (g *Game) FrameAtCell(x, y int) (core.Frame, bool) {
	top := g.cfg.View.LaneRow
	if y < top || y >= top+frameHeight || x < 0 || x >= g.screenW {
		return core.Frame{}, false
	}
	return g.engine.Lane().FrameAt(g.worldX(x))
}

// scale returns screen columns per world unit.
func (g *Game) scale() float64 {
	return float64(g.screenW) / (g.cfg.View.Right - g.cfg.View.Left)
}

// column projects a world X onto a screen column.
func (g *Game) column(x float64) int {
	return int(math.Floor((x - g.cfg.View.Left) * g.scale()))
}

// worldX returns the world X at the centre of a screen column.
func (g *Game) worldX(col int) float64 {
	return g.cfg.View.Left + (float64(col)+0.5)/g.scale()
}

// cursorStep is one frame pitch in screen columns.
func (g *Game) cursorStep() int {
	step := g.cfg.Lane.FrameWidth * (1 + g.cfg.Lane.GapRatio) * g.scale()
	return max(int(math.Round(step)), 1)
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Paused bool
	Cursor int
	Bursts int
	Engine core.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Paused: g.paused,
		Cursor: g.cursor,
		Bursts: len(g.bursts),
		Engine: g.engine.Snapshot(),
	}
}
