// Package registry holds the contracts between games and the platform, and
// a global registry of autoplay strategies. Strategies register themselves
// in init() functions so the CLI can list and create them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mirror-lane/internal/core"
	mirror "github.com/vovakirdan/mirror-lane/internal/games/mirror/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions and pointer clicks.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, elapsed, paused).
	State() core.GameState
}

// Resizer is implemented by games that reproject when the terminal changes size.
type Resizer interface {
	Resize(w, h int)
}

// Strategy picks which frame, if any, to select on a tick.
// visible is the world-space window the player can see.
type Strategy interface {
	Choose(frames []mirror.Frame, visible mirror.Bounds) mirror.FrameID
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	Name        string
	Description string
}

// Factory creates a strategy. seed feeds strategies that make random choices.
type Factory func(seed int64) Strategy

type entry struct {
	factory     Factory
	description string
}

var (
	strategies = make(map[string]entry)
	mu         sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Typically called from an init() function.
// Panics if a strategy with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := strategies[name]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", name))
	}
	strategies[name] = entry{factory: f, description: description}
}

// List returns information about all registered strategies, sorted by name.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(strategies))
	for name, e := range strategies {
		result = append(result, StrategyInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a strategy by name.
// Returns an error if the name is not registered.
func Create(name string, seed int64) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", name)
	}
	return e.factory(seed), nil
}

// Exists checks if a strategy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := strategies[name]
	return ok
}
