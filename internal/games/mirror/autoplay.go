package mirror

import (
	"math/rand"

	"github.com/vovakirdan/mirror-lane/internal/games/mirror/core"
	"github.com/vovakirdan/mirror-lane/internal/registry"
)

// PerfectStrategy selects the leftmost fully visible mirrored frame.
type PerfectStrategy struct{}

// Choose implements registry.Strategy.
func (PerfectStrategy) Choose(frames []core.Frame, visible core.Bounds) core.FrameID {
	for _, f := range frames {
		if onScreen(f, visible) && core.Evaluate(f) {
			return f.ID
		}
	}
	return core.NoFrame
}

// RandomStrategy selects any fully visible frame, mirrored or not.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy creates a random strategy with its own seeded source.
func NewRandomStrategy(seed int64) *RandomStrategy {
	return &RandomStrategy{rng: rand.New(rand.NewSource(seed))}
}

// Choose implements registry.Strategy.
func (s *RandomStrategy) Choose(frames []core.Frame, visible core.Bounds) core.FrameID {
	var candidates []core.FrameID
	for _, f := range frames {
		if onScreen(f, visible) {
			candidates = append(candidates, f.ID)
		}
	}
	if len(candidates) == 0 {
		return core.NoFrame
	}
	return candidates[s.rng.Intn(len(candidates))]
}

// IdleStrategy never selects anything.
type IdleStrategy struct{}

// Choose implements registry.Strategy.
func (IdleStrategy) Choose([]core.Frame, core.Bounds) core.FrameID {
	return core.NoFrame
}

func onScreen(f core.Frame, visible core.Bounds) bool {
	return f.Position >= visible.Left && f.Right() <= visible.Right
}

func init() {
	registry.Register("perfect", "always picks a mirrored frame when one is visible", func(int64) registry.Strategy {
		return PerfectStrategy{}
	})
	registry.Register("random", "picks any visible frame at random", func(seed int64) registry.Strategy {
		return NewRandomStrategy(seed)
	})
	registry.Register("idle", "never selects, frames only scroll and respawn", func(int64) registry.Strategy {
		return IdleStrategy{}
	})
}
