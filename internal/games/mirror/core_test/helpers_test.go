package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/mirror-lane/internal/games/mirror/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

var animals = []core.Sprite{"bear", "cat", "dog", "fox", "frog", "lion", "mouse", "owl", "panda", "rabbit"}

func mustCatalog(t *testing.T, ids ...core.Sprite) *core.Catalog {
	t.Helper()
	if len(ids) == 0 {
		ids = animals
	}
	c, err := core.NewCatalog(ids...)
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return c
}

func mustGenerator(t *testing.T, p float64, seed int64) *core.Generator {
	t.Helper()
	g, err := core.NewGenerator(mustCatalog(t), 6, p, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	return g
}

// fixedPairs always hands out the same mirrored pair.
type fixedPairs struct{}

func (fixedPairs) Generate() core.Pair {
	row := []core.Sprite{"cat", "dog", "owl"}
	return core.Pair{Top: row, Bottom: append([]core.Sprite(nil), row...), Match: true}
}

func mustLane(t *testing.T, left, right, width float64) *core.Lane {
	t.Helper()
	l, err := core.NewLane(core.DefaultLaneConfig(core.Bounds{Left: left, Right: right}, width), fixedPairs{})
	if err != nil {
		t.Fatalf("NewLane() failed: %v", err)
	}
	return l
}

func assertOrdered(t *testing.T, frames []core.Frame) {
	t.Helper()
	for i := 1; i < len(frames); i++ {
		if frames[i].Position < frames[i-1].Right()-eps {
			t.Fatalf("frames %s and %s overlap", frames[i-1], frames[i])
		}
	}
}
