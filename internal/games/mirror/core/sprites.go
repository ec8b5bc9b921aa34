package core

// Sprite is a sprite identifier from the catalog (e.g. "panda").
type Sprite string

// RNG is the random source used by the generator.
// *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// Catalog is the immutable set of sprites frames are drawn from.
// It is built once at startup and sampled repeatedly.
type Catalog struct {
	sprites []Sprite
}

// NewCatalog builds a catalog from the given identifiers.
// Identifiers must be non-empty and unique.
func NewCatalog(ids ...Sprite) (*Catalog, error) {
	if len(ids) == 0 {
		return nil, configErr("catalog", "at least one sprite is required")
	}
	seen := make(map[Sprite]bool, len(ids))
	sprites := make([]Sprite, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, configErr("catalog", "empty sprite identifier")
		}
		if seen[id] {
			return nil, configErr("catalog", "duplicate sprite %q", id)
		}
		seen[id] = true
		sprites = append(sprites, id)
	}
	return &Catalog{sprites: sprites}, nil
}

// Len returns the number of sprites in the catalog.
func (c *Catalog) Len() int {
	return len(c.sprites)
}

// Sprites returns a copy of the catalog contents in declaration order.
func (c *Catalog) Sprites() []Sprite {
	return append([]Sprite(nil), c.sprites...)
}

// Has reports whether id is part of the catalog.
func (c *Catalog) Has(id Sprite) bool {
	for _, s := range c.sprites {
		if s == id {
			return true
		}
	}
	return false
}

func (c *Catalog) pick(rng RNG) Sprite {
	return c.sprites[rng.Intn(len(c.sprites))]
}

// Pair is a generated top/bottom sprite arrangement.
type Pair struct {
	Top    []Sprite
	Bottom []Sprite
	Match  bool
}

// PairSource produces sprite pairs for new frames.
type PairSource interface {
	Generate() Pair
}

// Generator draws sprite pairs from a catalog.
type Generator struct {
	catalog          *Catalog
	slots            int
	matchProbability float64
	rng              RNG
}

// NewGenerator creates a generator producing rows of the given length.
// matchProbability is the chance that a frame is mirrored.
func NewGenerator(catalog *Catalog, slots int, matchProbability float64, rng RNG) (*Generator, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, configErr("catalog", "catalog is empty")
	}
	if slots <= 0 {
		return nil, configErr("slots", "must be positive, got %d", slots)
	}
	if matchProbability < 0 || matchProbability > 1 {
		return nil, configErr("match_probability", "must be within [0, 1], got %v", matchProbability)
	}
	if rng == nil {
		return nil, configErr("rng", "random source is required")
	}
	return &Generator{
		catalog:          catalog,
		slots:            slots,
		matchProbability: matchProbability,
		rng:              rng,
	}, nil
}

// Slots returns the row length.
func (g *Generator) Slots() int {
	return g.slots
}

// Generate draws a new pair. Top sprites are drawn uniformly with
// replacement. A mirrored pair copies Top into Bottom; otherwise Bottom is
// drawn independently and the pair is relabelled as a match if the draw
// happens to reproduce Top exactly.
func (g *Generator) Generate() Pair {
	top := make([]Sprite, g.slots)
	for i := range top {
		top[i] = g.catalog.pick(g.rng)
	}

	bottom := make([]Sprite, g.slots)
	match := g.rng.Float64() < g.matchProbability
	if match {
		copy(bottom, top)
	} else {
		for i := range bottom {
			bottom[i] = g.catalog.pick(g.rng)
		}
		match = Mirrored(top, bottom)
	}

	return Pair{Top: top, Bottom: bottom, Match: match}
}

// Mirrored reports whether two rows are equal position by position.
func Mirrored(top, bottom []Sprite) bool {
	if len(top) != len(bottom) {
		return false
	}
	for i := range top {
		if top[i] != bottom[i] {
			return false
		}
	}
	return true
}
