package meadow

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Density selects how many plants each generation sows.
type Density int

const (
	Sparse Density = iota
	Normal
	Dense
	Lush
)

// densityRanges maps each density to its half-open per-generation plant
// count range.
var densityRanges = [...]struct{ min, max int }{
	Sparse: {4, 8},
	Normal: {8, 13},
	Dense:  {13, 20},
	Lush:   {20, 30},
}

// String returns the density's configuration name.
func (d Density) String() string {
	switch d {
	case Sparse:
		return "sparse"
	case Normal:
		return "normal"
	case Dense:
		return "dense"
	case Lush:
		return "lush"
	}
	return "unknown"
}

// ParseDensity resolves a density name as it appears in configuration.
// The empty string selects Normal.
func ParseDensity(s string) (Density, error) {
	switch strings.ToLower(s) {
	case "":
		return Normal, nil
	case "sparse":
		return Sparse, nil
	case "normal":
		return Normal, nil
	case "dense":
		return Dense, nil
	case "lush":
		return Lush, nil
	}
	return Normal, fmt.Errorf("parse density %q: unknown name", s)
}

// Config drives Generate. Zero values select the documented defaults, so
// Config{Seed: 42} is a complete configuration.
type Config struct {
	// Seed drives every draw. Equal configs with equal seeds generate
	// identical fields.
	Seed int64

	// Duration is the total animation window in abstract time units.
	// Defaults to 20.
	Duration float64

	// Generations is the number of sowing waves spread across Duration.
	// Defaults to 5.
	Generations int

	// Density selects how many plants each generation sows.
	Density Density

	// MaxHeight caps plant height as a fraction of the scene and filters
	// out categories that cannot fit under it. Clamped to [0.05, 1].
	// Defaults to 0.35.
	MaxHeight float64

	// Curve warps how the animation window is divided between
	// generations. The zero value is linear.
	Curve Curve

	// Categories restricts sowing to the named categories, such as
	// "grass" or "tall-flower". Empty means no restriction. Names that
	// resolve to nothing are ignored; if nothing on the list resolves,
	// every plant falls back to grass.
	Categories []string

	// FlowerPalette, StemPalette and LeafPalette are the color tables
	// plants index into. Nil or empty selects the built-in defaults.
	FlowerPalette Palette
	StemPalette   Palette
	LeafPalette   Palette
}

// withDefaults normalizes zero and out-of-range fields.
func (c Config) withDefaults() Config {
	if c.Duration <= 0 {
		c.Duration = 20
	}
	if c.Generations <= 0 {
		c.Generations = 5
	}
	if c.Density < Sparse || c.Density > Lush {
		c.Density = Normal
	}
	if c.MaxHeight == 0 {
		c.MaxHeight = 0.35
	}
	c.MaxHeight = clamp(c.MaxHeight, 0.05, 1)
	if len(c.FlowerPalette) == 0 {
		c.FlowerPalette = DefaultFlowerPalette()
	}
	if len(c.StemPalette) == 0 {
		c.StemPalette = DefaultStemPalette()
	}
	if len(c.LeafPalette) == 0 {
		c.LeafPalette = DefaultLeafPalette()
	}
	return c
}

// Plant is one generated entity. A Plant is plain data, self-contained and
// safe to copy; growth phases live in pooled Growth records, never here.
type Plant struct {
	ID         int   // creation order, assigned before the height sort
	Generation int   // sowing wave the plant belongs to
	Seed       int64 // per-plant stream seed, drives render-time jitter

	Species  Species
	Category Category

	Position Vec2    // normalized field coordinates in [0, 1)
	Height   float64 // fraction of the full scene height
	Lean     float64 // lateral tip offset as a fraction of height
	Scale    float64 // overall size multiplier
	Petals   int

	FlowerColor int // index into the flower palette
	StemColor   int // index into the stem palette
	LeafColor   int // index into the leaf palette

	Delay    float64 // time units before growth starts
	Duration float64 // time units from first growth to full bloom
}

// Generate sows a complete field from cfg. The result is sorted by height
// ascending (stable, so equal heights keep creation order), which back-to-
// front renderers rely on.
//
// Every plant draws from its own seed stream derived from cfg.Seed, its
// generation, and its index, so fields are reproducible draw for draw and
// individual plants can be re-rolled in isolation.
func Generate(cfg Config) []Plant {
	cfg = cfg.withDefaults()

	restricted := len(cfg.Categories) > 0
	var allowed [categoryCount]bool
	for _, name := range cfg.Categories {
		if c, ok := CategoryByName(name); ok {
			allowed[c] = true
		}
	}

	// Category weights depend only on the config, never on a draw.
	boost := tallBoost(cfg.MaxHeight)
	var weights [categoryCount]float64
	for c := Category(0); c < categoryCount; c++ {
		info := categoryTable[c]
		if info.heights.Min > cfg.MaxHeight {
			continue
		}
		if restricted && !allowed[c] {
			continue
		}
		w := info.weight
		if info.tall {
			w *= boost
		}
		weights[c] = w
	}

	counts := densityRanges[cfg.Density]
	plants := make([]Plant, 0, cfg.Generations*counts.max)

	for g := 0; g < cfg.Generations; g++ {
		t0 := cfg.Curve.Warp(float64(g)/float64(cfg.Generations)) * cfg.Duration
		t1 := cfg.Curve.Warp(float64(g+1)/float64(cfg.Generations)) * cfg.Duration

		genRand := NewRand(cfg.Seed + int64(g)*1000)
		count := counts.min + genRand.IntN(counts.max-counts.min)

		for p := 0; p < count; p++ {
			plant := makePlant(cfg, &weights, g, p, t0, t1-t0)
			plant.ID = len(plants)
			plants = append(plants, plant)
		}
	}

	sort.SliceStable(plants, func(i, j int) bool {
		return plants[i].Height < plants[j].Height
	})
	return plants
}

// makePlant rolls one plant from its own seed stream. The draw order is
// part of the determinism contract and must never be reordered.
func makePlant(cfg Config, weights *[categoryCount]float64, g, p int, winStart, window float64) Plant {
	seed := cfg.Seed + int64(g)*1000 + int64(p)*100
	rng := NewRand(seed)

	cat := Grass
	if ci := rng.WeightedIndex(weights[:]); ci >= 0 {
		cat = Category(ci)
	}

	group := speciesByCategory[cat]
	sp := group[rng.IntN(len(group))]

	// Raising the ceiling above half the scene biases tall categories
	// toward the top of their band instead of the uniform middle.
	heights := cat.HeightRange()
	top := math.Min(heights.Max, cfg.MaxHeight)
	exponent := 1.0
	if cfg.MaxHeight > 0.5 && heights.Max > 0.4 {
		exponent = 1 - clamp01((cfg.MaxHeight-0.5)/0.5)*0.5
	}
	height := rng.Biased(heights.Min, top, exponent)

	pos := Vec2{X: rng.Next(), Y: rng.Next()}

	flowerColor := rng.IntN(len(cfg.FlowerPalette))
	stemColor := rng.IntN(len(cfg.StemPalette))
	leafColor := rng.IntN(len(cfg.LeafPalette))

	// Growth starts somewhere in the first half of the generation's
	// window and runs 60 to 100 percent of the window, clamped so no
	// plant outlives the total duration.
	delay := winStart + rng.Next()*window*0.5
	duration := window * rng.Float(0.6, 1.0)
	if delay+duration > cfg.Duration {
		duration = cfg.Duration - delay
	}
	if floor := cfg.Duration * 0.001; duration < floor {
		duration = floor
	}

	petals := rng.IntBetween(5, 8) + sp.Variation().PetalDelta
	if petals < 0 {
		petals = 0
	}

	return Plant{
		Generation:  g,
		Seed:        seed,
		Species:     sp,
		Category:    cat,
		Position:    pos,
		Height:      height,
		Lean:        rng.Float(-0.15, 0.15),
		Scale:       rng.Float(0.7, 1.2),
		Petals:      petals,
		FlowerColor: flowerColor,
		StemColor:   stemColor,
		LeafColor:   leafColor,
		Delay:       delay,
		Duration:    duration,
	}
}
