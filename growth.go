package meadow

import "math"

// minGrowthDuration guards the progress division when a caller passes a
// degenerate duration. Generated plants always carry a positive duration.
const minGrowthDuration = 1e-9

// Growth holds the six phase values that drive one plant's staged reveal,
// all in [0, 1]. Overall is raw timeline progress; the five derived phases
// gate the stem, leaves, flowers, foliage fill, and seed plumes.
//
// Records handed out by a GrowthPool are valid only within the frame that
// acquired them. Standalone values from GrowthAt have no such restriction.
type Growth struct {
	Overall float64
	Stem    float64
	Leaf    float64
	Flower  float64
	Foliage float64
	Plume   float64
}

// PhaseConfig sets the start offsets and ramp rates that derive the staged
// phases from overall progress. Start fields are progress fractions in
// [0, 1); rate fields are slopes applied past the start.
//
// Obtain defaults from DefaultPhaseConfig and override fields on the copy.
// Shared defaults are never mutated by per-call use.
type PhaseConfig struct {
	StemRate     float64
	LeafStart    float64
	LeafRate     float64
	FlowerStart  float64
	FlowerRate   float64
	FoliageStart float64
	FoliageRate  float64
	PlumeStart   float64
}

// DefaultPhaseConfig returns the documented default rates: stems grow half
// again as fast as overall progress, leaves unfurl from 30%, flowers open
// from the halfway point, foliage fills from 40%, and plumes appear past
// 70%.
func DefaultPhaseConfig() PhaseConfig {
	return PhaseConfig{
		StemRate:     1.5,
		LeafStart:    0.3,
		LeafRate:     2,
		FlowerStart:  0.5,
		FlowerRate:   2,
		FoliageStart: 0.4,
		FoliageRate:  1.8,
		PlumeStart:   0.7,
	}
}

// Compute fills g from the plant's timeline position, recomputing all six
// fields in place with no allocation. A zero-value cfg selects
// DefaultPhaseConfig; any other config is used exactly as given.
func (g *Growth) Compute(time, delay, duration float64, cfg PhaseConfig) {
	if cfg == (PhaseConfig{}) {
		cfg = DefaultPhaseConfig()
	}
	if duration <= 0 {
		duration = minGrowthDuration
	}

	p := clamp01((time - delay) / duration)
	g.Overall = p
	g.Stem = math.Min(1, p*cfg.StemRate)
	g.Leaf = clamp01((p - cfg.LeafStart) * cfg.LeafRate)
	g.Flower = clamp01((p - cfg.FlowerStart) * cfg.FlowerRate)

	// The foliage ramp can overshoot 1 at full progress when
	// rate*(1-start) > 1, which the defaults deliberately do; the clamp at
	// the upper bound is load-bearing, not cosmetic.
	g.Foliage = clamp01((p - cfg.FoliageStart) * cfg.FoliageRate)

	if p > cfg.PlumeStart && cfg.PlumeStart < 1 {
		g.Plume = (p - cfg.PlumeStart) / (1 - cfg.PlumeStart)
	} else {
		g.Plume = 0
	}
}

// GrowthAt computes a standalone growth record. For per-frame animation
// prefer GrowthPool.AcquireFor, which reuses pooled records.
func GrowthAt(time, delay, duration float64, cfg PhaseConfig) Growth {
	var g Growth
	g.Compute(time, delay, duration, cfg)
	return g
}
