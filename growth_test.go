package meadow

import (
	"math"
	"testing"
)

func TestGrowthDocumentedScenario(t *testing.T) {
	g := GrowthAt(600, 100, 1000, DefaultPhaseConfig())

	if g.Overall != 0.5 {
		t.Errorf("Overall = %v, want 0.5", g.Overall)
	}
	if g.Stem != 0.75 {
		t.Errorf("Stem = %v, want 0.75", g.Stem)
	}
	// leaf = clamp01((0.5 - 0.3) * 2)
	if math.Abs(g.Leaf-0.4) > 1e-12 {
		t.Errorf("Leaf = %v, want 0.4", g.Leaf)
	}
	// flower = clamp01((0.5 - 0.5) * 2)
	if g.Flower != 0 {
		t.Errorf("Flower = %v, want 0", g.Flower)
	}
	// foliage = clamp01((0.5 - 0.4) * 1.8)
	if math.Abs(g.Foliage-0.18) > 1e-12 {
		t.Errorf("Foliage = %v, want 0.18", g.Foliage)
	}
	// 0.5 has not reached the 0.7 plume start.
	if g.Plume != 0 {
		t.Errorf("Plume = %v, want 0", g.Plume)
	}
}

func TestGrowthPhaseSweep(t *testing.T) {
	cfg := DefaultPhaseConfig()
	// Sweep progress over [-0.5, 1.5] by choosing times around the window.
	for i := -5; i <= 15; i++ {
		progress := float64(i) * 0.1
		tm := 100 + progress*1000

		g := GrowthAt(tm, 100, 1000, cfg)

		for name, v := range map[string]float64{
			"Overall": g.Overall,
			"Stem":    g.Stem,
			"Leaf":    g.Leaf,
			"Flower":  g.Flower,
			"Foliage": g.Foliage,
			"Plume":   g.Plume,
		} {
			if v < 0 || v > 1 {
				t.Errorf("progress %v: %s = %v out of [0,1]", progress, name, v)
			}
		}
		if g.Stem < g.Flower {
			t.Errorf("progress %v: stem %v below flower %v", progress, g.Stem, g.Flower)
		}
	}
}

func TestGrowthFoliageUpperClamp(t *testing.T) {
	cfg := DefaultPhaseConfig()
	// With the defaults the raw ramp reaches 1.8*(1-0.4) = 1.08 at full
	// progress, so a missing clamp shows up as a value above 1.
	g := GrowthAt(1100, 100, 1000, cfg)
	if g.Foliage != 1 {
		t.Errorf("Foliage at full progress = %v, want exactly 1", g.Foliage)
	}

	raw := cfg.FoliageRate * (1 - cfg.FoliageStart)
	if raw <= 1 {
		t.Fatalf("default foliage ramp %v no longer exceeds 1; the clamp regression case is gone", raw)
	}
}

func TestGrowthPlumeBounds(t *testing.T) {
	cfg := DefaultPhaseConfig()

	// Exactly at the start the plume is still zero; the gate is strict.
	atStart := GrowthAt(100+cfg.PlumeStart*1000, 100, 1000, cfg)
	if atStart.Plume != 0 {
		t.Errorf("Plume at start = %v, want 0", atStart.Plume)
	}

	full := GrowthAt(1100, 100, 1000, cfg)
	if math.Abs(full.Plume-1) > 1e-12 {
		t.Errorf("Plume at full progress = %v, want 1", full.Plume)
	}

	// A plume start at or past 1 never divides by zero.
	odd := cfg
	odd.PlumeStart = 1
	g := GrowthAt(1100, 100, 1000, odd)
	if g.Plume != 0 {
		t.Errorf("Plume with start 1 = %v, want 0", g.Plume)
	}
}

func TestGrowthProgressMonotonic(t *testing.T) {
	cfg := DefaultPhaseConfig()
	prev := -1.0
	for tm := 0.0; tm <= 1500; tm += 37 {
		g := GrowthAt(tm, 100, 1000, cfg)
		if g.Overall < prev {
			t.Fatalf("Overall decreased at t=%v: %v < %v", tm, g.Overall, prev)
		}
		prev = g.Overall
	}
}

func TestGrowthZeroConfigUsesDefaults(t *testing.T) {
	var zero PhaseConfig
	a := GrowthAt(600, 100, 1000, zero)
	b := GrowthAt(600, 100, 1000, DefaultPhaseConfig())
	if a != b {
		t.Errorf("zero config %+v differs from defaults %+v", a, b)
	}
}

func TestGrowthPerCallOverride(t *testing.T) {
	custom := DefaultPhaseConfig()
	custom.FlowerStart = 0.2

	g := GrowthAt(600, 100, 1000, custom)
	if math.Abs(g.Flower-0.6) > 1e-12 {
		t.Errorf("Flower with override = %v, want 0.6", g.Flower)
	}

	// The shared defaults are untouched.
	if DefaultPhaseConfig().FlowerStart != 0.5 {
		t.Error("DefaultPhaseConfig mutated by per-call override")
	}
}

func TestGrowthDegenerateDuration(t *testing.T) {
	for _, dur := range []float64{0, -5} {
		g := GrowthAt(50, 10, dur, DefaultPhaseConfig())
		if math.IsNaN(g.Overall) || math.IsInf(g.Overall, 0) {
			t.Fatalf("duration %v produced non-finite progress %v", dur, g.Overall)
		}
		if g.Overall != 1 {
			t.Errorf("past-delay time with duration %v: Overall = %v, want 1", dur, g.Overall)
		}
	}
}

func TestGrowthBeforeDelay(t *testing.T) {
	g := GrowthAt(50, 100, 1000, DefaultPhaseConfig())
	if g != (Growth{}) {
		t.Errorf("growth before delay = %+v, want all zeros", g)
	}
}

func TestGrowthComputeZeroAlloc(t *testing.T) {
	var g Growth
	cfg := DefaultPhaseConfig()
	result := testing.AllocsPerRun(100, func() {
		g.Compute(600, 100, 1000, cfg)
	})
	if result > 0 {
		t.Errorf("Compute allocated %f times per run, want 0", result)
	}
}
