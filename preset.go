package meadow

import (
	"fmt"
	"strings"
)

// Preset is a ready-made generator configuration. Presets bundle density,
// height ceiling, timing curve, and palettes into a single pick; the seed
// stays caller-chosen so every preset still generates reproducible fields.
type Preset int

const (
	SpringMeadow  Preset = iota // low pastel bloom, most plants up early
	SummerPrairie               // dense and tall, steady growth
	AutumnField                 // sparse russet field, late bloomers
	DuskGarden                  // lush violets and blues under a dark canopy
)

// String returns the preset's configuration name.
func (p Preset) String() string {
	switch p {
	case SpringMeadow:
		return "spring-meadow"
	case SummerPrairie:
		return "summer-prairie"
	case AutumnField:
		return "autumn-field"
	case DuskGarden:
		return "dusk-garden"
	}
	return "unknown"
}

// ParsePreset resolves a preset name such as "summer-prairie".
func ParsePreset(s string) (Preset, error) {
	for p := SpringMeadow; p <= DuskGarden; p++ {
		if strings.EqualFold(p.String(), s) {
			return p, nil
		}
	}
	return SpringMeadow, fmt.Errorf("parse preset %q: unknown name", s)
}

// Config builds the preset's generator configuration around seed.
func (p Preset) Config(seed int64) Config {
	cfg := Config{Seed: seed}
	switch p {
	case SpringMeadow:
		cfg.Density = Normal
		cfg.MaxHeight = 0.3
		cfg.Curve = CurveEaseOut
		cfg.FlowerPalette = Palette{
			{R: 0.98, G: 0.93, B: 0.95, A: 1}, // blossom white
			{R: 0.95, G: 0.70, B: 0.80, A: 1}, // shell pink
			{R: 0.98, G: 0.88, B: 0.45, A: 1}, // primrose yellow
			{R: 0.75, G: 0.70, B: 0.92, A: 1}, // pale lilac
			{R: 0.60, G: 0.78, B: 0.95, A: 1}, // forget-me-not blue
		}
		cfg.LeafPalette = Palette{
			{R: 0.52, G: 0.75, B: 0.38, A: 1},
			{R: 0.40, G: 0.66, B: 0.32, A: 1},
			{R: 0.64, G: 0.78, B: 0.40, A: 1},
		}
	case SummerPrairie:
		cfg.Density = Dense
		cfg.MaxHeight = 0.7
		cfg.FlowerPalette = Palette{
			{R: 0.98, G: 0.80, B: 0.20, A: 1}, // prairie gold
			{R: 0.93, G: 0.55, B: 0.15, A: 1}, // burnt orange
			{R: 0.85, G: 0.25, B: 0.20, A: 1}, // firewheel red
			{R: 0.55, G: 0.35, B: 0.70, A: 1}, // prairie clover violet
			{R: 0.96, G: 0.94, B: 0.88, A: 1}, // yucca white
		}
		cfg.StemPalette = Palette{
			{R: 0.45, G: 0.52, B: 0.24, A: 1},
			{R: 0.55, G: 0.52, B: 0.30, A: 1},
			{R: 0.32, G: 0.45, B: 0.22, A: 1},
		}
	case AutumnField:
		cfg.Density = Sparse
		cfg.MaxHeight = 0.5
		cfg.Curve = CurveEaseIn
		cfg.FlowerPalette = Palette{
			{R: 0.80, G: 0.45, B: 0.15, A: 1}, // amber
			{R: 0.70, G: 0.30, B: 0.15, A: 1}, // rust
			{R: 0.85, G: 0.65, B: 0.25, A: 1}, // goldenrod
			{R: 0.60, G: 0.40, B: 0.50, A: 1}, // faded aster
		}
		cfg.StemPalette = Palette{
			{R: 0.50, G: 0.40, B: 0.25, A: 1},
			{R: 0.43, G: 0.33, B: 0.20, A: 1},
		}
		cfg.LeafPalette = Palette{
			{R: 0.62, G: 0.50, B: 0.25, A: 1},
			{R: 0.55, G: 0.58, B: 0.30, A: 1},
			{R: 0.48, G: 0.36, B: 0.20, A: 1},
		}
	case DuskGarden:
		cfg.Density = Lush
		cfg.MaxHeight = 0.45
		cfg.Curve = CurveEaseInOut
		cfg.FlowerPalette = Palette{
			{R: 0.48, G: 0.30, B: 0.72, A: 1}, // deep violet
			{R: 0.30, G: 0.35, B: 0.75, A: 1}, // iris blue
			{R: 0.70, G: 0.55, B: 0.85, A: 1}, // wisteria
			{R: 0.90, G: 0.88, B: 0.95, A: 1}, // moonflower white
			{R: 0.80, G: 0.45, B: 0.70, A: 1}, // evening pink
		}
		cfg.LeafPalette = Palette{
			{R: 0.20, G: 0.38, B: 0.24, A: 1},
			{R: 0.15, G: 0.30, B: 0.22, A: 1},
			{R: 0.28, G: 0.42, B: 0.30, A: 1},
		}
	}
	return cfg
}
