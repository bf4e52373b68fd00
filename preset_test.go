package meadow

import (
	"reflect"
	"testing"
)

func TestPresetConfigsGenerate(t *testing.T) {
	for p := SpringMeadow; p <= DuskGarden; p++ {
		plants := Generate(p.Config(42))
		if len(plants) == 0 {
			t.Errorf("%v generated no plants", p)
		}
		if !reflect.DeepEqual(plants, Generate(p.Config(42))) {
			t.Errorf("%v is not deterministic", p)
		}
	}
}

func TestPresetSeedPassesThrough(t *testing.T) {
	if SpringMeadow.Config(7).Seed != 7 {
		t.Error("preset did not carry the seed")
	}
	a := Generate(AutumnField.Config(1))
	b := Generate(AutumnField.Config(2))
	if reflect.DeepEqual(a, b) {
		t.Error("different seeds produced identical preset fields")
	}
}

func TestPresetsDiffer(t *testing.T) {
	seen := map[Density]Preset{}
	for p := SpringMeadow; p <= DuskGarden; p++ {
		cfg := p.Config(42)
		if prev, dup := seen[cfg.Density]; dup {
			t.Errorf("%v and %v share density %v", prev, p, cfg.Density)
		}
		seen[cfg.Density] = p
		if len(cfg.FlowerPalette) == 0 {
			t.Errorf("%v has no flower palette", p)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for p := SpringMeadow; p <= DuskGarden; p++ {
		got, err := ParsePreset(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePreset("winter-tundra"); err == nil {
		t.Error("ParsePreset accepted an unknown name")
	}
}
