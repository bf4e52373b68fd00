package meadow

import (
	"math"
	"strings"
	"testing"
)

func TestCategoryTableComplete(t *testing.T) {
	if categoryCount != 19 {
		t.Fatalf("categoryCount = %d, want 19", categoryCount)
	}
	seen := map[string]Category{}
	for c := Category(0); c < categoryCount; c++ {
		info := categoryTable[c]
		if info.name == "" {
			t.Errorf("category %d has no name", c)
		}
		if prev, dup := seen[info.name]; dup {
			t.Errorf("categories %v and %v share the name %q", prev, c, info.name)
		}
		seen[info.name] = c
		if info.heights.Min <= 0 || info.heights.Min >= info.heights.Max {
			t.Errorf("%v has invalid height range %+v", c, info.heights)
		}
		if info.heights.Max > 1 {
			t.Errorf("%v height range exceeds the scene: %+v", c, info.heights)
		}
		if info.weight <= 0 {
			t.Errorf("%v has non-positive weight %v", c, info.weight)
		}
	}
}

func TestCategoryNameRoundtrip(t *testing.T) {
	for c := Category(0); c < categoryCount; c++ {
		got, ok := CategoryByName(c.String())
		if !ok || got != c {
			t.Errorf("CategoryByName(%q) = %v, %v; want %v, true", c.String(), got, ok, c)
		}
		upper, ok := CategoryByName(strings.ToUpper(c.String()))
		if !ok || upper != c {
			t.Errorf("CategoryByName is not case-insensitive for %q", c.String())
		}
	}
	if _, ok := CategoryByName("tumbleweed"); ok {
		t.Error("CategoryByName accepted an unknown name")
	}
	if Category(-1).String() != "unknown" || Category(categoryCount).String() != "unknown" {
		t.Error("out-of-range categories should stringify as unknown")
	}
}

func TestCategoryTallTier(t *testing.T) {
	wantTall := map[Category]bool{
		Shrub: true, TallGrass: true, Bush: true, TallFlower: true, Reed: true,
		Climber: true, Bamboo: true, SmallTree: true, Broadleaf: true, Conifer: true,
	}
	for c := Category(0); c < categoryCount; c++ {
		if c.Tall() != wantTall[c] {
			t.Errorf("%v.Tall() = %v, want %v", c, c.Tall(), wantTall[c])
		}
	}
}

func TestCategoryFallbackAlwaysEligible(t *testing.T) {
	// The fallback category must fit under the lowest configurable height
	// ceiling, or a restrictive config could produce no plants at all.
	if min := Grass.HeightRange().Min; min > 0.05 {
		t.Errorf("grass min height %v cannot fit under the lowest ceiling", min)
	}
}

func TestTallBoost(t *testing.T) {
	cases := []struct {
		maxHeight, want float64
	}{
		{0.35, 1},    // default ceiling: neutral
		{0.20, 1},    // below the default never penalizes
		{1.00, 4},    // full height: maximum boost
		{0.675, 2.5}, // halfway up the boost range
	}
	for _, tc := range cases {
		if got := tallBoost(tc.maxHeight); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("tallBoost(%v) = %v, want %v", tc.maxHeight, got, tc.want)
		}
	}
}
