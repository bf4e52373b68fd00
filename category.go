package meadow

import (
	"math"
	"strings"
)

// Category identifies a silhouette family of plants. Each category carries
// the height band and pick weight Generate uses when rolling a plant, and
// every Species belongs to exactly one category.
type Category int

// Categories, ordered by typical height.
const (
	Mushroom Category = iota
	GroundCover
	Succulent
	Grass // fallback when a height ceiling or allow-list excludes everything else
	ShortFlower
	Herb
	Wildflower
	Fern
	MediumFlower
	Shrub
	TallGrass
	Bush
	TallFlower
	Reed
	Climber
	Bamboo
	SmallTree
	Broadleaf
	Conifer

	categoryCount
)

type categoryInfo struct {
	name    string
	heights Range   // fraction of the full scene height
	weight  float64 // relative pick likelihood before the tall boost
	tall    bool    // eligible for the tall boost
}

var categoryTable = [categoryCount]categoryInfo{
	Mushroom:     {"mushroom", Range{0.02, 0.10}, 4, false},
	GroundCover:  {"ground-cover", Range{0.02, 0.08}, 10, false},
	Succulent:    {"succulent", Range{0.03, 0.12}, 5, false},
	Grass:        {"grass", Range{0.04, 0.15}, 12, false},
	ShortFlower:  {"short-flower", Range{0.08, 0.22}, 10, false},
	Herb:         {"herb", Range{0.08, 0.25}, 8, false},
	Wildflower:   {"wildflower", Range{0.10, 0.30}, 9, false},
	Fern:         {"fern", Range{0.12, 0.32}, 7, false},
	MediumFlower: {"medium-flower", Range{0.18, 0.35}, 8, false},
	Shrub:        {"shrub", Range{0.20, 0.50}, 5, true},
	TallGrass:    {"tall-grass", Range{0.25, 0.55}, 6, true},
	Bush:         {"bush", Range{0.25, 0.55}, 4, true},
	TallFlower:   {"tall-flower", Range{0.30, 0.60}, 6, true},
	Reed:         {"reed", Range{0.30, 0.65}, 5, true},
	Climber:      {"climber", Range{0.30, 0.70}, 3, true},
	Bamboo:       {"bamboo", Range{0.40, 0.90}, 3, true},
	SmallTree:    {"small-tree", Range{0.45, 0.85}, 2, true},
	Broadleaf:    {"broadleaf", Range{0.50, 0.95}, 2, true},
	Conifer:      {"conifer", Range{0.55, 1.00}, 1.5, true},
}

// String returns the category's configuration name, such as "tall-grass".
func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return "unknown"
	}
	return categoryTable[c].name
}

// HeightRange returns the category's height band as fractions of the full
// scene height.
func (c Category) HeightRange() Range {
	return categoryTable[c].heights
}

// Weight returns the category's base pick weight.
func (c Category) Weight() float64 {
	return categoryTable[c].weight
}

// Tall reports whether the category competes for the tall boost when the
// height ceiling rises above the default.
func (c Category) Tall() bool {
	return categoryTable[c].tall
}

// CategoryByName resolves a configuration name such as "tall-grass" back to
// its category. Matching is case-insensitive. Unknown names report false
// rather than guessing.
func CategoryByName(name string) (Category, bool) {
	for c := Category(0); c < categoryCount; c++ {
		if strings.EqualFold(categoryTable[c].name, name) {
			return c, true
		}
	}
	return 0, false
}

// tallBoost scales a tall category's weight as the height ceiling rises.
// Neutral at the default ceiling of 0.35, reaching 4x at a full-height
// ceiling so large plants stay visible instead of being drowned out by the
// far more numerous small categories.
func tallBoost(maxHeight float64) float64 {
	return 1 + math.Max(0, (maxHeight-0.35)/0.65)*3
}
