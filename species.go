package meadow

import "strings"

// Species identifies one concrete plant type within a Category. The
// generator first rolls a category by weight and then picks one of the
// category's species uniformly.
type Species int

// Species of the meadow, grouped by category.
const (
	// Mushroom
	Toadstool Species = iota
	FieldMushroom
	InkCap
	Puffball
	Morel

	// GroundCover
	CreepingThyme
	Clover
	Moss
	SweetWoodruff
	Ajuga
	CreepingJenny
	Periwinkle

	// Succulent
	Sedum
	Echeveria
	Sempervivum
	Agave
	JadePlant
	Aloe

	// Grass
	Fescue
	Ryegrass
	Bluegrass
	Bentgrass
	Timothy
	Orchardgrass
	Brome
	Zoysia
	Buffalograss

	// ShortFlower
	Daisy
	Crocus
	Snowdrop
	Primrose
	Viola
	Pansy
	Anemone
	GrapeHyacinth
	DwarfIris
	Aubrieta
	Candytuft

	// Herb
	Basil
	Sage
	Mint
	Oregano
	Chives
	Parsley
	Dill
	Lavender

	// Wildflower
	QueenAnnesLace
	Chicory
	Goldenrod
	Aster
	Fleabane
	Buttercup
	RedCampion
	OxeyeDaisy
	Selfheal
	Knapweed

	// Fern
	LadyFern
	OstrichFern
	MaidenhairFern
	SwordFern
	BrackenFern
	RoyalFern
	CinnamonFern
	HartsTongue

	// MediumFlower
	Tulip
	Daffodil
	Poppy
	Cornflower
	Marigold
	Zinnia
	BlackEyedSusan
	Coneflower
	Yarrow
	Scabiosa
	Cosmos

	// Shrub
	Boxwood
	Privet
	Spirea
	Viburnum
	Dogwood
	Ninebark
	Sumac
	Elderberry

	// TallGrass
	Switchgrass
	BigBluestem
	IndianGrass
	PampasGrass
	Miscanthus
	FountainGrass
	RavennaGrass

	// Bush
	RoseBush
	Hydrangea
	Azalea
	Forsythia
	Lilac
	Camellia
	Rhododendron

	// TallFlower
	Sunflower
	Hollyhock
	Delphinium
	Foxglove
	Lupine
	Gladiolus
	Ironweed
	Mullein
	Angelica
	PlumePoppy

	// Reed
	CommonReed
	Cattail
	Bulrush
	PaperReed
	GiantReed
	SweetFlag

	// Climber
	Ivy
	Wisteria
	Clematis
	Honeysuckle
	ClimbingRose
	VirginiaCreeper
	Jasmine

	// Bamboo
	GoldenBamboo
	BlackBamboo
	ArrowBamboo
	UmbrellaBamboo
	FountainBamboo
	TimberBamboo

	// SmallTree
	Rowan
	Hawthorn
	Crabapple
	Serviceberry
	Redbud
	JapaneseMaple
	Hazel

	// Broadleaf
	Birch
	Maple
	Oak
	Beech
	Aspen
	Linden
	Alder

	// Conifer
	Spruce
	Pine
	Fir
	Juniper
	Cedar
	Larch
	Hemlock

	speciesCount
)

type speciesInfo struct {
	name     string
	category Category
}

var speciesTable = [speciesCount]speciesInfo{
	Toadstool:     {"toadstool", Mushroom},
	FieldMushroom: {"field-mushroom", Mushroom},
	InkCap:        {"ink-cap", Mushroom},
	Puffball:      {"puffball", Mushroom},
	Morel:         {"morel", Mushroom},

	CreepingThyme: {"creeping-thyme", GroundCover},
	Clover:        {"clover", GroundCover},
	Moss:          {"moss", GroundCover},
	SweetWoodruff: {"sweet-woodruff", GroundCover},
	Ajuga:         {"ajuga", GroundCover},
	CreepingJenny: {"creeping-jenny", GroundCover},
	Periwinkle:    {"periwinkle", GroundCover},

	Sedum:       {"sedum", Succulent},
	Echeveria:   {"echeveria", Succulent},
	Sempervivum: {"sempervivum", Succulent},
	Agave:       {"agave", Succulent},
	JadePlant:   {"jade-plant", Succulent},
	Aloe:        {"aloe", Succulent},

	Fescue:       {"fescue", Grass},
	Ryegrass:     {"ryegrass", Grass},
	Bluegrass:    {"bluegrass", Grass},
	Bentgrass:    {"bentgrass", Grass},
	Timothy:      {"timothy", Grass},
	Orchardgrass: {"orchardgrass", Grass},
	Brome:        {"brome", Grass},
	Zoysia:       {"zoysia", Grass},
	Buffalograss: {"buffalograss", Grass},

	Daisy:         {"daisy", ShortFlower},
	Crocus:        {"crocus", ShortFlower},
	Snowdrop:      {"snowdrop", ShortFlower},
	Primrose:      {"primrose", ShortFlower},
	Viola:         {"viola", ShortFlower},
	Pansy:         {"pansy", ShortFlower},
	Anemone:       {"anemone", ShortFlower},
	GrapeHyacinth: {"grape-hyacinth", ShortFlower},
	DwarfIris:     {"dwarf-iris", ShortFlower},
	Aubrieta:      {"aubrieta", ShortFlower},
	Candytuft:     {"candytuft", ShortFlower},

	Basil:    {"basil", Herb},
	Sage:     {"sage", Herb},
	Mint:     {"mint", Herb},
	Oregano:  {"oregano", Herb},
	Chives:   {"chives", Herb},
	Parsley:  {"parsley", Herb},
	Dill:     {"dill", Herb},
	Lavender: {"lavender", Herb},

	QueenAnnesLace: {"queen-annes-lace", Wildflower},
	Chicory:        {"chicory", Wildflower},
	Goldenrod:      {"goldenrod", Wildflower},
	Aster:          {"aster", Wildflower},
	Fleabane:       {"fleabane", Wildflower},
	Buttercup:      {"buttercup", Wildflower},
	RedCampion:     {"red-campion", Wildflower},
	OxeyeDaisy:     {"oxeye-daisy", Wildflower},
	Selfheal:       {"selfheal", Wildflower},
	Knapweed:       {"knapweed", Wildflower},

	LadyFern:       {"lady-fern", Fern},
	OstrichFern:    {"ostrich-fern", Fern},
	MaidenhairFern: {"maidenhair-fern", Fern},
	SwordFern:      {"sword-fern", Fern},
	BrackenFern:    {"bracken-fern", Fern},
	RoyalFern:      {"royal-fern", Fern},
	CinnamonFern:   {"cinnamon-fern", Fern},
	HartsTongue:    {"harts-tongue", Fern},

	Tulip:          {"tulip", MediumFlower},
	Daffodil:       {"daffodil", MediumFlower},
	Poppy:          {"poppy", MediumFlower},
	Cornflower:     {"cornflower", MediumFlower},
	Marigold:       {"marigold", MediumFlower},
	Zinnia:         {"zinnia", MediumFlower},
	BlackEyedSusan: {"black-eyed-susan", MediumFlower},
	Coneflower:     {"coneflower", MediumFlower},
	Yarrow:         {"yarrow", MediumFlower},
	Scabiosa:       {"scabiosa", MediumFlower},
	Cosmos:         {"cosmos", MediumFlower},

	Boxwood:    {"boxwood", Shrub},
	Privet:     {"privet", Shrub},
	Spirea:     {"spirea", Shrub},
	Viburnum:   {"viburnum", Shrub},
	Dogwood:    {"dogwood", Shrub},
	Ninebark:   {"ninebark", Shrub},
	Sumac:      {"sumac", Shrub},
	Elderberry: {"elderberry", Shrub},

	Switchgrass:   {"switchgrass", TallGrass},
	BigBluestem:   {"big-bluestem", TallGrass},
	IndianGrass:   {"indian-grass", TallGrass},
	PampasGrass:   {"pampas-grass", TallGrass},
	Miscanthus:    {"miscanthus", TallGrass},
	FountainGrass: {"fountain-grass", TallGrass},
	RavennaGrass:  {"ravenna-grass", TallGrass},

	RoseBush:     {"rose-bush", Bush},
	Hydrangea:    {"hydrangea", Bush},
	Azalea:       {"azalea", Bush},
	Forsythia:    {"forsythia", Bush},
	Lilac:        {"lilac", Bush},
	Camellia:     {"camellia", Bush},
	Rhododendron: {"rhododendron", Bush},

	Sunflower:  {"sunflower", TallFlower},
	Hollyhock:  {"hollyhock", TallFlower},
	Delphinium: {"delphinium", TallFlower},
	Foxglove:   {"foxglove", TallFlower},
	Lupine:     {"lupine", TallFlower},
	Gladiolus:  {"gladiolus", TallFlower},
	Ironweed:   {"ironweed", TallFlower},
	Mullein:    {"mullein", TallFlower},
	Angelica:   {"angelica", TallFlower},
	PlumePoppy: {"plume-poppy", TallFlower},

	CommonReed: {"common-reed", Reed},
	Cattail:    {"cattail", Reed},
	Bulrush:    {"bulrush", Reed},
	PaperReed:  {"paper-reed", Reed},
	GiantReed:  {"giant-reed", Reed},
	SweetFlag:  {"sweet-flag", Reed},

	Ivy:             {"ivy", Climber},
	Wisteria:        {"wisteria", Climber},
	Clematis:        {"clematis", Climber},
	Honeysuckle:     {"honeysuckle", Climber},
	ClimbingRose:    {"climbing-rose", Climber},
	VirginiaCreeper: {"virginia-creeper", Climber},
	Jasmine:         {"jasmine", Climber},

	GoldenBamboo:   {"golden-bamboo", Bamboo},
	BlackBamboo:    {"black-bamboo", Bamboo},
	ArrowBamboo:    {"arrow-bamboo", Bamboo},
	UmbrellaBamboo: {"umbrella-bamboo", Bamboo},
	FountainBamboo: {"fountain-bamboo", Bamboo},
	TimberBamboo:   {"timber-bamboo", Bamboo},

	Rowan:         {"rowan", SmallTree},
	Hawthorn:      {"hawthorn", SmallTree},
	Crabapple:     {"crabapple", SmallTree},
	Serviceberry:  {"serviceberry", SmallTree},
	Redbud:        {"redbud", SmallTree},
	JapaneseMaple: {"japanese-maple", SmallTree},
	Hazel:         {"hazel", SmallTree},

	Birch:  {"birch", Broadleaf},
	Maple:  {"maple", Broadleaf},
	Oak:    {"oak", Broadleaf},
	Beech:  {"beech", Broadleaf},
	Aspen:  {"aspen", Broadleaf},
	Linden: {"linden", Broadleaf},
	Alder:  {"alder", Broadleaf},

	Spruce:  {"spruce", Conifer},
	Pine:    {"pine", Conifer},
	Fir:     {"fir", Conifer},
	Juniper: {"juniper", Conifer},
	Cedar:   {"cedar", Conifer},
	Larch:   {"larch", Conifer},
	Hemlock: {"hemlock", Conifer},
}

// speciesByCategory is built once from speciesTable; within a category the
// species keep declaration order, which the generator's uniform pick
// depends on.
var speciesByCategory [categoryCount][]Species

// String returns the species' configuration name, such as "oxeye-daisy".
func (s Species) String() string {
	if s < 0 || s >= speciesCount {
		return "unknown"
	}
	return speciesTable[s].name
}

// Category returns the category the species belongs to.
func (s Species) Category() Category {
	return speciesTable[s].category
}

// Variation returns the species' resolved silhouette variation, with
// overrides already merged over the defaults.
func (s Species) Variation() Variation {
	return mergedVariations[s]
}

// SpeciesByName resolves a configuration name such as "pampas-grass" back
// to its species. Matching is case-insensitive.
func SpeciesByName(name string) (Species, bool) {
	for s := Species(0); s < speciesCount; s++ {
		if strings.EqualFold(speciesTable[s].name, name) {
			return s, true
		}
	}
	return 0, false
}

// SpeciesOf returns the species belonging to a category, in declaration
// order. The returned slice is shared package state and MUST NOT be
// mutated.
func SpeciesOf(c Category) []Species {
	if c < 0 || c >= categoryCount {
		return nil
	}
	return speciesByCategory[c]
}

// Variation shapes how one species deviates from its category's base
// silhouette. The multipliers apply on top of the values Generate rolls
// for the plant; PetalDelta is added to the rolled petal count.
type Variation struct {
	Size       float64 // overall scale multiplier
	Height     float64 // stem height multiplier
	Thickness  float64 // stem width multiplier
	Lean       float64 // lean multiplier
	PetalDelta int     // added to the rolled petal count
	Complexity float64 // 0 plain to 1 ornate, drives silhouette detail
}

var defaultVariation = Variation{
	Size:       1,
	Height:     1,
	Thickness:  1,
	Lean:       1,
	PetalDelta: 0,
	Complexity: 0.5,
}

// variationOverride lists only the fields a species overrides. A zero
// multiplier or complexity inherits the default; petalDelta is a plain
// delta, so zero simply means no change.
type variationOverride struct {
	size, height, thickness, lean float64
	petalDelta                    int
	complexity                    float64
}

var variationOverrides = map[Species]variationOverride{
	Toadstool:      {thickness: 1.8, petalDelta: -5, complexity: 0.15},
	Puffball:       {size: 0.8, thickness: 2.2, petalDelta: -6, complexity: 0.1},
	InkCap:         {height: 1.2, thickness: 0.8, complexity: 0.2},
	Moss:           {height: 0.4, lean: 0.2, complexity: 0.1},
	Clover:         {petalDelta: -2, complexity: 0.3},
	CreepingThyme:  {height: 0.6, complexity: 0.4},
	Sedum:          {height: 0.7, complexity: 0.4},
	Agave:          {thickness: 2, lean: 0.3, petalDelta: -4, complexity: 0.35},
	Aloe:           {thickness: 1.6, lean: 0.4, complexity: 0.3},
	Daisy:          {petalDelta: 5, complexity: 0.6},
	Crocus:         {petalDelta: -1, height: 0.8, complexity: 0.25},
	Snowdrop:       {petalDelta: -3, lean: 1.2, complexity: 0.2},
	Lavender:       {petalDelta: 4, lean: 1.1, complexity: 0.6},
	QueenAnnesLace: {petalDelta: 12, thickness: 0.6, complexity: 0.9},
	Goldenrod:      {lean: 1.2, complexity: 0.75},
	OxeyeDaisy:     {petalDelta: 7},
	MaidenhairFern: {thickness: 0.5, complexity: 0.9},
	OstrichFern:    {size: 1.2, complexity: 0.7},
	Tulip:          {petalDelta: -2, thickness: 1.1, lean: 0.7, complexity: 0.3},
	Daffodil:       {petalDelta: 1, lean: 0.8},
	Poppy:          {petalDelta: -2, thickness: 0.7, lean: 1.3},
	Cornflower:     {petalDelta: 3},
	BlackEyedSusan: {petalDelta: 6, complexity: 0.6},
	Coneflower:     {petalDelta: 4},
	Yarrow:         {petalDelta: 10, complexity: 0.8},
	RoseBush:       {petalDelta: 5, thickness: 1.2, complexity: 0.8},
	Hydrangea:      {petalDelta: 9, complexity: 0.85},
	PampasGrass:    {size: 1.2, lean: 1.3, complexity: 0.7},
	Miscanthus:     {lean: 1.4},
	FountainGrass:  {lean: 1.6, complexity: 0.6},
	Sunflower:      {size: 1.3, thickness: 1.4, petalDelta: 8, complexity: 0.9},
	Hollyhock:      {height: 1.15, petalDelta: 2, complexity: 0.7},
	Delphinium:     {petalDelta: 6, complexity: 0.85},
	Foxglove:       {petalDelta: 4, complexity: 0.8},
	Mullein:        {thickness: 1.4, lean: 0.6, complexity: 0.4},
	Cattail:        {thickness: 1.5, lean: 0.6, petalDelta: -3, complexity: 0.2},
	CommonReed:     {thickness: 0.7, lean: 1.5},
	Bulrush:        {thickness: 1.3, lean: 0.8},
	Ivy:            {lean: 1.8, complexity: 0.6},
	Wisteria:       {lean: 1.5, petalDelta: 6, complexity: 0.85},
	GoldenBamboo:   {lean: 0.4, thickness: 1.2, complexity: 0.3},
	TimberBamboo:   {size: 1.25, thickness: 1.6, lean: 0.3},
	JapaneseMaple:  {lean: 1.25, complexity: 0.85},
	Birch:          {thickness: 0.6, lean: 1.2, complexity: 0.6},
	Oak:            {thickness: 1.8, lean: 0.7, complexity: 0.8},
	Aspen:          {lean: 1.3, thickness: 0.7},
	Spruce:         {lean: 0.4, complexity: 0.7},
	Larch:          {lean: 0.6, complexity: 0.6},
}

// mergedVariations holds the per-species result of applying overrides to
// the defaults, resolved once at package init.
var mergedVariations [speciesCount]Variation

func init() {
	for s := Species(0); s < speciesCount; s++ {
		c := speciesTable[s].category
		speciesByCategory[c] = append(speciesByCategory[c], s)

		v := defaultVariation
		if o, ok := variationOverrides[s]; ok {
			if o.size != 0 {
				v.Size = o.size
			}
			if o.height != 0 {
				v.Height = o.height
			}
			if o.thickness != 0 {
				v.Thickness = o.thickness
			}
			if o.lean != 0 {
				v.Lean = o.lean
			}
			if o.complexity != 0 {
				v.Complexity = o.complexity
			}
			v.PetalDelta = o.petalDelta
		}
		mergedVariations[s] = v
	}
}
