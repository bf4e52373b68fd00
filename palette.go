package meadow

// Palette is an ordered list of colors the generator indexes into. Plants
// store palette indices rather than resolved colors, so swapping a palette
// recolors an existing field without regenerating it.
type Palette []Color

// Color returns the entry at i. Out-of-range indices wrap, so a plant
// generated against a larger palette still resolves to a color instead of
// panicking. An empty palette resolves to white.
func (p Palette) Color(i int) Color {
	if len(p) == 0 {
		return ColorWhite
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// DefaultFlowerPalette returns the built-in petal colors. The result is a
// fresh copy the caller may modify.
func DefaultFlowerPalette() Palette {
	return Palette{
		{R: 0.86, G: 0.20, B: 0.18, A: 1}, // poppy red
		{R: 0.95, G: 0.60, B: 0.13, A: 1}, // marigold orange
		{R: 0.98, G: 0.84, B: 0.25, A: 1}, // buttercup yellow
		{R: 0.96, G: 0.95, B: 0.92, A: 1}, // chalk white
		{R: 0.93, G: 0.56, B: 0.70, A: 1}, // campion pink
		{R: 0.72, G: 0.58, B: 0.86, A: 1}, // lilac
		{R: 0.39, G: 0.52, B: 0.86, A: 1}, // cornflower blue
		{R: 0.48, G: 0.30, B: 0.72, A: 1}, // deep violet
	}
}

// DefaultStemPalette returns the built-in stem colors. The result is a
// fresh copy the caller may modify.
func DefaultStemPalette() Palette {
	return Palette{
		{R: 0.32, G: 0.55, B: 0.26, A: 1}, // grass green
		{R: 0.22, G: 0.42, B: 0.20, A: 1}, // deep green
		{R: 0.45, G: 0.52, B: 0.24, A: 1}, // olive
		{R: 0.43, G: 0.33, B: 0.20, A: 1}, // woody brown
	}
}

// DefaultLeafPalette returns the built-in leaf colors. The result is a
// fresh copy the caller may modify.
func DefaultLeafPalette() Palette {
	return Palette{
		{R: 0.42, G: 0.65, B: 0.31, A: 1}, // spring green
		{R: 0.30, G: 0.52, B: 0.26, A: 1}, // mid green
		{R: 0.18, G: 0.38, B: 0.18, A: 1}, // dark green
		{R: 0.55, G: 0.64, B: 0.44, A: 1}, // sage
		{R: 0.60, G: 0.70, B: 0.30, A: 1}, // yellow green
	}
}
