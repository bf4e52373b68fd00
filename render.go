package meadow

import "math"

// shapeOp identifies the kind of shape command.
type shapeOp uint8

const (
	opLine   shapeOp = iota // stroked segment
	opCircle                // filled circle
	opRect                  // filled rectangle
)

// shapeCommand is a single primitive emitted while walking the field.
// Commands carry resolved screen coordinates and colors; submitting them to
// the GPU is the only step that touches Ebitengine, so everything up to and
// including emission runs headless.
type shapeCommand struct {
	op     shapeOp
	x1, y1 float32 // line start, circle center, or rect top-left
	x2, y2 float32 // line end, or rect width and height
	radius float32
	width  float32
	color  Color
}

// Vertical band of the screen the plants root into.
const (
	groundTop    = 0.55
	groundBottom = 0.97
)

// fieldRenderer turns plants and their growth phases into shape commands.
// It is pure geometry with no GPU state, sized to one output surface.
type fieldRenderer struct {
	flower, stem, leaf Palette
	width, height      float64
}

// plantFrame is the per-plant geometry every silhouette shares. Growth is
// copied in so the silhouette helpers never read the pooled record.
type plantFrame struct {
	baseX, baseY float64
	stemH        float64 // fully grown stem height in pixels
	curH         float64 // stem height at the current growth phase
	stemW        float64
	tipDX        float64 // lateral tip offset at full height, wind included
	growth       Growth
	vr           Variation
	jit          *Rand // per-plant decoration stream, reseeded every frame
	petals       int

	stemC, leafC, flowerC Color
}

// appendPlant emits the plant's silhouette for its current growth phases
// into cmds and returns the extended slice. sway is the wind's lateral tip
// offset as a fraction of height. Nothing is emitted before growth starts.
func (fr *fieldRenderer) appendPlant(cmds []shapeCommand, p *Plant, g *Growth, sway float64) []shapeCommand {
	if g.Overall <= 0 {
		return cmds
	}

	vr := p.Species.Variation()
	alpha := math.Min(1, g.Overall*4)

	f := plantFrame{
		baseX:  p.Position.X * fr.width,
		baseY:  (groundTop + p.Position.Y*(groundBottom-groundTop)) * fr.height,
		vr:     vr,
		growth: *g,
		jit:    NewRand(p.Seed),
		petals: p.Petals,
	}
	f.stemH = p.Height * fr.height * p.Scale * vr.Height
	f.curH = f.stemH * g.Stem
	f.stemW = (1.2 + p.Height*4*p.Scale) * vr.Thickness
	f.tipDX = (p.Lean*vr.Lean + sway) * f.stemH
	f.stemC = fr.stem.Color(p.StemColor).WithAlpha(alpha)
	f.leafC = fr.leaf.Color(p.LeafColor).WithAlpha(alpha)
	f.flowerC = fr.flower.Color(p.FlowerColor).WithAlpha(alpha)

	switch p.Category {
	case Grass, TallGrass:
		return fr.appendGrass(cmds, &f)
	case GroundCover:
		return fr.appendGroundCover(cmds, &f)
	case Succulent:
		return fr.appendSucculent(cmds, &f)
	case Mushroom:
		return fr.appendMushroom(cmds, &f)
	case Herb:
		return fr.appendHerb(cmds, &f)
	case Fern:
		return fr.appendFern(cmds, &f)
	case Shrub, Bush:
		return fr.appendShrub(cmds, &f)
	case Climber:
		return fr.appendClimber(cmds, &f)
	case Bamboo:
		return fr.appendBamboo(cmds, &f)
	case Reed:
		return fr.appendReed(cmds, &f)
	case SmallTree, Broadleaf:
		return fr.appendTree(cmds, &f)
	case Conifer:
		return fr.appendConifer(cmds, &f)
	}
	// ShortFlower, MediumFlower, TallFlower, Wildflower.
	return fr.appendFlower(cmds, &f)
}

func line(cmds []shapeCommand, x1, y1, x2, y2, w float64, c Color) []shapeCommand {
	return append(cmds, shapeCommand{
		op: opLine,
		x1: float32(x1), y1: float32(y1),
		x2: float32(x2), y2: float32(y2),
		width: float32(w), color: c,
	})
}

func circle(cmds []shapeCommand, x, y, r float64, c Color) []shapeCommand {
	return append(cmds, shapeCommand{
		op: opCircle,
		x1: float32(x), y1: float32(y),
		radius: float32(r), color: c,
	})
}

func rect(cmds []shapeCommand, x, y, w, h float64, c Color) []shapeCommand {
	return append(cmds, shapeCommand{
		op: opRect,
		x1: float32(x), y1: float32(y),
		x2: float32(w), y2: float32(h),
		color: c,
	})
}

// appendStem draws a segmented stem from the base to the tip. The lateral
// offset grows quadratically so the base stays rooted while the tip leans.
func appendStem(cmds []shapeCommand, baseX, baseY, curH, tipDX, w float64, segments int, c Color) []shapeCommand {
	px, py := baseX, baseY
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x := baseX + tipDX*t*t
		y := baseY - curH*t
		cmds = line(cmds, px, py, x, y, w, c)
		px, py = x, y
	}
	return cmds
}

// stemTip returns the endpoint appendStem arrives at.
func stemTip(baseX, baseY, curH, tipDX float64) (x, y float64) {
	return baseX + tipDX, baseY - curH
}

func (fr *fieldRenderer) appendGrass(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	blades := 3 + int(f.vr.Complexity*4) + f.jit.IntN(2)
	spread := f.stemW*2 + f.stemH*0.10
	for i := 0; i < blades; i++ {
		off := (float64(i)/float64(blades-1) - 0.5) * spread
		bladeH := f.curH * (0.7 + f.jit.Next()*0.3)
		bladeDX := f.tipDX + (f.jit.Next()-0.5)*f.stemH*0.3
		cmds = appendStem(cmds, f.baseX+off, f.baseY, bladeH, bladeDX, f.stemW*0.6, 2, f.stemC)

		if f.growth.Plume > 0 {
			tx, ty := stemTip(f.baseX+off, f.baseY, bladeH, bladeDX)
			plumeC := f.stemC.Lerp(ColorWhite, 0.6).WithAlpha(f.growth.Plume)
			cmds = circle(cmds, tx, ty, f.stemW*(0.8+f.growth.Plume), plumeC)
		}
	}
	return cmds
}

func (fr *fieldRenderer) appendGroundCover(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	if f.growth.Leaf <= 0 {
		return cmds
	}
	n := 5 + int(f.vr.Complexity*5)
	for i := 0; i < n; i++ {
		dx := (f.jit.Next() - 0.5) * f.stemH * 2.5
		dy := f.jit.Next() * f.curH
		r := f.stemW * (1.0 + f.jit.Next()*0.8) * f.growth.Leaf
		cmds = circle(cmds, f.baseX+dx, f.baseY-dy, r, f.leafC)

		if f.growth.Flower > 0 && i%3 == 0 {
			cmds = circle(cmds, f.baseX+dx, f.baseY-dy-r*0.5, r*0.45*f.growth.Flower, f.flowerC)
		}
	}
	return cmds
}

func (fr *fieldRenderer) appendSucculent(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	n := 6 + int(f.vr.Complexity*4)
	for i := 0; i < n; i++ {
		// Leaves fan over roughly 120 degrees around vertical.
		ang := (float64(i)/float64(n-1) - 0.5) * 2.1
		l := f.curH * (0.6 + f.jit.Next()*0.4)
		tx := f.baseX + math.Sin(ang)*l + f.tipDX*0.2
		ty := f.baseY - math.Cos(ang)*l
		cmds = line(cmds, f.baseX, f.baseY, tx, ty, f.stemW*1.6, f.leafC)
	}
	if f.growth.Flower > 0 {
		// A single bloom spike out of the rosette.
		spikeH := f.curH + f.stemH*0.4*f.growth.Flower
		cmds = line(cmds, f.baseX, f.baseY, f.baseX+f.tipDX*0.5, f.baseY-spikeH, f.stemW*0.7, f.stemC)
		cmds = circle(cmds, f.baseX+f.tipDX*0.5, f.baseY-spikeH, f.stemW*1.4*f.growth.Flower, f.flowerC)
	}
	return cmds
}

func (fr *fieldRenderer) appendMushroom(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	stalkC := f.stemC.Lerp(ColorWhite, 0.5)
	cmds = line(cmds, f.baseX, f.baseY, f.baseX+f.tipDX*0.3, f.baseY-f.curH, f.stemW*1.5, stalkC)

	if f.growth.Leaf > 0 {
		capR := f.stemH * 0.45 * f.vr.Thickness * f.growth.Leaf
		capX, capY := f.baseX+f.tipDX*0.3, f.baseY-f.curH
		cmds = circle(cmds, capX, capY, capR, f.flowerC)
		// Petal count doubles as cap speckles once the cap is out.
		if f.growth.Flower > 0 {
			for i := 0; i < f.petals; i++ {
				sx, sy := f.jit.InDisk(capR * 0.7)
				speckC := ColorWhite.WithAlpha(f.flowerC.A * f.growth.Flower)
				cmds = circle(cmds, capX+sx, capY+sy-capR*0.15, capR*0.12, speckC)
			}
		}
	}
	return cmds
}

func (fr *fieldRenderer) appendFlower(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	cmds = appendStem(cmds, f.baseX, f.baseY, f.curH, f.tipDX, f.stemW, 3, f.stemC)

	if f.growth.Leaf > 0 {
		for i, t := range []float64{0.35, 0.6} {
			side := 1.0
			if i%2 == 1 {
				side = -1
			}
			lx := f.baseX + f.tipDX*t*t
			ly := f.baseY - f.curH*t
			l := f.stemH * 0.18 * f.growth.Leaf * f.vr.Size
			cmds = line(cmds, lx, ly, lx+side*l, ly-l*0.35, f.stemW*0.9, f.leafC)
		}
	}

	if f.growth.Flower > 0 {
		tx, ty := stemTip(f.baseX, f.baseY, f.curH, f.tipDX)
		headR := (f.stemH*0.09 + 2) * f.vr.Size
		angOff := f.jit.Next() * 2 * math.Pi
		for i := 0; i < f.petals; i++ {
			ang := angOff + 2*math.Pi*float64(i)/float64(f.petals)
			px := tx + math.Cos(ang)*headR*f.growth.Flower
			py := ty + math.Sin(ang)*headR*f.growth.Flower
			cmds = circle(cmds, px, py, headR*0.45*f.growth.Flower, f.flowerC)
		}
		centerC := f.flowerC.Lerp(ColorWhite, 0.45)
		cmds = circle(cmds, tx, ty, headR*0.35*f.growth.Flower, centerC)

		if f.growth.Plume > 0 {
			// Seeds drifting off the spent head.
			for i := 0; i < 3; i++ {
				sx := tx + (f.jit.Next()-0.5)*headR*3
				sy := ty - f.growth.Plume*f.stemH*0.25 - f.jit.Next()*headR
				seedC := ColorWhite.WithAlpha(f.flowerC.A * (1 - f.growth.Plume) * 0.8)
				cmds = circle(cmds, sx, sy, headR*0.12, seedC)
			}
		}
	}
	return cmds
}

func (fr *fieldRenderer) appendHerb(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	cmds = appendStem(cmds, f.baseX, f.baseY, f.curH, f.tipDX, f.stemW, 3, f.stemC)

	rows := 4 + int(f.vr.Complexity*4)
	shown := int(float64(rows) * f.growth.Leaf)
	for i := 0; i < shown; i++ {
		t := 0.25 + 0.65*float64(i)/float64(rows)
		lx := f.baseX + f.tipDX*t*t
		ly := f.baseY - f.curH*t
		r := f.stemW * 1.1
		cmds = circle(cmds, lx-r*1.6, ly, r, f.leafC)
		cmds = circle(cmds, lx+r*1.6, ly, r, f.leafC)
	}

	if f.growth.Flower > 0 {
		tx, ty := stemTip(f.baseX, f.baseY, f.curH, f.tipDX)
		r := f.stemW * 1.2 * f.growth.Flower
		for i := 0; i < 3; i++ {
			cmds = circle(cmds, tx+(f.jit.Next()-0.5)*r*2, ty-f.jit.Next()*r*2, r, f.flowerC)
		}
	}
	return cmds
}

func (fr *fieldRenderer) appendFern(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	cmds = appendStem(cmds, f.baseX, f.baseY, f.curH, f.tipDX*1.4, f.stemW, 4, f.stemC)

	if f.growth.Leaf <= 0 {
		return cmds
	}
	pairs := 3 + int(f.vr.Complexity*6)
	mass := 0.5 + 0.5*f.growth.Foliage
	for i := 0; i < pairs; i++ {
		t := 0.15 + 0.8*float64(i)/float64(pairs)
		bx := f.baseX + f.tipDX*1.4*t*t
		by := f.baseY - f.curH*t
		l := f.stemH * 0.25 * (1 - t*0.7) * f.growth.Leaf * mass
		droop := l * 0.3
		cmds = line(cmds, bx, by, bx-l, by-l*0.5+droop, f.stemW*0.7, f.leafC)
		cmds = line(cmds, bx, by, bx+l, by-l*0.5+droop, f.stemW*0.7, f.leafC)
	}
	return cmds
}

func (fr *fieldRenderer) appendShrub(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	stems := 3 + int(f.vr.Complexity*3)
	for i := 0; i < stems; i++ {
		spread := (float64(i)/float64(stems-1) - 0.5) * f.stemH * 0.8
		h := f.curH * (0.75 + f.jit.Next()*0.25)
		cmds = appendStem(cmds, f.baseX, f.baseY, h, spread+f.tipDX, f.stemW, 2, f.stemC)

		if f.growth.Foliage > 0 {
			tx, ty := stemTip(f.baseX, f.baseY, h, spread+f.tipDX)
			r := f.stemH * 0.22 * f.growth.Foliage * f.vr.Size
			cmds = circle(cmds, tx, ty, r, f.leafC)

			if f.growth.Flower > 0 && f.petals > 0 && i%2 == 0 {
				bx, by := f.jit.InDisk(r * 0.7)
				cmds = circle(cmds, tx+bx, ty+by, r*0.25*f.growth.Flower, f.flowerC)
			}
		}
	}
	return cmds
}

func (fr *fieldRenderer) appendClimber(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	segments := 5
	amp := f.stemH * 0.08
	px, py := f.baseX, f.baseY
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		side := 1.0
		if i%2 == 1 {
			side = -1
		}
		x := f.baseX + f.tipDX*t*t + side*amp*math.Sin(t*math.Pi)
		y := f.baseY - f.curH*t
		cmds = line(cmds, px, py, x, y, f.stemW*0.8, f.stemC)

		if f.growth.Leaf > 0 && i < segments {
			cmds = circle(cmds, x, y, f.stemW*1.3*f.growth.Leaf, f.leafC)
		}
		px, py = x, y
	}
	if f.growth.Flower > 0 {
		cmds = circle(cmds, px, py, f.stemW*1.6*f.growth.Flower, f.flowerC)
	}
	return cmds
}

func (fr *fieldRenderer) appendBamboo(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	tx, ty := stemTip(f.baseX, f.baseY, f.curH, f.tipDX*0.5)
	cmds = line(cmds, f.baseX, f.baseY, tx, ty, f.stemW*1.3, f.stemC)

	// Node rings every culm section grown so far.
	section := f.stemH * 0.18
	for h := section; h < f.curH; h += section {
		t := h / f.curH
		nx := f.baseX + f.tipDX*0.5*t
		ny := f.baseY - h
		cmds = line(cmds, nx-f.stemW*1.1, ny, nx+f.stemW*1.1, ny, f.stemW*0.5, f.stemC.Lerp(ColorWhite, 0.25))
	}

	if f.growth.Leaf > 0 {
		for i := 0; i < 3; i++ {
			t := 0.7 + 0.12*float64(i)
			if f.curH*t > f.curH {
				break
			}
			side := 1.0
			if i%2 == 1 {
				side = -1
			}
			lx := f.baseX + f.tipDX*0.5*t
			ly := f.baseY - f.curH*t
			l := f.stemH * 0.16 * f.growth.Leaf
			cmds = line(cmds, lx, ly, lx+side*l, ly+l*0.4, f.stemW*0.6, f.leafC)
		}
	}
	return cmds
}

func (fr *fieldRenderer) appendReed(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	stems := 2 + f.jit.IntN(2)
	for i := 0; i < stems; i++ {
		off := (float64(i) - float64(stems-1)/2) * f.stemW * 3
		h := f.curH * (0.85 + f.jit.Next()*0.15)
		dx := f.tipDX * (0.8 + f.jit.Next()*0.4)
		cmds = appendStem(cmds, f.baseX+off, f.baseY, h, dx, f.stemW*0.8, 2, f.stemC)

		if f.growth.Flower > 0 {
			// The seed head is a capsule riding the top of the stem.
			tx, ty := stemTip(f.baseX+off, f.baseY, h, dx)
			hw := f.stemW * 2.0
			hh := f.stemH * 0.16 * f.growth.Flower
			headC := f.stemC.Lerp(f.flowerC, 0.4)
			cmds = rect(cmds, tx-hw/2, ty-hh*0.2, hw, hh, headC)

			if f.growth.Plume > 0 {
				plumeC := ColorWhite.WithAlpha(f.flowerC.A * f.growth.Plume * 0.7)
				cmds = circle(cmds, tx, ty-hh*0.2-f.stemW, f.stemW*1.5*f.growth.Plume, plumeC)
			}
		}
	}
	return cmds
}

func (fr *fieldRenderer) appendTree(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	trunkH := f.curH * 0.5
	tx := f.baseX + f.tipDX*0.3
	ty := f.baseY - trunkH
	cmds = line(cmds, f.baseX, f.baseY, tx, ty, f.stemW*1.8, f.stemC)

	branches := 3 + f.jit.IntN(2)
	for i := 0; i < branches; i++ {
		ang := (float64(i)/float64(branches-1) - 0.5) * 1.6
		l := f.curH * 0.45 * (0.8 + f.jit.Next()*0.2)
		bx := tx + math.Sin(ang)*l*0.7 + f.tipDX*0.3
		by := ty - math.Cos(ang)*l
		cmds = line(cmds, tx, ty, bx, by, f.stemW*0.9, f.stemC)

		if f.growth.Foliage > 0 {
			r := f.stemH * 0.20 * f.growth.Foliage * f.vr.Size
			cmds = circle(cmds, bx, by, r, f.leafC)

			if f.growth.Flower > 0 && f.petals > 0 {
				// Blossom pass over the canopy.
				px, py := f.jit.InDisk(r * 0.8)
				cmds = circle(cmds, bx+px, by+py, r*0.18*f.growth.Flower, f.flowerC)
			}
		}
	}
	if f.growth.Foliage > 0 {
		cmds = circle(cmds, tx+f.tipDX*0.2, ty-f.curH*0.25, f.stemH*0.24*f.growth.Foliage*f.vr.Size, f.leafC)
	}
	return cmds
}

func (fr *fieldRenderer) appendConifer(cmds []shapeCommand, f *plantFrame) []shapeCommand {
	tx, ty := stemTip(f.baseX, f.baseY, f.curH, f.tipDX*0.4)
	cmds = line(cmds, f.baseX, f.baseY, tx, ty, f.stemW*1.4, f.stemC)

	if f.growth.Foliage <= 0 {
		return cmds
	}
	rows := 5 + int(f.vr.Complexity*4)
	for i := 0; i < rows; i++ {
		t := 0.2 + 0.78*float64(i)/float64(rows-1)
		halfW := f.stemH * 0.28 * (1 - t*0.85) * f.growth.Foliage
		rx := f.baseX + f.tipDX*0.4*t
		ry := f.baseY - f.curH*t
		// Branch rows droop slightly away from the trunk.
		cmds = line(cmds, rx, ry, rx-halfW, ry+halfW*0.35, f.stemW*0.8, f.leafC)
		cmds = line(cmds, rx, ry, rx+halfW, ry+halfW*0.35, f.stemW*0.8, f.leafC)
	}
	return cmds
}
