package meadow

import "math"

// pollenMote holds per-mote simulation state. Unexported; managed by
// pollenDrift.
type pollenMote struct {
	x, y    float64
	vx, vy  float64
	life    float64 // remaining lifetime in seconds
	maxLife float64 // initial lifetime
	size    float64
}

const (
	pollenMaxMotes = 256
	pollenBaseRate = 18 // motes per second at full bloom
)

// pollenDrift simulates the motes rising off open flowers. The pool is
// preallocated and dead motes are swap-removed, so a tick never allocates;
// new motes are silently dropped while the pool is full. Emission scales
// with how much of the field is in bloom.
type pollenDrift struct {
	rng       *Rand
	motes     []pollenMote
	alive     int
	emitAccum float64
	width     float64
	height    float64
}

func newPollenDrift(seed int64, width, height float64) *pollenDrift {
	return &pollenDrift{
		rng:    NewRand(seed),
		motes:  make([]pollenMote, pollenMaxMotes),
		width:  width,
		height: height,
	}
}

// AliveCount returns the number of drifting motes.
func (d *pollenDrift) AliveCount() int {
	return d.alive
}

// Reset kills all motes and clears the emission accumulator.
func (d *pollenDrift) Reset() {
	d.alive = 0
	d.emitAccum = 0
}

// Update advances the simulation by dt seconds. bloom is the field's mean
// flower phase in [0, 1] and drives the emission rate.
func (d *pollenDrift) Update(dt, bloom float64) {
	// Advance existing motes, swap-remove the expired.
	i := 0
	for i < d.alive {
		m := &d.motes[i]
		m.life -= dt
		if m.life <= 0 {
			d.alive--
			d.motes[i] = d.motes[d.alive]
			continue
		}
		// A slow weave on top of the straight drift.
		m.x += (m.vx + math.Sin(m.life*3)*4) * dt
		m.y += m.vy * dt
		i++
	}

	if bloom <= 0 {
		return
	}
	d.emitAccum += dt * pollenBaseRate * clamp01(bloom)
	for d.emitAccum >= 1 {
		d.emitAccum--
		if d.alive == len(d.motes) {
			continue
		}
		life := d.rng.Float(2, 5)
		d.motes[d.alive] = pollenMote{
			x:       d.rng.Next() * d.width,
			y:       d.height * d.rng.Float(0.35, 0.8),
			vx:      d.rng.Float(-6, 6),
			vy:      d.rng.Float(-14, -5),
			life:    life,
			maxLife: life,
			size:    d.rng.Float(0.8, 1.8),
		}
		d.alive++
	}
}

// appendCommands emits one circle per mote. Motes are brightest when young
// and fade as they expire.
func (d *pollenDrift) appendCommands(cmds []shapeCommand) []shapeCommand {
	for i := 0; i < d.alive; i++ {
		m := &d.motes[i]
		t := m.life / m.maxLife
		c := Color{R: 1, G: 0.97, B: 0.8, A: 0.55 * t}
		cmds = circle(cmds, m.x, m.y, m.size, c)
	}
	return cmds
}
