package meadow

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Sway amplitude is expressed in the same units as Plant.Lean, a lateral
// tip offset as a fraction of plant height.
const (
	windCalm    = 0.02
	windPeakMin = 0.04
	windPeakMax = 0.12
)

// windField drives the lateral sway every plant shares. Gusts rise on an
// ease-in-out tween, fall back to calm on an ease-out tween, and the lulls
// between them vary in length. All timing and strength comes from one seed
// stream, so two gardens with the same seed see the same weather.
//
// There is no global wind manager; the owner calls Update each tick.
type windField struct {
	rng      *Rand
	gust     *gween.Tween
	fade     *gween.Tween
	strength float64 // current sway amplitude
	phase    float64 // traveling wave position
	wait     float64 // seconds until the next gust starts
}

func newWindField(seed int64) *windField {
	rng := NewRand(seed)
	return &windField{
		rng:      rng,
		strength: windCalm,
		wait:     rng.Float(1, 4),
	}
}

// Update advances the weather by dt seconds.
func (w *windField) Update(dt float64) {
	// The wave travels faster while a gust is up.
	w.phase += dt * (1.2 + w.strength*20)

	switch {
	case w.gust != nil:
		v, done := w.gust.Update(float32(dt))
		w.strength = float64(v)
		if done {
			w.gust = nil
			w.fade = gween.New(float32(w.strength), windCalm, float32(w.rng.Float(1.5, 3)), ease.OutQuad)
		}
	case w.fade != nil:
		v, done := w.fade.Update(float32(dt))
		w.strength = float64(v)
		if done {
			w.fade = nil
			w.wait = w.rng.Float(2, 6)
		}
	default:
		w.wait -= dt
		if w.wait <= 0 {
			peak := w.rng.Float(windPeakMin, windPeakMax)
			rise := w.rng.Float(0.8, 2)
			w.gust = gween.New(float32(w.strength), float32(peak), float32(rise), ease.InOutQuad)
		}
	}
}

// Sway returns the lateral tip offset for a plant at normalized field
// position x. Two sine bands keep neighbors moving together while the far
// side of the field lags behind the gust front.
func (w *windField) Sway(x float64) float64 {
	return w.strength * (0.75*math.Sin(w.phase+x*5.3) + 0.25*math.Sin(w.phase*1.7+x*11))
}
