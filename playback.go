package meadow

import "math"

// Player controls the passage of field time: play, pause, scrub, loop, and
// rate. It owns no plants and drives no clock of its own; the owner calls
// Update with real elapsed seconds and reads Time back, so two players fed
// the same steps land on the same time regardless of wall clocks.
type Player struct {
	time     float64
	duration float64
	rate     float64
	playing  bool
	loop     bool
}

// NewPlayer creates a playing, non-looping player over the given duration
// at rate 1. Non-positive durations default to 20.
func NewPlayer(duration float64) *Player {
	if duration <= 0 {
		duration = 20
	}
	return &Player{duration: duration, rate: 1, playing: true}
}

// Update advances field time by dt seconds scaled by the playback rate.
// Without looping, time pauses at either end; with looping it wraps.
func (p *Player) Update(dt float64) {
	if !p.playing {
		return
	}
	p.time += dt * p.rate

	if p.loop {
		p.time = math.Mod(p.time, p.duration)
		if p.time < 0 {
			p.time += p.duration
		}
		return
	}
	if p.time >= p.duration {
		p.time = p.duration
		p.playing = false
	} else if p.time < 0 {
		p.time = 0
		p.playing = false
	}
}

// Time returns the current field time.
func (p *Player) Time() float64 { return p.time }

// SetTime scrubs to t, clamped to [0, duration].
func (p *Player) SetTime(t float64) {
	p.time = clamp(t, 0, p.duration)
}

// Duration returns the total field time.
func (p *Player) Duration() float64 { return p.duration }

// Progress returns the current time as a fraction of the duration.
func (p *Player) Progress() float64 {
	return p.time / p.duration
}

// Play resumes the passage of time.
func (p *Player) Play() { p.playing = true }

// Pause freezes time in place.
func (p *Player) Pause() { p.playing = false }

// Playing reports whether time is advancing.
func (p *Player) Playing() bool { return p.playing }

// SetRate sets the playback rate. Negative rates run time backward; zero
// freezes it while staying in the playing state.
func (p *Player) SetRate(rate float64) { p.rate = rate }

// Rate returns the playback rate.
func (p *Player) Rate() float64 { return p.rate }

// SetLoop controls whether time wraps at the ends instead of pausing.
func (p *Player) SetLoop(loop bool) { p.loop = loop }

// Loop reports whether time wraps at the ends.
func (p *Player) Loop() bool { return p.loop }

// Done reports whether a non-looping player has played out.
func (p *Player) Done() bool {
	return !p.loop && p.time >= p.duration
}

// Restart rewinds to zero and resumes playing.
func (p *Player) Restart() {
	p.time = 0
	p.playing = true
}
