package meadow

import (
	"math"
	"testing"
)

func TestPlayerAdvances(t *testing.T) {
	p := NewPlayer(10)
	for i := 0; i < 60; i++ {
		p.Update(1.0 / 60)
	}
	if math.Abs(p.Time()-1) > 1e-9 {
		t.Errorf("time = %v after one second, want 1", p.Time())
	}
	if math.Abs(p.Progress()-0.1) > 1e-9 {
		t.Errorf("progress = %v, want 0.1", p.Progress())
	}
}

func TestPlayerPause(t *testing.T) {
	p := NewPlayer(10)
	p.Update(1)
	p.Pause()
	p.Update(5)
	if p.Time() != 1 {
		t.Errorf("paused player advanced to %v", p.Time())
	}
	p.Play()
	p.Update(1)
	if p.Time() != 2 {
		t.Errorf("resumed player at %v, want 2", p.Time())
	}
}

func TestPlayerRate(t *testing.T) {
	p := NewPlayer(10)
	p.SetRate(2)
	p.Update(1)
	if p.Time() != 2 {
		t.Errorf("rate 2 advanced to %v, want 2", p.Time())
	}
	p.SetRate(-1)
	p.Update(1.5)
	if p.Time() != 0.5 {
		t.Errorf("rewind landed on %v, want 0.5", p.Time())
	}
}

func TestPlayerStopsAtEnd(t *testing.T) {
	p := NewPlayer(10)
	p.Update(15)
	if p.Time() != 10 {
		t.Errorf("time overran to %v", p.Time())
	}
	if p.Playing() {
		t.Error("player still playing past the end")
	}
	if !p.Done() {
		t.Error("Done() false at the end")
	}
}

func TestPlayerStopsAtStartWhenRewinding(t *testing.T) {
	p := NewPlayer(10)
	p.SetTime(1)
	p.SetRate(-1)
	p.Update(5)
	if p.Time() != 0 {
		t.Errorf("time underran to %v", p.Time())
	}
	if p.Playing() {
		t.Error("player still playing before the start")
	}
}

func TestPlayerLoopWraps(t *testing.T) {
	p := NewPlayer(10)
	p.SetLoop(true)
	p.SetTime(9.5)
	p.Update(1)
	if math.Abs(p.Time()-0.5) > 1e-9 {
		t.Errorf("loop wrapped to %v, want 0.5", p.Time())
	}
	if !p.Playing() {
		t.Error("looping player paused at the seam")
	}
	if p.Done() {
		t.Error("looping player reports Done")
	}

	p.SetRate(-1)
	p.SetTime(0.25)
	p.Update(1)
	if math.Abs(p.Time()-9.25) > 1e-9 {
		t.Errorf("reverse loop wrapped to %v, want 9.25", p.Time())
	}
}

func TestPlayerSetTimeClamps(t *testing.T) {
	p := NewPlayer(10)
	p.SetTime(42)
	if p.Time() != 10 {
		t.Errorf("SetTime(42) landed on %v", p.Time())
	}
	p.SetTime(-3)
	if p.Time() != 0 {
		t.Errorf("SetTime(-3) landed on %v", p.Time())
	}
}

func TestPlayerRestart(t *testing.T) {
	p := NewPlayer(10)
	p.Update(15)
	p.Restart()
	if p.Time() != 0 || !p.Playing() {
		t.Errorf("restart left time %v playing %v", p.Time(), p.Playing())
	}
}

func TestPlayerDefaultDuration(t *testing.T) {
	if NewPlayer(0).Duration() != 20 {
		t.Error("zero duration did not default")
	}
}
