package meadow

import (
	"errors"
	"testing"
)

func TestPoolAcquireReleaseBalance(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 4})

	for frame := 0; frame < 10; frame++ {
		p.BeginFrame()
		for i := 0; i < 3; i++ {
			if _, err := p.Acquire(); err != nil {
				t.Fatalf("frame %d acquire %d: %v", frame, i, err)
			}
		}
		p.EndFrame()
	}

	s := p.Stats()
	if s.Acquired != s.Released {
		t.Errorf("acquired %d != released %d", s.Acquired, s.Released)
	}
	if s.Acquired != 30 {
		t.Errorf("acquired = %d, want 30", s.Acquired)
	}
	if s.Misuses != 0 {
		t.Errorf("misuses = %d, want 0", s.Misuses)
	}
}

func TestPoolGrowthEvent(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2, GrowthFactor: 2})

	p.BeginFrame()
	for i := 0; i < 3; i++ {
		if _, err := p.Acquire(); err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
	}
	p.EndFrame()

	s := p.Stats()
	if s.Grows != 1 {
		t.Errorf("growth events = %d, want 1", s.Grows)
	}
	if s.Capacity != 4 {
		t.Errorf("capacity after growth = %d, want 4", s.Capacity)
	}
}

func TestPoolGrowthFloorsFactor(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 3, GrowthFactor: 2.5})

	p.BeginFrame()
	for i := 0; i < 4; i++ {
		if _, err := p.Acquire(); err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
	}
	p.EndFrame()

	if got := p.Stats().Capacity; got != 7 {
		t.Errorf("capacity = %d, want floor(3*2.5) = 7", got)
	}
}

func TestPoolGrowthKeepsEarlierRecords(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2, GrowthFactor: 2})

	p.BeginFrame()
	first, _ := p.Acquire()
	first.Stem = 0.5
	p.Acquire()
	p.Acquire() // triggers growth

	if first.Stem != 0.5 {
		t.Error("record acquired before growth lost its data")
	}
	p.EndFrame()
}

func TestPoolExhaustionFatal(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2, MaxSize: 4, GrowthFactor: 2})

	p.BeginFrame()
	for i := 0; i < 4; i++ {
		if _, err := p.Acquire(); err != nil {
			t.Fatalf("acquire %d within max: %v", i, err)
		}
	}

	_, err := p.Acquire()
	if err == nil {
		t.Fatal("expected exhaustion error past MaxSize")
	}
	if !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("error = %v, want ErrPoolExhausted", err)
	}
	p.EndFrame()

	// The failure is not retried away: capacity is unchanged.
	if got := p.Stats().Capacity; got != 4 {
		t.Errorf("capacity after exhaustion = %d, want 4", got)
	}
}

func TestPoolShrinkAfterLowUsage(t *testing.T) {
	p := NewGrowthPool(PoolConfig{
		InitialSize:     2,
		GrowthFactor:    2,
		ShrinkThreshold: 0.25,
		ShrinkAfter:     3,
	})

	// Grow to capacity 8.
	p.BeginFrame()
	for i := 0; i < 5; i++ {
		p.Acquire()
	}
	p.EndFrame()
	if got := p.Stats().Capacity; got != 8 {
		t.Fatalf("capacity = %d, want 8", got)
	}

	// Three consecutive frames using 1 of 8 records (under 0.25*8).
	for i := 0; i < 3; i++ {
		p.BeginFrame()
		p.Acquire()
		p.EndFrame()
	}
	if got := p.Stats().Capacity; got != 4 {
		t.Errorf("capacity after shrink = %d, want 4", got)
	}

	// A busy frame resets the low-usage streak.
	p.BeginFrame()
	p.Acquire()
	p.Acquire()
	p.Acquire()
	p.EndFrame()
	for i := 0; i < 2; i++ {
		p.BeginFrame()
		p.EndFrame()
	}
	if got := p.Stats().Capacity; got != 4 {
		t.Errorf("capacity shrank too early: %d", got)
	}

	// Enough low frames shrink back to, and never below, the initial size.
	for i := 0; i < 10; i++ {
		p.BeginFrame()
		p.EndFrame()
	}
	if got := p.Stats().Capacity; got != 2 {
		t.Errorf("capacity = %d, want initial size 2", got)
	}
}

func TestPoolRecordsResetBetweenFrames(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2})

	p.BeginFrame()
	g, _ := p.Acquire()
	g.Overall = 0.9
	g.Stem = 1
	g.Plume = 0.3
	p.EndFrame()

	p.BeginFrame()
	g2, _ := p.Acquire()
	if *g2 != (Growth{}) {
		t.Errorf("reacquired record not reset: %+v", *g2)
	}
	p.EndFrame()
}

func TestPoolAcquireFor(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2})

	p.BeginFrame()
	g, err := p.AcquireFor(600, 100, 1000, DefaultPhaseConfig())
	if err != nil {
		t.Fatal(err)
	}
	if g.Overall != 0.5 || g.Stem != 0.75 {
		t.Errorf("AcquireFor computed %+v", *g)
	}
	p.EndFrame()
}

func TestPoolLeakDetection(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 4, Diagnostics: true})

	p.BeginFrame() // frame 1
	p.Acquire()

	// Abandon the frame: lenient mode warns, self-heals, and records the leak.
	p.BeginFrame() // frame 2

	leaks := p.DetectLeaks()
	if len(leaks) != 1 {
		t.Fatalf("leaks = %d, want 1", len(leaks))
	}
	if leaks[0].Frame != 1 {
		t.Errorf("leak attributed to frame %d, want 1", leaks[0].Frame)
	}
	if leaks[0].Slot != 0 {
		t.Errorf("leak slot = %d, want 0", leaks[0].Slot)
	}
	p.EndFrame()
}

func TestPoolCleanFramesLeakNothing(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 4, Diagnostics: true})

	for i := 0; i < 5; i++ {
		p.BeginFrame()
		p.Acquire()
		p.Acquire()
		p.EndFrame()
	}
	if leaks := p.DetectLeaks(); len(leaks) != 0 {
		t.Errorf("clean frames reported leaks: %v", leaks)
	}
}

func TestPoolStrictPanicsOnMisuse(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2, Diagnostics: true, Strict: true})

	p.BeginFrame()
	defer func() {
		if recover() == nil {
			t.Error("strict nested BeginFrame did not panic")
		}
	}()
	p.BeginFrame()
}

func TestPoolSilentSelfHeal(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2})

	p.BeginFrame()
	p.Acquire()
	p.BeginFrame() // silently abandons the open frame

	g, err := p.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if g == nil {
		t.Fatal("acquire after self-heal returned nil")
	}
	p.EndFrame()

	s := p.Stats()
	if s.Misuses != 1 {
		t.Errorf("misuses = %d, want 1", s.Misuses)
	}
	if len(p.DetectLeaks()) != 0 {
		t.Error("leak recorded without diagnostics")
	}
}

func TestPoolAcquireOutsideFrameSelfHeals(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2})

	g, err := p.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if g == nil {
		t.Fatal("self-healed acquire returned nil")
	}
	if p.Stats().Misuses != 1 {
		t.Errorf("misuses = %d, want 1", p.Stats().Misuses)
	}
	p.EndFrame()
}

func TestPoolEndFrameOutsideFrame(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2})

	p.EndFrame()
	if p.Stats().Misuses != 1 {
		t.Errorf("misuses = %d, want 1", p.Stats().Misuses)
	}
	if p.Stats().Released != 0 {
		t.Error("unmatched EndFrame released records")
	}
}

func TestPoolValidate(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2, Diagnostics: true})

	p.BeginFrame()
	g, _ := p.Acquire()
	if err := p.Validate(g); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	foreign := new(Growth)
	if err := p.Validate(foreign); !errors.Is(err, ErrNotPoolMember) {
		t.Errorf("foreign record: %v, want ErrNotPoolMember", err)
	}
	p.EndFrame()

	// After EndFrame the record is released.
	if err := p.Validate(g); !errors.Is(err, ErrRecordReleased) {
		t.Errorf("released record: %v, want ErrRecordReleased", err)
	}
}

func TestPoolValidateStaleFrame(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2, Diagnostics: true})

	p.BeginFrame()
	g, _ := p.Acquire()

	// Abandoning the frame leaves the record unreleased but stale.
	p.BeginFrame()
	if err := p.Validate(g); !errors.Is(err, ErrRecordStale) {
		t.Errorf("stale record: %v, want ErrRecordStale", err)
	}
	p.EndFrame()
}

func TestPoolValidateWithoutDiagnostics(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2})
	if err := p.Validate(new(Growth)); err != nil {
		t.Errorf("Validate without diagnostics = %v, want nil", err)
	}
}

func TestPoolFrameHistoryBounded(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 8, HistorySize: 4})

	for _, n := range []int{1, 2, 3, 4, 5, 6} {
		p.BeginFrame()
		for i := 0; i < n; i++ {
			p.Acquire()
		}
		p.EndFrame()
	}

	hist := p.FrameHistory()
	want := []int{3, 4, 5, 6}
	if len(hist) != len(want) {
		t.Fatalf("history length = %d, want %d", len(hist), len(want))
	}
	for i := range want {
		if hist[i] != want[i] {
			t.Errorf("history[%d] = %d, want %d (oldest first)", i, hist[i], want[i])
		}
	}
}

func TestPoolReset(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 2, GrowthFactor: 2, Diagnostics: true})

	p.BeginFrame()
	for i := 0; i < 5; i++ {
		p.Acquire()
	}
	p.BeginFrame() // leak
	p.EndFrame()

	p.Reset()

	s := p.Stats()
	if s.Capacity != 2 || s.Acquired != 0 || s.Frame != 0 || s.Misuses != 0 {
		t.Errorf("stats after Reset: %+v", s)
	}
	if len(p.DetectLeaks()) != 0 {
		t.Error("leaks survived Reset")
	}
	if len(p.FrameHistory()) != 0 {
		t.Error("history survived Reset")
	}

	// The pool is fully usable after Reset.
	p.BeginFrame()
	if _, err := p.Acquire(); err != nil {
		t.Fatal(err)
	}
	p.EndFrame()
}

func TestPoolConfigDefaults(t *testing.T) {
	p := NewGrowthPool(PoolConfig{})
	s := p.Stats()
	if s.Capacity != 64 {
		t.Errorf("default capacity = %d, want 64", s.Capacity)
	}

	// MaxSize below InitialSize is raised to it.
	p = NewGrowthPool(PoolConfig{InitialSize: 100, MaxSize: 10})
	p.BeginFrame()
	for i := 0; i < 100; i++ {
		if _, err := p.Acquire(); err != nil {
			t.Fatalf("acquire %d within initial size: %v", i, err)
		}
	}
	p.EndFrame()
}

func TestPoolFrameCycleZeroAlloc(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 16})
	cfg := DefaultPhaseConfig()

	// Warm up the history buffer and any growth.
	for i := 0; i < 3; i++ {
		p.BeginFrame()
		for j := 0; j < 10; j++ {
			p.AcquireFor(float64(j), 0, 10, cfg)
		}
		p.EndFrame()
	}

	result := testing.AllocsPerRun(100, func() {
		p.BeginFrame()
		for j := 0; j < 10; j++ {
			p.AcquireFor(float64(j), 0, 10, cfg)
		}
		p.EndFrame()
	})
	if result > 0 {
		t.Errorf("frame cycle allocated %f times per run, want 0", result)
	}
}

func TestPoolFrameCycleZeroAllocWithDiagnostics(t *testing.T) {
	p := NewGrowthPool(PoolConfig{InitialSize: 16, Diagnostics: true})
	cfg := DefaultPhaseConfig()

	for i := 0; i < 3; i++ {
		p.BeginFrame()
		for j := 0; j < 10; j++ {
			p.AcquireFor(float64(j), 0, 10, cfg)
		}
		p.EndFrame()
	}

	result := testing.AllocsPerRun(100, func() {
		p.BeginFrame()
		for j := 0; j < 10; j++ {
			p.AcquireFor(float64(j), 0, 10, cfg)
		}
		p.EndFrame()
	})
	if result > 0 {
		t.Errorf("diagnostic frame cycle allocated %f times per run, want 0", result)
	}
}

func TestDefaultPoolLifecycle(t *testing.T) {
	DisposeDefaultPool()
	if DefaultPool() != nil {
		t.Fatal("DefaultPool should be nil before NewDefaultPool")
	}

	p := NewDefaultPool(PoolConfig{InitialSize: 8})
	if DefaultPool() != p {
		t.Error("DefaultPool did not return the installed pool")
	}

	DisposeDefaultPool()
	if DefaultPool() != nil {
		t.Error("DefaultPool should be nil after dispose")
	}
}
