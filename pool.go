package meadow

import (
	"errors"
	"fmt"
	"os"
)

// ErrPoolExhausted is returned by Acquire when the next capacity step would
// exceed PoolConfig.MaxSize. It signals a caller-side bug such as a runaway
// entity count, not a recoverable condition.
var ErrPoolExhausted = errors.New("meadow: growth pool at maximum capacity")

// Record validation errors, returned by GrowthPool.Validate.
var (
	ErrNotPoolMember  = errors.New("meadow: record does not belong to this pool")
	ErrRecordReleased = errors.New("meadow: record already released")
	ErrRecordStale    = errors.New("meadow: record read outside the frame that acquired it")
)

// PoolConfig controls GrowthPool sizing, shrink behavior, and diagnostics.
// Zero values select the documented defaults.
type PoolConfig struct {
	// InitialSize is the starting record capacity. Defaults to 64.
	InitialSize int
	// MaxSize is the hard capacity ceiling. Acquire fails once the next
	// growth step would exceed it. Defaults to 4096.
	MaxSize int
	// GrowthFactor multiplies capacity when the pool is exhausted
	// mid-frame. Clamped to (1, 4]. Defaults to 2.
	GrowthFactor float64
	// ShrinkThreshold is the usage fraction of capacity below which a
	// frame counts as underusing the pool. Defaults to 0.25.
	ShrinkThreshold float64
	// ShrinkAfter is the number of consecutive underusing frames before
	// capacity is reduced. Defaults to 120 (two seconds at 60 Hz).
	ShrinkAfter int
	// HistorySize bounds the rolling per-frame usage history. Defaults
	// to 240.
	HistorySize int
	// Diagnostics enables per-record acquisition tracking, leak
	// detection, Validate, and lifecycle warnings.
	Diagnostics bool
	// Strict upgrades lifecycle misuse from stderr warnings to panics.
	// Effective only when Diagnostics is enabled.
	Strict bool
}

// withDefaults normalizes zero and out-of-range fields.
func (c PoolConfig) withDefaults() PoolConfig {
	if c.InitialSize <= 0 {
		c.InitialSize = 64
	}
	if c.MaxSize <= 0 {
		c.MaxSize = 4096
	}
	if c.MaxSize < c.InitialSize {
		c.MaxSize = c.InitialSize
	}
	if c.GrowthFactor <= 1 {
		c.GrowthFactor = 2
	}
	if c.GrowthFactor > 4 {
		c.GrowthFactor = 4
	}
	if c.ShrinkThreshold <= 0 || c.ShrinkThreshold >= 1 {
		c.ShrinkThreshold = 0.25
	}
	if c.ShrinkAfter <= 0 {
		c.ShrinkAfter = 120
	}
	if c.HistorySize <= 0 {
		c.HistorySize = 240
	}
	return c
}

// PoolStats is a snapshot of pool counters.
type PoolStats struct {
	Capacity  int    // current record capacity
	InUse     int    // records handed out in the open frame
	Frame     uint64 // current frame number
	Acquired  uint64 // total successful Acquire calls
	Released  uint64 // total records released by EndFrame
	PeakUsage int    // most records ever in use within one frame
	Grows     int    // capacity growth events
	Shrinks   int    // capacity shrink events
	Misuses   int    // lifecycle violations observed and self-healed
}

// Leak describes a record that was acquired but never released because its
// frame was abandoned without EndFrame. Recorded only when diagnostics are
// enabled.
type Leak struct {
	Slot  int    // record slot index
	Frame uint64 // frame the record was acquired in
}

// GrowthPool hands out mutable Growth records scoped to one frame.
// BeginFrame and EndFrame bracket every animation tick; records acquired
// in between are reset and invalidated in bulk at EndFrame, so acquire
// order is the only lifetime a caller manages. After warmup the whole
// BeginFrame/Acquire/EndFrame cycle performs no heap allocation.
//
// Capacity adapts to demand: exhausting the pool mid-frame grows it by
// GrowthFactor up to MaxSize, and sustained low usage shrinks it back
// toward InitialSize.
//
// The pool is single-threaded by design; one goroutine drives the frame
// loop. Temporal discipline replaces locking: never read a record after
// the frame that produced it has ended. Diagnostics mode enforces that
// discipline via Validate and DetectLeaks.
type GrowthPool struct {
	cfg     PoolConfig
	records []*Growth
	cursor  int
	inFrame bool
	frame   uint64

	history   []int // rolling per-frame usage, oldest first
	lowFrames int   // consecutive frames under the shrink threshold

	stats PoolStats
	leaks []Leak

	diag *poolDiag
}

// poolDiag carries per-slot acquisition metadata. It lives apart from the
// hot-path records so Growth stays fixed-shape.
type poolDiag struct {
	frameAcquired []uint64
	released      []bool
	owner         map[*Growth]int
}

// NewGrowthPool creates a pool at the configured initial capacity.
func NewGrowthPool(cfg PoolConfig) *GrowthPool {
	cfg = cfg.withDefaults()
	p := &GrowthPool{cfg: cfg}
	p.init()
	return p
}

// init builds the record array, history buffer, and diagnostics from cfg.
func (p *GrowthPool) init() {
	p.records = make([]*Growth, p.cfg.InitialSize)
	for i := range p.records {
		p.records[i] = new(Growth)
	}
	p.history = make([]int, 0, p.cfg.HistorySize)
	p.cursor = 0
	p.inFrame = false
	p.frame = 0
	p.lowFrames = 0
	p.stats = PoolStats{}
	p.leaks = nil
	if p.cfg.Diagnostics {
		p.diag = &poolDiag{
			frameAcquired: make([]uint64, len(p.records)),
			released:      make([]bool, len(p.records)),
			owner:         make(map[*Growth]int, len(p.records)),
		}
		for i, g := range p.records {
			p.diag.released[i] = true
			p.diag.owner[g] = i
		}
	} else {
		p.diag = nil
	}
}

// BeginFrame opens a new frame and resets the acquisition cursor. Calling
// it while a frame is already open is a lifecycle error: strict diagnostics
// panic, lenient diagnostics warn, record the abandoned frame's leaks, and
// self-heal; without diagnostics the pool silently self-heals.
func (p *GrowthPool) BeginFrame() {
	if p.inFrame {
		p.misuse("BeginFrame while a frame is already open")
		if p.diag != nil {
			for i := 0; i < p.cursor; i++ {
				if !p.diag.released[i] {
					p.leaks = append(p.leaks, Leak{Slot: i, Frame: p.diag.frameAcquired[i]})
				}
			}
		}
	}
	p.frame++
	p.cursor = 0
	p.inFrame = true
}

// Acquire returns the next record of the open frame, growing capacity when
// exhausted. The record is zeroed (reset at the previous EndFrame) and
// valid until this frame's EndFrame. Calling Acquire outside a frame is a
// lifecycle error that self-heals by opening a frame.
func (p *GrowthPool) Acquire() (*Growth, error) {
	if !p.inFrame {
		p.misuse("Acquire outside a frame")
		p.frame++
		p.cursor = 0
		p.inFrame = true
	}
	if p.cursor == len(p.records) {
		if err := p.grow(); err != nil {
			return nil, err
		}
	}
	g := p.records[p.cursor]
	if p.diag != nil {
		p.diag.frameAcquired[p.cursor] = p.frame
		p.diag.released[p.cursor] = false
	}
	p.cursor++
	p.stats.Acquired++
	if p.cursor > p.stats.PeakUsage {
		p.stats.PeakUsage = p.cursor
	}
	return g, nil
}

// AcquireFor acquires a record and computes its growth phases in one call.
func (p *GrowthPool) AcquireFor(time, delay, duration float64, cfg PhaseConfig) (*Growth, error) {
	g, err := p.Acquire()
	if err != nil {
		return nil, err
	}
	g.Compute(time, delay, duration, cfg)
	return g, nil
}

// EndFrame resets every record touched this frame, records usage into the
// rolling history, and closes the frame. Calling it without an open frame
// is a lifecycle error and otherwise a no-op.
func (p *GrowthPool) EndFrame() {
	if !p.inFrame {
		p.misuse("EndFrame without a matching BeginFrame")
		return
	}
	used := p.cursor
	for i := 0; i < used; i++ {
		*p.records[i] = Growth{}
	}
	if p.diag != nil {
		for i := 0; i < used; i++ {
			p.diag.released[i] = true
		}
	}
	p.stats.Released += uint64(used)

	if len(p.history) == p.cfg.HistorySize {
		copy(p.history, p.history[1:])
		p.history[len(p.history)-1] = used
	} else {
		p.history = append(p.history, used)
	}

	p.cursor = 0
	p.inFrame = false
	p.maybeShrink(used)
}

// grow raises capacity by GrowthFactor. Existing record pointers stay
// valid; only new slots are allocated.
func (p *GrowthPool) grow() error {
	oldCap := len(p.records)
	newCap := int(float64(oldCap) * p.cfg.GrowthFactor)
	if newCap <= oldCap {
		// Factors just above 1 can floor back to the old capacity.
		newCap = oldCap + 1
	}
	if newCap > p.cfg.MaxSize {
		return fmt.Errorf("%w: %d records in use, next capacity %d exceeds max %d",
			ErrPoolExhausted, p.cursor, newCap, p.cfg.MaxSize)
	}

	grown := make([]*Growth, newCap)
	copy(grown, p.records)
	for i := oldCap; i < newCap; i++ {
		grown[i] = new(Growth)
	}
	p.records = grown

	if p.diag != nil {
		frameAcquired := make([]uint64, newCap)
		copy(frameAcquired, p.diag.frameAcquired)
		released := make([]bool, newCap)
		copy(released, p.diag.released)
		for i := oldCap; i < newCap; i++ {
			released[i] = true
			p.diag.owner[grown[i]] = i
		}
		p.diag.frameAcquired = frameAcquired
		p.diag.released = released
	}

	p.stats.Grows++
	return nil
}

// maybeShrink reduces capacity after sustained low usage, never below the
// configured initial size.
func (p *GrowthPool) maybeShrink(used int) {
	capacity := len(p.records)
	if capacity <= p.cfg.InitialSize {
		p.lowFrames = 0
		return
	}
	if float64(used) >= p.cfg.ShrinkThreshold*float64(capacity) {
		p.lowFrames = 0
		return
	}
	p.lowFrames++
	if p.lowFrames < p.cfg.ShrinkAfter {
		return
	}
	p.lowFrames = 0

	newCap := int(float64(capacity) / p.cfg.GrowthFactor)
	if newCap < p.cfg.InitialSize {
		newCap = p.cfg.InitialSize
	}

	if p.diag != nil {
		for _, g := range p.records[newCap:] {
			delete(p.diag.owner, g)
		}
		p.diag.frameAcquired = p.diag.frameAcquired[:newCap]
		p.diag.released = p.diag.released[:newCap]
	}

	shrunk := make([]*Growth, newCap)
	copy(shrunk, p.records[:newCap])
	p.records = shrunk
	p.stats.Shrinks++
}

// misuse applies the configured lifecycle violation policy. Counting
// happens in every mode; strict diagnostics panic, lenient diagnostics
// warn on stderr, and silent mode leaves self-healing to the caller.
func (p *GrowthPool) misuse(msg string) {
	p.stats.Misuses++
	if p.diag == nil {
		return
	}
	if p.cfg.Strict {
		panic("meadow: pool misuse: " + msg)
	}
	_, _ = fmt.Fprintf(os.Stderr, "[meadow] pool misuse: %s (frame %d)\n", msg, p.frame)
}

// Stats returns a snapshot of the pool's counters.
func (p *GrowthPool) Stats() PoolStats {
	s := p.stats
	s.Capacity = len(p.records)
	s.InUse = p.cursor
	s.Frame = p.frame
	return s
}

// FrameHistory returns the rolling per-frame usage counts, oldest first.
// The returned slice is the pool's internal buffer and MUST NOT be mutated.
func (p *GrowthPool) FrameHistory() []int {
	return p.history
}

// DetectLeaks returns the records acquired in frames that were abandoned
// without EndFrame, each attributed to its originating frame. Requires
// diagnostics; otherwise the result is always empty.
func (p *GrowthPool) DetectLeaks() []Leak {
	return p.leaks
}

// Validate reports whether g is safe to read right now: it must belong to
// this pool, be unreleased, and have been acquired in the currently open
// frame. Requires diagnostics; without them Validate always returns nil.
func (p *GrowthPool) Validate(g *Growth) error {
	if p.diag == nil {
		return nil
	}
	slot, ok := p.diag.owner[g]
	if !ok {
		return ErrNotPoolMember
	}
	if p.diag.released[slot] {
		return ErrRecordReleased
	}
	if !p.inFrame || p.diag.frameAcquired[slot] != p.frame {
		return fmt.Errorf("%w: acquired in frame %d, current frame %d",
			ErrRecordStale, p.diag.frameAcquired[slot], p.frame)
	}
	return nil
}

// Reset discards all state, counters, history, and recorded leaks, and
// reinitializes the pool at its configured initial capacity. Intended for
// teardown between runs and for tests.
func (p *GrowthPool) Reset() {
	p.init()
}

// defaultPool is the optional process-wide instance. Nil until installed.
var defaultPool *GrowthPool

// NewDefaultPool installs a process-wide pool for hosts that genuinely
// want one shared instance, replacing any previous one. There is no lazy
// construction; DefaultPool returns nil until this is called.
func NewDefaultPool(cfg PoolConfig) *GrowthPool {
	defaultPool = NewGrowthPool(cfg)
	return defaultPool
}

// DefaultPool returns the installed process-wide pool, or nil.
func DefaultPool() *GrowthPool {
	return defaultPool
}

// DisposeDefaultPool removes the process-wide pool.
func DisposeDefaultPool() {
	defaultPool = nil
}
