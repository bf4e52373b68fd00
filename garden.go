package meadow

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Seed offsets keep the ambient subsystems on their own deterministic
// streams, away from the plant generator's per-plant seeds.
const (
	windSeedOffset   = 7777
	pollenSeedOffset = 8888
)

// Garden generates a field of plants and animates it. It implements
// ebiten.Game, so a program can hand it straight to Run or embed it in a
// larger game and forward Update, Draw and Layout calls.
//
// Rendering walks the plants tallest first so shorter growth reads in
// front, acquires one pooled Growth record per plant, and replays the
// accumulated shape commands onto the screen in a single pass.
type Garden struct {
	cfg      Config
	plants   []Plant
	pool     *GrowthPool
	player   *Player
	wind     *windField
	pollen   *pollenDrift
	phase    PhaseConfig
	renderer fieldRenderer
	cmds     []shapeCommand

	width, height int
	bloom         float64
	clearColor    Color
	overlay       *StatsOverlay
	captures      []string
	drawErr       error
}

// NewGarden generates a field from cfg and prepares it for playback at the
// given logical resolution. Width and height default to 800x600 when zero
// or negative.
func NewGarden(cfg Config, width, height int) *Garden {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	cfg = cfg.withDefaults()
	plants := Generate(cfg)

	g := &Garden{
		cfg:    cfg,
		plants: plants,
		pool: NewGrowthPool(PoolConfig{
			InitialSize: len(plants),
			Diagnostics: globalDebug,
		}),
		player: NewPlayer(cfg.Duration),
		wind:   newWindField(cfg.Seed + windSeedOffset),
		pollen: newPollenDrift(cfg.Seed+pollenSeedOffset, float64(width), float64(height)),
		phase:  DefaultPhaseConfig(),
		renderer: fieldRenderer{
			flower: cfg.FlowerPalette,
			stem:   cfg.StemPalette,
			leaf:   cfg.LeafPalette,
			width:  float64(width),
			height: float64(height),
		},
		width:      width,
		height:     height,
		clearColor: Color{R: 0.07, G: 0.09, B: 0.11, A: 1},
	}
	return g
}

// Update advances the garden by one tick. Part of ebiten.Game.
func (g *Garden) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	g.step(1.0 / float64(ebiten.TPS()))
	return nil
}

// step advances playback, wind and pollen by dt seconds. Pollen emission
// follows the previous frame's bloom level.
func (g *Garden) step(dt float64) {
	g.player.Update(dt)
	g.wind.Update(dt)
	g.pollen.Update(dt, g.bloom)
	if g.overlay != nil {
		g.overlay.Update(dt, g)
	}
}

// Draw renders the current playback time onto screen. Part of ebiten.Game.
func (g *Garden) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if globalDebug {
		t0 = time.Now()
	}
	if err := g.buildFrame(); err != nil {
		g.drawErr = err
		return
	}
	var t1 time.Time
	if globalDebug {
		t1 = time.Now()
	}

	screen.Fill(g.clearColor.toRGBA())
	submitCommands(screen, g.cmds)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	g.flushCaptures(screen)

	if globalDebug {
		logFrameStats(frameStats{
			emitTime:   t1.Sub(t0),
			submitTime: time.Since(t1),
			commands:   len(g.cmds),
			plants:     len(g.plants),
			motes:      g.pollen.AliveCount(),
		})
	}
}

// buildFrame refills the command buffer for the current playback time.
// One pool frame brackets the whole pass, so every Growth record is
// released before the function returns.
func (g *Garden) buildFrame() error {
	g.cmds = g.cmds[:0]
	t := g.player.Time()

	g.pool.BeginFrame()
	bloom := 0.0
	// Tallest first: Generate sorts ascending by height, so walking the
	// slice backwards paints the back of the field before the front.
	for i := len(g.plants) - 1; i >= 0; i-- {
		p := &g.plants[i]
		gr, err := g.pool.AcquireFor(t, p.Delay, p.Duration, g.phase)
		if err != nil {
			g.pool.EndFrame()
			return fmt.Errorf("garden frame: %w", err)
		}
		bloom += gr.Flower
		g.cmds = g.renderer.appendPlant(g.cmds, p, gr, g.wind.Sway(p.Position.X))
	}
	g.pool.EndFrame()

	if len(g.plants) > 0 {
		bloom /= float64(len(g.plants))
	}
	g.bloom = bloom

	g.cmds = g.pollen.appendCommands(g.cmds)
	return nil
}

// Layout reports the garden's logical resolution. Part of ebiten.Game.
func (g *Garden) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Reseed regenerates the field from a new seed and restarts playback.
// Wind and pollen restart on streams derived from the same seed, so two
// gardens reseeded identically play back identically.
func (g *Garden) Reseed(seed int64) {
	g.cfg.Seed = seed
	g.plants = Generate(g.cfg)
	g.wind = newWindField(seed + windSeedOffset)
	g.pollen = newPollenDrift(seed+pollenSeedOffset, float64(g.width), float64(g.height))
	g.player.Restart()
	g.bloom = 0
	g.drawErr = nil
}

// Plants returns the generated field, sorted ascending by height. The
// slice is the garden's own; callers must not modify it.
func (g *Garden) Plants() []Plant {
	return g.plants
}

// Player returns the playback clock, for pausing, scrubbing and looping.
func (g *Garden) Player() *Player {
	return g.player
}

// Pool returns the growth pool, for stats and leak inspection.
func (g *Garden) Pool() *GrowthPool {
	return g.pool
}

// Bloom reports the mean flower openness across the field at the last
// rendered frame, in [0, 1].
func (g *Garden) Bloom() float64 {
	return g.bloom
}

// SetBackground overrides the clear color behind the field.
func (g *Garden) SetBackground(c Color) {
	g.clearColor = c
}

// SetPhaseConfig swaps the growth phase rates used for every plant.
func (g *Garden) SetPhaseConfig(cfg PhaseConfig) {
	g.phase = cfg
}

// RunConfig controls the window Run opens.
type RunConfig struct {
	Title     string // window title, "meadow" when empty
	Width     int    // window width in pixels, garden width when zero
	Height    int    // window height in pixels, garden height when zero
	ShowStats bool   // draw the stats overlay in the corner
}

// Run opens a window and drives the garden until the window closes or an
// error stops the game loop.
func Run(g *Garden, rc RunConfig) error {
	if rc.Title == "" {
		rc.Title = "meadow"
	}
	if rc.Width <= 0 {
		rc.Width = g.width
	}
	if rc.Height <= 0 {
		rc.Height = g.height
	}
	if rc.ShowStats {
		g.overlay = NewStatsOverlay()
	}
	ebiten.SetWindowSize(rc.Width, rc.Height)
	ebiten.SetWindowTitle(rc.Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run garden: %w", err)
	}
	return nil
}
