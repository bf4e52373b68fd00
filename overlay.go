package meadow

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsRefreshInterval is how often the overlay re-renders its text.
// Redrawing every frame makes the numbers unreadable.
const statsRefreshInterval = 0.5

// StatsOverlay draws live garden counters in the top-left corner of the
// screen: frame rates, plant and mote counts, pool usage and clock.
type StatsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

// NewStatsOverlay creates an overlay ready to draw. The first Update
// renders immediately.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		img:        ebiten.NewImage(190, 52),
		lastUpdate: statsRefreshInterval,
	}
}

// Update refreshes the overlay text when the refresh interval has passed.
func (o *StatsOverlay) Update(dt float64, g *Garden) {
	o.lastUpdate += dt
	if o.lastUpdate < statsRefreshInterval {
		return
	}
	o.lastUpdate = 0

	stats := g.pool.Stats()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nplants: %d  motes: %d\npool: %d/%d  t: %.1fs",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		len(g.plants), g.pollen.AliveCount(),
		stats.PeakUsage, stats.Capacity, g.player.Time()))
}

// Draw blits the overlay onto screen.
func (o *StatsOverlay) Draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	screen.DrawImage(o.img, &op)
}
