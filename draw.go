package meadow

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// submitCommands flushes shape commands to dst in slice order, which the
// emitters arrange back to front. Fully transparent commands are dropped
// before they reach the GPU.
func submitCommands(dst *ebiten.Image, cmds []shapeCommand) {
	for i := range cmds {
		c := &cmds[i]
		if c.color.A <= 0 {
			continue
		}
		clr := c.color.toRGBA()
		switch c.op {
		case opLine:
			vector.StrokeLine(dst, c.x1, c.y1, c.x2, c.y2, c.width, clr, true)
		case opCircle:
			vector.DrawFilledCircle(dst, c.x1, c.y1, c.radius, clr, true)
		case opRect:
			vector.DrawFilledRect(dst, c.x1, c.y1, c.x2, c.y2, clr, true)
		}
	}
}
