// Meadowfield is a stress demo: a lush field across many generations with
// the stats overlay enabled, for watching frame cost as hundreds of plants
// grow in. Playback loops. No external assets are required.
package main

import (
	"log"

	"github.com/meadowkit/meadow"
)

const (
	screenW = 1280
	screenH = 720
)

func main() {
	cfg := meadow.Config{
		Seed:        1,
		Duration:    45,
		Generations: 12,
		Density:     meadow.Lush,
		MaxHeight:   0.9,
		Curve:       meadow.CurveEaseOut,
	}
	garden := meadow.NewGarden(cfg, screenW, screenH)
	garden.Player().SetLoop(true)

	if err := meadow.Run(garden, meadow.RunConfig{
		Title:     "Meadow - Field Demo",
		Width:     screenW,
		Height:    screenH,
		ShowStats: true,
	}); err != nil {
		log.Fatal(err)
	}
}
