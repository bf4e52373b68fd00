// Package meadow procedurally generates and animates gardens of growing
// plants for [Ebitengine].
//
// A garden is generated deterministically from an integer seed: the same
// seed and configuration always produce an identical plant population, on
// every platform and every run. Plants grow over a fixed timeline in timed
// waves, each plant revealing its stem, leaves, flowers, foliage, and seed
// plumes as staged animation phases.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// drives the garden for you:
//
//	garden := meadow.NewGarden(meadow.Config{Seed: 42}, 800, 600)
//	if err := meadow.Run(garden, meadow.RunConfig{Title: "Meadow"}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, drive the pieces yourself: [Generate] builds the plant
// population, a [GrowthPool] hands out per-frame growth phases, and
// [Garden.Draw] can be called from your own [ebiten.Game]:
//
//	plants := meadow.Generate(cfg)
//	pool := meadow.NewGrowthPool(meadow.PoolConfig{})
//
//	// each frame:
//	pool.BeginFrame()
//	for i := range plants {
//		g, err := pool.AcquireFor(t, plants[i].Delay, plants[i].Duration, phases)
//		// ... hand g to your renderer; g is valid until EndFrame ...
//	}
//	pool.EndFrame()
//
// # Determinism
//
// All randomness flows through [Rand], a seeded generator with a stable
// output sequence. Each generation and each plant derives its own generator
// from the run seed, so populations are reproducible record for record.
// Nothing in the package reads wall clocks or global random state.
//
// # Frame discipline
//
// Growth records are pooled and frame scoped: acquire them between
// [GrowthPool.BeginFrame] and [GrowthPool.EndFrame], read them only within
// that frame, and never retain them. After warmup the whole cycle performs
// no heap allocation. Enable [PoolConfig.Diagnostics] during development to
// catch use-after-release and unmatched frame brackets.
//
// # Key features
//
// Meadow includes 19 plant categories across 147 species with per-species
// visual variation, density and height controls, named palettes and
// presets, a playback controller, wind gusts (via [gween]), drifting
// pollen, PNG export, and ECS integration (via the [Donburi] adapter in
// meadow/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package meadow
