// Package ecs provides ECS adapters for meadow gardens.
//
// The primary adapters are [NewPopulation], which creates one entity per
// generated plant in a [Donburi] world, and [UpdateGrowth], which refreshes
// every entity's growth component each tick through a meadow.GrowthPool.
// Plants whose flowers reach full openness publish to [BloomEventType];
// subscribe in your ECS systems to react to blooms.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.NewPopulation(world, garden.Plants())
//	err := ecs.UpdateGrowth(world, t, pool, meadow.DefaultPhaseConfig())
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
