// Package ecs provides ECS adapters for meadow.
package ecs

import (
	"fmt"

	"github.com/meadowkit/meadow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// PlantComponent carries the generated plant on each entity. The value is
// set once by NewPopulation and never changes afterwards.
var PlantComponent = donburi.NewComponentType[meadow.Plant]()

// GrowthComponent carries the plant's current growth factors. UpdateGrowth
// rewrites it every tick.
var GrowthComponent = donburi.NewComponentType[meadow.Growth]()

// BloomEvent is published when a plant's flower reaches full openness.
// Scrubbing playback backwards and forwards past the bloom point publishes
// again; the event marks each upward crossing, not a one-time state.
type BloomEvent struct {
	Entity donburi.Entity
	Plant  meadow.Plant
	Time   float64
}

// BloomEventType is the Donburi event type for bloom notifications.
// Subscribe to it in your ECS systems and drain with ProcessEvents.
var BloomEventType = events.NewEventType[BloomEvent]()

var plantQuery = donburi.NewQuery(filter.Contains(PlantComponent, GrowthComponent))

// NewPopulation creates one entity per plant, each with a plant and a
// growth component. Growth starts at zero; call UpdateGrowth to bring the
// population to a playback time.
func NewPopulation(w donburi.World, plants []meadow.Plant) []donburi.Entity {
	entities := w.CreateMany(len(plants), PlantComponent, GrowthComponent)
	for i, e := range entities {
		PlantComponent.SetValue(w.Entry(e), plants[i])
	}
	return entities
}

// UpdateGrowth recomputes every plant entity's growth at the given playback
// time. The whole pass runs inside one pool frame, so pooled records are
// borrowed and released in bulk; only the copied component values survive.
// Entities whose flowers open fully this call publish a BloomEvent.
func UpdateGrowth(w donburi.World, time float64, pool *meadow.GrowthPool, cfg meadow.PhaseConfig) error {
	pool.BeginFrame()
	var err error
	plantQuery.Each(w, func(entry *donburi.Entry) {
		if err != nil {
			return
		}
		plant := PlantComponent.GetValue(entry)
		g, acquireErr := pool.AcquireFor(time, plant.Delay, plant.Duration, cfg)
		if acquireErr != nil {
			err = acquireErr
			return
		}
		prev := GrowthComponent.GetValue(entry)
		if prev.Flower < 1 && g.Flower >= 1 {
			BloomEventType.Publish(w, BloomEvent{
				Entity: entry.Entity(),
				Plant:  plant,
				Time:   time,
			})
		}
		GrowthComponent.SetValue(entry, *g)
	})
	pool.EndFrame()
	if err != nil {
		return fmt.Errorf("update growth: %w", err)
	}
	return nil
}
