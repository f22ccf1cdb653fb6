package factory

import (
	"github.com/automoto/nightlight/archetypes"
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/shared/leveldata"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateSpawner adds a level spawner. Unset timings fall back to the
// configured defaults; a zero wait releases the first ghost on the next step.
func CreateSpawner(w donburi.World, space *spatial.World, s leveldata.Spawner) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(w)

	wait := s.SpawnWait
	if wait < 0 {
		wait = cfg.Spawner.SpawnWait
	}
	interval := s.SpawnInterval
	if interval <= 0 {
		interval = cfg.Spawner.SpawnInterval
	}

	pos := math.Vec2{X: s.Position.X, Y: s.Position.Y}
	obj := space.AddBox(pos, cfg.Spawner.DetectRange, spawner, spatial.TagSpawner)
	components.Object.SetValue(spawner, components.ObjectData{Object: obj})
	components.Spawner.SetValue(spawner, components.SpawnerData{
		ID:       s.ID,
		Timer:    wait,
		Interval: interval,
		Node:     s.FirstNode,
	})
	return spawner
}
