package factory

import (
	"github.com/automoto/nightlight/archetypes"
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateGhost releases a ghost at pos on behalf of a spawner.
func CreateGhost(w donburi.World, space *spatial.World, pos math.Vec2, spawnerID int) *donburi.Entry {
	ghost := archetypes.Ghost.Spawn(w)

	obj := space.AddBox(pos, cfg.Ghost.CollisionSize, ghost, spatial.TagGhost)
	components.Object.SetValue(ghost, components.ObjectData{Object: obj})
	components.Ghost.SetValue(ghost, components.GhostData{
		SpawnerID: spawnerID,
	})
	return ghost
}
