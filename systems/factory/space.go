package factory

import (
	"github.com/automoto/nightlight/archetypes"
	"github.com/automoto/nightlight/components"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, spatial.NewWorld(width, height))
	return space
}
