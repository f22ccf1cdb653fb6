package factory

import (
	"github.com/automoto/nightlight/archetypes"
	"github.com/automoto/nightlight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

const banishDuration = 0.5

// SpawnBanish leaves a fading puff where a ghost was burnt.
func SpawnBanish(w donburi.World, pos math.Vec2) *donburi.Entry {
	puff := archetypes.Banish.Spawn(w)
	components.Banish.SetValue(puff, components.BanishData{
		Position: pos,
		Duration: banishDuration,
	})
	return puff
}
