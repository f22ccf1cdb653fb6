package factory

import (
	"github.com/automoto/nightlight/archetypes"
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer adds the player's body at pos. The state machine is attached
// separately once its ports can reach the rest of the world.
func CreatePlayer(w donburi.World, space *spatial.World, pos math.Vec2) *donburi.Entry {
	p := archetypes.Player.Spawn(w)

	obj := space.AddBox(pos, cfg.Movement.CollisionSize, p, spatial.TagPlayer)
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	components.Player.SetValue(p, components.PlayerData{
		ConeIntensity:     cfg.Flashlight.ConeIntensity,
		SpotIntensity:     cfg.Flashlight.SpotIntensity,
		Visible:           true,
		Facing:            player.Left,
		Mode:              player.Normal,
		MovementEnabled:   true,
		FlashlightEnabled: true,
	})
	return p
}
