package components

import (
	"github.com/automoto/nightlight/player"
	"github.com/yohamta/donburi"
)

// PlayerData holds the player's state machine and everything it presents.
// The machine writes the presentation fields through its ports; renderers
// only read them.
type PlayerData struct {
	Machine *player.Machine

	ConeIntensity float64
	SpotIntensity float64
	Visible       bool
	Facing        player.Facing
	Mode          player.Mode

	MovementEnabled   bool
	FlashlightEnabled bool
}

var Player = donburi.NewComponentType[PlayerData]()
