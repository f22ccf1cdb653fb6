package systems

import (
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/gameplay"
	"github.com/yohamta/donburi/ecs"
)

// step is the fixed simulation step; ebiten calls Update TickRate times a second.
func step() float64 {
	return 1 / float64(cfg.C.TickRate)
}

// UpdateMovement walks the player with the movement keys.
func UpdateMovement(e *ecs.ECS) {
	gameplay.UpdateMovement(e.World, step())
}

// UpdatePlayer advances the player's state machine.
func UpdatePlayer(e *ecs.ECS) {
	gameplay.UpdatePlayer(e.World, step())
}
