package systems

import (
	"github.com/automoto/nightlight/gameplay"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions reports ghosts touching the player. It runs before
// UpdatePlayer so contacts are handled on the same step.
func UpdateCollisions(e *ecs.ECS) {
	gameplay.UpdateContacts(e.World)
}
