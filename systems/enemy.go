package systems

import (
	"github.com/automoto/nightlight/gameplay"
	"github.com/yohamta/donburi/ecs"
)

func UpdateSpawners(e *ecs.ECS) {
	gameplay.UpdateSpawners(e.World, step())
}

func UpdateGhosts(e *ecs.ECS) {
	gameplay.UpdateGhosts(e.World, step())
}
