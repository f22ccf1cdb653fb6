package systems

import (
	"github.com/automoto/nightlight/gameplay"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession keeps the run stats and saves a new best score once the run
// is over.
func UpdateSession(e *ecs.ECS) {
	session := gameplay.Session(e.World)
	if session == nil {
		return
	}
	wasOver := session.Over
	gameplay.UpdateSession(e.World, step())
	if session.Over && !wasOver {
		SaveBestKills(session.BestKills)
	}
}

// IsRunOver reports whether the game over delay has passed.
func IsRunOver(e *ecs.ECS) bool {
	session := gameplay.Session(e.World)
	return session != nil && session.Over
}
