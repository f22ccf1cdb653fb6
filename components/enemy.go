package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// GhostData tracks a ghost drifting toward the player.
type GhostData struct {
	SpawnerID int
	Age       float64 // seconds alive, drives the wobble

	// Attack lunge after touching the player. The ghost vanishes when it ends.
	Attacking   bool
	AttackTimer float64
	Lunge       math.Vec2 // unit direction
}

var Ghost = donburi.NewComponentType[GhostData]()
