package gameplay

import (
	stdmath "math"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/automoto/nightlight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateMovement walks the player with the movement keys while movement is
// enabled. Diagonals are normalised.
func UpdateMovement(w donburi.World, dt float64) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	if !components.Player.Get(entry).MovementEnabled {
		return
	}
	session := sessionOf(w)
	space := spaceOf(w)
	if session == nil || space == nil {
		return
	}
	input := components.Input.Get(session)

	var dx, dy float64
	if input.Pressed(cfg.ActionMoveLeft) {
		dx--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dx++
	}
	if input.Pressed(cfg.ActionMoveUp) {
		dy++
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dy--
	}
	if dx == 0 && dy == 0 {
		return
	}
	l := stdmath.Hypot(dx, dy)
	step := cfg.Movement.Speed * dt / l

	obj := components.Object.Get(entry).Object
	pos := spatial.Center(obj)
	space.MoveTo(obj, math.Vec2{X: pos.X + dx*step, Y: pos.Y + dy*step})
}

// UpdatePlayer advances the player's state machine by dt.
func UpdatePlayer(w donburi.World, dt float64) {
	if m := Machine(w); m != nil {
		m.Tick(dt)
	}
}
