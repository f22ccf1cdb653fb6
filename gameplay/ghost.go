package gameplay

import (
	stdmath "math"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/gamemath"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/automoto/nightlight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// UpdateGhosts drifts ghosts toward the player with a sideways wobble.
// Attacking ghosts finish their lunge and vanish. The rest hold still while
// the player is scared; everything freezes once the player is dead.
func UpdateGhosts(w donburi.World, dt float64) {
	mode := PlayerMode(w)
	if mode == player.Dead {
		return
	}
	space := spaceOf(w)
	if space == nil {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	target := spatial.Center(components.Object.Get(playerEntry).Object)

	var vanished []*donburi.Entry
	tags.Ghost.Each(w, func(entry *donburi.Entry) {
		g := components.Ghost.Get(entry)
		obj := components.Object.Get(entry).Object
		pos := spatial.Center(obj)

		if g.Attacking {
			g.AttackTimer -= dt
			step := cfg.Ghost.AttackSpeed * dt
			space.MoveTo(obj, math.Vec2{X: pos.X + g.Lunge.X*step, Y: pos.Y + g.Lunge.Y*step})
			if g.AttackTimer <= 0 {
				vanished = append(vanished, entry)
			}
			return
		}
		if mode == player.Scared {
			return
		}

		g.Age += dt
		dx, dy := gamemath.CalculateSeekVelocity(pos.X, pos.Y, target.X, target.Y, 1)
		forward := cfg.Ghost.Speed * dt
		side := stdmath.Sin(g.Age*cfg.Ghost.WobbleRate*2*stdmath.Pi) * cfg.Ghost.WobbleAmount * dt
		space.MoveTo(obj, math.Vec2{
			X: pos.X + dx*forward - dy*side,
			Y: pos.Y + dy*forward + dx*side,
		})
	})

	for _, entry := range vanished {
		space.Remove(components.Object.Get(entry).Object)
		w.Remove(entry.Entity())
	}
}
