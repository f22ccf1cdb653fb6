package systems

import (
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/gameplay"
	"github.com/automoto/nightlight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEffects(e *ecs.ECS) {
	gameplay.UpdateEffects(e.World, step())
}

// DrawEffects renders banish puffs growing and fading out.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs.World)
	if !ok {
		return
	}
	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Banish.Get(e)
		t := b.Elapsed / b.Duration
		if t > 1 {
			t = 1
		}
		x, y := v.point(b.Position)
		c := cfg.UI.ConeColor
		c.A = uint8(200 * (1 - t))
		vector.StrokeCircle(screen, x, y, v.length(0.3+0.7*t), 2, c, true)
	})
}
