package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/fonts"
	"github.com/automoto/nightlight/gameplay"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(e *ecs.ECS) {
	session := gameplay.Session(e.World)
	if session == nil {
		return
	}
	if GetOrCreateInput(e).JustPressed(cfg.ActionToggleDebug) {
		session.ShowDebug = !session.ShowDebug
	}
}

func debugEnabled(e *ecs.ECS) bool {
	session := gameplay.Session(e.World)
	return session != nil && session.ShowDebug
}

// DrawDebug outlines every collision box, the flash detection box and the
// player's state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled(ecs) {
		return
	}
	v, ok := currentView(ecs.World)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Space().Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(spatial.TagPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(spatial.TagGhost) {
				c = color.RGBA{255, 0, 0, 255}
			} else if obj.HasTags(spatial.TagSpawner) {
				c = color.RGBA{128, 0, 255, 255}
			}
			// world boxes grow upward, so the top edge is Y+H
			x, y := v.point(math.Vec2{X: obj.X, Y: obj.Y + obj.H})
			vector.StrokeRect(screen, x, y, v.length(obj.W), v.length(obj.H), 1, c, false)
		}
	}

	m := gameplay.Machine(ecs.World)
	if m == nil {
		return
	}
	state := m.State()
	box := player.DetectionBox(playerPosition(ecs), state.AimAngle, player.DefaultConfig())
	corners := spatial.Corners(box.Center, box.Size, box.Rotation)
	for i := range corners {
		x0, y0 := v.point(corners[i])
		x1, y1 := v.point(corners[(i+1)%len(corners)])
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.UI.DebugBoxColor, false)
	}

	info := fmt.Sprintf("%s inv=%t lives=%d facing=%s aim=%.0f cone=%.1f spot=%.2f actions=%d",
		state.Mode, state.Invincible, state.Lives, state.Facing, state.AimAngle,
		state.ConeIntensity, state.SpotIntensity, m.Scheduler().Len())
	text.Draw(screen, info, fonts.Small.Get(), int(cfg.UI.HUDMargin), cfg.C.Height-int(cfg.UI.HUDMargin), cfg.UI.DebugBoxColor)
}

func playerPosition(ecs *ecs.ECS) math.Vec2 {
	pos, _ := gameplay.PlayerPosition(ecs.World)
	return pos
}
