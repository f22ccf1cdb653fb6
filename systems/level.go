package systems

import (
	"sort"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DrawLevel fills the background, the floor of the level and, with debug
// boxes on, the waypoint chains the spawners walk.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	v, ok := currentView(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	// top left corner in draw coordinates is the world's (0, height)
	x, y := v.point(math.Vec2{X: 0, Y: level.Height})
	vector.FillRect(screen, x, y, v.length(level.Width), v.length(level.Height), cfg.UI.FloorColor, false)

	if !debugEnabled(ecs) {
		return
	}
	ids := make([]int, 0, len(level.Nodes))
	for id := range level.Nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		node := level.Nodes[id]
		next, ok := level.Nodes[node.Next]
		if !ok {
			continue
		}
		x0, y0 := v.point(math.Vec2{X: node.Position.X, Y: node.Position.Y})
		x1, y1 := v.point(math.Vec2{X: next.Position.X, Y: next.Position.Y})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, cfg.UI.NodeColor, false)
		vector.FillCircle(screen, x0, y0, 2, cfg.UI.NodeColor, false)
	}
}
