package gameplay

import (
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/gamemath"
	"github.com/automoto/nightlight/shared/leveldata"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/automoto/nightlight/systems/factory"
	"github.com/automoto/nightlight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var ghostQuery = donburi.NewQuery(filter.Contains(tags.Ghost))

// UpdateSpawners counts down each spawner's timer, releasing a ghost when it
// runs out, and walks the spawner along its node chain. Spawners hold still
// while the player is scared and stop for good once the player is dead.
func UpdateSpawners(w donburi.World, dt float64) {
	mode := PlayerMode(w)
	if mode == player.Scared || mode == player.Dead {
		return
	}
	space := spaceOf(w)
	level := levelOf(w)
	if space == nil || level == nil {
		return
	}

	ghosts := ghostQuery.Count(w)
	type release struct {
		pos math.Vec2
		id  int
	}
	var releases []release

	tags.Spawner.Each(w, func(entry *donburi.Entry) {
		s := components.Spawner.Get(entry)
		obj := components.Object.Get(entry).Object

		s.Timer -= dt
		if s.Timer < 0 {
			if ghosts < cfg.Spawner.MaxGhosts {
				releases = append(releases, release{pos: spatial.Center(obj), id: s.ID})
				s.Spawned++
				ghosts++
			}
			s.Timer = s.Interval
		}

		walkSpawner(space, level.Nodes, s, obj)
	})

	// created after the query so the spawner iteration is not disturbed
	for _, r := range releases {
		factory.CreateGhost(w, space, r.pos, r.id)
		QueueSound(w, cfg.ClipSpawn)
	}
}

// walkSpawner steps one fixed step toward the current node, or moves on to
// the next node once the spawner is within the detection range on both axes.
func walkSpawner(space *spatial.World, nodes map[int]leveldata.Node, s *components.SpawnerData, obj *resolv.Object) {
	node, ok := nodes[s.Node]
	if !ok {
		return
	}
	pos := spatial.Center(obj)
	target := math.Vec2{X: node.Position.X, Y: node.Position.Y}
	x := gamemath.AxisStep(pos.X, target.X, cfg.Spawner.DetectRange)
	y := gamemath.AxisStep(pos.Y, target.Y, cfg.Spawner.DetectRange)
	if x == 0 && y == 0 {
		s.Node = node.Next
		return
	}
	space.MoveTo(obj, math.Vec2{X: pos.X + x*cfg.Spawner.Speed, Y: pos.Y + y*cfg.Spawner.Speed})
}

// CountGhosts returns the number of ghosts in w.
func CountGhosts(w donburi.World) int {
	return ghostQuery.Count(w)
}
