// Package leveldata provides TMX level parsing shared between the client and
// the headless simulator. It has no dependencies on ebitengine, donburi, or
// resolv; pure data only.
package leveldata

// Level holds everything the game needs from a TMX file, in world units with
// Y growing upward.
type Level struct {
	Name          string
	Width         float64
	Height        float64
	PixelsPerUnit float64 // tile size in the TMX

	PlayerSpawn Point
	Spawners    []Spawner
	Nodes       map[int]Node
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Unset marks a timing the level leaves to the configured default.
const Unset = -1

// Spawner releases ghosts while walking a node chain. A SpawnWait of 0
// releases the first ghost at once; negative timings are Unset. An interval
// that is not positive also falls back to the default.
type Spawner struct {
	ID            int
	Position      Point
	SpawnWait     float64
	SpawnInterval float64
	FirstNode     int
}

// Node is a waypoint. Next is the node to walk to after arriving here.
type Node struct {
	ID       int
	Position Point
	Next     int
}

// Center returns the middle of the level.
func (l *Level) Center() Point {
	return Point{X: l.Width / 2, Y: l.Height / 2}
}
