package components

import "github.com/yohamta/donburi"

// SpawnerData releases a ghost every Interval seconds after an initial wait
// while walking toward Node.
type SpawnerData struct {
	ID       int
	Timer    float64 // seconds until the next ghost
	Interval float64
	Node     int
	Spawned  int
}

var Spawner = donburi.NewComponentType[SpawnerData]()
