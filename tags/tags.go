package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Ghost   = donburi.NewTag().SetName("Ghost")
	Spawner = donburi.NewTag().SetName("Spawner")
	Effect  = donburi.NewTag().SetName("Effect")
)
