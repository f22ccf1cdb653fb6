package components

import (
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/yohamta/donburi"
)

var Space = donburi.NewComponentType[spatial.World]()
