package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BanishData is the puff left behind when a ghost is burnt by a flash.
type BanishData struct {
	Position math.Vec2
	Elapsed  float64
	Duration float64
}

var Banish = donburi.NewComponentType[BanishData]()

// ScreenShakeData tracks active screen shake on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int
	OffsetX   float64 // current draw offset
	OffsetY   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
