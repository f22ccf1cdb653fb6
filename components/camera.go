package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is an orthographic camera. Size is the half height of the view
// in world units, so a smaller size means a closer zoom.
type CameraData struct {
	Position math.Vec2
	Size     float64
}

var Camera = donburi.NewComponentType[CameraData]()
