package factory

import (
	"github.com/automoto/nightlight/archetypes"
	"github.com/automoto/nightlight/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera at home with the given orthographic size.
func CreateCamera(w donburi.World, home math.Vec2, size float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Position: home,
		Size:     size,
	})
	return camera
}
