package systems

import (
	"math"

	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/automoto/nightlight/gameplay"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera advances the screen shake. The camera pose itself belongs to
// the player machine.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	updateScreenShake(cameraEntry)
}

// updateScreenShake decays the shake offset and removes the component when done
func updateScreenShake(cameraEntry *donburi.Entry) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	current := shake.Intensity * progress

	shake.OffsetX = math.Sin(float64(shake.Elapsed)*1.1) * current
	shake.OffsetY = math.Cos(float64(shake.Elapsed)*1.3) * current

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// view converts world positions to draw coordinates (Y down) for one frame.
type view struct {
	cam              *components.CameraData
	scale            float64
	offsetX, offsetY float64
}

func currentView(w donburi.World) (view, bool) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return view{}, false
	}
	v := view{cam: components.Camera.Get(entry)}
	v.scale = gameplay.PixelsPerUnit(v.cam.Size)
	if entry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(entry)
		v.offsetX, v.offsetY = shake.OffsetX, shake.OffsetY
	}
	return v, true
}

func (v view) point(p dmath.Vec2) (float32, float32) {
	s := gameplay.WorldToScreen(v.cam, p)
	return float32(s.X + v.offsetX), float32(float64(cfg.C.Height) - s.Y + v.offsetY)
}

func (v view) length(units float64) float32 {
	return float32(units * v.scale)
}
