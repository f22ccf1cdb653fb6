package gameplay

import (
	"github.com/automoto/nightlight/components"
	cfg "github.com/automoto/nightlight/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PixelsPerUnit is the screen scale of a camera with the given orthographic
// size on the configured screen.
func PixelsPerUnit(size float64) float64 {
	if size <= 0 {
		return 1
	}
	return float64(cfg.C.Height) / (2 * size)
}

// WorldToScreen maps a world point to screen pixels with Y growing upward.
func WorldToScreen(cam *components.CameraData, p math.Vec2) math.Vec2 {
	ppu := PixelsPerUnit(cam.Size)
	return math.Vec2{
		X: (p.X-cam.Position.X)*ppu + float64(cfg.C.Width)/2,
		Y: (p.Y-cam.Position.Y)*ppu + float64(cfg.C.Height)/2,
	}
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(cam *components.CameraData, s math.Vec2) math.Vec2 {
	ppu := PixelsPerUnit(cam.Size)
	return math.Vec2{
		X: (s.X-float64(cfg.C.Width)/2)/ppu + cam.Position.X,
		Y: (s.Y-float64(cfg.C.Height)/2)/ppu + cam.Position.Y,
	}
}

// TriggerScreenShake starts or strengthens a shake on the camera. The shake
// is a draw offset in pixels; the camera pose itself is left alone.
func TriggerScreenShake(w donburi.World, intensity float64, frames int) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	if entry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(entry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = frames
			shake.Elapsed = 0
		}
		return
	}
	entry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(entry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  frames,
	})
}
