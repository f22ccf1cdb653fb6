package player

import (
	stdmath "math"

	"github.com/automoto/nightlight/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// AimAngle returns the light rotation in degrees for a pointer and the
// player's screen position. The light sprite points backwards, so the raw
// angle is rotated by 180 degrees to face the pointer.
func AimAngle(pointer, playerScreen math.Vec2) float64 {
	raw := gamemath.RadToDeg(stdmath.Atan2(pointer.Y-playerScreen.Y, pointer.X-playerScreen.X))
	return gamemath.NormalizeDegrees(raw - 180)
}

// FacingFor buckets an aim angle. Lower bounds are inclusive.
func FacingFor(angle float64) Facing {
	a := gamemath.NormalizeDegrees(angle)
	switch {
	case a >= 45 && a < 135:
		return Down
	case a >= 135 && a < 225:
		return Right
	case a >= 225 && a < 315:
		return Up
	default:
		return Left
	}
}

// PointAlong returns the point offset units from origin in front of the light
// (toward the pointer) or behind it.
func PointAlong(origin math.Vec2, angle float64, front bool, offset float64) math.Vec2 {
	if front {
		angle += 180
	}
	x, y := gamemath.PointAt(origin.X, origin.Y, angle, offset)
	return math.Vec2{X: x, Y: y}
}

// Box is an oriented rectangle in world space.
type Box struct {
	Center   math.Vec2
	Size     math.Vec2
	Rotation float64 // degrees
}

// DetectionBox places the kill area ahead of the player along the aim.
func DetectionBox(origin math.Vec2, angle float64, cfg Config) Box {
	return Box{
		Center:   PointAlong(origin, angle, true, cfg.BoxOffset),
		Size:     math.Vec2{X: cfg.BoxWidth, Y: cfg.BoxHeight},
		Rotation: gamemath.NormalizeDegrees(angle + 180),
	}
}
