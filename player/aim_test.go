package player

import (
	stdmath "math"
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestFacingFor(t *testing.T) {
	tests := []struct {
		angle float64
		want  Facing
	}{
		{0, Left},
		{90, Down},
		{180, Right},
		{270, Up},
		{44, Left},
		{46, Down},
		{45, Down},
		{134.9, Down},
		{135, Right},
		{225, Up},
		{315, Left},
		{359.9, Left},
		{-45, Left},
		{-46, Up},
		{405, Down},
	}
	for _, tt := range tests {
		if got := FacingFor(tt.angle); got != tt.want {
			t.Errorf("FacingFor(%v): expected %s, got %s", tt.angle, tt.want, got)
		}
	}
}

func TestAimAngle(t *testing.T) {
	player := math.Vec2{X: 50, Y: 50}
	tests := []struct {
		name    string
		pointer math.Vec2
		want    float64
	}{
		{"pointer right", math.Vec2{X: 80, Y: 50}, 180},
		{"pointer left", math.Vec2{X: 10, Y: 50}, 0},
		{"pointer above", math.Vec2{X: 50, Y: 90}, 270},
		{"pointer below", math.Vec2{X: 50, Y: 0}, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AimAngle(tt.pointer, player); stdmath.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPointAlong(t *testing.T) {
	origin := math.Vec2{X: 1, Y: 1}
	front := PointAlong(origin, 180, true, 3)
	if stdmath.Abs(front.X-4) > 1e-9 || stdmath.Abs(front.Y-1) > 1e-9 {
		t.Errorf("expected front point (4, 1), got %v", front)
	}
	back := PointAlong(origin, 180, false, 2)
	if stdmath.Abs(back.X+1) > 1e-9 || stdmath.Abs(back.Y-1) > 1e-9 {
		t.Errorf("expected back point (-1, 1), got %v", back)
	}
}

func TestDetectionBox(t *testing.T) {
	cfg := testConfig()
	box := DetectionBox(math.Vec2{}, 270, cfg)
	if stdmath.Abs(box.Center.X) > 1e-9 || stdmath.Abs(box.Center.Y-3) > 1e-9 {
		t.Errorf("expected centre (0, 3), got %v", box.Center)
	}
	if box.Size.X != 5.3 || box.Size.Y != 1.7 {
		t.Errorf("expected size 5.3x1.7, got %v", box.Size)
	}
	if stdmath.Abs(box.Rotation-90) > 1e-9 {
		t.Errorf("expected rotation 90, got %v", box.Rotation)
	}
}
