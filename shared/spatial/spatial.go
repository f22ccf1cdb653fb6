// Package spatial wraps a resolv space in world units for overlap queries.
// It is shared by the ebiten client and the headless simulator.
package spatial

import (
	stdmath "math"

	"github.com/automoto/nightlight/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Object tags
const (
	TagPlayer  = "player"
	TagGhost   = "ghost"
	TagSpawner = "spawner"
	TagQuery   = "query"
)

// World is a bounded collision space. Positions are object centres in world
// units with Y growing upward; resolv only sees the bounding boxes.
type World struct {
	space         *resolv.Space
	width, height float64
}

// NewWorld creates a space covering [0, width] x [0, height] with one unit cells.
func NewWorld(width, height float64) *World {
	return &World{
		space:  resolv.NewSpace(int(stdmath.Ceil(width)), int(stdmath.Ceil(height)), 1, 1),
		width:  width,
		height: height,
	}
}

// Space exposes the underlying resolv space.
func (w *World) Space() *resolv.Space { return w.space }

// Size returns the world bounds.
func (w *World) Size() (float64, float64) { return w.width, w.height }

// AddBox adds a square object of the given size centred on pos.
func (w *World) AddBox(pos math.Vec2, size float64, data interface{}, tags ...string) *resolv.Object {
	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = data
	w.space.Add(obj)
	return obj
}

// Remove takes an object out of the space. Removing twice is harmless.
func (w *World) Remove(obj *resolv.Object) {
	if obj == nil || obj.Space == nil {
		return
	}
	obj.Space.Remove(obj)
}

// Center returns the centre of an object.
func Center(obj *resolv.Object) math.Vec2 {
	return math.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

// MoveTo places an object's centre at pos, clamped inside the world, and
// returns where it ended up.
func (w *World) MoveTo(obj *resolv.Object, pos math.Vec2) math.Vec2 {
	x := stdmath.Max(obj.W/2, stdmath.Min(w.width-obj.W/2, pos.X))
	y := stdmath.Max(obj.H/2, stdmath.Min(w.height-obj.H/2, pos.Y))
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
	return math.Vec2{X: x, Y: y}
}

// Touching returns the objects with any of tags whose shapes overlap obj.
func (w *World) Touching(obj *resolv.Object, tags ...string) []*resolv.Object {
	check := obj.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, other := range check.Objects {
		if other == obj || other.Shape == nil {
			continue
		}
		if obj.Shape.Intersection(0, 0, other.Shape) != nil {
			out = append(out, other)
		}
	}
	return out
}

// QueryBox returns the objects with any of tags overlapping a box of size
// centred on center and rotated by rotationDegrees.
func (w *World) QueryBox(center, size math.Vec2, rotationDegrees float64, tags ...string) []*resolv.Object {
	poly := OrientedBox(center, size, rotationDegrees)

	// broad phase over the cells the rotated box's bounds touch
	minX, minY, maxX, maxY := bounds(poly.Transformed())
	probe := resolv.NewObject(minX, minY, maxX-minX, maxY-minY, TagQuery)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, obj := range check.Objects {
		if obj.Shape == nil {
			continue
		}
		if poly.Intersection(0, 0, obj.Shape) != nil {
			out = append(out, obj)
		}
	}
	return out
}

// OrientedBox builds the polygon QueryBox tests against.
func OrientedBox(center, size math.Vec2, rotationDegrees float64) *resolv.ConvexPolygon {
	hw, hh := size.X/2, size.Y/2
	rad := gamemath.DegToRad(rotationDegrees)
	cos, sin := stdmath.Cos(rad), stdmath.Sin(rad)
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	points := make([]float64, 0, 8)
	for _, c := range corners {
		points = append(points, c[0]*cos-c[1]*sin, c[0]*sin+c[1]*cos)
	}
	poly := resolv.NewConvexPolygon(0, 0, points...)
	poly.SetPosition(center.X, center.Y)
	return poly
}

// Corners returns the four corners of an oriented box, for drawing.
func Corners(center, size math.Vec2, rotationDegrees float64) [4]math.Vec2 {
	var out [4]math.Vec2
	for i, p := range OrientedBox(center, size, rotationDegrees).Transformed() {
		if i < 4 {
			out[i] = math.Vec2{X: p.X(), Y: p.Y()}
		}
	}
	return out
}

// Arrived reports whether pos is inside the square detection range around
// target on both axes.
func Arrived(pos, target math.Vec2, detect float64) bool {
	return gamemath.AxisStep(pos.X, target.X, detect) == 0 && gamemath.AxisStep(pos.Y, target.Y, detect) == 0
}
