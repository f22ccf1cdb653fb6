package spatial

import (
	stdmath "math"

	"github.com/kvartborg/vector"
)

func bounds(points []vector.Vector) (minX, minY, maxX, maxY float64) {
	minX, minY = stdmath.Inf(1), stdmath.Inf(1)
	maxX, maxY = stdmath.Inf(-1), stdmath.Inf(-1)
	for _, p := range points {
		minX = stdmath.Min(minX, p.X())
		minY = stdmath.Min(minY, p.Y())
		maxX = stdmath.Max(maxX, p.X())
		maxY = stdmath.Max(maxY, p.Y())
	}
	return minX, minY, maxX, maxY
}
