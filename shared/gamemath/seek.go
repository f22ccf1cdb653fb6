package gamemath

import "math"

// CalculateSeekVelocity returns velocity components to move toward a target at speed.
func CalculateSeekVelocity(x, y, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - x
	dirY := targetY - y
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
