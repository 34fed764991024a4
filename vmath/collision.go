package vmath

// Rect is an axis-aligned rectangle with origin at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside or on the rectangle
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// OverlapsCircle reports whether a circle intersects the rectangle
func (r Rect) OverlapsCircle(cx, cy, radius float64) bool {
	closestX := Clamp(cx, r.X, r.X+r.W)
	closestY := Clamp(cy, r.Y, r.Y+r.H)
	return DistanceSq(cx, cy, closestX, closestY) < radius*radius
}

// CircleRectPenetration returns the push-out normal and depth of a circle overlapping r
// A centre inside the rectangle exits through the nearest face
func CircleRectPenetration(cx, cy, radius float64, r Rect) (nx, ny, depth float64, hit bool) {
	closestX := Clamp(cx, r.X, r.X+r.W)
	closestY := Clamp(cy, r.Y, r.Y+r.H)

	dx := cx - closestX
	dy := cy - closestY
	distSq := dx*dx + dy*dy
	if distSq >= radius*radius {
		return 0, 0, 0, false
	}

	dist := Magnitude(dx, dy)
	if dist == 0 {
		nx, ny, face := -1.0, 0.0, cx-r.X
		if d := r.X + r.W - cx; d < face {
			nx, ny, face = 1, 0, d
		}
		if d := cy - r.Y; d < face {
			nx, ny, face = 0, -1, d
		}
		if d := r.Y + r.H - cy; d < face {
			nx, ny, face = 0, 1, d
		}
		return nx, ny, face + radius, true
	}
	return dx / dist, dy / dist, radius - dist, true
}

// CirclesOverlap reports whether two circles intersect
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	rs := r1 + r2
	return DistanceSq(x1, y1, x2, y2) < rs*rs
}
