package collision

import (
	"math"

	"go.viam.com/triangles/spatialmath"
)

// boxPadding widens every box before the overlap test.
const boxPadding = float64(spatialmath.CrossingReach)

// box is the axis aligned bounding box of a triangle.
type box struct {
	min, max [spatialmath.Axes]float64
}

func boxOf(t *spatialmath.Triangle) box {
	var b box
	for axis := 0; axis < spatialmath.Axes; axis++ {
		b.min[axis] = math.Inf(1)
		b.max[axis] = math.Inf(-1)
		for _, v := range t.Vertices() {
			c := v.Coord(axis)
			if math.IsNaN(c) {
				// Nothing can be said about an undefined vertex, so it must never be filtered out.
				b.min[axis] = math.Inf(-1)
				b.max[axis] = math.Inf(1)
				break
			}
			b.min[axis] = math.Min(b.min[axis], c)
			b.max[axis] = math.Max(b.max[axis], c)
		}
	}
	return b
}

// boxesOverlap is a separating axis test restricted to the three coordinate axes: the boxes are apart
// iff some axis separates their projections.
func boxesOverlap(a, b box) bool {
	for axis := 0; axis < spatialmath.Axes; axis++ {
		if separatedOn(axis, a, b) {
			return false
		}
	}
	return true
}

func separatedOn(axis int, a, b box) bool {
	return a.max[axis]+boxPadding < b.min[axis] || b.max[axis]+boxPadding < a.min[axis]
}
