package octree

import (
	"fmt"
	"math"

	"go.viam.com/triangles/spatialmath"
)

// SpaceDomain is an axis aligned box given by its lower and upper corners. Either both corners are
// valid and upper is not below lower on any axis, or both corners are invalid.
type SpaceDomain struct {
	lower, upper spatialmath.Point
}

func invalidDomain() SpaceDomain {
	return SpaceDomain{lower: spatialmath.InvalidPoint(), upper: spatialmath.InvalidPoint()}
}

// NewSpaceDomain returns the box between lower and upper. Corners that are not valid, or an upper
// corner below the lower one on some axis, give an invalid domain.
func NewSpaceDomain(lower, upper spatialmath.Point) SpaceDomain {
	if !lower.IsValid() || !upper.IsValid() {
		return invalidDomain()
	}
	for axis := 0; axis < spatialmath.Axes; axis++ {
		if upper.Coord(axis) < lower.Coord(axis) {
			return invalidDomain()
		}
	}
	return SpaceDomain{lower: lower, upper: upper}
}

// DomainOf returns the smallest domain holding every finite vertex coordinate of the group. A group
// without any has an invalid domain.
func DomainOf(group spatialmath.IndexedGroup) SpaceDomain {
	return NewSpaceDomain(lowerBound(group), upperBound(group))
}

func upperBound(group spatialmath.IndexedGroup) spatialmath.Point {
	return bound(group, math.Inf(-1), func(best, c float64) bool { return c > best })
}

func lowerBound(group spatialmath.IndexedGroup) spatialmath.Point {
	return bound(group, math.Inf(1), func(best, c float64) bool { return c < best })
}

// bound folds every finite vertex coordinate with better, per axis. Axes without any finite coordinate
// keep the infinite start value, which makes the bound invalid.
func bound(group spatialmath.IndexedGroup, start float64, better func(best, c float64) bool) spatialmath.Point {
	if len(group) == 0 {
		return spatialmath.InvalidPoint()
	}
	res := spatialmath.NewPoint(start, start, start)
	for _, t := range group {
		for _, v := range t.Vertices() {
			for axis := 0; axis < spatialmath.Axes; axis++ {
				c := v.Coord(axis)
				if math.IsNaN(c) || math.IsInf(c, 0) {
					continue
				}
				if better(res.Coord(axis), c) {
					res = res.WithCoord(axis, c)
				}
			}
		}
	}
	return res
}

// Lower returns the lower corner.
func (d SpaceDomain) Lower() spatialmath.Point {
	return d.lower
}

// Upper returns the upper corner.
func (d SpaceDomain) Upper() spatialmath.Point {
	return d.upper
}

// IsValid reports whether the domain has valid corners.
func (d SpaceDomain) IsValid() bool {
	return d.lower.IsValid() && d.upper.IsValid()
}

// Midpoint returns the center of the box.
func (d SpaceDomain) Midpoint() spatialmath.Point {
	return d.lower.Add(d.upper.Sub(d.lower).Div(2))
}

// Contains reports whether p lies in the box, widened by CoordTolerance on every side.
func (d SpaceDomain) Contains(p spatialmath.Point) bool {
	tol := float64(spatialmath.CoordTolerance)
	for axis := 0; axis < spatialmath.Axes; axis++ {
		c := p.Coord(axis)
		if !(c >= d.lower.Coord(axis)-tol && c <= d.upper.Coord(axis)+tol) {
			return false
		}
	}
	return true
}

// Crosses reports whether the bounding box of t overlaps the domain, widened by CrossingReach. It is
// conservative: a triangle that Crosses could match with anything inside the box always crosses it,
// while some triangles that only pass near a corner cross it too. Invalid domains cross nothing.
func (d SpaceDomain) Crosses(t *spatialmath.Triangle) bool {
	if !d.IsValid() {
		return false
	}
	tol := float64(spatialmath.CrossingReach)
	for axis := 0; axis < spatialmath.Axes; axis++ {
		minC, maxC := math.Inf(1), math.Inf(-1)
		for _, v := range t.Vertices() {
			minC = math.Min(minC, v.Coord(axis))
			maxC = math.Max(maxC, v.Coord(axis))
		}
		if !(minC <= d.upper.Coord(axis)+tol && maxC >= d.lower.Coord(axis)-tol) {
			return false
		}
	}
	return true
}

func (d SpaceDomain) String() string {
	return fmt.Sprintf("[%v, %v]", d.lower, d.upper)
}
