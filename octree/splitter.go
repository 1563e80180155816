package octree

import (
	"gonum.org/v1/gonum/stat"

	"go.viam.com/triangles/spatialmath"
)

// Octant identifies one of the eight children of a split node. Bit i is set when the coordinate on
// axis i is above the split point.
type Octant int8

// Several is the octant of anything that cannot be placed in a single octant: points too close to a
// split plane and triangles whose vertices fall in different octants.
const Several Octant = -1

// Octants is the number of children of a split node.
const Octants = 1 << spatialmath.Axes

// PointSplitter divides space into octants around a split point.
type PointSplitter struct {
	split spatialmath.Point
}

// NewPointSplitter splits around the mean of the valid centroids of the group, or around the middle
// of the domain when there are none.
func NewPointSplitter(group spatialmath.IndexedGroup, domain SpaceDomain) PointSplitter {
	var coords [spatialmath.Axes][]float64
	for _, t := range group {
		c := t.Centroid()
		if !c.IsValid() {
			continue
		}
		for axis := range coords {
			coords[axis] = append(coords[axis], c.Coord(axis))
		}
	}
	if len(coords[0]) == 0 {
		return PointSplitter{split: domain.Midpoint()}
	}
	return PointSplitter{split: spatialmath.NewPoint(
		stat.Mean(coords[0], nil),
		stat.Mean(coords[1], nil),
		stat.Mean(coords[2], nil),
	)}
}

// Split returns the split point.
func (s PointSplitter) Split() spatialmath.Point {
	return s.split
}

// OctantOf classifies p. Points that are not valid, or that are within CrossingReach of the split
// point on some axis, are in Several octants, so that no two triangles Crosses could match end up in
// different children.
func (s PointSplitter) OctantOf(p spatialmath.Point) Octant {
	if !p.IsValid() || !s.split.IsValid() {
		return Several
	}
	var o Octant
	for axis := 0; axis < spatialmath.Axes; axis++ {
		switch spatialmath.Compare(p.Coord(axis), s.split.Coord(axis), spatialmath.CrossingReach) {
		case spatialmath.Greater:
			o |= 1 << axis
		case spatialmath.Less:
		case spatialmath.Equal, spatialmath.Unordered:
			return Several
		}
	}
	return o
}

// OctantOfTriangle returns the octant holding all three vertices of t, or Several.
func (s PointSplitter) OctantOfTriangle(t *spatialmath.Triangle) Octant {
	o := s.OctantOf(t.Vertex(0))
	if o == Several {
		return Several
	}
	for i := 1; i < 3; i++ {
		if s.OctantOf(t.Vertex(i)) != o {
			return Several
		}
	}
	return o
}

// ChildDomain returns the part of parent lying in octant o: on each axis it runs from the split point
// to the parent's upper corner when the octant's bit is set, and from the parent's lower corner to the
// split point otherwise.
func (s PointSplitter) ChildDomain(parent SpaceDomain, o Octant) SpaceDomain {
	if o == Several {
		return invalidDomain()
	}
	lower, upper := parent.lower, parent.upper
	for axis := 0; axis < spatialmath.Axes; axis++ {
		if o&(1<<axis) != 0 {
			lower = lower.WithCoord(axis, s.split.Coord(axis))
		} else {
			upper = upper.WithCoord(axis, s.split.Coord(axis))
		}
	}
	return NewSpaceDomain(lower, upper)
}
