package spatialmath

import "math"

// Segment is the finite piece of a line between two endpoints. It caches its squared length, which
// the intersection code asks for constantly.
type Segment struct {
	p1, p2 Point
	sqLen  float64
}

// NewSegment returns the segment from p1 to p2.
func NewSegment(p1, p2 Point) Segment {
	return Segment{p1: p1, p2: p2, sqLen: p1.SqDist(p2)}
}

// P1 returns the first endpoint.
func (s Segment) P1() Point {
	return s.p1
}

// P2 returns the second endpoint.
func (s Segment) P2() Point {
	return s.p2
}

// SqLen returns the squared length of the segment.
func (s Segment) SqLen() float64 {
	return s.sqLen
}

// Validity is the worst validity of the two endpoints.
func (s Segment) Validity() Validity {
	return worst(s.p1.Validity(), s.p2.Validity(), validityOf(s.sqLen))
}

// IsValid reports whether both endpoints and the cached length are finite.
func (s Segment) IsValid() bool {
	return s.Validity() == Valid
}

// consistent checks that the cached squared length matches the endpoints.
func (s Segment) consistent() bool {
	return !s.IsValid() || ApproxEqual(s.sqLen, s.p1.SqDist(s.p2), SqDistTolerance)
}

// Line returns the line through the segment. Segments shorter than CoordTolerance give an invalid line.
func (s Segment) Line() Line {
	return NewLine(s.p2.Sub(s.p1), s.p1)
}

// LinearContains reports whether p lies within the segment, assuming p is already known to be on the
// segment's line. A point counts when it equals an endpoint or when neither endpoint is farther from
// it than the segment is long.
func (s Segment) LinearContains(p Point) bool {
	if p.Equal(s.p1) || p.Equal(s.p2) {
		return true
	}
	limit := s.sqLen + float64(SqDistTolerance)
	return p.SqDist(s.p1) <= limit && p.SqDist(s.p2) <= limit
}

// Contains reports whether p lies on the segment.
func (s Segment) Contains(p Point) bool {
	line := s.Line()
	if !line.IsValid() {
		return p.Equal(s.p1)
	}
	return line.Contains(p) && s.LinearContains(p)
}

// IntersectPlane returns the point where the segment crosses pl. It returns an invalid point when
// the segment is parallel to pl, misses it, or is too short to define a direction.
func (s Segment) IntersectPlane(pl Plane) Point {
	cross := s.Line().IntersectPlane(pl)
	if !s.LinearContains(cross) {
		return InvalidPoint()
	}
	return cross
}

// IntersectLine returns the point where the segment crosses l, or an invalid point.
func (s Segment) IntersectLine(l Line) Point {
	return l.IntersectSegment(s)
}

// longestSegment returns whichever of the segments is longest, preferring earlier ones on ties.
func longestSegment(segs ...Segment) Segment {
	best := segs[0]
	for _, s := range segs[1:] {
		if s.sqLen > best.sqLen || math.IsNaN(best.sqLen) {
			best = s
		}
	}
	return best
}
