package spatialmath

import "math"

// Line is an infinite line stored as an anchor point and a direction. The direction is scaled so that
// its largest component has magnitude 1.
type Line struct {
	dir Vector
	p   Point
}

// NewLine returns the line through p with direction dir. A direction equal to zero within
// CoordTolerance yields an invalid line.
func NewLine(dir Vector, p Point) Line {
	if dir.nearZero(CoordTolerance) {
		return Line{dir: InvalidVector(), p: p}
	}
	return Line{dir: dir.Scaled(), p: p}
}

// Dir returns the scaled direction of the line.
func (l Line) Dir() Vector {
	return l.dir
}

// P returns the anchor point of the line.
func (l Line) P() Point {
	return l.p
}

// Validity is the worst validity of the direction and the anchor.
func (l Line) Validity() Validity {
	return worst(l.dir.Validity(), l.p.Validity())
}

// IsValid reports whether the line is fully defined.
func (l Line) IsValid() bool {
	return l.Validity() == Valid
}

// consistent checks that a valid line never carries a zero direction.
func (l Line) consistent() bool {
	return !l.IsValid() || !l.dir.nearZero(CoordTolerance)
}

// Contains reports whether q lies on the line within CoordTolerance.
func (l Line) Contains(q Point) bool {
	return q.Sub(l.p).Cross(l.dir).nearZero(CoordTolerance)
}

// ParallelTo reports whether the two lines have the same direction up to sign.
func (l Line) ParallelTo(m Line) bool {
	return l.dir.Cross(m.dir).nearZero(CrossTolerance)
}

// Equal reports whether l and m are the same line.
func (l Line) Equal(m Line) bool {
	return m.Contains(l.p) && m.Contains(l.p.Add(l.dir))
}

// IntersectLine returns the single point shared by l and m. Parallel, skew and coincident lines have
// no single crossing point and give an invalid point.
func (l Line) IntersectLine(m Line) Point {
	// Solve a*k1 + b*k2 + c*k3 = d with c orthogonal to both directions. The lines cross when the
	// system is solvable with k3 = 0, i.e. d lies in the plane spanned by a and b.
	a := l.dir
	b := m.dir
	c := a.Cross(b).Scaled()
	d := m.p.Sub(l.p)

	det := Det(a, b, c)
	if !(math.Abs(det) >= float64(DetTolerance)) || !nearZero(Det(a, b, d), CoordTolerance) {
		return InvalidPoint()
	}
	k := Det(d, b, c) / det
	return l.p.Add(a.Mul(k))
}

// IntersectPlane returns the point where the line crosses pl. Lines parallel to the plane, including
// lines lying in it, give an invalid point.
func (l Line) IntersectPlane(pl Plane) Point {
	dirNormal := l.dir.Dot(pl.n)
	if !(math.Abs(dirNormal) >= float64(DotTolerance)) {
		return InvalidPoint()
	}
	k := -pl.SignedDistance(l.p) / dirNormal
	return l.p.Add(l.dir.Mul(k))
}

// IntersectSegment returns the point where the line crosses s, or an invalid point when there is no
// single crossing point on the finite segment.
func (l Line) IntersectSegment(s Segment) Point {
	cross := l.IntersectLine(s.Line())
	if !s.LinearContains(cross) {
		return InvalidPoint()
	}
	return cross
}
