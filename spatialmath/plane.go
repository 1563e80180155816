package spatialmath

import "math"

// Plane is the set of points P with n·P + d = 0, where n is a unit normal.
type Plane struct {
	n Vector
	d float64
}

func invalidPlane() Plane {
	return Plane{n: InvalidVector(), d: math.NaN()}
}

// NewPlane returns the plane n·P + d = 0, normalized so that n has unit length. A zero normal yields an
// invalid plane.
func NewPlane(n Vector, d float64) Plane {
	if n.nearZero(CoordTolerance) {
		return invalidPlane()
	}
	length := n.Len()
	return Plane{n: n.Div(length), d: d / length}
}

// PlaneFromPoints returns the plane through a, b and c. Collinear or coincident points yield an
// invalid plane.
func PlaneFromPoints(a, b, c Point) Plane {
	n := b.Sub(a).Scaled().Cross(c.Sub(b).Scaled())
	if n.nearZero(CrossTolerance) {
		return invalidPlane()
	}
	n = n.Div(n.Len())
	return Plane{n: n, d: -n.Dot(Vector(a))}
}

// Normal returns the unit normal of the plane.
func (pl Plane) Normal() Vector {
	return pl.n
}

// D returns the offset term of the plane equation.
func (pl Plane) D() float64 {
	return pl.d
}

// Validity is the worst validity of the normal and the offset.
func (pl Plane) Validity() Validity {
	return worst(pl.n.Validity(), validityOf(pl.d))
}

// IsValid reports whether the plane is fully defined.
func (pl Plane) IsValid() bool {
	return pl.Validity() == Valid
}

// consistent checks that a valid plane never carries a zero normal.
func (pl Plane) consistent() bool {
	return !pl.IsValid() || !pl.n.nearZero(CoordTolerance)
}

// SignedDistance returns n·p + d, the distance from p to the plane signed by the side p is on.
func (pl Plane) SignedDistance(p Point) float64 {
	return pl.n.Dot(Vector(p)) + pl.d
}

// Contains reports whether p lies on the plane within CoordTolerance.
func (pl Plane) Contains(p Point) bool {
	return nearZero(pl.SignedDistance(p), CoordTolerance)
}
