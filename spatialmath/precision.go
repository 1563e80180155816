// Package spatialmath holds the 3D primitives and the tolerance-aware predicates used to test
// triangles for intersection. Predicates return false when any input is invalid. Other operations
// on invalid or degenerate input do not panic, but their results are unspecified.
package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is an absolute comparison tolerance. Which tolerance applies depends on the order of the
// quantity being compared: raw coordinates, squared distances, dot products and determinants of
// scaled vectors all live on different scales.
type Tolerance float64

const (
	// CoordTolerance applies to coordinates and to anything measured in units of length: point
	// equality, plane signed distances and line membership.
	CoordTolerance Tolerance = 1e-3
	// SqDistTolerance applies to squared distances.
	SqDistTolerance Tolerance = 1e-3
	// DotTolerance applies to the dot product of a scaled direction and a unit normal.
	DotTolerance Tolerance = 1e-6
	// CrossTolerance applies to the components of the cross product of two scaled directions.
	CrossTolerance Tolerance = 1e-6
	// DetTolerance applies to 3x3 determinants built from scaled directions.
	DetTolerance Tolerance = 1e-9

	// CrossingReach bounds how far apart two points can be while Crosses still treats them as one
	// crossing point. LinearContains lets a point overshoot a short segment by up to
	// sqrt(SqDistTolerance), and line and plane membership add CoordTolerance on top. Anything that
	// sorts triangles by position must keep triangles closer than this together.
	CrossingReach Tolerance = 0.05
)

// Ordering is the result of a tolerance-aware comparison. It is a partial order: NaN operands are
// Unordered with everything.
type Ordering int8

// The possible outcomes of Compare.
const (
	Unordered Ordering = iota
	Less
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Unordered:
	}
	return "unordered"
}

// ApproxEqual reports whether a and b differ by at most tol. Infinite and NaN operands are never
// equal to anything, including themselves.
func ApproxEqual(a, b float64, tol Tolerance) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return scalar.EqualWithinAbs(a, b, float64(tol))
}

// Compare orders a against b, treating values within tol of each other as Equal.
func Compare(a, b float64, tol Tolerance) Ordering {
	switch {
	case ApproxEqual(a, b, tol):
		return Equal
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Unordered
	}
}

// nearZero is false for NaN.
func nearZero(x float64, tol Tolerance) bool {
	return math.Abs(x) <= float64(tol)
}

// Validity classifies a primitive by the floating point values it holds.
type Validity uint8

const (
	// Valid primitives hold only finite values.
	Valid Validity = iota
	// HalfInvalid primitives hold at least one infinity and no NaN.
	HalfInvalid
	// Invalid primitives hold at least one NaN.
	Invalid
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case HalfInvalid:
		return "half-invalid"
	case Invalid:
	}
	return "invalid"
}

func validityOf(values ...float64) Validity {
	res := Valid
	for _, val := range values {
		switch {
		case math.IsNaN(val):
			return Invalid
		case math.IsInf(val, 0):
			res = HalfInvalid
		}
	}
	return res
}

// worst combines the validity of the parts of a composite primitive.
func worst(vs ...Validity) Validity {
	res := Valid
	for _, v := range vs {
		if v > res {
			res = v
		}
	}
	return res
}
