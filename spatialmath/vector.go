package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
)

// Vector is a displacement in 3D space. Unless noted otherwise every method is SAFE: NaN inputs give
// NaN outputs and infinite inputs give infinite or NaN outputs.
type Vector r3.Vector

// NewVector returns the vector (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// InvalidVector returns the all-NaN vector.
func InvalidVector() Vector {
	nan := math.NaN()
	return Vector{X: nan, Y: nan, Z: nan}
}

func (v Vector) vec() r3.Vector {
	return r3.Vector(v)
}

// Validity classifies v by its coordinates.
func (v Vector) Validity() Validity {
	return validityOf(v.X, v.Y, v.Z)
}

// IsValid reports whether every coordinate of v is finite.
func (v Vector) IsValid() bool {
	return v.Validity() == Valid
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector(v.vec().Add(w.vec()))
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector(v.vec().Sub(w.vec()))
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Mul(-1)
}

// Mul returns v scaled by k.
func (v Vector) Mul(k float64) Vector {
	return Vector(v.vec().Mul(k))
}

// Div returns v divided by k. Division by zero gives infinite or NaN coordinates.
func (v Vector) Div(k float64) Vector {
	return v.Mul(1 / k)
}

// Dot returns the scalar product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.vec().Dot(w.vec())
}

// Cross returns the vector product of v and w.
func (v Vector) Cross(w Vector) Vector {
	return Vector(v.vec().Cross(w.vec()))
}

// SqLen returns the squared length of v.
func (v Vector) SqLen() float64 {
	return v.vec().Norm2()
}

// Len returns the length of v.
func (v Vector) Len() float64 {
	return v.vec().Norm()
}

// Scaled returns v divided by its largest absolute coordinate, so the result's largest component has
// magnitude 1. Scaling keeps products of directions on a predictable scale. The zero vector scales to
// the invalid vector.
func (v Vector) Scaled() Vector {
	abs := v.vec().Abs()
	return v.Mul(1 / floats.Max([]float64{abs.X, abs.Y, abs.Z}))
}

// Equal reports whether v and w agree per coordinate within CoordTolerance.
func (v Vector) Equal(w Vector) bool {
	return ApproxEqual(v.X, w.X, CoordTolerance) &&
		ApproxEqual(v.Y, w.Y, CoordTolerance) &&
		ApproxEqual(v.Z, w.Z, CoordTolerance)
}

// nearZero is false for vectors with a NaN coordinate.
func (v Vector) nearZero(tol Tolerance) bool {
	return nearZero(v.X, tol) && nearZero(v.Y, tol) && nearZero(v.Z, tol)
}

// Det returns the determinant of the 3x3 matrix with rows a, b and c.
func Det(a, b, c Vector) float64 {
	return a.Dot(b.Cross(c))
}
