package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Axes is the number of spatial dimensions.
const Axes = 3

// Point is a location in 3D space.
type Point r3.Vector

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// InvalidPoint returns the all-NaN point. It is what failed intersections produce.
func InvalidPoint() Point {
	nan := math.NaN()
	return Point{X: nan, Y: nan, Z: nan}
}

func (p Point) vec() r3.Vector {
	return r3.Vector(p)
}

// Validity classifies p by its coordinates.
func (p Point) Validity() Validity {
	return validityOf(p.X, p.Y, p.Z)
}

// IsValid reports whether every coordinate of p is finite.
func (p Point) IsValid() bool {
	return p.Validity() == Valid
}

// Coord returns the coordinate of p on the given axis (0 is X, 1 is Y, 2 is Z). The axis wraps
// modulo 3.
func (p Point) Coord(axis int) float64 {
	switch wrapAxis(axis) {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// WithCoord returns a copy of p whose coordinate on the given axis is replaced by val.
func (p Point) WithCoord(axis int, val float64) Point {
	switch wrapAxis(axis) {
	case 0:
		p.X = val
	case 1:
		p.Y = val
	default:
		p.Z = val
	}
	return p
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point(p.vec().Add(r3.Vector(v)))
}

// Sub returns the vector pointing from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector(p.vec().Sub(q.vec()))
}

// SqDist returns the squared distance between p and q.
func (p Point) SqDist(q Point) float64 {
	return p.Sub(q).SqLen()
}

// Equal reports whether p and q agree per coordinate within CoordTolerance.
func (p Point) Equal(q Point) bool {
	return Vector(p).Equal(Vector(q))
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

func wrapAxis(axis int) int {
	return ((axis % Axes) + Axes) % Axes
}
