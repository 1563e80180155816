package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func newTri(a, b, c [3]float64) *Triangle {
	return NewTriangle(NewPoint(a[0], a[1], a[2]), NewPoint(b[0], b[1], b[2]), NewPoint(c[0], c[1], c[2]))
}

func expectCrosses(t *testing.T, a, b *Triangle, expected bool) {
	t.Helper()
	test.That(t, Crosses(a, b), test.ShouldEqual, expected)
	test.That(t, Crosses(b, a), test.ShouldEqual, expected)
}

func TestCrossesGeneralPosition(t *testing.T) {
	flat := newTri([3]float64{1, 1, 1}, [3]float64{5, 1, 1}, [3]float64{3, 4, 1})
	upright := newTri([3]float64{3, 1, -3}, [3]float64{3, 1, 3}, [3]float64{3, 4, 0})
	below := newTri([3]float64{-10, 5, 0}, [3]float64{2, 3, 0}, [3]float64{1, 6, 0})

	expectCrosses(t, flat, upright, true)
	expectCrosses(t, flat, below, false)
	expectCrosses(t, upright, below, false)
	expectCrosses(t, flat, flat, true)
	test.That(t, flat.Crosses(upright), test.ShouldBeTrue)

	t.Run("piercing", func(t *testing.T) {
		base := newTri([3]float64{0, 0, 0}, [3]float64{10, 0, 0}, [3]float64{0, 10, 0})
		pierce := newTri([3]float64{2, 2, -1}, [3]float64{2, 2, 1}, [3]float64{3, 3, 0})
		expectCrosses(t, base, pierce, true)

		beside := newTri([3]float64{12, 12, -1}, [3]float64{12, 12, 1}, [3]float64{13, 13, 0})
		expectCrosses(t, base, beside, false)
	})

	t.Run("shared vertex", func(t *testing.T) {
		first := newTri([3]float64{1, 1, 1}, [3]float64{2, 1, 1}, [3]float64{1, 2, 1})
		second := newTri([3]float64{1, 1, 1}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0})
		expectCrosses(t, first, second, true)

		rotated := newTri([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{1, 1, 1})
		expectCrosses(t, first, rotated, true)
	})
}

func TestCrossesCoplanar(t *testing.T) {
	big := newTri([3]float64{0, 0, 0}, [3]float64{10, 0, 0}, [3]float64{0, 10, 0})

	inside := newTri([3]float64{1, 1, 0}, [3]float64{2, 1, 0}, [3]float64{1, 2, 0})
	expectCrosses(t, big, inside, true)

	apart := newTri([3]float64{20, 20, 0}, [3]float64{21, 20, 0}, [3]float64{20, 21, 0})
	expectCrosses(t, big, apart, false)
	expectCrosses(t, inside, apart, false)

	overlapping := newTri([3]float64{5, -2, 0}, [3]float64{12, -2, 0}, [3]float64{5, 3, 0})
	expectCrosses(t, big, overlapping, true)

	touchingEdge := newTri([3]float64{5, 5, 0}, [3]float64{10, 5, 0}, [3]float64{10, 10, 0})
	expectCrosses(t, big, touchingEdge, true)
}

func TestCrossesDegenerate(t *testing.T) {
	base := newTri([3]float64{0, 0, 0}, [3]float64{10, 0, 0}, [3]float64{0, 10, 0})

	t.Run("segment against triangle", func(t *testing.T) {
		through := newTri([3]float64{1, 1, -1}, [3]float64{1, 1, 1}, [3]float64{1, 1, 0})
		expectCrosses(t, base, through, true)

		outside := newTri([3]float64{20, 20, -1}, [3]float64{20, 20, 1}, [3]float64{20, 20, 0})
		expectCrosses(t, base, outside, false)

		lying := newTri([3]float64{-5, 1, 0}, [3]float64{5, 1, 0}, [3]float64{0, 1, 0})
		expectCrosses(t, base, lying, true)

		lyingOutside := newTri([3]float64{-5, -1, 0}, [3]float64{5, -1, 0}, [3]float64{0, -1, 0})
		expectCrosses(t, base, lyingOutside, false)
	})

	t.Run("point against triangle", func(t *testing.T) {
		in := newTri([3]float64{1, 1, 0}, [3]float64{1, 1, 0}, [3]float64{1, 1, 0})
		expectCrosses(t, base, in, true)

		above := newTri([3]float64{1, 1, 5}, [3]float64{1, 1, 5}, [3]float64{1, 1, 5})
		expectCrosses(t, base, above, false)
	})

	t.Run("segment against segment", func(t *testing.T) {
		diagonal := newTri([3]float64{0, 0, 0}, [3]float64{2, 2, 0}, [3]float64{1, 1, 0})
		antidiagonal := newTri([3]float64{0, 2, 0}, [3]float64{2, 0, 0}, [3]float64{1, 1, 0})
		expectCrosses(t, diagonal, antidiagonal, true)

		lifted := newTri([3]float64{0, 2, 1}, [3]float64{2, 0, 1}, [3]float64{1, 1, 1})
		expectCrosses(t, diagonal, lifted, false)

		onX := newTri([3]float64{0, 0, 0}, [3]float64{2, 0, 0}, [3]float64{1, 0, 0})
		overlapping := newTri([3]float64{1.5, 0, 0}, [3]float64{4, 0, 0}, [3]float64{3, 0, 0})
		disjoint := newTri([3]float64{3, 0, 0}, [3]float64{4, 0, 0}, [3]float64{3.5, 0, 0})
		expectCrosses(t, onX, overlapping, true)
		expectCrosses(t, onX, disjoint, false)

		pointOn := newTri([3]float64{1, 0, 0}, [3]float64{1, 0, 0}, [3]float64{1, 0, 0})
		pointOff := newTri([3]float64{1, 1, 0}, [3]float64{1, 1, 0}, [3]float64{1, 1, 0})
		expectCrosses(t, onX, pointOn, true)
		expectCrosses(t, onX, pointOff, false)
		expectCrosses(t, pointOn, pointOn, true)
		expectCrosses(t, pointOn, pointOff, false)
	})

	t.Run("acts as its longest segment", func(t *testing.T) {
		collinear := newTri([3]float64{0, 0, -1}, [3]float64{0.5, 0.5, -0.5}, [3]float64{2, 2, 1})
		asSegment := newTri([3]float64{2, 2, 1}, [3]float64{0, 0, -1}, [3]float64{0, 0, -1})
		test.That(t, collinear.IsDegenerate(), test.ShouldBeTrue)

		others := []*Triangle{
			base,
			newTri([3]float64{1, 1, -3}, [3]float64{1, 1, 3}, [3]float64{4, 4, 0}),
			newTri([3]float64{5, 5, 5}, [3]float64{6, 5, 5}, [3]float64{5, 6, 5}),
			newTri([3]float64{0, 0, 0}, [3]float64{1, 1, 0}, [3]float64{0.5, 0.5, 0}),
		}
		for _, other := range others {
			test.That(t, Crosses(collinear, other), test.ShouldEqual, Crosses(asSegment, other))
			test.That(t, Crosses(other, collinear), test.ShouldEqual, Crosses(other, asSegment))
		}
	})
}

func TestCrossesInvalidDoesNotPanic(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	base := newTri([3]float64{0, 0, 0}, [3]float64{10, 0, 0}, [3]float64{0, 10, 0})
	bad := []*Triangle{
		newTri([3]float64{nan, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}),
		newTri([3]float64{inf, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}),
		NewTriangle(InvalidPoint(), InvalidPoint(), InvalidPoint()),
	}
	for _, b := range bad {
		Crosses(base, b)
		Crosses(b, base)
		Crosses(b, b)
	}
}

func TestCrossesRandomSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	coord := func() float64 { return rng.Float64() * 10 }
	randomTriangle := func() *Triangle {
		return NewTriangle(
			NewPoint(coord(), coord(), coord()),
			NewPoint(coord(), coord(), coord()),
			NewPoint(coord(), coord(), coord()),
		)
	}

	crossings := 0
	for i := 0; i < 200; i++ {
		a := randomTriangle()
		b := randomTriangle()
		ab := Crosses(a, b)
		test.That(t, Crosses(b, a), test.ShouldEqual, ab)
		test.That(t, Crosses(a, a), test.ShouldBeTrue)
		if ab {
			crossings++
		}
	}
	test.That(t, crossings, test.ShouldBeGreaterThan, 0)
}
