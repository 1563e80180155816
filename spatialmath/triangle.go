package spatialmath

// Triangle is three points in space together with what the intersection code needs to know about
// them: the plane through them and the three boundary segments. Triangles whose points are collinear
// or coincident are degenerate; their effective shape is their longest boundary segment.
type Triangle struct {
	vertices   [3]Point
	plane      Plane
	degenerate bool

	ab, bc, ca Segment
	// longest is the effective shape of a degenerate triangle.
	longest Segment
}

// NewTriangle returns the triangle with vertices a, b and c.
func NewTriangle(a, b, c Point) *Triangle {
	t := &Triangle{
		vertices: [3]Point{a, b, c},
		plane:    PlaneFromPoints(a, b, c),
		ab:       NewSegment(a, b),
		bc:       NewSegment(b, c),
		ca:       NewSegment(c, a),
	}
	t.degenerate = !t.plane.IsValid()

	// A plane can survive a very short edge that cannot define a line of its own; such triangles are
	// too thin to be treated as anything but a segment.
	abLine := t.ab.Line()
	if !abLine.IntersectLine(t.bc.Line()).IsValid() || !abLine.IntersectLine(t.ca.Line()).IsValid() {
		t.degenerate = true
	}
	if t.degenerate {
		t.plane = invalidPlane()
		t.longest = longestSegment(t.ab, t.bc, t.ca)
	}
	return t
}

// Vertex returns the i-th vertex; i wraps modulo 3.
func (t *Triangle) Vertex(i int) Point {
	return t.vertices[wrapAxis(i)]
}

// Vertices returns the three vertices in construction order.
func (t *Triangle) Vertices() [3]Point {
	return t.vertices
}

// Plane returns the plane through the triangle. It is invalid for degenerate triangles.
func (t *Triangle) Plane() Plane {
	return t.plane
}

// IsDegenerate reports whether the triangle collapses to a segment or a point.
func (t *Triangle) IsDegenerate() bool {
	return t.degenerate
}

// AB returns the boundary segment from the first to the second vertex.
func (t *Triangle) AB() Segment {
	return t.ab
}

// BC returns the boundary segment from the second to the third vertex.
func (t *Triangle) BC() Segment {
	return t.bc
}

// CA returns the boundary segment from the third to the first vertex.
func (t *Triangle) CA() Segment {
	return t.ca
}

// Segments returns the three boundary segments.
func (t *Triangle) Segments() [3]Segment {
	return [3]Segment{t.ab, t.bc, t.ca}
}

// Longest returns the effective shape of a degenerate triangle: its longest boundary segment. For
// non-degenerate triangles it returns the zero Segment.
func (t *Triangle) Longest() Segment {
	return t.longest
}

// Centroid returns the mean of the three vertices.
func (t *Triangle) Centroid() Point {
	sum := Vector(t.vertices[0]).Add(Vector(t.vertices[1])).Add(Vector(t.vertices[2]))
	return Point(sum.Div(3))
}

// Validity is the worst validity of the three vertices.
func (t *Triangle) Validity() Validity {
	return worst(t.vertices[0].Validity(), t.vertices[1].Validity(), t.vertices[2].Validity())
}

// IsValid reports whether all three vertices are finite.
func (t *Triangle) IsValid() bool {
	return t.Validity() == Valid
}

// consistent checks the invariants tying the cached plane and segments to the degeneracy flag.
func (t *Triangle) consistent() bool {
	for _, s := range t.Segments() {
		if !s.IsValid() {
			return true
		}
		if !s.consistent() {
			return false
		}
	}
	if t.degenerate {
		return !t.plane.IsValid() && t.longest.sqLen >= t.ab.sqLen &&
			t.longest.sqLen >= t.bc.sqLen && t.longest.sqLen >= t.ca.sqLen
	}
	return t.plane.IsValid() && t.plane.consistent()
}
