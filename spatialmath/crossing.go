package spatialmath

// Crosses reports whether triangles a and b share at least one point. Degenerate triangles on either
// side are compared through their longest boundary segment. The result is unspecified when
// either triangle is invalid or half-invalid, so callers should filter those out first.
func Crosses(a, b *Triangle) bool {
	switch {
	case a.degenerate && b.degenerate:
		return segmentsCross(a.longest, b.longest)
	case a.degenerate:
		return segmentCrossesTriangle(b, a.longest)
	case b.degenerate:
		return segmentCrossesTriangle(a, b.longest)
	default:
		return trianglesCross(a, b)
	}
}

// Crosses reports whether t shares at least one point with other. See the package level Crosses.
func (t *Triangle) Crosses(other *Triangle) bool {
	return Crosses(t, other)
}

// trianglesCross clips ft against the plane of sd and tests the clip against sd inside that plane.
func trianglesCross(ft, sd *Triangle) bool {
	var hits []Point
	for _, s := range ft.Segments() {
		if p := s.IntersectPlane(sd.plane); p.IsValid() {
			hits = append(hits, p)
		}
	}
	if len(hits) == 0 {
		if sd.plane.Contains(ft.vertices[0]) {
			return coplanarTrianglesCross(ft, sd)
		}
		return false
	}
	return coplanarSegmentCrossesTriangle(sd, widestSegment(hits))
}

// segmentCrossesTriangle handles a degenerate triangle, represented by seg, against a proper one.
func segmentCrossesTriangle(tr *Triangle, seg Segment) bool {
	if p := seg.IntersectPlane(tr.plane); p.IsValid() {
		return coplanarPointInTriangle(tr, p)
	}
	return tr.plane.Contains(seg.p1) && tr.plane.Contains(seg.p2) && coplanarSegmentCrossesTriangle(tr, seg)
}

// segmentsCross handles two degenerate triangles. Either segment may itself be a single point.
func segmentsCross(ft, sd Segment) bool {
	ftLine := ft.Line()
	sdLine := sd.Line()
	ftOK := ftLine.IsValid()
	sdOK := sdLine.IsValid()

	switch {
	case ftOK && sdOK:
		if ftLine.Equal(sdLine) {
			return collinearSegmentsCross(ft, sd)
		}
		return ft.LinearContains(ftLine.IntersectSegment(sd))
	case ftOK:
		return ftLine.Contains(sd.p1) && ft.LinearContains(sd.p1)
	case sdOK:
		return sdLine.Contains(ft.p1) && sd.LinearContains(ft.p1)
	default:
		return ft.p1.Equal(sd.p1)
	}
}

// coplanarTrianglesCross tests two triangles lying in the same plane.
func coplanarTrianglesCross(ft, sd *Triangle) bool {
	for _, s := range sd.Segments() {
		if coplanarSegmentCrossesTriangle(ft, s) {
			return true
		}
	}
	// None of sd's edges touch ft, so either ft lies inside sd or they are apart.
	return coplanarSegmentCrossesTriangle(sd, ft.ab)
}

// coplanarSegmentCrossesTriangle tests a segment lying in the plane of tr. The segment's line cuts a
// chord out of tr, and the two cross iff the chord and the segment overlap.
func coplanarSegmentCrossesTriangle(tr *Triangle, seg Segment) bool {
	segLine := seg.Line()
	if !segLine.IsValid() {
		return coplanarPointInTriangle(tr, seg.p1)
	}

	var hits []Point
	for _, s := range tr.Segments() {
		if p := segLine.IntersectSegment(s); p.IsValid() {
			hits = append(hits, p)
		}
	}
	if len(hits) == 0 {
		return false
	}
	return collinearSegmentsCross(widestSegment(hits), seg)
}

// coplanarPointInTriangle tests a point lying in the plane of tr. The line from p to vertex A meets
// the opposite edge BC; p is inside iff it lies between A and that meeting point.
func coplanarPointInTriangle(tr *Triangle, p Point) bool {
	a := tr.vertices[0]
	toA := NewSegment(p, a).Line()
	if !toA.IsValid() {
		// p coincides with A.
		return true
	}
	return NewSegment(toA.IntersectSegment(tr.bc), a).LinearContains(p)
}

// collinearSegmentsCross tests two segments known to lie on the same line for overlap.
func collinearSegmentsCross(ft, sd Segment) bool {
	return ft.LinearContains(sd.p1) || ft.LinearContains(sd.p2) || sd.LinearContains(ft.p1)
}

// widestSegment returns the segment between the two points farthest apart. A single point gives a
// zero length segment.
func widestSegment(pts []Point) Segment {
	best := NewSegment(pts[0], pts[0])
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if s := NewSegment(pts[i], pts[j]); s.sqLen > best.sqLen {
				best = s
			}
		}
	}
	return best
}
