package spatialmath

import "github.com/samber/lo"

// IndexedTriangle pairs a triangle with its position in the original input, so results can be
// reported by input position after the triangles have been regrouped.
type IndexedTriangle struct {
	*Triangle
	ID int
}

// IndexedGroup is a collection of indexed triangles.
type IndexedGroup []IndexedTriangle

// NewIndexedGroup indexes triangles by their position in the slice.
func NewIndexedGroup(triangles []*Triangle) IndexedGroup {
	return lo.Map(triangles, func(t *Triangle, i int) IndexedTriangle {
		return IndexedTriangle{Triangle: t, ID: i}
	})
}

// IDs returns the ids of the group in order.
func (g IndexedGroup) IDs() []int {
	return lo.Map(g, func(t IndexedTriangle, _ int) int {
		return t.ID
	})
}

// Valid returns the triangles of the group that are fully defined. Crosses gives no guarantees for
// the others.
func (g IndexedGroup) Valid() IndexedGroup {
	return lo.Filter(g, func(t IndexedTriangle, _ int) bool {
		return t.IsValid()
	})
}
