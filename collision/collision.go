// Package collision finds the triangles of a group that cross another triangle by testing every pair.
package collision

import (
	"slices"

	"github.com/samber/lo"

	"go.viam.com/triangles/spatialmath"
)

// Cross tests every unordered pair of the group and returns the ids of both members of each crossing
// pair. Ids may repeat; pass the result through Dedup for a set.
func Cross(group spatialmath.IndexedGroup) []int {
	boxes := lo.Map(group, func(t spatialmath.IndexedTriangle, _ int) box {
		return boxOf(t.Triangle)
	})

	var ids []int
	for i := range group {
		for j := i + 1; j < len(group); j++ {
			if !boxesOverlap(boxes[i], boxes[j]) {
				continue
			}
			if spatialmath.Crosses(group[i].Triangle, group[j].Triangle) {
				ids = append(ids, group[i].ID, group[j].ID)
			}
		}
	}
	return ids
}

// CrossBetween tests every pair made of one triangle from a and one from b and returns the ids of
// both members of each crossing pair.
func CrossBetween(a, b spatialmath.IndexedGroup) []int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	toBox := func(t spatialmath.IndexedTriangle, _ int) box {
		return boxOf(t.Triangle)
	}
	aBoxes := lo.Map(a, toBox)
	bBoxes := lo.Map(b, toBox)

	var ids []int
	for i := range a {
		for j := range b {
			if !boxesOverlap(aBoxes[i], bBoxes[j]) {
				continue
			}
			if spatialmath.Crosses(a[i].Triangle, b[j].Triangle) {
				ids = append(ids, a[i].ID, b[j].ID)
			}
		}
	}
	return ids
}

// Dedup returns the distinct ids in ascending order.
func Dedup(ids []int) []int {
	res := lo.Uniq(ids)
	slices.Sort(res)
	return res
}
