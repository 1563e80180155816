package octree

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
)

// Stats summarizes how evenly an octree spread its triangles over the leaves.
type Stats struct {
	Triangles   int
	Depth       int
	Leaves      int
	EmptyLeaves int
	RootBorder  int

	MeanInternal   float64
	MedianInternal float64
	MaxInternal    float64
	MeanBorder     float64
	MedianBorder   float64
	MaxBorder      float64

	ComplexityRatio float64
}

// Stats computes the occupancy summary of the tree.
func (octree *Octree) Stats() Stats {
	s := Stats{
		Triangles:       octree.size,
		Depth:           octree.depth,
		RootBorder:      len(octree.root.border),
		ComplexityRatio: octree.ComplexityRatio(),
	}

	var internal, border stats.Float64Data
	for _, leaf := range octree.Leaves() {
		s.Leaves++
		if leaf.nodeType == LeafNodeEmpty {
			s.EmptyLeaves++
		}
		internal = append(internal, float64(len(leaf.internal)))
		border = append(border, float64(len(leaf.border)))
	}

	// There is always at least one leaf, so these cannot fail on empty input.
	s.MeanInternal, _ = internal.Mean()
	s.MedianInternal, _ = internal.Median()
	s.MaxInternal, _ = internal.Max()
	s.MeanBorder, _ = border.Mean()
	s.MedianBorder, _ = border.Median()
	s.MaxBorder, _ = border.Max()
	return s
}

// Table renders the summary as a two column table.
func (s Stats) Table() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRows([]table.Row{
		{"triangles", s.Triangles},
		{"depth", s.Depth},
		{"leaves", s.Leaves},
		{"empty leaves", s.EmptyLeaves},
		{"root border", s.RootBorder},
		{"internal per leaf (mean/median/max)", fmt.Sprintf("%.2f / %.1f / %.0f", s.MeanInternal, s.MedianInternal, s.MaxInternal)},
		{"border per leaf (mean/median/max)", fmt.Sprintf("%.2f / %.1f / %.0f", s.MeanBorder, s.MedianBorder, s.MaxBorder)},
		{"complexity ratio", fmt.Sprintf("%.4f", s.ComplexityRatio)},
	})
	return t.Render()
}
