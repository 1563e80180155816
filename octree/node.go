package octree

import (
	"github.com/samber/lo"

	"go.viam.com/triangles/spatialmath"
)

// Node is one box of the octree. Split nodes own eight children and keep the triangles that could not
// be placed in a single child as their border set. Leaves hold the triangles placed in them as their
// internal set and, once the tree is built, every ancestor border triangle that reaches into their box
// as their border set.
type Node struct {
	parent   *Node
	children [Octants]*Node
	nodeType NodeType
	depth    int

	domain   SpaceDomain
	internal spatialmath.IndexedGroup
	border   spatialmath.IndexedGroup
}

func newLeafNode(parent *Node, domain SpaceDomain, internal spatialmath.IndexedGroup) *Node {
	n := &Node{
		parent:   parent,
		nodeType: LeafNodeFilled,
		domain:   domain,
		internal: internal,
	}
	if parent != nil {
		n.depth = parent.depth + 1
	}
	return n
}

// Type returns whether the node is split, an empty leaf or a leaf with triangles to test.
func (n *Node) Type() NodeType {
	return n.nodeType
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.nodeType != InternalNode
}

// Depth returns the number of splits between the root and the node.
func (n *Node) Depth() int {
	return n.depth
}

// Domain returns the box covered by the node.
func (n *Node) Domain() SpaceDomain {
	return n.domain
}

// Internal returns the triangles placed in the node. It is empty for split nodes other than the root.
func (n *Node) Internal() spatialmath.IndexedGroup {
	return n.internal
}

// Border returns the node's border set.
func (n *Node) Border() spatialmath.IndexedGroup {
	return n.border
}

// Child returns the child in octant o, or nil for leaves.
func (n *Node) Child(o Octant) *Node {
	if o == Several || n.IsLeaf() {
		return nil
	}
	return n.children[o]
}

// splitIntoOctants moves every internal triangle that fits in a single octant into a new child and
// keeps the rest as the border set. The root keeps its internal set, which the global fallback needs.
func (n *Node) splitIntoOctants() {
	splitter := NewPointSplitter(n.internal, n.domain)

	var buckets [Octants]spatialmath.IndexedGroup
	for _, t := range n.internal {
		if o := splitter.OctantOfTriangle(t.Triangle); o == Several {
			n.border = append(n.border, t)
		} else {
			buckets[o] = append(buckets[o], t)
		}
	}
	for o := range n.children {
		n.children[o] = newLeafNode(n, splitter.ChildDomain(n.domain, Octant(o)), buckets[o])
	}

	n.nodeType = InternalNode
	if n.parent != nil {
		n.internal = nil
	}
}

// collectBorder replaces the border set of a leaf with every border triangle of its ancestors that
// crosses the leaf's domain.
func (n *Node) collectBorder() {
	var candidates spatialmath.IndexedGroup
	for anc := n.parent; anc != nil; anc = anc.parent {
		candidates = append(candidates, anc.border...)
	}
	n.border = lo.Filter(candidates, func(t spatialmath.IndexedTriangle, _ int) bool {
		return n.domain.Crosses(t.Triangle)
	})
	if len(n.internal) == 0 && len(n.border) == 0 {
		n.nodeType = LeafNodeEmpty
	}
}

// walk visits n and its descendants depth first, skipping the children of nodes for which fn
// returns false.
func (n *Node) walk(fn func(*Node) bool) {
	if !fn(n) || n.IsLeaf() {
		return
	}
	for _, child := range n.children {
		child.walk(fn)
	}
}
