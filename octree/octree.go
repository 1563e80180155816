// Package octree implements an octree over a group of triangles that splits the brute force search for
// crossing triangles into many small searches, one per leaf.
package octree

import (
	"math"

	"github.com/pkg/errors"

	"go.viam.com/triangles/collision"
	"go.viam.com/triangles/logging"
	"go.viam.com/triangles/spatialmath"
)

// Each node in the octree is either an internal node which links to eight children, an empty leaf
// with nothing to test, or a filled leaf whose internal and border triangles are tested against each
// other.
const (
	InternalNode = NodeType(iota)
	LeafNodeEmpty
	LeafNodeFilled
)

// NodeType represents the possible types of nodes in an octree.
type NodeType uint8

func (nt NodeType) String() string {
	switch nt {
	case InternalNode:
		return "internal"
	case LeafNodeEmpty:
		return "empty leaf"
	case LeafNodeFilled:
		return "filled leaf"
	}
	return "unknown"
}

// Octree partitions a group of triangles so that crossing pairs can be found leaf by leaf. It is
// immutable once built.
type Octree struct {
	logger   logging.Logger
	root     *Node
	depth    int
	leafSize int
	size     int
}

// New builds an octree over group deep enough that leaves hold about leafSize triangles each.
func New(group spatialmath.IndexedGroup, leafSize int, logger logging.Logger) (*Octree, error) {
	if leafSize <= 0 {
		return nil, errors.Errorf("invalid leaf size (%d) for octree", leafSize)
	}

	octree := &Octree{
		logger:   logger,
		root:     newLeafNode(nil, DomainOf(group), group),
		depth:    SplitDepth(len(group), leafSize),
		leafSize: leafSize,
		size:     len(group),
	}

	queue := []*Node{octree.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.depth >= octree.depth {
			n.collectBorder()
			continue
		}
		n.splitIntoOctants()
		queue = append(queue, n.children[:]...)
	}

	logger.Debugw("built octree",
		"triangles", octree.size,
		"depth", octree.depth,
		"leafSize", leafSize,
		"rootBorder", len(octree.root.border),
		"domain", octree.root.domain.String(),
	)
	return octree, nil
}

// SplitDepth returns how many times a group of n triangles is split so that leaves hold about leafSize
// triangles: 0 when n fits in a single leaf, and floor(log2(n/leafSize)/3)+1 otherwise.
func SplitDepth(n, leafSize int) int {
	if leafSize <= 0 || n <= leafSize {
		return 0
	}
	return int(math.Log2(float64(n)/float64(leafSize))/3) + 1
}

// Root returns the root node.
func (octree *Octree) Root() *Node {
	return octree.root
}

// Depth returns the split depth of the tree.
func (octree *Octree) Depth() int {
	return octree.depth
}

// Size returns the number of triangles in the tree.
func (octree *Octree) Size() int {
	return octree.size
}

// Walk visits every node depth first. Returning false from fn skips the node's children.
func (octree *Octree) Walk(fn func(n *Node) bool) {
	octree.root.walk(fn)
}

// Leaves returns every leaf, empty ones included.
func (octree *Octree) Leaves() []*Node {
	var leaves []*Node
	octree.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// ComplexityRatio compares the number of pair tests the leaves need with the number a single brute
// force pass over every triangle needs. Above one, partitioning costs more than it saves.
func (octree *Octree) ComplexityRatio() float64 {
	if octree.size == 0 {
		return 0
	}
	var work float64
	for _, leaf := range octree.Leaves() {
		i := float64(len(leaf.internal))
		b := float64(len(leaf.border))
		work += i*i + b*b + i*b
	}
	n := float64(octree.size)
	return work / (n * n)
}

// Cross returns the ids of every triangle that crosses another one, sorted and without repeats. When
// the leaves would need at least as many pair tests as a single pass over all triangles, the single
// pass is used instead.
func (octree *Octree) Cross() []int {
	if ratio := octree.ComplexityRatio(); ratio >= 1 {
		octree.logger.Debugw("partitioning does not pay off, testing every pair", "complexityRatio", ratio)
		return collision.Dedup(collision.Cross(octree.root.internal))
	}
	return octree.CrossPartitioned()
}

// CrossPartitioned is Cross without the fallback: it always tests leaf by leaf.
func (octree *Octree) CrossPartitioned() []int {
	var ids []int
	for _, leaf := range octree.Leaves() {
		if leaf.nodeType == LeafNodeEmpty {
			continue
		}
		ids = append(ids, collision.Cross(leaf.internal)...)
		ids = append(ids, collision.Cross(leaf.border)...)
		ids = append(ids, collision.CrossBetween(leaf.internal, leaf.border)...)
	}
	return collision.Dedup(ids)
}
