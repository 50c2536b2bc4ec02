package cull

import (
	"github.com/philipparndt/gocull/pkg/frustum"
	"github.com/philipparndt/gocull/pkg/geometry"
)

// MaxDepth bounds the octree walk. A node count of 8^depth grows past any
// useful size beyond it.
const MaxDepth = 8

// Visitor is called for every node reached during Traverse. Returning false
// stops the walk from descending below that node.
type Visitor func(box geometry.BoundingBox, depth int, loc frustum.Location) bool

// Traverse walks an implicit octree over root. Each node is classified and
// passed to visit. Outside nodes are skipped with their subtree, Inside nodes
// are accepted whole, and Intersect nodes are split into octants until
// maxDepth is reached. maxDepth is clamped to [0, MaxDepth].
func Traverse(state *frustum.State, root geometry.BoundingBox, maxDepth int, visit Visitor) {
	traverse(state, root, 0, clampDepth(maxDepth), visit)
}

func clampDepth(depth int) int {
	return min(max(depth, 0), MaxDepth)
}

func traverse(state *frustum.State, box geometry.BoundingBox, depth, maxDepth int, visit Visitor) {
	loc := state.BoxIn(box)
	if !visit(box, depth, loc) {
		return
	}
	if loc != frustum.Intersect || depth >= maxDepth {
		return
	}
	for _, child := range box.Octants() {
		traverse(state, child, depth+1, maxDepth, visit)
	}
}

// Leaves summarizes a traversal: the Inside and Outside nodes where the walk
// stopped plus the Intersect nodes left at maxDepth, along with the volume
// of each class.
type Leaves struct {
	Stats
	InsideVolume    float64
	IntersectVolume float64
	OutsideVolume   float64
}

// CountLeaves traverses root and tallies the nodes the walk ended on
func CountLeaves(state *frustum.State, root geometry.BoundingBox, maxDepth int) Leaves {
	var l Leaves
	maxDepth = clampDepth(maxDepth)
	Traverse(state, root, maxDepth, func(box geometry.BoundingBox, depth int, loc frustum.Location) bool {
		if loc == frustum.Intersect && depth < maxDepth {
			return true
		}
		size := box.Size()
		volume := size.X * size.Y * size.Z
		l.Add(loc)
		switch loc {
		case frustum.Inside:
			l.InsideVolume += volume
		case frustum.Intersect:
			l.IntersectVolume += volume
		case frustum.Outside:
			l.OutsideVolume += volume
		}
		return true
	})
	return l
}
