package sah

import "github.com/waldhavran/kdtrace/geom"

// Node is one node of the SAH tree. Unlike the simple tree's Node, it
// does not carry a bounding box: an inner node needs only the split
// plane plus its two children, and leaves need only their triangles —
// each node's effective box is derived top-down from the tree's root
// box during traversal (spec.md §3, §9's "compact node layout" note).
type Node struct {
	Plane       geom.Plane
	Left, Right *Node
	Triangles   []geom.Triangle
}

func (n *Node) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

func (n *Node) height() int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	lh := n.Left.height()
	rh := n.Right.height()
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}
