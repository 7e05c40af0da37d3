// Package kdtree implements the simple spatial-median kd-tree builder and
// its nearest-hit traversal: a balanced tree built quickly by repeatedly
// splitting the longest axis at its spatial midpoint.
package kdtree

import "github.com/waldhavran/kdtrace/geom"

// Node is one node of the tree: a boxed sum type expressed the Go way —
// a leaf carries Triangles and nil children, an inner node carries two
// non-empty children and no triangles. Each node has exactly one owner
// (its parent, or the Tree for the root), built bottom-up.
type Node struct {
	BBox      geom.Box
	SplitAxis geom.Axis

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

// Tree is an immutable kd-tree over triangles. The zero value is the
// empty tree, the same value BuildMedian returns for an empty slice.
type Tree struct {
	root *Node
}

// IsEmpty reports whether the tree has no triangles at all.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// IsLeaf reports whether the tree's root is a leaf. Panics if the tree is
// empty.
func (t *Tree) IsLeaf() bool {
	return t.root.isLeaf()
}

// Left returns the left subtree. Panics if the tree is empty; on a leaf
// it returns an empty tree.
func (t *Tree) Left() *Tree {
	return &Tree{root: t.root.Left}
}

// Right returns the right subtree. Panics if the tree is empty; on a
// leaf it returns an empty tree.
func (t *Tree) Right() *Tree {
	return &Tree{root: t.root.Right}
}

// BBox returns the root node's bounding box. Panics if the tree is empty.
func (t *Tree) BBox() geom.Box {
	return t.root.BBox
}

// SplitAxis returns the axis the root node was split along. Panics if
// the tree is empty.
func (t *Tree) SplitAxis() geom.Axis {
	return t.root.SplitAxis
}

// Triangles returns the leaf's triangle list. Panics if the tree is
// empty or not a leaf.
func (t *Tree) Triangles() []geom.Triangle {
	if !t.IsLeaf() {
		panic("kdtree: Triangles called on an inner node")
	}
	return t.root.Triangles
}

// Height returns the tree's height: 0 for an empty tree, 1 for a single
// leaf, and 1+max(left height, right height) otherwise.
func (t *Tree) Height() int {
	return t.root.height()
}
