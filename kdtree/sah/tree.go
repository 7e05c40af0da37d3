package sah

import "github.com/waldhavran/kdtrace/geom"

// Tree is an immutable SAH-built kd-tree over triangles.
type Tree struct {
	root *Node
	bbox geom.Box // the box this node's subtree was built within
}

// IsEmpty reports whether the tree has no triangles at all.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// IsLeaf reports whether the tree's root is a leaf. Panics if the tree
// is empty.
func (t *Tree) IsLeaf() bool {
	return t.root.isLeaf()
}

// Left returns the left subtree, with its bounding box derived by
// splitting this node's box at its plane. Panics if the tree is empty;
// on a leaf it returns an empty tree.
func (t *Tree) Left() *Tree {
	lbox, _ := t.bbox.Split(t.root.Plane)
	return &Tree{root: t.root.Left, bbox: lbox}
}

// Right returns the right subtree, with its bounding box derived by
// splitting this node's box at its plane. Panics if the tree is empty;
// on a leaf it returns an empty tree.
func (t *Tree) Right() *Tree {
	_, rbox := t.bbox.Split(t.root.Plane)
	return &Tree{root: t.root.Right, bbox: rbox}
}

// BBox returns this node's bounding box (the root box for the tree
// returned by Build, or a derived child box after Left()/Right()).
// The empty tree returned by Build reports the zero Box.
func (t *Tree) BBox() geom.Box {
	return t.bbox
}

// SplitAxis returns the axis the root node's plane splits along. Panics
// if the tree is empty; a leaf carries no split plane and reports X.
func (t *Tree) SplitAxis() geom.Axis {
	return t.root.Plane.Axis
}

// Triangles returns the leaf's triangle list. Panics if the tree is
// empty or not a leaf.
func (t *Tree) Triangles() []geom.Triangle {
	if !t.IsLeaf() {
		panic("sah: Triangles called on an inner node")
	}
	return t.root.Triangles
}

// Height returns the tree's height: 0 for an empty tree, 1 for a single
// leaf, and 1+max(left height, right height) otherwise.
func (t *Tree) Height() int {
	return t.root.height()
}
