package sah

import (
	"github.com/waldhavran/kdtrace/geom"
	"github.com/waldhavran/kdtrace/hit"
)

// Nearest returns the closest triangle the ray hits (smallest positive
// R), or ok=false if the ray hits nothing in the tree. Pure function of
// (tree, ray); safe to call concurrently from any number of goroutines.
func (t *Tree) Nearest(ray geom.Ray) (hit.Hit, bool) {
	if t.IsEmpty() {
		return hit.Hit{}, false
	}
	return nearest(t.root, t.bbox, ray)
}

func nearest(n *Node, box geom.Box, ray geom.Ray) (hit.Hit, bool) {
	if !geom.RayBox(ray, box) {
		return hit.Hit{}, false
	}

	if n.isLeaf() {
		return hit.Nearest(ray, n.Triangles)
	}

	lbox, rbox := box.Split(n.Plane)

	leftHit, leftOK := nearest(n.Left, lbox, ray)
	rightHit, rightOK := nearest(n.Right, rbox, ray)

	switch {
	case leftOK && (!rightOK || leftHit.Closer(rightHit)):
		return leftHit, true
	case rightOK:
		return rightHit, true
	default:
		return hit.Hit{}, false
	}
}
