package kdtree

import (
	"github.com/waldhavran/kdtrace/geom"
	"github.com/waldhavran/kdtrace/hit"
)

// Nearest returns the closest triangle the ray hits (smallest positive
// R), or ok=false if the ray hits nothing in the tree. It is a pure
// function of (tree, ray): re-entrant, read-only, safe to call
// concurrently from any number of goroutines on the same tree.
func (t *Tree) Nearest(ray geom.Ray) (hit.Hit, bool) {
	if t.IsEmpty() {
		return hit.Hit{}, false
	}
	return nearest(t.root, ray)
}

func nearest(n *Node, ray geom.Ray) (hit.Hit, bool) {
	if !geom.RayBox(ray, n.BBox) {
		return hit.Hit{}, false
	}

	if n.isLeaf() {
		return hit.Nearest(ray, n.Triangles)
	}

	leftHit, leftOK := nearest(n.Left, ray)
	rightHit, rightOK := nearest(n.Right, ray)

	switch {
	case leftOK && (!rightOK || leftHit.Closer(rightHit)):
		return leftHit, true
	case rightOK:
		return rightHit, true
	default:
		return hit.Hit{}, false
	}
}
