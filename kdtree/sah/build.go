package sah

import (
	"time"

	"github.com/waldhavran/kdtrace/clip"
	"github.com/waldhavran/kdtrace/geom"
	"github.com/waldhavran/kdtrace/internal/log"
)

// minLeafTriangles is the minimum-triangle threshold below which a node
// is always a leaf, regardless of split cost (spec.md §4.4's "leaf rule",
// the Open Question SPEC_FULL.md resolves).
const minLeafTriangles = 2

var builderLogger = log.New("sah")

type stats struct {
	nodes, leaves, maxDepth int
}

// Build constructs an SAH-optimised kd-tree from triangles: the
// event-sweep in findPlane selects the globally cost-minimal split plane
// over all three axes at every node, clipping straddling triangles into
// both children. An empty triangles slice produces the empty tree; this
// is not an error (spec.md §7).
func Build(triangles []geom.Triangle) *Tree {
	if len(triangles) == 0 {
		return &Tree{}
	}

	box := geom.EmptyBox()
	for _, tri := range triangles {
		box = box.Union(tri.BBox)
	}

	start := time.Now()
	var st stats
	root := build(triangles, box, 0, &st)
	builderLogger.Debugf("sah build: %d triangles, nodes %d, leaves %d, maxDepth %d, %s",
		len(triangles), st.nodes, st.leaves, st.maxDepth, time.Since(start))

	return &Tree{root: root, bbox: box}
}

func build(triangles []geom.Triangle, box geom.Box, depth int, st *stats) *Node {
	st.nodes++
	if depth > st.maxDepth {
		st.maxDepth = depth
	}

	if len(triangles) < minLeafTriangles {
		st.leaves++
		return &Node{Triangles: triangles}
	}

	leafCost := costIntersect * float32(len(triangles))
	bestCost, plane, side, ok := findPlane(triangles, box)
	if !ok || bestCost >= leafCost {
		st.leaves++
		return &Node{Triangles: triangles}
	}

	lbox, rbox := box.Split(plane)
	left, right := classify(triangles, box, lbox, rbox, plane, side)

	// No progress: both children still see every triangle (can happen
	// when cost bookkeeping picks a plane that doesn't actually separate
	// anything, e.g. all triangles straddle it). Force a leaf rather
	// than recursing forever.
	if len(left) >= len(triangles) && len(right) >= len(triangles) {
		st.leaves++
		return &Node{Triangles: triangles}
	}

	return &Node{
		Plane: plane,
		Left:  build(left, lbox, depth+1, st),
		Right: build(right, rbox, depth+1, st),
	}
}

// classify routes each triangle to the left and/or right child: a
// triangle straddling the plane goes to both (duplicated), a triangle
// lying exactly on the plane goes only to the side the SAH sweep chose.
func classify(triangles []geom.Triangle, box, lbox, rbox geom.Box, plane geom.Plane, side Side) (left, right []geom.Triangle) {
	for _, tri := range triangles {
		clipped, ok := clip.TriangleBox(tri, box)
		if !ok {
			continue
		}

		if clipped.IsPlanar(plane.Axis) && clipped.Min[plane.Axis] == plane.Coord {
			if side == Left {
				left = append(left, tri)
			} else {
				right = append(right, tri)
			}
			continue
		}

		if geom.TriangleBox(tri, lbox) {
			left = append(left, tri)
		}
		if geom.TriangleBox(tri, rbox) {
			right = append(right, tri)
		}
	}
	return left, right
}
