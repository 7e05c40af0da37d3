// Package kdtrace is the spatial acceleration core of a triangle-mesh ray
// tracer: a k-d tree (k=3) over axis-aligned triangle bounding boxes,
// built either by a fast spatial-median splitter (package kdtree) or a
// Surface-Area-Heuristic event-sweep builder (package kdtree/sah), and
// queried for the nearest ray/triangle hit.
//
// Scene import, camera/raster parameterisation, shading and image output
// are external collaborators; this module only ever sees triangles in
// and returns nearest-hit results out.
package kdtrace

import (
	"github.com/waldhavran/kdtrace/geom"
	"github.com/waldhavran/kdtrace/hit"
	"github.com/waldhavran/kdtrace/kdtree"
	"github.com/waldhavran/kdtrace/kdtree/sah"
)

// Tree is the uniform nearest-hit query facade both builders satisfy:
// *kdtree.Tree (spatial-median) and *sah.Tree (Surface Area Heuristic).
// Nearest is re-entrant and read-only, safe to call concurrently from
// any number of goroutines against the same tree.
type Tree interface {
	Nearest(ray geom.Ray) (hit.Hit, bool)
}

var (
	_ Tree = (*kdtree.Tree)(nil)
	_ Tree = (*sah.Tree)(nil)
)

// BuildMedian builds a Tree using the spatial-median splitter: fast to
// build, not cost-optimal to traverse. leafCapacity bounds how many
// triangles a leaf may hold.
func BuildMedian(triangles []geom.Triangle, leafCapacity int) Tree {
	return kdtree.BuildMedian(triangles, leafCapacity)
}

// BuildSAH builds a Tree using the Surface Area Heuristic event-sweep
// builder: slower to build, cost-optimal splits for traversal.
func BuildSAH(triangles []geom.Triangle) Tree {
	return sah.Build(triangles)
}
